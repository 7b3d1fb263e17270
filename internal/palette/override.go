package palette

import (
	"image"
	"reflect"
)

// OverrideGroup carries the flags shared by every override decorator of one
// logical element, so toggling one flag switches all of them at once.
type OverrideGroup struct {
	apply    bool
	override bool
	state    State
	paint    PaintFunc
}

// NewOverrideGroup returns a group targeting state with Apply off and
// Override on.
func NewOverrideGroup(state State, paint PaintFunc) *OverrideGroup {
	return &OverrideGroup{override: true, state: state, paint: paint}
}

func (g *OverrideGroup) Apply() bool          { return g.apply }
func (g *OverrideGroup) Override() bool       { return g.override }
func (g *OverrideGroup) OverrideState() State { return g.state }

// SetApply is the master switch.
func (g *OverrideGroup) SetApply(apply bool) {
	if g.apply == apply {
		return
	}
	g.apply = apply
	g.paint.fire()
}

// SetOverride enables or disables the substitution independently of Apply.
func (g *OverrideGroup) SetOverride(override bool) {
	if g.override == override {
		return
	}
	g.override = override
	g.paint.fire()
}

// SetOverrideState picks the single state the override answers for.
func (g *OverrideGroup) SetOverrideState(state State) {
	if g.state == state {
		return
	}
	g.state = state
	g.paint.fire()
}

// SetPaint replaces the callback fired by flag and palette changes.
func (g *OverrideGroup) SetPaint(paint PaintFunc) { g.paint = paint }

// Effective reports whether the override can currently substitute anything.
func (g *OverrideGroup) Effective() bool { return g.apply && g.override }

// Active reports whether a query at s is answered by the override source.
func (g *OverrideGroup) Active(s State) bool { return g.apply && g.override && s == g.state }

func groupOrNew(g *OverrideGroup) *OverrideGroup {
	if g == nil {
		return NewOverrideGroup(StateNormal, nil)
	}
	return g
}

// BackOverride answers from the override source for the group's state when
// the group is effective, and from the normal source otherwise.
type BackOverride struct {
	*OverrideGroup
	normal   Background
	override Background
}

// NewBackOverride decorates normal. A nil group gets a fresh one.
func NewBackOverride(group *OverrideGroup, normal, override Background) (*BackOverride, error) {
	if normal == nil || override == nil {
		return nil, ErrNilSource
	}
	return &BackOverride{OverrideGroup: groupOrNew(group), normal: normal, override: override}, nil
}

// SetPalettes swaps both sources while keeping the group flags.
func (o *BackOverride) SetPalettes(normal, override Background) error {
	if normal == nil || override == nil {
		return ErrNilSource
	}
	o.normal, o.override = normal, override
	o.paint.fire()
	return nil
}

func (o *BackOverride) Group() *OverrideGroup { return o.OverrideGroup }
func (o *BackOverride) Normal() Background    { return o.normal }
func (o *BackOverride) Substitute() Background { return o.override }

func (o *BackOverride) src(s State) Background {
	if o.Active(s) {
		return o.override
	}
	return o.normal
}

// IsDefault is true unless the override is effective and diverges from the
// normal source at the override state.
func (o *BackOverride) IsDefault() bool {
	return !o.Effective() || !backDiverges(o.normal, o.override, o.state)
}

func (o *BackOverride) BackDraw(s State) TriBool              { return o.src(s).BackDraw(s) }
func (o *BackOverride) BackGraphicsHint(s State) GraphicsHint { return o.src(s).BackGraphicsHint(s) }
func (o *BackOverride) BackColor1(s State) Color              { return o.src(s).BackColor1(s) }
func (o *BackOverride) BackColor2(s State) Color              { return o.src(s).BackColor2(s) }
func (o *BackOverride) BackColorStyle(s State) ColorStyle     { return o.src(s).BackColorStyle(s) }
func (o *BackOverride) BackColorAlign(s State) Align          { return o.src(s).BackColorAlign(s) }
func (o *BackOverride) BackColorAngle(s State) float32        { return o.src(s).BackColorAngle(s) }
func (o *BackOverride) BackImage(s State) image.Image         { return o.src(s).BackImage(s) }
func (o *BackOverride) BackImageStyle(s State) ImageStyle     { return o.src(s).BackImageStyle(s) }
func (o *BackOverride) BackImageAlign(s State) Align          { return o.src(s).BackImageAlign(s) }

// BorderOverride is the Border counterpart of BackOverride.
type BorderOverride struct {
	*OverrideGroup
	normal   Border
	override Border
}

func NewBorderOverride(group *OverrideGroup, normal, override Border) (*BorderOverride, error) {
	if normal == nil || override == nil {
		return nil, ErrNilSource
	}
	return &BorderOverride{OverrideGroup: groupOrNew(group), normal: normal, override: override}, nil
}

func (o *BorderOverride) SetPalettes(normal, override Border) error {
	if normal == nil || override == nil {
		return ErrNilSource
	}
	o.normal, o.override = normal, override
	o.paint.fire()
	return nil
}

func (o *BorderOverride) Group() *OverrideGroup { return o.OverrideGroup }
func (o *BorderOverride) Normal() Border        { return o.normal }
func (o *BorderOverride) Substitute() Border    { return o.override }

func (o *BorderOverride) src(s State) Border {
	if o.Active(s) {
		return o.override
	}
	return o.normal
}

func (o *BorderOverride) IsDefault() bool {
	return !o.Effective() || !borderDiverges(o.normal, o.override, o.state)
}

func (o *BorderOverride) BorderDraw(s State) TriBool              { return o.src(s).BorderDraw(s) }
func (o *BorderOverride) BorderDrawBorders(s State) Edges         { return o.src(s).BorderDrawBorders(s) }
func (o *BorderOverride) BorderGraphicsHint(s State) GraphicsHint { return o.src(s).BorderGraphicsHint(s) }
func (o *BorderOverride) BorderColor1(s State) Color              { return o.src(s).BorderColor1(s) }
func (o *BorderOverride) BorderColor2(s State) Color              { return o.src(s).BorderColor2(s) }
func (o *BorderOverride) BorderColorStyle(s State) ColorStyle     { return o.src(s).BorderColorStyle(s) }
func (o *BorderOverride) BorderColorAlign(s State) Align          { return o.src(s).BorderColorAlign(s) }
func (o *BorderOverride) BorderColorAngle(s State) float32        { return o.src(s).BorderColorAngle(s) }
func (o *BorderOverride) BorderWidth(s State) int                 { return o.src(s).BorderWidth(s) }
func (o *BorderOverride) BorderRounding(s State) float32          { return o.src(s).BorderRounding(s) }
func (o *BorderOverride) BorderImage(s State) image.Image         { return o.src(s).BorderImage(s) }
func (o *BorderOverride) BorderImageStyle(s State) ImageStyle     { return o.src(s).BorderImageStyle(s) }
func (o *BorderOverride) BorderImageAlign(s State) Align          { return o.src(s).BorderImageAlign(s) }

// ContentOverride is the Content counterpart of BackOverride.
type ContentOverride struct {
	*OverrideGroup
	normal   Content
	override Content
}

func NewContentOverride(group *OverrideGroup, normal, override Content) (*ContentOverride, error) {
	if normal == nil || override == nil {
		return nil, ErrNilSource
	}
	return &ContentOverride{OverrideGroup: groupOrNew(group), normal: normal, override: override}, nil
}

func (o *ContentOverride) SetPalettes(normal, override Content) error {
	if normal == nil || override == nil {
		return ErrNilSource
	}
	o.normal, o.override = normal, override
	o.paint.fire()
	return nil
}

func (o *ContentOverride) Group() *OverrideGroup { return o.OverrideGroup }
func (o *ContentOverride) Normal() Content       { return o.normal }
func (o *ContentOverride) Substitute() Content   { return o.override }

func (o *ContentOverride) src(s State) Content {
	if o.Active(s) {
		return o.override
	}
	return o.normal
}

func (o *ContentOverride) IsDefault() bool {
	return !o.Effective() || !contentDiverges(o.normal, o.override, o.state)
}

func (o *ContentOverride) ContentDraw(s State) TriBool      { return o.src(s).ContentDraw(s) }
func (o *ContentOverride) ContentDrawFocus(s State) TriBool { return o.src(s).ContentDrawFocus(s) }
func (o *ContentOverride) ContentGraphicsHint(s State) GraphicsHint {
	return o.src(s).ContentGraphicsHint(s)
}
func (o *ContentOverride) ContentFont(s State) Font          { return o.src(s).ContentFont(s) }
func (o *ContentOverride) ContentTextColor1(s State) Color   { return o.src(s).ContentTextColor1(s) }
func (o *ContentOverride) ContentTextColor2(s State) Color   { return o.src(s).ContentTextColor2(s) }
func (o *ContentOverride) ContentTextColorStyle(s State) ColorStyle {
	return o.src(s).ContentTextColorStyle(s)
}
func (o *ContentOverride) ContentTextColorAngle(s State) float32 {
	return o.src(s).ContentTextColorAngle(s)
}
func (o *ContentOverride) ContentTextHAlign(s State) TextAlign  { return o.src(s).ContentTextHAlign(s) }
func (o *ContentOverride) ContentTextVAlign(s State) TextAlign  { return o.src(s).ContentTextVAlign(s) }
func (o *ContentOverride) ContentImageHAlign(s State) TextAlign { return o.src(s).ContentImageHAlign(s) }
func (o *ContentOverride) ContentImageVAlign(s State) TextAlign { return o.src(s).ContentImageVAlign(s) }
func (o *ContentOverride) ContentPadding(s State) Padding       { return o.src(s).ContentPadding(s) }

// TripleOverride decorates every part of a normal Triple with the matching
// part of an override Triple, all sharing one group.
type TripleOverride struct {
	group   *OverrideGroup
	back    *BackOverride
	border  *BorderOverride
	content *ContentOverride
	triple  *Triple
}

// NewTripleOverride decorates normal with override. A nil group gets a fresh one.
func NewTripleOverride(group *OverrideGroup, normal, override *Triple) (*TripleOverride, error) {
	if normal == nil || override == nil {
		return nil, ErrNilSource
	}
	group = groupOrNew(group)
	back, err := NewBackOverride(group, normal.Back(), override.Back())
	if err != nil {
		return nil, err
	}
	border, err := NewBorderOverride(group, normal.Border(), override.Border())
	if err != nil {
		return nil, err
	}
	content, err := NewContentOverride(group, normal.Content(), override.Content())
	if err != nil {
		return nil, err
	}
	triple, err := NewTripleFrom(back, border, content)
	if err != nil {
		return nil, err
	}
	return &TripleOverride{group: group, back: back, border: border, content: content, triple: triple}, nil
}

func (t *TripleOverride) Group() *OverrideGroup { return t.group }

// Triple exposes the decorated parts for rendering.
func (t *TripleOverride) Triple() *Triple { return t.triple }

// SetPalettes swaps the normal and override triples, keeping the flags.
func (t *TripleOverride) SetPalettes(normal, override *Triple) error {
	if normal == nil || override == nil {
		return ErrNilSource
	}
	if err := t.back.SetPalettes(normal.Back(), override.Back()); err != nil {
		return err
	}
	if err := t.border.SetPalettes(normal.Border(), override.Border()); err != nil {
		return err
	}
	return t.content.SetPalettes(normal.Content(), override.Content())
}

func (t *TripleOverride) IsDefault() bool {
	return AllDefault(t.back, t.border, t.content)
}

func sameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func backDiverges(a, b Background, s State) bool {
	return a.BackDraw(s) != b.BackDraw(s) ||
		a.BackGraphicsHint(s) != b.BackGraphicsHint(s) ||
		a.BackColor1(s) != b.BackColor1(s) ||
		a.BackColor2(s) != b.BackColor2(s) ||
		a.BackColorStyle(s) != b.BackColorStyle(s) ||
		a.BackColorAlign(s) != b.BackColorAlign(s) ||
		a.BackColorAngle(s) != b.BackColorAngle(s) ||
		!sameImage(a.BackImage(s), b.BackImage(s)) ||
		a.BackImageStyle(s) != b.BackImageStyle(s) ||
		a.BackImageAlign(s) != b.BackImageAlign(s)
}

func borderDiverges(a, b Border, s State) bool {
	return a.BorderDraw(s) != b.BorderDraw(s) ||
		a.BorderDrawBorders(s) != b.BorderDrawBorders(s) ||
		a.BorderGraphicsHint(s) != b.BorderGraphicsHint(s) ||
		a.BorderColor1(s) != b.BorderColor1(s) ||
		a.BorderColor2(s) != b.BorderColor2(s) ||
		a.BorderColorStyle(s) != b.BorderColorStyle(s) ||
		a.BorderColorAlign(s) != b.BorderColorAlign(s) ||
		a.BorderColorAngle(s) != b.BorderColorAngle(s) ||
		a.BorderWidth(s) != b.BorderWidth(s) ||
		a.BorderRounding(s) != b.BorderRounding(s) ||
		!sameImage(a.BorderImage(s), b.BorderImage(s)) ||
		a.BorderImageStyle(s) != b.BorderImageStyle(s) ||
		a.BorderImageAlign(s) != b.BorderImageAlign(s)
}

func contentDiverges(a, b Content, s State) bool {
	return a.ContentDraw(s) != b.ContentDraw(s) ||
		a.ContentDrawFocus(s) != b.ContentDrawFocus(s) ||
		a.ContentGraphicsHint(s) != b.ContentGraphicsHint(s) ||
		a.ContentFont(s) != b.ContentFont(s) ||
		a.ContentTextColor1(s) != b.ContentTextColor1(s) ||
		a.ContentTextColor2(s) != b.ContentTextColor2(s) ||
		a.ContentTextColorStyle(s) != b.ContentTextColorStyle(s) ||
		a.ContentTextColorAngle(s) != b.ContentTextColorAngle(s) ||
		a.ContentTextHAlign(s) != b.ContentTextHAlign(s) ||
		a.ContentTextVAlign(s) != b.ContentTextVAlign(s) ||
		a.ContentImageHAlign(s) != b.ContentImageHAlign(s) ||
		a.ContentImageVAlign(s) != b.ContentImageVAlign(s) ||
		a.ContentPadding(s) != b.ContentPadding(s)
}
