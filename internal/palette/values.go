package palette

import "image"

// BackSpec holds the background attributes stored for one state.
// Nil fields and TriInherit are unset.
type BackSpec struct {
	Draw         TriBool       `json:"draw,omitempty"`
	GraphicsHint *GraphicsHint `json:"graphicsHint,omitempty"`
	Color1       *Color        `json:"color1,omitempty"`
	Color2       *Color        `json:"color2,omitempty"`
	ColorStyle   *ColorStyle   `json:"colorStyle,omitempty"`
	ColorAlign   *Align        `json:"colorAlign,omitempty"`
	ColorAngle   *float32      `json:"colorAngle,omitempty"`
	Image        image.Image   `json:"-"`
	ImageStyle   *ImageStyle   `json:"imageStyle,omitempty"`
	ImageAlign   *Align        `json:"imageAlign,omitempty"`
}

func (b BackSpec) isZero() bool {
	return b.Draw == TriInherit && b.GraphicsHint == nil && b.Color1 == nil && b.Color2 == nil &&
		b.ColorStyle == nil && b.ColorAlign == nil && b.ColorAngle == nil && b.Image == nil &&
		b.ImageStyle == nil && b.ImageAlign == nil
}

// BorderSpec holds the border attributes stored for one state.
type BorderSpec struct {
	Draw         TriBool       `json:"draw,omitempty"`
	DrawBorders  *Edges        `json:"drawBorders,omitempty"`
	GraphicsHint *GraphicsHint `json:"graphicsHint,omitempty"`
	Color1       *Color        `json:"color1,omitempty"`
	Color2       *Color        `json:"color2,omitempty"`
	ColorStyle   *ColorStyle   `json:"colorStyle,omitempty"`
	ColorAlign   *Align        `json:"colorAlign,omitempty"`
	ColorAngle   *float32      `json:"colorAngle,omitempty"`
	Width        *int          `json:"width,omitempty"`
	Rounding     *float32      `json:"rounding,omitempty"`
	Image        image.Image   `json:"-"`
	ImageStyle   *ImageStyle   `json:"imageStyle,omitempty"`
	ImageAlign   *Align        `json:"imageAlign,omitempty"`
}

func (b BorderSpec) isZero() bool {
	return b.Draw == TriInherit && b.DrawBorders == nil && b.GraphicsHint == nil && b.Color1 == nil &&
		b.Color2 == nil && b.ColorStyle == nil && b.ColorAlign == nil && b.ColorAngle == nil &&
		b.Width == nil && b.Rounding == nil && b.Image == nil && b.ImageStyle == nil && b.ImageAlign == nil
}

// ContentSpec holds the content attributes stored for one state.
type ContentSpec struct {
	Draw           TriBool       `json:"draw,omitempty"`
	DrawFocus      TriBool       `json:"drawFocus,omitempty"`
	GraphicsHint   *GraphicsHint `json:"graphicsHint,omitempty"`
	Font           *Font         `json:"font,omitempty"`
	TextColor1     *Color        `json:"textColor1,omitempty"`
	TextColor2     *Color        `json:"textColor2,omitempty"`
	TextColorStyle *ColorStyle   `json:"textColorStyle,omitempty"`
	TextColorAngle *float32      `json:"textColorAngle,omitempty"`
	TextHAlign     *TextAlign    `json:"textHAlign,omitempty"`
	TextVAlign     *TextAlign    `json:"textVAlign,omitempty"`
	ImageHAlign    *TextAlign    `json:"imageHAlign,omitempty"`
	ImageVAlign    *TextAlign    `json:"imageVAlign,omitempty"`
	Padding        *Padding      `json:"padding,omitempty"`
}

func (c ContentSpec) isZero() bool {
	return c.Draw == TriInherit && c.DrawFocus == TriInherit && c.GraphicsHint == nil && c.Font == nil &&
		c.TextColor1 == nil && c.TextColor2 == nil && c.TextColorStyle == nil && c.TextColorAngle == nil &&
		c.TextHAlign == nil && c.TextVAlign == nil && c.ImageHAlign == nil && c.ImageVAlign == nil &&
		c.Padding == nil
}

// BackValues is a Background that answers from stored per-state values,
// then from its parent, then from built-in defaults.
type BackValues struct {
	store[BackSpec]
	parent Background
}

// NewBackValues returns an empty provider. A nil fallback selects
// DefaultFallback when parent is nil; with a parent, a nil fallback means
// unstored states are asked of the parent directly. Pass an empty
// FallbackOrder to disable fallback explicitly.
func NewBackValues(parent Background, fallback FallbackOrder, paint PaintFunc) *BackValues {
	return &BackValues{store: newStore[BackSpec](fallback, parent != nil, paint), parent: parent}
}

// Parent returns the source consulted when nothing is stored.
func (v *BackValues) Parent() Background { return v.parent }

// SetParent replaces the inherit source.
func (v *BackValues) SetParent(parent Background) {
	v.parent = parent
	v.paint.fire()
}

// SetFallback replaces the lookup order; nil behaves as in the constructor.
func (v *BackValues) SetFallback(f FallbackOrder) { v.setFallback(f, v.parent != nil) }

func (v *BackValues) BackDraw(s State) TriBool {
	if d := pickTri(&v.store, s, func(b *BackSpec) TriBool { return b.Draw }); d != TriInherit {
		return d
	}
	if v.parent != nil {
		return v.parent.BackDraw(s)
	}
	return TriInherit
}

func (v *BackValues) BackGraphicsHint(s State) GraphicsHint {
	if h, ok := pick(&v.store, s, func(b *BackSpec) *GraphicsHint { return b.GraphicsHint }); ok {
		return h
	}
	if v.parent != nil {
		return v.parent.BackGraphicsHint(s)
	}
	return HintNone
}

func (v *BackValues) BackColor1(s State) Color {
	if c, ok := pick(&v.store, s, func(b *BackSpec) *Color { return b.Color1 }); ok {
		return c
	}
	if v.parent != nil {
		return v.parent.BackColor1(s)
	}
	return Color{}
}

func (v *BackValues) BackColor2(s State) Color {
	if c, ok := pick(&v.store, s, func(b *BackSpec) *Color { return b.Color2 }); ok {
		return c
	}
	if v.parent != nil {
		return v.parent.BackColor2(s)
	}
	return Color{}
}

func (v *BackValues) BackColorStyle(s State) ColorStyle {
	if cs, ok := pick(&v.store, s, func(b *BackSpec) *ColorStyle { return b.ColorStyle }); ok {
		return cs
	}
	if v.parent != nil {
		return v.parent.BackColorStyle(s)
	}
	return ColorSolid
}

func (v *BackValues) BackColorAlign(s State) Align {
	if a, ok := pick(&v.store, s, func(b *BackSpec) *Align { return b.ColorAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.BackColorAlign(s)
	}
	return AlignLocal
}

func (v *BackValues) BackColorAngle(s State) float32 {
	if a, ok := pick(&v.store, s, func(b *BackSpec) *float32 { return b.ColorAngle }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.BackColorAngle(s)
	}
	return 0
}

func (v *BackValues) BackImage(s State) image.Image {
	if img := pickImage(&v.store, s, func(b *BackSpec) image.Image { return b.Image }); img != nil {
		return img
	}
	if v.parent != nil {
		return v.parent.BackImage(s)
	}
	return nil
}

func (v *BackValues) BackImageStyle(s State) ImageStyle {
	if is, ok := pick(&v.store, s, func(b *BackSpec) *ImageStyle { return b.ImageStyle }); ok {
		return is
	}
	if v.parent != nil {
		return v.parent.BackImageStyle(s)
	}
	return ImageStretch
}

func (v *BackValues) BackImageAlign(s State) Align {
	if a, ok := pick(&v.store, s, func(b *BackSpec) *Align { return b.ImageAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.BackImageAlign(s)
	}
	return AlignLocal
}

// BorderValues is the Border counterpart of BackValues.
type BorderValues struct {
	store[BorderSpec]
	parent Border
}

func NewBorderValues(parent Border, fallback FallbackOrder, paint PaintFunc) *BorderValues {
	return &BorderValues{store: newStore[BorderSpec](fallback, parent != nil, paint), parent: parent}
}

func (v *BorderValues) Parent() Border { return v.parent }

func (v *BorderValues) SetParent(parent Border) {
	v.parent = parent
	v.paint.fire()
}

// SetFallback replaces the lookup order; nil behaves as in the constructor.
func (v *BorderValues) SetFallback(f FallbackOrder) { v.setFallback(f, v.parent != nil) }

func (v *BorderValues) BorderDraw(s State) TriBool {
	if d := pickTri(&v.store, s, func(b *BorderSpec) TriBool { return b.Draw }); d != TriInherit {
		return d
	}
	if v.parent != nil {
		return v.parent.BorderDraw(s)
	}
	return TriInherit
}

func (v *BorderValues) BorderDrawBorders(s State) Edges {
	if e, ok := pick(&v.store, s, func(b *BorderSpec) *Edges { return b.DrawBorders }); ok {
		return e
	}
	if v.parent != nil {
		return v.parent.BorderDrawBorders(s)
	}
	return EdgeAll
}

func (v *BorderValues) BorderGraphicsHint(s State) GraphicsHint {
	if h, ok := pick(&v.store, s, func(b *BorderSpec) *GraphicsHint { return b.GraphicsHint }); ok {
		return h
	}
	if v.parent != nil {
		return v.parent.BorderGraphicsHint(s)
	}
	return HintNone
}

func (v *BorderValues) BorderColor1(s State) Color {
	if c, ok := pick(&v.store, s, func(b *BorderSpec) *Color { return b.Color1 }); ok {
		return c
	}
	if v.parent != nil {
		return v.parent.BorderColor1(s)
	}
	return Color{}
}

func (v *BorderValues) BorderColor2(s State) Color {
	if c, ok := pick(&v.store, s, func(b *BorderSpec) *Color { return b.Color2 }); ok {
		return c
	}
	if v.parent != nil {
		return v.parent.BorderColor2(s)
	}
	return Color{}
}

func (v *BorderValues) BorderColorStyle(s State) ColorStyle {
	if cs, ok := pick(&v.store, s, func(b *BorderSpec) *ColorStyle { return b.ColorStyle }); ok {
		return cs
	}
	if v.parent != nil {
		return v.parent.BorderColorStyle(s)
	}
	return ColorSolid
}

func (v *BorderValues) BorderColorAlign(s State) Align {
	if a, ok := pick(&v.store, s, func(b *BorderSpec) *Align { return b.ColorAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.BorderColorAlign(s)
	}
	return AlignLocal
}

func (v *BorderValues) BorderColorAngle(s State) float32 {
	if a, ok := pick(&v.store, s, func(b *BorderSpec) *float32 { return b.ColorAngle }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.BorderColorAngle(s)
	}
	return 0
}

func (v *BorderValues) BorderWidth(s State) int {
	if w, ok := pick(&v.store, s, func(b *BorderSpec) *int { return b.Width }); ok {
		return w
	}
	if v.parent != nil {
		return v.parent.BorderWidth(s)
	}
	return 1
}

func (v *BorderValues) BorderRounding(s State) float32 {
	if r, ok := pick(&v.store, s, func(b *BorderSpec) *float32 { return b.Rounding }); ok {
		return r
	}
	if v.parent != nil {
		return v.parent.BorderRounding(s)
	}
	return 0
}

func (v *BorderValues) BorderImage(s State) image.Image {
	if img := pickImage(&v.store, s, func(b *BorderSpec) image.Image { return b.Image }); img != nil {
		return img
	}
	if v.parent != nil {
		return v.parent.BorderImage(s)
	}
	return nil
}

func (v *BorderValues) BorderImageStyle(s State) ImageStyle {
	if is, ok := pick(&v.store, s, func(b *BorderSpec) *ImageStyle { return b.ImageStyle }); ok {
		return is
	}
	if v.parent != nil {
		return v.parent.BorderImageStyle(s)
	}
	return ImageStretch
}

func (v *BorderValues) BorderImageAlign(s State) Align {
	if a, ok := pick(&v.store, s, func(b *BorderSpec) *Align { return b.ImageAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.BorderImageAlign(s)
	}
	return AlignLocal
}

// ContentValues is the Content counterpart of BackValues.
type ContentValues struct {
	store[ContentSpec]
	parent Content
}

func NewContentValues(parent Content, fallback FallbackOrder, paint PaintFunc) *ContentValues {
	return &ContentValues{store: newStore[ContentSpec](fallback, parent != nil, paint), parent: parent}
}

func (v *ContentValues) Parent() Content { return v.parent }

func (v *ContentValues) SetParent(parent Content) {
	v.parent = parent
	v.paint.fire()
}

// SetFallback replaces the lookup order; nil behaves as in the constructor.
func (v *ContentValues) SetFallback(f FallbackOrder) { v.setFallback(f, v.parent != nil) }

func (v *ContentValues) ContentDraw(s State) TriBool {
	if d := pickTri(&v.store, s, func(c *ContentSpec) TriBool { return c.Draw }); d != TriInherit {
		return d
	}
	if v.parent != nil {
		return v.parent.ContentDraw(s)
	}
	return TriInherit
}

func (v *ContentValues) ContentDrawFocus(s State) TriBool {
	if d := pickTri(&v.store, s, func(c *ContentSpec) TriBool { return c.DrawFocus }); d != TriInherit {
		return d
	}
	if v.parent != nil {
		return v.parent.ContentDrawFocus(s)
	}
	return TriInherit
}

func (v *ContentValues) ContentGraphicsHint(s State) GraphicsHint {
	if h, ok := pick(&v.store, s, func(c *ContentSpec) *GraphicsHint { return c.GraphicsHint }); ok {
		return h
	}
	if v.parent != nil {
		return v.parent.ContentGraphicsHint(s)
	}
	return HintNone
}

func (v *ContentValues) ContentFont(s State) Font {
	if f, ok := pick(&v.store, s, func(c *ContentSpec) *Font { return c.Font }); ok {
		return f
	}
	if v.parent != nil {
		return v.parent.ContentFont(s)
	}
	return Font{}
}

func (v *ContentValues) ContentTextColor1(s State) Color {
	if col, ok := pick(&v.store, s, func(c *ContentSpec) *Color { return c.TextColor1 }); ok {
		return col
	}
	if v.parent != nil {
		return v.parent.ContentTextColor1(s)
	}
	return Color{}
}

func (v *ContentValues) ContentTextColor2(s State) Color {
	if col, ok := pick(&v.store, s, func(c *ContentSpec) *Color { return c.TextColor2 }); ok {
		return col
	}
	if v.parent != nil {
		return v.parent.ContentTextColor2(s)
	}
	return Color{}
}

func (v *ContentValues) ContentTextColorStyle(s State) ColorStyle {
	if cs, ok := pick(&v.store, s, func(c *ContentSpec) *ColorStyle { return c.TextColorStyle }); ok {
		return cs
	}
	if v.parent != nil {
		return v.parent.ContentTextColorStyle(s)
	}
	return ColorSolid
}

func (v *ContentValues) ContentTextColorAngle(s State) float32 {
	if a, ok := pick(&v.store, s, func(c *ContentSpec) *float32 { return c.TextColorAngle }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.ContentTextColorAngle(s)
	}
	return 0
}

func (v *ContentValues) ContentTextHAlign(s State) TextAlign {
	if a, ok := pick(&v.store, s, func(c *ContentSpec) *TextAlign { return c.TextHAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.ContentTextHAlign(s)
	}
	return AlignNear
}

func (v *ContentValues) ContentTextVAlign(s State) TextAlign {
	if a, ok := pick(&v.store, s, func(c *ContentSpec) *TextAlign { return c.TextVAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.ContentTextVAlign(s)
	}
	return AlignCenter
}

func (v *ContentValues) ContentImageHAlign(s State) TextAlign {
	if a, ok := pick(&v.store, s, func(c *ContentSpec) *TextAlign { return c.ImageHAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.ContentImageHAlign(s)
	}
	return AlignNear
}

func (v *ContentValues) ContentImageVAlign(s State) TextAlign {
	if a, ok := pick(&v.store, s, func(c *ContentSpec) *TextAlign { return c.ImageVAlign }); ok {
		return a
	}
	if v.parent != nil {
		return v.parent.ContentImageVAlign(s)
	}
	return AlignCenter
}

func (v *ContentValues) ContentPadding(s State) Padding {
	if p, ok := pick(&v.store, s, func(c *ContentSpec) *Padding { return c.Padding }); ok {
		return p
	}
	if v.parent != nil {
		return v.parent.ContentPadding(s)
	}
	return Padding{}
}
