package palette

import "image"

// maxRedirectHops bounds the cycle walk through foreign forwarding types.
const maxRedirectHops = 1024

// Redirect forwards every Theme query to a swappable target. Repointing one
// Redirect re-themes every element built over it.
//
// A Redirect owns no values; the target is borrowed and may be shared.
type Redirect struct {
	target Theme
	subs   map[int]func()
	nextID int
}

// NewRedirect returns a Redirect pointing at target.
func NewRedirect(target Theme) (*Redirect, error) {
	if target == nil {
		return nil, ErrNilSource
	}
	return &Redirect{target: target}, nil
}

// Target returns the current target.
func (r *Redirect) Target() Theme { return r.target }

// SetTarget repoints the redirect and notifies subscribers. The new target is
// seen by the next query.
func (r *Redirect) SetTarget(target Theme) error {
	if target == nil {
		return ErrNilSource
	}
	if r.reaches(target) {
		return ErrRedirectCycle
	}
	r.target = target
	for _, fn := range r.subs {
		fn()
	}
	return nil
}

func (r *Redirect) reaches(target Theme) bool {
	cur := target
	for hops := 0; cur != nil; hops++ {
		if hops > maxRedirectHops {
			return true
		}
		if other, ok := cur.(*Redirect); ok && other == r {
			return true
		}
		fwd, ok := cur.(interface{ Target() Theme })
		if !ok {
			return false
		}
		cur = fwd.Target()
	}
	return false
}

// Subscribe registers fn to run after every successful SetTarget.
func (r *Redirect) Subscribe(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	if r.subs == nil {
		r.subs = make(map[int]func())
	}
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

func (r *Redirect) Background(s Style) Background { return r.target.Background(s) }
func (r *Redirect) Border(s Style) Border         { return r.target.Border(s) }
func (r *Redirect) Content(s Style) Content       { return r.target.Content(s) }

// IsDefault is always true: a Redirect stores nothing of its own.
func (r *Redirect) IsDefault() bool { return true }

// SourceTheme adapts one Source into a Theme answering every style with it.
func SourceTheme(src Source) Theme { return sourceTheme{src} }

type sourceTheme struct{ src Source }

func (t sourceTheme) Background(Style) Background { return t.src }
func (t sourceTheme) Border(Style) Border         { return t.src }
func (t sourceTheme) Content(Style) Content       { return t.src }

// BindBackground returns a Background that resolves theme.Background(style)
// on every query, so retargeting a Redirect theme is seen immediately.
func BindBackground(theme Theme, style Style) Background { return backBinding{theme, style} }

// BindBorder is the Border counterpart of BindBackground.
func BindBorder(theme Theme, style Style) Border { return borderBinding{theme, style} }

// BindContent is the Content counterpart of BindBackground.
func BindContent(theme Theme, style Style) Content { return contentBinding{theme, style} }

type backBinding struct {
	theme Theme
	style Style
}

func (b backBinding) src() Background                      { return b.theme.Background(b.style) }
func (b backBinding) BackDraw(s State) TriBool             { return b.src().BackDraw(s) }
func (b backBinding) BackGraphicsHint(s State) GraphicsHint { return b.src().BackGraphicsHint(s) }
func (b backBinding) BackColor1(s State) Color             { return b.src().BackColor1(s) }
func (b backBinding) BackColor2(s State) Color             { return b.src().BackColor2(s) }
func (b backBinding) BackColorStyle(s State) ColorStyle    { return b.src().BackColorStyle(s) }
func (b backBinding) BackColorAlign(s State) Align         { return b.src().BackColorAlign(s) }
func (b backBinding) BackColorAngle(s State) float32       { return b.src().BackColorAngle(s) }
func (b backBinding) BackImage(s State) image.Image        { return b.src().BackImage(s) }
func (b backBinding) BackImageStyle(s State) ImageStyle    { return b.src().BackImageStyle(s) }
func (b backBinding) BackImageAlign(s State) Align         { return b.src().BackImageAlign(s) }

type borderBinding struct {
	theme Theme
	style Style
}

func (b borderBinding) src() Border                           { return b.theme.Border(b.style) }
func (b borderBinding) BorderDraw(s State) TriBool            { return b.src().BorderDraw(s) }
func (b borderBinding) BorderDrawBorders(s State) Edges       { return b.src().BorderDrawBorders(s) }
func (b borderBinding) BorderGraphicsHint(s State) GraphicsHint { return b.src().BorderGraphicsHint(s) }
func (b borderBinding) BorderColor1(s State) Color            { return b.src().BorderColor1(s) }
func (b borderBinding) BorderColor2(s State) Color            { return b.src().BorderColor2(s) }
func (b borderBinding) BorderColorStyle(s State) ColorStyle   { return b.src().BorderColorStyle(s) }
func (b borderBinding) BorderColorAlign(s State) Align        { return b.src().BorderColorAlign(s) }
func (b borderBinding) BorderColorAngle(s State) float32      { return b.src().BorderColorAngle(s) }
func (b borderBinding) BorderWidth(s State) int               { return b.src().BorderWidth(s) }
func (b borderBinding) BorderRounding(s State) float32        { return b.src().BorderRounding(s) }
func (b borderBinding) BorderImage(s State) image.Image       { return b.src().BorderImage(s) }
func (b borderBinding) BorderImageStyle(s State) ImageStyle   { return b.src().BorderImageStyle(s) }
func (b borderBinding) BorderImageAlign(s State) Align        { return b.src().BorderImageAlign(s) }

type contentBinding struct {
	theme Theme
	style Style
}

func (b contentBinding) src() Content                            { return b.theme.Content(b.style) }
func (b contentBinding) ContentDraw(s State) TriBool             { return b.src().ContentDraw(s) }
func (b contentBinding) ContentDrawFocus(s State) TriBool        { return b.src().ContentDrawFocus(s) }
func (b contentBinding) ContentGraphicsHint(s State) GraphicsHint { return b.src().ContentGraphicsHint(s) }
func (b contentBinding) ContentFont(s State) Font                { return b.src().ContentFont(s) }
func (b contentBinding) ContentTextColor1(s State) Color         { return b.src().ContentTextColor1(s) }
func (b contentBinding) ContentTextColor2(s State) Color         { return b.src().ContentTextColor2(s) }
func (b contentBinding) ContentTextColorStyle(s State) ColorStyle {
	return b.src().ContentTextColorStyle(s)
}
func (b contentBinding) ContentTextColorAngle(s State) float32 { return b.src().ContentTextColorAngle(s) }
func (b contentBinding) ContentTextHAlign(s State) TextAlign   { return b.src().ContentTextHAlign(s) }
func (b contentBinding) ContentTextVAlign(s State) TextAlign   { return b.src().ContentTextVAlign(s) }
func (b contentBinding) ContentImageHAlign(s State) TextAlign  { return b.src().ContentImageHAlign(s) }
func (b contentBinding) ContentImageVAlign(s State) TextAlign  { return b.src().ContentImageVAlign(s) }
func (b contentBinding) ContentPadding(s State) Padding        { return b.src().ContentPadding(s) }
