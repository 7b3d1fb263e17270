package palette

// Triple is the complete appearance of one paintable element: one
// Background, one Border and one Content source. Each part is swappable
// on its own. Nothing is cached; every query walks the cascade.
type Triple struct {
	back    Background
	border  Border
	content Content
	paint   PaintFunc
}

// NewTriple builds a Triple whose parts are value providers inheriting from
// theme, bound to the given style categories. theme is usually a *Redirect.
func NewTriple(theme Theme, back, border, content Style, paint PaintFunc) (*Triple, error) {
	if theme == nil {
		return nil, ErrNilSource
	}
	return &Triple{
		back:    NewBackValues(BindBackground(theme, back), nil, paint),
		border:  NewBorderValues(BindBorder(theme, border), nil, paint),
		content: NewContentValues(BindContent(theme, content), nil, paint),
		paint:   paint,
	}, nil
}

// NewTripleFrom assembles a Triple from existing sources.
func NewTripleFrom(back Background, border Border, content Content) (*Triple, error) {
	if back == nil || border == nil || content == nil {
		return nil, ErrNilSource
	}
	return &Triple{back: back, border: border, content: content}, nil
}

func (t *Triple) Back() Background { return t.back }
func (t *Triple) Border() Border   { return t.border }
func (t *Triple) Content() Content { return t.content }

// SetBack swaps the background part.
func (t *Triple) SetBack(b Background) error {
	if b == nil {
		return ErrNilSource
	}
	t.back = b
	t.paint.fire()
	return nil
}

// SetBorder swaps the border part.
func (t *Triple) SetBorder(b Border) error {
	if b == nil {
		return ErrNilSource
	}
	t.border = b
	t.paint.fire()
	return nil
}

// SetContent swaps the content part.
func (t *Triple) SetContent(c Content) error {
	if c == nil {
		return ErrNilSource
	}
	t.content = c
	t.paint.fire()
	return nil
}

// SetPaint replaces the callback used by Triple setters.
func (t *Triple) SetPaint(paint PaintFunc) { t.paint = paint }

// BackValues returns the background part when it is a value provider.
func (t *Triple) BackValues() (*BackValues, bool) {
	v, ok := t.back.(*BackValues)
	return v, ok
}

// BorderValues returns the border part when it is a value provider.
func (t *Triple) BorderValues() (*BorderValues, bool) {
	v, ok := t.border.(*BorderValues)
	return v, ok
}

// ContentValues returns the content part when it is a value provider.
func (t *Triple) ContentValues() (*ContentValues, bool) {
	v, ok := t.content.(*ContentValues)
	return v, ok
}

// IsDefault is true when every part is default.
func (t *Triple) IsDefault() bool {
	return AllDefault(t.back, t.border, t.content)
}

// Reset clears stored values in every part that is a value provider.
func (t *Triple) Reset() {
	if v, ok := t.BackValues(); ok {
		v.Reset()
	}
	if v, ok := t.BorderValues(); ok {
		v.Reset()
	}
	if v, ok := t.ContentValues(); ok {
		v.Reset()
	}
}
