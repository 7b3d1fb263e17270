package palette

import "image"

// Background answers fill attributes per state.
//
// Implementations must answer for every State in States(). Only BackDraw
// may report TriInherit.
type Background interface {
	BackDraw(State) TriBool
	BackGraphicsHint(State) GraphicsHint
	BackColor1(State) Color
	BackColor2(State) Color
	BackColorStyle(State) ColorStyle
	BackColorAlign(State) Align
	BackColorAngle(State) float32
	BackImage(State) image.Image
	BackImageStyle(State) ImageStyle
	BackImageAlign(State) Align
}

// Border answers edge attributes per state.
type Border interface {
	BorderDraw(State) TriBool
	BorderDrawBorders(State) Edges
	BorderGraphicsHint(State) GraphicsHint
	BorderColor1(State) Color
	BorderColor2(State) Color
	BorderColorStyle(State) ColorStyle
	BorderColorAlign(State) Align
	BorderColorAngle(State) float32
	BorderWidth(State) int
	BorderRounding(State) float32
	BorderImage(State) image.Image
	BorderImageStyle(State) ImageStyle
	BorderImageAlign(State) Align
}

// Content answers text and image placement attributes per state.
type Content interface {
	ContentDraw(State) TriBool
	ContentDrawFocus(State) TriBool
	ContentGraphicsHint(State) GraphicsHint
	ContentFont(State) Font
	ContentTextColor1(State) Color
	ContentTextColor2(State) Color
	ContentTextColorStyle(State) ColorStyle
	ContentTextColorAngle(State) float32
	ContentTextHAlign(State) TextAlign
	ContentTextVAlign(State) TextAlign
	ContentImageHAlign(State) TextAlign
	ContentImageVAlign(State) TextAlign
	ContentPadding(State) Padding
}

// Source provides all three contracts.
type Source interface {
	Background
	Border
	Content
}

// Style names a style category within a Theme.
type Style string

const (
	StyleControl       Style = "control"
	StyleButton        Style = "button"
	StyleHeader        Style = "header"
	StylePanel         Style = "panel"
	StyleInput         Style = "input"
	StyleTrackTick     Style = "track-tick"
	StyleTrackTrack    Style = "track-track"
	StyleTrackPosition Style = "track-position"
	StyleTreeNode      Style = "tree-node"
)

// Theme maps style categories to sources. Every Style, known or not,
// must map to a non-nil source.
type Theme interface {
	Background(Style) Background
	Border(Style) Border
	Content(Style) Content
}

// PaintFunc is called after a mutation that can change a resolved value.
type PaintFunc func()

func (f PaintFunc) fire() {
	if f != nil {
		f()
	}
}

// Defaulter reports whether a node differs from what plain inheritance yields.
type Defaulter interface {
	IsDefault() bool
}

// IsDefault reports whether v is default. Values that do not implement
// Defaulter own nothing and count as default.
func IsDefault(v any) bool {
	if d, ok := v.(Defaulter); ok {
		return d.IsDefault()
	}
	return true
}

// AllDefault is the logical AND of IsDefault over children.
func AllDefault(children ...any) bool {
	for _, c := range children {
		if !IsDefault(c) {
			return false
		}
	}
	return true
}
