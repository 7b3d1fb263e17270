package palette

import "image"

// PinBackground answers every query with src's value at state at,
// whatever state is asked. Focus palettes use it to read a theme's
// StateFocusOverride bucket from any drawing state.
func PinBackground(src Background, at State) Background { return pinnedBack{src, at} }

// PinBorder is the Border counterpart of PinBackground.
func PinBorder(src Border, at State) Border { return pinnedBorder{src, at} }

// PinContent is the Content counterpart of PinBackground.
func PinContent(src Content, at State) Content { return pinnedContent{src, at} }

type pinnedBack struct {
	src Background
	at  State
}

func (p pinnedBack) BackDraw(State) TriBool             { return p.src.BackDraw(p.at) }
func (p pinnedBack) BackGraphicsHint(State) GraphicsHint { return p.src.BackGraphicsHint(p.at) }
func (p pinnedBack) BackColor1(State) Color             { return p.src.BackColor1(p.at) }
func (p pinnedBack) BackColor2(State) Color             { return p.src.BackColor2(p.at) }
func (p pinnedBack) BackColorStyle(State) ColorStyle    { return p.src.BackColorStyle(p.at) }
func (p pinnedBack) BackColorAlign(State) Align         { return p.src.BackColorAlign(p.at) }
func (p pinnedBack) BackColorAngle(State) float32       { return p.src.BackColorAngle(p.at) }
func (p pinnedBack) BackImage(State) image.Image        { return p.src.BackImage(p.at) }
func (p pinnedBack) BackImageStyle(State) ImageStyle    { return p.src.BackImageStyle(p.at) }
func (p pinnedBack) BackImageAlign(State) Align         { return p.src.BackImageAlign(p.at) }

type pinnedBorder struct {
	src Border
	at  State
}

func (p pinnedBorder) BorderDraw(State) TriBool              { return p.src.BorderDraw(p.at) }
func (p pinnedBorder) BorderDrawBorders(State) Edges         { return p.src.BorderDrawBorders(p.at) }
func (p pinnedBorder) BorderGraphicsHint(State) GraphicsHint { return p.src.BorderGraphicsHint(p.at) }
func (p pinnedBorder) BorderColor1(State) Color              { return p.src.BorderColor1(p.at) }
func (p pinnedBorder) BorderColor2(State) Color              { return p.src.BorderColor2(p.at) }
func (p pinnedBorder) BorderColorStyle(State) ColorStyle     { return p.src.BorderColorStyle(p.at) }
func (p pinnedBorder) BorderColorAlign(State) Align          { return p.src.BorderColorAlign(p.at) }
func (p pinnedBorder) BorderColorAngle(State) float32        { return p.src.BorderColorAngle(p.at) }
func (p pinnedBorder) BorderWidth(State) int                 { return p.src.BorderWidth(p.at) }
func (p pinnedBorder) BorderRounding(State) float32          { return p.src.BorderRounding(p.at) }
func (p pinnedBorder) BorderImage(State) image.Image         { return p.src.BorderImage(p.at) }
func (p pinnedBorder) BorderImageStyle(State) ImageStyle     { return p.src.BorderImageStyle(p.at) }
func (p pinnedBorder) BorderImageAlign(State) Align          { return p.src.BorderImageAlign(p.at) }

type pinnedContent struct {
	src Content
	at  State
}

func (p pinnedContent) ContentDraw(State) TriBool              { return p.src.ContentDraw(p.at) }
func (p pinnedContent) ContentDrawFocus(State) TriBool         { return p.src.ContentDrawFocus(p.at) }
func (p pinnedContent) ContentGraphicsHint(State) GraphicsHint { return p.src.ContentGraphicsHint(p.at) }
func (p pinnedContent) ContentFont(State) Font                 { return p.src.ContentFont(p.at) }
func (p pinnedContent) ContentTextColor1(State) Color          { return p.src.ContentTextColor1(p.at) }
func (p pinnedContent) ContentTextColor2(State) Color          { return p.src.ContentTextColor2(p.at) }
func (p pinnedContent) ContentTextColorStyle(State) ColorStyle { return p.src.ContentTextColorStyle(p.at) }
func (p pinnedContent) ContentTextColorAngle(State) float32    { return p.src.ContentTextColorAngle(p.at) }
func (p pinnedContent) ContentTextHAlign(State) TextAlign      { return p.src.ContentTextHAlign(p.at) }
func (p pinnedContent) ContentTextVAlign(State) TextAlign      { return p.src.ContentTextVAlign(p.at) }
func (p pinnedContent) ContentImageHAlign(State) TextAlign     { return p.src.ContentImageHAlign(p.at) }
func (p pinnedContent) ContentImageVAlign(State) TextAlign     { return p.src.ContentImageVAlign(p.at) }
func (p pinnedContent) ContentPadding(State) Padding           { return p.src.ContentPadding(p.at) }
