package render

import (
	"github.com/gdamore/tcell/v2"

	"skinkit/internal/palette"
)

// Tcell builds a cell style from r. Borders and padding are layout and are
// left to the caller.
func Tcell(r Resolved) tcell.Style {
	st := tcell.StyleDefault
	if r.DrawBack && !r.Back1.IsEmpty() {
		st = st.Background(tcellColor(r.Back1))
	}
	if r.DrawContent && !r.Text.IsEmpty() {
		st = st.Foreground(tcellColor(r.Text))
	}
	return st.Bold(r.Font.Bold).Italic(r.Font.Italic)
}

// TcellBorder is the style of border cells, foreground only.
func TcellBorder(r Resolved) tcell.Style {
	if !r.DrawBorder || r.BorderColor.IsEmpty() {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcellColor(r.BorderColor))
}

func tcellColor(c palette.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
