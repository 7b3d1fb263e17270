package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"skinkit/internal/palette"
)

// Lipgloss builds a style from r. A nil renderer uses lipgloss's default.
func Lipgloss(r Resolved, renderer *lipgloss.Renderer) lipgloss.Style {
	var st lipgloss.Style
	if renderer != nil {
		st = renderer.NewStyle()
	} else {
		st = lipgloss.NewStyle()
	}

	if r.DrawBack && !r.Back1.IsEmpty() {
		st = st.Background(lipColor(r.Back1))
	}
	if r.DrawContent && !r.Text.IsEmpty() {
		st = st.Foreground(lipColor(r.Text))
	}
	st = st.Bold(r.Font.Bold).Italic(r.Font.Italic).Underline(r.DrawFocus)
	st = st.Padding(r.Padding.Top, r.Padding.Right, r.Padding.Bottom, r.Padding.Left)
	st = st.Align(hAlign(r.HAlign), vAlign(r.VAlign))

	if r.DrawBorder && r.Edges != palette.EdgeNone {
		st = st.Border(borderShape(r),
			r.Edges.Has(palette.EdgeTop), r.Edges.Has(palette.EdgeRight),
			r.Edges.Has(palette.EdgeBottom), r.Edges.Has(palette.EdgeLeft))
		if !r.BorderColor.IsEmpty() {
			st = st.BorderForeground(lipColor(r.BorderColor))
		}
	}
	return st
}

func borderShape(r Resolved) lipgloss.Border {
	switch {
	case r.BorderWidth >= 2:
		return lipgloss.ThickBorder()
	case r.Rounding > 0:
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// lipColor drops alpha; terminals have no blending.
func lipColor(c palette.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func hAlign(a palette.TextAlign) lipgloss.Position {
	switch a {
	case palette.AlignCenter:
		return lipgloss.Center
	case palette.AlignFar:
		return lipgloss.Right
	}
	return lipgloss.Left
}

func vAlign(a palette.TextAlign) lipgloss.Position {
	switch a {
	case palette.AlignCenter:
		return lipgloss.Center
	case palette.AlignFar:
		return lipgloss.Bottom
	}
	return lipgloss.Top
}
