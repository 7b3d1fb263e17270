// Package render turns a Triple at a State into renderer styles. It never
// rasterizes; it only flattens resolved values for lipgloss and tcell.
package render

import "skinkit/internal/palette"

// Resolved is every value a terminal renderer reads from one Triple at one
// State, with draw flags already settled.
type Resolved struct {
	State palette.State

	DrawBack    bool
	Back1       palette.Color
	Back2       palette.Color
	BackStyle   palette.ColorStyle
	DrawBorder  bool
	Edges       palette.Edges
	BorderColor palette.Color
	BorderWidth int
	Rounding    float32
	DrawContent bool
	DrawFocus   bool
	Text        palette.Color
	Font        palette.Font
	HAlign      palette.TextAlign
	VAlign      palette.TextAlign
	Padding     palette.Padding
}

// Flatten queries t at s. A draw flag left at TriInherit asks host's
// control style at s, and counts as false if that is Inherit too.
func Flatten(t *palette.Triple, s palette.State, host palette.Theme) Resolved {
	back, border, content := t.Back(), t.Border(), t.Content()

	r := Resolved{
		State:       s,
		DrawBack:    settle(back.BackDraw(s), func() palette.TriBool { return hostBack(host, s) }),
		Back1:       back.BackColor1(s),
		Back2:       back.BackColor2(s),
		BackStyle:   back.BackColorStyle(s),
		DrawBorder:  settle(border.BorderDraw(s), func() palette.TriBool { return hostBorder(host, s) }),
		Edges:       border.BorderDrawBorders(s),
		BorderColor: border.BorderColor1(s),
		BorderWidth: border.BorderWidth(s),
		Rounding:    border.BorderRounding(s),
		DrawContent: settle(content.ContentDraw(s), func() palette.TriBool { return hostContent(host, s) }),
		DrawFocus:   settle(content.ContentDrawFocus(s), func() palette.TriBool { return hostFocus(host, s) }),
		Text:        content.ContentTextColor1(s),
		Font:        content.ContentFont(s),
		HAlign:      content.ContentTextHAlign(s),
		VAlign:      content.ContentTextVAlign(s),
		Padding:     content.ContentPadding(s),
	}
	return r
}

func settle(v palette.TriBool, host func() palette.TriBool) bool {
	if b, ok := v.Bool(); ok {
		return b
	}
	b, _ := host().Bool()
	return b
}

func hostBack(host palette.Theme, s palette.State) palette.TriBool {
	if host == nil {
		return palette.TriInherit
	}
	return host.Background(palette.StyleControl).BackDraw(s)
}

func hostBorder(host palette.Theme, s palette.State) palette.TriBool {
	if host == nil {
		return palette.TriInherit
	}
	return host.Border(palette.StyleControl).BorderDraw(s)
}

func hostContent(host palette.Theme, s palette.State) palette.TriBool {
	if host == nil {
		return palette.TriInherit
	}
	return host.Content(palette.StyleControl).ContentDraw(s)
}

func hostFocus(host palette.Theme, s palette.State) palette.TriBool {
	if host == nil {
		return palette.TriInherit
	}
	return host.Content(palette.StyleControl).ContentDrawFocus(s)
}
