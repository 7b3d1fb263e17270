package main

import (
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"

	"skinkit/internal/control"
	"skinkit/internal/palette"
	"skinkit/internal/render"
	"skinkit/internal/theme"
)

const (
	labelWidth = 26
	cellWidth  = 10
)

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var sf skinFlags
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v, err := newViewer(screen, sf)
	if err != nil {
		return err
	}
	for {
		v.draw()
		ev := screen.PollEvent()
		if ev == nil || v.handle(ev) {
			return nil
		}
	}
}

// viewer draws every state of the control set in a grid on a tcell screen.
type viewer struct {
	screen   tcell.Screen
	flags    skinFlags
	variant  theme.Variant
	redirect *palette.Redirect
	set      *control.Set
}

func newViewer(screen tcell.Screen, flags skinFlags) (*viewer, error) {
	skin, err := flags.resolve()
	if err != nil {
		return nil, err
	}
	redirect, err := palette.NewRedirect(skin)
	if err != nil {
		return nil, err
	}
	set, err := control.NewSet(redirect, nil)
	if err != nil {
		return nil, err
	}
	return &viewer{screen: screen, flags: flags, variant: skin.Variant, redirect: redirect, set: set}, nil
}

func (v *viewer) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true
		case ev.Rune() == 'f':
			v.set.SetFocused(!v.set.TrackBar.Focused())
		case ev.Rune() == 'v':
			v.nextVariant()
		}
	}
	return false
}

func (v *viewer) nextVariant() {
	variants := theme.Variants()
	for i, candidate := range variants {
		if candidate != v.variant {
			continue
		}
		flags := v.flags
		flags.variant = string(variants[(i+1)%len(variants)])
		skin, err := flags.resolve()
		if err != nil {
			return
		}
		if err := v.redirect.SetTarget(skin); err != nil {
			return
		}
		v.variant = skin.Variant
		return
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	header := string(v.variant) + "  f focus  v variant  q quit"
	drawText(v.screen, 0, 0, header, tcell.StyleDefault.Bold(true))
	drawText(v.screen, labelWidth, 1, "tick      track     position  node      checked", tcell.StyleDefault)

	y := 2
	for _, s := range palette.States() {
		if s == palette.StateFocusOverride {
			continue
		}
		drawText(v.screen, 0, y, s.String(), tcell.StyleDefault)
		x := labelWidth
		for _, t := range []*palette.Triple{
			v.set.TrackBar.Tick(),
			v.set.TrackBar.Track(),
			v.set.TrackBar.Position(),
			v.set.TreeNode.Palette(false),
			v.set.TreeNode.Palette(true),
		} {
			v.drawCell(x, y, t, s)
			x += cellWidth
		}
		y++
	}
	v.screen.Show()
}

// drawCell fills one swatch; the border color, when drawn, marks the last
// column.
func (v *viewer) drawCell(x, y int, t *palette.Triple, s palette.State) {
	r := render.Flatten(t, s, v.redirect)
	style := render.Tcell(r)
	for i := 0; i < cellWidth-2; i++ {
		v.screen.SetContent(x+i, y, ' ', nil, style)
	}
	if r.DrawBorder {
		v.screen.SetContent(x+cellWidth-2, y, '▌', nil, render.TcellBorder(r))
	}
	if r.DrawContent {
		v.screen.SetContent(x+1, y, 'A', nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
