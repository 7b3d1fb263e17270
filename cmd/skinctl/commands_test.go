package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"skinkit/internal/palette"
	"skinkit/internal/persist"
	"skinkit/internal/render"
	"skinkit/internal/theme"
)

func quiet() *log.Logger { return log.NewWithOptions(io.Discard, log.Options{}) }

func TestRunUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := run(nil, &out, quiet()); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
	if !strings.Contains(out.String(), "usage: skinctl") {
		t.Fatalf("output = %q, want usage", out.String())
	}
	if code := run([]string{"paint"}, &out, quiet()); code != 2 {
		t.Fatalf("run(paint) = %d, want 2", code)
	}
}

func TestListPrintsEveryStyle(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := run([]string{"list", "-variant", "ember", "-term", "xterm-direct", "-force-color", "-state", "pressed"}, &out, quiet())
	if code != 0 {
		t.Fatalf("run(list) = %d, output %q", code, out.String())
	}
	text := out.String()
	for _, style := range []palette.Style{palette.StyleControl, palette.StyleButton, palette.StyleTrackPosition, palette.StyleTreeNode} {
		if !strings.Contains(text, string(style)) {
			t.Fatalf("list output missing %s:\n%s", style, text)
		}
	}
	if !strings.Contains(text, "ember at pressed") {
		t.Fatalf("list output missing footer:\n%s", text)
	}
	roles, _ := theme.RolesFor(theme.VariantEmber)
	if !strings.Contains(text, roles.Primary.Hex()) {
		t.Fatalf("list output missing header color %s:\n%s", roles.Primary.Hex(), text)
	}
}

func TestListRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"list", "-variant", "sepia"},
		{"list", "-state", "hovered"},
	} {
		if code := run(args, io.Discard, quiet()); code != 1 {
			t.Fatalf("run(%v) = %d, want 1", args, code)
		}
	}
}

func writeSkin(t *testing.T, doc persist.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skin.json")
	if err := persist.Write(path, doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return path
}

func TestCheck(t *testing.T) {
	t.Parallel()

	good := writeSkin(t, persist.Document{
		Version: persist.Version,
		Elements: []persist.Element{{
			Name: "trackbar.position",
			Back: map[palette.State]palette.BackSpec{palette.StateNormal: {Color1: palette.Ptr(palette.RGB(9, 9, 9))}},
		}},
	})
	var out bytes.Buffer
	if code := run([]string{"check", "-skin", good}, &out, quiet()); code != 0 {
		t.Fatalf("run(check) = %d", code)
	}
	if !strings.Contains(out.String(), "ok, 1 elements, 0 groups") {
		t.Fatalf("output = %q", out.String())
	}

	bad := writeSkin(t, persist.Document{Version: persist.Version, Elements: []persist.Element{{Name: "slider.knob"}}})
	if code := run([]string{"check", "-skin", bad}, io.Discard, quiet()); code != 1 {
		t.Fatalf("run(check bad) = %d, want 1", code)
	}
	if code := run([]string{"check"}, io.Discard, quiet()); code != 1 {
		t.Fatalf("run(check without -skin) = %d, want 1", code)
	}
}

func TestCompactDropsEmptyEntries(t *testing.T) {
	t.Parallel()

	path := writeSkin(t, persist.Document{
		Version: persist.Version,
		Elements: []persist.Element{
			{Name: "trackbar.tick"},
			{
				Name:    "treenode.node",
				Content: map[palette.State]palette.ContentSpec{palette.StateNormal: {Draw: palette.TriTrue}},
			},
		},
		Groups: []persist.Group{{Name: "treenode.focus", Override: true, OverrideState: palette.StateNormal}},
	})

	var out bytes.Buffer
	if code := run([]string{"compact", "-n", "-skin", path}, &out, quiet()); code != 0 {
		t.Fatalf("run(compact -n) = %d", code)
	}
	if !strings.Contains(out.String(), "2 -> 1 elements, 1 -> 0 groups") {
		t.Fatalf("output = %q", out.String())
	}
	doc, err := persist.Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Elements) != 2 {
		t.Fatal("dry run must not rewrite the file")
	}

	if code := run([]string{"compact", "-skin", path}, io.Discard, quiet()); code != 0 {
		t.Fatalf("run(compact) = %d", code)
	}
	doc, err = persist.Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Elements) != 1 || doc.Elements[0].Name != "treenode.node" || len(doc.Groups) != 0 {
		t.Fatalf("compacted = %+v", doc)
	}
}

func newSimViewer(t *testing.T) (*viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 20)

	v, err := newViewer(screen, skinFlags{variant: "office", term: "xterm-direct", forceColor: true})
	if err != nil {
		t.Fatalf("newViewer() error = %v", err)
	}
	return v, screen
}

func TestViewerDrawsResolvedColors(t *testing.T) {
	t.Parallel()

	v, screen := newSimViewer(t)
	v.draw()

	cells, width, _ := screen.GetContents()
	// normal is the second state row; position is the third column.
	row := 2 + 1
	x := labelWidth + 2*cellWidth + 3
	got := cells[row*width+x].Style

	r := render.Flatten(v.set.TrackBar.Position(), palette.StateNormal, v.redirect)
	if want := render.Tcell(r); got != want {
		t.Fatalf("position cell style = %v, want %v", got, want)
	}
	_, bg, _ := got.Decompose()
	if bg == tcell.ColorDefault {
		t.Fatal("position swatch should have a background")
	}
}

func TestViewerKeys(t *testing.T) {
	t.Parallel()

	v, _ := newSimViewer(t)
	if v.handle(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone)) {
		t.Fatal("f should not quit")
	}
	if !v.set.TrackBar.Focused() {
		t.Fatal("f should focus the set")
	}

	before := v.set.TrackBar.Position().Back().BackColor1(palette.StateNormal)
	v.handle(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone))
	if v.variant != theme.VariantMidnight {
		t.Fatalf("variant = %q, want midnight", v.variant)
	}
	if after := v.set.TrackBar.Position().Back().BackColor1(palette.StateNormal); after == before {
		t.Fatal("variant switch should reach the controls through the redirect")
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	} {
		if !v.handle(ev) {
			t.Fatalf("%v should quit", ev.Name())
		}
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	t.Parallel()

	if isTerminal(&bytes.Buffer{}) {
		t.Fatal("a buffer is not a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Fatal("a regular file is not a terminal")
	}
}
