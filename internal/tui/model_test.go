package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"skinkit/internal/palette"
	"skinkit/internal/persist"
	"skinkit/internal/theme"
)

func truecolor(string) theme.TermProfile {
	return theme.TermProfile{TrueColor: true, Colors: 1 << 24, IsTTY: true}
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	opts.Resolve = func(v theme.Variant, term string) (*theme.Skin, error) {
		return theme.ResolveWithDetector(v, theme.ResolveOptions{Term: term}, truecolor)
	}
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func TestNewDefaultsToOffice(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	if m.Variant() != theme.VariantOffice {
		t.Fatalf("Variant() = %q, want office", m.Variant())
	}
	if m.State() != palette.StateDisabled {
		t.Fatalf("State() = %v, want first preview state", m.State())
	}
	if m.Init() != nil {
		t.Fatal("Init() should not schedule commands")
	}
}

func TestStateCyclingSkipsFocusBucket(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	seen := map[palette.State]bool{}
	for i := 0; i < len(palette.States()); i++ {
		seen[m.State()] = true
		press(m, "tab")
	}
	if seen[palette.StateFocusOverride] {
		t.Fatal("focus override should never be previewed directly")
	}
	if len(seen) != len(palette.States())-1 {
		t.Fatalf("visited %d states, want %d", len(seen), len(palette.States())-1)
	}

	m = newTestModel(t, Options{})
	press(m, "shift+tab")
	if m.State() != palette.StateContextCheckedPressed {
		t.Fatalf("State() after shift+tab = %v, want context-checked-pressed", m.State())
	}
}

func TestFocusKeySwitchesBothControls(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	press(m, "f")
	if !m.TrackBar().Focused() || !m.TreeNode().Group().Apply() {
		t.Fatal("focus key should apply both override groups")
	}
	press(m, "f")
	if m.TrackBar().Focused() || m.TreeNode().Group().Apply() {
		t.Fatal("second press should clear focus")
	}
}

func TestVariantKeyRetargetsAndFades(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Variant: theme.VariantOffice})
	press(m, "tab") // normal
	before := m.TrackBar().Position().Back().BackColor1(palette.StateNormal)

	cmd := press(m, "v")
	if m.Variant() != theme.VariantMidnight {
		t.Fatalf("Variant() = %q, want midnight", m.Variant())
	}
	after := m.TrackBar().Position().Back().BackColor1(palette.StateNormal)
	roles, _ := theme.RolesFor(theme.VariantMidnight)
	if after != roles.Accent {
		t.Fatalf("position color = %v, want midnight accent %v", after, roles.Accent)
	}
	if before != after {
		if cmd == nil || m.fade == nil {
			t.Fatal("expected a fade between differing colors")
		}
		for i := 0; i < 60 && m.fade != nil; i++ {
			m.Update(fadeTickMsg{})
		}
		if m.fade != nil {
			t.Fatal("fade never finished")
		}
	}

	for range theme.Variants() {
		press(m, "v")
	}
	if m.Variant() != theme.VariantMidnight {
		t.Fatalf("Variant() after a full cycle = %q, want midnight", m.Variant())
	}
}

func TestCustomizeAndReset(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	press(m, "c")
	want := palette.MustColor("coral")
	if got := m.TrackBar().Position().Back().BackColor1(palette.StateNormal); got != want {
		t.Fatalf("customized position = %v, want %v", got, want)
	}
	if m.Paints() == 0 {
		t.Fatal("customizing should request a repaint")
	}

	press(m, "v")
	if got := m.TrackBar().Position().Back().BackColor1(palette.StateNormal); got != want {
		t.Fatalf("customization lost on variant switch: %v", got)
	}

	press(m, "r")
	if !m.TrackBar().IsDefault() {
		t.Fatal("reset should clear stored values")
	}
	if m.Status() != "customizations cleared" {
		t.Fatalf("Status() = %q", m.Status())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "skin.json")
	m := newTestModel(t, Options{SkinFile: path})
	press(m, "c", "s")
	if m.Status() != "saved 1 elements" {
		t.Fatalf("Status() = %q, want saved 1 elements", m.Status())
	}

	doc, err := persist.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	restored := newTestModel(t, Options{Customizations: doc})
	if got, want := restored.TrackBar().Position().Back().BackColor1(palette.StateNormal), palette.MustColor("coral"); got != want {
		t.Fatalf("restored position = %v, want %v", got, want)
	}
}

func TestSnapshotWithoutFile(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	press(m, "s")
	if m.Status() != "no skin file configured" {
		t.Fatalf("Status() = %q", m.Status())
	}
}

func TestRestoreRejectsUnknownElements(t *testing.T) {
	t.Parallel()

	doc := persist.Document{Version: persist.Version, Elements: []persist.Element{{Name: "slider.knob"}}}
	_, err := New(Options{Customizations: doc, Logger: log.NewWithOptions(io.Discard, log.Options{})})
	if err == nil {
		t.Fatal("New() expected error for unknown element")
	}
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	for _, k := range []string{"q", "ctrl+c"} {
		cmd := press(m, k)
		if cmd == nil {
			t.Fatalf("%s returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s did not quit", k)
		}
	}
}

func TestViewShowsVariantAndState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{Variant: theme.VariantEmber})
	press(m, "tab", "tab")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"ember", "state=tracking", "focus=off", "tree node"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}

	press(m, "x", "f")
	view = m.View()
	if !strings.Contains(view, "focus=on") || !strings.Contains(view, "▾") {
		t.Fatalf("View() after check+focus:\n%s", view)
	}
}
