// Package tui is the interactive preview served over SSH: a track bar and a
// tree node drawn from the resolved skin, with keys to walk states, toggle
// focus, switch variants and persist customizations.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween/ease"

	"skinkit/internal/control"
	"skinkit/internal/palette"
	"skinkit/internal/persist"
	"skinkit/internal/render"
	"skinkit/internal/theme"
)

const (
	fadeFrame    = time.Second / 30
	fadeDuration = 0.35
	trackWidth   = 24
)

// Custom colors cycled by the customize key.
var customColors = []string{"coral", "gold", "teal", "orchid"}

type fadeTickMsg struct{}

// Options configure a preview Model.
type Options struct {
	Variant  theme.Variant
	Term     string
	Renderer *lipgloss.Renderer
	Width    int
	Height   int

	// Customizations are restored into the controls on start.
	Customizations persist.Document
	// SkinFile is where the snapshot key writes. Empty disables snapshots.
	SkinFile string

	Logger *log.Logger
	// Resolve defaults to theme.Resolve.
	Resolve func(theme.Variant, string) (*theme.Skin, error)
}

// Model is the bubbletea model of the preview.
type Model struct {
	opts     Options
	logger   *log.Logger
	skins    map[theme.Variant]*theme.Skin
	redirect *palette.Redirect
	header   *palette.Triple
	set      *control.Set

	variant  theme.Variant
	stateIdx int
	checked  bool
	custom   int
	paints   *int

	fade   *render.Fade
	status string
	width  int
	height int
}

// New resolves the starting skin and builds both controls on it.
func New(opts Options) (*Model, error) {
	if opts.Resolve == nil {
		opts.Resolve = theme.Resolve
	}
	if opts.Variant == "" {
		opts.Variant = theme.VariantOffice
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		opts:    opts,
		logger:  logger,
		skins:   make(map[theme.Variant]*theme.Skin),
		variant: opts.Variant,
		paints:  new(int),
		width:   opts.Width,
		height:  opts.Height,
	}
	skin, err := m.skin(opts.Variant)
	if err != nil {
		return nil, err
	}
	if m.redirect, err = palette.NewRedirect(skin); err != nil {
		return nil, err
	}

	paint := palette.PaintFunc(func() { *m.paints++ })
	if m.header, err = palette.NewTriple(m.redirect, palette.StyleHeader, palette.StyleHeader, palette.StyleHeader, nil); err != nil {
		return nil, err
	}
	if m.set, err = control.NewSet(m.redirect, paint); err != nil {
		return nil, err
	}
	if !opts.Customizations.Empty() {
		if err := m.set.Restore(opts.Customizations); err != nil {
			return nil, fmt.Errorf("restore customizations: %w", err)
		}
	}
	return m, nil
}

func (m *Model) skin(v theme.Variant) (*theme.Skin, error) {
	if s, ok := m.skins[v]; ok {
		return s, nil
	}
	s, err := m.opts.Resolve(v, m.opts.Term)
	if err != nil {
		return nil, err
	}
	m.skins[v] = s
	return s, nil
}

// previewStates are the states the preview walks. The focus bucket is only
// reached through the focus override.
func previewStates() []palette.State {
	all := palette.States()
	out := make([]palette.State, 0, len(all))
	for _, s := range all {
		if s != palette.StateFocusOverride {
			out = append(out, s)
		}
	}
	return out
}

// State is the state currently previewed.
func (m *Model) State() palette.State {
	states := previewStates()
	return states[m.stateIdx%len(states)]
}

// Variant is the active skin variant.
func (m *Model) Variant() theme.Variant { return m.variant }

// TrackBar and TreeNode expose the previewed controls.
func (m *Model) TrackBar() *control.TrackBar { return m.set.TrackBar }
func (m *Model) TreeNode() *control.TreeNode { return m.set.TreeNode }

// Paints counts repaint notifications from palette mutations.
func (m *Model) Paints() int { return *m.paints }

// Status is the last status line.
func (m *Model) Status() string { return m.status }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case fadeTickMsg:
		if m.fade == nil {
			return m, nil
		}
		m.fade.Update(float32(fadeFrame.Seconds()))
		if m.fade.Done {
			m.fade = nil
			return m, nil
		}
		return m, fadeTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(previewStates())
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.stateIdx = (m.stateIdx + 1) % n
	case "shift+tab":
		m.stateIdx = (m.stateIdx + n - 1) % n
	case "f":
		m.set.SetFocused(!m.set.TrackBar.Focused())
	case "x":
		m.checked = !m.checked
	case "v":
		return m, m.nextVariant()
	case "c":
		m.customize()
	case "r":
		m.set.Reset()
		m.status = "customizations cleared"
	case "s":
		m.snapshot()
	}
	return m, nil
}

func (m *Model) nextVariant() tea.Cmd {
	variants := theme.Variants()
	next := variants[0]
	for i, v := range variants {
		if v == m.variant {
			next = variants[(i+1)%len(variants)]
			break
		}
	}
	skin, err := m.skin(next)
	if err != nil {
		m.status = err.Error()
		return nil
	}

	state := m.State()
	before := m.set.TrackBar.Position().Back().BackColor1(state)
	if err := m.redirect.SetTarget(skin); err != nil {
		m.status = err.Error()
		return nil
	}
	m.variant = next
	m.status = "variant " + string(next)
	m.logger.Debug("variant switched", "variant", next)

	m.fade = render.NewFade(before, m.set.TrackBar.Position().Back().BackColor1(state), fadeDuration, ease.OutQuad)
	if m.fade.Done {
		m.fade = nil
		return nil
	}
	return fadeTick()
}

func fadeTick() tea.Cmd {
	return tea.Tick(fadeFrame, func(time.Time) tea.Msg { return fadeTickMsg{} })
}

func (m *Model) customize() {
	values, ok := m.set.TrackBar.Common().Position.BackValues()
	if !ok {
		return
	}
	name := customColors[m.custom%len(customColors)]
	m.custom++
	c, err := palette.ParseColor(name)
	if err != nil {
		m.status = err.Error()
		return
	}
	values.Edit(palette.StateNormal, func(sp *palette.BackSpec) { sp.Color1 = &c })
	m.status = "position color " + name
}

func (m *Model) snapshot() {
	if m.opts.SkinFile == "" {
		m.status = "no skin file configured"
		return
	}
	doc := m.set.Capture()
	if err := persist.Write(m.opts.SkinFile, doc); err != nil {
		m.logger.Error("snapshot failed", "path", m.opts.SkinFile, "err", err)
		m.status = "snapshot failed"
		return
	}
	m.status = fmt.Sprintf("saved %d elements", len(doc.Elements))
}

func (m *Model) style(t *palette.Triple, s palette.State) (lipgloss.Style, render.Resolved) {
	r := render.Flatten(t, s, m.redirect)
	return render.Lipgloss(r, m.opts.Renderer), r
}

func (m *Model) View() string {
	state := m.State()
	focus := "off"
	if m.set.TrackBar.Focused() {
		focus = "on"
	}

	header, _ := m.style(m.header, palette.StateNormal)
	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf(" skinkit  %s  state=%s  focus=%s ", m.variant, state, focus)))
	b.WriteString("\n\n")
	b.WriteString(m.viewTrackBar(state))
	b.WriteString("\n\n")
	b.WriteString(m.viewTreeNode(state))
	b.WriteString("\n\n")
	b.WriteString("tab/shift+tab state  f focus  x check  v variant  c color  r reset  s save  q quit")
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	return b.String()
}

func (m *Model) viewTrackBar(state palette.State) string {
	tick, _ := m.style(m.set.TrackBar.Tick(), state)
	track, _ := m.style(m.set.TrackBar.Track(), state)
	position, r := m.style(m.set.TrackBar.Position(), state)
	if m.fade != nil && r.DrawBack {
		position = position.Background(lipgloss.Color(m.fade.Current().Hex()))
	}

	ticks := strings.TrimRight(strings.Repeat("┬   ", trackWidth/4), " ")
	left := trackWidth / 3
	return lipgloss.JoinVertical(lipgloss.Left,
		tick.Render(ticks),
		lipgloss.JoinHorizontal(lipgloss.Center,
			track.Render(strings.Repeat(" ", left)),
			position.Render(" "),
			track.Render(strings.Repeat(" ", trackWidth-left-1)),
		),
	)
}

func (m *Model) viewTreeNode(state palette.State) string {
	s := state
	if m.checked {
		s = palette.Compose(state.Phase(), true, state.IsContext(), state == palette.StateDisabled)
	}
	node, _ := m.style(m.set.TreeNode.Palette(m.checked), s)
	mark := "▸"
	if m.checked {
		mark = "▾"
	}
	return node.Render(mark + " tree node")
}
