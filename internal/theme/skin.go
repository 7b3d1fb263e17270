package theme

import (
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"skinkit/internal/palette"
)

// Skin is a resolved variant. It is the root of every cascade: each style
// category maps to parentless providers walking palette.DefaultFallback, and
// each one stores an explicit draw flag for StateNormal.
//
// A Skin is built fresh by every Resolve call; editing one never leaks into
// another.
type Skin struct {
	Variant Variant
	Mono    bool
	Roles   SemanticRoles

	styles map[palette.Style]*entry
}

type entry struct {
	back    *palette.BackValues
	border  *palette.BorderValues
	content *palette.ContentValues
}

// Background returns the background provider for style. Unknown styles map
// to palette.StyleControl.
func (s *Skin) Background(style palette.Style) palette.Background { return s.entry(style).back }

// Border returns the border provider for style.
func (s *Skin) Border(style palette.Style) palette.Border { return s.entry(style).border }

// Content returns the content provider for style.
func (s *Skin) Content(style palette.Style) palette.Content { return s.entry(style).content }

// BackValues exposes the editable background store for style.
func (s *Skin) BackValues(style palette.Style) *palette.BackValues { return s.entry(style).back }

// BorderValues exposes the editable border store for style.
func (s *Skin) BorderValues(style palette.Style) *palette.BorderValues { return s.entry(style).border }

// ContentValues exposes the editable content store for style.
func (s *Skin) ContentValues(style palette.Style) *palette.ContentValues {
	return s.entry(style).content
}

// Styles lists the categories the skin defines explicitly, sorted.
func (s *Skin) Styles() []palette.Style {
	out := make([]palette.Style, 0, len(s.styles))
	for style := range s.styles {
		out = append(out, style)
	}
	slices.Sort(out)
	return out
}

// IsDefault is always true; a skin is the root others inherit from.
func (s *Skin) IsDefault() bool { return true }

func (s *Skin) entry(style palette.Style) *entry {
	if e, ok := s.styles[style]; ok {
		return e
	}
	return s.styles[palette.StyleControl]
}

func newSkin(variant Variant, r SemanticRoles, mono bool) *Skin {
	s := &Skin{Variant: variant, Mono: mono, Roles: r, styles: map[palette.Style]*entry{}}

	s.styles[palette.StyleControl] = controlEntry(r)
	s.styles[palette.StyleButton] = buttonEntry(r)
	s.styles[palette.StyleHeader] = headerEntry(r)
	s.styles[palette.StylePanel] = panelEntry(r)
	s.styles[palette.StyleInput] = inputEntry(r)
	s.styles[palette.StyleTrackTick] = trackTickEntry(r)
	s.styles[palette.StyleTrackTrack] = trackTrackEntry(r)
	s.styles[palette.StyleTrackPosition] = trackPositionEntry(r)
	s.styles[palette.StyleTreeNode] = treeNodeEntry(r)

	return s
}

func newEntry() *entry {
	return &entry{
		back:    palette.NewBackValues(nil, nil, nil),
		border:  palette.NewBorderValues(nil, nil, nil),
		content: palette.NewContentValues(nil, nil, nil),
	}
}

func color(c palette.Color) *palette.Color { return &c }

// disabledText fades text toward the surface it sits on.
func disabledText(r SemanticRoles) palette.Color { return r.Text.Blend(r.Surface, 0.55) }

// readableOn picks whichever of the text or surface role contrasts more with bg.
func readableOn(bg palette.Color, r SemanticRoles) palette.Color {
	l := lightness(bg)
	if abs(l-lightness(r.Text)) >= abs(l-lightness(r.Surface)) {
		return r.Text
	}
	return r.Surface
}

func lightness(c palette.Color) float64 {
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	return l
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func controlEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{
		Draw:   palette.TriTrue,
		Color1: color(r.Surface),
	})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{
		Draw:   palette.TriFalse,
		Color1: color(r.Border),
	})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:       palette.TriTrue,
		DrawFocus:  palette.TriFalse,
		TextColor1: color(r.Text),
		Padding:    palette.Ptr(palette.Padding{Left: 1, Right: 1}),
	})
	e.content.SetSpec(palette.StateDisabled, palette.ContentSpec{TextColor1: color(disabledText(r))})
	return e
}

func buttonEntry(r SemanticRoles) *entry {
	e := newEntry()
	idle := r.Muted.Blend(r.Surface, 0.35)
	hot := idle.Blend(r.Accent, 0.35)

	e.back.SetSpec(palette.StateNormal, palette.BackSpec{
		Draw:       palette.TriTrue,
		Color1:     color(idle),
		Color2:     color(r.Muted),
		ColorStyle: palette.Ptr(palette.ColorLinear),
		ColorAngle: palette.Ptr(float32(90)),
	})
	e.back.SetSpec(palette.StateDisabled, palette.BackSpec{Color1: color(idle.Gray()), Color2: color(r.Muted.Gray())})
	e.back.SetSpec(palette.StateTracking, palette.BackSpec{Color1: color(hot)})
	e.back.SetSpec(palette.StatePressed, palette.BackSpec{Color1: color(r.Accent), Color2: color(r.Accent.Blend(r.Primary, 0.3))})
	e.back.SetSpec(palette.StateCheckedNormal, palette.BackSpec{Color1: color(r.Accent.Blend(r.Surface, 0.4))})
	e.back.SetSpec(palette.StateCheckedTracking, palette.BackSpec{Color1: color(r.Accent.Blend(r.Surface, 0.2))})

	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{
		Draw:     palette.TriTrue,
		Color1:   color(r.Border),
		Width:    palette.Ptr(1),
		Rounding: palette.Ptr(float32(2)),
	})
	e.border.SetSpec(palette.StateTracking, palette.BorderSpec{Color1: color(r.Accent)})
	e.border.SetSpec(palette.StateFocusOverride, palette.BorderSpec{Color1: color(r.Accent), Width: palette.Ptr(2)})

	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:       palette.TriTrue,
		DrawFocus:  palette.TriFalse,
		TextColor1: color(readableOn(idle, r)),
		TextHAlign: palette.Ptr(palette.AlignCenter),
		Padding:    palette.Ptr(palette.Padding{Left: 2, Right: 2}),
	})
	e.content.SetSpec(palette.StateDisabled, palette.ContentSpec{TextColor1: color(disabledText(r))})
	e.content.SetSpec(palette.StatePressed, palette.ContentSpec{TextColor1: color(readableOn(r.Accent, r))})
	e.content.SetSpec(palette.StateFocusOverride, palette.ContentSpec{DrawFocus: palette.TriTrue})
	return e
}

func headerEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{
		Draw:       palette.TriTrue,
		Color1:     color(r.Primary),
		Color2:     color(r.Primary.Blend(r.Accent, 0.25)),
		ColorStyle: palette.Ptr(palette.ColorSigma),
	})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{
		Draw:        palette.TriTrue,
		DrawBorders: palette.Ptr(palette.EdgeBottom),
		Color1:      color(r.Accent),
	})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:       palette.TriTrue,
		DrawFocus:  palette.TriFalse,
		Font:       &palette.Font{Bold: true},
		TextColor1: color(readableOn(r.Primary, r)),
		Padding:    palette.Ptr(palette.Padding{Left: 1, Right: 1}),
	})
	return e
}

func panelEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{
		Draw:   palette.TriTrue,
		Color1: color(r.Surface.Blend(r.Muted, 0.12)),
	})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{
		Draw:     palette.TriTrue,
		Color1:   color(r.Border),
		Rounding: palette.Ptr(float32(4)),
	})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:       palette.TriTrue,
		DrawFocus:  palette.TriFalse,
		TextColor1: color(r.Text),
		Padding:    palette.Ptr(palette.Pad(1)),
	})
	return e
}

func inputEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{
		Draw:   palette.TriTrue,
		Color1: color(r.Surface),
	})
	e.back.SetSpec(palette.StateDisabled, palette.BackSpec{Color1: color(r.Surface.Blend(r.Muted, 0.4))})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{
		Draw:   palette.TriTrue,
		Color1: color(r.Muted),
	})
	e.border.SetSpec(palette.StateTracking, palette.BorderSpec{Color1: color(r.Border)})
	e.border.SetSpec(palette.StateFocusOverride, palette.BorderSpec{Color1: color(r.Accent)})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:       palette.TriTrue,
		DrawFocus:  palette.TriFalse,
		TextColor1: color(r.Text),
		Padding:    palette.Ptr(palette.Padding{Left: 1, Right: 1}),
	})
	e.content.SetSpec(palette.StateFocusOverride, palette.ContentSpec{DrawFocus: palette.TriTrue})
	return e
}

func trackTickEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{Draw: palette.TriFalse})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{Draw: palette.TriFalse})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:       palette.TriTrue,
		DrawFocus:  palette.TriFalse,
		TextColor1: color(r.Border),
	})
	e.content.SetSpec(palette.StateDisabled, palette.ContentSpec{TextColor1: color(r.Muted)})
	return e
}

func trackTrackEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{
		Draw:   palette.TriTrue,
		Color1: color(r.Muted),
	})
	e.back.SetSpec(palette.StateDisabled, palette.BackSpec{Color1: color(r.Muted.Gray())})
	e.back.SetSpec(palette.StateTracking, palette.BackSpec{Color1: color(r.Muted.Blend(r.Accent, 0.25))})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{Draw: palette.TriFalse})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:      palette.TriFalse,
		DrawFocus: palette.TriFalse,
	})
	return e
}

func trackPositionEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{
		Draw:   palette.TriTrue,
		Color1: color(r.Accent),
	})
	e.back.SetSpec(palette.StateDisabled, palette.BackSpec{Color1: color(r.Accent.Gray().Blend(r.Surface, 0.4))})
	e.back.SetSpec(palette.StateTracking, palette.BackSpec{Color1: color(r.Accent.Blend(r.Text, 0.25))})
	e.back.SetSpec(palette.StatePressed, palette.BackSpec{Color1: color(r.Accent.Blend(r.Primary, 0.35))})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{
		Draw:   palette.TriTrue,
		Color1: color(r.Border),
		Width:  palette.Ptr(1),
	})
	e.border.SetSpec(palette.StateFocusOverride, palette.BorderSpec{Color1: color(r.Text)})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:      palette.TriFalse,
		DrawFocus: palette.TriFalse,
	})
	return e
}

func treeNodeEntry(r SemanticRoles) *entry {
	e := newEntry()
	e.back.SetSpec(palette.StateNormal, palette.BackSpec{Draw: palette.TriFalse})
	e.back.SetSpec(palette.StateTracking, palette.BackSpec{Draw: palette.TriTrue, Color1: color(r.Muted.Blend(r.Surface, 0.5))})
	e.back.SetSpec(palette.StateCheckedNormal, palette.BackSpec{Draw: palette.TriTrue, Color1: color(r.Accent.Blend(r.Surface, 0.5))})
	e.back.SetSpec(palette.StateCheckedTracking, palette.BackSpec{Draw: palette.TriTrue, Color1: color(r.Accent.Blend(r.Surface, 0.3))})
	e.border.SetSpec(palette.StateNormal, palette.BorderSpec{Draw: palette.TriFalse})
	e.content.SetSpec(palette.StateNormal, palette.ContentSpec{
		Draw:       palette.TriTrue,
		DrawFocus:  palette.TriFalse,
		TextColor1: color(r.Text),
		Padding:    palette.Ptr(palette.Padding{Left: 1}),
	})
	e.content.SetSpec(palette.StateDisabled, palette.ContentSpec{TextColor1: color(disabledText(r))})
	e.content.SetSpec(palette.StateFocusOverride, palette.ContentSpec{DrawFocus: palette.TriTrue})
	return e
}
