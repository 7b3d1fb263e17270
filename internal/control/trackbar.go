// Package control assembles the element palettes of composite controls.
//
// Each control owns customizable Triples inheriting from a theme (usually a
// *palette.Redirect), a parallel set of focus Triples read from the theme's
// focus-override bucket, and one OverrideGroup that swaps every part to its
// focus look at once.
package control

import (
	"skinkit/internal/palette"
)

// Parts is the tick/track/position set of a track bar.
type Parts struct {
	Tick     *palette.Triple
	Track    *palette.Triple
	Position *palette.Triple
}

func newParts(theme palette.Theme, paint palette.PaintFunc) (Parts, error) {
	tick, err := palette.NewTriple(theme, palette.StyleTrackTick, palette.StyleTrackTick, palette.StyleTrackTick, paint)
	if err != nil {
		return Parts{}, err
	}
	track, err := palette.NewTriple(theme, palette.StyleTrackTrack, palette.StyleTrackTrack, palette.StyleTrackTrack, paint)
	if err != nil {
		return Parts{}, err
	}
	position, err := palette.NewTriple(theme, palette.StyleTrackPosition, palette.StyleTrackPosition, palette.StyleTrackPosition, paint)
	if err != nil {
		return Parts{}, err
	}
	return Parts{Tick: tick, Track: track, Position: position}, nil
}

// IsDefault reports whether no part stores a value.
func (p Parts) IsDefault() bool { return palette.AllDefault(p.Tick, p.Track, p.Position) }

// Reset clears every stored value.
func (p Parts) Reset() {
	p.Tick.Reset()
	p.Track.Reset()
	p.Position.Reset()
}

// TrackBar holds the palettes of a slider.
type TrackBar struct {
	common Parts
	focus  Parts
	group  *palette.OverrideGroup

	tick     *palette.TripleOverride
	track    *palette.TripleOverride
	position *palette.TripleOverride
}

// NewTrackBar builds a track bar bound to theme. paint fires on every
// mutation of its palettes or override flags.
func NewTrackBar(theme palette.Theme, paint palette.PaintFunc) (*TrackBar, error) {
	if theme == nil {
		return nil, palette.ErrNilSource
	}
	common, err := newParts(theme, paint)
	if err != nil {
		return nil, err
	}
	focus, err := newFocusParts(theme, paint)
	if err != nil {
		return nil, err
	}

	t := &TrackBar{common: common, focus: focus, group: palette.NewOverrideGroup(palette.StateNormal, paint)}
	if t.tick, err = palette.NewTripleOverride(t.group, common.Tick, focus.Tick); err != nil {
		return nil, err
	}
	if t.track, err = palette.NewTripleOverride(t.group, common.Track, focus.Track); err != nil {
		return nil, err
	}
	if t.position, err = palette.NewTripleOverride(t.group, common.Position, focus.Position); err != nil {
		return nil, err
	}
	return t, nil
}

func newFocusParts(theme palette.Theme, paint palette.PaintFunc) (Parts, error) {
	tick, err := focusTriple(theme, palette.StyleTrackTick, paint)
	if err != nil {
		return Parts{}, err
	}
	track, err := focusTriple(theme, palette.StyleTrackTrack, paint)
	if err != nil {
		return Parts{}, err
	}
	position, err := focusTriple(theme, palette.StyleTrackPosition, paint)
	if err != nil {
		return Parts{}, err
	}
	return Parts{Tick: tick, Track: track, Position: position}, nil
}

// focusTriple builds value providers whose parent is the theme's
// focus-override bucket for style, whatever state is queried. Stored focus
// values walk the default order, so a value stored for Normal covers every
// state.
func focusTriple(theme palette.Theme, style palette.Style, paint palette.PaintFunc) (*palette.Triple, error) {
	order := palette.DefaultFallback()
	back := palette.NewBackValues(palette.PinBackground(palette.BindBackground(theme, style), palette.StateFocusOverride), order, paint)
	border := palette.NewBorderValues(palette.PinBorder(palette.BindBorder(theme, style), palette.StateFocusOverride), order, paint)
	content := palette.NewContentValues(palette.PinContent(palette.BindContent(theme, style), palette.StateFocusOverride), order, paint)
	triple, err := palette.NewTripleFrom(back, border, content)
	if err != nil {
		return nil, err
	}
	triple.SetPaint(paint)
	return triple, nil
}

// Tick, Track and Position return the resolved palettes a renderer reads.
func (t *TrackBar) Tick() *palette.Triple     { return t.tick.Triple() }
func (t *TrackBar) Track() *palette.Triple    { return t.track.Triple() }
func (t *TrackBar) Position() *palette.Triple { return t.position.Triple() }

// Common returns the customizable palettes used outside focus.
func (t *TrackBar) Common() Parts { return t.common }

// Focus returns the customizable palettes used while focused.
func (t *TrackBar) Focus() Parts { return t.focus }

// Group returns the override flags shared by all three parts.
func (t *TrackBar) Group() *palette.OverrideGroup { return t.group }

// SetFocused turns the focus look on or off for every part.
func (t *TrackBar) SetFocused(focused bool) { t.group.SetApply(focused) }

// Focused reports whether the focus look is applied.
func (t *TrackBar) Focused() bool { return t.group.Apply() }

// SetFocusState selects the drawing state the focus look replaces.
func (t *TrackBar) SetFocusState(s palette.State) { t.group.SetOverrideState(s) }

// Triples names every customizable palette, for persistence.
func (t *TrackBar) Triples() map[string]*palette.Triple {
	return map[string]*palette.Triple{
		"tick":           t.common.Tick,
		"track":          t.common.Track,
		"position":       t.common.Position,
		"focus.tick":     t.focus.Tick,
		"focus.track":    t.focus.Track,
		"focus.position": t.focus.Position,
	}
}

// Groups names the override groups, for persistence.
func (t *TrackBar) Groups() map[string]*palette.OverrideGroup {
	return map[string]*palette.OverrideGroup{"focus": t.group}
}

// IsDefault reports whether nothing is customized and no applied focus
// override changes how a part looks.
func (t *TrackBar) IsDefault() bool {
	return t.common.IsDefault() && t.focus.IsDefault() && palette.AllDefault(t.tick, t.track, t.position)
}

// Reset clears every customization.
func (t *TrackBar) Reset() {
	t.common.Reset()
	t.focus.Reset()
}
