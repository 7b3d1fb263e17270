// Package palette resolves per-state paint attributes for visual elements.
//
// A renderer asks a [Triple] (or any [Background], [Border] or [Content]
// source) for an attribute at a [State]. The query may pass through
// [Redirect] and override layers before it reaches a value provider that
// answers with a stored value, asks its parent, or reports a default.
//
// Integration example:
//
//	redirect, err := palette.NewRedirect(skin)
//	if err != nil {
//		return err
//	}
//	button, err := palette.NewTriple(redirect, palette.StyleButton, palette.StyleButton, palette.StyleButton, repaint)
//	if err != nil {
//		return err
//	}
//	fill := button.Back().BackColor1(palette.StatePressed)
//
//	// Later, a global skin change reaches every element built over redirect.
//	_ = redirect.SetTarget(otherSkin)
//
// Everything in this package assumes a single owning goroutine, typically
// the one that drives rendering. No type here is safe for concurrent use.
package palette

import "errors"

var (
	// ErrNilSource is returned when a constructor or setter receives a nil source.
	ErrNilSource = errors.New("palette: nil source")
	// ErrRedirectCycle is returned when a redirect would forward to itself.
	ErrRedirectCycle = errors.New("palette: redirect cycle")
	// ErrUnknownState is returned when a state name cannot be parsed.
	ErrUnknownState = errors.New("palette: unknown state")
)
