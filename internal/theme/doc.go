// Package theme resolves variant skins that serve as the root of every
// palette cascade.
//
// Integration example:
//
//	term := os.Getenv("TERM")
//	skin, err := theme.Resolve(theme.VariantOffice, term)
//	if err != nil {
//		return err
//	}
//	redirect, err := palette.NewRedirect(skin)
//	if err != nil {
//		return err
//	}
//	button, _ := palette.NewTriple(redirect, palette.StyleButton, palette.StyleButton, palette.StyleButton, repaint)
//	fill := button.Back().BackColor1(palette.StateTracking)
//
// A Skin answers every style category with root providers whose draw flags
// are explicit, so no resolution chain rooted in a Skin ends in TriInherit.
package theme
