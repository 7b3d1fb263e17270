package control

import "skinkit/internal/palette"

// TreeNode holds the palettes of one tree row. Checked rows inherit from the
// unchecked palette, so customizing Common also reaches checked rows unless
// Checked stores its own value.
type TreeNode struct {
	common  *palette.Triple
	checked *palette.Triple
	focus   *palette.Triple
	group   *palette.OverrideGroup

	normalView  *palette.TripleOverride
	checkedView *palette.TripleOverride
}

// NewTreeNode builds tree node palettes bound to theme.
func NewTreeNode(theme palette.Theme, paint palette.PaintFunc) (*TreeNode, error) {
	if theme == nil {
		return nil, palette.ErrNilSource
	}
	common, err := palette.NewTriple(theme, palette.StyleTreeNode, palette.StyleTreeNode, palette.StyleTreeNode, paint)
	if err != nil {
		return nil, err
	}
	checked, err := palette.NewTripleFrom(
		palette.NewBackValues(common.Back(), nil, paint),
		palette.NewBorderValues(common.Border(), nil, paint),
		palette.NewContentValues(common.Content(), nil, paint),
	)
	if err != nil {
		return nil, err
	}
	checked.SetPaint(paint)
	focus, err := focusTriple(theme, palette.StyleTreeNode, paint)
	if err != nil {
		return nil, err
	}

	n := &TreeNode{common: common, checked: checked, focus: focus, group: palette.NewOverrideGroup(palette.StateNormal, paint)}
	if n.normalView, err = palette.NewTripleOverride(n.group, common, focus); err != nil {
		return nil, err
	}
	if n.checkedView, err = palette.NewTripleOverride(n.group, checked, focus); err != nil {
		return nil, err
	}
	return n, nil
}

// Palette returns what a renderer reads for a row. Checked rows are queried
// at their checked states, which the inherited chain maps back to Common.
func (n *TreeNode) Palette(checked bool) *palette.Triple {
	if checked {
		return n.checkedView.Triple()
	}
	return n.normalView.Triple()
}

func (n *TreeNode) Common() *palette.Triple       { return n.common }
func (n *TreeNode) Checked() *palette.Triple      { return n.checked }
func (n *TreeNode) Focus() *palette.Triple        { return n.focus }
func (n *TreeNode) Group() *palette.OverrideGroup { return n.group }

// SetFocused turns the focus look on or off for both views.
func (n *TreeNode) SetFocused(focused bool) { n.group.SetApply(focused) }

// SetFocusState selects the drawing state the focus look replaces.
func (n *TreeNode) SetFocusState(s palette.State) { n.group.SetOverrideState(s) }

// Triples names every customizable palette, for persistence.
func (n *TreeNode) Triples() map[string]*palette.Triple {
	return map[string]*palette.Triple{
		"node":    n.common,
		"checked": n.checked,
		"focus":   n.focus,
	}
}

// Groups names the override groups, for persistence.
func (n *TreeNode) Groups() map[string]*palette.OverrideGroup {
	return map[string]*palette.OverrideGroup{"focus": n.group}
}

func (n *TreeNode) IsDefault() bool {
	return palette.AllDefault(n.common, n.checked, n.focus, n.normalView, n.checkedView)
}

func (n *TreeNode) Reset() {
	n.common.Reset()
	n.checked.Reset()
	n.focus.Reset()
}
