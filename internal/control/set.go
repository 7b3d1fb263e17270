package control

import (
	"skinkit/internal/palette"
	"skinkit/internal/persist"
)

// Persisted root names of the controls in a Set.
const (
	RootTrackBar = "trackbar"
	RootTreeNode = "treenode"
)

// Set is the track bar and tree node pair that previews edit and persist.
type Set struct {
	TrackBar *TrackBar
	TreeNode *TreeNode
}

// NewSet builds both controls on theme.
func NewSet(theme palette.Theme, paint palette.PaintFunc) (*Set, error) {
	bar, err := NewTrackBar(theme, paint)
	if err != nil {
		return nil, err
	}
	node, err := NewTreeNode(theme, paint)
	if err != nil {
		return nil, err
	}
	return &Set{TrackBar: bar, TreeNode: node}, nil
}

// Trees keys the controls by their persisted root names.
func (s *Set) Trees() map[string]persist.Tree {
	return map[string]persist.Tree{RootTrackBar: s.TrackBar, RootTreeNode: s.TreeNode}
}

// SetFocused switches every control to or from its focus look.
func (s *Set) SetFocused(focused bool) {
	s.TrackBar.SetFocused(focused)
	s.TreeNode.SetFocused(focused)
}

// IsDefault reports whether neither control stores a value.
func (s *Set) IsDefault() bool { return s.TrackBar.IsDefault() && s.TreeNode.IsDefault() }

// Reset clears both controls.
func (s *Set) Reset() {
	s.TrackBar.Reset()
	s.TreeNode.Reset()
}

// Restore loads doc into the controls.
func (s *Set) Restore(doc persist.Document) error { return persist.Restore(doc, s.Trees()) }

// Capture records the controls' customizations.
func (s *Set) Capture() persist.Document { return persist.Capture(s.Trees()) }
