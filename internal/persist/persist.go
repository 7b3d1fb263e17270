// Package persist writes the customized part of a palette tree and reads it
// back. Subtrees whose IsDefault is true are skipped; on load the live
// cascade fills in everything that was not written.
//
// Images are not written. A state whose only setting is an image is left
// out, and so is an element with nothing else to store.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"skinkit/internal/palette"
)

// Version is the document format written by Capture.
const Version = 1

var (
	// ErrUnknownElement is returned by Restore for names the tree lacks.
	ErrUnknownElement = errors.New("persist: unknown element")
	// ErrUnsupportedVersion is returned by Read for newer documents.
	ErrUnsupportedVersion = errors.New("persist: unsupported document version")
	// ErrNotValues is returned when a stored part has no value provider to load into.
	ErrNotValues = errors.New("persist: element part is not a value provider")
)

// Tree is a composite whose palettes can be persisted, such as a control.
type Tree interface {
	Triples() map[string]*palette.Triple
}

// GroupTree is a Tree that also owns override groups.
type GroupTree interface {
	Tree
	Groups() map[string]*palette.OverrideGroup
}

// Document is the on-disk form.
type Document struct {
	Version  int       `json:"version"`
	Elements []Element `json:"elements,omitempty"`
	Groups   []Group   `json:"groups,omitempty"`
}

// Element holds the stored specs of one Triple, keyed by state name.
type Element struct {
	Name    string                                `json:"name"`
	Back    map[palette.State]palette.BackSpec    `json:"back,omitempty"`
	Border  map[palette.State]palette.BorderSpec  `json:"border,omitempty"`
	Content map[palette.State]palette.ContentSpec `json:"content,omitempty"`
}

// Group holds override flags that differ from their construction defaults.
// Apply is runtime state and is never written.
type Group struct {
	Name          string        `json:"name"`
	Override      bool          `json:"override"`
	OverrideState palette.State `json:"overrideState"`
}

// Capture walks trees, keyed by a root name, and records every non-default
// Triple as an element named "root.part". Output is sorted by name.
func Capture(trees map[string]Tree) Document {
	doc := Document{Version: Version}
	for root, tree := range trees {
		if tree == nil {
			continue
		}
		if gt, ok := tree.(GroupTree); ok {
			doc.Groups = append(doc.Groups, captureGroups(root, gt)...)
		}
		if palette.IsDefault(tree) {
			continue
		}
		for part, triple := range tree.Triples() {
			if triple == nil || triple.IsDefault() {
				continue
			}
			if el := captureTriple(root+"."+part, triple); !el.empty() {
				doc.Elements = append(doc.Elements, el)
			}
		}
	}
	slices.SortFunc(doc.Elements, func(a, b Element) int { return strings.Compare(a.Name, b.Name) })
	slices.SortFunc(doc.Groups, func(a, b Group) int { return strings.Compare(a.Name, b.Name) })
	return doc
}

func captureTriple(name string, t *palette.Triple) Element {
	el := Element{Name: name}
	if v, ok := t.BackValues(); ok {
		for _, s := range v.Customized() {
			sp := v.Spec(s)
			sp.Image = nil
			if sp == (palette.BackSpec{}) {
				continue
			}
			if el.Back == nil {
				el.Back = map[palette.State]palette.BackSpec{}
			}
			el.Back[s] = sp
		}
	}
	if v, ok := t.BorderValues(); ok {
		for _, s := range v.Customized() {
			sp := v.Spec(s)
			sp.Image = nil
			if sp == (palette.BorderSpec{}) {
				continue
			}
			if el.Border == nil {
				el.Border = map[palette.State]palette.BorderSpec{}
			}
			el.Border[s] = sp
		}
	}
	if v, ok := t.ContentValues(); ok {
		for _, s := range v.Customized() {
			if el.Content == nil {
				el.Content = map[palette.State]palette.ContentSpec{}
			}
			el.Content[s] = v.Spec(s)
		}
	}
	return el
}

func (el Element) empty() bool { return len(el.Back) == 0 && len(el.Border) == 0 && len(el.Content) == 0 }

// groupIsDefault matches what controls construct: Override on, targeting Normal.
func groupIsDefault(g *palette.OverrideGroup) bool {
	return g.Override() && g.OverrideState() == palette.StateNormal
}

func captureGroups(root string, gt GroupTree) []Group {
	var out []Group
	for name, g := range gt.Groups() {
		if g == nil || groupIsDefault(g) {
			continue
		}
		out = append(out, Group{Name: root + "." + name, Override: g.Override(), OverrideState: g.OverrideState()})
	}
	return out
}

// Restore loads doc into trees. Every named element must exist. Parts not
// mentioned by the document are left untouched, so callers usually Reset
// first.
func Restore(doc Document, trees map[string]Tree) error {
	for _, el := range doc.Elements {
		triple, err := lookupTriple(trees, el.Name)
		if err != nil {
			return err
		}
		if err := restoreTriple(el, triple); err != nil {
			return fmt.Errorf("restore %s: %w", el.Name, err)
		}
	}
	for _, g := range doc.Groups {
		group, err := lookupGroup(trees, g.Name)
		if err != nil {
			return err
		}
		group.SetOverride(g.Override)
		group.SetOverrideState(g.OverrideState)
	}
	return nil
}

func restoreTriple(el Element, t *palette.Triple) error {
	if len(el.Back) > 0 {
		v, ok := t.BackValues()
		if !ok {
			return ErrNotValues
		}
		for s, spec := range el.Back {
			v.SetSpec(s, spec)
		}
	}
	if len(el.Border) > 0 {
		v, ok := t.BorderValues()
		if !ok {
			return ErrNotValues
		}
		for s, spec := range el.Border {
			v.SetSpec(s, spec)
		}
	}
	if len(el.Content) > 0 {
		v, ok := t.ContentValues()
		if !ok {
			return ErrNotValues
		}
		for s, spec := range el.Content {
			v.SetSpec(s, spec)
		}
	}
	return nil
}

func splitName(name string) (root, part string, ok bool) {
	return strings.Cut(name, ".")
}

func lookupTriple(trees map[string]Tree, name string) (*palette.Triple, error) {
	root, part, ok := splitName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
	tree, ok := trees[root]
	if !ok || tree == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
	triple, ok := tree.Triples()[part]
	if !ok || triple == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
	return triple, nil
}

func lookupGroup(trees map[string]Tree, name string) (*palette.OverrideGroup, error) {
	root, part, ok := splitName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
	gt, ok := trees[root].(GroupTree)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
	g, ok := gt.Groups()[part]
	if !ok || g == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
	return g, nil
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Decode reads a document, rejecting unknown fields and newer versions.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode skin document: %w", err)
	}
	if doc.Version > Version || doc.Version < 1 {
		return Document{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return doc, nil
}

// Write stores doc at path atomically.
func Write(path string, doc Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".skin-*.json")
	if err != nil {
		return fmt.Errorf("create temp skin file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, doc); err != nil {
		tmp.Close()
		return fmt.Errorf("encode skin document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp skin file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename skin file: %w", err)
	}
	return nil
}

// Read loads a document from path.
func Read(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open skin file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Empty reports whether the document carries no customization.
func (d Document) Empty() bool { return len(d.Elements) == 0 && len(d.Groups) == 0 }
