package palette

import (
	"image"
	"testing"
)

func TestBackValuesDisabledFallsBackToNormal(t *testing.T) {
	t.Parallel()

	back := NewBackValues(nil, nil, nil)
	back.SetSpec(StateNormal, BackSpec{Color1: Ptr(RGB(255, 0, 0))})

	if got := back.BackColor1(StateNormal); got != RGB(255, 0, 0) {
		t.Fatalf("BackColor1(normal) = %v, want #FF0000", got)
	}
	if got := back.BackColor1(StateDisabled); got != RGB(255, 0, 0) {
		t.Fatalf("BackColor1(disabled) = %v, want normal fallback #FF0000", got)
	}

	back.Edit(StateDisabled, func(b *BackSpec) { b.Color1 = Ptr(RGB(128, 128, 128)) })
	if got := back.BackColor1(StateDisabled); got != RGB(128, 128, 128) {
		t.Fatalf("BackColor1(disabled) = %v, want explicit #808080", got)
	}
}

func TestFallbackOrderIsExplicit(t *testing.T) {
	t.Parallel()

	order := FallbackOrder{StateTracking: {StateCheckedNormal, StateNormal}}
	back := NewBackValues(nil, order, nil)
	back.SetSpec(StateNormal, BackSpec{Color1: Ptr(RGB(1, 1, 1))})
	back.SetSpec(StateCheckedNormal, BackSpec{Color1: Ptr(RGB(2, 2, 2))})

	if got := back.BackColor1(StateTracking); got != RGB(2, 2, 2) {
		t.Fatalf("BackColor1(tracking) = %v, want checked-normal value", got)
	}
	if got := back.BackColor1(StatePressed); got != (Color{}) {
		t.Fatalf("BackColor1(pressed) = %v, want default: pressed has no fallback in this order", got)
	}

	back.SetFallback(FallbackOrder{})
	if got := back.BackColor1(StateTracking); got != (Color{}) {
		t.Fatalf("BackColor1(tracking) with empty order = %v, want default", got)
	}
}

func TestDefaultFallbackEndsAtNormal(t *testing.T) {
	t.Parallel()

	order := DefaultFallback()
	if err := order.Validate(); err != nil {
		t.Fatalf("DefaultFallback().Validate() error = %v", err)
	}
	for _, s := range States() {
		chain := order.Chain(s)
		if chain[0] != s {
			t.Fatalf("chain for %v starts at %v", s, chain[0])
		}
		if chain[len(chain)-1] != StateNormal {
			t.Fatalf("chain for %v ends at %v, want normal", s, chain[len(chain)-1])
		}
	}
}

func TestFallbackValidateRejectsRepeats(t *testing.T) {
	t.Parallel()

	if err := (FallbackOrder{StatePressed: {StateNormal, StateNormal}}).Validate(); err == nil {
		t.Fatal("expected repeat error")
	}
	if err := (FallbackOrder{StatePressed: {StatePressed}}).Validate(); err == nil {
		t.Fatal("expected self reference error")
	}
	if err := (FallbackOrder{StatePressed: {State(99)}}).Validate(); err == nil {
		t.Fatal("expected unknown state error")
	}
}

func TestValuesInheritFromParentAtQueriedState(t *testing.T) {
	t.Parallel()

	parent := NewBorderValues(nil, FallbackOrder{}, nil)
	parent.SetSpec(StatePressed, BorderSpec{Width: Ptr(3)})
	parent.SetSpec(StateNormal, BorderSpec{Width: Ptr(1)})

	child := NewBorderValues(parent, nil, nil)
	if got := child.BorderWidth(StatePressed); got != 3 {
		t.Fatalf("BorderWidth(pressed) = %d, want parent's pressed value 3", got)
	}

	child.SetSpec(StateNormal, BorderSpec{Width: Ptr(5)})
	if got := child.BorderWidth(StatePressed); got != 3 {
		t.Fatalf("BorderWidth(pressed) = %d, want parent's pressed value 3 ahead of child's normal", got)
	}
	if got := child.BorderWidth(StateNormal); got != 5 {
		t.Fatalf("BorderWidth(normal) = %d, want child's value 5", got)
	}

	child.SetFallback(DefaultFallback())
	if got := child.BorderWidth(StatePressed); got != 5 {
		t.Fatalf("BorderWidth(pressed) with explicit order = %d, want child's fallback value 5", got)
	}
}

func TestValuesBuiltInDefaults(t *testing.T) {
	t.Parallel()

	src := newTestSource(nil)
	for _, s := range States() {
		if got := src.BackDraw(s); got != TriInherit {
			t.Fatalf("BackDraw(%v) = %v, want inherit", s, got)
		}
		if got := src.BorderDrawBorders(s); got != EdgeAll {
			t.Fatalf("BorderDrawBorders(%v) = %v, want all", s, got)
		}
		if got := src.BorderWidth(s); got != 1 {
			t.Fatalf("BorderWidth(%v) = %d, want 1", s, got)
		}
		if got := src.ContentTextVAlign(s); got != AlignCenter {
			t.Fatalf("ContentTextVAlign(%v) = %v, want center", s, got)
		}
		if got := src.BackImage(s); got != nil {
			t.Fatalf("BackImage(%v) = %v, want nil", s, got)
		}
	}
	if got := src.BackColor1(State(250)); got != (Color{}) {
		t.Fatalf("BackColor1(invalid) = %v, want default", got)
	}
}

func TestValuesIsDefaultAndReset(t *testing.T) {
	t.Parallel()

	paints := 0
	content := NewContentValues(nil, nil, func() { paints++ })
	if !content.IsDefault() {
		t.Fatal("fresh provider should be default")
	}

	content.Edit(StateTracking, func(c *ContentSpec) { c.DrawFocus = TriTrue })
	if content.IsDefault() {
		t.Fatal("provider with a stored value should not be default")
	}
	if got := content.Customized(); len(got) != 1 || got[0] != StateTracking {
		t.Fatalf("Customized() = %v, want [tracking]", got)
	}

	content.ResetState(StateTracking)
	if !content.IsDefault() {
		t.Fatal("provider should be default after ResetState")
	}

	content.SetSpec(StateNormal, ContentSpec{Padding: Ptr(Pad(1))})
	content.Reset()
	if !content.IsDefault() {
		t.Fatal("provider should be default after Reset")
	}
	if paints != 4 {
		t.Fatalf("paint callbacks = %d, want 4", paints)
	}
}

func TestValuesImageLookup(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	back := NewBackValues(nil, nil, nil)
	back.SetSpec(StateNormal, BackSpec{Image: img, ImageStyle: Ptr(ImageTile)})

	if got := back.BackImage(StateTracking); got != image.Image(img) {
		t.Fatalf("BackImage(tracking) = %v, want normal image", got)
	}
	if got := back.BackImageStyle(StateDisabled); got != ImageTile {
		t.Fatalf("BackImageStyle(disabled) = %v, want tile", got)
	}
}
