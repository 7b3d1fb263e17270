package palette

import "image"

type spec interface {
	isZero() bool
}

// store keeps one spec per State and resolves fields along a fallback order.
type store[S spec] struct {
	fallback FallbackOrder
	paint    PaintFunc
	specs    [stateCount]S
}

func newStore[S spec](fallback FallbackOrder, hasParent bool, paint PaintFunc) store[S] {
	return store[S]{fallback: fallbackFor(fallback, hasParent), paint: paint}
}

// fallbackFor resolves a nil order: providers with a parent defer to it
// directly, root providers walk DefaultFallback.
func fallbackFor(f FallbackOrder, hasParent bool) FallbackOrder {
	switch {
	case f != nil:
		return f
	case hasParent:
		return FallbackOrder{}
	}
	return DefaultFallback()
}

// Spec returns a copy of what is stored for s.
func (st *store[S]) Spec(s State) S {
	if !s.Valid() {
		var zero S
		return zero
	}
	return st.specs[s]
}

// SetSpec replaces what is stored for s.
func (st *store[S]) SetSpec(s State, sp S) {
	if !s.Valid() {
		return
	}
	st.specs[s] = sp
	st.paint.fire()
}

// Edit mutates the spec stored for s in place.
func (st *store[S]) Edit(s State, fn func(*S)) {
	if !s.Valid() || fn == nil {
		return
	}
	fn(&st.specs[s])
	st.paint.fire()
}

// ResetState clears everything stored for s.
func (st *store[S]) ResetState(s State) {
	var zero S
	st.SetSpec(s, zero)
}

// Reset clears every state.
func (st *store[S]) Reset() {
	var zero S
	for i := range st.specs {
		st.specs[i] = zero
	}
	st.paint.fire()
}

// Customized lists the states holding at least one stored value.
func (st *store[S]) Customized() []State {
	var out []State
	for i := range st.specs {
		if !st.specs[i].isZero() {
			out = append(out, State(i))
		}
	}
	return out
}

// IsDefault is true when nothing is stored for any state.
func (st *store[S]) IsDefault() bool {
	for i := range st.specs {
		if !st.specs[i].isZero() {
			return false
		}
	}
	return true
}

// Fallback returns the order used for lookups.
func (st *store[S]) Fallback() FallbackOrder { return st.fallback }

// setFallback replaces the lookup order, resolving nil like the constructors.
func (st *store[S]) setFallback(f FallbackOrder, hasParent bool) {
	st.fallback = fallbackFor(f, hasParent)
	st.paint.fire()
}

// SetPaint replaces the mutation callback.
func (st *store[S]) SetPaint(paint PaintFunc) { st.paint = paint }

// pick returns the first stored value for field along the chain of s.
func pick[S spec, T any](st *store[S], s State, field func(*S) *T) (T, bool) {
	for _, at := range st.fallback.Chain(s) {
		if !at.Valid() {
			continue
		}
		if p := field(&st.specs[at]); p != nil {
			return *p, true
		}
	}
	var zero T
	return zero, false
}

func pickTri[S spec](st *store[S], s State, field func(*S) TriBool) TriBool {
	for _, at := range st.fallback.Chain(s) {
		if !at.Valid() {
			continue
		}
		if v := field(&st.specs[at]); v != TriInherit {
			return v
		}
	}
	return TriInherit
}

func pickImage[S spec](st *store[S], s State, field func(*S) image.Image) image.Image {
	for _, at := range st.fallback.Chain(s) {
		if !at.Valid() {
			continue
		}
		if img := field(&st.specs[at]); img != nil {
			return img
		}
	}
	return nil
}
