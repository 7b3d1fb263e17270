package palette

import "fmt"

// FallbackOrder lists, per state, the states a value provider consults when
// nothing is stored for the queried state. Lists are not followed
// transitively: the chain for s is exactly s followed by order[s].
type FallbackOrder map[State][]State

// DefaultFallback returns the order value providers use unless told
// otherwise. Every chain ends at StateNormal.
func DefaultFallback() FallbackOrder {
	return FallbackOrder{
		StateDisabled:               {StateNormal},
		StateTracking:               {StateNormal},
		StatePressed:                {StateTracking, StateNormal},
		StateCheckedNormal:          {StateNormal},
		StateCheckedTracking:        {StateCheckedNormal, StateTracking, StateNormal},
		StateCheckedPressed:         {StateCheckedTracking, StateCheckedNormal, StatePressed, StateNormal},
		StateContextNormal:          {StateNormal},
		StateContextTracking:        {StateContextNormal, StateTracking, StateNormal},
		StateContextPressed:         {StateContextTracking, StateContextNormal, StatePressed, StateTracking, StateNormal},
		StateContextCheckedNormal:   {StateContextNormal, StateCheckedNormal, StateNormal},
		StateContextCheckedTracking: {StateContextCheckedNormal, StateCheckedTracking, StateCheckedNormal, StateTracking, StateNormal},
		StateContextCheckedPressed:  {StateContextCheckedTracking, StateContextCheckedNormal, StateCheckedPressed, StateCheckedNormal, StatePressed, StateNormal},
		StateFocusOverride:          {StateNormal},
	}
}

// Chain returns s followed by its fallbacks. A nil order yields just s.
func (f FallbackOrder) Chain(s State) []State {
	rest := f[s]
	out := make([]State, 0, len(rest)+1)
	out = append(out, s)
	return append(out, rest...)
}

// Validate rejects unknown states, self references and repeated entries.
func (f FallbackOrder) Validate() error {
	for s, rest := range f {
		if !s.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
		}
		seen := map[State]bool{s: true}
		for _, next := range rest {
			if !next.Valid() {
				return fmt.Errorf("%w: %d in fallback of %s", ErrUnknownState, uint8(next), s)
			}
			if seen[next] {
				return fmt.Errorf("palette: fallback of %s repeats %s", s, next)
			}
			seen[next] = true
		}
	}
	return nil
}
