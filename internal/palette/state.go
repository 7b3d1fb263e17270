package palette

import (
	"fmt"
	"strings"
)

// State identifies the interaction condition an element is drawn in.
type State uint8

const (
	StateDisabled State = iota
	StateNormal
	StateTracking
	StatePressed
	StateCheckedNormal
	StateCheckedTracking
	StateCheckedPressed
	StateContextNormal
	StateContextTracking
	StateContextPressed
	StateContextCheckedNormal
	StateContextCheckedTracking
	StateContextCheckedPressed
	StateFocusOverride

	stateCount
)

// Phase is the interaction phase axis of a State.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseNormal
	PhaseTracking
	PhasePressed
)

var stateNames = [stateCount]string{
	StateDisabled:               "disabled",
	StateNormal:                 "normal",
	StateTracking:               "tracking",
	StatePressed:                "pressed",
	StateCheckedNormal:          "checked-normal",
	StateCheckedTracking:        "checked-tracking",
	StateCheckedPressed:         "checked-pressed",
	StateContextNormal:          "context-normal",
	StateContextTracking:        "context-tracking",
	StateContextPressed:         "context-pressed",
	StateContextCheckedNormal:   "context-checked-normal",
	StateContextCheckedTracking: "context-checked-tracking",
	StateContextCheckedPressed:  "context-checked-pressed",
	StateFocusOverride:          "focus-override",
}

// States returns every State in declaration order.
func States() []State {
	out := make([]State, 0, stateCount)
	for s := State(0); s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the enumerated states.
func (s State) Valid() bool { return s < stateCount }

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return stateNames[s]
}

// ParseState maps a state name produced by String back to its State.
func ParseState(name string) (State, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for s, n := range stateNames {
		if n == norm {
			return State(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return []byte(stateNames[s]), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsChecked reports whether the checked/selected modifier is present.
func (s State) IsChecked() bool {
	switch s {
	case StateCheckedNormal, StateCheckedTracking, StateCheckedPressed,
		StateContextCheckedNormal, StateContextCheckedTracking, StateContextCheckedPressed:
		return true
	}
	return false
}

// IsContext reports whether the element is drawn inside a foreign container.
func (s State) IsContext() bool {
	return s >= StateContextNormal && s <= StateContextCheckedPressed
}

// Phase returns the interaction phase. Disabled and FocusOverride have none.
func (s State) Phase() Phase {
	switch s {
	case StateNormal, StateCheckedNormal, StateContextNormal, StateContextCheckedNormal:
		return PhaseNormal
	case StateTracking, StateCheckedTracking, StateContextTracking, StateContextCheckedTracking:
		return PhaseTracking
	case StatePressed, StateCheckedPressed, StateContextPressed, StateContextCheckedPressed:
		return PhasePressed
	}
	return PhaseNone
}

// Compose builds the State for the given axes. Disabled always wins.
func Compose(phase Phase, checked, context, disabled bool) State {
	if disabled {
		return StateDisabled
	}
	if phase == PhaseNone {
		phase = PhaseNormal
	}
	base := StateNormal
	switch {
	case context && checked:
		base = StateContextCheckedNormal
	case context:
		base = StateContextNormal
	case checked:
		base = StateCheckedNormal
	}
	return base + State(phase-PhaseNormal)
}

// TriBool is a three valued flag. TriInherit asks the caller to keep
// resolving through a wider chain.
type TriBool uint8

const (
	TriInherit TriBool = iota
	TriTrue
	TriFalse
)

// TriOf converts a plain bool.
func TriOf(b bool) TriBool {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Or returns fallback when b is TriInherit.
func (b TriBool) Or(fallback TriBool) TriBool {
	if b == TriInherit {
		return fallback
	}
	return b
}

// Bool returns the flag value; ok is false for TriInherit.
func (b TriBool) Bool() (value, ok bool) {
	switch b {
	case TriTrue:
		return true, true
	case TriFalse:
		return false, true
	}
	return false, false
}

func (b TriBool) String() string {
	switch b {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	}
	return "inherit"
}

func (b TriBool) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *TriBool) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "true":
		*b = TriTrue
	case "false":
		*b = TriFalse
	case "inherit", "":
		*b = TriInherit
	default:
		return fmt.Errorf("palette: invalid tri-state value %q", text)
	}
	return nil
}
