package theme

import "fmt"

// State selects which overlay of a style is used to draw a control.
// Exactly one state is current at a time.
type State uint8

const (
	Normal State = iota
	Focus
	Active
	Disabled
)

// stateCount is the number of overlays held by every style.
const stateCount = 4

var stateNames = [stateCount]string{"NORMAL", "FOCUS", "ACTIVE", "DISABLED"}

// String returns the theme-file name of the state.
func (s State) String() string {
	if int(s) < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Mask returns the single-state mask selecting s.
func (s State) Mask() StateMask {
	return 1 << s
}

// ParseState parses "NORMAL", "FOCUS", "ACTIVE" or "DISABLED".
// Matching is case-sensitive.
func ParseState(s string) (State, error) {
	for i, name := range stateNames {
		if s == name {
			return State(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrBadState, s)
}

// StateMask is a set of states used to address per-state property edits.
type StateMask uint8

const (
	MaskNormal StateMask = 1 << iota
	MaskFocus
	MaskActive
	MaskDisabled

	// StateAll selects every state.
	StateAll = MaskNormal | MaskFocus | MaskActive | MaskDisabled
)

// Mask builds a mask from a list of states.
func Mask(states ...State) StateMask {
	var m StateMask
	for _, s := range states {
		m |= s.Mask()
	}
	return m
}

// Has reports whether s is in the mask.
func (m StateMask) Has(s State) bool {
	return int(s) < stateCount && m&s.Mask() != 0
}

// Valid reports whether the mask selects at least one state and nothing else.
func (m StateMask) Valid() bool {
	return m != 0 && m&^StateAll == 0
}

// States returns the states in the mask in ascending order.
func (m StateMask) States() []State {
	out := make([]State, 0, stateCount)
	for i := range stateCount {
		if m.Has(State(i)) {
			out = append(out, State(i))
		}
	}
	return out
}

func (m StateMask) String() string {
	if m == StateAll {
		return "ALL"
	}
	s := ""
	for _, st := range m.States() {
		if s != "" {
			s += "|"
		}
		s += st.String()
	}
	if s == "" {
		return "NONE"
	}
	return s
}
