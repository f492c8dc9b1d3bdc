package control

import "github.com/agiangrant/skinned/theme"

// State is a re-export of theme.State for consumer convenience.
type State = theme.State

// StateMask is a re-export of theme.StateMask for consumer convenience.
type StateMask = theme.StateMask

const (
	Normal   = theme.Normal
	Focus    = theme.Focus
	Active   = theme.Active
	Disabled = theme.Disabled

	// StateAll addresses every state in a property setter.
	StateAll = theme.StateAll
)

// Mask builds a state mask from a list of states.
func Mask(states ...State) StateMask {
	return theme.Mask(states...)
}

// ParseState parses "NORMAL", "FOCUS", "ACTIVE" or "DISABLED".
func ParseState(s string) (State, error) {
	return theme.ParseState(s)
}
