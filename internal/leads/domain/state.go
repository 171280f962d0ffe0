// Package domain provides core business rules for the leads bounded context.
package domain

import (
	"fmt"

	"lead_intake_backend/platform/apperr"
)

// State is a lead lifecycle state.
type State string

const (
	// StatePending is the initial state of every lead.
	StatePending State = "PENDING"
	// StateReachedOut is the terminal state; no transition leaves it,
	// including a repeat transition to itself.
	StateReachedOut State = "REACHED_OUT"
)

// transitions is the full transition table. The lifecycle has a single
// legal edge; everything absent from the table is denied.
var transitions = map[State]map[State]bool{
	StatePending:    {StateReachedOut: true},
	StateReachedOut: {},
}

// Valid reports whether s is a known lifecycle state.
func (s State) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// ParseState converts raw text to a State.
func ParseState(raw string) (State, error) {
	s := State(raw)
	if !s.Valid() {
		return "", apperr.Validation(fmt.Sprintf("unknown state %q", raw))
	}
	return s, nil
}

// CanTransition reports whether the edge from → to is in the table.
func CanTransition(from, to State) bool {
	return transitions[from][to]
}

// ValidateTransition checks both ends of a requested transition and
// returns a typed error when the edge is not legal. It is a pure function:
// enforcement happens before any storage write.
func ValidateTransition(from, to State) error {
	if CanTransition(from, to) {
		return nil
	}
	return apperr.InvalidTransition(fmt.Sprintf(
		"cannot transition from %s to %s; the only legal transition is %s to %s",
		from, to, StatePending, StateReachedOut))
}
