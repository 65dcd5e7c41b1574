package session

import (
	"fmt"

	"officeorder/internal/pkg/errs"
)

// State represents where an editing session sits in its surface lifecycle.
//
// State transitions:
//
//	Loading ──> Editing ──> Previewing ──> ClosingPreview ──┐
//	               ^                                        │
//	               └────────────────────────────────────────┘
//
// ClosingPreview exists so that field-change events arriving around a
// preview close are deterministically ignored instead of being mistaken for
// real edits. It is an explicit state, not a timer: the session leaves it on
// the next applied event.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	StateUnknown State = iota

	// Loading is the initial state while server-sourced content is being
	// seeded. Dirty tracking is suppressed.
	Loading

	// Editing is the normal state: field changes mark the session dirty.
	Editing

	// Previewing means the rendered document is on screen and the editing
	// surface is hidden. Field changes are not expected and are ignored.
	Previewing

	// ClosingPreview is the short window right after a preview closes.
	// Field-change events are ignored; the next event returns to Editing.
	ClosingPreview
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:   "Unknown",
		Loading:        "Loading",
		Editing:        "Editing",
		Previewing:     "Previewing",
		ClosingPreview: "ClosingPreview",
	}
}

// Validate checks if the State value is valid.
func (s State) Validate() error {
	switch s {
	case Loading, Editing, Previewing, ClosingPreview:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%d is not a valid session state", s))
	}
}

// String returns the human-readable name of the state.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
