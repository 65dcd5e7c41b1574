package order

import (
	"fmt"

	"officeorder/internal/pkg/errs"
)

// Status represents the client-visible lifecycle state of an office order.
// It implements a state machine with defined transitions so orders follow
// the correct workflow.
//
// State transitions:
//
//	New ──> Draft ──> Submitted
//	          │
//	          └─────> Deleted
//
// Submitted and Deleted are terminal from the client's perspective; further
// workflow transitions (approval, completion) are owned by the registry
// backend. Deleted is a soft state: the record is never physically removed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when a visit record is first opened and no
	// save has happened yet. New records have no task identity.
	New

	// Draft indicates the order has been saved and held. Draft orders can be
	// re-saved, submitted, or soft-deleted.
	Draft

	// Submitted indicates the order entered the approval workflow ("ongoing"
	// on the registry side). Terminal for this client.
	Submitted

	// Deleted indicates the order was soft-deleted by a status update.
	// Terminal.
	Deleted
)

// registryDescriptions maps statuses to the status-description strings the
// registry's status-code lookup understands. These strings are a wire
// contract; the numeric ids behind them are resolved at runtime.
func registryDescriptions() map[Status]string {
	return map[Status]string{
		Draft:     "saveandhold",
		Submitted: "ongoing",
		Deleted:   "Deleted",
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Draft:     "Draft",
		Submitted: "Submitted",
		Deleted:   "Deleted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Draft:     "Draft",
		Submitted: "Submitted",
		Deleted:   "Deleted",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Draft, Submitted, Deleted.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// RegistryDescription returns the status-description string used to resolve
// this status to its numeric id via the registry lookup. Only statuses that
// are the target of a client transition have a description.
func (s Status) RegistryDescription() (string, error) {
	description, ok := registryDescriptions()[s]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s has no registry status description", s.String()),
		)
	}
	return description, nil
}

// ValidateSaveDraft checks if the status allows a save-and-hold without
// performing the transition.
//
// Valid statuses for saving:
//   - New (first save mints the draft)
//   - Draft (re-save of a held draft)
func (s Status) ValidateSaveDraft() error {
	if s != New && s != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to save as draft", s.String()),
		)
	}
	return nil
}

// SaveDraft transitions the status to Draft.
//
// Valid transitions:
//   - New -> Draft (first save)
//   - Draft -> Draft (re-save)
//
// Returns (Draft, nil) on a valid transition, (0, error) otherwise.
func (s Status) SaveDraft() (Status, error) {
	if err := s.ValidateSaveDraft(); err != nil {
		return 0, err
	}

	return Draft, nil
}

// Submit transitions the status to Submitted.
//
// Valid transitions:
//   - New -> Submitted (direct submit; the submit payload carries the full record)
//   - Draft -> Submitted (submit of a held draft)
//
// Submitted is terminal for this client; the registry workflow owns the
// record afterwards.
func (s Status) Submit() (Status, error) {
	if s != New && s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to submit", s.String()),
		)
	}

	return Submitted, nil
}

// Delete transitions the status to Deleted.
//
// Valid transitions:
//   - Draft -> Deleted (soft delete of a held draft)
//
// A record that was never saved has nothing to delete, and submitted
// records are owned by the workflow.
func (s Status) Delete() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to delete", s.String()),
		)
	}

	return Deleted, nil
}
