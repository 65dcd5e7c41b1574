package order

import (
	"fmt"
	"time"

	"officeorder/internal/pkg/errs"
)

// VisitWindow is the value object for the visit date range.
//
// Invariant: From <= To. The window carries dates only; the time-of-day
// component is normalized away on construction.
type VisitWindow struct {
	from time.Time
	to   time.Time
}

// NewVisitWindow creates a VisitWindow from the two visit dates.
// Both dates are required, and from must not fall after to.
func NewVisitWindow(from, to time.Time) (VisitWindow, error) {
	if from.IsZero() {
		return VisitWindow{}, errs.NewValueIsRequiredError("visit from date")
	}
	if to.IsZero() {
		return VisitWindow{}, errs.NewValueIsRequiredError("visit to date")
	}

	from = truncateToDate(from)
	to = truncateToDate(to)

	if from.After(to) {
		return VisitWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"visit window is invalid",
			fmt.Errorf("visit from %s is after visit to %s",
				from.Format(time.DateOnly), to.Format(time.DateOnly)),
		)
	}

	return VisitWindow{from: from, to: to}, nil
}

// From returns the first day of the visit.
func (w VisitWindow) From() time.Time {
	return w.from
}

// To returns the last day of the visit.
func (w VisitWindow) To() time.Time {
	return w.to
}

// DurationDays returns the visit duration in whole days, inclusive of both
// endpoints: a one-day visit has duration 1.
func (w VisitWindow) DurationDays() int {
	return int(w.to.Sub(w.from).Hours()/24) + 1
}

// Validate checks that the window was constructed with both dates set.
func (w VisitWindow) Validate() error {
	if w.from.IsZero() || w.to.IsZero() {
		return errs.NewValueIsRequiredError("visit window must be created via NewVisitWindow")
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
