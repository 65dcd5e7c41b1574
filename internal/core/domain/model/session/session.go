package session

import (
	"errors"
	"fmt"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/errs"
)

var (
	// ErrEditingSessionIsNotConstructed is returned when an EditingSession was
	// not created through NewEditingSession or RestoreEditingSession.
	ErrEditingSessionIsNotConstructed = errors.New(
		"EditingSession must be created via NewEditingSession or RestoreEditingSession constructor",
	)

	// ErrSessionBusy is returned when an action is started while another one
	// is still in flight for the same session. It prevents duplicate
	// submission of the same action.
	ErrSessionBusy = errors.New("another operation is in flight for this session")

	// ErrSessionCompleted is returned when events are applied to a session
	// whose order has been submitted or deleted and the editor should have
	// closed.
	ErrSessionCompleted = errors.New("editing session is already completed")
)

// EditingSession owns one user's work on one office order: the editable form
// and document body, the task record, the saved/dirty flags, and the surface
// state machine. All mutation flows through Apply, a reducer over the Event
// union.
//
// Saved-state means "the in-memory form matches the last successfully
// persisted version". Dirty tracking is gated against spurious triggers
// during the initial load and during the preview-close window.
type EditingSession struct {
	id     kernel.UUID
	record *order.TaskRecord
	form   order.VisitRequestForm
	body   order.OrderDocumentBody

	state     State
	saved     bool
	dirty     bool
	completed bool
	busy      bool

	isConstructed bool
}

// NewEditingSession opens a session for the given task record with the given
// seed content. The session starts in Loading; apply LoadCompleted once the
// server-sourced fields have been filled in.
func NewEditingSession(
	id kernel.UUID,
	record *order.TaskRecord,
	form order.VisitRequestForm,
	body order.OrderDocumentBody,
) (*EditingSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	return &EditingSession{
		id:            id,
		record:        record,
		form:          form,
		body:          body,
		state:         Loading,
		saved:         record.Status() == order.Draft,
		isConstructed: true,
	}, nil
}

// RestoreEditingSession reconstructs a session from persistence.
func RestoreEditingSession(
	id kernel.UUID,
	record *order.TaskRecord,
	form order.VisitRequestForm,
	body order.OrderDocumentBody,
	state State,
	saved, dirty, completed bool,
) (*EditingSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	return &EditingSession{
		id:            id,
		record:        record,
		form:          form,
		body:          body,
		state:         state,
		saved:         saved,
		dirty:         dirty,
		completed:     completed,
		isConstructed: true,
	}, nil
}

// Validate ensures the session was properly constructed.
func (s *EditingSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrEditingSessionIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (s *EditingSession) ID() kernel.UUID {
	return s.id
}

// Record returns the task record the session is editing.
func (s *EditingSession) Record() *order.TaskRecord {
	return s.record
}

// Form returns the current form content.
func (s *EditingSession) Form() order.VisitRequestForm {
	return s.form
}

// Body returns the current document body content.
func (s *EditingSession) Body() order.OrderDocumentBody {
	return s.body
}

// State returns the current surface state.
func (s *EditingSession) State() State {
	return s.state
}

// IsSaved reports whether the in-memory content matches the last
// successfully persisted version.
func (s *EditingSession) IsSaved() bool {
	return s.saved
}

// IsDirty reports whether the user has edited the content since the last
// successful save.
func (s *EditingSession) IsDirty() bool {
	return s.dirty
}

// IsCompleted reports whether the order was submitted or deleted and the
// editor should close.
func (s *EditingSession) IsCompleted() bool {
	return s.completed
}

// BeginAction marks an operation as in flight. A second action while one is
// outstanding fails with ErrSessionBusy; save/submit/preview for the same
// record are thereby serialized.
func (s *EditingSession) BeginAction() error {
	if s.busy {
		return ErrSessionBusy
	}
	s.busy = true
	return nil
}

// EndAction clears the in-flight marker. Safe to call from a defer.
func (s *EditingSession) EndAction() {
	s.busy = false
}

// Complete marks the session as finished; used after submit and delete.
func (s *EditingSession) Complete() {
	s.completed = true
}

// Apply is the reducer: (state, event) -> state. Every session mutation is
// one of these transitions.
//
// Transition rules:
//   - LoadCompleted: Loading -> Editing
//   - FieldsEdited: applied only in Editing, where it replaces the content
//     and marks the session dirty/unsaved; suppressed in Loading, Previewing
//     and ClosingPreview (a keystroke around a preview close is not an edit)
//   - SaveSucceeded / SubmitSucceeded: saved=true, dirty=false
//   - PreviewOpened: Editing -> Previewing
//   - PreviewClosed: Previewing -> ClosingPreview, saved re-asserted true
//   - Tick (or any event) in ClosingPreview: -> Editing
func (s *EditingSession) Apply(event Event) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.completed {
		return ErrSessionCompleted
	}

	switch e := event.(type) {
	case LoadCompleted:
		if s.state != Loading {
			return s.invalidTransition("LoadCompleted")
		}
		s.state = Editing

	case FieldsEdited:
		switch s.state {
		case Editing:
			s.form = e.Form
			s.body = e.Body
			s.dirty = true
			s.saved = false
		case ClosingPreview:
			// Deliberately ignore the content and leave the closing window.
			s.state = Editing
		case Loading, Previewing:
			// Suppressed: not a real edit.
		default:
			return s.invalidTransition("FieldsEdited")
		}

	case SaveSucceeded:
		s.saved = true
		s.dirty = false

	case SubmitSucceeded:
		s.saved = true
		s.dirty = false
		s.completed = true

	case PreviewOpened:
		if s.state != Editing {
			return s.invalidTransition("PreviewOpened")
		}
		s.state = Previewing

	case PreviewClosed:
		if s.state != Previewing {
			return s.invalidTransition("PreviewClosed")
		}
		s.state = ClosingPreview
		s.saved = true
		s.dirty = false

	case Tick:
		if s.state == ClosingPreview {
			s.state = Editing
		}

	default:
		return errs.NewValueIsInvalidErrorWithCause("event is invalid",
			fmt.Errorf("unhandled event type %T", event))
	}

	return nil
}

func (s *EditingSession) invalidTransition(event string) error {
	return errs.NewValueIsInvalidErrorWithCause("event is invalid",
		fmt.Errorf("%s is not applicable in state %s", event, s.state))
}
