package session

import "officeorder/internal/core/domain/model/order"

// Event is the tagged union of everything that can happen to an editing
// session. Every session mutation goes through EditingSession.Apply with one
// of these variants, which keeps each transition traceable and testable
// without a live UI.
type Event interface {
	isEvent()
}

// LoadCompleted signals that server-sourced content has been seeded and the
// session may start tracking edits.
type LoadCompleted struct{}

// FieldsEdited carries the full form/body content after a user edit. The
// reducer decides, by state, whether the edit counts (Editing) or is
// suppressed (Loading, Previewing, ClosingPreview).
type FieldsEdited struct {
	Form order.VisitRequestForm
	Body order.OrderDocumentBody
}

// SaveSucceeded signals that a save-and-hold round trip persisted the
// current content.
type SaveSucceeded struct{}

// SubmitSucceeded signals that the order entered the approval workflow; the
// session is complete and the editor should close.
type SubmitSucceeded struct{}

// PreviewOpened signals that the rendered document replaced the editing
// surface.
type PreviewOpened struct{}

// PreviewClosed signals that the preview was dismissed. Saved-state is
// re-asserted unconditionally: opening and closing a preview must never, by
// itself, mark the form dirty.
type PreviewClosed struct{}

// Tick is the next-event-loop-tick marker the adapter applies right after
// PreviewClosed to move the session out of ClosingPreview.
type Tick struct{}

func (LoadCompleted) isEvent()   {}
func (FieldsEdited) isEvent()    {}
func (SaveSucceeded) isEvent()   {}
func (SubmitSucceeded) isEvent() {}
func (PreviewOpened) isEvent()   {}
func (PreviewClosed) isEvent()   {}
func (Tick) isEvent()            {}
