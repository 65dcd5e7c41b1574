package commands

import (
	"context"

	"officeorder/internal/core/domain/model/session"
)

// ApplyEditCommandHandler routes an edit through the session reducer and
// persists the result. Edits arriving while the session is loading or a
// preview is closing are suppressed by the reducer, not here.
type ApplyEditCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewApplyEditCommandHandler creates a handler for edit events.
func NewApplyEditCommandHandler(uowFactory SessionUoWFactory) ApplyEditCommandHandler {
	return ApplyEditCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the edit to the session.
func (h *ApplyEditCommandHandler) Handle(ctx context.Context, cmd ApplyEditCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	editing, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = editing.Apply(session.FieldsEdited{Form: cmd.Form(), Body: cmd.Body()}); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, editing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
