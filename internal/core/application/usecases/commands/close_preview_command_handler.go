package commands

import (
	"context"

	"officeorder/internal/core/domain/model/session"
)

// ClosePreviewCommandHandler returns the session to the editing surface.
// Closing a preview re-asserts saved-state unconditionally: opening and
// closing a preview must never, by itself, mark the form dirty. The reducer
// passes through the ClosingPreview window so that field events racing the
// close are ignored, then a tick returns it to Editing.
type ClosePreviewCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewClosePreviewCommandHandler creates a handler for preview dismissal.
func NewClosePreviewCommandHandler(uowFactory SessionUoWFactory) ClosePreviewCommandHandler {
	return ClosePreviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close-preview command.
func (h *ClosePreviewCommandHandler) Handle(ctx context.Context, cmd ClosePreviewCommand) error {
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

	if err = editing.Apply(session.PreviewClosed{}); err != nil {
		return err
	}
	if err = editing.Apply(session.Tick{}); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, editing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
