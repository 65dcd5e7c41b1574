package commands

import (
	"context"
)

// ExpireSessionsCommandHandler removes editing sessions abandoned before the
// cutoff. Expiry is local housekeeping only; the registry-side record is
// untouched, so a user can still resume the draft by opening a new session.
type ExpireSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewExpireSessionsCommandHandler creates a handler for session expiry.
func NewExpireSessionsCommandHandler(uowFactory SessionUoWFactory) ExpireSessionsCommandHandler {
	return ExpireSessionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires idle sessions and returns how many were removed.
func (h *ExpireSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	idle, err := sessionRepo.GetAllIdleBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, editing := range idle {
		if err = sessionRepo.Delete(ctx, editing.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(idle), nil
}
