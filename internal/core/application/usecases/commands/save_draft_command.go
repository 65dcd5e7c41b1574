package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/guard"
)

var ErrSaveDraftCommandIsNotConstructed = errors.New(
	"SaveDraftCommand must be created via NewSaveDraftCommand constructor",
)

// SaveDraftCommand represents a save-and-hold request for the content held
// by an editing session.
type SaveDraftCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	sessionCtx kernel.SessionContext

	guard guard.ConstructorGuard
}

// NewSaveDraftCommand creates a command to save the session's order as a
// held draft.
func NewSaveDraftCommand(sessionID kernel.UUID, sessionCtx kernel.SessionContext) (SaveDraftCommand, error) {
	command := SaveDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionID.Validate(),
		sessionCtx.Validate(),
	); err != nil {
		return SaveDraftCommand{}, err
	}

	command.sessionID = sessionID
	command.sessionCtx = sessionCtx
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveDraftCommand) Validate() error {
	return c.guard.Validate(ErrSaveDraftCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SaveDraftCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SessionCtx returns the acting user's credentials.
func (c SaveDraftCommand) SessionCtx() kernel.SessionContext {
	return c.sessionCtx
}
