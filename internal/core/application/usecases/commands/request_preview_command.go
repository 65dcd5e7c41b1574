package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/guard"
)

var ErrRequestPreviewCommandIsNotConstructed = errors.New(
	"RequestPreviewCommand must be created via NewRequestPreviewCommand constructor",
)

// RequestPreviewCommand represents a request to render the session's order
// as the final document.
type RequestPreviewCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	sessionCtx kernel.SessionContext

	guard guard.ConstructorGuard
}

// NewRequestPreviewCommand creates a command to open a preview.
func NewRequestPreviewCommand(sessionID kernel.UUID, sessionCtx kernel.SessionContext) (RequestPreviewCommand, error) {
	command := RequestPreviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionID.Validate(),
		sessionCtx.Validate(),
	); err != nil {
		return RequestPreviewCommand{}, err
	}

	command.sessionID = sessionID
	command.sessionCtx = sessionCtx
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPreviewCommand) Validate() error {
	return c.guard.Validate(ErrRequestPreviewCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c RequestPreviewCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SessionCtx returns the acting user's credentials.
func (c RequestPreviewCommand) SessionCtx() kernel.SessionContext {
	return c.sessionCtx
}
