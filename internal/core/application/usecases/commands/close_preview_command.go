package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/guard"
)

var ErrClosePreviewCommandIsNotConstructed = errors.New(
	"ClosePreviewCommand must be created via NewClosePreviewCommand constructor",
)

// ClosePreviewCommand represents the dismissal of an open preview.
type ClosePreviewCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClosePreviewCommand creates a command to close the session's preview.
func NewClosePreviewCommand(sessionID kernel.UUID) (ClosePreviewCommand, error) {
	command := ClosePreviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionID.Validate(); err != nil {
		return ClosePreviewCommand{}, err
	}

	command.sessionID = sessionID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClosePreviewCommand) Validate() error {
	return c.guard.Validate(ErrClosePreviewCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c ClosePreviewCommand) SessionID() kernel.UUID {
	return c.sessionID
}
