package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)

	// ErrDeleteNotConfirmed is returned when a delete is attempted without
	// the caller asserting explicit user confirmation. Soft-deleting a held
	// draft is destructive and never happens implicitly.
	ErrDeleteNotConfirmed = errors.New("delete requires explicit user confirmation")
)

// DeleteOrderCommand represents a request to soft-delete the held draft an
// editing session is working on. Confirmed records that the user explicitly
// acknowledged the confirmation prompt.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	sessionCtx kernel.SessionContext
	confirmed  bool

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to soft-delete the session's order.
func NewDeleteOrderCommand(
	sessionID kernel.UUID,
	sessionCtx kernel.SessionContext,
	confirmed bool,
) (DeleteOrderCommand, error) {
	command := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionID.Validate(),
		sessionCtx.Validate(),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	command.sessionID = sessionID
	command.sessionCtx = sessionCtx
	command.confirmed = confirmed
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c DeleteOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SessionCtx returns the acting user's credentials.
func (c DeleteOrderCommand) SessionCtx() kernel.SessionContext {
	return c.sessionCtx
}

// Confirmed reports whether the user explicitly confirmed the delete.
func (c DeleteOrderCommand) Confirmed() bool {
	return c.confirmed
}
