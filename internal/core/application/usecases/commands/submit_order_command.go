package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to submit the session's order into
// the approval workflow.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	sessionCtx kernel.SessionContext

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the session's order.
func NewSubmitOrderCommand(sessionID kernel.UUID, sessionCtx kernel.SessionContext) (SubmitOrderCommand, error) {
	command := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionID.Validate(),
		sessionCtx.Validate(),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	command.sessionID = sessionID
	command.sessionCtx = sessionCtx
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SubmitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SessionCtx returns the acting user's credentials.
func (c SubmitOrderCommand) SessionCtx() kernel.SessionContext {
	return c.sessionCtx
}
