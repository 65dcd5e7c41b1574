package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/guard"
)

var ErrApplyEditCommandIsNotConstructed = errors.New(
	"ApplyEditCommand must be created via NewApplyEditCommand constructor",
)

// ApplyEditCommand carries the full form/body content after a client-side
// edit. The session reducer decides whether the edit counts as a dirtying
// change.
type ApplyEditCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	form      order.VisitRequestForm
	body      order.OrderDocumentBody

	guard guard.ConstructorGuard
}

// NewApplyEditCommand creates a command to record an edit on a session.
func NewApplyEditCommand(
	sessionID kernel.UUID,
	form order.VisitRequestForm,
	body order.OrderDocumentBody,
) (ApplyEditCommand, error) {
	command := ApplyEditCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionID.Validate(); err != nil {
		return ApplyEditCommand{}, err
	}

	command.sessionID = sessionID
	command.form = form
	command.body = body
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyEditCommand) Validate() error {
	return c.guard.Validate(ErrApplyEditCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c ApplyEditCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Form returns the edited form content.
func (c ApplyEditCommand) Form() order.VisitRequestForm {
	return c.form
}

// Body returns the edited document body content.
func (c ApplyEditCommand) Body() order.OrderDocumentBody {
	return c.body
}
