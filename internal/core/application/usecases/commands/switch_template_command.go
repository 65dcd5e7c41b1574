package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/errs"
	"officeorder/internal/pkg/guard"
)

var ErrSwitchTemplateCommandIsNotConstructed = errors.New(
	"SwitchTemplateCommand must be created via NewSwitchTemplateCommand constructor",
)

// SwitchTemplateCommand represents a template-type selection made on a
// record already in draft/held state. Restart marks the selection as the
// destructive start-over option; Confirmed records the user's answer to the
// confirmation prompt for it.
type SwitchTemplateCommand struct { //nolint:recvcheck //using for validation
	sessionID   kernel.UUID
	sessionCtx  kernel.SessionContext
	coverPageNo string
	employeeID  string
	processType order.ProcessType
	restart     bool
	confirmed   bool

	guard guard.ConstructorGuard
}

// NewSwitchTemplateCommand creates a command for a template-type switch on a
// held draft. The session id names the editing session to open afterwards.
func NewSwitchTemplateCommand(
	sessionID kernel.UUID,
	sessionCtx kernel.SessionContext,
	coverPageNo, employeeID string,
	processType order.ProcessType,
	restart, confirmed bool,
) (SwitchTemplateCommand, error) {
	command := SwitchTemplateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionID.Validate(),
		sessionCtx.Validate(),
		processType.Validate(),
	); err != nil {
		return SwitchTemplateCommand{}, err
	}
	if coverPageNo == "" {
		return SwitchTemplateCommand{}, errs.NewValueIsRequiredError("cover page no")
	}
	if employeeID == "" {
		return SwitchTemplateCommand{}, errs.NewValueIsRequiredError("employee id")
	}

	command.sessionID = sessionID
	command.sessionCtx = sessionCtx
	command.coverPageNo = coverPageNo
	command.employeeID = employeeID
	command.processType = processType
	command.restart = restart
	command.confirmed = confirmed
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SwitchTemplateCommand) Validate() error {
	return c.guard.Validate(ErrSwitchTemplateCommandIsNotConstructed)
}

// SessionID returns the identifier the opened session will carry.
func (c SwitchTemplateCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SessionCtx returns the acting user's credentials.
func (c SwitchTemplateCommand) SessionCtx() kernel.SessionContext {
	return c.sessionCtx
}

// CoverPageNo returns the business key of the held record.
func (c SwitchTemplateCommand) CoverPageNo() string {
	return c.coverPageNo
}

// EmployeeID returns the id of the employee the order concerns.
func (c SwitchTemplateCommand) EmployeeID() string {
	return c.employeeID
}

// ProcessType returns the selected template process type.
func (c SwitchTemplateCommand) ProcessType() order.ProcessType {
	return c.processType
}

// Restart reports whether the selected option is the destructive
// start-over template.
func (c SwitchTemplateCommand) Restart() bool {
	return c.restart
}

// Confirmed reports whether the user confirmed the destructive restart.
func (c SwitchTemplateCommand) Confirmed() bool {
	return c.confirmed
}
