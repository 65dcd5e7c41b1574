package commands

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/errs"
	"officeorder/internal/pkg/guard"
)

var ErrOpenSessionCommandIsNotConstructed = errors.New(
	"OpenSessionCommand must be created via NewOpenSessionCommand constructor",
)

// OpenSessionCommand represents a request to open an editing session for one
// office order, either a brand-new record or a held draft being resumed.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewOpenSessionCommand(sessionID, sessionCtx, "OO/2025/0042", "E1024", order.ProcessNone)
//	if err != nil {
//	    return fmt.Errorf("invalid session request: %w", err)
//	}
//
//	handler := NewOpenSessionCommandHandler(uowFactory, gateway)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to open session: %w", err)
//	}
//	// result.Resumed tells whether a held draft was loaded
type OpenSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID   kernel.UUID
	sessionCtx  kernel.SessionContext
	coverPageNo string
	employeeID  string
	processType order.ProcessType

	guard guard.ConstructorGuard
}

// NewOpenSessionCommand creates a command to open an editing session.
// Validates the session identity, credentials and record key.
func NewOpenSessionCommand(
	sessionID kernel.UUID,
	sessionCtx kernel.SessionContext,
	coverPageNo, employeeID string,
	processType order.ProcessType,
) (OpenSessionCommand, error) {
	command := OpenSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setSessionCtx(sessionCtx),
		command.setCoverPageNo(coverPageNo),
		command.setEmployeeID(employeeID),
		command.setProcessType(processType),
	); err != nil {
		return OpenSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenSessionCommandIsNotConstructed)
}

// SessionID returns the identifier the new editing session will carry.
func (c OpenSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SessionCtx returns the acting user's credentials.
func (c OpenSessionCommand) SessionCtx() kernel.SessionContext {
	return c.sessionCtx
}

// CoverPageNo returns the business key of the record being edited.
func (c OpenSessionCommand) CoverPageNo() string {
	return c.coverPageNo
}

// EmployeeID returns the id of the employee the order is about.
func (c OpenSessionCommand) EmployeeID() string {
	return c.employeeID
}

// ProcessType returns the selected template process type.
func (c OpenSessionCommand) ProcessType() order.ProcessType {
	return c.processType
}

func (c *OpenSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *OpenSessionCommand) setSessionCtx(sessionCtx kernel.SessionContext) error {
	if err := sessionCtx.Validate(); err != nil {
		return err
	}

	c.sessionCtx = sessionCtx
	return nil
}

func (c *OpenSessionCommand) setCoverPageNo(coverPageNo string) error {
	if coverPageNo == "" {
		return errs.NewValueIsRequiredError("cover page no")
	}

	c.coverPageNo = coverPageNo
	return nil
}

func (c *OpenSessionCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return errs.NewValueIsRequiredError("employee id")
	}

	c.employeeID = employeeID
	return nil
}

func (c *OpenSessionCommand) setProcessType(processType order.ProcessType) error {
	if err := processType.Validate(); err != nil {
		return err
	}

	c.processType = processType
	return nil
}
