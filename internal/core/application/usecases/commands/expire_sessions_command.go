package commands

import (
	"errors"
	"time"

	"officeorder/internal/pkg/errs"
	"officeorder/internal/pkg/guard"
)

var ErrExpireSessionsCommandIsNotConstructed = errors.New(
	"ExpireSessionsCommand must be created via NewExpireSessionsCommand constructor",
)

// ExpireSessionsCommand represents a sweep of editing sessions idle since
// before the cutoff.
type ExpireSessionsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireSessionsCommand creates a command to expire idle sessions.
func NewExpireSessionsCommand(cutoff time.Time) (ExpireSessionsCommand, error) {
	command := ExpireSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cutoff.IsZero() {
		return ExpireSessionsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	command.cutoff = cutoff
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionsCommandIsNotConstructed)
}

// Cutoff returns the idle cutoff time.
func (c ExpireSessionsCommand) Cutoff() time.Time {
	return c.cutoff
}
