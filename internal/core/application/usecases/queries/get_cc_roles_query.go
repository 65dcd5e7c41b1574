// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/errs"
	"officeorder/internal/pkg/guard"
)

var ErrGetCCRolesQueryIsNotConstructed = errors.New(
	"GetCCRolesQuery must be created via NewGetCCRolesQuery constructor",
)

// GetCCRolesQuery retrieves the selectable CC recipient roles for one
// employee. Results are memoized per employee id for the life of the
// handler; the option list changes rarely and is fetched over the network.
type GetCCRolesQuery struct {
	sessionCtx kernel.SessionContext
	employeeID string

	guard guard.ConstructorGuard
}

// NewGetCCRolesQuery creates a query for an employee's CC role options.
func NewGetCCRolesQuery(sessionCtx kernel.SessionContext, employeeID string) (GetCCRolesQuery, error) {
	query := GetCCRolesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionCtx.Validate(); err != nil {
		return GetCCRolesQuery{}, err
	}
	if employeeID == "" {
		return GetCCRolesQuery{}, errs.NewValueIsRequiredError("employee id")
	}

	query.sessionCtx = sessionCtx
	query.employeeID = employeeID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCCRolesQuery) Validate() error {
	return q.guard.Validate(ErrGetCCRolesQueryIsNotConstructed)
}

// SessionCtx returns the acting user's credentials.
func (q GetCCRolesQuery) SessionCtx() kernel.SessionContext {
	return q.sessionCtx
}

// EmployeeID returns the employee whose role options are requested.
func (q GetCCRolesQuery) EmployeeID() string {
	return q.employeeID
}

// CCRoleResponse is one selectable recipient role in the read model.
type CCRoleResponse struct {
	Code string
	Name string
}
