package queries

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/errs"
	"officeorder/internal/pkg/guard"
)

var ErrGetEmployeeSessionsQueryIsNotConstructed = errors.New(
	"GetEmployeeSessionsQuery must be created via NewGetEmployeeSessionsQuery constructor",
)

// GetEmployeeSessionsQuery retrieves the open editing sessions of one
// employee, most recently touched first. Backs the listing view that offers
// "continue editing" entries.
type GetEmployeeSessionsQuery struct {
	employeeID string

	guard guard.ConstructorGuard
}

// NewGetEmployeeSessionsQuery creates a query for an employee's open sessions.
func NewGetEmployeeSessionsQuery(employeeID string) (GetEmployeeSessionsQuery, error) {
	query := GetEmployeeSessionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if employeeID == "" {
		return GetEmployeeSessionsQuery{}, errs.NewValueIsRequiredError("employee id")
	}

	query.employeeID = employeeID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeeSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeSessionsQueryIsNotConstructed)
}

// EmployeeID returns the employee whose sessions are listed.
func (q GetEmployeeSessionsQuery) EmployeeID() string {
	return q.employeeID
}

// GetEmployeeSessionsQueryResponse is one open session in the read model.
type GetEmployeeSessionsQueryResponse struct {
	SessionID   kernel.UUID
	CoverPageNo string
	Status      string
	Saved       bool
	Dirty       bool
}
