package queries

import (
	"errors"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/guard"
)

var ErrGetSessionStateQueryIsNotConstructed = errors.New(
	"GetSessionStateQuery must be created via NewGetSessionStateQuery constructor",
)

// GetSessionStateQuery retrieves the flags a client polls while editing:
// surface state, saved/dirty, completion.
type GetSessionStateQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionStateQuery creates a query for one session's state.
func NewGetSessionStateQuery(sessionID kernel.UUID) (GetSessionStateQuery, error) {
	query := GetSessionStateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionID.Validate(); err != nil {
		return GetSessionStateQuery{}, err
	}

	query.sessionID = sessionID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionStateQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionStateQueryIsNotConstructed)
}

// SessionID returns the queried session identifier.
func (q GetSessionStateQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionStateQueryResponse is the session read model.
type GetSessionStateQueryResponse struct {
	SessionID   kernel.UUID
	CoverPageNo string
	EmployeeID  string
	TaskID      *int64
	Status      string
	State       string
	Saved       bool
	Dirty       bool
	Completed   bool
}
