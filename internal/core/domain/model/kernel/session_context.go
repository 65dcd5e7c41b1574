package kernel

import (
	"errors"

	"officeorder/internal/pkg/errs"
	"officeorder/internal/pkg/guard"
)

// ErrSessionContextIsNotConstructed is returned when a SessionContext was not
// created through NewSessionContext.
var ErrSessionContextIsNotConstructed = errors.New(
	"SessionContext must be created via NewSessionContext constructor",
)

// SessionContext carries the caller's identity for every outbound registry
// call: the opaque server session identifier, the acting user's employee id,
// and the role the user selected at login. The core never generates these
// values; they are supplied by the caller and forwarded verbatim.
//
// SessionContext is a value object. A missing credential is an AuthMissingError,
// which aborts the enclosing action before any network traffic.
type SessionContext struct {
	sessionID  string
	employeeID string
	role       string

	guard guard.ConstructorGuard
}

// NewSessionContext creates a SessionContext from the caller-supplied
// credentials. Every field is mandatory; a missing one yields an
// AuthMissingError naming the absent credential.
func NewSessionContext(sessionID, employeeID, role string) (SessionContext, error) {
	if sessionID == "" {
		return SessionContext{}, errs.NewAuthMissingError("session_id")
	}
	if employeeID == "" {
		return SessionContext{}, errs.NewAuthMissingError("employee_id")
	}
	if role == "" {
		return SessionContext{}, errs.NewAuthMissingError("role")
	}

	return SessionContext{
		sessionID:  sessionID,
		employeeID: employeeID,
		role:       role,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the SessionContext was created through NewSessionContext.
func (s SessionContext) Validate() error {
	return s.guard.Validate(ErrSessionContextIsNotConstructed)
}

// SessionID returns the opaque server session identifier.
func (s SessionContext) SessionID() string {
	return s.sessionID
}

// EmployeeID returns the acting user's employee id.
func (s SessionContext) EmployeeID() string {
	return s.employeeID
}

// Role returns the role the user selected at login.
func (s SessionContext) Role() string {
	return s.role
}
