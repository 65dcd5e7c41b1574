package ports

import (
	"context"
	"time"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for editing sessions.
// Sessions are stored locally so a crashed client can resume its draft and
// so the sweeper job can expire abandoned ones.
type SessionRepository interface {
	// Add persists a new editing session.
	// The session must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *session.EditingSession) error

	// Update persists changes to an existing editing session.
	Update(ctx context.Context, aggregate *session.EditingSession) error

	// Get retrieves an editing session by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*session.EditingSession, error)

	// GetAllIdleBefore retrieves sessions last touched before the cutoff
	// and not yet completed. Used by the expiry sweeper.
	GetAllIdleBefore(ctx context.Context, cutoff time.Time) ([]*session.EditingSession, error)

	// Delete removes an editing session. Completed and expired sessions
	// are the only ones ever deleted.
	Delete(ctx context.Context, id kernel.UUID) error
}
