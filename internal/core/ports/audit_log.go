package ports

import (
	"context"
	"time"

	"officeorder/internal/core/domain/model/kernel"
)

// AuditEntry records one lifecycle action against an office order. Entries
// are append-only; outcome is "success" or the failure family name.
type AuditEntry struct {
	SessionID   kernel.UUID
	CoverPageNo string
	EmployeeID  string
	Action      string
	Outcome     string
	Detail      string
	OccurredAt  time.Time
}

// AuditLog defines the append-only persistence contract for lifecycle
// actions. Audit failures are logged but never fail the action itself.
type AuditLog interface {
	Append(ctx context.Context, entry AuditEntry) error
}
