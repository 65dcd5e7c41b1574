// Package auditrepo persists the append-only audit trail of lifecycle
// actions. Rows are written, never updated.
package auditrepo

import (
	"time"

	"officeorder/internal/core/ports"

	"github.com/google/uuid"
)

// AuditEntryDTO is the database representation of one audit row.
type AuditEntryDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	SessionID   uuid.UUID `gorm:"type:uuid;index"`
	CoverPageNo string    `gorm:"index"`
	EmployeeID  string
	Action      string
	Outcome     string
	Detail      string
	OccurredAt  time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "audit_entries".
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

func fromEntry(entry ports.AuditEntry) AuditEntryDTO {
	return AuditEntryDTO{
		SessionID:   entry.SessionID.Bytes(),
		CoverPageNo: entry.CoverPageNo,
		EmployeeID:  entry.EmployeeID,
		Action:      entry.Action,
		Outcome:     entry.Outcome,
		Detail:      entry.Detail,
		OccurredAt:  entry.OccurredAt,
	}
}
