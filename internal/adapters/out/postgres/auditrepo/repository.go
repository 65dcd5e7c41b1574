package auditrepo

import (
	"context"
	"time"

	"officeorder/internal/core/ports"

	"gorm.io/gorm"
)

// GormAuditLog implements AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append writes one audit row. A zero OccurredAt is stamped with the
// current time so callers can leave it unset.
func (l *GormAuditLog) Append(ctx context.Context, entry ports.AuditEntry) error {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}

	dto := fromEntry(entry)
	return l.db.WithContext(ctx).Create(&dto).Error
}
