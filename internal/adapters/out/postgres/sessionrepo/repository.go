package sessionrepo

import (
	"context"
	"errors"
	"time"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new editing session to the database. A duplicate session id
// is reported as an invalid-value error rather than a raw driver error.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *session.EditingSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause("session already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing editing session to the database. Select("*")
// forces the cleared boolean flags through; a struct update would silently
// skip them as zero values.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *session.EditingSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SessionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an editing session by ID.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.EditingSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllIdleBefore retrieves sessions last touched before the cutoff and
// not yet completed.
func (r *GormSessionRepository) GetAllIdleBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*session.EditingSession, error) {
	var dtos []SessionDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "updated_at < ? AND completed = false", cutoff).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]*session.EditingSession, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// Delete removes an editing session.
func (r *GormSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SessionDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	return nil
}
