// Package sessionrepo persists editing sessions. The aggregate's scalar
// lifecycle fields map to plain columns so the read-side queries can filter
// on them; the form and document body travel as jsonb documents.
package sessionrepo

import (
	"encoding/json"
	"time"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO is the database representation of one editing session together
// with its task record. The record is denormalized into the session row: it
// never outlives the session locally, the registry being the system of
// record for the order itself.
type SessionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CoverPageNo  string    `gorm:"index"`
	EmployeeID   string    `gorm:"index"`
	TaskID       *int64
	ProcessID    int64
	TaskStatusID int64
	Status       int
	ProcessType  int
	State        int
	Saved        bool
	Dirty        bool
	Completed    bool            `gorm:"index"`
	Form         json.RawMessage `gorm:"type:jsonb"`
	Body         json.RawMessage `gorm:"type:jsonb"`
	UpdatedAt    time.Time       `gorm:"index"`
}

// TableName overrides GORM's default naming to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

// fromDomain converts a session aggregate to its database representation.
func fromDomain(aggregate *session.EditingSession) (SessionDTO, error) {
	form, err := json.Marshal(aggregate.Form())
	if err != nil {
		return SessionDTO{}, err
	}
	body, err := json.Marshal(aggregate.Body())
	if err != nil {
		return SessionDTO{}, err
	}

	record := aggregate.Record()
	return SessionDTO{
		ID:           aggregate.ID().Bytes(),
		CoverPageNo:  record.CoverPageNo(),
		EmployeeID:   record.EmployeeID(),
		TaskID:       record.TaskID(),
		ProcessID:    record.ProcessID(),
		TaskStatusID: record.TaskStatusID(),
		Status:       int(record.Status()),
		ProcessType:  int(record.ProcessType()),
		State:        int(aggregate.State()),
		Saved:        aggregate.IsSaved(),
		Dirty:        aggregate.IsDirty(),
		Completed:    aggregate.IsCompleted(),
		Form:         form,
		Body:         body,
	}, nil
}

// toDomain reconstructs the session aggregate, task record included, from a
// database row.
func toDomain(dto SessionDTO) (*session.EditingSession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	record, err := order.RestoreTaskRecord(
		dto.CoverPageNo,
		dto.EmployeeID,
		dto.TaskID,
		dto.ProcessID,
		dto.TaskStatusID,
		order.Status(dto.Status),
		order.ProcessType(dto.ProcessType),
	)
	if err != nil {
		return nil, err
	}

	var form order.VisitRequestForm
	if len(dto.Form) > 0 {
		if err = json.Unmarshal(dto.Form, &form); err != nil {
			return nil, err
		}
	}
	var body order.OrderDocumentBody
	if len(dto.Body) > 0 {
		if err = json.Unmarshal(dto.Body, &body); err != nil {
			return nil, err
		}
	}

	return session.RestoreEditingSession(
		id, record, form, body,
		session.State(dto.State),
		dto.Saved, dto.Dirty, dto.Completed,
	)
}
