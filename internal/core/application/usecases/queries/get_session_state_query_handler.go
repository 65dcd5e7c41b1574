package queries

import (
	"context"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSessionStateQueryHandler reads one session's state directly from the
// local store. Uses direct SQL for optimal read performance in the CQRS
// pattern; the aggregate is not rehydrated for a flag poll.
type GetSessionStateQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionStateQueryHandler creates a handler for session state queries.
// Requires a GORM database connection for query execution.
func NewGetSessionStateQueryHandler(db *gorm.DB) GetSessionStateQueryHandler {
	return GetSessionStateQueryHandler{db: db}
}

// Handle executes the query for one session.
func (h GetSessionStateQueryHandler) Handle(
	ctx context.Context,
	query GetSessionStateQuery,
) (GetSessionStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionStateQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cover_page_no,
			employee_id,
			task_id,
			status,
			state,
			saved,
			dirty,
			completed
		FROM sessions
		WHERE id = ?
	`, query.SessionID().String()).Row()

	var response GetSessionStateQueryResponse
	var id uuid.UUID
	var status, state int

	err := row.Scan(
		&id,
		&response.CoverPageNo,
		&response.EmployeeID,
		&response.TaskID,
		&status,
		&state,
		&response.Saved,
		&response.Dirty,
		&response.Completed,
	)
	if err != nil {
		return GetSessionStateQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"session", query.SessionID().String(), err)
	}

	sessionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetSessionStateQueryResponse{}, err
	}

	response.SessionID = sessionID
	response.Status = order.Status(status).String()
	response.State = session.State(state).String()
	return response, nil
}
