package queries

import (
	"context"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEmployeeSessionsQueryHandler lists an employee's open sessions from the
// local store. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetEmployeeSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetEmployeeSessionsQueryHandler creates a handler for session listing
// queries. Requires a GORM database connection for query execution.
func NewGetEmployeeSessionsQueryHandler(db *gorm.DB) GetEmployeeSessionsQueryHandler {
	return GetEmployeeSessionsQueryHandler{db: db}
}

// Handle executes the query and returns open sessions, newest first.
func (h GetEmployeeSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeeSessionsQuery,
) ([]GetEmployeeSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions := make([]GetEmployeeSessionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cover_page_no,
			status,
			saved,
			dirty
		FROM sessions
		WHERE employee_id = ? AND completed = false
		ORDER BY updated_at DESC
	`, query.EmployeeID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetEmployeeSessionsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&response.CoverPageNo,
			&status,
			&response.Saved,
			&response.Dirty,
		)
		if err != nil {
			return nil, err
		}

		sessionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.SessionID = sessionID
		response.Status = order.Status(status).String()
		sessions = append(sessions, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
