// Package ports defines the outbound contracts of the office-order core: the
// registry backend gateway, local persistence repositories and the unit of
// work. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
)

// TaskIdentity is the result of a task-identity lookup. TaskID stays nil for
// a record the registry has never seen; ProcessID falls back to 1 when the
// lookup could not resolve one.
type TaskIdentity struct {
	TaskID    *int64
	ProcessID int64
}

// CCRole is one selectable recipient role for the order's CC section.
type CCRole struct {
	Code string
	Name string
}

// PreviewDocument is the rendered office order returned by the preview
// endpoint.
type PreviewDocument struct {
	HTML       string
	HeaderHTML string
	FooterHTML string
}

// OrderContent is the persisted content of a saved-and-held order, fetched
// when the user resumes an existing draft.
type OrderContent struct {
	Form         order.VisitRequestForm
	Body         order.OrderDocumentBody
	TaskStatusID int64
	Status       string
}

// RegistryGateway is the outbound contract to the registry backend. Every
// call travels through the secure envelope; the session context supplies the
// credentials the backend requires and the core only forwards.
//
// All lookups are fallible network round trips. Callers never guess a
// numeric id when a lookup fails; the one sanctioned fallback is process id
// 1 on an unresolved task identity.
type RegistryGateway interface {
	// LookupStatusID resolves a status description ("saveandhold",
	// "ongoing", "Deleted") to its numeric task-status id.
	LookupStatusID(ctx context.Context, sessionCtx kernel.SessionContext, statusDescription string) (int64, error)

	// ResolveTaskIdentity resolves the task and process ids for a cover
	// page number and employee id pair. Idempotent; safe to repeat after a
	// save that may have minted a task id.
	ResolveTaskIdentity(ctx context.Context, sessionCtx kernel.SessionContext, coverPageNo, employeeID string) (TaskIdentity, error)

	// SaveOrder issues the save or submit call with the full order payload.
	// The status id selects draft versus ongoing; forApproval is set on
	// submit only. Returns the backend's literal response message.
	SaveOrder(
		ctx context.Context,
		sessionCtx kernel.SessionContext,
		record *order.TaskRecord,
		form *order.VisitRequestForm,
		body *order.OrderDocumentBody,
		statusID int64,
		forApproval bool,
	) (string, error)

	// UpdateTaskStatus issues the status-update call keyed by the record's
	// cover page number and employee id; used for the soft delete.
	UpdateTaskStatus(ctx context.Context, sessionCtx kernel.SessionContext, record *order.TaskRecord, statusID int64) error

	// FetchPreview fetches the rendered document for a resolved task and
	// process id.
	FetchPreview(ctx context.Context, sessionCtx kernel.SessionContext, taskID, processID int64) (PreviewDocument, error)

	// FetchCCRoles fetches the selectable CC recipient roles for the acting
	// employee.
	FetchCCRoles(ctx context.Context, sessionCtx kernel.SessionContext, employeeID string) ([]CCRole, error)

	// FetchOrderContent fetches the persisted content of a held order so an
	// editing session can resume it.
	FetchOrderContent(ctx context.Context, sessionCtx kernel.SessionContext, coverPageNo, employeeID string) (OrderContent, error)
}
