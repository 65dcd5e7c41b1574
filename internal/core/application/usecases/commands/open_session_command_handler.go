package commands

import (
	"context"
	"time"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/core/ports"
)

// OpenSessionResult describes the editing session handed back to the caller.
type OpenSessionResult struct {
	SessionID kernel.UUID
	Form      order.VisitRequestForm
	Body      order.OrderDocumentBody

	// Resumed is true when a held draft's content was loaded from the
	// registry instead of starting empty.
	Resumed bool
}

// OpenSessionCommandHandler opens editing sessions. It resolves the task
// identity for the record, fetches the persisted content when the record is
// a held draft, and persists the fresh session locally so it can survive a
// client crash.
//
// An identity lookup failure is recoverable here: a first-ever draft
// legitimately has no task yet, so the session opens with no task id and
// process id 1.
type OpenSessionCommandHandler struct {
	uowFactory SessionUoWFactory
	gateway    ports.RegistryGateway
}

// NewOpenSessionCommandHandler creates a handler for opening sessions.
func NewOpenSessionCommandHandler(
	uowFactory SessionUoWFactory,
	gateway ports.RegistryGateway,
) OpenSessionCommandHandler {
	return OpenSessionCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle opens the session and returns its seeded content.
func (h *OpenSessionCommandHandler) Handle(ctx context.Context, cmd OpenSessionCommand) (OpenSessionResult, error) {
	if err := cmd.Validate(); err != nil {
		return OpenSessionResult{}, err
	}

	identity, err := h.gateway.ResolveTaskIdentity(
		ctx, cmd.SessionCtx(), cmd.CoverPageNo(), cmd.EmployeeID())
	if err != nil {
		// Recoverable: a record with no task yet is a legitimate first draft.
		identity = ports.TaskIdentity{TaskID: nil, ProcessID: 1}
	}

	record, form, body, resumed, err := h.seedContent(ctx, cmd, identity)
	if err != nil {
		return OpenSessionResult{}, err
	}

	editing, err := session.NewEditingSession(cmd.SessionID(), record, form, body)
	if err != nil {
		return OpenSessionResult{}, err
	}
	if err = editing.Apply(session.LoadCompleted{}); err != nil {
		return OpenSessionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OpenSessionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, editing); err != nil {
		return OpenSessionResult{}, err
	}

	_ = uow.AuditLog().Append(ctx, ports.AuditEntry{
		SessionID:   cmd.SessionID(),
		CoverPageNo: cmd.CoverPageNo(),
		EmployeeID:  cmd.EmployeeID(),
		Action:      "open",
		Outcome:     "success",
		OccurredAt:  time.Now().UTC(),
	})

	if err = uow.Commit(ctx); err != nil {
		return OpenSessionResult{}, err
	}

	return OpenSessionResult{
		SessionID: cmd.SessionID(),
		Form:      form,
		Body:      body,
		Resumed:   resumed,
	}, nil
}

// seedContent decides between an empty fresh record and the persisted
// content of a held draft. Content for an existing record is always fetched
// anew; stale content must never be shown.
func (h *OpenSessionCommandHandler) seedContent(
	ctx context.Context,
	cmd OpenSessionCommand,
	identity ports.TaskIdentity,
) (*order.TaskRecord, order.VisitRequestForm, order.OrderDocumentBody, bool, error) {
	if identity.TaskID == nil {
		record, err := order.NewTaskRecord(cmd.CoverPageNo(), cmd.EmployeeID(), cmd.ProcessType())
		if err != nil {
			return nil, order.VisitRequestForm{}, order.OrderDocumentBody{}, false, err
		}
		return record, order.VisitRequestForm{EmployeeID: cmd.EmployeeID()}, order.OrderDocumentBody{}, false, nil
	}

	content, err := h.gateway.FetchOrderContent(
		ctx, cmd.SessionCtx(), cmd.CoverPageNo(), cmd.EmployeeID())
	if err != nil {
		return nil, order.VisitRequestForm{}, order.OrderDocumentBody{}, false, err
	}

	record, err := order.RestoreTaskRecord(
		cmd.CoverPageNo(), cmd.EmployeeID(),
		identity.TaskID, identity.ProcessID,
		content.TaskStatusID, order.Draft, cmd.ProcessType())
	if err != nil {
		return nil, order.VisitRequestForm{}, order.OrderDocumentBody{}, false, err
	}

	return record, content.Form, content.Body, true, nil
}
