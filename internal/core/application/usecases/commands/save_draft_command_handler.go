package commands

import (
	"context"
	"time"

	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/core/domain/services"
	"officeorder/internal/core/ports"
	"officeorder/internal/pkg/errs"
)

// SaveDraftCommandHandler executes the save-and-hold pipeline:
//
//  1. draft-mode validation over the session's content (no network before
//     validation passes)
//  2. resolve the numeric "saveandhold" status code; a lookup failure aborts
//     the save rather than guessing an id
//  3. issue the save call through the secure envelope
//  4. re-resolve task identity, since a first save mints the task id
//  5. mark the session saved and persist it
//
// Validation failures and network failures both leave the session editable;
// the user may fix the form or retry.
type SaveDraftCommandHandler struct {
	uowFactory SessionUoWFactory
	gateway    ports.RegistryGateway
	validator  services.ValidationEngine
}

// NewSaveDraftCommandHandler creates a handler for save-and-hold operations.
func NewSaveDraftCommandHandler(
	uowFactory SessionUoWFactory,
	gateway ports.RegistryGateway,
	validator services.ValidationEngine,
) SaveDraftCommandHandler {
	return SaveDraftCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		validator:  validator,
	}
}

// Handle processes the save command and returns the backend's literal
// response message for the success acknowledgment.
func (h *SaveDraftCommandHandler) Handle(ctx context.Context, cmd SaveDraftCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	editing, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return "", err
	}

	if err = editing.BeginAction(); err != nil {
		return "", err
	}
	defer editing.EndAction()

	record := editing.Record()
	form := editing.Form()
	body := editing.Body()

	if err = record.Status().ValidateSaveDraft(); err != nil {
		return "", err
	}
	if err = h.validator.Validate(&form, &body, record.ProcessType(), services.ModeDraft); err != nil {
		return "", err
	}

	statusID, err := h.lookupStatusID(ctx, cmd, order.Draft)
	if err != nil {
		return "", err
	}

	message, err := h.gateway.SaveOrder(ctx, cmd.SessionCtx(), record, &form, &body, statusID, false)
	if err != nil {
		h.audit(ctx, uow, cmd, record, "save", err)
		_ = uow.Commit(ctx)
		return "", err
	}

	// A first save mints the task id; re-resolve. An unresolved process id
	// falls back to 1 and is the only allowed guess.
	identity, resolveErr := h.gateway.ResolveTaskIdentity(
		ctx, cmd.SessionCtx(), record.CoverPageNo(), record.EmployeeID())
	if resolveErr == nil {
		record.SetIdentity(identity.TaskID, identity.ProcessID)
	}

	if err = record.MarkDraftSaved(statusID); err != nil {
		return "", err
	}
	if err = editing.Apply(session.SaveSucceeded{}); err != nil {
		return "", err
	}

	if err = sessionRepo.Update(ctx, editing); err != nil {
		return "", err
	}
	h.audit(ctx, uow, cmd, record, "save", nil)

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return message, nil
}

func (h *SaveDraftCommandHandler) lookupStatusID(
	ctx context.Context,
	cmd SaveDraftCommand,
	target order.Status,
) (int64, error) {
	description, err := target.RegistryDescription()
	if err != nil {
		return 0, err
	}

	statusID, err := h.gateway.LookupStatusID(ctx, cmd.SessionCtx(), description)
	if err != nil {
		return 0, errs.NewLookupFailureError("status "+description, err)
	}

	return statusID, nil
}

func (h *SaveDraftCommandHandler) audit(
	ctx context.Context,
	uow SessionUoW,
	cmd SaveDraftCommand,
	record *order.TaskRecord,
	action string,
	actionErr error,
) {
	entry := ports.AuditEntry{
		SessionID:   cmd.SessionID(),
		CoverPageNo: record.CoverPageNo(),
		EmployeeID:  record.EmployeeID(),
		Action:      action,
		Outcome:     "success",
		OccurredAt:  time.Now().UTC(),
	}
	if actionErr != nil {
		entry.Outcome = "failure"
		entry.Detail = actionErr.Error()
	}

	_ = uow.AuditLog().Append(ctx, entry)
}
