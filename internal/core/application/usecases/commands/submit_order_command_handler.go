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

// SubmitOrderCommandHandler executes the submit pipeline. Submit runs the
// full submit-mode rule set before any network traffic, resolves the
// "ongoing" status code, and issues the save call with the approval flag
// set. On success the session is completed and the caller is expected to
// close the editor.
type SubmitOrderCommandHandler struct {
	uowFactory SessionUoWFactory
	gateway    ports.RegistryGateway
	validator  services.ValidationEngine
}

// NewSubmitOrderCommandHandler creates a handler for submit operations.
func NewSubmitOrderCommandHandler(
	uowFactory SessionUoWFactory,
	gateway ports.RegistryGateway,
	validator services.ValidationEngine,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		validator:  validator,
	}
}

// Handle processes the submit command and returns the backend's literal
// response message for the success acknowledgment.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (string, error) {
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

	if err = h.validator.Validate(&form, &body, record.ProcessType(), services.ModeSubmit); err != nil {
		return "", err
	}

	description, err := order.Submitted.RegistryDescription()
	if err != nil {
		return "", err
	}
	statusID, err := h.gateway.LookupStatusID(ctx, cmd.SessionCtx(), description)
	if err != nil {
		return "", errs.NewLookupFailureError("status "+description, err)
	}

	message, err := h.gateway.SaveOrder(ctx, cmd.SessionCtx(), record, &form, &body, statusID, true)
	if err != nil {
		h.audit(ctx, uow, cmd, record, err)
		_ = uow.Commit(ctx)
		return "", err
	}

	if err = record.MarkSubmitted(statusID); err != nil {
		return "", err
	}
	if err = editing.Apply(session.SubmitSucceeded{}); err != nil {
		return "", err
	}

	if err = sessionRepo.Update(ctx, editing); err != nil {
		return "", err
	}
	h.audit(ctx, uow, cmd, record, nil)

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return message, nil
}

func (h *SubmitOrderCommandHandler) audit(
	ctx context.Context,
	uow SessionUoW,
	cmd SubmitOrderCommand,
	record *order.TaskRecord,
	actionErr error,
) {
	entry := ports.AuditEntry{
		SessionID:   cmd.SessionID(),
		CoverPageNo: record.CoverPageNo(),
		EmployeeID:  record.EmployeeID(),
		Action:      "submit",
		Outcome:     "success",
		OccurredAt:  time.Now().UTC(),
	}
	if actionErr != nil {
		entry.Outcome = "failure"
		entry.Detail = actionErr.Error()
	}

	_ = uow.AuditLog().Append(ctx, entry)
}
