package commands

import (
	"context"
	"time"

	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/ports"
	"officeorder/internal/pkg/errs"
)

// DeleteOrderCommandHandler soft-deletes a held draft: it resolves the
// numeric "Deleted" status code, issues the status-update call keyed by the
// record's cover page number and employee id, and completes the session so
// the caller closes the editor and refreshes any listing view. The record is
// never physically removed.
type DeleteOrderCommandHandler struct {
	uowFactory SessionUoWFactory
	gateway    ports.RegistryGateway
}

// NewDeleteOrderCommandHandler creates a handler for soft-delete operations.
func NewDeleteOrderCommandHandler(
	uowFactory SessionUoWFactory,
	gateway ports.RegistryGateway,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the delete command. Fails with ErrDeleteNotConfirmed
// before any network traffic when the user has not confirmed.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Confirmed() {
		return ErrDeleteNotConfirmed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	editing, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = editing.BeginAction(); err != nil {
		return err
	}
	defer editing.EndAction()

	record := editing.Record()

	// Only a held draft can be soft-deleted; reject before any network call.
	if _, err = record.Status().Delete(); err != nil {
		return err
	}

	description, err := order.Deleted.RegistryDescription()
	if err != nil {
		return err
	}
	statusID, err := h.gateway.LookupStatusID(ctx, cmd.SessionCtx(), description)
	if err != nil {
		return errs.NewLookupFailureError("status "+description, err)
	}

	if err = h.gateway.UpdateTaskStatus(ctx, cmd.SessionCtx(), record, statusID); err != nil {
		h.audit(ctx, uow, cmd, record, err)
		_ = uow.Commit(ctx)
		return err
	}

	if err = record.MarkDeleted(statusID); err != nil {
		return err
	}
	editing.Complete()

	if err = sessionRepo.Update(ctx, editing); err != nil {
		return err
	}
	h.audit(ctx, uow, cmd, record, nil)

	return uow.Commit(ctx)
}

func (h *DeleteOrderCommandHandler) audit(
	ctx context.Context,
	uow SessionUoW,
	cmd DeleteOrderCommand,
	record *order.TaskRecord,
	actionErr error,
) {
	entry := ports.AuditEntry{
		SessionID:   cmd.SessionID(),
		CoverPageNo: record.CoverPageNo(),
		EmployeeID:  record.EmployeeID(),
		Action:      "delete",
		Outcome:     "success",
		OccurredAt:  time.Now().UTC(),
	}
	if actionErr != nil {
		entry.Outcome = "failure"
		entry.Detail = actionErr.Error()
	}

	_ = uow.AuditLog().Append(ctx, entry)
}
