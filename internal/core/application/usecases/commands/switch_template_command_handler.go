package commands

import (
	"context"
	"time"

	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/core/ports"
	"officeorder/internal/pkg/errs"
)

// SwitchTemplateResult describes the session opened after a template switch.
type SwitchTemplateResult struct {
	OpenSessionResult

	// Restarted is true when the held draft was soft-deleted and a fresh
	// empty session was opened in its place.
	Restarted bool

	// Reverted is true when a destructive restart was declined and the
	// selection fell back to resuming the existing draft.
	Reverted bool
}

// SwitchTemplateCommandHandler decides between resuming an existing held
// draft and discarding it for a fresh start.
//
// A destructive restart option requires confirmation: confirmed, the held
// draft is soft-deleted and a brand-new session opens with the same identity
// and empty content; declined, no status update is issued and the existing
// draft opens unchanged. Non-destructive selections (amendment,
// cancellation) open the existing content with the process type set.
type SwitchTemplateCommandHandler struct {
	uowFactory SessionUoWFactory
	gateway    ports.RegistryGateway
	opener     OpenSessionCommandHandler
}

// NewSwitchTemplateCommandHandler creates a handler for template switches.
func NewSwitchTemplateCommandHandler(
	uowFactory SessionUoWFactory,
	gateway ports.RegistryGateway,
	opener OpenSessionCommandHandler,
) SwitchTemplateCommandHandler {
	return SwitchTemplateCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		opener:     opener,
	}
}

// Handle processes the template switch and returns the opened session.
func (h *SwitchTemplateCommandHandler) Handle(ctx context.Context, cmd SwitchTemplateCommand) (SwitchTemplateResult, error) {
	if err := cmd.Validate(); err != nil {
		return SwitchTemplateResult{}, err
	}

	if cmd.Restart() && cmd.Confirmed() {
		return h.restart(ctx, cmd)
	}

	// A declined restart reverts to resuming; the process type reverts with
	// it. Non-destructive selections resume with the chosen type.
	processType := cmd.ProcessType()
	reverted := false
	if cmd.Restart() {
		processType = order.ProcessNone
		reverted = true
	}

	openCmd, err := NewOpenSessionCommand(
		cmd.SessionID(), cmd.SessionCtx(), cmd.CoverPageNo(), cmd.EmployeeID(), processType)
	if err != nil {
		return SwitchTemplateResult{}, err
	}

	opened, err := h.opener.Handle(ctx, openCmd)
	if err != nil {
		return SwitchTemplateResult{}, err
	}

	return SwitchTemplateResult{OpenSessionResult: opened, Reverted: reverted}, nil
}

// restart soft-deletes the held draft and opens a fresh empty session with
// the same record identity.
func (h *SwitchTemplateCommandHandler) restart(ctx context.Context, cmd SwitchTemplateCommand) (SwitchTemplateResult, error) {
	identity, err := h.gateway.ResolveTaskIdentity(
		ctx, cmd.SessionCtx(), cmd.CoverPageNo(), cmd.EmployeeID())
	if err != nil {
		return SwitchTemplateResult{}, errs.NewLookupFailureError("task identity", err)
	}

	held, err := order.RestoreTaskRecord(
		cmd.CoverPageNo(), cmd.EmployeeID(),
		identity.TaskID, identity.ProcessID, 0, order.Draft, order.ProcessNone)
	if err != nil {
		return SwitchTemplateResult{}, err
	}

	description, err := order.Deleted.RegistryDescription()
	if err != nil {
		return SwitchTemplateResult{}, err
	}
	statusID, err := h.gateway.LookupStatusID(ctx, cmd.SessionCtx(), description)
	if err != nil {
		return SwitchTemplateResult{}, errs.NewLookupFailureError("status "+description, err)
	}

	if err = h.gateway.UpdateTaskStatus(ctx, cmd.SessionCtx(), held, statusID); err != nil {
		return SwitchTemplateResult{}, err
	}

	record, err := order.NewTaskRecord(cmd.CoverPageNo(), cmd.EmployeeID(), cmd.ProcessType())
	if err != nil {
		return SwitchTemplateResult{}, err
	}

	form := order.VisitRequestForm{EmployeeID: cmd.EmployeeID()}
	body := order.OrderDocumentBody{}

	editing, err := session.NewEditingSession(cmd.SessionID(), record, form, body)
	if err != nil {
		return SwitchTemplateResult{}, err
	}
	if err = editing.Apply(session.LoadCompleted{}); err != nil {
		return SwitchTemplateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SwitchTemplateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, editing); err != nil {
		return SwitchTemplateResult{}, err
	}

	_ = uow.AuditLog().Append(ctx, ports.AuditEntry{
		SessionID:   cmd.SessionID(),
		CoverPageNo: cmd.CoverPageNo(),
		EmployeeID:  cmd.EmployeeID(),
		Action:      "restart",
		Outcome:     "success",
		OccurredAt:  time.Now().UTC(),
	})

	if err = uow.Commit(ctx); err != nil {
		return SwitchTemplateResult{}, err
	}

	return SwitchTemplateResult{
		OpenSessionResult: OpenSessionResult{
			SessionID: cmd.SessionID(),
			Form:      form,
			Body:      body,
		},
		Restarted: true,
	}, nil
}
