package commands

import (
	"context"

	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/core/domain/services"
	"officeorder/internal/core/ports"
	"officeorder/internal/pkg/errs"
)

// RequestPreviewCommandHandler opens a preview of the session's order.
//
// Preview is gated: it refuses to run unless a signing authority is selected
// and a task id is available, either from a prior save or resolved
// synchronously here. A save in flight for the same record may have minted
// the task id after the session was loaded, which is why the handler
// re-resolves identity instead of trusting a nil task id.
type RequestPreviewCommandHandler struct {
	uowFactory SessionUoWFactory
	gateway    ports.RegistryGateway
	validator  services.ValidationEngine
}

// NewRequestPreviewCommandHandler creates a handler for preview requests.
func NewRequestPreviewCommandHandler(
	uowFactory SessionUoWFactory,
	gateway ports.RegistryGateway,
	validator services.ValidationEngine,
) RequestPreviewCommandHandler {
	return RequestPreviewCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		validator:  validator,
	}
}

// Handle processes the preview request and returns the rendered document.
func (h *RequestPreviewCommandHandler) Handle(ctx context.Context, cmd RequestPreviewCommand) (ports.PreviewDocument, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PreviewDocument{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.PreviewDocument{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	editing, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return ports.PreviewDocument{}, err
	}

	if err = editing.BeginAction(); err != nil {
		return ports.PreviewDocument{}, err
	}
	defer editing.EndAction()

	record := editing.Record()
	form := editing.Form()
	body := editing.Body()

	if err = h.validator.Validate(&form, &body, record.ProcessType(), services.ModePreview); err != nil {
		return ports.PreviewDocument{}, err
	}

	if record.TaskID() == nil {
		identity, resolveErr := h.gateway.ResolveTaskIdentity(
			ctx, cmd.SessionCtx(), record.CoverPageNo(), record.EmployeeID())
		if resolveErr != nil || identity.TaskID == nil {
			return ports.PreviewDocument{}, errs.NewPreviewBlockedError("must save as draft first")
		}
		record.SetIdentity(identity.TaskID, identity.ProcessID)
	}

	document, err := h.gateway.FetchPreview(ctx, cmd.SessionCtx(), *record.TaskID(), record.ProcessID())
	if err != nil {
		return ports.PreviewDocument{}, err
	}

	if err = editing.Apply(session.PreviewOpened{}); err != nil {
		return ports.PreviewDocument{}, err
	}
	if err = sessionRepo.Update(ctx, editing); err != nil {
		return ports.PreviewDocument{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.PreviewDocument{}, err
	}

	return document, nil
}
