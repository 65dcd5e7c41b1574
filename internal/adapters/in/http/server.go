package http

import (
	"errors"
	"net/http"

	"officeorder/internal/core/application/usecases/commands"
	"officeorder/internal/core/application/usecases/queries"
	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/generated/servers"
	"officeorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Headers carrying the caller's route credentials. Every credentialed
// operation requires all three; a missing one yields 401 before any
// application logic runs.
const (
	headerSessionID  = "X-Session-Id"
	headerEmployeeID = "X-Employee-Id"
	headerUserRole   = "X-User-Role"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openSessionHandler    commands.OpenSessionCommandHandler
	applyEditHandler      commands.ApplyEditCommandHandler
	saveDraftHandler      commands.SaveDraftCommandHandler
	submitOrderHandler    commands.SubmitOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	switchTemplateHandler commands.SwitchTemplateCommandHandler
	requestPreviewHandler commands.RequestPreviewCommandHandler
	closePreviewHandler   commands.ClosePreviewCommandHandler

	// Query handlers
	getSessionStateHandler     queries.GetSessionStateQueryHandler
	getEmployeeSessionsHandler queries.GetEmployeeSessionsQueryHandler
	getCCRolesHandler          *queries.GetCCRolesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openSessionHandler commands.OpenSessionCommandHandler,
	applyEditHandler commands.ApplyEditCommandHandler,
	saveDraftHandler commands.SaveDraftCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	switchTemplateHandler commands.SwitchTemplateCommandHandler,
	requestPreviewHandler commands.RequestPreviewCommandHandler,
	closePreviewHandler commands.ClosePreviewCommandHandler,
	getSessionStateHandler queries.GetSessionStateQueryHandler,
	getEmployeeSessionsHandler queries.GetEmployeeSessionsQueryHandler,
	getCCRolesHandler *queries.GetCCRolesQueryHandler,
) *Server {
	return &Server{
		openSessionHandler:         openSessionHandler,
		applyEditHandler:           applyEditHandler,
		saveDraftHandler:           saveDraftHandler,
		submitOrderHandler:         submitOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		switchTemplateHandler:      switchTemplateHandler,
		requestPreviewHandler:      requestPreviewHandler,
		closePreviewHandler:        closePreviewHandler,
		getSessionStateHandler:     getSessionStateHandler,
		getEmployeeSessionsHandler: getEmployeeSessionsHandler,
		getCCRolesHandler:          getCCRolesHandler,
	}
}

// OpenSession handles POST /api/v1/sessions - opens or resumes an editing session.
func (s *Server) OpenSession(ctx echo.Context) error {
	sessionCtx, err := sessionContextFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.OpenSessionRequest
	if err := ctx.Bind(&request); err != nil {
		return invalidBody(ctx)
	}

	processType, err := parseProcessType((*string)(request.ProcessType))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewOpenSessionCommand(
		kernel.NewUUID(),
		sessionCtx,
		request.CoverPageNo,
		request.EmployeeId,
		processType,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.openSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.SessionResource{
		SessionId: result.SessionID.Bytes(),
		Form:      toWireForm(result.Form),
		Body:      toWireBody(result.Body),
		Resumed:   result.Resumed,
	})
}

// GetSessionState handles GET /api/v1/sessions/{sessionId} - polls session flags.
func (s *Server) GetSessionState(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetSessionStateQuery(sessionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	state, err := s.getSessionStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SessionState{
		SessionId:   state.SessionID.Bytes(),
		CoverPageNo: state.CoverPageNo,
		EmployeeId:  state.EmployeeID,
		TaskId:      state.TaskID,
		Status:      state.Status,
		State:       state.State,
		Saved:       state.Saved,
		Dirty:       state.Dirty,
		Completed:   state.Completed,
	})
}

// UpdateSessionContent handles PUT /api/v1/sessions/{sessionId}/content -
// replaces the session's form and body after client edits.
func (s *Server) UpdateSessionContent(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var content servers.SessionContent
	if err := ctx.Bind(&content); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewApplyEditCommand(sessionID, fromWireForm(content.Form), fromWireBody(content.Body))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.applyEditHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaveDraft handles POST /api/v1/sessions/{sessionId}/save - saves the order
// as a held draft and acknowledges with the backend's literal message.
func (s *Server) SaveDraft(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionCtx, err := sessionContextFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSaveDraftCommand(sessionID, sessionCtx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	message, err := s.saveDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Message: message})
}

// SubmitOrder handles POST /api/v1/sessions/{sessionId}/submit - submits the
// order for approval and completes the session.
func (s *Server) SubmitOrder(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionCtx, err := sessionContextFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(sessionID, sessionCtx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	message, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Message: message})
}

// DeleteOrder handles POST /api/v1/sessions/{sessionId}/delete - soft-deletes
// the held draft. The client must confirm explicitly.
func (s *Server) DeleteOrder(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionCtx, err := sessionContextFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.DeleteOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewDeleteOrderCommand(sessionID, sessionCtx, request.Confirmed)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SwitchTemplate handles POST /api/v1/sessions/{sessionId}/switch-template -
// resumes a held draft, restarts it fresh, or reverts a declined restart.
func (s *Server) SwitchTemplate(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionCtx, err := sessionContextFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.SwitchTemplateRequest
	if err := ctx.Bind(&request); err != nil {
		return invalidBody(ctx)
	}

	processType, err := parseProcessType((*string)(request.ProcessType))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSwitchTemplateCommand(
		sessionID,
		sessionCtx,
		request.CoverPageNo,
		request.EmployeeId,
		processType,
		request.Restart,
		request.Confirmed,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.switchTemplateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SwitchTemplateResult{
		SessionId: result.SessionID.Bytes(),
		Form:      toWireForm(result.Form),
		Body:      toWireBody(result.Body),
		Resumed:   result.Resumed,
		Restarted: result.Restarted,
		Reverted:  result.Reverted,
	})
}

// OpenPreview handles POST /api/v1/sessions/{sessionId}/preview - renders a
// draft preview of the document.
func (s *Server) OpenPreview(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionCtx, err := sessionContextFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRequestPreviewCommand(sessionID, sessionCtx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	document, err := s.requestPreviewHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PreviewDocument{
		Html:       document.HTML,
		HeaderHtml: document.HeaderHTML,
		FooterHtml: document.FooterHTML,
	})
}

// ClosePreview handles POST /api/v1/sessions/{sessionId}/preview/close -
// returns the session from previewing to editing.
func (s *Server) ClosePreview(ctx echo.Context, sessionId openapi_types.UUID) error {
	sessionID, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewClosePreviewCommand(sessionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.closePreviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEmployeeSessions handles GET /api/v1/employees/{employeeId}/sessions -
// lists the employee's open editing sessions.
func (s *Server) GetEmployeeSessions(ctx echo.Context, employeeId string) error {
	query, err := queries.NewGetEmployeeSessionsQuery(employeeId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	sessions, err := s.getEmployeeSessionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.SessionSummary, len(sessions))
	for i, item := range sessions {
		response[i] = servers.SessionSummary{
			SessionId:   item.SessionID.Bytes(),
			CoverPageNo: item.CoverPageNo,
			Status:      item.Status,
			Saved:       item.Saved,
			Dirty:       item.Dirty,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCcRoles handles GET /api/v1/employees/{employeeId}/cc-roles - lists the
// circulation roles available to the employee.
func (s *Server) GetCcRoles(ctx echo.Context, employeeId string) error {
	sessionCtx, err := sessionContextFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCCRolesQuery(sessionCtx, employeeId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	roles, err := s.getCCRolesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.CcRole, len(roles))
	for i, role := range roles {
		response[i] = servers.CcRole{Code: role.Code, Name: role.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// sessionContextFromHeaders builds the caller's route credentials from the
// request headers.
func sessionContextFromHeaders(ctx echo.Context) (kernel.SessionContext, error) {
	header := ctx.Request().Header
	return kernel.NewSessionContext(
		header.Get(headerSessionID),
		header.Get(headerEmployeeID),
		header.Get(headerUserRole),
	)
}

func parseProcessType(raw *string) (order.ProcessType, error) {
	if raw == nil {
		return order.ProcessNone, nil
	}
	return order.ParseProcessType(*raw)
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// errorResponse maps application errors onto HTTP statuses. Validation
// failures carry the field summary so the client can show which fields to
// fix; everything else returns the error text as-is.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, errs.ErrAuthMissing):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrValidationFailed):
		status = http.StatusUnprocessableEntity
		var validationErr *errs.ValidationError
		if errors.As(err, &validationErr) {
			message = validationErr.Summary()
		}
	case errors.Is(err, errs.ErrPreviewBlocked),
		errors.Is(err, session.ErrSessionBusy),
		errors.Is(err, session.ErrSessionCompleted):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, commands.ErrDeleteNotConfirmed):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrLookupFailed),
		errors.Is(err, errs.ErrTransport),
		errors.Is(err, errs.ErrProtocol),
		errors.Is(err, errs.ErrCrypto):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

// toWireForm maps the domain form onto the transport model.
func toWireForm(form order.VisitRequestForm) servers.VisitForm {
	return servers.VisitForm{
		EmployeeId:       form.EmployeeID,
		EmployeeName:     form.EmployeeName,
		Department:       form.Department,
		Designation:      form.Designation,
		VisitFrom:        form.VisitFrom,
		VisitTo:          form.VisitTo,
		NatureOfVisit:    form.NatureOfVisit,
		Country:          form.Country,
		City:             form.City,
		ClaimType:        form.ClaimType,
		SigningAuthority: form.SigningAuthority,
		CcSections:       form.CCSections,
		Remarks:          form.Remarks,
		Priority:         form.Priority,
	}
}

func fromWireForm(form servers.VisitForm) order.VisitRequestForm {
	return order.VisitRequestForm{
		EmployeeID:       form.EmployeeId,
		EmployeeName:     form.EmployeeName,
		Department:       form.Department,
		Designation:      form.Designation,
		VisitFrom:        form.VisitFrom,
		VisitTo:          form.VisitTo,
		NatureOfVisit:    form.NatureOfVisit,
		Country:          form.Country,
		City:             form.City,
		ClaimType:        form.ClaimType,
		SigningAuthority: form.SigningAuthority,
		CCSections:       form.CcSections,
		Remarks:          form.Remarks,
		Priority:         form.Priority,
	}
}

// toWireBody maps the domain document body onto the transport model.
func toWireBody(body order.OrderDocumentBody) servers.DocumentBody {
	return servers.DocumentBody{
		ReferenceNo:   body.ReferenceNo,
		ReferenceDate: body.ReferenceDate,
		Subject:       body.Subject,
		RefSubject:    body.RefSubject,
		BodyHtml:      body.BodyHTML,
		HeaderHtml:    body.HeaderHTML,
		FooterHtml:    body.FooterHTML,
		OrderNo:       body.OrderNo,
	}
}

func fromWireBody(body servers.DocumentBody) order.OrderDocumentBody {
	return order.OrderDocumentBody{
		ReferenceNo:   body.ReferenceNo,
		ReferenceDate: body.ReferenceDate,
		Subject:       body.Subject,
		RefSubject:    body.RefSubject,
		BodyHTML:      body.BodyHtml,
		HeaderHTML:    body.HeaderHtml,
		FooterHTML:    body.FooterHtml,
		OrderNo:       body.OrderNo,
	}
}
