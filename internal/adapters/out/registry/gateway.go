package registry

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/ports"
	"officeorder/internal/pkg/errs"
)

// Backend route names. These are fixed by the registry deployment.
const (
	endpointSaveOrder      = "saveOfficeOrder"
	endpointStatusLookup   = "getTaskStatusId"
	endpointIdentityLookup = "getTaskDetails"
	endpointStatusUpdate   = "updateTaskStatus"
	endpointPreview        = "generateOfficeOrder"
	endpointCCRoles        = "getCcRoles"
	endpointOrderContent   = "getOfficeOrderContent"
)

const defaultSaveMessage = "Record saved successfully"

// Gateway implements the registry port over the secure envelope client. It
// owns payload assembly, the shared route token, and decoding of the loosely
// typed JSON the backend returns.
type Gateway struct {
	client *Client
	token  string
	logger *slog.Logger
	now    func() time.Time
}

// NewGateway creates a Gateway over the given protocol client. The token is
// the shared route credential stamped into every plaintext payload.
func NewGateway(client *Client, token string, logger *slog.Logger) (*Gateway, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if token == "" {
		return nil, errs.NewValueIsRequiredError("route token")
	}

	return &Gateway{
		client: client,
		token:  token,
		logger: logger.With("component", "registry-gateway"),
		now:    time.Now,
	}, nil
}

// LookupStatusID resolves a status description to its numeric code. A
// response without a parsable statusid is an error; callers never guess
// status codes.
func (g *Gateway) LookupStatusID(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	statusDescription string,
) (int64, error) {
	result, err := g.client.Call(ctx, endpointStatusLookup, statusLookupPayload{
		StatusDescription: statusDescription,
		Token:             g.token,
		SessionID:         sessionCtx.SessionID(),
	})
	if err != nil {
		return 0, err
	}

	record, ok := result.FirstRecord()
	if !ok {
		return 0, errs.NewProtocolError("status lookup returned no record")
	}

	statusID, ok := numberField(record, "statusid")
	if !ok {
		return 0, errs.NewProtocolError("status lookup returned no statusid")
	}
	return statusID, nil
}

// ResolveTaskIdentity fetches the task/process identity of a visit row. A
// null task_id in the response is legitimate and means the row has never
// been saved.
func (g *Gateway) ResolveTaskIdentity(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	coverPageNo, employeeID string,
) (ports.TaskIdentity, error) {
	result, err := g.client.Call(ctx, endpointIdentityLookup, identityLookupPayload{
		PID:         sessionCtx.SessionID(),
		CoverPageNo: coverPageNo,
		EmployeeID:  employeeID,
		Token:       g.token,
	})
	if err != nil {
		return ports.TaskIdentity{}, err
	}

	record, ok := result.FirstRecord()
	if !ok {
		return ports.TaskIdentity{}, errs.NewProtocolError("identity lookup returned no record")
	}

	identity := ports.TaskIdentity{ProcessID: 1}
	if taskID, found := numberField(record, "task_id"); found {
		identity.TaskID = &taskID
	}
	if processID, found := numberField(record, "process_id"); found && processID > 0 {
		identity.ProcessID = processID
	}
	return identity, nil
}

// SaveOrder posts the full document payload, for save-and-hold or for
// approval routing, and returns the backend's acknowledgement message.
func (g *Gateway) SaveOrder(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	record *order.TaskRecord,
	form *order.VisitRequestForm,
	body *order.OrderDocumentBody,
	statusID int64,
	forApproval bool,
) (string, error) {
	payload := buildSavePayload(sessionCtx, record, form, body, statusID, g.token, g.now())
	if forApproval {
		payload.EmailFlag = "Y"
	}

	result, err := g.client.Call(ctx, endpointSaveOrder, payload)
	if err != nil {
		return "", err
	}

	return saveMessage(result), nil
}

// UpdateTaskStatus pushes a bare status transition, used for the soft delete.
func (g *Gateway) UpdateTaskStatus(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	record *order.TaskRecord,
	statusID int64,
) error {
	_, err := g.client.Call(ctx, endpointStatusUpdate, statusUpdatePayload{
		CoverPageNo:  record.CoverPageNo(),
		EmployeeID:   record.EmployeeID(),
		TaskStatusID: statusID,
		UpdatedBy:    sessionCtx.EmployeeID(),
		UpdatedOn:    formatWireTime(g.now()),
		Token:        g.token,
	})
	return err
}

// FetchPreview retrieves the rendered draft document for the given task.
func (g *Gateway) FetchPreview(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	taskID, processID int64,
) (ports.PreviewDocument, error) {
	result, err := g.client.Call(ctx, endpointPreview, previewPayload{
		TaskID:       taskID,
		ProcessID:    processID,
		Status:       "draft",
		TemplateType: "draft",
		Token:        g.token,
	})
	if err != nil {
		return ports.PreviewDocument{}, err
	}

	record, ok := result.FirstRecord()
	if !ok {
		return ports.PreviewDocument{}, errs.NewProtocolError("preview returned no document")
	}

	return ports.PreviewDocument{
		HTML:       stringField(record, "order_html"),
		HeaderHTML: stringField(record, "header_html"),
		FooterHTML: stringField(record, "footer_html"),
	}, nil
}

// FetchCCRoles lists the circulation roles available to an employee.
func (g *Gateway) FetchCCRoles(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	employeeID string,
) ([]ports.CCRole, error) {
	result, err := g.client.Call(ctx, endpointCCRoles, ccRolesPayload{
		EmployeeID: employeeID,
		Token:      g.token,
	})
	if err != nil {
		return nil, err
	}

	if result.Kind != ResultList {
		return nil, errs.NewProtocolError("cc roles lookup returned no list")
	}

	roles := make([]ports.CCRole, 0, len(result.List))
	for _, record := range result.List {
		role := ports.CCRole{
			Code: stringField(record, "role_code"),
			Name: stringField(record, "role_name"),
		}
		if role.Name == "" {
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// FetchOrderContent retrieves the stored content of a held draft so an
// interrupted session can resume with the saved values.
func (g *Gateway) FetchOrderContent(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	coverPageNo, employeeID string,
) (ports.OrderContent, error) {
	result, err := g.client.Call(ctx, endpointOrderContent, orderContentPayload{
		CoverPageNo: coverPageNo,
		EmployeeID:  employeeID,
		Token:       g.token,
	})
	if err != nil {
		return ports.OrderContent{}, err
	}

	record, ok := result.FirstRecord()
	if !ok {
		return ports.OrderContent{}, errs.NewProtocolError("order content lookup returned no record")
	}

	content := ports.OrderContent{
		Form: order.VisitRequestForm{
			EmployeeID:       employeeID,
			EmployeeName:     stringField(record, "employee_name"),
			Department:       stringField(record, "department"),
			Designation:      stringField(record, "designation"),
			VisitFrom:        parseWireDate(stringField(record, "visit_from")),
			VisitTo:          parseWireDate(stringField(record, "visit_to")),
			NatureOfVisit:    stringField(record, "nature_of_visit"),
			Country:          stringField(record, "country"),
			City:             stringField(record, "city_town"),
			ClaimType:        stringField(record, "claim_type"),
			SigningAuthority: stringField(record, "signature_html"),
			CCSections:       splitCCList(stringField(record, "cc_to")),
			Remarks:          stringField(record, "remarks"),
			Priority:         stringField(record, "priority"),
		},
		Body: order.OrderDocumentBody{
			ReferenceNo:   stringField(record, "order_no"),
			ReferenceDate: stringField(record, "order_date"),
			Subject:       stringField(record, "subject"),
			RefSubject:    stringField(record, "reference"),
			BodyHTML:      stringField(record, "body_html"),
			HeaderHTML:    stringField(record, "header_html"),
			FooterHTML:    stringField(record, "footer_html"),
			OrderNo:       stringField(record, "original_order_no"),
		},
		Status: stringField(record, "status"),
	}
	if statusID, found := numberField(record, "task_status_id"); found {
		content.TaskStatusID = statusID
	}
	return content, nil
}

// saveMessage extracts the acknowledgement from a loosely shaped response.
// Plain-text responses are forwarded verbatim; they carry the backend's own
// error or confirmation wording.
func saveMessage(result RawResult) string {
	if result.Kind == ResultText && strings.TrimSpace(result.Text) != "" {
		return strings.TrimSpace(result.Text)
	}
	if record, ok := result.FirstRecord(); ok {
		if message := stringField(record, "message"); message != "" {
			return message
		}
	}
	return defaultSaveMessage
}

// stringField reads a string-valued key, tolerating null and absent keys.
func stringField(record map[string]any, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}

// numberField reads a numeric key. JSON numbers decode as float64; some
// backend routes stringify them instead, so digit strings are accepted too.
func numberField(record map[string]any, key string) (int64, bool) {
	value, ok := record[key]
	if !ok || value == nil {
		return 0, false
	}

	switch v := value.(type) {
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// parseWireDate converts the backend's full ISO 8601 timestamp back into the
// form's plain date. Values that do not parse are passed through unchanged.
func parseWireDate(wire string) string {
	if wire == "" {
		return ""
	}
	t, err := time.Parse(wireTimeLayout, wire)
	if err != nil {
		return wire
	}
	return t.In(istZone).Format(time.DateOnly)
}

// splitCCList undoes the comma join applied on the way out.
func splitCCList(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sections = append(sections, trimmed)
		}
	}
	return sections
}

var _ ports.RegistryGateway = (*Gateway)(nil)
