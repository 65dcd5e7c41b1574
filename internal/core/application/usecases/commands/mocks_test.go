package commands_test

import (
	"context"
	"testing"
	"time"

	"officeorder/internal/core/application/usecases/commands"
	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegistryGateway struct{ mock.Mock }

func (m *MockRegistryGateway) LookupStatusID(ctx context.Context, sessionCtx kernel.SessionContext, statusDescription string) (int64, error) {
	args := m.Called(ctx, sessionCtx, statusDescription)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistryGateway) ResolveTaskIdentity(ctx context.Context, sessionCtx kernel.SessionContext, coverPageNo, employeeID string) (ports.TaskIdentity, error) {
	args := m.Called(ctx, sessionCtx, coverPageNo, employeeID)
	return args.Get(0).(ports.TaskIdentity), args.Error(1)
}

func (m *MockRegistryGateway) SaveOrder(
	ctx context.Context,
	sessionCtx kernel.SessionContext,
	record *order.TaskRecord,
	form *order.VisitRequestForm,
	body *order.OrderDocumentBody,
	statusID int64,
	forApproval bool,
) (string, error) {
	args := m.Called(ctx, sessionCtx, record, form, body, statusID, forApproval)
	return args.String(0), args.Error(1)
}

func (m *MockRegistryGateway) UpdateTaskStatus(ctx context.Context, sessionCtx kernel.SessionContext, record *order.TaskRecord, statusID int64) error {
	args := m.Called(ctx, sessionCtx, record, statusID)
	return args.Error(0)
}

func (m *MockRegistryGateway) FetchPreview(ctx context.Context, sessionCtx kernel.SessionContext, taskID, processID int64) (ports.PreviewDocument, error) {
	args := m.Called(ctx, sessionCtx, taskID, processID)
	return args.Get(0).(ports.PreviewDocument), args.Error(1)
}

func (m *MockRegistryGateway) FetchCCRoles(ctx context.Context, sessionCtx kernel.SessionContext, employeeID string) ([]ports.CCRole, error) {
	args := m.Called(ctx, sessionCtx, employeeID)
	return args.Get(0).([]ports.CCRole), args.Error(1)
}

func (m *MockRegistryGateway) FetchOrderContent(ctx context.Context, sessionCtx kernel.SessionContext, coverPageNo, employeeID string) (ports.OrderContent, error) {
	args := m.Called(ctx, sessionCtx, coverPageNo, employeeID)
	return args.Get(0).(ports.OrderContent), args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, aggregate *session.EditingSession) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, aggregate *session.EditingSession) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.EditingSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*session.EditingSession), args.Error(1)
}

func (m *MockSessionRepository) GetAllIdleBefore(ctx context.Context, cutoff time.Time) ([]*session.EditingSession, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]*session.EditingSession), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Append(ctx context.Context, entry ports.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockSessionUoW struct{ mock.Mock }

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

func (m *MockSessionUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

func testSessionCtx(t *testing.T) kernel.SessionContext {
	t.Helper()

	sessionCtx, err := kernel.NewSessionContext("web-7F3A", "E1024", "Section Officer")
	require.NoError(t, err)
	return sessionCtx
}

func draftFormContent() (order.VisitRequestForm, order.OrderDocumentBody) {
	form := order.VisitRequestForm{
		EmployeeID:    "E1024",
		NatureOfVisit: "Conference",
		VisitFrom:     "2025-01-10",
		VisitTo:       "2025-01-12",
		Country:       "India",
		City:          "Chennai",
	}
	return form, order.OrderDocumentBody{}
}

func submitFormContent() (order.VisitRequestForm, order.OrderDocumentBody) {
	form, _ := draftFormContent()
	form.SigningAuthority = "Registrar"
	form.CCSections = []string{"Registrar"}
	form.Remarks = "ok"
	body := order.OrderDocumentBody{
		Subject:  "Permission for international conference travel",
		BodyHTML: "<p>The employee is permitted to attend the conference as detailed below.</p>",
	}
	return form, body
}

// freshEditingSession is an open session for a record that has never been
// saved: status New, no task id.
func freshEditingSession(t *testing.T, form order.VisitRequestForm, body order.OrderDocumentBody) *session.EditingSession {
	t.Helper()

	record, err := order.NewTaskRecord("OO/2025/0042", "E1024", order.ProcessNone)
	require.NoError(t, err)

	editing, err := session.NewEditingSession(kernel.NewUUID(), record, form, body)
	require.NoError(t, err)
	require.NoError(t, editing.Apply(session.LoadCompleted{}))
	return editing
}

// heldEditingSession is an open session for a saved-and-held draft with a
// resolved task identity.
func heldEditingSession(t *testing.T, form order.VisitRequestForm, body order.OrderDocumentBody) *session.EditingSession {
	t.Helper()

	taskID := int64(7781)
	record, err := order.RestoreTaskRecord(
		"OO/2025/0042", "E1024", &taskID, 1, 11, order.Draft, order.ProcessNone)
	require.NoError(t, err)

	editing, err := session.RestoreEditingSession(
		kernel.NewUUID(), record, form, body, session.Editing, true, false, false)
	require.NoError(t, err)
	return editing
}
