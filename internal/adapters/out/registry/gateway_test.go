package registry_test

import (
	"net/http"
	"testing"

	"officeorder/internal/adapters/out/registry"
	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "route-token-9c4e"

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*registry.Gateway, *registry.Envelope) {
	t.Helper()

	client, envelope := newTestClient(t, handler)
	gateway, err := registry.NewGateway(client, testToken, testLogger())
	require.NoError(t, err)
	return gateway, envelope
}

func gatewaySessionCtx(t *testing.T) kernel.SessionContext {
	t.Helper()

	sessionCtx, err := kernel.NewSessionContext("web-7F3A", "E1024", "Section Officer")
	require.NoError(t, err)
	return sessionCtx
}

func heldRecord(t *testing.T) *order.TaskRecord {
	t.Helper()

	taskID := int64(7781)
	record, err := order.RestoreTaskRecord(
		"OO/2025/0042", "E1024", &taskID, 1, 11, order.Draft, order.ProcessNone)
	require.NoError(t, err)
	return record
}

func TestGateway_LookupStatusID(t *testing.T) {
	t.Run("should resolve a numeric status id", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/getTaskStatusId", r.URL.Path)

			payload := decryptRequest(t, envelope, r)
			assert.Equal(t, "saveandhold", payload["statusdescription"])
			assert.Equal(t, testToken, payload["token"])
			assert.Equal(t, "web-7F3A", payload["session_id"])

			encryptResponse(t, envelope, w, map[string]any{"statusid": 11}, "Data")
		})
		envelope = env

		statusID, err := gateway.LookupStatusID(t.Context(), gatewaySessionCtx(t), "saveandhold")

		require.NoError(t, err)
		assert.Equal(t, int64(11), statusID)
	})

	t.Run("should accept a stringified status id", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			encryptResponse(t, envelope, w, []map[string]any{{"statusid": "12"}}, "Data")
		})
		envelope = env

		statusID, err := gateway.LookupStatusID(t.Context(), gatewaySessionCtx(t), "ongoing")

		require.NoError(t, err)
		assert.Equal(t, int64(12), statusID)
	})

	t.Run("should fail when the response has no status id", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			encryptResponse(t, envelope, w, map[string]any{"unexpected": true}, "Data")
		})
		envelope = env

		_, err := gateway.LookupStatusID(t.Context(), gatewaySessionCtx(t), "Deleted")

		assert.ErrorIs(t, err, errs.ErrProtocol)
	})
}

func TestGateway_ResolveTaskIdentity(t *testing.T) {
	t.Run("should resolve task and process ids", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/getTaskDetails", r.URL.Path)

			payload := decryptRequest(t, envelope, r)
			assert.Equal(t, "OO/2025/0042", payload["coverpageno"])
			assert.Equal(t, "E1024", payload["employeeid"])
			assert.Equal(t, "web-7F3A", payload["P_id"])

			encryptResponse(t, envelope, w, map[string]any{
				"task_id":    7781,
				"process_id": 2,
			}, "Data")
		})
		envelope = env

		identity, err := gateway.ResolveTaskIdentity(
			t.Context(), gatewaySessionCtx(t), "OO/2025/0042", "E1024")

		require.NoError(t, err)
		require.NotNil(t, identity.TaskID)
		assert.Equal(t, int64(7781), *identity.TaskID)
		assert.Equal(t, int64(2), identity.ProcessID)
	})

	t.Run("should treat a null task id as never saved", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			encryptResponse(t, envelope, w, map[string]any{
				"task_id":    nil,
				"process_id": nil,
			}, "Data")
		})
		envelope = env

		identity, err := gateway.ResolveTaskIdentity(
			t.Context(), gatewaySessionCtx(t), "OO/2025/0042", "E1024")

		require.NoError(t, err)
		assert.Nil(t, identity.TaskID)
		assert.Equal(t, int64(1), identity.ProcessID)
	})
}

func TestGateway_SaveOrder(t *testing.T) {
	form := &order.VisitRequestForm{
		EmployeeID:       "E1024",
		EmployeeName:     "A. Kumar",
		Department:       "Computer Science",
		Designation:      "Assistant Professor",
		VisitFrom:        "2025-09-01",
		VisitTo:          "2025-09-03",
		NatureOfVisit:    "Conference",
		Country:          "India",
		City:             "Chennai",
		ClaimType:        "TA/DA",
		SigningAuthority: "Registrar",
		CCSections:       []string{"Registrar", "Accounts Section"},
		Remarks:          "Approved by the head of department",
		Priority:         "Normal",
	}
	body := &order.OrderDocumentBody{
		ReferenceNo: "REF/2025/19",
		Subject:     "Permission for conference travel",
		BodyHTML:    "<p>The employee is permitted to travel for the stated purpose.</p>",
	}

	t.Run("should post the full payload with the backend field names", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/saveOfficeOrder", r.URL.Path)

			payload := decryptRequest(t, envelope, r)
			assert.Equal(t, "OO/2025/0042", payload["p_cover_page_no"])
			assert.Equal(t, "E1024", payload["p_employee_id"])
			assert.Equal(t, "2025-09-01T00:00:00+05:30", payload["p_visit_from"])
			assert.Equal(t, "2025-09-03T00:00:00+05:30", payload["p_visit_to"])
			assert.Equal(t, float64(3), payload["p_duration"])
			assert.Equal(t, "Registrar,Accounts Section", payload["p_cc_to"])
			assert.Equal(t, float64(11), payload["p_task_status_id"])
			assert.Equal(t, "Section Officer", payload["p_user_role"])
			assert.Equal(t, "N", payload["p_email_flag"])
			assert.Equal(t, testToken, payload["token"])
			assert.Contains(t, payload["p_updated_on"], "+05:30")

			encryptResponse(t, envelope, w, "Record saved successfully", "Data")
		})
		envelope = env

		message, err := gateway.SaveOrder(
			t.Context(), gatewaySessionCtx(t), heldRecord(t), form, body, 11, false)

		require.NoError(t, err)
		assert.Equal(t, "Record saved successfully", message)
	})

	t.Run("should flag the email route on submit for approval", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			payload := decryptRequest(t, envelope, r)
			assert.Equal(t, "Y", payload["p_email_flag"])

			encryptResponse(t, envelope, w, map[string]any{"message": "Task routed"}, "Data")
		})
		envelope = env

		message, err := gateway.SaveOrder(
			t.Context(), gatewaySessionCtx(t), heldRecord(t), form, body, 12, true)

		require.NoError(t, err)
		assert.Equal(t, "Task routed", message)
	})
}

func TestGateway_UpdateTaskStatus(t *testing.T) {
	t.Run("should post the status transition", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/updateTaskStatus", r.URL.Path)

			payload := decryptRequest(t, envelope, r)
			assert.Equal(t, "OO/2025/0042", payload["p_coverpageno"])
			assert.Equal(t, "E1024", payload["p_employeeid"])
			assert.Equal(t, float64(15), payload["p_taskstatusid"])
			assert.Equal(t, "E1024", payload["p_updatedby"])

			encryptResponse(t, envelope, w, map[string]any{"message": "updated"}, "Data")
		})
		envelope = env

		err := gateway.UpdateTaskStatus(t.Context(), gatewaySessionCtx(t), heldRecord(t), 15)

		assert.NoError(t, err)
	})
}

func TestGateway_FetchPreview(t *testing.T) {
	t.Run("should fetch the rendered draft document", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/generateOfficeOrder", r.URL.Path)

			payload := decryptRequest(t, envelope, r)
			assert.Equal(t, float64(7781), payload["taskId"])
			assert.Equal(t, float64(1), payload["processId"])
			assert.Equal(t, "draft", payload["status"])
			assert.Equal(t, "draft", payload["templateType"])

			encryptResponse(t, envelope, w, map[string]any{
				"order_html":  "<p>order body</p>",
				"header_html": "<div>header</div>",
				"footer_html": "<div>footer</div>",
			}, "Data")
		})
		envelope = env

		document, err := gateway.FetchPreview(t.Context(), gatewaySessionCtx(t), 7781, 1)

		require.NoError(t, err)
		assert.Equal(t, "<p>order body</p>", document.HTML)
		assert.Equal(t, "<div>header</div>", document.HeaderHTML)
		assert.Equal(t, "<div>footer</div>", document.FooterHTML)
	})
}

func TestGateway_FetchCCRoles(t *testing.T) {
	t.Run("should list circulation roles", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			payload := decryptRequest(t, envelope, r)
			assert.Equal(t, "E1024", payload["employeeid"])

			encryptResponse(t, envelope, w, []map[string]any{
				{"role_code": "REG", "role_name": "Registrar"},
				{"role_code": "", "role_name": "Accounts Section"},
				{"role_code": "X", "role_name": ""},
			}, "Data")
		})
		envelope = env

		roles, err := gateway.FetchCCRoles(t.Context(), gatewaySessionCtx(t), "E1024")

		require.NoError(t, err)
		require.Len(t, roles, 2)
		assert.Equal(t, "Registrar", roles[0].Name)
		assert.Equal(t, "Accounts Section", roles[1].Name)
	})
}

func TestGateway_FetchOrderContent(t *testing.T) {
	t.Run("should map stored content back into the form", func(t *testing.T) {
		var envelope *registry.Envelope
		gateway, env := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/getOfficeOrderContent", r.URL.Path)

			encryptResponse(t, envelope, w, map[string]any{
				"employee_name":   "A. Kumar",
				"visit_from":      "2025-09-01T00:00:00+05:30",
				"visit_to":        "2025-09-03T00:00:00+05:30",
				"nature_of_visit": "Conference",
				"country":         "India",
				"city_town":       "Chennai",
				"cc_to":           "Registrar, Accounts Section",
				"subject":         "Permission for conference travel",
				"body_html":       "<p>body</p>",
				"task_status_id":  11,
				"status":          "Draft",
			}, "Data")
		})
		envelope = env

		content, err := gateway.FetchOrderContent(
			t.Context(), gatewaySessionCtx(t), "OO/2025/0042", "E1024")

		require.NoError(t, err)
		assert.Equal(t, "2025-09-01", content.Form.VisitFrom)
		assert.Equal(t, "2025-09-03", content.Form.VisitTo)
		assert.Equal(t, []string{"Registrar", "Accounts Section"}, content.Form.CCSections)
		assert.Equal(t, "E1024", content.Form.EmployeeID)
		assert.Equal(t, int64(11), content.TaskStatusID)
		assert.Equal(t, "Draft", content.Status)
	})
}
