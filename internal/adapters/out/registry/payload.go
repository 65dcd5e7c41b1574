package registry

import (
	"strings"
	"time"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
)

// The backend expects timestamps pinned to Indian Standard Time regardless of
// the service host's zone.
var istZone = time.FixedZone("IST", 5*3600+1800)

const wireTimeLayout = "2006-01-02T15:04:05-07:00"

// savePayload is the full document payload for save-and-hold and submit.
// Field names follow the backend's stored-procedure parameter convention
// exactly; renaming any of them breaks the route.
type savePayload struct {
	CoverPageNo     string `json:"p_cover_page_no"`
	EmployeeID      string `json:"p_employee_id"`
	EmployeeName    string `json:"p_employee_name"`
	Department      string `json:"p_department"`
	Designation     string `json:"p_designation"`
	VisitFrom       string `json:"p_visit_from"`
	VisitTo         string `json:"p_visit_to"`
	Duration        int    `json:"p_duration"`
	NatureOfVisit   string `json:"p_nature_of_visit"`
	ClaimType       string `json:"p_claim_type"`
	CityTown        string `json:"p_city_town"`
	Country         string `json:"p_country"`
	HeaderHTML      string `json:"p_header_html"`
	OrderNo         string `json:"p_order_no"`
	OrderDate       string `json:"p_order_date"`
	ToColumn        string `json:"p_to_column"`
	Subject         string `json:"p_subject"`
	Reference       string `json:"p_reference"`
	BodyHTML        string `json:"p_body_html"`
	SignatureHTML   string `json:"p_signature_html"`
	CCTo            string `json:"p_cc_to"`
	FooterHTML      string `json:"p_footer_html"`
	TaskStatusID    int64  `json:"p_task_status_id"`
	ActivitySeqNo   int    `json:"p_activity_seq_no"`
	IsTaskReturn    string `json:"p_is_task_return"`
	IsTaskApproved  string `json:"p_is_task_approved"`
	InitiatedBy     string `json:"p_initiated_by"`
	InitiatedOn     string `json:"p_initiated_on"`
	UpdatedBy       string `json:"p_updated_by"`
	UpdatedOn       string `json:"p_updated_on"`
	ProcessID       int64  `json:"p_process_id"`
	Remarks         string `json:"p_remarks"`
	Priority        string `json:"p_priority"`
	EmailFlag       string `json:"p_email_flag"`
	RejectFlag      string `json:"p_reject_flag"`
	UserRole        string `json:"p_user_role"`
	OrderType       string `json:"p_order_type"`
	OriginalOrderNo string `json:"p_original_order_no"`
	Token           string `json:"token"`
}

// statusLookupPayload resolves a status description to its numeric code.
type statusLookupPayload struct {
	StatusDescription string `json:"statusdescription"`
	Token             string `json:"token"`
	SessionID         string `json:"session_id"`
}

// identityLookupPayload resolves the task/process identity of a visit row.
type identityLookupPayload struct {
	PID         string `json:"P_id"`
	CoverPageNo string `json:"coverpageno"`
	EmployeeID  string `json:"employeeid"`
	Token       string `json:"token"`
}

// statusUpdatePayload drives the soft-delete status transition.
type statusUpdatePayload struct {
	CoverPageNo  string `json:"p_coverpageno"`
	EmployeeID   string `json:"p_employeeid"`
	TaskStatusID int64  `json:"p_taskstatusid"`
	UpdatedBy    string `json:"p_updatedby"`
	UpdatedOn    string `json:"p_updatedon"`
	Token        string `json:"token"`
}

// previewPayload requests the rendered draft document.
type previewPayload struct {
	TaskID       int64  `json:"taskId"`
	ProcessID    int64  `json:"processId"`
	Status       string `json:"status"`
	TemplateType string `json:"templateType"`
	Token        string `json:"token"`
}

// ccRolesPayload lists the circulation roles available to an employee.
type ccRolesPayload struct {
	EmployeeID string `json:"employeeid"`
	Token      string `json:"token"`
}

// orderContentPayload fetches a held draft's stored content.
type orderContentPayload struct {
	CoverPageNo string `json:"coverpageno"`
	EmployeeID  string `json:"employeeid"`
	Token       string `json:"token"`
}

// buildSavePayload assembles the wire payload from the record, the editable
// content and the caller's credentials. now is taken as a parameter so the
// stamped timestamps are deterministic under test.
func buildSavePayload(
	sessionCtx kernel.SessionContext,
	record *order.TaskRecord,
	form *order.VisitRequestForm,
	body *order.OrderDocumentBody,
	statusID int64,
	token string,
	now time.Time,
) savePayload {
	stamped := formatWireTime(now)

	payload := savePayload{
		CoverPageNo:     record.CoverPageNo(),
		EmployeeID:      record.EmployeeID(),
		EmployeeName:    form.EmployeeName,
		Department:      form.Department,
		Designation:     form.Designation,
		VisitFrom:       formatWireDate(form.VisitFrom),
		VisitTo:         formatWireDate(form.VisitTo),
		NatureOfVisit:   form.NatureOfVisit,
		ClaimType:       form.ClaimType,
		CityTown:        form.City,
		Country:         form.Country,
		HeaderHTML:      body.HeaderHTML,
		OrderNo:         body.ReferenceNo,
		OrderDate:       body.ReferenceDate,
		ToColumn:        form.EmployeeName,
		Subject:         body.Subject,
		Reference:       body.RefSubject,
		BodyHTML:        body.BodyHTML,
		SignatureHTML:   form.SigningAuthority,
		CCTo:            strings.Join(form.CCSections, ","),
		FooterHTML:      body.FooterHTML,
		TaskStatusID:    statusID,
		ActivitySeqNo:   1,
		IsTaskReturn:    "N",
		IsTaskApproved:  "N",
		InitiatedBy:     sessionCtx.EmployeeID(),
		InitiatedOn:     stamped,
		UpdatedBy:       sessionCtx.EmployeeID(),
		UpdatedOn:       stamped,
		ProcessID:       record.ProcessID(),
		Remarks:         form.Remarks,
		Priority:        form.Priority,
		EmailFlag:       "N",
		RejectFlag:      "N",
		UserRole:        sessionCtx.Role(),
		OrderType:       record.ProcessType().String(),
		OriginalOrderNo: body.OrderNo,
		Token:           token,
	}

	// Duration is inclusive of both endpoints; left at zero while either
	// date is still blank (legal for a held draft).
	if window, err := form.VisitWindowFromForm(); err == nil {
		payload.Duration = window.DurationDays()
	}

	return payload
}

// formatWireDate turns a form date (YYYY-MM-DD) into the backend's full
// ISO 8601 form pinned to IST. Blank stays blank.
func formatWireDate(formDate string) string {
	if formDate == "" {
		return ""
	}
	t, err := time.ParseInLocation(time.DateOnly, formDate, istZone)
	if err != nil {
		return formDate
	}
	return t.Format(wireTimeLayout)
}

func formatWireTime(t time.Time) string {
	return t.In(istZone).Format(wireTimeLayout)
}
