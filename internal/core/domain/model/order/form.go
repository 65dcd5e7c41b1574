package order

import (
	"time"

	"officeorder/internal/pkg/errs"
)

// VisitRequestForm is the editable record under construction during one
// editing session. Fields may legitimately be empty while the user types;
// per-action completeness is enforced by the validation engine, not here.
//
// EmployeeName, Department and Designation are server-sourced read-only
// display fields: the service forwards them into the save payload but never
// lets the client change their meaning.
type VisitRequestForm struct {
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	VisitFrom     string `json:"visitFrom"` // ISO date (YYYY-MM-DD), empty until picked
	VisitTo       string `json:"visitTo"`   // ISO date (YYYY-MM-DD), empty until picked
	NatureOfVisit string `json:"natureOfVisit"`
	Country       string `json:"country"`
	City          string `json:"city"`
	ClaimType     string `json:"claimType"`

	// SigningAuthority holds the display name of the selected authority,
	// empty until the user picks one. Parse with ParseSigningAuthority.
	SigningAuthority string `json:"signingAuthority"`

	// CCSections is the set of recipient roles the order is circulated to.
	// Order-irrelevant; joined with commas on the wire.
	CCSections []string `json:"ccSections"`

	Remarks  string `json:"remarks"`
	Priority string `json:"priority"`
}

// OrderDocumentBody is the generated-document content. Subject and reference
// are editable only for amendment/cancellation process types; OrderNo names
// the order being amended or cancelled and is required for those types.
type OrderDocumentBody struct {
	ReferenceNo   string `json:"referenceNo"`
	ReferenceDate string `json:"referenceDate"`
	Subject       string `json:"subject"`
	RefSubject    string `json:"refSubject"`
	BodyHTML      string `json:"bodyHtml"`
	HeaderHTML    string `json:"headerHtml"`
	FooterHTML    string `json:"footerHtml"`
	OrderNo       string `json:"orderNo"`
}

// VisitWindowFromForm builds the VisitWindow value object from the raw form
// dates. Returns an error when either date is missing or unparsable, or when
// the invariant VisitFrom <= VisitTo does not hold.
func (f *VisitRequestForm) VisitWindowFromForm() (VisitWindow, error) {
	from, err := parseFormDate(f.VisitFrom, "visit from date")
	if err != nil {
		return VisitWindow{}, err
	}
	to, err := parseFormDate(f.VisitTo, "visit to date")
	if err != nil {
		return VisitWindow{}, err
	}
	return NewVisitWindow(from, to)
}

func parseFormDate(value, paramName string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError(paramName)
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return t, nil
}
