package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/errs"
)

// ValidationMode selects which rule set a validation pass applies. The same
// form is checked against different completeness requirements depending on
// what the user is about to do with it.
type ValidationMode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown ValidationMode = iota

	// ModeDraft checks the minimal set needed to persist something
	// referenceable: nature of visit, both dates, country and city.
	ModeDraft

	// ModeSubmit checks everything a complete order needs before it enters
	// the approval workflow.
	ModeSubmit

	// ModePreview checks only the signing authority; the remaining content
	// is assumed already persisted by a prior save.
	ModePreview
)

// Validate checks if the ValidationMode value is valid.
func (m ValidationMode) Validate() error {
	switch m {
	case ModeDraft, ModeSubmit, ModePreview:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("mode is invalid",
			fmt.Errorf("%d is not a valid validation mode", m))
	}
}

const (
	subjectMinLength  = 10
	bodyTextMinLength = 20
)

var (
	countryPattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	cityPattern    = regexp.MustCompile(`^[A-Za-z .,'-]+$`)
	markupPattern  = regexp.MustCompile(`<[^>]*>`)
)

// ValidationEngine is a stateless domain service that checks a visit request
// form and its document body against the rule set for one action.
//
// Business rules:
//   - draft requires nature of visit, both visit dates, country and city
//   - submit additionally requires subject, body text, signing authority,
//     at least one cc section, remarks, and the original order number for
//     amendment/cancellation process types
//   - preview requires only the signing authority
//   - whenever both dates are present, visit-from must not be after visit-to
//
// The result is recomputed wholesale on every pass: a nil return means the
// form passes; a non-nil *errs.ValidationError carries the field map for
// inline display and a consolidated summary for the user-facing message.
type ValidationEngine struct{}

// NewValidationEngine creates a new ValidationEngine instance.
func NewValidationEngine() ValidationEngine {
	return ValidationEngine{}
}

// Validate runs the rule set for the given mode over form and body. The
// process type decides whether an original order number is required on
// submit.
func (v ValidationEngine) Validate(
	form *order.VisitRequestForm,
	body *order.OrderDocumentBody,
	processType order.ProcessType,
	mode ValidationMode,
) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if form == nil {
		return errs.NewValueIsRequiredError("form")
	}
	if body == nil {
		return errs.NewValueIsRequiredError("body")
	}

	fields := make(map[string]string)

	switch mode {
	case ModeDraft:
		v.checkDraftFields(form, fields)
	case ModeSubmit:
		v.checkDraftFields(form, fields)
		v.checkSubmitFields(form, body, processType, fields)
	case ModePreview:
		v.checkSigningAuthority(form, fields)
	}

	v.checkDateOrdering(form, fields)

	if len(fields) == 0 {
		return nil
	}
	return errs.NewValidationError(fields)
}

func (v ValidationEngine) checkDraftFields(form *order.VisitRequestForm, fields map[string]string) {
	requireField(fields, "natureOfVisit", form.NatureOfVisit, "Nature of Visit is required")
	requireField(fields, "visitFrom", form.VisitFrom, "Visit From date is required")
	requireField(fields, "visitTo", form.VisitTo, "Visit To date is required")
	requireField(fields, "country", form.Country, "Country is required")
	requireField(fields, "city", form.City, "City is required")
}

func (v ValidationEngine) checkSubmitFields(
	form *order.VisitRequestForm,
	body *order.OrderDocumentBody,
	processType order.ProcessType,
	fields map[string]string,
) {
	if utf8.RuneCountInString(strings.TrimSpace(body.Subject)) < subjectMinLength {
		fields["subject"] = fmt.Sprintf("Subject must be at least %d characters", subjectMinLength)
	}
	if utf8.RuneCountInString(StripMarkup(body.BodyHTML)) < bodyTextMinLength {
		fields["bodyHtml"] = fmt.Sprintf("Order body must be at least %d characters", bodyTextMinLength)
	}

	v.checkSigningAuthority(form, fields)

	if len(form.CCSections) == 0 {
		fields["ccSections"] = "At least one CC Section is required"
	}
	requireField(fields, "remarks", form.Remarks, "Remarks is required")

	if processType.RequiresOriginalOrder() && strings.TrimSpace(body.OrderNo) == "" {
		fields["orderNo"] = "Original Order Number is required"
	}

	if country := strings.TrimSpace(form.Country); country != "" && !countryPattern.MatchString(country) {
		fields["country"] = "Country must contain only letters and spaces"
	}
	if city := strings.TrimSpace(form.City); city != "" && !cityPattern.MatchString(city) {
		fields["city"] = "City contains invalid characters"
	}
}

func (v ValidationEngine) checkSigningAuthority(form *order.VisitRequestForm, fields map[string]string) {
	requireField(fields, "signingAuthority", form.SigningAuthority, "Signing Authority is required")
}

// checkDateOrdering applies only when both dates are present and parsable;
// missing or malformed dates are the required-field rules' concern.
func (v ValidationEngine) checkDateOrdering(form *order.VisitRequestForm, fields map[string]string) {
	if strings.TrimSpace(form.VisitFrom) == "" || strings.TrimSpace(form.VisitTo) == "" {
		return
	}

	if _, err := form.VisitWindowFromForm(); err != nil {
		fields["visitTo"] = "Visit From date must not be after Visit To date"
	}
}

func requireField(fields map[string]string, name, value, message string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = message
	}
}

// StripMarkup removes HTML tags and collapses entity/whitespace noise so the
// body-length rule measures visible text, not markup.
func StripMarkup(html string) string {
	text := markupPattern.ReplaceAllString(html, " ")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	return strings.Join(strings.Fields(text), " ")
}
