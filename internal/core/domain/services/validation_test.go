package services_test

import (
	"errors"
	"testing"

	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/services"
	"officeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDraftForm() *order.VisitRequestForm {
	return &order.VisitRequestForm{
		NatureOfVisit: "Conference",
		VisitFrom:     "2025-01-10",
		VisitTo:       "2025-01-12",
		Country:       "India",
		City:          "Chennai",
	}
}

func completeSubmitForm() *order.VisitRequestForm {
	form := minimalDraftForm()
	form.SigningAuthority = "Registrar"
	form.CCSections = []string{"Registrar"}
	form.Remarks = "ok"
	return form
}

func completeSubmitBody() *order.OrderDocumentBody {
	return &order.OrderDocumentBody{
		Subject:  "Permission for international conference travel",
		BodyHTML: "<p>The employee is permitted to attend the conference as detailed below.</p>",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var validationErr *errs.ValidationError
	require.ErrorIs(t, err, errs.ErrValidationFailed)
	require.True(t, errors.As(err, &validationErr))
	return validationErr.Fields
}

func TestValidationEngine_Draft(t *testing.T) {
	engine := services.NewValidationEngine()

	t.Run("minimal draft form passes", func(t *testing.T) {
		err := engine.Validate(
			minimalDraftForm(), &order.OrderDocumentBody{}, order.ProcessNone, services.ModeDraft)

		require.NoError(t, err)
	})

	t.Run("empty form reports every missing draft field", func(t *testing.T) {
		err := engine.Validate(
			&order.VisitRequestForm{}, &order.OrderDocumentBody{}, order.ProcessNone, services.ModeDraft)

		fields := fieldsOf(t, err)
		assert.Len(t, fields, 5)
		assert.Contains(t, fields, "natureOfVisit")
		assert.Contains(t, fields, "visitFrom")
		assert.Contains(t, fields, "visitTo")
		assert.Contains(t, fields, "country")
		assert.Contains(t, fields, "city")
	})

	t.Run("draft never requires signing authority, cc sections or remarks", func(t *testing.T) {
		form := minimalDraftForm()
		form.SigningAuthority = ""
		form.CCSections = nil
		form.Remarks = ""

		err := engine.Validate(form, &order.OrderDocumentBody{}, order.ProcessNone, services.ModeDraft)

		require.NoError(t, err)
	})
}

func TestValidationEngine_Submit(t *testing.T) {
	engine := services.NewValidationEngine()

	t.Run("complete form passes", func(t *testing.T) {
		err := engine.Validate(
			completeSubmitForm(), completeSubmitBody(), order.ProcessNone, services.ModeSubmit)

		require.NoError(t, err)
	})

	t.Run("submit always requires signing authority, cc sections and remarks", func(t *testing.T) {
		form := completeSubmitForm()
		form.SigningAuthority = ""
		form.CCSections = nil
		form.Remarks = ""

		err := engine.Validate(form, completeSubmitBody(), order.ProcessNone, services.ModeSubmit)

		fields := fieldsOf(t, err)
		assert.Contains(t, fields, "signingAuthority")
		assert.Contains(t, fields, "ccSections")
		assert.Contains(t, fields, "remarks")
	})

	t.Run("missing signing authority names the field in the summary", func(t *testing.T) {
		form := completeSubmitForm()
		form.SigningAuthority = ""

		err := engine.Validate(form, completeSubmitBody(), order.ProcessNone, services.ModeSubmit)

		var validationErr *errs.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Summary(), "Signing Authority")
	})

	t.Run("subject shorter than 10 characters is rejected", func(t *testing.T) {
		body := completeSubmitBody()
		body.Subject = "Too short"

		err := engine.Validate(completeSubmitForm(), body, order.ProcessNone, services.ModeSubmit)

		assert.Contains(t, fieldsOf(t, err), "subject")
	})

	t.Run("body length is measured on stripped text", func(t *testing.T) {
		body := completeSubmitBody()
		body.BodyHTML = "<p><strong><em><span style=\"font-size:14px\">short</span></em></strong></p>"

		err := engine.Validate(completeSubmitForm(), body, order.ProcessNone, services.ModeSubmit)

		assert.Contains(t, fieldsOf(t, err), "bodyHtml")
	})

	t.Run("country must be alphabetic plus spaces", func(t *testing.T) {
		form := completeSubmitForm()
		form.Country = "India-2025"

		err := engine.Validate(form, completeSubmitBody(), order.ProcessNone, services.ModeSubmit)

		assert.Contains(t, fieldsOf(t, err), "country")
	})

	t.Run("city allows basic punctuation but not digits", func(t *testing.T) {
		form := completeSubmitForm()
		form.City = "St. John's"
		err := engine.Validate(form, completeSubmitBody(), order.ProcessNone, services.ModeSubmit)
		require.NoError(t, err)

		form.City = "Sector 21"
		err = engine.Validate(form, completeSubmitBody(), order.ProcessNone, services.ModeSubmit)
		assert.Contains(t, fieldsOf(t, err), "city")
	})

	t.Run("amendment requires the original order number", func(t *testing.T) {
		err := engine.Validate(
			completeSubmitForm(), completeSubmitBody(), order.ProcessAmendment, services.ModeSubmit)
		assert.Contains(t, fieldsOf(t, err), "orderNo")

		body := completeSubmitBody()
		body.OrderNo = "OO/2024/0917"
		err = engine.Validate(
			completeSubmitForm(), body, order.ProcessAmendment, services.ModeSubmit)
		require.NoError(t, err)
	})
}

func TestValidationEngine_Preview(t *testing.T) {
	engine := services.NewValidationEngine()

	t.Run("preview requires only the signing authority", func(t *testing.T) {
		form := &order.VisitRequestForm{SigningAuthority: "Deputy Registrar"}

		err := engine.Validate(form, &order.OrderDocumentBody{}, order.ProcessNone, services.ModePreview)

		require.NoError(t, err)
	})

	t.Run("preview without signing authority fails", func(t *testing.T) {
		err := engine.Validate(
			&order.VisitRequestForm{}, &order.OrderDocumentBody{}, order.ProcessNone, services.ModePreview)

		fields := fieldsOf(t, err)
		assert.Len(t, fields, 1)
		assert.Contains(t, fields, "signingAuthority")
	})
}

func TestValidationEngine_DateOrdering(t *testing.T) {
	engine := services.NewValidationEngine()

	t.Run("validation fails iff visit from is after visit to", func(t *testing.T) {
		for _, mode := range []services.ValidationMode{services.ModeDraft, services.ModeSubmit} {
			form := completeSubmitForm()
			form.VisitFrom = "2025-01-12"
			form.VisitTo = "2025-01-10"

			err := engine.Validate(form, completeSubmitBody(), order.ProcessNone, mode)
			assert.Contains(t, fieldsOf(t, err), "visitTo")

			form.VisitFrom = "2025-01-10"
			form.VisitTo = "2025-01-10"
			require.NoError(t, engine.Validate(form, completeSubmitBody(), order.ProcessNone, mode))
		}
	})

	t.Run("ordering is skipped when a date is missing", func(t *testing.T) {
		form := &order.VisitRequestForm{VisitFrom: "2025-01-10"}

		err := engine.Validate(form, &order.OrderDocumentBody{}, order.ProcessNone, services.ModeDraft)

		fields := fieldsOf(t, err)
		assert.Equal(t, "Visit To date is required", fields["visitTo"])
	})
}

func TestValidationEngine_Validate_Arguments(t *testing.T) {
	engine := services.NewValidationEngine()

	t.Run("should reject unknown mode", func(t *testing.T) {
		err := engine.Validate(
			minimalDraftForm(), &order.OrderDocumentBody{}, order.ProcessNone, services.ModeUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require form and body", func(t *testing.T) {
		err := engine.Validate(nil, &order.OrderDocumentBody{}, order.ProcessNone, services.ModeDraft)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		err = engine.Validate(minimalDraftForm(), nil, order.ProcessNone, services.ModeDraft)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStripMarkup(t *testing.T) {
	t.Run("should remove tags and entities", func(t *testing.T) {
		text := services.StripMarkup("<p>Travel&nbsp;is <b>approved</b>.</p>")

		assert.Equal(t, "Travel is approved .", text)
	})

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "plain text", services.StripMarkup("plain  text"))
	})
}
