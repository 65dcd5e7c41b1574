package order_test

import (
	"testing"
	"time"

	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVisitWindow(t *testing.T) {
	day := func(value string) time.Time {
		t.Helper()
		parsed, err := time.Parse(time.DateOnly, value)
		require.NoError(t, err)
		return parsed
	}

	t.Run("should accept from before to", func(t *testing.T) {
		window, err := order.NewVisitWindow(day("2025-01-10"), day("2025-01-12"))

		require.NoError(t, err)
		require.NoError(t, window.Validate())
		assert.Equal(t, day("2025-01-10"), window.From())
		assert.Equal(t, day("2025-01-12"), window.To())
	})

	t.Run("should accept a single-day visit", func(t *testing.T) {
		window, err := order.NewVisitWindow(day("2025-01-10"), day("2025-01-10"))

		require.NoError(t, err)
		assert.Equal(t, 1, window.DurationDays())
	})

	t.Run("should reject from after to", func(t *testing.T) {
		_, err := order.NewVisitWindow(day("2025-01-12"), day("2025-01-10"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require both dates", func(t *testing.T) {
		_, err := order.NewVisitWindow(time.Time{}, day("2025-01-10"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewVisitWindow(day("2025-01-10"), time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should normalize away time of day", func(t *testing.T) {
		from := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
		to := time.Date(2025, 1, 11, 0, 1, 0, 0, time.UTC)

		window, err := order.NewVisitWindow(from, to)

		require.NoError(t, err)
		assert.Equal(t, 2, window.DurationDays())
	})
}

func TestVisitWindow_DurationDays(t *testing.T) {
	t.Run("duration is inclusive of both endpoints", func(t *testing.T) {
		from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

		window, err := order.NewVisitWindow(from, to)

		require.NoError(t, err)
		assert.Equal(t, 3, window.DurationDays())
	})
}

func TestVisitRequestForm_VisitWindowFromForm(t *testing.T) {
	t.Run("should build window from raw form dates", func(t *testing.T) {
		form := &order.VisitRequestForm{VisitFrom: "2025-01-10", VisitTo: "2025-01-12"}

		window, err := form.VisitWindowFromForm()

		require.NoError(t, err)
		assert.Equal(t, 3, window.DurationDays())
	})

	t.Run("should reject inverted form dates", func(t *testing.T) {
		form := &order.VisitRequestForm{VisitFrom: "2025-01-12", VisitTo: "2025-01-10"}

		_, err := form.VisitWindowFromForm()

		require.Error(t, err)
	})

	t.Run("should reject unparsable dates", func(t *testing.T) {
		form := &order.VisitRequestForm{VisitFrom: "10/01/2025", VisitTo: "2025-01-12"}

		_, err := form.VisitWindowFromForm()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseProcessType(t *testing.T) {
	t.Run("should parse known values and empty string", func(t *testing.T) {
		testCases := map[string]order.ProcessType{
			"":             order.ProcessNone,
			"none":         order.ProcessNone,
			"amendment":    order.ProcessAmendment,
			"cancellation": order.ProcessCancellation,
		}

		for input, expected := range testCases {
			parsed, err := order.ParseProcessType(input)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := order.ParseProcessType("revision")
		require.Error(t, err)
	})

	t.Run("amendment and cancellation require the original order", func(t *testing.T) {
		assert.False(t, order.ProcessNone.RequiresOriginalOrder())
		assert.True(t, order.ProcessAmendment.RequiresOriginalOrder())
		assert.True(t, order.ProcessCancellation.RequiresOriginalOrder())
	})
}

func TestParseSigningAuthority(t *testing.T) {
	t.Run("should parse the three authorities", func(t *testing.T) {
		testCases := map[string]order.SigningAuthority{
			"Assistant Registrar": order.AssistantRegistrar,
			"Deputy Registrar":    order.DeputyRegistrar,
			"Registrar":           order.Registrar,
		}

		for input, expected := range testCases {
			parsed, err := order.ParseSigningAuthority(input)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
			assert.True(t, parsed.IsSet())
			assert.Equal(t, input, parsed.String())
		}
	})

	t.Run("empty string parses as unset", func(t *testing.T) {
		parsed, err := order.ParseSigningAuthority("")

		require.NoError(t, err)
		assert.False(t, parsed.IsSet())
	})

	t.Run("should reject unknown authorities", func(t *testing.T) {
		_, err := order.ParseSigningAuthority("Vice Chancellor")
		require.Error(t, err)
	})
}
