package errs_test

import (
	"errors"
	"testing"

	"officeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMissingError(t *testing.T) {
	err := errs.NewAuthMissingError("session_id")

	assert.Equal(t, "session_id", err.ParamName)
	assert.Equal(t, "credentials are missing: session_id", err.Error())
	require.ErrorIs(t, err, errs.ErrAuthMissing)
}

func TestProtocolError(t *testing.T) {
	t.Run("NewProtocolError", func(t *testing.T) {
		err := errs.NewProtocolError("Encrypted payload missing")

		assert.Equal(t, "protocol violation: Encrypted payload missing", err.Error())
		require.ErrorIs(t, err, errs.ErrProtocol)
	})

	t.Run("NewProtocolErrorWithCause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := errs.NewProtocolErrorWithCause("response is not an envelope", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"protocol violation: response is not an envelope (cause: unexpected end of JSON input)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrProtocol)
	})
}

func TestCryptoError(t *testing.T) {
	cause := errors.New("cipher: message authentication failed")
	err := errs.NewCryptoError("decrypt", cause)

	assert.Equal(t, "decrypt", err.Op)
	assert.Equal(t, "crypto failure: decrypt (cause: cipher: message authentication failed)", err.Error())
	require.ErrorIs(t, err, errs.ErrCrypto)
}

func TestTransportError(t *testing.T) {
	err := errs.NewTransportError("/office_order/save", 502)

	assert.Equal(t, 502, err.Status)
	assert.Equal(t, "transport failure: /office_order/save returned status 502", err.Error())
	require.ErrorIs(t, err, errs.ErrTransport)
}

func TestLookupFailureError(t *testing.T) {
	cause := errors.New("transport failure: /status returned status 500")
	err := errs.NewLookupFailureError(`status "Deleted"`, cause)

	assert.Equal(t, `lookup failed: status "Deleted" (cause: transport failure: /status returned status 500)`, err.Error())
	require.ErrorIs(t, err, errs.ErrLookupFailed)
}

func TestPreviewBlockedError(t *testing.T) {
	err := errs.NewPreviewBlockedError("must save as draft first")

	assert.Equal(t, "preview blocked: must save as draft first", err.Error())
	require.ErrorIs(t, err, errs.ErrPreviewBlocked)
}

func TestValidationError(t *testing.T) {
	t.Run("summary deduplicates messages", func(t *testing.T) {
		err := errs.NewValidationError(map[string]string{
			"visitFrom":     "Visit dates are required",
			"visitTo":       "Visit dates are required",
			"natureOfVisit": "Nature of visit is required",
		})

		assert.Equal(t, "Nature of visit is required; Visit dates are required", err.Summary())
		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("error text carries the summary", func(t *testing.T) {
		err := errs.NewValidationError(map[string]string{
			"signingAuthority": "Signing Authority is required",
		})

		assert.Equal(t, "validation failed: Signing Authority is required", err.Error())
	})
}
