package kernel_test

import (
	"testing"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionContext(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		sctx, err := kernel.NewSessionContext("S-9001", "E1024", "Section Officer")

		require.NoError(t, err)
		require.NoError(t, sctx.Validate())
		assert.Equal(t, "S-9001", sctx.SessionID())
		assert.Equal(t, "E1024", sctx.EmployeeID())
		assert.Equal(t, "Section Officer", sctx.Role())
	})

	t.Run("missing session id", func(t *testing.T) {
		_, err := kernel.NewSessionContext("", "E1024", "Section Officer")

		require.ErrorIs(t, err, errs.ErrAuthMissing)
		assert.Contains(t, err.Error(), "session_id")
	})

	t.Run("missing employee id", func(t *testing.T) {
		_, err := kernel.NewSessionContext("S-9001", "", "Section Officer")

		require.ErrorIs(t, err, errs.ErrAuthMissing)
		assert.Contains(t, err.Error(), "employee_id")
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := kernel.NewSessionContext("S-9001", "E1024", "")

		require.ErrorIs(t, err, errs.ErrAuthMissing)
		assert.Contains(t, err.Error(), "role")
	})
}

func TestSessionContext_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var sctx kernel.SessionContext

		err := sctx.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrSessionContextIsNotConstructed, err)
	})
}
