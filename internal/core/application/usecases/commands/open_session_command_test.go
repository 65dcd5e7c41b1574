package commands_test

import (
	"testing"

	"officeorder/internal/core/application/usecases/commands"
	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenSessionCommand(t *testing.T) {
	sessionCtx := testSessionCtx(t)

	t.Run("should create valid command", func(t *testing.T) {
		sessionID := kernel.NewUUID()

		cmd, err := commands.NewOpenSessionCommand(
			sessionID, sessionCtx, "OO/2025/0042", "E1024", order.ProcessAmendment)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, sessionID, cmd.SessionID())
		assert.Equal(t, "OO/2025/0042", cmd.CoverPageNo())
		assert.Equal(t, "E1024", cmd.EmployeeID())
		assert.Equal(t, order.ProcessAmendment, cmd.ProcessType())
	})

	t.Run("should require cover page number and employee id", func(t *testing.T) {
		_, err := commands.NewOpenSessionCommand(
			kernel.NewUUID(), sessionCtx, "", "E1024", order.ProcessNone)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewOpenSessionCommand(
			kernel.NewUUID(), sessionCtx, "OO/2025/0042", "", order.ProcessNone)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid session context", func(t *testing.T) {
		_, err := commands.NewOpenSessionCommand(
			kernel.NewUUID(), kernel.SessionContext{}, "OO/2025/0042", "E1024", order.ProcessNone)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.OpenSessionCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrOpenSessionCommandIsNotConstructed)
	})
}

func TestNewDeleteOrderCommand(t *testing.T) {
	sessionCtx := testSessionCtx(t)

	t.Run("should carry the confirmation flag", func(t *testing.T) {
		cmd, err := commands.NewDeleteOrderCommand(kernel.NewUUID(), sessionCtx, true)

		require.NoError(t, err)
		assert.True(t, cmd.Confirmed())
	})

	t.Run("should reject invalid session id", func(t *testing.T) {
		_, err := commands.NewDeleteOrderCommand(kernel.UUID{}, sessionCtx, true)

		require.Error(t, err)
	})
}
