package session_test

import (
	"testing"

	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditingSession(t *testing.T) *session.EditingSession {
	t.Helper()

	record, err := order.NewTaskRecord("OO/2025/0042", "E1024", order.ProcessNone)
	require.NoError(t, err)

	editing, err := session.NewEditingSession(
		kernel.NewUUID(), record, order.VisitRequestForm{}, order.OrderDocumentBody{})
	require.NoError(t, err)

	return editing
}

func loadedSession(t *testing.T) *session.EditingSession {
	t.Helper()

	editing := newEditingSession(t)
	require.NoError(t, editing.Apply(session.LoadCompleted{}))
	return editing
}

func TestNewEditingSession(t *testing.T) {
	t.Run("should start in Loading and not dirty", func(t *testing.T) {
		editing := newEditingSession(t)

		assert.Equal(t, session.Loading, editing.State())
		assert.False(t, editing.IsDirty())
		assert.False(t, editing.IsCompleted())
	})

	t.Run("new order starts unsaved, restored draft starts saved", func(t *testing.T) {
		editing := newEditingSession(t)
		assert.False(t, editing.IsSaved())

		taskID := int64(7781)
		draft, err := order.RestoreTaskRecord(
			"OO/2025/0042", "E1024", &taskID, 1, 11, order.Draft, order.ProcessNone)
		require.NoError(t, err)

		held, err := session.NewEditingSession(
			kernel.NewUUID(), draft, order.VisitRequestForm{}, order.OrderDocumentBody{})
		require.NoError(t, err)
		assert.True(t, held.IsSaved())
	})

	t.Run("should reject invalid task record", func(t *testing.T) {
		_, err := session.NewEditingSession(
			kernel.NewUUID(), nil, order.VisitRequestForm{}, order.OrderDocumentBody{})

		require.Error(t, err)
	})
}

func TestEditingSession_Validate(t *testing.T) {
	t.Run("should reject zero value session", func(t *testing.T) {
		var editing session.EditingSession

		err := editing.Validate()

		require.Error(t, err)
		assert.Equal(t, session.ErrEditingSessionIsNotConstructed, err)
	})

	t.Run("should reject nil session", func(t *testing.T) {
		var editing *session.EditingSession

		require.Error(t, editing.Validate())
	})
}

func TestEditingSession_Apply_Editing(t *testing.T) {
	t.Run("edits in Editing mark the session dirty and unsaved", func(t *testing.T) {
		editing := loadedSession(t)
		require.NoError(t, editing.Apply(session.SaveSucceeded{}))
		require.True(t, editing.IsSaved())

		err := editing.Apply(session.FieldsEdited{
			Form: order.VisitRequestForm{Country: "France"},
		})

		require.NoError(t, err)
		assert.True(t, editing.IsDirty())
		assert.False(t, editing.IsSaved())
		assert.Equal(t, "France", editing.Form().Country)
	})

	t.Run("edits during Loading are suppressed", func(t *testing.T) {
		editing := newEditingSession(t)

		err := editing.Apply(session.FieldsEdited{
			Form: order.VisitRequestForm{Country: "France"},
		})

		require.NoError(t, err)
		assert.False(t, editing.IsDirty())
		assert.Equal(t, "", editing.Form().Country)
	})

	t.Run("save marks the session clean", func(t *testing.T) {
		editing := loadedSession(t)
		require.NoError(t, editing.Apply(session.FieldsEdited{}))
		require.True(t, editing.IsDirty())

		require.NoError(t, editing.Apply(session.SaveSucceeded{}))

		assert.True(t, editing.IsSaved())
		assert.False(t, editing.IsDirty())
	})

	t.Run("submit completes the session", func(t *testing.T) {
		editing := loadedSession(t)

		require.NoError(t, editing.Apply(session.SubmitSucceeded{}))

		assert.True(t, editing.IsSaved())
		assert.True(t, editing.IsCompleted())
		require.ErrorIs(t,
			editing.Apply(session.FieldsEdited{}), session.ErrSessionCompleted)
	})
}

func TestEditingSession_Apply_Preview(t *testing.T) {
	t.Run("preview round trip never marks the form dirty", func(t *testing.T) {
		editing := loadedSession(t)
		require.NoError(t, editing.Apply(session.SaveSucceeded{}))

		require.NoError(t, editing.Apply(session.PreviewOpened{}))
		assert.Equal(t, session.Previewing, editing.State())

		require.NoError(t, editing.Apply(session.PreviewClosed{}))
		assert.Equal(t, session.ClosingPreview, editing.State())
		assert.True(t, editing.IsSaved())
		assert.False(t, editing.IsDirty())

		require.NoError(t, editing.Apply(session.Tick{}))
		assert.Equal(t, session.Editing, editing.State())
		assert.True(t, editing.IsSaved())
	})

	t.Run("closing a preview re-asserts saved even when edits were pending", func(t *testing.T) {
		editing := loadedSession(t)
		require.NoError(t, editing.Apply(session.FieldsEdited{}))
		require.False(t, editing.IsSaved())

		require.NoError(t, editing.Apply(session.PreviewOpened{}))
		require.NoError(t, editing.Apply(session.PreviewClosed{}))

		assert.True(t, editing.IsSaved())
		assert.False(t, editing.IsDirty())
	})

	t.Run("field events around a preview close are ignored", func(t *testing.T) {
		editing := loadedSession(t)
		require.NoError(t, editing.Apply(session.PreviewOpened{}))

		err := editing.Apply(session.FieldsEdited{
			Form: order.VisitRequestForm{Country: "France"},
		})
		require.NoError(t, err)
		assert.False(t, editing.IsDirty())
		assert.Equal(t, "", editing.Form().Country)

		require.NoError(t, editing.Apply(session.PreviewClosed{}))

		err = editing.Apply(session.FieldsEdited{
			Form: order.VisitRequestForm{Country: "France"},
		})
		require.NoError(t, err)
		assert.Equal(t, session.Editing, editing.State())
		assert.False(t, editing.IsDirty())
		assert.True(t, editing.IsSaved())
	})

	t.Run("preview cannot open outside Editing", func(t *testing.T) {
		editing := newEditingSession(t)

		require.Error(t, editing.Apply(session.PreviewOpened{}))
	})

	t.Run("preview cannot close outside Previewing", func(t *testing.T) {
		editing := loadedSession(t)

		require.Error(t, editing.Apply(session.PreviewClosed{}))
	})
}

func TestEditingSession_Apply_Load(t *testing.T) {
	t.Run("load completes only once", func(t *testing.T) {
		editing := newEditingSession(t)

		require.NoError(t, editing.Apply(session.LoadCompleted{}))
		assert.Equal(t, session.Editing, editing.State())

		require.Error(t, editing.Apply(session.LoadCompleted{}))
	})
}

func TestEditingSession_BeginAction(t *testing.T) {
	t.Run("second action while one is in flight is rejected", func(t *testing.T) {
		editing := loadedSession(t)

		require.NoError(t, editing.BeginAction())
		require.ErrorIs(t, editing.BeginAction(), session.ErrSessionBusy)

		editing.EndAction()
		require.NoError(t, editing.BeginAction())
	})
}

func TestRestoreEditingSession(t *testing.T) {
	t.Run("should restore persisted session", func(t *testing.T) {
		taskID := int64(7781)
		record, err := order.RestoreTaskRecord(
			"OO/2025/0042", "E1024", &taskID, 1, 11, order.Draft, order.ProcessNone)
		require.NoError(t, err)

		editing, err := session.RestoreEditingSession(
			kernel.NewUUID(), record,
			order.VisitRequestForm{Country: "France"}, order.OrderDocumentBody{},
			session.Editing, true, false, false)

		require.NoError(t, err)
		require.NoError(t, editing.Validate())
		assert.Equal(t, session.Editing, editing.State())
		assert.True(t, editing.IsSaved())
		assert.Equal(t, "France", editing.Form().Country)
	})

	t.Run("should reject invalid state", func(t *testing.T) {
		record, err := order.NewTaskRecord("OO/2025/0042", "E1024", order.ProcessNone)
		require.NoError(t, err)

		_, err = session.RestoreEditingSession(
			kernel.NewUUID(), record,
			order.VisitRequestForm{}, order.OrderDocumentBody{},
			session.StateUnknown, false, false, false)

		require.Error(t, err)
	})
}
