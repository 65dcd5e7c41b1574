package commands_test

import (
	"testing"

	"officeorder/internal/core/application/usecases/commands"
	"officeorder/internal/core/domain/model/kernel"
	"officeorder/internal/core/domain/model/order"
	"officeorder/internal/core/domain/model/session"
	"officeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyEditCommandHandler_Handle_MarksSessionDirty(t *testing.T) {
	ctx := t.Context()
	form, body := draftFormContent()
	editing := freshEditingSession(t, form, body)

	edited := form
	edited.City = "Mumbai"
	cmd, err := commands.NewApplyEditCommand(editing.ID(), edited, body)
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("Get", ctx, editing.ID()).Return(editing, nil).Once(),
		repo.On("Update", ctx, editing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyEditCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, editing.IsDirty())
	assert.Equal(t, "Mumbai", editing.Form().City)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApplyEditCommandHandler_Handle_CompletedSession_ReturnsError(t *testing.T) {
	ctx := t.Context()
	form, body := draftFormContent()
	editing := heldEditingSession(t, form, body)
	require.NoError(t, editing.Apply(session.SubmitSucceeded{}))

	cmd, err := commands.NewApplyEditCommand(editing.ID(), form, body)
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("Get", ctx, editing.ID()).Return(editing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyEditCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, session.ErrSessionCompleted)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApplyEditCommandHandler_Handle_UnknownSession_PropagatesNotFound(t *testing.T) {
	ctx := t.Context()
	form, body := draftFormContent()
	id := kernel.NewUUID()
	cmd, err := commands.NewApplyEditCommand(id, form, body)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("session", id.String())
	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return((*session.EditingSession)(nil), notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyEditCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApplyEditCommand_Validate_RejectsZeroValue(t *testing.T) {
	var cmd commands.ApplyEditCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrApplyEditCommandIsNotConstructed)

	_, err := commands.NewApplyEditCommand(kernel.UUID{}, order.VisitRequestForm{}, order.OrderDocumentBody{})
	require.Error(t, err)
}
