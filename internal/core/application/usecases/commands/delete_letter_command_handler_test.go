package commands_test

import (
	"testing"
	"time"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteLetterCommandHandler_Handle_RemovesQueuedLetter(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewDeleteLetterCommand(10)
	require.NoError(t, err)

	queued := restoredLetter(t, 10, letter.Queued, nil, nil)

	mockRepo := new(MockLetterRepository)
	mockUoW := new(MockLetterUoW)
	mockFactory := new(MockLetterUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("LetterRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(10)).Return(queued, nil).Once(),
		mockRepo.On("Delete", ctx, int64(10)).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteLetterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeleteLetterCommandHandler_Handle_DispatchedLetterIsProtected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewDeleteLetterCommand(10)
	require.NoError(t, err)

	dispatchedAt := time.Now().Add(-time.Hour)
	inFlight := restoredLetter(t, 10, letter.Dispatched, &dispatchedAt, nil)

	mockRepo := new(MockLetterRepository)
	mockUoW := new(MockLetterUoW)
	mockFactory := new(MockLetterUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("LetterRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(10)).Return(inFlight, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteLetterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: Delete is never reached.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalState)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeleteLetterCommandHandler_Handle_DeliveredLetterIsProtected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewDeleteLetterCommand(10)
	require.NoError(t, err)

	dispatchedAt := time.Now().Add(-2 * time.Hour)
	deliveredAt := time.Now().Add(-time.Hour)
	done := restoredLetter(t, 10, letter.Delivered, &dispatchedAt, &deliveredAt)

	mockRepo := new(MockLetterRepository)
	mockUoW := new(MockLetterUoW)
	mockFactory := new(MockLetterUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("LetterRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(10)).Return(done, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteLetterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIllegalState)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
