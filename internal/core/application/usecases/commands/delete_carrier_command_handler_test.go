package commands_test

import (
	"testing"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCarrierCommandHandler_Handle_DeactivatesUnreferencedCarrier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewDeleteCarrierCommand(3)
	require.NoError(t, err)

	aggregate := restoredCarrier(t, 3, "Speedy")

	mockCarrierRepo := new(MockCarrierRepository)
	mockLetterRepo := new(MockLetterRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockCarrierRepo.On("Get", ctx, int64(3)).Return(aggregate, nil).Once(),
		mockUoW.On("LetterRepository").Return(mockLetterRepo).Once(),
		mockLetterRepo.On("CountByCarrier", ctx, int64(3)).Return(int64(0), nil).Once(),
		mockCarrierRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockUoW.On("CarrierRepository").Return(mockCarrierRepo).Times(2)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteCarrierCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: soft delete only, the row is updated rather than removed.
	require.NoError(t, err)
	assert.False(t, aggregate.IsActive())
	assert.False(t, aggregate.IsRetired())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCarrierRepo.AssertExpectations(t)
	mockLetterRepo.AssertExpectations(t)
}

func TestDeleteCarrierCommandHandler_Handle_ReferencedCarrierIsProtected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewDeleteCarrierCommand(3)
	require.NoError(t, err)

	aggregate := restoredCarrier(t, 3, "Speedy")

	mockCarrierRepo := new(MockCarrierRepository)
	mockLetterRepo := new(MockLetterRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CarrierRepository").Return(mockCarrierRepo).Once(),
		mockCarrierRepo.On("Get", ctx, int64(3)).Return(aggregate, nil).Once(),
		mockUoW.On("LetterRepository").Return(mockLetterRepo).Once(),
		mockLetterRepo.On("CountByCarrier", ctx, int64(3)).Return(int64(4), nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteCarrierCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: the carrier stays active.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, aggregate.IsActive())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCarrierRepo.AssertExpectations(t)
	mockLetterRepo.AssertExpectations(t)
}

func TestNewDeleteCarrierCommand_InvalidID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		_, err := commands.NewDeleteCarrierCommand(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	}
}
