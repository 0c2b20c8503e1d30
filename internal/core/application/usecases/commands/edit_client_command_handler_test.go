package commands_test

import (
	"testing"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/core/domain/model/client"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditClientCommandHandler_Handle_PartialUpdate(t *testing.T) {
	// Arrange
	ctx := t.Context()
	address := "10 Downing Street"
	cmd, err := commands.NewEditClientCommand(3, nil, nil, nil, &address)
	require.NoError(t, err)

	existing := restoredClient(t, 3, "Ada Lovelace", "ada@example.com")

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockClientUoW)
	mockFactory := new(MockClientUoWFactory)

	// No email change, so no uniqueness lookup happens.
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(3)).Return(existing, nil).Once(),
		mockRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewEditClientCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "10 Downing Street", result.Address())
	assert.Equal(t, "ada@example.com", result.Email())
	mockRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestEditClientCommandHandler_Handle_EmailTakenByAnotherClient(t *testing.T) {
	// Arrange
	ctx := t.Context()
	email := "Charles@Example.COM"
	cmd, err := commands.NewEditClientCommand(3, nil, &email, nil, nil)
	require.NoError(t, err)

	existing := restoredClient(t, 3, "Ada Lovelace", "ada@example.com")
	other := restoredClient(t, 7, "Charles Babbage", "charles@example.com")

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockClientUoW)
	mockFactory := new(MockClientUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ClientRepository").Return(mockRepo).Times(2)
	mockRepo.On("Get", ctx, int64(3)).Return(existing, nil).Once()
	// The lookup normalizes the raw input before hitting the repository.
	mockRepo.On("GetByEmail", ctx, "charles@example.com").Return(other, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewEditClientCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, "ada@example.com", existing.Email())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditClientCommandHandler_Handle_KeepingOwnEmailIsAllowed(t *testing.T) {
	// Arrange
	ctx := t.Context()
	email := "ada@example.com"
	cmd, err := commands.NewEditClientCommand(3, nil, &email, nil, nil)
	require.NoError(t, err)

	existing := restoredClient(t, 3, "Ada Lovelace", "ada@example.com")

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockClientUoW)
	mockFactory := new(MockClientUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ClientRepository").Return(mockRepo).Times(2)
	mockRepo.On("Get", ctx, int64(3)).Return(existing, nil).Once()
	mockRepo.On("GetByEmail", ctx, "ada@example.com").Return(existing, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewEditClientCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", result.Email())
	mockRepo.AssertExpectations(t)
}

func TestEditClientCommandHandler_Handle_ClientNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	name := "Augusta Ada King"
	cmd, err := commands.NewEditClientCommand(42, &name, nil, nil, nil)
	require.NoError(t, err)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockClientUoW)
	mockFactory := new(MockClientUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ClientRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, int64(42)).
		Return((*client.Client)(nil), errs.NewObjectNotFoundError("clientID", int64(42))).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewEditClientCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewEditClientCommand_RequiresAtLeastOneField(t *testing.T) {
	_, err := commands.NewEditClientCommand(3, nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
