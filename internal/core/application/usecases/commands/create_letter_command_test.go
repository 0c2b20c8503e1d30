package commands_test

import (
	"testing"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateLetterCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewCreateLetterCommand("Meet me at the clock tower at noon.", 1, 2, 3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Meet me at the clock tower at noon.", cmd.Message())
	assert.Equal(t, int64(1), cmd.SenderID())
	assert.Equal(t, int64(2), cmd.RecipientID())
	assert.Equal(t, int64(3), cmd.CarrierID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateLetterCommand_MissingFields(t *testing.T) {
	// Act
	_, err := commands.NewCreateLetterCommand("", 0, 0, 0)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message is required")
	assert.Contains(t, err.Error(), "senderId must be positive")
	assert.Contains(t, err.Error(), "recipientId must be positive")
	assert.Contains(t, err.Error(), "carrierId must be positive")
}

func TestNewCreateLetterCommand_NegativeIdentities(t *testing.T) {
	// Act
	_, err := commands.NewCreateLetterCommand("Hello", -1, 2, 3)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestCreateLetterCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.CreateLetterCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateLetterCommandIsNotConstructed)
}
