package commands_test

import (
	"testing"
	"time"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCarrierCommand_ValidInput(t *testing.T) {
	// Arrange
	photoURL := "/uploads/speedy.png"

	// Act
	cmd, err := commands.NewCreateCarrierCommand("Speedy", 42.5, testBirthDate(), &photoURL)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, "Speedy", cmd.Nickname())
	assert.InDelta(t, 42.5, cmd.Speed(), 0.0001)
	assert.Equal(t, testBirthDate(), cmd.BirthDate())
	require.NotNil(t, cmd.PhotoURL())
	assert.Equal(t, photoURL, *cmd.PhotoURL())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateCarrierCommand_WithoutPhoto(t *testing.T) {
	// Act
	cmd, err := commands.NewCreateCarrierCommand("Speedy", 42.5, testBirthDate(), nil)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, cmd.PhotoURL())
}

func TestNewCreateCarrierCommand_InvalidSpeed(t *testing.T) {
	testCases := []struct {
		name  string
		speed float64
	}{
		{name: "zero speed", speed: 0},
		{name: "negative speed", speed: -12.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := commands.NewCreateCarrierCommand("Speedy", tc.speed, testBirthDate(), nil)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestNewCreateCarrierCommand_MultipleCombinedErrors(t *testing.T) {
	// Act
	_, err := commands.NewCreateCarrierCommand("", 0, time.Time{}, nil)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nickname is required")
	assert.Contains(t, err.Error(), "speed must be positive")
	assert.Contains(t, err.Error(), "birth date is required")
}

func TestCreateCarrierCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.CreateCarrierCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCarrierCommandIsNotConstructed)
}
