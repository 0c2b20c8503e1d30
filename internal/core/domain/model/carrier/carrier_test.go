package carrier_test

import (
	"testing"
	"time"

	"pigeonpost/internal/core/domain/model/carrier"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var birthDate = time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC)

func newCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier("Ace", 80, birthDate, nil)
	require.NoError(t, err)
	return c
}

func TestNewCarrier(t *testing.T) {
	t.Run("creates_active_unretired_carrier", func(t *testing.T) {
		photo := "/uploads/carriers/ace.jpg"
		c, err := carrier.NewCarrier("  Ace  ", 80.5, birthDate, &photo)

		require.NoError(t, err)
		assert.Equal(t, "Ace", c.Nickname())
		assert.InDelta(t, 80.5, c.Speed(), 0.0001)
		assert.Equal(t, birthDate, c.BirthDate())
		require.NotNil(t, c.PhotoURL())
		assert.Equal(t, photo, *c.PhotoURL())
		assert.True(t, c.IsActive())
		assert.False(t, c.IsRetired())
		assert.True(t, c.IsAvailable())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects_blank_nickname", func(t *testing.T) {
		_, err := carrier.NewCarrier("   ", 80, birthDate, nil)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_non_positive_speed", func(t *testing.T) {
		_, err := carrier.NewCarrier("Ace", 0, birthDate, nil)
		require.ErrorIs(t, err, errs.ErrValidation)

		_, err = carrier.NewCarrier("Ace", -3, birthDate, nil)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_zero_birth_date", func(t *testing.T) {
		_, err := carrier.NewCarrier("Ace", 80, time.Time{}, nil)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("batches_field_errors", func(t *testing.T) {
		_, err := carrier.NewCarrier("", -1, time.Time{}, nil)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "nickname")
		assert.Contains(t, err.Error(), "speed")
		assert.Contains(t, err.Error(), "birthDate")
	})

	t.Run("zero_value_carrier_fails_validate", func(t *testing.T) {
		var c carrier.Carrier
		require.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
	})
}

func TestCarrier_IsAvailable(t *testing.T) {
	tests := []struct {
		name      string
		active    bool
		retired   bool
		available bool
	}{
		{"active_not_retired", true, false, true},
		{"inactive_not_retired", false, false, false},
		{"active_retired", true, true, false},
		{"inactive_retired", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := carrier.RestoreCarrier(1, "Ace", 80, birthDate, nil, tt.active, tt.retired, time.Now(), time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.available, c.IsAvailable())
		})
	}
}

func TestCarrier_Edit(t *testing.T) {
	t.Run("edits_apply_validation", func(t *testing.T) {
		c := newCarrier(t)

		require.NoError(t, c.Rename("Blitz"))
		assert.Equal(t, "Blitz", c.Nickname())

		require.ErrorIs(t, c.Rename(" "), errs.ErrValidation)
		require.ErrorIs(t, c.SetSpeed(-1), errs.ErrValidation)
		require.ErrorIs(t, c.SetBirthDate(time.Time{}), errs.ErrValidation)
	})

	t.Run("all_edits_blocked_once_retired", func(t *testing.T) {
		c := newCarrier(t)
		require.NoError(t, c.Retire())

		photo := "/uploads/carriers/late.jpg"
		require.ErrorIs(t, c.Rename("Blitz"), errs.ErrIllegalState)
		require.ErrorIs(t, c.SetSpeed(99), errs.ErrIllegalState)
		require.ErrorIs(t, c.SetBirthDate(birthDate.AddDate(1, 0, 0)), errs.ErrIllegalState)
		require.ErrorIs(t, c.SetPhotoURL(&photo), errs.ErrIllegalState)

		assert.Equal(t, "Ace", c.Nickname())
		assert.Nil(t, c.PhotoURL())
	})
}

func TestCarrier_Retire(t *testing.T) {
	t.Run("sets_both_flags_atomically", func(t *testing.T) {
		c := newCarrier(t)

		require.NoError(t, c.Retire())

		assert.False(t, c.IsActive())
		assert.True(t, c.IsRetired())
		assert.False(t, c.IsAvailable())
	})

	t.Run("second_retire_fails_with_illegal_state", func(t *testing.T) {
		c := newCarrier(t)
		require.NoError(t, c.Retire())

		require.ErrorIs(t, c.Retire(), errs.ErrIllegalState)
	})
}

func TestCarrier_Deactivate(t *testing.T) {
	c := newCarrier(t)

	c.Deactivate()

	assert.False(t, c.IsActive())
	assert.False(t, c.IsRetired())
	assert.False(t, c.IsAvailable())

	// Idempotent.
	c.Deactivate()
	assert.False(t, c.IsActive())
}
