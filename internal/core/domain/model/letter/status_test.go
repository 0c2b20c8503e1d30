package letter_test

import (
	"testing"

	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "queued", letter.Queued.String())
	assert.Equal(t, "dispatched", letter.Dispatched.String())
	assert.Equal(t, "delivered", letter.Delivered.String())
	assert.Equal(t, "unknown", letter.Unknown.String())
	assert.Equal(t, "unknown", letter.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, letter.Queued.Validate())
	require.NoError(t, letter.Dispatched.Validate())
	require.NoError(t, letter.Delivered.Validate())

	require.ErrorIs(t, letter.Unknown.Validate(), errs.ErrValidation)
	require.ErrorIs(t, letter.Status(99).Validate(), errs.ErrValidation)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    letter.Status
		wantErr bool
	}{
		{"queued", letter.Queued, false},
		{"dispatched", letter.Dispatched, false},
		{"delivered", letter.Delivered, false},
		{"", letter.Unknown, true},
		{"Queued", letter.Unknown, true},
		{"sent", letter.Unknown, true},
	}

	for _, tt := range tests {
		t.Run("parse_"+tt.raw, func(t *testing.T) {
			got, err := letter.ParseStatus(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_TransitionTo_AllowedPairs(t *testing.T) {
	allowed := []struct {
		from letter.Status
		to   letter.Status
	}{
		{letter.Queued, letter.Dispatched},
		{letter.Dispatched, letter.Delivered},
		{letter.Dispatched, letter.Queued}, // recall
	}

	for _, tt := range allowed {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			next, err := tt.from.TransitionTo(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, next)
		})
	}
}

func TestStatus_TransitionTo_InvalidPairs(t *testing.T) {
	invalid := []struct {
		from letter.Status
		to   letter.Status
	}{
		{letter.Queued, letter.Delivered}, // no skipping
		{letter.Queued, letter.Queued},    // no self-transition
		{letter.Dispatched, letter.Dispatched},
	}

	for _, tt := range invalid {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			next, err := tt.from.TransitionTo(tt.to)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, letter.Unknown, next)

			// The offending pair is named.
			assert.Contains(t, err.Error(), tt.from.String())
			assert.Contains(t, err.Error(), tt.to.String())
		})
	}
}

func TestStatus_TransitionTo_DeliveredIsTerminal(t *testing.T) {
	for _, to := range []letter.Status{letter.Queued, letter.Dispatched, letter.Delivered} {
		t.Run("delivered_to_"+to.String(), func(t *testing.T) {
			_, err := letter.Delivered.TransitionTo(to)
			require.ErrorIs(t, err, errs.ErrIllegalState)
		})
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := letter.Queued.TransitionTo(letter.Unknown)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = letter.Queued.TransitionTo(letter.Status(42))
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, letter.Queued.IsTerminal())
	assert.False(t, letter.Dispatched.IsTerminal())
	assert.True(t, letter.Delivered.IsTerminal())
}
