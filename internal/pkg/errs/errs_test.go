package errs_test

import (
	"errors"
	"testing"

	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := errs.NewValidationError("email", "email format is invalid")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "email format is invalid", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "validation failed: email: email format is invalid", err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})

	t.Run("NewValidationErrorWithCause", func(t *testing.T) {
		cause := errors.New("parse error")
		err := errs.NewValidationErrorWithCause("birthDate", "birth date is unparsable", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "validation failed: birthDate: birth date is unparsable (cause: parse error)", err.Error())
	})

	t.Run("joined field errors still match ErrValidation", func(t *testing.T) {
		err := errors.Join(
			errs.NewValidationError("message", "message is required"),
			errs.NewValidationError("senderId", "sender and recipient must differ"),
		)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValidationError("message", "hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("letter", int64(42))

		assert.Equal(t, "letter", err.ParamName)
		assert.Equal(t, int64(42), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: letter with id 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("client", int64(7), cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: client with id 7 (cause: database connection failed)",
			err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("nickname is already taken")

		assert.Equal(t, "nickname is already taken", err.Reason)
		assert.Equal(t, "conflict: nickname is already taken", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key")
		err := errs.NewConflictErrorWithCause("email is already in use", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: email is already in use (cause: duplicated key)", err.Error())
	})
}

func TestIllegalStateError(t *testing.T) {
	err := errs.NewIllegalStateError("edit message", "delivered")

	assert.Equal(t, "edit message", err.Operation)
	assert.Equal(t, "delivered", err.State)
	assert.Equal(t, `illegal state: cannot edit message in state "delivered"`, err.Error())
	assert.Equal(t, errs.ErrIllegalState, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("queued", "delivered")

	assert.Equal(t, "queued", err.From)
	assert.Equal(t, "delivered", err.To)
	assert.Equal(t, `invalid status transition: "queued" -> "delivered"`, err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrValidation)
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrIllegalState)
		require.Error(t, errs.ErrInvalidTransition)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "validation failed", errs.ErrValidation.Error())
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "illegal state", errs.ErrIllegalState.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewValidationError("speed", "speed must be positive"), errs.ErrValidation)
	require.ErrorIs(t, errs.NewObjectNotFoundError("carrier", int64(1)), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewConflictError("carrier is not available"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewIllegalStateError("retire", "retired"), errs.ErrIllegalState)
	require.ErrorIs(t, errs.NewInvalidTransitionError("queued", "queued"), errs.ErrInvalidTransition)
}
