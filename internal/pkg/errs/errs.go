package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrObjectNotFound    = errors.New("object not found")
	ErrConflict          = errors.New("conflict")
	ErrIllegalState      = errors.New("illegal state")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// sanitize strips newlines from values interpolated into error messages
// so a single log line stays a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValidationError reports a malformed or missing input value for a single field.
// Multiple field errors may be combined with errors.Join; the combined error
// still matches ErrValidation.
type ValidationError struct {
	ParamName string
	Message   string
	Cause     error
}

// NewValidationError creates a field-level validation error.
func NewValidationError(paramName string, message string) *ValidationError {
	return &ValidationError{ParamName: paramName, Message: message}
}

// NewValidationErrorWithCause creates a field-level validation error wrapping a cause.
func NewValidationErrorWithCause(paramName string, message string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Message: message, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %s)",
			ErrValidation, sanitize(e.ParamName), sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, sanitize(e.ParamName), sanitize(e.Message))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ObjectNotFoundError reports that a referenced identity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates a not-found error for the named reference.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates a not-found error wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s with id %v (cause: %s)", ErrObjectNotFound, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s with id %v", ErrObjectNotFound, sanitize(e.ParamName), e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError reports a uniqueness violation, a reference to an unavailable
// carrier, or an attempt to delete an entity that is still referenced.
type ConflictError struct {
	Reason string
	Cause  error
}

// NewConflictError creates a conflict error with the given reason.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// NewConflictErrorWithCause creates a conflict error wrapping a cause.
func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, sanitize(e.Reason), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.Reason))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IllegalStateError reports an operation that is not permitted given the
// entity's current lifecycle state, e.g. editing a retired carrier or a
// delivered letter.
type IllegalStateError struct {
	Operation string
	State     string
}

// NewIllegalStateError creates an illegal-state error for the given operation
// attempted in the given state.
func NewIllegalStateError(operation string, state string) *IllegalStateError {
	return &IllegalStateError{Operation: operation, State: state}
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s in state %q", ErrIllegalState, sanitize(e.Operation), sanitize(e.State))
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}

// InvalidTransitionError reports a requested status change that is not present
// in the transition table. The offending pair is always named.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an error naming the rejected from->to pair.
func NewInvalidTransitionError(from string, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %q -> %q", ErrInvalidTransition, sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
