package http

import (
	"errors"
	"net/http"

	"pigeonpost/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Machine-readable error codes carried in the response envelope.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeIllegalState      = "ILLEGAL_STATE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeInternal          = "INTERNAL"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    any         `json:"data,omitempty"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

// ErrorItem is one machine-readable error in a failed response.
type ErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, Envelope{Success: true, Data: data})
}

func respondMessage(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Envelope{Success: true, Message: message})
}

// respondError translates application errors into HTTP responses.
// Unrecognized errors are reported as opaque internal failures so storage
// details never leak to the caller.
func respondError(ctx echo.Context, err error) error {
	status, code := http.StatusInternalServerError, CodeInternal
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValidation):
		status, code, message = http.StatusBadRequest, CodeValidationError, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status, code, message = http.StatusNotFound, CodeNotFound, err.Error()
	case errors.Is(err, errs.ErrConflict):
		status, code, message = http.StatusConflict, CodeConflict, err.Error()
	case errors.Is(err, errs.ErrIllegalState):
		status, code, message = http.StatusConflict, CodeIllegalState, err.Error()
	case errors.Is(err, errs.ErrInvalidTransition):
		status, code, message = http.StatusConflict, CodeInvalidTransition, err.Error()
	default:
		ctx.Logger().Error(err)
	}

	return ctx.JSON(status, Envelope{
		Success: false,
		Errors:  []ErrorItem{{Code: code, Message: message}},
	})
}

func respondValidation(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Errors:  []ErrorItem{{Code: CodeValidationError, Message: message}},
	})
}
