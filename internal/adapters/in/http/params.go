package http

import (
	"strconv"
	"time"

	"pigeonpost/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

func parseIDParam(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValidationError(name, name+" must be a positive integer")
	}
	return id, nil
}

func parseOptionalInt64(ctx echo.Context, name string) (int64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, errs.NewValidationError(name, name+" must be a positive integer")
	}
	return value, nil
}

func parseIntDefault(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError(name, name+" must be an integer")
	}
	return value, nil
}

func parseBoolParam(ctx echo.Context, name string) bool {
	value, err := strconv.ParseBool(ctx.QueryParam(name))
	return err == nil && value
}

func parseDate(name string, raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewValidationErrorWithCause(name, name+" must be a date in YYYY-MM-DD format", err)
	}
	return date, nil
}
