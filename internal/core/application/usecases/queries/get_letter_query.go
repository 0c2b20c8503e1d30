package queries

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrGetLetterQueryIsNotConstructed = errors.New(
		"GetLetterQuery must be created via NewGetLetterQuery constructor",
	)
)

// GetLetterQuery retrieves one letter with its full delivery detail.
type GetLetterQuery struct {
	letterID int64

	guard guard.ConstructorGuard
}

// NewGetLetterQuery creates a query for a single letter.
func NewGetLetterQuery(letterID int64) (GetLetterQuery, error) {
	if letterID <= 0 {
		return GetLetterQuery{}, errs.NewValidationError("letterID", "letterID must be positive")
	}

	return GetLetterQuery{
		letterID: letterID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLetterQuery) Validate() error {
	return q.guard.Validate(ErrGetLetterQueryIsNotConstructed)
}

// LetterID returns the identity of the requested letter.
func (q GetLetterQuery) LetterID() int64 {
	return q.letterID
}
