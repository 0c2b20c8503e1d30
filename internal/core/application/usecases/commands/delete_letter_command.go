package commands

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrDeleteLetterCommandIsNotConstructed = errors.New(
		"DeleteLetterCommand must be created via NewDeleteLetterCommand constructor",
	)
)

// DeleteLetterCommand represents a request to remove a letter.
type DeleteLetterCommand struct {
	letterID int64

	guard guard.ConstructorGuard
}

// NewDeleteLetterCommand creates a command to remove a letter.
func NewDeleteLetterCommand(letterID int64) (DeleteLetterCommand, error) {
	if letterID <= 0 {
		return DeleteLetterCommand{}, errs.NewValidationError("letterID", "letterID must be positive")
	}

	return DeleteLetterCommand{
		letterID: letterID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLetterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLetterCommandIsNotConstructed)
}

// LetterID returns the identity of the letter to remove.
func (c DeleteLetterCommand) LetterID() int64 {
	return c.letterID
}
