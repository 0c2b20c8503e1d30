package commands

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrEditLetterMessageCommandIsNotConstructed = errors.New(
		"EditLetterMessageCommand must be created via NewEditLetterMessageCommand constructor",
	)
)

// EditLetterMessageCommand represents a request to replace a letter's message.
type EditLetterMessageCommand struct {
	letterID int64
	message  string

	guard guard.ConstructorGuard
}

// NewEditLetterMessageCommand creates a command to edit a letter's message.
func NewEditLetterMessageCommand(letterID int64, message string) (EditLetterMessageCommand, error) {
	var errList []error
	if letterID <= 0 {
		errList = append(errList, errs.NewValidationError("letterID", "letterID must be positive"))
	}
	if message == "" {
		errList = append(errList, errs.NewValidationError("message", "message is required"))
	}
	if err := errors.Join(errList...); err != nil {
		return EditLetterMessageCommand{}, err
	}

	return EditLetterMessageCommand{
		letterID: letterID,
		message:  message,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditLetterMessageCommand) Validate() error {
	return c.guard.Validate(ErrEditLetterMessageCommandIsNotConstructed)
}

// LetterID returns the identity of the letter to edit.
func (c EditLetterMessageCommand) LetterID() int64 {
	return c.letterID
}

// Message returns the replacement message body.
func (c EditLetterMessageCommand) Message() string {
	return c.message
}
