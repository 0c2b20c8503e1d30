package commands

import (
	"errors"

	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrChangeLetterStatusCommandIsNotConstructed = errors.New(
		"ChangeLetterStatusCommand must be created via NewChangeLetterStatusCommand constructor",
	)
)

// ChangeLetterStatusCommand represents a request to move a letter to a new
// lifecycle status. Covers dispatch, delivery confirmation and recall.
type ChangeLetterStatusCommand struct {
	letterID int64
	status   letter.Status

	guard guard.ConstructorGuard
}

// NewChangeLetterStatusCommand creates a command to change a letter's status.
// The target status must be a known status; whether the transition is legal
// from the letter's current status is decided by the aggregate.
func NewChangeLetterStatusCommand(letterID int64, status letter.Status) (ChangeLetterStatusCommand, error) {
	var errList []error
	if letterID <= 0 {
		errList = append(errList, errs.NewValidationError("letterID", "letterID must be positive"))
	}
	if err := status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return ChangeLetterStatusCommand{}, err
	}

	return ChangeLetterStatusCommand{
		letterID: letterID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeLetterStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLetterStatusCommandIsNotConstructed)
}

// LetterID returns the identity of the letter to move.
func (c ChangeLetterStatusCommand) LetterID() int64 {
	return c.letterID
}

// Status returns the target lifecycle status.
func (c ChangeLetterStatusCommand) Status() letter.Status {
	return c.status
}
