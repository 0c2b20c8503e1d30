package commands

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrCreateLetterCommandIsNotConstructed = errors.New(
		"CreateLetterCommand must be created via NewCreateLetterCommand constructor",
	)
)

// CreateLetterCommand represents a request to queue a new letter for delivery.
type CreateLetterCommand struct {
	message     string
	senderID    int64
	recipientID int64
	carrierID   int64

	guard guard.ConstructorGuard
}

// NewCreateLetterCommand creates a command to queue a letter.
// Message and participant rules are enforced by the aggregate; the command
// only rejects non-positive identities so a bad request never opens a
// transaction.
func NewCreateLetterCommand(message string, senderID int64, recipientID int64, carrierID int64) (CreateLetterCommand, error) {
	var errList []error
	if message == "" {
		errList = append(errList, errs.NewValidationError("message", "message is required"))
	}
	if senderID <= 0 {
		errList = append(errList, errs.NewValidationError("senderId", "senderId must be positive"))
	}
	if recipientID <= 0 {
		errList = append(errList, errs.NewValidationError("recipientId", "recipientId must be positive"))
	}
	if carrierID <= 0 {
		errList = append(errList, errs.NewValidationError("carrierId", "carrierId must be positive"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateLetterCommand{}, err
	}

	return CreateLetterCommand{
		message:     message,
		senderID:    senderID,
		recipientID: recipientID,
		carrierID:   carrierID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLetterCommand) Validate() error {
	return c.guard.Validate(ErrCreateLetterCommandIsNotConstructed)
}

// Message returns the message body.
func (c CreateLetterCommand) Message() string {
	return c.message
}

// SenderID returns the sending client's identity.
func (c CreateLetterCommand) SenderID() int64 {
	return c.senderID
}

// RecipientID returns the receiving client's identity.
func (c CreateLetterCommand) RecipientID() int64 {
	return c.recipientID
}

// CarrierID returns the requested carrier's identity.
func (c CreateLetterCommand) CarrierID() int64 {
	return c.carrierID
}
