package commands

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrDeleteClientCommandIsNotConstructed = errors.New(
		"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
	)
)

// DeleteClientCommand represents a request to remove a client.
type DeleteClientCommand struct {
	clientID int64

	guard guard.ConstructorGuard
}

// NewDeleteClientCommand creates a command to remove a client.
func NewDeleteClientCommand(clientID int64) (DeleteClientCommand, error) {
	if clientID <= 0 {
		return DeleteClientCommand{}, errs.NewValidationError("clientID", "clientID must be positive")
	}

	return DeleteClientCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

// ClientID returns the identity of the client to remove.
func (c DeleteClientCommand) ClientID() int64 {
	return c.clientID
}
