package commands

import (
	"errors"
	"time"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrEditClientCommandIsNotConstructed = errors.New(
		"EditClientCommand must be created via NewEditClientCommand constructor",
	)
)

// EditClientCommand represents a partial update of a client's profile.
// Nil fields are left untouched.
type EditClientCommand struct {
	clientID  int64
	name      *string
	email     *string
	birthDate *time.Time
	address   *string

	guard guard.ConstructorGuard
}

// NewEditClientCommand creates a command to edit a client.
// At least one field must be provided.
func NewEditClientCommand(clientID int64, name *string, email *string, birthDate *time.Time, address *string) (EditClientCommand, error) {
	if clientID <= 0 {
		return EditClientCommand{}, errs.NewValidationError("clientID", "clientID must be positive")
	}
	if name == nil && email == nil && birthDate == nil && address == nil {
		return EditClientCommand{}, errs.NewValidationError("fields", "at least one field must be provided")
	}

	return EditClientCommand{
		clientID:  clientID,
		name:      name,
		email:     email,
		birthDate: birthDate,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditClientCommand) Validate() error {
	return c.guard.Validate(ErrEditClientCommandIsNotConstructed)
}

// ClientID returns the identity of the client to edit.
func (c EditClientCommand) ClientID() int64 {
	return c.clientID
}

// Name returns the new name, or nil when unchanged.
func (c EditClientCommand) Name() *string {
	return c.name
}

// Email returns the new email, or nil when unchanged.
func (c EditClientCommand) Email() *string {
	return c.email
}

// BirthDate returns the new birth date, or nil when unchanged.
func (c EditClientCommand) BirthDate() *time.Time {
	return c.birthDate
}

// Address returns the new address, or nil when unchanged.
func (c EditClientCommand) Address() *string {
	return c.address
}
