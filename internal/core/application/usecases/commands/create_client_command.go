package commands

import (
	"errors"
	"time"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
)

// CreateClientCommand represents a request to register a new client.
type CreateClientCommand struct {
	name      string
	email     string
	birthDate time.Time
	address   string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
// Field-level validation lives in the aggregate; the command only rejects
// obviously empty input so a bad request never opens a transaction.
func NewCreateClientCommand(name string, email string, birthDate time.Time, address string) (CreateClientCommand, error) {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValidationError("name", "name is required"))
	}
	if email == "" {
		errList = append(errList, errs.NewValidationError("email", "email is required"))
	}
	if birthDate.IsZero() {
		errList = append(errList, errs.NewValidationError("birthDate", "birth date is required"))
	}
	if address == "" {
		errList = append(errList, errs.NewValidationError("address", "address is required"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		name:      name,
		email:     email,
		birthDate: birthDate,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// Name returns the client's name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Email returns the email address as submitted.
func (c CreateClientCommand) Email() string {
	return c.email
}

// BirthDate returns the client's birth date.
func (c CreateClientCommand) BirthDate() time.Time {
	return c.birthDate
}

// Address returns the postal address.
func (c CreateClientCommand) Address() string {
	return c.address
}
