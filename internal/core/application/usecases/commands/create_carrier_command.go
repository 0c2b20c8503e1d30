package commands

import (
	"errors"
	"time"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
)

// CreateCarrierCommand represents a request to register a new carrier pigeon.
type CreateCarrierCommand struct {
	nickname  string
	speed     float64
	birthDate time.Time
	photoURL  *string

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier.
// Basic field failures are batched as joined ValidationErrors; the nickname
// uniqueness check happens in the handler against the store.
func NewCreateCarrierCommand(nickname string, speed float64, birthDate time.Time, photoURL *string) (CreateCarrierCommand, error) {
	var errList []error
	if nickname == "" {
		errList = append(errList, errs.NewValidationError("nickname", "nickname is required"))
	}
	if speed <= 0 {
		errList = append(errList, errs.NewValidationError("speed", "speed must be positive"))
	}
	if birthDate.IsZero() {
		errList = append(errList, errs.NewValidationError("birthDate", "birth date is required"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateCarrierCommand{}, err
	}

	return CreateCarrierCommand{
		nickname:  nickname,
		speed:     speed,
		birthDate: birthDate,
		photoURL:  photoURL,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// Nickname returns the requested unique nickname.
func (c CreateCarrierCommand) Nickname() string {
	return c.nickname
}

// Speed returns the requested flight speed.
func (c CreateCarrierCommand) Speed() float64 {
	return c.speed
}

// BirthDate returns the carrier's birth date.
func (c CreateCarrierCommand) BirthDate() time.Time {
	return c.birthDate
}

// PhotoURL returns the optional photo reference.
func (c CreateCarrierCommand) PhotoURL() *string {
	return c.photoURL
}
