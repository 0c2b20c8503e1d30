package commands

import (
	"errors"
	"time"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrEditCarrierCommandIsNotConstructed = errors.New(
		"EditCarrierCommand must be created via NewEditCarrierCommand constructor",
	)
)

// EditCarrierCommand represents a partial update of a carrier's profile.
// Nil fields are left untouched.
type EditCarrierCommand struct {
	carrierID int64
	nickname  *string
	speed     *float64
	birthDate *time.Time
	photoURL  *string

	guard guard.ConstructorGuard
}

// NewEditCarrierCommand creates a command to edit a carrier.
// At least one field must be provided.
func NewEditCarrierCommand(carrierID int64, nickname *string, speed *float64, birthDate *time.Time, photoURL *string) (EditCarrierCommand, error) {
	if carrierID <= 0 {
		return EditCarrierCommand{}, errs.NewValidationError("carrierID", "carrierID must be positive")
	}
	if nickname == nil && speed == nil && birthDate == nil && photoURL == nil {
		return EditCarrierCommand{}, errs.NewValidationError("fields", "at least one field must be provided")
	}

	return EditCarrierCommand{
		carrierID: carrierID,
		nickname:  nickname,
		speed:     speed,
		birthDate: birthDate,
		photoURL:  photoURL,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditCarrierCommand) Validate() error {
	return c.guard.Validate(ErrEditCarrierCommandIsNotConstructed)
}

// CarrierID returns the identity of the carrier to edit.
func (c EditCarrierCommand) CarrierID() int64 {
	return c.carrierID
}

// Nickname returns the new nickname, or nil when unchanged.
func (c EditCarrierCommand) Nickname() *string {
	return c.nickname
}

// Speed returns the new speed, or nil when unchanged.
func (c EditCarrierCommand) Speed() *float64 {
	return c.speed
}

// BirthDate returns the new birth date, or nil when unchanged.
func (c EditCarrierCommand) BirthDate() *time.Time {
	return c.birthDate
}

// PhotoURL returns the new photo reference, or nil when unchanged.
func (c EditCarrierCommand) PhotoURL() *string {
	return c.photoURL
}
