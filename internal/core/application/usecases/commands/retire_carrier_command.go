package commands

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrRetireCarrierCommandIsNotConstructed = errors.New(
		"RetireCarrierCommand must be created via NewRetireCarrierCommand constructor",
	)
)

// RetireCarrierCommand represents a request to permanently retire a carrier.
type RetireCarrierCommand struct {
	carrierID int64

	guard guard.ConstructorGuard
}

// NewRetireCarrierCommand creates a command to retire a carrier.
func NewRetireCarrierCommand(carrierID int64) (RetireCarrierCommand, error) {
	if carrierID <= 0 {
		return RetireCarrierCommand{}, errs.NewValidationError("carrierID", "carrierID must be positive")
	}

	return RetireCarrierCommand{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetireCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRetireCarrierCommandIsNotConstructed)
}

// CarrierID returns the identity of the carrier to retire.
func (c RetireCarrierCommand) CarrierID() int64 {
	return c.carrierID
}
