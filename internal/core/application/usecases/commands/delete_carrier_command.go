package commands

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrDeleteCarrierCommandIsNotConstructed = errors.New(
		"DeleteCarrierCommand must be created via NewDeleteCarrierCommand constructor",
	)
)

// DeleteCarrierCommand represents a request to deactivate a carrier.
type DeleteCarrierCommand struct {
	carrierID int64

	guard guard.ConstructorGuard
}

// NewDeleteCarrierCommand creates a command to deactivate a carrier.
func NewDeleteCarrierCommand(carrierID int64) (DeleteCarrierCommand, error) {
	if carrierID <= 0 {
		return DeleteCarrierCommand{}, errs.NewValidationError("carrierID", "carrierID must be positive")
	}

	return DeleteCarrierCommand{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCarrierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarrierCommandIsNotConstructed)
}

// CarrierID returns the identity of the carrier to deactivate.
func (c DeleteCarrierCommand) CarrierID() int64 {
	return c.carrierID
}
