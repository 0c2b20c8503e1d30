package queries

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrGetCarrierQueryIsNotConstructed = errors.New(
		"GetCarrierQuery must be created via NewGetCarrierQuery constructor",
	)
)

// GetCarrierQuery retrieves one carrier by identity.
type GetCarrierQuery struct {
	carrierID int64

	guard guard.ConstructorGuard
}

// NewGetCarrierQuery creates a query for a single carrier.
func NewGetCarrierQuery(carrierID int64) (GetCarrierQuery, error) {
	if carrierID <= 0 {
		return GetCarrierQuery{}, errs.NewValidationError("carrierID", "carrierID must be positive")
	}

	return GetCarrierQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierQueryIsNotConstructed)
}

// CarrierID returns the identity of the requested carrier.
func (q GetCarrierQuery) CarrierID() int64 {
	return q.carrierID
}
