package queries

import (
	"errors"

	"pigeonpost/internal/pkg/guard"
)

var (
	ErrGetCarriersQueryIsNotConstructed = errors.New(
		"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
	)
)

// GetCarriersQuery retrieves carriers with optional availability filters.
type GetCarriersQuery struct {
	activeOnly    bool
	includeRetire bool
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a carrier listing query.
// availableOnly restricts the listing to carriers that may take new letters
// (active and not retired); activeOnly keeps retired carriers out of edit
// pickers while includeRetired widens the listing to the full roster.
func NewGetCarriersQuery(activeOnly bool, includeRetired bool, availableOnly bool) GetCarriersQuery {
	return GetCarriersQuery{
		activeOnly:    activeOnly,
		includeRetire: includeRetired,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive carriers are filtered out.
func (q GetCarriersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// IncludeRetired reports whether retired carriers appear in the listing.
func (q GetCarriersQuery) IncludeRetired() bool {
	return q.includeRetire
}

// AvailableOnly reports whether the listing is restricted to assignable carriers.
func (q GetCarriersQuery) AvailableOnly() bool {
	return q.availableOnly
}
