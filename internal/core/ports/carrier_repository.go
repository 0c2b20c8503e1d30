// Package ports defines repository and unit-of-work interfaces for the
// pigeon post domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and substitution
// with in-memory fakes in tests.
package ports

import (
	"context"

	"pigeonpost/internal/core/domain/model/carrier"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
//
// Carriers are keyed by a store-assigned surrogate identity, so Add returns
// the persisted aggregate carrying its new ID. Carrier rows are never
// removed; the soft delete goes through Update with the active flag down.
type CarrierRepository interface {
	// Add persists a new carrier and returns it with its assigned identity.
	Add(ctx context.Context, aggregate *carrier.Carrier) (*carrier.Carrier, error)

	// Update persists changes to an existing carrier.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by identity.
	// Returns an ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id int64) (*carrier.Carrier, error)

	// GetByNickname retrieves a carrier by its unique nickname.
	// Returns an ObjectNotFoundError when no such row exists; used for
	// uniqueness checks before registration and edits.
	GetByNickname(ctx context.Context, nickname string) (*carrier.Carrier, error)
}
