package ports

import (
	"context"

	"pigeonpost/internal/core/domain/model/letter"
)

// LetterRepository defines the persistence contract for letter aggregates.
type LetterRepository interface {
	// Add persists a new letter and returns it with its assigned identity.
	Add(ctx context.Context, aggregate *letter.Letter) (*letter.Letter, error)

	// Update persists changes to an existing letter as a single atomic row write.
	Update(ctx context.Context, aggregate *letter.Letter) error

	// Get retrieves a letter by identity.
	// Returns an ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id int64) (*letter.Letter, error)

	// Delete removes the letter row. The caller checks the queued-only rule
	// through the aggregate before calling.
	Delete(ctx context.Context, id int64) error

	// CountByCarrier returns how many letters reference the carrier.
	// Guards carrier deletion.
	CountByCarrier(ctx context.Context, carrierID int64) (int64, error)

	// CountByClient returns how many letters reference the client as either
	// sender or recipient. Guards client deletion.
	CountByClient(ctx context.Context, clientID int64) (int64, error)
}
