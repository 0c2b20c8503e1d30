package ports

import (
	"context"

	"pigeonpost/internal/core/domain/model/client"
)

// ClientRepository defines the persistence contract for client aggregates.
//
// Unlike carriers, clients are hard-deleted; the caller is responsible for
// checking that no letter references the client before calling Delete.
type ClientRepository interface {
	// Add persists a new client and returns it with its assigned identity.
	Add(ctx context.Context, aggregate *client.Client) (*client.Client, error)

	// Update persists changes to an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by identity.
	// Returns an ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id int64) (*client.Client, error)

	// GetByEmail retrieves a client by its normalized email address.
	// Returns an ObjectNotFoundError when no such row exists; used for
	// uniqueness checks before registration and edits.
	GetByEmail(ctx context.Context, email string) (*client.Client, error)

	// Delete removes the client row.
	// Returns an ObjectNotFoundError when no such row exists.
	Delete(ctx context.Context, id int64) error
}
