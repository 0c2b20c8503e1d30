package queries

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrGetClientQueryIsNotConstructed = errors.New(
		"GetClientQuery must be created via NewGetClientQuery constructor",
	)
)

// GetClientQuery retrieves one client by identity.
type GetClientQuery struct {
	clientID int64

	guard guard.ConstructorGuard
}

// NewGetClientQuery creates a query for a single client.
func NewGetClientQuery(clientID int64) (GetClientQuery, error) {
	if clientID <= 0 {
		return GetClientQuery{}, errs.NewValidationError("clientID", "clientID must be positive")
	}

	return GetClientQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

// ClientID returns the identity of the requested client.
func (q GetClientQuery) ClientID() int64 {
	return q.clientID
}
