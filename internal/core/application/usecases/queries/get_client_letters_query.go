package queries

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrGetClientLettersQueryIsNotConstructed = errors.New(
		"GetClientLettersQuery must be created via NewGetClientLettersQuery constructor",
	)
)

// GetClientLettersQuery retrieves the correspondence of one client, split
// into letters sent and letters received.
type GetClientLettersQuery struct {
	clientID int64

	guard guard.ConstructorGuard
}

// NewGetClientLettersQuery creates a per-client correspondence query.
func NewGetClientLettersQuery(clientID int64) (GetClientLettersQuery, error) {
	if clientID <= 0 {
		return GetClientLettersQuery{}, errs.NewValidationError("clientID", "clientID must be positive")
	}

	return GetClientLettersQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientLettersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientLettersQueryIsNotConstructed)
}

// ClientID returns the identity of the client whose letters are requested.
func (q GetClientLettersQuery) ClientID() int64 {
	return q.clientID
}
