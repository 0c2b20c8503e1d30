package queries

import (
	"context"
	"database/sql"
	"errors"

	"pigeonpost/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetClientQueryHandler retrieves a single client.
type GetClientQueryHandler struct {
	db *gorm.DB
}

// NewGetClientQueryHandler creates a handler for single-client queries.
func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the client does not exist.
func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (ClientSummary, error) {
	if err := query.Validate(); err != nil {
		return ClientSummary{}, err
	}

	var resp ClientSummary

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			birth_date,
			address,
			created_at
		FROM clients
		WHERE id = ?
	`, query.ClientID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Name,
		&resp.Email,
		&resp.BirthDate,
		&resp.Address,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientSummary{}, errs.NewObjectNotFoundErrorWithCause("clientID", query.ClientID(), err)
		}
		return ClientSummary{}, err
	}

	return resp, nil
}
