package queries

import (
	"context"
	"database/sql"
	"errors"

	"pigeonpost/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCarrierQueryHandler retrieves a single carrier, including inactive and
// retired ones. Listings hide those by default, the detail view does not.
type GetCarrierQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierQueryHandler creates a handler for single-carrier queries.
func NewGetCarrierQueryHandler(db *gorm.DB) GetCarrierQueryHandler {
	return GetCarrierQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the carrier does not exist.
func (h GetCarrierQueryHandler) Handle(ctx context.Context, query GetCarrierQuery) (GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarriersQueryResponse{}, err
	}

	var resp GetCarriersQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			nickname,
			speed,
			birth_date,
			photo_url,
			active,
			retired,
			created_at
		FROM carriers
		WHERE id = ?
	`, query.CarrierID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Nickname,
		&resp.Speed,
		&resp.BirthDate,
		&resp.PhotoURL,
		&resp.Active,
		&resp.Retired,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCarriersQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("carrierID", query.CarrierID(), err)
		}
		return GetCarriersQueryResponse{}, err
	}

	resp.Available = resp.Active && !resp.Retired
	return resp, nil
}
