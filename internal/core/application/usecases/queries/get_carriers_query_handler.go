package queries

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// GetCarriersQueryResponse is the flat read model for one carrier.
type GetCarriersQueryResponse struct {
	ID        int64
	Nickname  string
	Speed     float64
	BirthDate time.Time
	PhotoURL  *string
	Active    bool
	Retired   bool
	Available bool
	CreatedAt time.Time
}

// GetCarriersQueryHandler lists carriers straight from the database.
type GetCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarriersQueryHandler creates a handler for carrier listing queries.
func NewGetCarriersQueryHandler(db *gorm.DB) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by nickname.
// Without filters the listing shows active non-retired carriers, matching
// what a dispatcher works with day to day.
func (h GetCarriersQueryHandler) Handle(ctx context.Context, query GetCarriersQuery) ([]GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var conditions []string
	switch {
	case query.AvailableOnly():
		conditions = append(conditions, "active = TRUE", "retired = FALSE")
	default:
		if query.ActiveOnly() {
			conditions = append(conditions, "active = TRUE")
		}
		if !query.IncludeRetired() {
			conditions = append(conditions, "retired = FALSE")
		}
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	carriers := make([]GetCarriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			nickname,
			speed,
			birth_date,
			photo_url,
			active,
			retired,
			created_at
		FROM carriers` + where + `
		ORDER BY nickname
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetCarriersQueryResponse

		err = rows.Scan(
			&item.ID,
			&item.Nickname,
			&item.Speed,
			&item.BirthDate,
			&item.PhotoURL,
			&item.Active,
			&item.Retired,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		item.Available = item.Active && !item.Retired
		carriers = append(carriers, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
