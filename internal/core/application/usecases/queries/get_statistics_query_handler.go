package queries

import (
	"context"
	"math"
	"time"

	"pigeonpost/internal/core/domain/model/letter"

	"gorm.io/gorm"
)

// GetStatisticsQueryResponse is the delivery statistics report.
//
// AverageDeliveryHours averages the floored whole-hour delivery time of every
// delivered letter, rounded to two decimals. Delivered rows missing either
// timestamp are excluded from the average but still counted as delivered.
type GetStatisticsQueryResponse struct {
	TotalLetters         int64
	QueuedLetters        int64
	DispatchedLetters    int64
	DeliveredLetters     int64
	OverdueLetters       int64
	AverageDeliveryHours float64
}

// GetStatisticsQueryHandler computes the statistics report in a single SQL
// pass over the letters table.
type GetStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatisticsQueryHandler(db *gorm.DB) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{db: db}
}

// Handle executes the report query.
// A letter counts as overdue when it is dispatched and its dispatch moment
// lies more than the overdue threshold before the query runs.
func (h GetStatisticsQueryHandler) Handle(ctx context.Context, query GetStatisticsQuery) (GetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	overdueBefore := time.Now().UTC().Add(-letter.OverdueThreshold)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ? AND dispatched_at < ?),
			COALESCE(AVG(
				FLOOR(EXTRACT(EPOCH FROM (delivered_at - dispatched_at)) / 3600)
			) FILTER (
				WHERE status = ? AND dispatched_at IS NOT NULL AND delivered_at IS NOT NULL
			), 0)
		FROM letters
	`,
		letter.Queued.String(),
		letter.Dispatched.String(),
		letter.Delivered.String(),
		letter.Dispatched.String(), overdueBefore,
		letter.Delivered.String(),
	).Row()

	var resp GetStatisticsQueryResponse
	var avgHours float64
	err := row.Scan(
		&resp.TotalLetters,
		&resp.QueuedLetters,
		&resp.DispatchedLetters,
		&resp.DeliveredLetters,
		&resp.OverdueLetters,
		&avgHours,
	)
	if err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	resp.AverageDeliveryHours = math.Round(avgHours*100) / 100
	return resp, nil
}
