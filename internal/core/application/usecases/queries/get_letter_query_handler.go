package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"

	"gorm.io/gorm"
)

// DeliveryTimeSpent reports the elapsed delivery interval in whole units,
// each floored independently. Present only on delivered letters.
type DeliveryTimeSpent struct {
	Milliseconds int64
	Seconds      int64
	Minutes      int64
	Hours        int64
}

// GetLetterQueryResponse is the full read model of one letter.
type GetLetterQueryResponse struct {
	LetterSummary
	UpdatedAt time.Time
	TimeSpent *DeliveryTimeSpent
}

// GetLetterQueryHandler retrieves a single letter with participants resolved
// and the delivery interval computed.
type GetLetterQueryHandler struct {
	db *gorm.DB
}

// NewGetLetterQueryHandler creates a handler for single-letter queries.
func NewGetLetterQueryHandler(db *gorm.DB) GetLetterQueryHandler {
	return GetLetterQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the letter does not exist. TimeSpent is
// nil unless the letter is delivered and carries both timestamps.
func (h GetLetterQueryHandler) Handle(ctx context.Context, query GetLetterQuery) (GetLetterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLetterQueryResponse{}, err
	}

	var resp GetLetterQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.message,
			l.status,
			l.sender_id,
			s.name,
			l.recipient_id,
			r.name,
			l.carrier_id,
			c.nickname,
			l.dispatched_at,
			l.delivered_at,
			l.created_at,
			l.updated_at
		FROM letters l
		JOIN clients s ON s.id = l.sender_id
		JOIN clients r ON r.id = l.recipient_id
		JOIN carriers c ON c.id = l.carrier_id
		WHERE l.id = ?
	`, query.LetterID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Message,
		&resp.Status,
		&resp.SenderID,
		&resp.SenderName,
		&resp.RecipientID,
		&resp.RecipientName,
		&resp.CarrierID,
		&resp.CarrierNickname,
		&resp.DispatchedAt,
		&resp.DeliveredAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetLetterQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("letterID", query.LetterID(), err)
		}
		return GetLetterQueryResponse{}, err
	}

	resp.Overdue = resp.Status == letter.Dispatched.String() &&
		resp.DispatchedAt != nil &&
		time.Now().UTC().Sub(*resp.DispatchedAt) > letter.OverdueThreshold

	if resp.Status == letter.Delivered.String() && resp.DispatchedAt != nil && resp.DeliveredAt != nil {
		d := resp.DeliveredAt.Sub(*resp.DispatchedAt)
		resp.TimeSpent = &DeliveryTimeSpent{
			Milliseconds: d.Milliseconds(),
			Seconds:      int64(d.Seconds()),
			Minutes:      int64(d.Minutes()),
			Hours:        int64(d.Hours()),
		}
	}

	return resp, nil
}
