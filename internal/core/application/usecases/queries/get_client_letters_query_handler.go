package queries

import (
	"context"
	"time"

	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetClientLettersQueryResponse is a client's correspondence: letters where
// the client is the sender and letters where the client is the recipient.
type GetClientLettersQueryResponse struct {
	Sent     []LetterSummary
	Received []LetterSummary
	Total    int64
}

// GetClientLettersQueryHandler builds the per-client correspondence view.
type GetClientLettersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientLettersQueryHandler creates a handler for per-client letter queries.
func NewGetClientLettersQueryHandler(db *gorm.DB) GetClientLettersQueryHandler {
	return GetClientLettersQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the client does not exist; an existing
// client with no letters gets empty lists.
func (h GetClientLettersQueryHandler) Handle(ctx context.Context, query GetClientLettersQuery) (GetClientLettersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClientLettersQueryResponse{}, err
	}

	var exists bool
	if err := h.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM clients WHERE id = ?)", query.ClientID()).
		Scan(&exists).Error; err != nil {
		return GetClientLettersQueryResponse{}, err
	}
	if !exists {
		return GetClientLettersQueryResponse{}, errs.NewObjectNotFoundError("clientID", query.ClientID())
	}

	now := time.Now().UTC()

	sent, err := h.listFor(ctx, "l.sender_id = ?", query.ClientID(), now)
	if err != nil {
		return GetClientLettersQueryResponse{}, err
	}
	received, err := h.listFor(ctx, "l.recipient_id = ?", query.ClientID(), now)
	if err != nil {
		return GetClientLettersQueryResponse{}, err
	}

	return GetClientLettersQueryResponse{
		Sent:     sent,
		Received: received,
		Total:    int64(len(sent) + len(received)),
	}, nil
}

func (h GetClientLettersQueryHandler) listFor(ctx context.Context, condition string, clientID int64, now time.Time) ([]LetterSummary, error) {
	items := make([]LetterSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
			l.created_at
		FROM letters l
		JOIN clients s ON s.id = l.sender_id
		JOIN clients r ON r.id = l.recipient_id
		JOIN carriers c ON c.id = l.carrier_id
		WHERE `+condition+`
		ORDER BY l.created_at DESC, l.id DESC
	`, clientID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item LetterSummary

		err = rows.Scan(
			&item.ID,
			&item.Message,
			&item.Status,
			&item.SenderID,
			&item.SenderName,
			&item.RecipientID,
			&item.RecipientName,
			&item.CarrierID,
			&item.CarrierNickname,
			&item.DispatchedAt,
			&item.DeliveredAt,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		item.Overdue = item.Status == letter.Dispatched.String() &&
			item.DispatchedAt != nil &&
			now.Sub(*item.DispatchedAt) > letter.OverdueThreshold
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
