package queries

import (
	"context"
	"strings"
	"time"

	"pigeonpost/internal/core/domain/model/letter"

	"gorm.io/gorm"
)

// LetterSummary is the flat read model for one letter in a listing, with the
// participant names already resolved.
type LetterSummary struct {
	ID              int64
	Message         string
	Status          string
	SenderID        int64
	SenderName      string
	RecipientID     int64
	RecipientName   string
	CarrierID       int64
	CarrierNickname string
	Overdue         bool
	DispatchedAt    *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}

// GetLettersQueryResponse is one page of letters plus the unpaged total.
type GetLettersQueryResponse struct {
	Items    []LetterSummary
	Total    int64
	Page     int
	PageSize int
}

// GetLettersQueryHandler lists letters straight from the database.
// Uses direct SQL for read performance; the joins resolve sender, recipient
// and carrier names in one round trip.
type GetLettersQueryHandler struct {
	db *gorm.DB
}

// NewGetLettersQueryHandler creates a handler for letter listing queries.
func NewGetLettersQueryHandler(db *gorm.DB) GetLettersQueryHandler {
	return GetLettersQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are sorted newest first and paged per the query; the overdue flag
// is computed against the moment the query runs.
func (h GetLettersQueryHandler) Handle(ctx context.Context, query GetLettersQuery) (GetLettersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLettersQueryResponse{}, err
	}

	where, args := buildLetterFilters(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM letters l`+where, args...).
		Scan(&total).Error; err != nil {
		return GetLettersQueryResponse{}, err
	}

	now := time.Now().UTC()
	items := make([]LetterSummary, 0)

	listArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
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
		JOIN carriers c ON c.id = l.carrier_id`+where+`
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return GetLettersQueryResponse{}, err
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
			return GetLettersQueryResponse{}, err
		}

		item.Overdue = item.Status == letter.Dispatched.String() &&
			item.DispatchedAt != nil &&
			now.Sub(*item.DispatchedAt) > letter.OverdueThreshold
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return GetLettersQueryResponse{}, err
	}

	return GetLettersQueryResponse{
		Items:    items,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}

func buildLetterFilters(query GetLettersQuery) (string, []any) {
	var conditions []string
	var args []any

	if query.Status() != nil {
		conditions = append(conditions, "l.status = ?")
		args = append(args, query.Status().String())
	}
	if query.SenderID() > 0 {
		conditions = append(conditions, "l.sender_id = ?")
		args = append(args, query.SenderID())
	}
	if query.RecipientID() > 0 {
		conditions = append(conditions, "l.recipient_id = ?")
		args = append(args, query.RecipientID())
	}
	if query.CarrierID() > 0 {
		conditions = append(conditions, "l.carrier_id = ?")
		args = append(args, query.CarrierID())
	}
	if query.OverdueOnly() {
		conditions = append(conditions, "l.status = ?", "l.dispatched_at < ?")
		args = append(args, letter.Dispatched.String(), time.Now().UTC().Add(-letter.OverdueThreshold))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
