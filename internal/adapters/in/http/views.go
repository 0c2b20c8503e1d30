package http

import (
	"math"
	"time"

	"pigeonpost/internal/core/application/usecases/queries"
	"pigeonpost/internal/core/domain/model/carrier"
	"pigeonpost/internal/core/domain/model/client"
	"pigeonpost/internal/core/domain/model/letter"
)

// LetterView is the JSON shape of one letter in API responses.
type LetterView struct {
	ID              int64      `json:"id"`
	Message         string     `json:"message"`
	Status          string     `json:"status"`
	SenderID        int64      `json:"senderId"`
	SenderName      string     `json:"senderName,omitempty"`
	RecipientID     int64      `json:"recipientId"`
	RecipientName   string     `json:"recipientName,omitempty"`
	CarrierID       int64      `json:"carrierId"`
	CarrierNickname string     `json:"carrierNickname,omitempty"`
	Overdue         bool       `json:"overdue"`
	DispatchedAt    *time.Time `json:"dispatchedAt"`
	DeliveredAt     *time.Time `json:"deliveredAt"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// TimeSpentView reports the delivery interval in whole floored units.
type TimeSpentView struct {
	Milliseconds int64 `json:"milliseconds"`
	Seconds      int64 `json:"seconds"`
	Minutes      int64 `json:"minutes"`
	Hours        int64 `json:"hours"`
}

// LetterDetailView extends LetterView with the delivery interval.
type LetterDetailView struct {
	LetterView
	UpdatedAt time.Time      `json:"updatedAt"`
	TimeSpent *TimeSpentView `json:"timeSpent,omitempty"`
}

// CarrierView is the JSON shape of one carrier in API responses.
type CarrierView struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	Speed     float64   `json:"speed"`
	BirthDate time.Time `json:"birthDate"`
	PhotoURL  *string   `json:"photoUrl"`
	Active    bool      `json:"active"`
	Retired   bool      `json:"retired"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientView is the JSON shape of one client in API responses.
type ClientView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birthDate"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaginationView carries paging metadata alongside a listing.
type PaginationView struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// StatisticsView is the JSON shape of the delivery statistics report.
type StatisticsView struct {
	TotalLetters         int64   `json:"totalLetters"`
	QueuedLetters        int64   `json:"queuedLetters"`
	DispatchedLetters    int64   `json:"dispatchedLetters"`
	DeliveredLetters     int64   `json:"deliveredLetters"`
	OverdueLetters       int64   `json:"overdueLetters"`
	AverageDeliveryHours float64 `json:"averageDeliveryHours"`
}

// ClientLettersView is a client's correspondence split by role.
type ClientLettersView struct {
	Sent     []LetterView `json:"sent"`
	Received []LetterView `json:"received"`
	Total    int64        `json:"total"`
}

func newPaginationView(page int, pageSize int, total int64) PaginationView {
	totalPages := int64(0)
	if pageSize > 0 {
		totalPages = int64(math.Ceil(float64(total) / float64(pageSize)))
	}
	return PaginationView{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func letterViewFromSummary(summary queries.LetterSummary) LetterView {
	return LetterView{
		ID:              summary.ID,
		Message:         summary.Message,
		Status:          summary.Status,
		SenderID:        summary.SenderID,
		SenderName:      summary.SenderName,
		RecipientID:     summary.RecipientID,
		RecipientName:   summary.RecipientName,
		CarrierID:       summary.CarrierID,
		CarrierNickname: summary.CarrierNickname,
		Overdue:         summary.Overdue,
		DispatchedAt:    summary.DispatchedAt,
		DeliveredAt:     summary.DeliveredAt,
		CreatedAt:       summary.CreatedAt,
	}
}

func letterViewsFromSummaries(summaries []queries.LetterSummary) []LetterView {
	views := make([]LetterView, len(summaries))
	for i, summary := range summaries {
		views[i] = letterViewFromSummary(summary)
	}
	return views
}

func letterViewFromAggregate(aggregate *letter.Letter) LetterView {
	return LetterView{
		ID:           aggregate.ID(),
		Message:      aggregate.Message(),
		Status:       aggregate.Status().String(),
		SenderID:     aggregate.SenderID(),
		RecipientID:  aggregate.RecipientID(),
		CarrierID:    aggregate.CarrierID(),
		Overdue:      aggregate.IsOverdue(time.Now().UTC()),
		DispatchedAt: aggregate.DispatchedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func carrierViewFromResponse(resp queries.GetCarriersQueryResponse) CarrierView {
	return CarrierView{
		ID:        resp.ID,
		Nickname:  resp.Nickname,
		Speed:     resp.Speed,
		BirthDate: resp.BirthDate,
		PhotoURL:  resp.PhotoURL,
		Active:    resp.Active,
		Retired:   resp.Retired,
		Available: resp.Available,
		CreatedAt: resp.CreatedAt,
	}
}

func carrierViewFromAggregate(aggregate *carrier.Carrier) CarrierView {
	return CarrierView{
		ID:        aggregate.ID(),
		Nickname:  aggregate.Nickname(),
		Speed:     aggregate.Speed(),
		BirthDate: aggregate.BirthDate(),
		PhotoURL:  aggregate.PhotoURL(),
		Active:    aggregate.IsActive(),
		Retired:   aggregate.IsRetired(),
		Available: aggregate.IsAvailable(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func clientViewFromSummary(summary queries.ClientSummary) ClientView {
	return ClientView{
		ID:        summary.ID,
		Name:      summary.Name,
		Email:     summary.Email,
		BirthDate: summary.BirthDate,
		Address:   summary.Address,
		CreatedAt: summary.CreatedAt,
	}
}

func clientViewFromAggregate(aggregate *client.Client) ClientView {
	return ClientView{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		BirthDate: aggregate.BirthDate(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
	}
}
