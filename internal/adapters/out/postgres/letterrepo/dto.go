// Package letterrepo provides data transfer objects and mapping functions for
// letter persistence. The lifecycle status is stored as text with a database
// check constraint mirroring the domain's status set.
package letterrepo

import (
	"time"

	"pigeonpost/internal/core/domain/model/letter"
)

// LetterDTO represents the database structure for persisting letter aggregates.
// Sender, recipient and carrier are plain foreign keys; the referenced rows
// are loaded by the read side, never through associations here.
type LetterDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Message      string     `gorm:"type:varchar(1000);not null"`
	SenderID     int64      `gorm:"not null;index"`
	RecipientID  int64      `gorm:"not null;index"`
	CarrierID    int64      `gorm:"not null;index"`
	Status       string     `gorm:"type:varchar(20);not null;check:status IN ('queued','dispatched','delivered')"`
	DispatchedAt *time.Time `gorm:""`
	DeliveredAt  *time.Time `gorm:""`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "letters".
func (LetterDTO) TableName() string {
	return "letters"
}

func fromDomain(aggregate *letter.Letter) LetterDTO {
	return LetterDTO{
		ID:           aggregate.ID(),
		Message:      aggregate.Message(),
		SenderID:     aggregate.SenderID(),
		RecipientID:  aggregate.RecipientID(),
		CarrierID:    aggregate.CarrierID(),
		Status:       aggregate.Status().String(),
		DispatchedAt: aggregate.DispatchedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto LetterDTO) (*letter.Letter, error) {
	status, err := letter.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return letter.RestoreLetter(
		dto.ID,
		dto.Message,
		dto.SenderID,
		dto.RecipientID,
		dto.CarrierID,
		status,
		dto.DispatchedAt,
		dto.DeliveredAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
