// Package carrierrepo provides data transfer objects and mapping functions for
// carrier persistence. It implements the repository pattern for the carrier
// aggregate, converting between domain entities and database rows.
package carrierrepo

import (
	"time"

	"pigeonpost/internal/core/domain/model/carrier"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
type CarrierDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Nickname  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Speed     float64   `gorm:"type:numeric(8,2);not null"`
	BirthDate time.Time `gorm:"not null"`
	PhotoURL  *string   `gorm:"type:varchar(512)"`
	Active    bool      `gorm:"not null;default:true"`
	Retired   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:        aggregate.ID(),
		Nickname:  aggregate.Nickname(),
		Speed:     aggregate.Speed(),
		BirthDate: aggregate.BirthDate(),
		PhotoURL:  aggregate.PhotoURL(),
		Active:    aggregate.IsActive(),
		Retired:   aggregate.IsRetired(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	return carrier.RestoreCarrier(
		dto.ID,
		dto.Nickname,
		dto.Speed,
		dto.BirthDate,
		dto.PhotoURL,
		dto.Active,
		dto.Retired,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
