// Package clientrepo provides data transfer objects and mapping functions for
// client persistence.
package clientrepo

import (
	"time"

	"pigeonpost/internal/core/domain/model/client"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	BirthDate time.Time `gorm:"not null"`
	Address   string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		BirthDate: aggregate.BirthDate(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(
		dto.ID,
		dto.Name,
		dto.Email,
		dto.BirthDate,
		dto.Address,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
