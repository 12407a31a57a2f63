// Package batchrepo provides data transfer objects and mapping functions for
// donation batch persistence.
package batchrepo

import (
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// Quantity accounting is stored as separate total and reserved columns so
// availability can be computed in SQL.
type BatchDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID       uuid.UUID `gorm:"type:uuid;index"`
	LocationID       uuid.UUID `gorm:"type:uuid"`
	CategoryID       uuid.UUID `gorm:"type:uuid"`
	ResourceName     string    `gorm:"type:varchar(255)"`
	TotalQuantity    int
	ReservedQuantity int
	Status           string    `gorm:"type:varchar(32);index"`
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

func fromDomain(aggregate *batch.Batch) BatchDTO {
	return BatchDTO{
		ID:               aggregate.ID().Bytes(),
		ProviderID:       aggregate.Provider().Bytes(),
		LocationID:       aggregate.Location().Bytes(),
		CategoryID:       aggregate.Category().Bytes(),
		ResourceName:     aggregate.ResourceName(),
		TotalQuantity:    aggregate.Total(),
		ReservedQuantity: aggregate.Reserved(),
		Status:           aggregate.Status().String(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	status, err := batch.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(
		id,
		providerID,
		locationID,
		categoryID,
		dto.ResourceName,
		dto.TotalQuantity,
		dto.ReservedQuantity,
		status,
		dto.CreatedAt,
	)
}
