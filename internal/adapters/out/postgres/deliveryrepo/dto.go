// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery domain aggregate, handling the conversion between domain entities
// and database representations.
package deliveryrepo

import (
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Statuses are stored as their wire strings so raw SQL queries
// and API responses can filter without a mapping table.
//
// Timestamps are owned by the aggregate, so GORM's automatic time tracking
// is disabled.
type DeliveryDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BatchID      uuid.UUID  `gorm:"type:uuid;index"`
	VolunteerID  *uuid.UUID `gorm:"type:uuid;index"`
	Quantity     int
	Status       string  `gorm:"type:varchar(32);index"`
	PickupCode   *string `gorm:"type:varchar(8)"`
	DeliveryCode *string `gorm:"type:varchar(8)"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database
// representation. Maps all delivery attributes including the optional
// volunteer assignment and confirmation codes.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var volunteerID *uuid.UUID
	if id := aggregate.Volunteer(); id != nil {
		raw := id.Bytes()
		volunteerID = &raw
	}

	var pickupCode, deliveryCode *string
	if code := aggregate.PickupCode(); code != nil {
		s := code.String()
		pickupCode = &s
	}
	if code := aggregate.DeliveryCode(); code != nil {
		s := code.String()
		deliveryCode = &s
	}

	return DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		BatchID:      aggregate.BatchID().Bytes(),
		VolunteerID:  volunteerID,
		Quantity:     aggregate.Quantity().Value(),
		Status:       aggregate.Status().String(),
		PickupCode:   pickupCode,
		DeliveryCode: deliveryCode,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate using RestoreDelivery so cross-field
// invariants are re-validated on the way out of storage.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	batchID, err := kernel.UUIDFromBytes(dto.BatchID[:])
	if err != nil {
		return nil, err
	}

	var volunteerID *kernel.UUID
	if dto.VolunteerID != nil {
		vID, volunteerErr := kernel.UUIDFromBytes((*dto.VolunteerID)[:])
		if volunteerErr != nil {
			return nil, volunteerErr
		}

		volunteerID = &vID
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var pickupCode, deliveryCode *kernel.PickupCode
	if dto.PickupCode != nil {
		code, codeErr := kernel.PickupCodeFromString(*dto.PickupCode)
		if codeErr != nil {
			return nil, codeErr
		}
		pickupCode = &code
	}
	if dto.DeliveryCode != nil {
		code, codeErr := kernel.PickupCodeFromString(*dto.DeliveryCode)
		if codeErr != nil {
			return nil, codeErr
		}
		deliveryCode = &code
	}

	return delivery.RestoreDelivery(
		id,
		batchID,
		volunteerID,
		quantity,
		pickupCode,
		deliveryCode,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
