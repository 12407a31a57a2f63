// Package reservationrepo provides data transfer objects and mapping
// functions for shelter reservation persistence.
package reservationrepo

import (
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for persisting reservation
// aggregates. The expiry deadline is stored as a plain timestamp so the
// expiry job can select overdue holds in SQL.
type ReservationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID   uuid.UUID `gorm:"type:uuid;index"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	Status    string    `gorm:"type:varchar(32);index"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	ExpiresAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for reservation entities.
func (ReservationDTO) TableName() string {
	return "reservations"
}

func fromDomain(aggregate *reservation.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:        aggregate.ID().Bytes(),
		BatchID:   aggregate.Batch().Bytes(),
		UserID:    aggregate.User().Bytes(),
		Quantity:  aggregate.Quantity().Value(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		ExpiresAt: aggregate.ExpiresAt(),
	}
}

func toDomain(dto ReservationDTO) (*reservation.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	batchID, err := kernel.UUIDFromBytes(dto.BatchID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	status, err := reservation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return reservation.RestoreReservation(
		id,
		batchID,
		userID,
		quantity,
		status,
		dto.CreatedAt,
		dto.ExpiresAt,
	)
}
