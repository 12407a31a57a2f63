package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres/batchrepo"
	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres/deliveryrepo"
	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres/reservationrepo"
	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres/userrepo"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationDTO represents a pickup or dropoff location. Locations are
// reference data managed outside the aggregate model, so they have no
// repository of their own.
type LocationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255)"`
	Street string    `gorm:"type:varchar(255)"`
	Active bool
}

// TableName specifies the database table name for locations.
func (LocationDTO) TableName() string {
	return "locations"
}

// CategoryDTO represents a resource category. Reference data, no repository.
type CategoryDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255)"`
	Active bool
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// ResourceRequestDTO represents a shelter's standing request for resources.
// Requests are read through queries only; fulfilment happens via batches and
// reservations.
type ResourceRequestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShelterID    uuid.UUID `gorm:"type:uuid;index"`
	CategoryID   uuid.UUID `gorm:"type:uuid"`
	ResourceName string    `gorm:"type:varchar(255)"`
	Quantity     int
	Status       string    `gorm:"type:varchar(32);index"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for resource requests.
func (ResourceRequestDTO) TableName() string {
	return "resource_requests"
}

// Migrate creates or updates the database schema for all persistence
// entities, including the partial unique index that enforces the
// one-active-delivery-per-volunteer rule.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&batchrepo.BatchDTO{},
		&reservationrepo.ReservationDTO{},
		&userrepo.UserDTO{},
		&LocationDTO{},
		&CategoryDTO{},
		&ResourceRequestDTO{},
	); err != nil {
		return err
	}

	return db.Exec(activeVolunteerIndexSQL()).Error
}

func activeVolunteerIndexSQL() string {
	statuses := delivery.ActiveStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, fmt.Sprintf("'%s'", s.String()))
	}

	return fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON deliveries (volunteer_id) "+
			"WHERE status IN (%s) AND volunteer_id IS NOT NULL",
		deliveryrepo.UniqueActiveVolunteerIndex,
		strings.Join(names, ", "),
	)
}
