package reservationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/reservation"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM.
type GormReservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB, tracker aggregateTracker) *GormReservationRepository {
	return &GormReservationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reservation to the database.
func (r *GormReservationRepository) Add(ctx context.Context, aggregate *reservation.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing reservation to the database.
func (r *GormReservationRepository) Update(ctx context.Context, aggregate *reservation.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a reservation by ID.
func (r *GormReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reservation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByShelter retrieves all reservations of the shelter that are in an
// active status.
func (r *GormReservationRepository) GetActiveByShelter(
	ctx context.Context, shelterID kernel.UUID,
) ([]*reservation.Reservation, error) {
	if err := shelterID.Validate(); err != nil {
		return nil, err
	}

	activeStatuses := []string{
		reservation.Reserved.String(),
		reservation.Acquired.String(),
	}

	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "user_id = ? AND status IN ?", shelterID.Bytes(), activeStatuses).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetExpired retrieves reservations still in Reserved status whose deadline
// has passed at the given instant.
func (r *GormReservationRepository) GetExpired(
	ctx context.Context, now time.Time,
) ([]*reservation.Reservation, error) {
	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND expires_at < ?", reservation.Reserved.String(), now).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ReservationDTO) ([]*reservation.Reservation, error) {
	reservations := make([]*reservation.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		held, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, held)
	}

	return reservations, nil
}
