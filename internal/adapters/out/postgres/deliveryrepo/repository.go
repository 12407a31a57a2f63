package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UniqueActiveVolunteerIndex is the partial unique index that enforces the
// one-active-delivery-per-volunteer rule at the database level. Created by
// postgres.Migrate.
const UniqueActiveVolunteerIndex = "deliveries_one_active_per_volunteer"

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database. A unique violation on the active
// volunteer index is reported as a conflict so callers can map it to an HTTP
// 409 instead of a server error.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("activeDelivery", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewConflictErrorWithCause("activeDelivery", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByVolunteer retrieves all deliveries of the volunteer that are in
// an active status.
func (r *GormDeliveryRepository) GetActiveByVolunteer(
	ctx context.Context, volunteerID kernel.UUID,
) ([]*delivery.Delivery, error) {
	if err := volunteerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "volunteer_id = ? AND status IN ?", volunteerID.Bytes(), activeStatusStrings()).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActiveOlderThan retrieves active deliveries that have not been updated
// for longer than the given number of hours.
func (r *GormDeliveryRepository) GetActiveOlderThan(
	ctx context.Context, hours int,
) ([]*delivery.Delivery, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status IN ? AND updated_at < ?", activeStatusStrings(), cutoff).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func activeStatusStrings() []string {
	statuses := delivery.ActiveStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
