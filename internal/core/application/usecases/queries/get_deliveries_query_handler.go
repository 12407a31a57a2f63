package queries

import (
	"context"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler retrieves delivery rows from the database.
// Supports the public delivery list, the volunteer's own view, and the
// active-operation feed the state watcher polls.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery list queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Applies the optional volunteer and status filters and returns rows newest
// first, breaking creation-time ties by id so pagination stays stable.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			batch_id,
			volunteer_id,
			quantity,
			status,
			pickup_code,
			delivery_code,
			created_at,
			updated_at
		FROM deliveries
	`
	var args []any
	var conditions []string

	if query.VolunteerID() != nil {
		conditions = append(conditions, "volunteer_id = ?")
		args = append(args, query.VolunteerID().String())
	}
	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, status := range statuses {
			names = append(names, status.String())
		}
		conditions = append(conditions, "status IN ?")
		args = append(args, names)
	}
	for i, condition := range conditions {
		if i == 0 {
			sql += " WHERE " + condition
		} else {
			sql += " AND " + condition
		}
	}
	sql += " ORDER BY created_at DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetDeliveriesQueryResponse, 0)

	for rows.Next() {
		var resp GetDeliveriesQueryResponse
		var id, batchID uuid.UUID
		var volunteerID *uuid.UUID
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&batchID,
			&volunteerID,
			&resp.Quantity,
			&resp.Status,
			&resp.PickupCode,
			&resp.DeliveryCode,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		sourceBatchID, idErr := kernel.UUIDFromBytes(batchID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BatchID = sourceBatchID

		if volunteerID != nil {
			vol, volErr := kernel.UUIDFromBytes((*volunteerID)[:])
			if volErr != nil {
				return nil, volErr
			}
			resp.VolunteerID = &vol
		}

		resp.CreatedAt = createdAt
		resp.UpdatedAt = updatedAt
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
