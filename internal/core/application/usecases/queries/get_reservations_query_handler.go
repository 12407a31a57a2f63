package queries

import (
	"context"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/reservation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReservationsQueryHandler retrieves reservation rows from the database.
type GetReservationsQueryHandler struct {
	db *gorm.DB
}

// NewGetReservationsQueryHandler creates a handler for reservation list queries.
// Requires a GORM database connection for query execution.
func NewGetReservationsQueryHandler(db *gorm.DB) GetReservationsQueryHandler {
	return GetReservationsQueryHandler{db: db}
}

// Handle executes the query.
// Applies the optional user filter and the active-only restriction, returning
// rows newest first with id as tie-break.
func (h GetReservationsQueryHandler) Handle(
	ctx context.Context,
	query GetReservationsQuery,
) ([]GetReservationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			batch_id,
			user_id,
			quantity,
			status,
			created_at,
			expires_at
		FROM reservations
	`
	var args []any
	var conditions []string

	if query.UserID() != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, query.UserID().String())
	}
	if query.ActiveOnly() {
		conditions = append(conditions, "status IN ?")
		args = append(args, []string{
			reservation.Reserved.String(),
			reservation.Acquired.String(),
		})
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

	reservations := make([]GetReservationsQueryResponse, 0)

	for rows.Next() {
		var resp GetReservationsQueryResponse
		var id, batchID, userID uuid.UUID
		var createdAt, expiresAt time.Time

		err = rows.Scan(
			&id,
			&batchID,
			&userID,
			&resp.Quantity,
			&resp.Status,
			&createdAt,
			&expiresAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BatchID, err = kernel.UUIDFromBytes(batchID[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}

		resp.CreatedAt = createdAt
		resp.ExpiresAt = expiresAt
		reservations = append(reservations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
