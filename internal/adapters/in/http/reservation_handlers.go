package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/queries"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ReservationResponse is the JSON shape of a reservation on the wire.
type ReservationResponse struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	UserID    string    `json:"user_id"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GetReservations handles GET /api/resources/reservations with optional
// user_id and active_only filters.
func (s *Server) GetReservations(ctx echo.Context) error {
	var userID *kernel.UUID
	if raw := ctx.QueryParam("user_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid user_id")
		}
		userID = &id
	}

	activeOnly := false
	if raw := ctx.QueryParam("active_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid active_only")
		}
		activeOnly = parsed
	}

	query, err := queries.NewGetReservationsQuery(userID, activeOnly)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getReservationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ReservationResponse, len(rows))
	for i, row := range rows {
		response[i] = ReservationResponse{
			ID:        row.ID.String(),
			BatchID:   row.BatchID.String(),
			UserID:    row.UserID.String(),
			Quantity:  row.Quantity,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
			ExpiresAt: row.ExpiresAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewReservationRequest is the body of POST /api/resources/reservations.
// TTLHours of zero falls back to the default hold duration.
type NewReservationRequest struct {
	BatchID  string `json:"batch_id"`
	Quantity int    `json:"quantity"`
	TTLHours int    `json:"ttl_hours"`
}

// CreateReservation handles POST /api/resources/reservations - the
// authenticated shelter places a hold on batch quantity.
func (s *Server) CreateReservation(ctx echo.Context) error {
	shelterID, ok := authUserID(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	var req NewReservationRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	batchID, err := kernel.UUIDFromString(req.BatchID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid batch_id")
	}

	quantity, err := kernel.NewQuantity(req.Quantity)
	if err != nil {
		return domainError(ctx, err)
	}

	if req.TTLHours < 0 {
		return jsonError(ctx, http.StatusBadRequest, "Invalid ttl_hours")
	}
	ttl := time.Duration(req.TTLHours) * time.Hour

	reservationID := kernel.NewUUID()
	cmd, err := commands.NewCreateReservationCommand(reservationID, batchID, shelterID, quantity, ttl)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.createReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": reservationID.String()})
}

// CancelReservation handles POST /api/resources/reservations/:id/cancel.
func (s *Server) CancelReservation(ctx echo.Context) error {
	reservationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid reservation id")
	}

	cmd, err := commands.NewCancelReservationCommand(reservationID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.cancelReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
