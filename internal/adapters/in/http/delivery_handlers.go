package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/queries"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// DeliveryResponse is the JSON shape of a delivery on the wire.
type DeliveryResponse struct {
	ID           string    `json:"id"`
	BatchID      string    `json:"batch_id"`
	VolunteerID  *string   `json:"volunteer_id"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	PickupCode   *string   `json:"pickup_code"`
	DeliveryCode *string   `json:"delivery_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func deliveryResponseFromQuery(row queries.GetDeliveriesQueryResponse) DeliveryResponse {
	var volunteerID *string
	if row.VolunteerID != nil {
		s := row.VolunteerID.String()
		volunteerID = &s
	}

	return DeliveryResponse{
		ID:           row.ID.String(),
		BatchID:      row.BatchID.String(),
		VolunteerID:  volunteerID,
		Quantity:     row.Quantity,
		Status:       row.Status,
		PickupCode:   row.PickupCode,
		DeliveryCode: row.DeliveryCode,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// GetDeliveries handles GET /api/deliveries/. Supports optional volunteer_id
// and comma-separated status filters.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	var volunteerID *kernel.UUID
	if raw := ctx.QueryParam("volunteer_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid volunteer_id")
		}
		volunteerID = &id
	}

	var statuses []delivery.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			status, err := delivery.StatusFromString(strings.TrimSpace(name))
			if err != nil {
				return jsonError(ctx, http.StatusBadRequest, "Invalid status filter")
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetDeliveriesQuery(volunteerID, statuses)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]DeliveryResponse, len(rows))
	for i, row := range rows {
		response[i] = deliveryResponseFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewDeliveryRequest is the body of POST /api/deliveries/.
type NewDeliveryRequest struct {
	BatchID  string `json:"batch_id"`
	Quantity int    `json:"quantity"`
}

// CreateDelivery handles POST /api/deliveries/ - publishes a delivery into
// the pool volunteers browse.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req NewDeliveryRequest
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

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, batchID, quantity)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": deliveryID.String()})
}

// CommitRequest is the body of POST /api/deliveries/:id/commit.
type CommitRequest struct {
	Quantity int `json:"quantity"`
}

// CommitResponse is returned on a successful commit. The pickup code is
// included so the client does not need a follow-up read.
type CommitResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	PickupCode   string `json:"pickup_code"`
	DeliveryCode string `json:"delivery_code"`
}

// CommitDelivery handles POST /api/deliveries/:id/commit - the authenticated
// volunteer commits to carry out the delivery.
func (s *Server) CommitDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	volunteerID, ok := authUserID(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	var req CommitRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	quantity, err := kernel.NewQuantity(req.Quantity)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCommitDeliveryCommand(deliveryID, volunteerID, quantity)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.commitDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CommitResponse{
		ID:           result.DeliveryID.String(),
		Status:       result.Status.String(),
		PickupCode:   result.PickupCode.String(),
		DeliveryCode: result.DeliveryCode.String(),
	})
}

// CancelDelivery handles POST /api/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CodeRequest is the body of the confirm-pickup and validate-pickup
// endpoints.
type CodeRequest struct {
	Code string `json:"code"`
}

// ConfirmPickup handles POST /api/deliveries/:id/confirm-pickup - the
// provider confirms handoff with the volunteer's pickup code.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	var req CodeRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	code, err := kernel.PickupCodeFromString(req.Code)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewConfirmPickupCommand(deliveryID, code)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidatePickup handles POST /api/deliveries/:id/validate-pickup - the
// shelter validates the delivery code on arrival, completing the delivery.
func (s *Server) ValidatePickup(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	var req CodeRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	code, err := kernel.PickupCodeFromString(req.Code)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewValidatePickupCommand(deliveryID, code)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.validatePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
