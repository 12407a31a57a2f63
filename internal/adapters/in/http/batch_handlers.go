package http

import (
	"net/http"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/queries"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// BatchResponse is the JSON shape of a batch on the wire.
type BatchResponse struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	LocationID   string    `json:"location_id"`
	CategoryID   string    `json:"category_id"`
	ResourceName string    `json:"resource_name"`
	Total        int       `json:"total_quantity"`
	Reserved     int       `json:"reserved_quantity"`
	Available    int       `json:"available_quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetReadyBatches handles GET /api/batches/ready - batches open for
// commitments and reservations.
func (s *Server) GetReadyBatches(ctx echo.Context) error {
	query := queries.NewGetReadyBatchesQuery()

	rows, err := s.getReadyBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]BatchResponse, len(rows))
	for i, row := range rows {
		response[i] = BatchResponse{
			ID:           row.ID.String(),
			ProviderID:   row.ProviderID.String(),
			LocationID:   row.LocationID.String(),
			CategoryID:   row.CategoryID.String(),
			ResourceName: row.ResourceName,
			Total:        row.Total,
			Reserved:     row.Reserved,
			Available:    row.Available,
			CreatedAt:    row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewBatchRequest is the body of POST /api/batches/. The provider is taken
// from the bearer token.
type NewBatchRequest struct {
	LocationID   string `json:"location_id"`
	CategoryID   string `json:"category_id"`
	ResourceName string `json:"resource_name"`
	Total        int    `json:"total_quantity"`
}

// CreateBatch handles POST /api/batches/ - registers a draft batch for the
// authenticated provider.
func (s *Server) CreateBatch(ctx echo.Context) error {
	providerID, ok := authUserID(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	var req NewBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	locationID, err := kernel.UUIDFromString(req.LocationID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid location_id")
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid category_id")
	}

	total, err := kernel.NewQuantity(req.Total)
	if err != nil {
		return domainError(ctx, err)
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand(
		batchID, providerID, locationID, categoryID, req.ResourceName, total)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.createBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": batchID.String()})
}

// MarkBatchReady handles POST /api/batches/:id/mark-ready - publishes a
// draft batch.
func (s *Server) MarkBatchReady(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid batch id")
	}

	cmd, err := commands.NewMarkBatchReadyCommand(batchID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.markBatchReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
