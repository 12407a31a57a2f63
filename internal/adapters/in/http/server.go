// Package http exposes the REST API of the donation logistics service.
// It coordinates between echo HTTP handlers and application use cases,
// translating domain errors into the JSON error envelope clients expect.
package http

import (
	"net/http"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/queries"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the REST API.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	tokens *token.Manager

	// Command handlers
	createDeliveryHandler    commands.CreateDeliveryCommandHandler
	commitDeliveryHandler    commands.CommitDeliveryCommandHandler
	cancelDeliveryHandler    commands.CancelDeliveryCommandHandler
	confirmPickupHandler     commands.ConfirmPickupCommandHandler
	validatePickupHandler    commands.ValidatePickupCommandHandler
	createBatchHandler       commands.CreateBatchCommandHandler
	markBatchReadyHandler    commands.MarkBatchReadyCommandHandler
	createReservationHandler commands.CreateReservationCommandHandler
	cancelReservationHandler commands.CancelReservationCommandHandler

	// Query handlers
	getDeliveriesHandler       queries.GetDeliveriesQueryHandler
	getReadyBatchesHandler     queries.GetReadyBatchesQueryHandler
	getReservationsHandler     queries.GetReservationsQueryHandler
	getLocationsHandler        queries.GetLocationsQueryHandler
	getCategoriesHandler       queries.GetCategoriesQueryHandler
	getResourceRequestsHandler queries.GetResourceRequestsQueryHandler
	getUsersHandler            queries.GetUsersQueryHandler
	getUserByUsernameHandler   queries.GetUserByUsernameQueryHandler
}

// ServerHandlers groups the use case handlers the server dispatches to.
// Kept as a struct so the composition root reads as a wiring table.
type ServerHandlers struct {
	CreateDelivery    commands.CreateDeliveryCommandHandler
	CommitDelivery    commands.CommitDeliveryCommandHandler
	CancelDelivery    commands.CancelDeliveryCommandHandler
	ConfirmPickup     commands.ConfirmPickupCommandHandler
	ValidatePickup    commands.ValidatePickupCommandHandler
	CreateBatch       commands.CreateBatchCommandHandler
	MarkBatchReady    commands.MarkBatchReadyCommandHandler
	CreateReservation commands.CreateReservationCommandHandler
	CancelReservation commands.CancelReservationCommandHandler

	GetDeliveries       queries.GetDeliveriesQueryHandler
	GetReadyBatches     queries.GetReadyBatchesQueryHandler
	GetReservations     queries.GetReservationsQueryHandler
	GetLocations        queries.GetLocationsQueryHandler
	GetCategories       queries.GetCategoriesQueryHandler
	GetResourceRequests queries.GetResourceRequestsQueryHandler
	GetUsers            queries.GetUsersQueryHandler
	GetUserByUsername   queries.GetUserByUsernameQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the token manager used for authentication.
func NewServer(tokens *token.Manager, handlers ServerHandlers) *Server {
	return &Server{
		tokens:                     tokens,
		createDeliveryHandler:      handlers.CreateDelivery,
		commitDeliveryHandler:      handlers.CommitDelivery,
		cancelDeliveryHandler:      handlers.CancelDelivery,
		confirmPickupHandler:       handlers.ConfirmPickup,
		validatePickupHandler:      handlers.ValidatePickup,
		createBatchHandler:         handlers.CreateBatch,
		markBatchReadyHandler:      handlers.MarkBatchReady,
		createReservationHandler:   handlers.CreateReservation,
		cancelReservationHandler:   handlers.CancelReservation,
		getDeliveriesHandler:       handlers.GetDeliveries,
		getReadyBatchesHandler:     handlers.GetReadyBatches,
		getReservationsHandler:     handlers.GetReservations,
		getLocationsHandler:        handlers.GetLocations,
		getCategoriesHandler:       handlers.GetCategories,
		getResourceRequestsHandler: handlers.GetResourceRequests,
		getUsersHandler:            handlers.GetUsers,
		getUserByUsernameHandler:   handlers.GetUserByUsername,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
// Every route under /api except login requires a valid bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/auth/login", s.Login)

	api := e.Group("/api", s.RequireAuth)

	api.GET("/users/", s.GetUsers)

	api.GET("/locations/", s.GetLocations)
	api.GET("/categories/", s.GetCategories)
	api.GET("/resources/requests", s.GetResourceRequests)

	api.GET("/deliveries/", s.GetDeliveries)
	api.POST("/deliveries/", s.CreateDelivery)
	api.POST("/deliveries/:id/commit", s.CommitDelivery)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)
	api.POST("/deliveries/:id/confirm-pickup", s.ConfirmPickup)
	api.POST("/deliveries/:id/validate-pickup", s.ValidatePickup)

	api.GET("/batches/ready", s.GetReadyBatches)
	api.POST("/batches/", s.CreateBatch)
	api.POST("/batches/:id/mark-ready", s.MarkBatchReady)

	api.GET("/resources/reservations", s.GetReservations)
	api.POST("/resources/reservations", s.CreateReservation)
	api.POST("/resources/reservations/:id/cancel", s.CancelReservation)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
