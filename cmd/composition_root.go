package cmd

import (
	httpin "github.com/rede-emergencia/euajudo-sub000/internal/adapters/in/http"
	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into use case handlers.
// Handlers are cheap value objects, so each accessor builds a fresh one.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the application's dependency container.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reservationUoWFactory() commands.ReservationUoWFactory {
	return FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCommitDeliveryCommandHandler() commands.CommitDeliveryCommandHandler {
	return commands.NewCommitDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateValidatePickupCommandHandler() commands.ValidatePickupCommandHandler {
	return commands.NewValidatePickupCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	return commands.NewCreateBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateMarkBatchReadyCommandHandler() commands.MarkBatchReadyCommandHandler {
	return commands.NewMarkBatchReadyCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateCreateReservationCommandHandler() commands.CreateReservationCommandHandler {
	return commands.NewCreateReservationCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateCancelReservationCommandHandler() commands.CancelReservationCommandHandler {
	return commands.NewCancelReservationCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateExpireReservationsCommandHandler() commands.ExpireReservationsCommandHandler {
	return commands.NewExpireReservationsCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateSweepStaleDeliveriesCommandHandler() commands.SweepStaleDeliveriesCommandHandler {
	return commands.NewSweepStaleDeliveriesCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyBatchesQueryHandler() queries.GetReadyBatchesQueryHandler {
	return queries.NewGetReadyBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReservationsQueryHandler() queries.GetReservationsQueryHandler {
	return queries.NewGetReservationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLocationsQueryHandler() queries.GetLocationsQueryHandler {
	return queries.NewGetLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetResourceRequestsQueryHandler() queries.GetResourceRequestsQueryHandler {
	return queries.NewGetResourceRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByUsernameQueryHandler() queries.GetUserByUsernameQueryHandler {
	return queries.NewGetUserByUsernameQueryHandler(c.gormDB)
}

// CreateServerHandlers bundles every handler the HTTP server needs.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		CreateDelivery:    c.CreateCreateDeliveryCommandHandler(),
		CommitDelivery:    c.CreateCommitDeliveryCommandHandler(),
		CancelDelivery:    c.CreateCancelDeliveryCommandHandler(),
		ConfirmPickup:     c.CreateConfirmPickupCommandHandler(),
		ValidatePickup:    c.CreateValidatePickupCommandHandler(),
		CreateBatch:       c.CreateCreateBatchCommandHandler(),
		MarkBatchReady:    c.CreateMarkBatchReadyCommandHandler(),
		CreateReservation: c.CreateCreateReservationCommandHandler(),
		CancelReservation: c.CreateCancelReservationCommandHandler(),

		GetDeliveries:       c.CreateGetDeliveriesQueryHandler(),
		GetReadyBatches:     c.CreateGetReadyBatchesQueryHandler(),
		GetReservations:     c.CreateGetReservationsQueryHandler(),
		GetLocations:        c.CreateGetLocationsQueryHandler(),
		GetCategories:       c.CreateGetCategoriesQueryHandler(),
		GetResourceRequests: c.CreateGetResourceRequestsQueryHandler(),
		GetUsers:            c.CreateGetUsersQueryHandler(),
		GetUserByUsername:   c.CreateGetUserByUsernameQueryHandler(),
	}
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}
