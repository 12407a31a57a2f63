package commands_test

import (
	"testing"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	sourceBatch := newReadyBatch(10)
	quantity, _ := kernel.NewQuantity(5)
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), sourceBatch.ID(), quantity)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, sourceBatch.ID()).Return(sourceBatch, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	deliveryRepo.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_DraftBatchRejected(t *testing.T) {
	ctx := t.Context()

	quantity, _ := kernel.NewQuantity(5)
	total, _ := kernel.NewQuantity(10)
	draftBatch, err := batch.NewBatch(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Water bottles", total,
	)
	require.NoError(t, err)

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), draftBatch.ID(), quantity)
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, draftBatch.ID()).Return(draftBatch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, batch.ErrBatchNotReady)
	uow.AssertNotCalled(t, "DeliveryRepository")
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDeliveryCommand{} // not constructed properly

	factory := new(MockDeliveryUoWFactory)
	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
