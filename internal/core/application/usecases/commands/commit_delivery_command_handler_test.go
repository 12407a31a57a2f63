package commands_test

import (
	"errors"
	"testing"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/commands"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommitDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	sourceBatch := newReadyBatch(10)
	pending := newPendingDelivery(sourceBatch.ID(), 5)

	volunteerID := kernel.NewUUID()
	quantity, _ := kernel.NewQuantity(3)
	cmd, err := commands.NewCommitDeliveryCommand(pending.ID(), volunteerID, quantity)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		deliveryRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		batchRepo.On("Get", ctx, sourceBatch.ID()).Return(sourceBatch, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		batchRepo.On("Update", ctx, mock.AnythingOfType("*batch.Batch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCommitDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.DeliveryID.IsEqual(pending.ID()))
	assert.Equal(t, delivery.Reserved, result.Status)
	assert.Len(t, result.PickupCode.String(), kernel.PickupCodeLength)
	assert.Len(t, result.DeliveryCode.String(), kernel.PickupCodeLength)
	assert.Equal(t, 7, sourceBatch.Available())
	deliveryRepo.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCommitDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CommitDeliveryCommand{} // not constructed properly

	factory := new(MockDeliveryUoWFactory)
	handler := commands.NewCommitDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCommitDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCommitDeliveryCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	quantity, _ := kernel.NewQuantity(3)
	cmd, err := commands.NewCommitDeliveryCommand(deliveryID, kernel.NewUUID(), quantity)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("BatchRepository").Return(new(MockBatchRepository)).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCommitDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCommitDeliveryCommandHandler_Handle_InsufficientQuantity(t *testing.T) {
	ctx := t.Context()

	sourceBatch := newReadyBatch(2)
	pending := newPendingDelivery(sourceBatch.ID(), 2)

	quantity, _ := kernel.NewQuantity(5)
	cmd, err := commands.NewCommitDeliveryCommand(pending.ID(), kernel.NewUUID(), quantity)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		deliveryRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		batchRepo.On("Get", ctx, sourceBatch.ID()).Return(sourceBatch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCommitDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, batch.ErrInsufficientQuantity)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommitDeliveryCommandHandler_Handle_AlreadyCommitted(t *testing.T) {
	ctx := t.Context()

	sourceBatch := newReadyBatch(10)
	reserved := newReservedDelivery(sourceBatch.ID(), 3)

	quantity, _ := kernel.NewQuantity(3)
	cmd, err := commands.NewCommitDeliveryCommand(reserved.ID(), kernel.NewUUID(), quantity)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		deliveryRepo.On("Get", ctx, reserved.ID()).Return(reserved, nil).Once(),
		batchRepo.On("Get", ctx, sourceBatch.ID()).Return(sourceBatch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCommitDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCommitDeliveryCommandHandler_Handle_VolunteerConflict(t *testing.T) {
	ctx := t.Context()

	sourceBatch := newReadyBatch(10)
	pending := newPendingDelivery(sourceBatch.ID(), 5)

	quantity, _ := kernel.NewQuantity(3)
	cmd, err := commands.NewCommitDeliveryCommand(pending.ID(), kernel.NewUUID(), quantity)
	require.NoError(t, err)

	conflict := errs.NewConflictError("active delivery per volunteer")

	deliveryRepo := new(MockDeliveryRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		deliveryRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		batchRepo.On("Get", ctx, sourceBatch.ID()).Return(sourceBatch, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCommitDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCommitDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	sourceBatch := newReadyBatch(10)
	pending := newPendingDelivery(sourceBatch.ID(), 5)

	quantity, _ := kernel.NewQuantity(3)
	cmd, err := commands.NewCommitDeliveryCommand(pending.ID(), kernel.NewUUID(), quantity)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		deliveryRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		batchRepo.On("Get", ctx, sourceBatch.ID()).Return(sourceBatch, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		batchRepo.On("Update", ctx, mock.AnythingOfType("*batch.Batch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCommitDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
