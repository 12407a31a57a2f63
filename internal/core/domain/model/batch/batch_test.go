package batch_test

import (
	"testing"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBatch(t *testing.T, total int) *batch.Batch {
	t.Helper()

	quantity, err := kernel.NewQuantity(total)
	require.NoError(t, err)

	b, err := batch.NewBatch(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"bottled water", quantity,
	)
	require.NoError(t, err)
	return b
}

func newReadyBatch(t *testing.T, total int) *batch.Batch {
	t.Helper()

	b := newTestBatch(t, total)
	require.NoError(t, b.MarkReady())
	return b
}

func quantityOf(t *testing.T, v int) kernel.Quantity {
	t.Helper()

	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func TestNewBatch(t *testing.T) {
	t.Run("should create draft batch with nothing reserved", func(t *testing.T) {
		b := newTestBatch(t, 10)

		require.NoError(t, b.Validate())
		assert.Equal(t, batch.Draft, b.Status())
		assert.Equal(t, 10, b.Total())
		assert.Equal(t, 0, b.Reserved())
		assert.Equal(t, 10, b.Available())
	})

	t.Run("should reject empty resource name", func(t *testing.T) {
		quantity := quantityOf(t, 10)

		_, err := batch.NewBatch(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", quantity,
		)
		require.ErrorIs(t, err, batch.ErrResourceNameIsRequired)
	})
}

func TestBatch_MarkReady(t *testing.T) {
	t.Run("should publish draft batch", func(t *testing.T) {
		b := newTestBatch(t, 10)

		require.NoError(t, b.MarkReady())
		assert.Equal(t, batch.Ready, b.Status())
	})

	t.Run("should reject double publish", func(t *testing.T) {
		b := newReadyBatch(t, 10)

		require.Error(t, b.MarkReady())
	})
}

func TestBatch_Reserve(t *testing.T) {
	t.Run("should reserve available quantity", func(t *testing.T) {
		b := newReadyBatch(t, 10)

		require.NoError(t, b.Reserve(quantityOf(t, 4)))
		assert.Equal(t, 4, b.Reserved())
		assert.Equal(t, 6, b.Available())
		assert.Equal(t, batch.Ready, b.Status())
	})

	t.Run("should exhaust when fully reserved", func(t *testing.T) {
		b := newReadyBatch(t, 10)

		require.NoError(t, b.Reserve(quantityOf(t, 10)))
		assert.Equal(t, 0, b.Available())
		assert.Equal(t, batch.Exhausted, b.Status())
	})

	t.Run("should reject over-reservation", func(t *testing.T) {
		b := newReadyBatch(t, 10)
		require.NoError(t, b.Reserve(quantityOf(t, 8)))

		err := b.Reserve(quantityOf(t, 3))
		require.ErrorIs(t, err, batch.ErrInsufficientQuantity)
		assert.Equal(t, 8, b.Reserved())
	})

	t.Run("should reject reservation on draft batch", func(t *testing.T) {
		b := newTestBatch(t, 10)

		err := b.Reserve(quantityOf(t, 1))
		require.ErrorIs(t, err, batch.ErrBatchNotReady)
	})
}

func TestBatch_Release(t *testing.T) {
	t.Run("should return quantity to the pool", func(t *testing.T) {
		b := newReadyBatch(t, 10)
		require.NoError(t, b.Reserve(quantityOf(t, 6)))

		require.NoError(t, b.Release(quantityOf(t, 2)))
		assert.Equal(t, 4, b.Reserved())
		assert.Equal(t, 6, b.Available())
	})

	t.Run("should un-exhaust on release", func(t *testing.T) {
		b := newReadyBatch(t, 10)
		require.NoError(t, b.Reserve(quantityOf(t, 10)))
		require.Equal(t, batch.Exhausted, b.Status())

		require.NoError(t, b.Release(quantityOf(t, 1)))
		assert.Equal(t, batch.Ready, b.Status())
	})

	t.Run("should reject releasing more than reserved", func(t *testing.T) {
		b := newReadyBatch(t, 10)
		require.NoError(t, b.Reserve(quantityOf(t, 2)))

		require.Error(t, b.Release(quantityOf(t, 3)))
		assert.Equal(t, 2, b.Reserved())
	})
}

func TestBatch_ConfirmDispatch(t *testing.T) {
	t.Run("should permanently remove dispatched quantity", func(t *testing.T) {
		b := newReadyBatch(t, 10)
		require.NoError(t, b.Reserve(quantityOf(t, 4)))

		require.NoError(t, b.ConfirmDispatch(quantityOf(t, 4)))
		assert.Equal(t, 6, b.Total())
		assert.Equal(t, 0, b.Reserved())
		assert.Equal(t, 6, b.Available())
	})

	t.Run("should reject dispatching unreserved quantity", func(t *testing.T) {
		b := newReadyBatch(t, 10)

		require.Error(t, b.ConfirmDispatch(quantityOf(t, 1)))
	})
}

func TestRestoreBatch(t *testing.T) {
	t.Run("should restore batch within invariant", func(t *testing.T) {
		b, err := batch.RestoreBatch(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blankets", 20, 5, batch.Ready, time.Now().UTC(),
		)
		require.NoError(t, err)
		assert.Equal(t, 15, b.Available())
	})

	t.Run("should reject reserved above total", func(t *testing.T) {
		_, err := batch.RestoreBatch(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blankets", 20, 21, batch.Ready, time.Now().UTC(),
		)
		require.Error(t, err)
	})

	t.Run("should reject negative reserved", func(t *testing.T) {
		_, err := batch.RestoreBatch(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blankets", 20, -1, batch.Ready, time.Now().UTC(),
		)
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var b batch.Batch

		require.Error(t, b.Validate())
	})
}
