package kernel_test

import (
	"fmt"
	"testing"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("should create valid quantities", func(t *testing.T) {
		validValues := []int{kernel.QuantityMin, 2, 100, kernel.QuantityMax}

		for _, value := range validValues {
			t.Run(fmt.Sprintf("value %d", value), func(t *testing.T) {
				q, err := kernel.NewQuantity(value)

				require.NoError(t, err)
				require.NoError(t, q.Validate())
				assert.Equal(t, value, q.Value())
			})
		}
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		invalidValues := []int{0, -1, -100, kernel.QuantityMax + 1}

		for _, value := range invalidValues {
			t.Run(fmt.Sprintf("value %d", value), func(t *testing.T) {
				_, err := kernel.NewQuantity(value)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestQuantity_Add(t *testing.T) {
	t.Run("should add quantities", func(t *testing.T) {
		a, _ := kernel.NewQuantity(3)
		b, _ := kernel.NewQuantity(4)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, 7, sum.Value())
	})

	t.Run("should reject sums above the maximum", func(t *testing.T) {
		a, _ := kernel.NewQuantity(kernel.QuantityMax)
		b, _ := kernel.NewQuantity(1)

		_, err := a.Add(b)
		require.Error(t, err)
	})
}

func TestQuantity_IsEqual(t *testing.T) {
	a, _ := kernel.NewQuantity(5)
	b, _ := kernel.NewQuantity(5)
	c, _ := kernel.NewQuantity(6)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestQuantity_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var q kernel.Quantity

		err := q.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrQuantityIsNotConstructed, err)
	})
}
