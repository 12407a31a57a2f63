package kernel

import (
	"fmt"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

const (
	// QuantityMin is the smallest quantity a commitment or batch may carry.
	QuantityMin = 1
	// QuantityMax bounds a single quantity value. Batches larger than this
	// are split by providers before publication.
	QuantityMax = 10000
)

// ErrQuantityIsNotConstructed is returned when attempting to use an improperly
// initialized Quantity. Quantities must be created via NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity constructor")

// Quantity represents a positive amount of a donated resource: units of food,
// bottles of water, blankets. It is an immutable value object; the zero value
// is invalid and fails validation.
//
// Example:
//
//	q, err := kernel.NewQuantity(25)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(q.Value()) // 25
type Quantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity with the given value.
// The value must be within [QuantityMin..QuantityMax] inclusive.
// Returns a ValueIsOutOfRangeError otherwise.
func NewQuantity(value int) (Quantity, error) {
	if value < QuantityMin || value > QuantityMax {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value, QuantityMin, QuantityMax)
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the numeric amount.
func (q Quantity) Value() int {
	return q.value
}

// Add returns a new Quantity increased by other.
// Returns an error if the sum exceeds QuantityMax.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	return NewQuantity(q.value + other.value)
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// String returns the quantity formatted for logs and error messages.
func (q Quantity) String() string {
	return fmt.Sprintf("%d", q.value)
}

// Validate checks that the Quantity was created via NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
