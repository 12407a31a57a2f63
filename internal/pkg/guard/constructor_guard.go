// Package guard implements the constructor-guard pattern used by domain
// value objects, commands, and queries to detect zero-value instances that
// bypassed their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable: the guard holds an internal flag that
// is only set when the object is built via NewConstructorGuard, so any struct
// created by direct literal or zero value fails validation.
//
// Example usage:
//
//	var ErrCommitmentNotConstructed = errors.New("Commitment must be created via NewCommitment")
//
//	type Commitment struct {
//	    deliveryID kernel.UUID
//	    quantity   kernel.Quantity
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCommitment(id kernel.UUID, q kernel.Quantity) (Commitment, error) {
//	    // validate inputs...
//	    return Commitment{deliveryID: id, quantity: q, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Commitment) Validate() error {
//	    return c.guard.Validate(ErrCommitmentNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call this in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// designated constructor. Returns nil for properly constructed objects.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
