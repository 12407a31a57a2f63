package batch

import (
	"fmt"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
)

// Status represents the publication state of a batch.
//
// State transitions:
//
//	Draft ──> Ready <──> Exhausted
//
// A Draft batch is being prepared by the provider and cannot take
// reservations. A Ready batch is visible to volunteers and shelters.
// Exhausted means every unit is reserved; releasing quantity moves the
// batch back to Ready.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status while the provider prepares the batch.
	Draft

	// Ready means the batch is published and can take reservations.
	Ready

	// Exhausted means all quantity is currently reserved.
	Exhausted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Ready:     "ready",
		Exhausted: "exhausted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Ready:     "ready",
		Exhausted: "exhausted",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns a validation error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid batch status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid batch status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
