package reservation

import (
	"fmt"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
)

// Status represents the lifecycle state of a resource reservation.
//
// State transitions:
//
//	Reserved ──> Acquired ──> Completed
//	    │            │
//	    ├────────────┴──> Cancelled
//	    └──> Expired
//
// Expiry only applies to reservations that were never acquired.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Reserved is the initial status: quantity is held on the batch but the
	// goods have not been collected.
	Reserved

	// Acquired means the reserving party collected the goods and is
	// handling the distribution themselves.
	Acquired

	// Completed means the distribution finished. Final state.
	Completed

	// Cancelled means the reservation was abandoned. Final state.
	Cancelled

	// Expired means the hold lapsed before the goods were collected.
	// Final state.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Reserved:  "reserved",
		Acquired:  "acquired",
		Completed: "completed",
		Cancelled: "cancelled",
		Expired:   "expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Reserved:  "reserved",
		Acquired:  "acquired",
		Completed: "completed",
		Cancelled: "cancelled",
		Expired:   "expired",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid reservation status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
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

// IsActive reports whether the status counts as an in-progress operation
// from the operation state watcher's perspective.
func (s Status) IsActive() bool {
	return s == Reserved || s == Acquired
}
