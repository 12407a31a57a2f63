package delivery

import (
	"fmt"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so deliveries
// follow the correct handoff workflow.
//
// State transitions:
//
//	PendingConfirmation ──> Reserved ──> PickedUp ──> InTransit ──> Delivered
//	        │                  │
//	        └──────────────────┴──> Cancelled
//
// A delivery cannot be cancelled once the goods have physically left the
// provider (PickedUp and later).
//
// Status is a value object that validates state transitions and provides
// the snake_case wire representation used by the REST API and persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingConfirmation is the initial status when a delivery need is
	// registered. No volunteer is attached and no quantity is reserved yet.
	PendingConfirmation

	// Reserved indicates a volunteer committed to the delivery: quantity is
	// reserved on the source batch and confirmation codes are issued.
	Reserved

	// PickedUp indicates the provider confirmed the pickup code and the
	// goods left the provider's location.
	PickedUp

	// InTransit indicates the volunteer is en route to the destination.
	InTransit

	// Delivered indicates the shelter validated the delivery code.
	// This is a final state.
	Delivered

	// Cancelled indicates the delivery was abandoned before pickup.
	// This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		PendingConfirmation: "pending_confirmation",
		Reserved:            "reserved",
		PickedUp:            "picked_up",
		InTransit:           "in_transit",
		Delivered:           "delivered",
		Cancelled:           "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingConfirmation: "pending_confirmation",
		Reserved:            "reserved",
		PickedUp:            "picked_up",
		InTransit:           "in_transit",
		Delivered:           "delivered",
		Cancelled:           "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status counts as an in-progress operation.
// The active set matches what the operation state watcher considers "what
// the user is currently doing": pending_confirmation, reserved, picked_up
// and in_transit. Delivered and Cancelled are terminal.
func (s Status) IsActive() bool {
	switch s {
	case PendingConfirmation, Reserved, PickedUp, InTransit:
		return true
	default:
		return false
	}
}

// ActiveStatuses returns the set of in-progress statuses in workflow order.
func ActiveStatuses() []Status {
	return []Status{PendingConfirmation, Reserved, PickedUp, InTransit}
}

// Commit transitions the status to Reserved.
//
// Valid transitions:
//   - PendingConfirmation -> Reserved (volunteer commits)
//
// Any other source status is an error: a delivery can only be committed once.
func (s Status) Commit() (Status, error) {
	if s != PendingConfirmation {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to commit", s.String()),
		)
	}
	return Reserved, nil
}

// ConfirmPickup transitions the status to PickedUp.
//
// Valid transitions:
//   - Reserved -> PickedUp (provider confirmed the pickup code)
func (s Status) ConfirmPickup() (Status, error) {
	if s != Reserved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm pickup", s.String()),
		)
	}
	return PickedUp, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - PickedUp -> InTransit
func (s Status) StartTransit() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}
	return InTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (shelter validated the delivery code)
//
// Delivered is a final state with no further transitions.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - PendingConfirmation -> Cancelled
//   - Reserved -> Cancelled
//
// Once goods are picked up the delivery must run to completion.
func (s Status) Cancel() (Status, error) {
	if s != PendingConfirmation && s != Reserved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}

// ValidateCanHaveVolunteer validates the consistency between delivery status
// and volunteer assignment. PendingConfirmation deliveries must not carry a
// volunteer; every status from Reserved onward must (Cancelled may or may not,
// depending on when the cancellation happened).
func (s Status) ValidateCanHaveVolunteer(volunteer bool) error {
	if !volunteer && (s == Reserved || s == PickedUp || s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no volunteer", s.String()),
		)
	}

	if volunteer && s == PendingConfirmation {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a volunteer", s.String()),
		)
	}

	return nil
}
