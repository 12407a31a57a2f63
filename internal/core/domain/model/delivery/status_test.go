package delivery_test

import (
	"fmt"
	"testing"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(delivery.Unknown))
		assert.Equal(t, 1, int(delivery.PendingConfirmation))
		assert.Equal(t, 2, int(delivery.Reserved))
		assert.Equal(t, 3, int(delivery.PickedUp))
		assert.Equal(t, 4, int(delivery.InTransit))
		assert.Equal(t, 5, int(delivery.Delivered))
		assert.Equal(t, 6, int(delivery.Cancelled))
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[delivery.Status]string{
		delivery.Unknown:             "unknown",
		delivery.PendingConfirmation: "pending_confirmation",
		delivery.Reserved:            "reserved",
		delivery.PickedUp:            "picked_up",
		delivery.InTransit:           "in_transit",
		delivery.Delivered:           "delivered",
		delivery.Cancelled:           "cancelled",
	}

	for status, expected := range cases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		valid := []delivery.Status{
			delivery.PendingConfirmation,
			delivery.Reserved,
			delivery.PickedUp,
			delivery.InTransit,
			delivery.Delivered,
			delivery.Cancelled,
		}

		for _, status := range valid {
			parsed, err := delivery.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "Reserved", "done"} {
			_, err := delivery.StatusFromString(s)
			require.Error(t, err, "string %q should be rejected", s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []delivery.Status{
			delivery.PendingConfirmation,
			delivery.Reserved,
			delivery.PickedUp,
			delivery.InTransit,
			delivery.Delivered,
			delivery.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		invalidStatuses := []delivery.Status{
			delivery.Unknown,
			delivery.Status(-1),
			delivery.Status(99),
		}

		for _, status := range invalidStatuses {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_IsActive(t *testing.T) {
	active := []delivery.Status{
		delivery.PendingConfirmation,
		delivery.Reserved,
		delivery.PickedUp,
		delivery.InTransit,
	}
	inactive := []delivery.Status{
		delivery.Unknown,
		delivery.Delivered,
		delivery.Cancelled,
	}

	for _, status := range active {
		assert.True(t, status.IsActive(), "%s should be active", status)
	}
	for _, status := range inactive {
		assert.False(t, status.IsActive(), "%s should not be active", status)
	}
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("commit only from pending_confirmation", func(t *testing.T) {
		next, err := delivery.PendingConfirmation.Commit()
		require.NoError(t, err)
		assert.Equal(t, delivery.Reserved, next)

		for _, status := range []delivery.Status{
			delivery.Reserved, delivery.PickedUp, delivery.InTransit,
			delivery.Delivered, delivery.Cancelled, delivery.Unknown,
		} {
			_, err := status.Commit()
			require.Error(t, err, "commit from %s should fail", status)
		}
	})

	t.Run("confirm pickup only from reserved", func(t *testing.T) {
		next, err := delivery.Reserved.ConfirmPickup()
		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, next)

		for _, status := range []delivery.Status{
			delivery.PendingConfirmation, delivery.PickedUp, delivery.InTransit,
			delivery.Delivered, delivery.Cancelled,
		} {
			_, err := status.ConfirmPickup()
			require.Error(t, err, "confirm pickup from %s should fail", status)
		}
	})

	t.Run("start transit only from picked_up", func(t *testing.T) {
		next, err := delivery.PickedUp.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, next)

		for _, status := range []delivery.Status{
			delivery.PendingConfirmation, delivery.Reserved, delivery.InTransit,
			delivery.Delivered, delivery.Cancelled,
		} {
			_, err := status.StartTransit()
			require.Error(t, err, "start transit from %s should fail", status)
		}
	})

	t.Run("complete only from in_transit", func(t *testing.T) {
		next, err := delivery.InTransit.Complete()
		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, next)

		for _, status := range []delivery.Status{
			delivery.PendingConfirmation, delivery.Reserved, delivery.PickedUp,
			delivery.Delivered, delivery.Cancelled,
		} {
			_, err := status.Complete()
			require.Error(t, err, "complete from %s should fail", status)
		}
	})

	t.Run("cancel only before pickup", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.PendingConfirmation, delivery.Reserved} {
			next, err := status.Cancel()
			require.NoError(t, err)
			assert.Equal(t, delivery.Cancelled, next)
		}

		for _, status := range []delivery.Status{
			delivery.PickedUp, delivery.InTransit, delivery.Delivered, delivery.Cancelled,
		} {
			_, err := status.Cancel()
			require.Error(t, err, "cancel from %s should fail", status)
		}
	})
}

func TestStatus_ValidateCanHaveVolunteer(t *testing.T) {
	t.Run("pending_confirmation must have no volunteer", func(t *testing.T) {
		require.NoError(t, delivery.PendingConfirmation.ValidateCanHaveVolunteer(false))
		require.Error(t, delivery.PendingConfirmation.ValidateCanHaveVolunteer(true))
	})

	t.Run("committed statuses require a volunteer", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.Reserved, delivery.PickedUp, delivery.InTransit, delivery.Delivered,
		} {
			require.NoError(t, status.ValidateCanHaveVolunteer(true), "%s with volunteer", status)
			require.Error(t, status.ValidateCanHaveVolunteer(false), "%s without volunteer", status)
		}
	})
}
