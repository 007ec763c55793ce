package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
)

func TestService_ReleaseLock(t *testing.T) {
	t.Run("owner releases the lock", func(t *testing.T) {
		// Arrange
		svc, _, logger := newTestService(t, 3, 3, time.Minute)
		_, err := svc.AcquireLock("2-2", "u1")
		require.NoError(t, err)

		// Act
		err = svc.ReleaseLock("2-2", "u1")

		// Assert: seat is back to Available with no lock
		require.NoError(t, err)
		assert.True(t, logger.HasMessage("Lock released"))

		view, err := svc.GetSeat("2-2")
		require.NoError(t, err)
		assert.Equal(t, "AVAILABLE", view.State)
		assert.False(t, view.IsLocked)
		assert.Equal(t, 0, svc.Stats().ActiveLocks)
	})

	t.Run("should reject malformed seat IDs", func(t *testing.T) {
		svc, _, _ := newTestService(t, 3, 3, time.Minute)

		err := svc.ReleaseLock("balcony", "u1")
		assert.ErrorIs(t, err, errs.ErrInvalidSeatID)
	})

	t.Run("releasing without a lock is not found", func(t *testing.T) {
		svc, _, _ := newTestService(t, 3, 3, time.Minute)

		err := svc.ReleaseLock("2-2", "u1")
		assert.ErrorIs(t, err, errs.ErrLockNotFound)
	})

	t.Run("only the owner may release", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestService(t, 3, 3, time.Minute)
		_, err := svc.AcquireLock("2-2", "u1")
		require.NoError(t, err)

		// Act
		err = svc.ReleaseLock("2-2", "u2")

		// Assert: unauthorized, and the original lock survives
		assert.ErrorIs(t, err, errs.ErrNotLockOwner)
		view, getErr := svc.GetSeat("2-2")
		require.NoError(t, getErr)
		assert.Equal(t, "u1", view.LockedBy)
	})

	t.Run("release never touches a booked seat", func(t *testing.T) {
		// A released seat id with a booked seat has no lock, so the
		// caller simply gets not found; the booking is untouched.
		svc, _, _ := newTestService(t, 3, 3, time.Minute)
		_, err := svc.AcquireLock("1-1", "u1")
		require.NoError(t, err)
		_, err = svc.ConfirmBooking("1-1", "u1")
		require.NoError(t, err)

		err = svc.ReleaseLock("1-1", "u1")

		assert.ErrorIs(t, err, errs.ErrLockNotFound)
		assert.Equal(t, 1, svc.Stats().BookedSeats)
	})
}
