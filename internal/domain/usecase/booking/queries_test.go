package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
)

func TestService_ListSeats(t *testing.T) {
	svc, _, _ := newTestService(t, 2, 3, time.Minute)

	views := svc.ListSeats()

	require.Len(t, views, 6)
	// Row-major order, regardless of map iteration
	wantIDs := []string{"1-1", "1-2", "1-3", "2-1", "2-2", "2-3"}
	for i, view := range views {
		assert.Equal(t, wantIDs[i], view.SeatID)
		assert.Equal(t, "AVAILABLE", view.State)
	}
}

func TestService_GetSeat(t *testing.T) {
	t.Run("available seat", func(t *testing.T) {
		svc, _, _ := newTestService(t, 2, 2, time.Minute)

		view, err := svc.GetSeat("1-2")

		require.NoError(t, err)
		assert.Equal(t, "1-2", view.SeatID)
		assert.Equal(t, 1, view.Row)
		assert.Equal(t, 2, view.Column)
		assert.Equal(t, "AVAILABLE", view.State)
		assert.False(t, view.IsLocked)
		assert.Nil(t, view.LockExpiresAt)
	})

	t.Run("locked seat exposes lock details", func(t *testing.T) {
		svc, _, _ := newTestService(t, 2, 2, time.Minute)
		result, err := svc.AcquireLock("1-2", "u1")
		require.NoError(t, err)

		view, err := svc.GetSeat("1-2")

		require.NoError(t, err)
		assert.Equal(t, "LOCKED", view.State)
		assert.True(t, view.IsLocked)
		assert.Equal(t, "u1", view.LockedBy)
		require.NotNil(t, view.LockExpiresAt)
		assert.Equal(t, result.ExpiresAt, *view.LockExpiresAt)
	})

	t.Run("a read after expiry shows the seat available again", func(t *testing.T) {
		svc, tp, _ := newTestService(t, 2, 2, time.Minute)
		_, err := svc.AcquireLock("1-2", "u1")
		require.NoError(t, err)

		tp.Advance(time.Hour)
		view, err := svc.GetSeat("1-2")

		require.NoError(t, err)
		assert.Equal(t, "AVAILABLE", view.State)
		assert.False(t, view.IsLocked)
	})

	t.Run("errors", func(t *testing.T) {
		svc, _, _ := newTestService(t, 2, 2, time.Minute)

		_, err := svc.GetSeat("aisle")
		assert.ErrorIs(t, err, errs.ErrInvalidSeatID)

		_, err = svc.GetSeat("3-3")
		assert.ErrorIs(t, err, errs.ErrSeatNotFound)
	})
}

func TestService_ListAvailable(t *testing.T) {
	svc, tp, _ := newTestService(t, 2, 2, time.Minute)

	// 1-1 booked, 1-2 locked, the other two free
	_, err := svc.AcquireLock("1-1", "u1")
	require.NoError(t, err)
	_, err = svc.ConfirmBooking("1-1", "u1")
	require.NoError(t, err)
	_, err = svc.AcquireLock("1-2", "u2")
	require.NoError(t, err)

	views := svc.ListAvailable()

	require.Len(t, views, 2)
	assert.Equal(t, "2-1", views[0].SeatID)
	assert.Equal(t, "2-2", views[1].SeatID)

	// Once the lock on 1-2 expires it is listed again
	tp.Advance(2 * time.Minute)
	views = svc.ListAvailable()
	require.Len(t, views, 3)
	assert.Equal(t, "1-2", views[0].SeatID)
}

func TestService_Stats(t *testing.T) {
	svc, tp, _ := newTestService(t, 3, 3, time.Minute)

	_, err := svc.AcquireLock("1-1", "u1")
	require.NoError(t, err)
	_, err = svc.ConfirmBooking("1-1", "u1")
	require.NoError(t, err)
	_, err = svc.AcquireLock("2-2", "u2")
	require.NoError(t, err)
	_, err = svc.AcquireLock("3-3", "u3")
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 9, stats.TotalSeats)
	assert.Equal(t, 6, stats.AvailableSeats)
	assert.Equal(t, 1, stats.BookedSeats)
	assert.Equal(t, 2, stats.LockedSeats)
	assert.Equal(t, 2, stats.ActiveLocks)

	// Expired locks stop counting and are purged by the read itself
	tp.Advance(time.Hour)
	stats = svc.Stats()
	assert.Equal(t, 8, stats.AvailableSeats)
	assert.Equal(t, 1, stats.BookedSeats)
	assert.Equal(t, 0, stats.LockedSeats)
	assert.Equal(t, 0, stats.ActiveLocks)
}
