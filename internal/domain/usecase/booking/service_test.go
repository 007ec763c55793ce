package booking

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/memory"
	mockcore "github.com/amirhossein-jamali/seat-reservation/mocks/port/core"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestService wires the engine over real in-memory stores and a
// controllable clock
func newTestService(t *testing.T, rows, columns int, ttl time.Duration) (*Service, *mockcore.MockTimeProvider, *mockcore.MockLogger) {
	t.Helper()
	tp := mockcore.NewMockTimeProvider(testStart)
	logger := mockcore.NewMockLogger()
	svc := NewService(memory.NewSeatStore(rows, columns), memory.NewLockTable(), tp, logger, ttl)
	return svc, tp, logger
}

func TestService_InitializationInvariant(t *testing.T) {
	// Scenario A: a fresh 10x10 grid is fully available
	svc, _, _ := newTestService(t, 10, 10, time.Minute)

	stats := svc.Stats()

	assert.Equal(t, 100, stats.TotalSeats)
	assert.Equal(t, 100, stats.AvailableSeats)
	assert.Equal(t, 0, stats.BookedSeats)
	assert.Equal(t, 0, stats.LockedSeats)
	assert.Equal(t, 0, stats.ActiveLocks)
}

func TestService_LockThenConfirmScenario(t *testing.T) {
	// Scenario B: u1 locks 1-1, u2 is rejected everywhere, u1 confirms
	svc, _, _ := newTestService(t, 10, 10, time.Minute)

	acquired, err := svc.AcquireLock("1-1", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, acquired.LockID)

	_, err = svc.AcquireLock("1-1", "u2")
	assert.ErrorIs(t, err, errs.ErrSeatLocked)

	_, err = svc.ConfirmBooking("1-1", "u2")
	assert.ErrorIs(t, err, errs.ErrNotLockOwner)

	confirmed, err := svc.ConfirmBooking("1-1", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, confirmed.BookingID)
	assert.Equal(t, "BOOKED", confirmed.Seat.State)

	view, err := svc.GetSeat("1-1")
	require.NoError(t, err)
	assert.Equal(t, "BOOKED", view.State)
	assert.Equal(t, 1, svc.Stats().BookedSeats)
}

func TestService_ReleaseScenario(t *testing.T) {
	// Scenario C: only the owner can release, then the seat is free again
	svc, _, _ := newTestService(t, 10, 10, time.Minute)

	_, err := svc.AcquireLock("2-2", "u1")
	require.NoError(t, err)

	err = svc.ReleaseLock("2-2", "u2")
	assert.ErrorIs(t, err, errs.ErrNotLockOwner)

	err = svc.ReleaseLock("2-2", "u1")
	require.NoError(t, err)

	_, err = svc.AcquireLock("2-2", "u2")
	assert.NoError(t, err)
}

func TestService_ConcurrentAcquireMutualExclusion(t *testing.T) {
	// Many users race for the same unlocked seat; exactly one wins and
	// every loser observes a conflict
	svc, _, _ := newTestService(t, 5, 5, time.Minute)

	const contenders = 50
	var wg sync.WaitGroup
	results := make([]error, contenders)

	wg.Add(contenders)
	for i := 0; i < contenders; i++ {
		go func(idx int) {
			defer wg.Done()
			_, err := svc.AcquireLock("3-3", fmt.Sprintf("user-%d", idx))
			results[idx] = err
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, errs.ErrSeatLocked)
		}
	}
	assert.Equal(t, 1, winners)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.LockedSeats)
	assert.Equal(t, 1, stats.ActiveLocks)
}

func TestService_ConcurrentConfirmSingleWinner(t *testing.T) {
	// The owner fires racing confirmations; the seat is booked once and
	// every other attempt sees the terminal state
	svc, _, _ := newTestService(t, 5, 5, time.Minute)

	_, err := svc.AcquireLock("2-4", "u1")
	require.NoError(t, err)

	const attempts = 20
	var wg sync.WaitGroup
	results := make([]error, attempts)

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(idx int) {
			defer wg.Done()
			_, err := svc.ConfirmBooking("2-4", "u1")
			results[idx] = err
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, errs.ErrSeatAlreadyBooked)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, svc.Stats().BookedSeats)
}
