package booking

import (
	"sync"
	"time"

	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/seating"
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
)

// Service implements the booking engine. A single mutex guards the seat
// store and lock table together: every operation, including the expiry
// sweep, runs as one critical section, so two racing confirmations for
// the same seat can never both observe a valid lock.
type Service struct {
	mu           sync.Mutex
	seats        seating.SeatStore
	locks        seating.LockTable
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTTL      time.Duration
}

// Compile-time check that Service satisfies the boundary contract
var _ usecase.BookingUseCase = (*Service)(nil)

// NewService creates the booking engine over the given stores. lockTTL
// is the lifetime granted to new and renewed locks.
func NewService(
	seats seating.SeatStore,
	locks seating.LockTable,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTTL time.Duration,
) *Service {
	return &Service{
		seats:        seats,
		locks:        locks,
		timeProvider: timeProvider,
		logger:       logger,
		lockTTL:      lockTTL,
	}
}

// viewOf projects a seat into its external view, deriving the lock
// fields from the lock table. Callers must hold s.mu: the IsActive
// check may lazily evict an expired lock.
func (s *Service) viewOf(seat *entity.Seat, now time.Time) usecase.SeatView {
	view := usecase.SeatView{
		SeatID:   seat.ID,
		Row:      seat.Row,
		Column:   seat.Column,
		State:    string(seat.State()),
		BookedBy: seat.BookedBy(),
		BookedAt: seat.BookedAt(),
	}

	if s.locks.IsActive(seat.ID, now) {
		lock := s.locks.Peek(seat.ID)
		expiresAt := lock.ExpiresAt
		view.State = string(entity.SeatLocked)
		view.IsLocked = true
		view.LockedBy = lock.UserID
		view.LockExpiresAt = &expiresAt
	}

	return view
}

// evictExpiredLocks removes every expired lock under the engine mutex
// and returns the eviction count. It backs the periodic sweep.
func (s *Service) evictExpiredLocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	expired := s.locks.ExpiredSeatIDs(now)
	for _, seatID := range expired {
		s.locks.Delete(seatID)
	}
	return len(expired)
}
