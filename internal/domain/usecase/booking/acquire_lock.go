package booking

import (
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
)

// AcquireLock locks the seat for the user, or extends the user's
// existing lock. The whole check-then-mutate sequence runs under the
// engine mutex; at most one lock mutation happens per call and the seat
// store is never touched here.
func (s *Service) AcquireLock(seatID, userID string) (*usecase.AcquireResult, error) {
	if _, _, err := entity.ParseSeatID(seatID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seat, err := s.seats.Get(seatID)
	if err != nil {
		return nil, err
	}
	if seat.IsBooked() {
		return nil, errs.NewBookingConflictError(seatID, userID, seat.BookedBy())
	}

	now := s.timeProvider.Now()
	if s.locks.IsActive(seatID, now) {
		lock := s.locks.Peek(seatID)
		if lock.OwnedBy(userID) {
			// Re-acquisition by the owner is a renewal; the expiry
			// never moves backwards.
			expiresAt := lock.Extend(s.lockTTL, s.timeProvider)
			s.logger.Debug("Lock extended", map[string]any{
				"seat_id":    seatID,
				"user_id":    userID,
				"lock_id":    lock.ID,
				"expires_at": expiresAt,
			})
			return &usecase.AcquireResult{LockID: lock.ID, ExpiresAt: expiresAt}, nil
		}
		return nil, errs.NewLockConflictError(seatID, userID, lock.UserID, lock.ID)
	}

	lock := entity.NewLock(seatID, userID, s.lockTTL, s.timeProvider)
	s.locks.Put(lock)

	s.logger.Info("Lock acquired", map[string]any{
		"seat_id":    seatID,
		"user_id":    userID,
		"lock_id":    lock.ID,
		"expires_at": lock.ExpiresAt,
	})

	return &usecase.AcquireResult{LockID: lock.ID, ExpiresAt: lock.ExpiresAt}, nil
}
