package booking

import (
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
)

// ReleaseLock removes the user's lock on the seat. Seat state is never
// touched: releasing only returns a Locked seat to Available by making
// the lock disappear.
func (s *Service) ReleaseLock(seatID, userID string) error {
	if _, _, err := entity.ParseSeatID(seatID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lock := s.locks.Peek(seatID)
	if lock == nil {
		return errs.ErrLockNotFound
	}
	if !lock.OwnedBy(userID) {
		return errs.ErrNotLockOwner
	}

	s.locks.Delete(seatID)

	s.logger.Info("Lock released", map[string]any{
		"seat_id": seatID,
		"user_id": userID,
		"lock_id": lock.ID,
	})

	return nil
}
