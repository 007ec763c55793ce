package booking

import (
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
)

// ConfirmBooking books the seat for the lock owner. Checking the lock
// and mutating the seat happen inside one critical section: this is the
// only transition that removes a lock while setting a seat to Booked,
// and it is indivisible.
func (s *Service) ConfirmBooking(seatID, userID string) (*usecase.ConfirmResult, error) {
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

	// Ownership is checked before expiry: a foreign lock is always an
	// authorization failure, expired or not.
	lock := s.locks.Peek(seatID)
	if lock == nil || !lock.OwnedBy(userID) {
		return nil, errs.ErrNotLockOwner
	}

	now := s.timeProvider.Now()
	if lock.IsExpired(now) {
		s.locks.Delete(seatID)
		s.logger.Info("Lock expired at confirmation", map[string]any{
			"seat_id": seatID,
			"user_id": userID,
			"lock_id": lock.ID,
		})
		return nil, errs.ErrLockExpired
	}

	if err := seat.Book(userID, s.timeProvider); err != nil {
		return nil, err
	}
	s.locks.Delete(seatID)

	bookingID := uuid.NewString()
	s.logger.Info("Booking confirmed", map[string]any{
		"seat_id":    seatID,
		"user_id":    userID,
		"booking_id": bookingID,
	})

	return &usecase.ConfirmResult{
		BookingID: bookingID,
		Seat:      s.viewOf(seat, now),
	}, nil
}
