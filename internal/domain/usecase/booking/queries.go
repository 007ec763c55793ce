package booking

import (
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
)

// ListSeats returns every seat in row-major order with derived lock
// information. Reads take the full engine mutex because projecting a
// view may lazily evict an expired lock.
func (s *Service) ListSeats() []usecase.SeatView {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	seats := s.seats.List()
	views := make([]usecase.SeatView, 0, len(seats))
	for _, seat := range seats {
		views = append(views, s.viewOf(seat, now))
	}
	return views
}

// GetSeat returns a single seat view
func (s *Service) GetSeat(seatID string) (usecase.SeatView, error) {
	if _, _, err := entity.ParseSeatID(seatID); err != nil {
		return usecase.SeatView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seat, err := s.seats.Get(seatID)
	if err != nil {
		return usecase.SeatView{}, err
	}
	return s.viewOf(seat, s.timeProvider.Now()), nil
}

// ListAvailable returns seats that are Available and not actively locked
func (s *Service) ListAvailable() []usecase.SeatView {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	var views []usecase.SeatView
	for _, seat := range s.seats.List() {
		if seat.IsBooked() {
			continue
		}
		view := s.viewOf(seat, now)
		if view.IsLocked {
			continue
		}
		views = append(views, view)
	}
	return views
}

// Stats derives current counts from the two stores. Nothing is cached;
// consulting lock activity evicts any stale entries it passes over, so
// activeLocks equals the surviving lock table size.
func (s *Service) Stats() usecase.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	stats := usecase.Stats{TotalSeats: s.seats.Count()}

	for _, seat := range s.seats.List() {
		switch {
		case seat.IsBooked():
			stats.BookedSeats++
		case s.locks.IsActive(seat.ID, now):
			stats.LockedSeats++
		default:
			stats.AvailableSeats++
		}
	}

	stats.ActiveLocks = s.locks.Len()
	return stats
}
