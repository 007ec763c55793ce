package seating

import (
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
)

// SeatStore holds the fixed seating grid and each seat's persisted state.
// Seats are created once when the store is constructed and never
// destroyed; only the booking engine mutates them afterwards.
//
// Implementations are not required to be safe for concurrent use: the
// booking engine serializes every access behind its own mutex.
type SeatStore interface {
	// Get returns the seat with the given composite ID
	//
	// Possible errors:
	// - ErrSeatNotFound: if no seat exists at that grid cell
	Get(seatID string) (*entity.Seat, error)

	// List returns every seat in row-major order. The order is derived
	// from the grid definition, never from map iteration order.
	List() []*entity.Seat

	// Count returns the total number of seats in the grid
	Count() int
}
