package memory

import (
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
)

// SeatStore keeps the full seating grid in process memory. The grid is
// populated once at construction; seats are never added or removed
// afterwards. The store performs no locking of its own, the booking
// engine's mutex is the single exclusion domain.
type SeatStore struct {
	rows    int
	columns int
	seats   map[string]*entity.Seat
}

// NewSeatStore creates a store with one Available seat per cell of the
// rows × columns grid
func NewSeatStore(rows, columns int) *SeatStore {
	seats := make(map[string]*entity.Seat, rows*columns)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= columns; c++ {
			seat := entity.NewSeat(r, c)
			seats[seat.ID] = seat
		}
	}

	return &SeatStore{
		rows:    rows,
		columns: columns,
		seats:   seats,
	}
}

// Get returns the seat with the given composite ID
func (s *SeatStore) Get(seatID string) (*entity.Seat, error) {
	seat, ok := s.seats[seatID]
	if !ok {
		return nil, errs.ErrSeatNotFound
	}
	return seat, nil
}

// List returns every seat in row-major order. The order is generated
// from the grid dimensions rather than map iteration, which Go
// deliberately randomizes.
func (s *SeatStore) List() []*entity.Seat {
	out := make([]*entity.Seat, 0, s.rows*s.columns)
	for r := 1; r <= s.rows; r++ {
		for c := 1; c <= s.columns; c++ {
			out = append(out, s.seats[entity.SeatID(r, c)])
		}
	}
	return out
}

// Count returns the total number of seats in the grid
func (s *SeatStore) Count() int {
	return s.rows * s.columns
}
