package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
)

// SeatState represents the lifecycle state of a seat
type SeatState string

const (
	// SeatAvailable means the seat can be locked by any user
	SeatAvailable SeatState = "AVAILABLE"
	// SeatLocked means an active lock reserves the seat for one user.
	// It is a derived state: the seat store never persists it, the
	// engine reports it while an unexpired lock exists for the seat.
	SeatLocked SeatState = "LOCKED"
	// SeatBooked means the seat is confirmed. Booked is terminal.
	SeatBooked SeatState = "BOOKED"
)

// Seat represents one bookable unit of the seating grid. The booking
// fields are private so that the only way to reach the Booked state is
// through Book, which enforces that Booked is terminal.
type Seat struct {
	ID       string // composite "row-column" identifier
	Row      int    // 1-based row index
	Column   int    // 1-based column index
	state    SeatState
	bookedBy string
	bookedAt *time.Time
}

// NewSeat creates an available seat for the given grid cell
func NewSeat(row, column int) *Seat {
	return &Seat{
		ID:     SeatID(row, column),
		Row:    row,
		Column: column,
		state:  SeatAvailable,
	}
}

// State returns the persisted state of the seat (Available or Booked)
func (s *Seat) State() SeatState {
	return s.state
}

// IsBooked reports whether the seat reached its terminal state
func (s *Seat) IsBooked() bool {
	return s.state == SeatBooked
}

// BookedBy returns the user who booked the seat, empty until Book succeeds
func (s *Seat) BookedBy() string {
	return s.bookedBy
}

// BookedAt returns the confirmation timestamp, nil until Book succeeds
func (s *Seat) BookedAt() *time.Time {
	return s.bookedAt
}

// Book transitions the seat to Booked for the given user. Booked is
// terminal, so booking an already booked seat fails and the original
// bookedBy/bookedAt are left untouched.
func (s *Seat) Book(userID string, timeProvider coreport.TimeProvider) error {
	if s.state == SeatBooked {
		return errs.NewBookingConflictError(s.ID, userID, s.bookedBy)
	}

	now := timeProvider.Now()
	s.state = SeatBooked
	s.bookedBy = userID
	s.bookedAt = &now
	return nil
}

// SeatID renders the composite identifier for a grid cell
func SeatID(row, column int) string {
	return fmt.Sprintf("%d-%d", row, column)
}

// ParseSeatID splits a composite "row-column" identifier into its grid
// coordinates. Both parts must be positive integers.
func ParseSeatID(id string) (row int, column int, err error) {
	parts := strings.Split(id, "-")
	if len(parts) != 2 {
		return 0, 0, errs.ErrInvalidSeatID
	}

	row, err = strconv.Atoi(parts[0])
	if err != nil || row <= 0 {
		return 0, 0, errs.ErrInvalidSeatID
	}

	column, err = strconv.Atoi(parts[1])
	if err != nil || column <= 0 {
		return 0, 0, errs.ErrInvalidSeatID
	}

	return row, column, nil
}
