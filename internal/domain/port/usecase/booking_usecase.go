package usecase

import (
	"time"
)

// SeatView is the external projection of a seat: its persisted
// attributes plus the lock information derived from the lock table at
// read time.
type SeatView struct {
	SeatID        string     `json:"seatId"`
	Row           int        `json:"row"`
	Column        int        `json:"column"`
	State         string     `json:"state"` // AVAILABLE, LOCKED or BOOKED
	BookedBy      string     `json:"bookedBy,omitempty"`
	BookedAt      *time.Time `json:"bookedAt,omitempty"`
	IsLocked      bool       `json:"isLocked"`
	LockedBy      string     `json:"lockedBy,omitempty"`
	LockExpiresAt *time.Time `json:"lockExpiresAt,omitempty"`
}

// AcquireResult reports a successful lock acquisition or extension
type AcquireResult struct {
	LockID    string    `json:"lockId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ConfirmResult reports a successful booking confirmation. The booking
// ID is a write-once receipt: it is never retrievable again.
type ConfirmResult struct {
	BookingID string   `json:"bookingId"`
	Seat      SeatView `json:"seat"`
}

// Stats summarizes the seating grid and lock table at a point in time
type Stats struct {
	TotalSeats     int `json:"totalSeats"`
	AvailableSeats int `json:"availableSeats"`
	BookedSeats    int `json:"bookedSeats"`
	LockedSeats    int `json:"lockedSeats"`
	ActiveLocks    int `json:"activeLocks"`
}

// BookingUseCase defines the seat locking and booking operations exposed
// to the boundary layer. Every method is safe for concurrent use; each
// call executes as a single critical section over the seat store and
// lock table.
type BookingUseCase interface {
	// ListSeats returns every seat in row-major order
	ListSeats() []SeatView

	// GetSeat returns a single seat
	//
	// Possible errors:
	// - ErrInvalidSeatID: if the ID is not "row-column"
	// - ErrSeatNotFound: if the seat is outside the grid
	GetSeat(seatID string) (SeatView, error)

	// ListAvailable returns seats that are Available and not actively locked
	ListAvailable() []SeatView

	// AcquireLock locks the seat for the user, or extends the user's
	// existing lock. Extension never decreases the expiry.
	//
	// Possible errors:
	// - ErrInvalidSeatID, ErrSeatNotFound
	// - ErrSeatAlreadyBooked: seat reached its terminal state
	// - ErrSeatLocked: another user holds an active lock
	AcquireLock(seatID, userID string) (*AcquireResult, error)

	// ConfirmBooking books the seat for the lock owner and deletes the
	// lock, as one indivisible transition.
	//
	// Possible errors:
	// - ErrInvalidSeatID, ErrSeatNotFound
	// - ErrSeatAlreadyBooked: seat reached its terminal state
	// - ErrNotLockOwner: no lock for this seat is held by the user
	// - ErrLockExpired: the lock's TTL elapsed; the lock is evicted
	ConfirmBooking(seatID, userID string) (*ConfirmResult, error)

	// ReleaseLock removes the user's lock without touching seat state
	//
	// Possible errors:
	// - ErrInvalidSeatID
	// - ErrLockNotFound: no lock exists for the seat
	// - ErrNotLockOwner: the lock belongs to another user
	ReleaseLock(seatID, userID string) error

	// Stats derives current counts from the seat store and lock table
	Stats() Stats
}
