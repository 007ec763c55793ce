package seating

import (
	"time"

	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
)

// LockTable holds at most one lock per seat ID. Like SeatStore it relies
// on the booking engine's mutex for exclusion rather than locking
// internally.
type LockTable interface {
	// Peek returns the lock for the seat without any expiry check,
	// or nil when no lock exists
	Peek(seatID string) *entity.Lock

	// IsActive reports whether an unexpired lock exists for the seat.
	// A lock that is present but expired is lazily evicted before
	// false is returned, so reads never observe a stale lock.
	IsActive(seatID string, now time.Time) bool

	// Put stores the lock under its seat ID, replacing any previous entry
	Put(lock *entity.Lock)

	// Delete removes the lock for the seat, if any
	Delete(seatID string)

	// ExpiredSeatIDs returns the seat IDs of every lock whose expiry
	// passed, for the eager sweep
	ExpiredSeatIDs(now time.Time) []string

	// Len returns the number of locks currently held, expired or not
	Len() int
}
