package entity

import (
	"time"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
)

// Lock represents a temporary reservation claim on a single seat. It
// exists only between a successful acquisition and its confirmation,
// release or expiry.
type Lock struct {
	ID        string    // opaque token returned to the client for correlation
	SeatID    string    // seat being held
	UserID    string    // user who holds the seat
	CreatedAt time.Time // when the lock was first acquired
	ExpiresAt time.Time // when the lock becomes eligible for eviction
}

// NewLock creates a lock on the given seat for the given user, expiring
// ttl from now. The lock ID is a freshly generated UUID.
func NewLock(seatID, userID string, ttl time.Duration, timeProvider coreport.TimeProvider) *Lock {
	now := timeProvider.Now()
	return &Lock{
		ID:        uuid.NewString(),
		SeatID:    seatID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the lock's TTL elapsed at the given instant.
// A lock is still active at exactly its expiry timestamp.
func (l *Lock) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// OwnedBy reports whether the given user holds this lock
func (l *Lock) OwnedBy(userID string) bool {
	return l.UserID == userID
}

// Extend resets the expiry to ttl from now and returns the resulting
// expiry. The expiry is monotonic: it never moves backwards, so
// repeated renewals by the owner cannot shorten the hold.
func (l *Lock) Extend(ttl time.Duration, timeProvider coreport.TimeProvider) time.Time {
	candidate := timeProvider.Now().Add(ttl)
	if candidate.After(l.ExpiresAt) {
		l.ExpiresAt = candidate
	}
	return l.ExpiresAt
}
