package memory

import (
	"time"

	"github.com/amirhossein-jamali/seat-reservation/internal/domain/entity"
)

// LockTable keeps at most one lock per seat ID in a plain map. Expired
// entries are removed two ways: lazily when IsActive observes them, and
// eagerly by the periodic sweep via ExpiredSeatIDs. Lazy eviction keeps
// reads correct between sweeps; the sweep bounds memory for locks that
// are never read again.
type LockTable struct {
	locks map[string]*entity.Lock
}

// NewLockTable creates an empty lock table
func NewLockTable() *LockTable {
	return &LockTable{
		locks: make(map[string]*entity.Lock),
	}
}

// Peek returns the lock for the seat without any expiry check
func (t *LockTable) Peek(seatID string) *entity.Lock {
	return t.locks[seatID]
}

// IsActive reports whether an unexpired lock exists for the seat. An
// expired lock found here is evicted before returning false.
func (t *LockTable) IsActive(seatID string, now time.Time) bool {
	lock, ok := t.locks[seatID]
	if !ok {
		return false
	}
	if lock.IsExpired(now) {
		delete(t.locks, seatID)
		return false
	}
	return true
}

// Put stores the lock under its seat ID, replacing any previous entry
func (t *LockTable) Put(lock *entity.Lock) {
	t.locks[lock.SeatID] = lock
}

// Delete removes the lock for the seat, if any
func (t *LockTable) Delete(seatID string) {
	delete(t.locks, seatID)
}

// ExpiredSeatIDs returns the seat IDs of every expired lock
func (t *LockTable) ExpiredSeatIDs(now time.Time) []string {
	var expired []string
	for seatID, lock := range t.locks {
		if lock.IsExpired(now) {
			expired = append(expired, seatID)
		}
	}
	return expired
}

// Len returns the number of locks currently held, expired or not
func (t *LockTable) Len() int {
	return len(t.locks)
}
