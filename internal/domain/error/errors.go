package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidSeatID     = 4001
	CodeInvalidUserID     = 4002
	CodeSeatAlreadyBooked = 4090
	CodeSeatLocked        = 4091
	CodeNotLockOwner      = 4030
	CodeLockExpired       = 4100
	CodeSeatNotFound      = 4040
	CodeLockNotFound      = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidSeatID is returned when a seat ID does not match the "row-column" format
	ErrInvalidSeatID = errors.New("invalid seat ID format")

	// ErrInvalidUserID is returned when the user ID is missing or blank
	ErrInvalidUserID = errors.New("user ID is required")

	// ErrSeatNotFound is returned when the requested seat doesn't exist in the grid
	ErrSeatNotFound = errors.New("seat not found")

	// ErrLockNotFound is returned when no lock exists for the requested seat
	ErrLockNotFound = errors.New("no lock exists for this seat")

	// ErrSeatAlreadyBooked is returned when the seat has already been booked
	ErrSeatAlreadyBooked = errors.New("seat is already booked")

	// ErrSeatLocked is returned when the seat is actively locked by another user
	ErrSeatLocked = errors.New("seat is locked by another user")

	// ErrNotLockOwner is returned when the caller does not own the lock on the seat
	ErrNotLockOwner = errors.New("no valid lock held by this user")

	// ErrLockExpired is returned when the caller's lock elapsed before confirmation
	ErrLockExpired = errors.New("lock has expired")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSeatID):
		return CodeInvalidSeatID
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrSeatNotFound):
		return CodeSeatNotFound
	case errors.Is(err, ErrLockNotFound):
		return CodeLockNotFound
	case errors.Is(err, ErrSeatAlreadyBooked):
		return CodeSeatAlreadyBooked
	case errors.Is(err, ErrSeatLocked):
		return CodeSeatLocked
	case errors.Is(err, ErrNotLockOwner):
		return CodeNotLockOwner
	case errors.Is(err, ErrLockExpired):
		return CodeLockExpired
	default:
		return CodeInternalServer
	}
}

// LockConflictError represents a failed lock acquisition because another
// user currently holds an active lock on the seat
type LockConflictError struct {
	SeatID string
	UserID string
	HeldBy string
	LockID string
}

// Error implements the error interface for LockConflictError
func (e *LockConflictError) Error() string {
	return fmt.Sprintf("seat %s is locked by another user (requested by %s)", e.SeatID, e.UserID)
}

// Is checks if the target error is an ErrSeatLocked
func (e *LockConflictError) Is(target error) bool {
	return target == ErrSeatLocked
}

// LogFields returns a map of fields for structured logging
func (e *LockConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "lock_conflict",
		"seat_id":    e.SeatID,
		"user_id":    e.UserID,
		"held_by":    e.HeldBy,
		"lock_id":    e.LockID,
		"error_code": CodeSeatLocked,
	}
}

// NewLockConflictError creates a new detailed lock conflict error
func NewLockConflictError(seatID, userID, heldBy, lockID string) error {
	return &LockConflictError{
		SeatID: seatID,
		UserID: userID,
		HeldBy: heldBy,
		LockID: lockID,
	}
}

// BookingConflictError represents a failed operation on a seat that has
// already reached its terminal Booked state
type BookingConflictError struct {
	SeatID   string
	UserID   string
	BookedBy string
}

// Error implements the error interface
func (e *BookingConflictError) Error() string {
	return fmt.Sprintf("seat %s is already booked by %s", e.SeatID, e.BookedBy)
}

// Is checks if the target error is an ErrSeatAlreadyBooked
func (e *BookingConflictError) Is(target error) bool {
	return target == ErrSeatAlreadyBooked
}

// LogFields returns a map of fields for structured logging
func (e *BookingConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "booking_conflict",
		"seat_id":    e.SeatID,
		"user_id":    e.UserID,
		"booked_by":  e.BookedBy,
		"error_code": CodeSeatAlreadyBooked,
	}
}

// NewBookingConflictError creates a new detailed booking conflict error
func NewBookingConflictError(seatID, userID, bookedBy string) error {
	return &BookingConflictError{
		SeatID:   seatID,
		UserID:   userID,
		BookedBy: bookedBy,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrSeatNotFound) || errors.Is(err, ErrLockNotFound)
}

// IsConflictError checks if the error reports a booked seat or a foreign lock
func IsConflictError(err error) bool {
	return errors.Is(err, ErrSeatAlreadyBooked) || errors.Is(err, ErrSeatLocked)
}

// IsUnauthorizedError checks if the error reports a caller that is not the lock owner
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrNotLockOwner)
}

// IsExpiredError checks if the error reports a lock whose TTL elapsed
func IsExpiredError(err error) bool {
	return errors.Is(err, ErrLockExpired)
}

// IsInvalidInputError checks if the error reports malformed caller input
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidSeatID) || errors.Is(err, ErrInvalidUserID)
}
