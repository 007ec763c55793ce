package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrSeatNotFound.Error() != "seat not found" {
		t.Errorf("ErrSeatNotFound has unexpected message: %s", ErrSeatNotFound.Error())
	}
	if ErrSeatLocked.Error() != "seat is locked by another user" {
		t.Errorf("ErrSeatLocked has unexpected message: %s", ErrSeatLocked.Error())
	}
	if ErrNotLockOwner.Error() != "no valid lock held by this user" {
		t.Errorf("ErrNotLockOwner has unexpected message: %s", ErrNotLockOwner.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidSeatID", ErrInvalidSeatID, 4001},
		{"InvalidUserID", ErrInvalidUserID, 4002},
		{"SeatNotFound", ErrSeatNotFound, 4040},
		{"LockNotFound", ErrLockNotFound, 4041},
		{"SeatAlreadyBooked", ErrSeatAlreadyBooked, 4090},
		{"SeatLocked", ErrSeatLocked, 4091},
		{"NotLockOwner", ErrNotLockOwner, 4030},
		{"LockExpired", ErrLockExpired, 4100},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrSeatNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestLockConflictError(t *testing.T) {
	conflictErr := NewLockConflictError("3-4", "u2", "u1", "lock-123")

	// Test Error method
	expectedErrMsg := "seat 3-4 is locked by another user (requested by u2)"
	if conflictErr.Error() != expectedErrMsg {
		t.Errorf("LockConflictError.Error() = %s, want %s", conflictErr.Error(), expectedErrMsg)
	}

	// Test Is method maps to the sentinel
	if !errors.Is(conflictErr, ErrSeatLocked) {
		t.Errorf("errors.Is(conflictErr, ErrSeatLocked) = false, want true")
	}

	// Test LogFields content
	var typed *LockConflictError
	if !errors.As(conflictErr, &typed) {
		t.Fatalf("errors.As failed to extract *LockConflictError")
	}
	fields := typed.LogFields()
	if fields["seat_id"] != "3-4" || fields["held_by"] != "u1" {
		t.Errorf("LogFields returned unexpected values: %v", fields)
	}
	if fields["error_code"] != CodeSeatLocked {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeSeatLocked)
	}
}

func TestBookingConflictError(t *testing.T) {
	bookErr := NewBookingConflictError("1-1", "u2", "u1")

	expectedErrMsg := "seat 1-1 is already booked by u1"
	if bookErr.Error() != expectedErrMsg {
		t.Errorf("BookingConflictError.Error() = %s, want %s", bookErr.Error(), expectedErrMsg)
	}

	if !errors.Is(bookErr, ErrSeatAlreadyBooked) {
		t.Errorf("errors.Is(bookErr, ErrSeatAlreadyBooked) = false, want true")
	}

	if ErrorCode(bookErr) != CodeSeatAlreadyBooked {
		t.Errorf("ErrorCode(bookErr) = %d, want %d", ErrorCode(bookErr), CodeSeatAlreadyBooked)
	}
}

func TestErrorClassificationHelpers(t *testing.T) {
	testCases := []struct {
		name    string
		helper  func(error) bool
		match   error
		noMatch error
	}{
		{"IsNotFoundError", IsNotFoundError, ErrSeatNotFound, ErrSeatLocked},
		{"IsConflictError", IsConflictError, ErrSeatAlreadyBooked, ErrSeatNotFound},
		{"IsUnauthorizedError", IsUnauthorizedError, ErrNotLockOwner, ErrLockExpired},
		{"IsExpiredError", IsExpiredError, ErrLockExpired, ErrNotLockOwner},
		{"IsInvalidInputError", IsInvalidInputError, ErrInvalidUserID, ErrSeatNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.helper(tc.match) {
				t.Errorf("%s(%v) = false, want true", tc.name, tc.match)
			}
			if tc.helper(tc.noMatch) {
				t.Errorf("%s(%v) = true, want false", tc.name, tc.noMatch)
			}
		})
	}
}
