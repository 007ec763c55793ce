package dto

import (
	"time"

	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
)

// LockRequest carries the user performing a lock, confirm or release
type LockRequest struct {
	UserID string `json:"userId"`
}

// LockResponse reports a granted or renewed lock
type LockResponse struct {
	SeatID    string    `json:"seatId"`
	LockID    string    `json:"lockId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ConfirmResponse reports a confirmed booking. The booking ID is a
// receipt; it cannot be looked up later.
type ConfirmResponse struct {
	BookingID string           `json:"bookingId"`
	Seat      usecase.SeatView `json:"seat"`
}

// ReleaseResponse acknowledges a released lock
type ReleaseResponse struct {
	SeatID   string `json:"seatId"`
	Released bool   `json:"released"`
}
