package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles lock and booking HTTP requests
type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	logger         coreport.Logger
}

// NewBookingHandler creates a new booking handler instance
func NewBookingHandler(
	bookingUseCase usecase.BookingUseCase,
	logger coreport.Logger,
) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		logger:         logger,
	}
}

// bindUserID extracts the user ID from the request body. A missing or
// blank user ID is invalid input, rejected here at the boundary before
// the engine is involved.
func bindUserID(c *gin.Context) (string, bool) {
	var req dto.LockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: domainerr.ErrInvalidUserID.Error(),
		})
		return "", false
	}
	return req.UserID, true
}

// AcquireLock handles the POST /seats/:seatId/lock endpoint
func (h *BookingHandler) AcquireLock(c *gin.Context) {
	seatID := c.Param("seatId")
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	result, err := h.bookingUseCase.AcquireLock(seatID, userID)
	if err != nil {
		h.respondDomainError(c, "Failed to acquire lock", seatID, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.LockResponse{
		SeatID:    seatID,
		LockID:    result.LockID,
		ExpiresAt: result.ExpiresAt,
	})
}

// ConfirmBooking handles the POST /seats/:seatId/confirm endpoint
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	seatID := c.Param("seatId")
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	result, err := h.bookingUseCase.ConfirmBooking(seatID, userID)
	if err != nil {
		h.respondDomainError(c, "Failed to confirm booking", seatID, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmResponse{
		BookingID: result.BookingID,
		Seat:      result.Seat,
	})
}

// ReleaseLock handles the POST /seats/:seatId/release endpoint
func (h *BookingHandler) ReleaseLock(c *gin.Context) {
	seatID := c.Param("seatId")
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	if err := h.bookingUseCase.ReleaseLock(seatID, userID); err != nil {
		h.respondDomainError(c, "Failed to release lock", seatID, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReleaseResponse{
		SeatID:   seatID,
		Released: true,
	})
}

// respondDomainError maps a domain error onto the HTTP response and
// logs server-side faults
func (h *BookingHandler) respondDomainError(c *gin.Context, message, seatID, userID string, err error) {
	status, errMessage := mapDomainError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(message, map[string]any{
			"seat_id": seatID,
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errMessage,
	})
}

// mapDomainError translates the domain error taxonomy to HTTP status codes
func mapDomainError(err error) (int, string) {
	switch {
	case domainerr.IsInvalidInputError(err):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, err.Error()
	case domainerr.IsUnauthorizedError(err):
		return http.StatusForbidden, err.Error()
	case domainerr.IsExpiredError(err):
		return http.StatusGone, err.Error()
	case domainerr.IsConflictError(err):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
