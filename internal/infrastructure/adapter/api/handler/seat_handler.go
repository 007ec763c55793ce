package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/seat-reservation/internal/domain/error"
	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SeatHandler handles read-only seat and stats HTTP requests
type SeatHandler struct {
	bookingUseCase usecase.BookingUseCase
	logger         coreport.Logger
}

// NewSeatHandler creates a new seat handler instance
func NewSeatHandler(
	bookingUseCase usecase.BookingUseCase,
	logger coreport.Logger,
) *SeatHandler {
	return &SeatHandler{
		bookingUseCase: bookingUseCase,
		logger:         logger,
	}
}

// ListSeats handles the GET /seats endpoint
func (h *SeatHandler) ListSeats(c *gin.Context) {
	seats := h.bookingUseCase.ListSeats()
	c.JSON(http.StatusOK, dto.SeatListResponse{
		Seats: seats,
		Count: len(seats),
	})
}

// ListAvailable handles the GET /seats/available endpoint
func (h *SeatHandler) ListAvailable(c *gin.Context) {
	seats := h.bookingUseCase.ListAvailable()
	c.JSON(http.StatusOK, dto.SeatListResponse{
		Seats: seats,
		Count: len(seats),
	})
}

// GetSeat handles the GET /seats/:seatId endpoint
func (h *SeatHandler) GetSeat(c *gin.Context) {
	seatID := c.Param("seatId")

	view, err := h.bookingUseCase.GetSeat(seatID)
	if err != nil {
		status, message := mapDomainError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Stats handles the GET /stats endpoint
func (h *SeatHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.bookingUseCase.Stats())
}
