package routes

import (
	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	seatHandler *handler.SeatHandler,
	bookingHandler *handler.BookingHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)
	router.GET("/stats", seatHandler.Stats)

	// Seat routes
	seatRoutes := router.Group("/seats")
	{
		// GET /seats
		seatRoutes.GET("", seatHandler.ListSeats)

		// GET /seats/available
		seatRoutes.GET("/available", seatHandler.ListAvailable)

		// GET /seats/:seatId
		seatRoutes.GET("/:seatId", seatHandler.GetSeat)

		// POST /seats/:seatId/lock
		seatRoutes.POST("/:seatId/lock", bookingHandler.AcquireLock)

		// POST /seats/:seatId/confirm
		seatRoutes.POST("/:seatId/confirm", bookingHandler.ConfirmBooking)

		// POST /seats/:seatId/release
		seatRoutes.POST("/:seatId/release", bookingHandler.ReleaseLock)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
