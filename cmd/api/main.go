package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/seat-reservation/internal/domain/usecase/booking"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/memory"
	timeProvider "github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Initialize the in-memory seat grid and lock table
	seatStore := memory.NewSeatStore(cfg.Seating.Rows, cfg.Seating.Columns)
	lockTable := memory.NewLockTable()

	appLogger.Info("Seat grid initialized", map[string]any{
		"rows":    cfg.Seating.Rows,
		"columns": cfg.Seating.Columns,
		"seats":   seatStore.Count(),
	})

	// Initialize the booking engine
	bookingService := booking.NewService(
		seatStore,
		lockTable,
		tp,
		appLogger,
		cfg.Seating.LockTTL(),
	)

	// Start the background expiry sweeper
	sweeper := booking.NewSweeper(bookingService, cfg.Seating.SweepInterval(), tp, appLogger)
	sweeper.Start()

	// Initialize API handlers
	seatHandler := handler.NewSeatHandler(bookingService, appLogger)
	bookingHandler := handler.NewBookingHandler(bookingService, appLogger)
	healthHandler := handler.NewHealthHandler(tp)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, seatHandler, bookingHandler, healthHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop the sweeper before the server so no eviction runs mid-shutdown
	sweeper.Stop()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
