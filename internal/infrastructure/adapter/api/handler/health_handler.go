package handler

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
	"github.com/amirhossein-jamali/seat-reservation/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness
type HealthHandler struct {
	timeProvider coreport.TimeProvider
	startedAt    time.Time
}

// NewHealthHandler creates a health handler anchored at process start
func NewHealthHandler(timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{
		timeProvider: timeProvider,
		startedAt:    timeProvider.Now(),
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		UptimeMs: h.timeProvider.Since(h.startedAt).Std().Milliseconds(),
	})
}
