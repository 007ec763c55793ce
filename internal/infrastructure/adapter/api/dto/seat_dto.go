package dto

import (
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/usecase"
)

// SeatListResponse wraps a list of seat views
type SeatListResponse struct {
	Seats []usecase.SeatView `json:"seats"`
	Count int                `json:"count"`
}

// HealthResponse reports process liveness
type HealthResponse struct {
	Status   string `json:"status"`
	UptimeMs int64  `json:"uptimeMs"`
}
