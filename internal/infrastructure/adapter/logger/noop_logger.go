package logger

import (
	"github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
)

// NoopLogger implements the Logger interface by discarding everything.
// Useful where a logger is required but output is unwanted.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a logger that does nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

// SetLevel sets the minimum log level
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// Debug does nothing
func (l *NoopLogger) Debug(_ string, _ map[string]any) {}

// Info does nothing
func (l *NoopLogger) Info(_ string, _ map[string]any) {}

// Warn does nothing
func (l *NoopLogger) Warn(_ string, _ map[string]any) {}

// Error does nothing
func (l *NoopLogger) Error(_ string, _ map[string]any) {}

// Flush does nothing
func (l *NoopLogger) Flush() error {
	return nil
}
