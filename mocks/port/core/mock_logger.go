package core

import (
	"sync"

	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
)

// LogEntry records one logger invocation for later assertions
type LogEntry struct {
	Level   coreport.LogLevel
	Message string
	Fields  map[string]any
}

// MockLogger implements core.Logger by recording every entry in memory
type MockLogger struct {
	mu      sync.Mutex
	level   coreport.LogLevel
	entries []LogEntry
}

// NewMockLogger creates a recording logger at debug level
func NewMockLogger() *MockLogger {
	return &MockLogger{level: coreport.LogLevelDebug}
}

// SetLevel sets the minimum log level
func (l *MockLogger) SetLevel(level coreport.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel gets the current log level
func (l *MockLogger) GetLevel() coreport.LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Debug records a debug entry
func (l *MockLogger) Debug(message string, fields map[string]any) {
	l.record(coreport.LogLevelDebug, message, fields)
}

// Info records an info entry
func (l *MockLogger) Info(message string, fields map[string]any) {
	l.record(coreport.LogLevelInfo, message, fields)
}

// Warn records a warn entry
func (l *MockLogger) Warn(message string, fields map[string]any) {
	l.record(coreport.LogLevelWarn, message, fields)
}

// Error records an error entry
func (l *MockLogger) Error(message string, fields map[string]any) {
	l.record(coreport.LogLevelError, message, fields)
}

// Flush is a no-op for the mock
func (l *MockLogger) Flush() error {
	return nil
}

// Entries returns a copy of everything logged so far
func (l *MockLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// HasMessage reports whether any entry was logged with the given message
func (l *MockLogger) HasMessage(message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.Message == message {
			return true
		}
	}
	return false
}

func (l *MockLogger) record(level coreport.LogLevel, message string, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message, Fields: fields})
}
