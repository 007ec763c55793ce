package core

import (
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
)

// MockTimeProvider is a controllable clock for tests. Time only moves
// when Advance or Set is called, which makes TTL expiry deterministic.
type MockTimeProvider struct {
	mu      sync.Mutex
	current time.Time
	tickers []*ManualTicker
}

// NewMockTimeProvider creates a mock clock frozen at the given instant
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mock's current instant
func (p *MockTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Since returns the mock time elapsed since t
func (p *MockTimeProvider) Since(t time.Time) coreport.Duration {
	return coreport.Duration(p.Now().Sub(t))
}

// Until returns the mock duration until t
func (p *MockTimeProvider) Until(t time.Time) coreport.Duration {
	return coreport.Duration(t.Sub(p.Now()))
}

// NewTicker returns a manual ticker; the interval is ignored and ticks
// are delivered only through ManualTicker.Tick
func (p *MockTimeProvider) NewTicker(_ coreport.Duration) coreport.Ticker {
	t := NewManualTicker()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickers = append(p.tickers, t)
	return t
}

// LastTicker returns the most recently created manual ticker, or nil
// when NewTicker has not been called yet
func (p *MockTimeProvider) LastTicker() *ManualTicker {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.tickers) == 0 {
		return nil
	}
	return p.tickers[len(p.tickers)-1]
}

// Advance moves the mock clock forward by d
func (p *MockTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.current.Add(d)
}

// Set moves the mock clock to an absolute instant
func (p *MockTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = t
}

// ManualTicker implements core.Ticker with test-driven ticks
type ManualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

// NewManualTicker creates a ticker that fires only when Tick is called
func NewManualTicker() *ManualTicker {
	return &ManualTicker{
		ch:      make(chan time.Time, 1),
		stopped: make(chan struct{}),
	}
}

// Chan returns the tick delivery channel
func (t *ManualTicker) Chan() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker as stopped
func (t *ManualTicker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

// Tick delivers one tick carrying the given instant. Consumers pick it
// up asynchronously; assert resulting state with require.Eventually.
func (t *ManualTicker) Tick(now time.Time) {
	t.ch <- now
}

// Stopped reports whether Stop was called
func (t *ManualTicker) Stopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}
