package booking

import (
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/seat-reservation/internal/domain/port/core"
)

// Sweeper periodically evicts expired locks so that entries nobody reads
// again cannot accumulate. It complements the lazy eviction performed on
// reads and takes the same engine mutex before deleting anything.
type Sweeper struct {
	service      *Service
	interval     time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneWG   sync.WaitGroup
}

// NewSweeper creates a sweeper over the given engine. Start must be
// called to begin sweeping.
func NewSweeper(
	service *Service,
	interval time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Sweeper {
	return &Sweeper{
		service:      service,
		interval:     interval,
		timeProvider: timeProvider,
		logger:       logger,
		stopCh:       make(chan struct{}),
	}
}

// Start launches the background sweep goroutine
func (w *Sweeper) Start() {
	w.doneWG.Add(1)
	go w.run()

	w.logger.Info("Expiry sweeper started", map[string]any{
		"interval_ms": w.interval.Milliseconds(),
	})
}

// Stop terminates the sweep goroutine and waits for it to exit. After
// Stop returns no further sweep will run. Stop is idempotent.
func (w *Sweeper) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.doneWG.Wait()
}

func (w *Sweeper) run() {
	defer w.doneWG.Done()

	ticker := w.timeProvider.NewTicker(coreport.Duration(w.interval))
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			w.logger.Info("Expiry sweeper stopped", nil)
			return
		case <-ticker.Chan():
			w.sweep()
		}
	}
}

// sweep runs one eviction pass. It never propagates failures to
// callers; a pass that finds nothing simply waits for the next tick.
func (w *Sweeper) sweep() {
	evicted := w.service.evictExpiredLocks()
	if evicted > 0 {
		w.logger.Info("Evicted expired locks", map[string]any{
			"count": evicted,
		})
		return
	}
	w.logger.Debug("Sweep found no expired locks", nil)
}
