// FilePath: internal/poller/poller.go
package poller

import (
	"context"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/airsentry/hub/internal/device"
	"github.com/airsentry/hub/internal/errors"
	"github.com/airsentry/hub/internal/monitoring"
	"github.com/airsentry/hub/internal/store"
)

// Poller keeps the history store fresh: one fetch at startup, then one per
// tick for the lifetime of its context. Manual refreshes go through the same
// FetchOnce path and do not reset the timer.
type Poller struct {
	device     *device.Client
	store      *store.HistoryStore
	monitoring *monitoring.Service
	interval   time.Duration
}

// Outcome describes one fetch attempt for callers that await it (manual
// refresh) and for diagnostics. Failure is empty on success.
type Outcome struct {
	Appended bool   `json:"appended"`
	Failure  string `json:"failure,omitempty"`
}

// New creates a poller. The interval is fixed for the poller's lifetime.
func New(dev *device.Client, st *store.HistoryStore, mon *monitoring.Service, interval time.Duration) *Poller {
	return &Poller{
		device:     dev,
		store:      st,
		monitoring: mon,
		interval:   interval,
	}
}

// FetchOnce performs one fetch-parse-append cycle. Every failure is recorded
// and swallowed here: the store is left untouched, no error propagates, and
// the next tick or manual trigger is the only retry. Overlapping invocations
// are safe because appends are order-preserving and each reading carries its
// own timestamp.
func (p *Poller) FetchOnce(ctx context.Context) Outcome {
	start := time.Now()
	reading, err := p.device.FetchReading(ctx)
	elapsed := time.Since(start)

	if err != nil {
		kind := errors.FailureKind(err)
		p.monitoring.RecordFetch(kind, elapsed)
		nuts.L.Warnf("[Poller] Fetch failed (%s): %v", kind, err)
		return Outcome{Failure: kind}
	}

	p.store.Append(reading)
	p.monitoring.RecordFetch("ok", elapsed)
	p.monitoring.SetHistorySize(p.store.Len())
	return Outcome{Appended: true}
}

// Run fetches immediately, then on the fixed interval until ctx is cancelled.
// Cancelling the context is the session-end path; it releases the ticker so
// no recurring task leaks.
func (p *Poller) Run(ctx context.Context) {
	nuts.L.Infof("[Poller] Starting acquisition loop (interval %s)", p.interval)
	p.FetchOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			nuts.L.Infof("[Poller] Acquisition loop stopped")
			return
		case <-ticker.C:
			p.FetchOnce(ctx)
		}
	}
}
