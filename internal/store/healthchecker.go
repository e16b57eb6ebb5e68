package store

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/health"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
)

// HealthChecker monitors store reachability with periodic probes and caches
// the result so the health endpoint never blocks on the store.
type HealthChecker struct {
	store        Store
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewHealthChecker creates a store health checker. It starts unhealthy
// until the first successful probe.
func NewHealthChecker(store Store, log zerolog.Logger, probeTimeout time.Duration) *HealthChecker {
	hc := &HealthChecker{store: store, log: log, probeTimeout: probeTimeout}
	hc.healthy.Store(0)
	return hc
}

// Name returns the checker name.
func (hc *HealthChecker) Name() string { return "store" }

// IsHealthy returns the cached health status (non-blocking).
func (hc *HealthChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

// Start begins periodic health checking until ctx is cancelled.
func (hc *HealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if hc.probe(checkCtx) {
			hc.healthy.Store(1)
		} else {
			hc.healthy.Store(0)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

func (hc *HealthChecker) probe(ctx context.Context) bool {
	// Prefer specialized HealthPing if the driver provides it.
	if p, ok := hc.store.(health.HealthPinger); ok {
		if err := p.HealthPing(ctx); err != nil {
			hc.log.Error().Str("checker", hc.Name()).Err(err).Msg("store health check failed")
			return false
		}
		return true
	}

	// Fallback: a cheap read. ErrNotFound still proves the store answered.
	if _, err := hc.store.HelpRequests().Get(ctx, "__health_check__"); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return true
		}
		hc.log.Error().Str("checker", hc.Name()).Err(err).Msg("store health check failed")
		return false
	}
	return true
}
