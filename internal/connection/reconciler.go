package connection

import (
	"context"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/clock"
)

// DefaultSyncLatency stands in for the server round trip.
const DefaultSyncLatency = time.Second

// SimulatedReconciler waits a fixed latency and reports success.
type SimulatedReconciler struct {
	latency time.Duration
	sleep   clock.SleepFunc
}

// NewSimulatedReconciler builds a SimulatedReconciler. A non-positive latency
// selects DefaultSyncLatency.
func NewSimulatedReconciler(latency time.Duration) *SimulatedReconciler {
	if latency <= 0 {
		latency = DefaultSyncLatency
	}
	return &SimulatedReconciler{latency: latency, sleep: clock.SleepWithContext}
}

// Reconcile blocks for the configured latency or until ctx is done.
func (r *SimulatedReconciler) Reconcile(ctx context.Context) error {
	return r.sleep(ctx, r.latency)
}
