package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "connection_monitor",
		Name:      "sync_total",
		Help:      "Count of sync attempts by outcome.",
	}, []string{"status"})

	connectionSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "connection_monitor",
		Name:      "sync_duration_seconds",
		Help:      "Duration of sync attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	connectionOnline = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "connection_monitor",
		Name:      "online",
		Help:      "1 when the environment reports connectivity, 0 otherwise.",
	})

	connectionTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "connection_monitor",
		Name:      "network_transitions_total",
		Help:      "Count of delivered network state changes.",
	}, []string{"online"})
)

// ConnectionMonitor tracks metrics for the connectivity coordinator.
type ConnectionMonitor struct{}

// NewConnectionMonitor constructs a ConnectionMonitor metrics collector.
func NewConnectionMonitor() *ConnectionMonitor {
	return &ConnectionMonitor{}
}

// ObserveSync records a sync attempt outcome and duration.
func (m ConnectionMonitor) ObserveSync(err error, started time.Time) {
	s := status(err)
	connectionSyncTotal.WithLabelValues(s).Inc()
	connectionSyncDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
}

// ObserveNetwork records a delivered network signal.
func (m ConnectionMonitor) ObserveNetwork(online bool) {
	label := "false"
	if online {
		label = "true"
		connectionOnline.Set(1)
	} else {
		connectionOnline.Set(0)
	}
	connectionTransitionsTotal.WithLabelValues(label).Inc()
}
