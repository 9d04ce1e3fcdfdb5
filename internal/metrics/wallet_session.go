package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walletOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "wallet_session",
		Name:      "operations_total",
		Help:      "Count of wallet session operations.",
	}, []string{"operation", "status"})

	walletOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "wallet_session",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet session operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	walletConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "wallet_session",
		Name:      "connected",
		Help:      "1 while a wallet address is held.",
	})
)

// WalletSession tracks metrics for the wallet coordinator.
type WalletSession struct{}

// NewWalletSession constructs a WalletSession metrics collector.
func NewWalletSession() *WalletSession {
	return &WalletSession{}
}

// Observe records a wallet operation outcome and duration.
func (m WalletSession) Observe(operation string, err error, started time.Time) {
	s := status(err)
	walletOperationsTotal.WithLabelValues(operation, s).Inc()
	walletOperationDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}

// SetConnected updates the connected gauge.
func (m WalletSession) SetConnected(connected bool) {
	if connected {
		walletConnected.Set(1)
		return
	}
	walletConnected.Set(0)
}
