package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseJournalRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_journal",
		Name:      "operations_total",
		Help:      "Count of journal repository operations.",
	}, []string{"operation", "status"})
	clickhouseJournalRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_journal",
		Name:      "operation_duration_seconds",
		Help:      "Duration of journal repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	clickhouseJournalRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_journal",
		Name:      "rows_total",
		Help:      "Count of rows written or read by the journal repository.",
	}, []string{"operation"})
)

// ClickhouseJournal tracks metrics for ClickHouse journal operations.
type ClickhouseJournal struct{}

// NewClickhouseJournal creates a ClickhouseJournal metrics collector.
func NewClickhouseJournal() *ClickhouseJournal {
	return &ClickhouseJournal{}
}

// Observe records duration, status and row count of a repository operation.
func (m ClickhouseJournal) Observe(operation string, rows int, err error, started time.Time) {
	s := status(err)
	clickhouseJournalRequestsTotal.WithLabelValues(operation, s).Inc()
	clickhouseJournalRequestDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
	if err == nil && rows > 0 {
		clickhouseJournalRows.WithLabelValues(operation).Add(float64(rows))
	}
}
