package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	textgenRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "textgen_client",
		Name:      "requests_total",
		Help:      "Count of text generation requests.",
	}, []string{"feature", "status"})
	textgenRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "textgen_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of text generation requests.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"feature", "status"})
)

// TextGenClient tracks metrics for text generation calls.
type TextGenClient struct{}

// NewTextGenClient constructs a TextGenClient metrics collector.
func NewTextGenClient() *TextGenClient {
	return &TextGenClient{}
}

// Observe records a single generation request outcome and duration.
func (m TextGenClient) Observe(feature string, err error, started time.Time) {
	if feature == "" {
		feature = "unknown"
	}
	s := status(err)
	textgenRequestsTotal.WithLabelValues(feature, s).Inc()
	textgenRequestDuration.WithLabelValues(feature, s).Observe(time.Since(started).Seconds())
}
