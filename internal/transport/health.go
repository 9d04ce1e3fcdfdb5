package transport

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
)

// ConnectionService is the health service name that tracks connectivity.
const ConnectionService = "educhain.connection"

// HealthReporter mirrors connectivity into a gRPC health server. The process
// itself is always SERVING; ConnectionService is SERVING only while online.
type HealthReporter struct {
	server *health.Server
	feed   ConnectivityFeed
	logger *zap.Logger
}

func NewHealthReporter(server *health.Server, feed ConnectivityFeed, logger *zap.Logger) *HealthReporter {
	return &HealthReporter{server: server, feed: feed, logger: logger.Named("health")}
}

// Run applies the current state, then every change until ctx is done.
func (h *HealthReporter) Run(ctx context.Context) {
	updates, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	h.server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.apply(h.feed.State())

	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			h.apply(state)
		}
	}
}

func (h *HealthReporter) apply(state model.ConnectivityState) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if state.IsOnline {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus(ConnectionService, status)
	h.logger.Debug("connection health updated", zap.String("status", status.String()))
}
