package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/educhain-backend/internal/connection"
	"github.com/goodnatureofminers/educhain-backend/internal/downloads"
	"github.com/goodnatureofminers/educhain-backend/internal/journal"
	journalClickhouse "github.com/goodnatureofminers/educhain-backend/internal/journal/clickhouse"
	"github.com/goodnatureofminers/educhain-backend/internal/metrics"
	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/internal/textgen"
	"github.com/goodnatureofminers/educhain-backend/internal/transport"
	"github.com/goodnatureofminers/educhain-backend/internal/wallet"
	"github.com/goodnatureofminers/educhain-backend/pkg/batcher"
)

type config struct {
	Addr         string        `long:"addr" env:"EDUCHAIN_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr     string        `long:"rest-addr" env:"EDUCHAIN_REST_ADDR" description:"REST listen address" default:":8001"`
	CORSOrigins  []string      `long:"cors-origin" env:"EDUCHAIN_CORS_ORIGINS" env-delim:"," description:"allowed CORS origin, repeatable" default:"*"`
	StoreKind    string        `long:"store" env:"EDUCHAIN_STORE" description:"session store backend" choice:"memory" choice:"bolt" choice:"file" default:"bolt"`
	StorePath    string        `long:"store-path" env:"EDUCHAIN_STORE_PATH" description:"path of the bolt or toml store" default:"data/session.db"`
	StoreTimeout time.Duration `long:"store-timeout" env:"EDUCHAIN_STORE_TIMEOUT" description:"time to wait for the bolt file lock" default:"1s"`

	StartOffline  bool          `long:"start-offline" env:"EDUCHAIN_START_OFFLINE" description:"assume no connectivity until a probe succeeds"`
	DisableProbe  bool          `long:"disable-probe" env:"EDUCHAIN_DISABLE_PROBE" description:"only change connectivity through the REST override"`
	ProbeTargets  []string      `long:"probe-target" env:"EDUCHAIN_PROBE_TARGETS" env-delim:"," description:"URL probed for connectivity, repeatable" default:"https://generativelanguage.googleapis.com"`
	ProbeInterval time.Duration `long:"probe-interval" env:"EDUCHAIN_PROBE_INTERVAL" description:"connectivity probe interval" default:"15s"`
	ProbeTimeout  time.Duration `long:"probe-timeout" env:"EDUCHAIN_PROBE_TIMEOUT" description:"per target probe timeout" default:"3s"`

	SyncLatency    time.Duration `long:"sync-latency" env:"EDUCHAIN_SYNC_LATENCY" description:"simulated sync duration" default:"1s"`
	ConnectLatency time.Duration `long:"connect-latency" env:"EDUCHAIN_CONNECT_LATENCY" description:"simulated wallet connect duration" default:"1s"`
	SignLatency    time.Duration `long:"sign-latency" env:"EDUCHAIN_SIGN_LATENCY" description:"simulated signing duration" default:"500ms"`
	SeedDownloads  bool          `long:"seed-downloads" env:"EDUCHAIN_SEED_DOWNLOADS" description:"populate sample downloads when none are stored"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"EDUCHAIN_CLICKHOUSE_DSN" description:"ClickHouse DSN for the event journal, disabled when empty"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"EDUCHAIN_JOURNAL_FLUSH_SIZE" description:"events per journal insert" default:"100"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"EDUCHAIN_JOURNAL_FLUSH_INTERVAL" description:"max delay before queued events are written" default:"2s"`

	GeminiAPIKey  string `long:"gemini-api-key" env:"EDUCHAIN_GEMINI_API_KEY" description:"generative language API key, generation routes disabled when empty"`
	GeminiModel   string `long:"gemini-model" env:"EDUCHAIN_GEMINI_MODEL" description:"generation model" default:"gemini-2.0-flash"`
	GeminiBaseURL string `long:"gemini-base-url" env:"EDUCHAIN_GEMINI_BASE_URL" description:"generation API base URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiRPS     int    `long:"gemini-rps" env:"EDUCHAIN_GEMINI_RPS" description:"max generation requests per second" default:"2"`
}

type eventJournal interface {
	Record(event model.Event)
	Recent(ctx context.Context, kind model.EventKind, limit int) ([]model.Event, error)
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("educhain daemon failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store, closeStore, err := openStore(cfg.StoreKind, cfg.StorePath, cfg.StoreTimeout)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close store", zap.Error(err))
		}
	}()

	events, stopJournal, err := newJournal(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}
	defer stopJournal()

	monitor, err := connection.NewMonitor(
		ctx,
		store,
		connection.NewSimulatedReconciler(cfg.SyncLatency),
		metrics.NewConnectionMonitor(),
		events,
		!cfg.StartOffline,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init connection monitor: %w", err)
	}

	session, err := wallet.NewSession(
		ctx,
		store,
		wallet.NewSimulatedConnector(cfg.ConnectLatency),
		wallet.NewSimulatedSigner(cfg.SignLatency),
		metrics.NewWalletSession(),
		events,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init wallet session: %w", err)
	}

	registry := downloads.NewRegistry(store, events, logger)
	if cfg.SeedDownloads {
		if _, err := registry.Seed(ctx); err != nil {
			return err
		}
	}

	if !cfg.DisableProbe {
		prober, err := connection.NewProber(
			cfg.ProbeTargets,
			cfg.ProbeInterval,
			cfg.ProbeTimeout,
			connection.NewHTTPChecker(nil),
			monitor.OnNetworkChange,
			monitor.IsOnline,
			logger,
		)
		if err != nil {
			return fmt.Errorf("init prober: %w", err)
		}
		go func() {
			if err := prober.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("connectivity prober stopped", zap.Error(err))
			}
		}()
	}

	var features transport.Features
	if cfg.GeminiAPIKey != "" {
		client, err := textgen.NewClient(textgen.Config{
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			APIKey:  cfg.GeminiAPIKey,
			RPS:     cfg.GeminiRPS,
		}, metrics.NewTextGenClient(), logger)
		if err != nil {
			return fmt.Errorf("init text generation client: %w", err)
		}
		svc, err := textgen.NewService(client, monitor, logger)
		if err != nil {
			return fmt.Errorf("init text generation features: %w", err)
		}
		features = svc
	} else {
		logger.Info("generation routes disabled, no API key configured")
	}

	grpcServer, err := startGRPC(ctx, cfg.Addr, monitor, logger)
	if err != nil {
		return err
	}
	defer grpcServer.GracefulStop()

	handler, err := transport.NewHandler(monitor, session, registry, features, events, logger)
	if err != nil {
		return fmt.Errorf("init rest handler: %w", err)
	}
	return serveREST(ctx, cfg, handler, logger)
}

func newJournal(ctx context.Context, cfg config, logger *zap.Logger) (eventJournal, func(), error) {
	if cfg.ClickhouseDSN == "" {
		logger.Info("event journal disabled, no ClickHouse DSN configured")
		return journal.Disabled{}, func() {}, nil
	}

	repo, err := journalClickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseJournal())
	if err != nil {
		return nil, nil, err
	}
	recorder, err := journal.NewRecorder(repo, repo, batcher.Config{
		FlushSize:     cfg.JournalFlushSize,
		FlushInterval: cfg.JournalFlushInterval,
	}, logger)
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	recorder.Start(ctx)

	return recorder, func() {
		recorder.Stop()
		if err := repo.Close(); err != nil {
			logger.Error("failed to close clickhouse connection", zap.Error(err))
		}
	}, nil
}

func startGRPC(ctx context.Context, addr string, feed transport.ConnectivityFeed, logger *zap.Logger) (*grpc.Server, error) {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(
			grpcRecovery.StreamServerInterceptor(),
			grpcCtxTags.StreamServerInterceptor(),
			grpcPrometheus.StreamServerInterceptor,
			grpcZap.StreamServerInterceptor(logger),
		)),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	go transport.NewHealthReporter(healthServer, feed, logger).Run(ctx)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		logger.Info("starting gRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	return grpcServer, nil
}

func serveREST(ctx context.Context, cfg config, handler *transport.Handler, logger *zap.Logger) error {
	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           corsHandler.Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
