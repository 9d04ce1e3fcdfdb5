package connection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/educhain-backend/internal/clock"
	"github.com/goodnatureofminers/educhain-backend/pkg/workerpool"
)

const (
	defaultProbeInterval = 15 * time.Second
	defaultProbeTimeout  = 3 * time.Second
	probeWorkerCount     = 4
)

// Prober turns periodic reachability checks into network change signals.
// The environment is online when any target answers.
type Prober struct {
	logger   *zap.Logger
	checker  Checker
	targets  []string
	interval time.Duration
	timeout  time.Duration
	sleep    clock.SleepFunc
	onChange func(online bool)
	current  func() bool
}

// NewProber builds a Prober that calls onChange whenever a probe result
// differs from the state reported by current.
func NewProber(
	targets []string,
	interval time.Duration,
	timeout time.Duration,
	checker Checker,
	onChange func(online bool),
	current func() bool,
	logger *zap.Logger,
) (*Prober, error) {
	if len(targets) == 0 {
		return nil, errors.New("at least one probe target is required")
	}
	if checker == nil {
		return nil, errors.New("probe checker is required")
	}
	if onChange == nil {
		return nil, errors.New("probe change handler is required")
	}
	if current == nil {
		return nil, errors.New("probe state reader is required")
	}
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Prober{
		logger:   logger.Named("prober"),
		checker:  checker,
		targets:  targets,
		interval: interval,
		timeout:  timeout,
		sleep:    clock.SleepWithContext,
		onChange: onChange,
		current:  current,
	}, nil
}

// Check probes every target concurrently and reports whether any responded.
func (p *Prober) Check(ctx context.Context) bool {
	var reachable atomic.Bool
	err := workerpool.Process(ctx, probeWorkerCount, p.targets, func(ctx context.Context, target string) error {
		cctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()
		if err := p.checker.Check(cctx, target); err != nil {
			p.logger.Debug("probe target unreachable", zap.String("target", target), zap.Error(err))
			return nil
		}
		reachable.Store(true)
		return workerpool.ErrStop
	}, nil)
	if err != nil {
		return false
	}
	return reachable.Load()
}

// Run probes until ctx is canceled. A result that disagrees with the current
// state is reported, so a state set by anyone else is corrected on the next
// round.
func (p *Prober) Run(ctx context.Context) error {
	for {
		online := p.Check(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.report(online)
		if err := p.sleep(ctx, p.interval); err != nil {
			return err
		}
	}
}

func (p *Prober) report(online bool) {
	if p.current() == online {
		return
	}
	p.logger.Info("reachability changed", zap.Bool("online", online))
	p.onChange(online)
}

// HTTPChecker treats any HTTP response from the target as reachable.
type HTTPChecker struct {
	client *http.Client
}

// NewHTTPChecker builds an HTTPChecker on top of client, or a default client.
func NewHTTPChecker(client *http.Client) *HTTPChecker {
	if client == nil {
		client = &http.Client{Timeout: defaultProbeTimeout}
	}
	return &HTTPChecker{client: client}
}

// Check issues a HEAD request against target.
func (c *HTTPChecker) Check(ctx context.Context, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", target, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}
