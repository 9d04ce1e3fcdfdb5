// Package journal records session events asynchronously.
package journal

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/pkg/batcher"
)

// DefaultRecentLimit bounds Recent when the caller asks for no limit.
const DefaultRecentLimit = 50

// Recorder queues events and writes them in batches. Record never blocks the
// caller; events are dropped when the queue is full.
type Recorder struct {
	batcher *batcher.Batcher[model.Event]
	reader  Reader
	logger  *zap.Logger
	dropped atomic.Uint64
}

// NewRecorder builds a Recorder writing through w and reading through r.
func NewRecorder(w Writer, r Reader, cfg batcher.Config, logger *zap.Logger) (*Recorder, error) {
	if w == nil {
		return nil, errors.New("journal writer is required")
	}
	if r == nil {
		return nil, errors.New("journal reader is required")
	}
	logger = logger.Named("journal")
	return &Recorder{
		batcher: batcher.New(logger, w.InsertEvents, cfg),
		reader:  r,
		logger:  logger,
	}, nil
}

// Start runs the flush loop until ctx is done or Stop is called.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes queued events.
func (r *Recorder) Stop() {
	r.batcher.Stop()
	if n := r.dropped.Load(); n > 0 {
		r.logger.Warn("journal events dropped", zap.Uint64("count", n))
	}
}

func (r *Recorder) Record(event model.Event) {
	if err := r.batcher.TryAdd(event); err != nil {
		r.dropped.Add(1)
		r.logger.Debug("journal event dropped", zap.String("kind", string(event.Kind)), zap.Error(err))
	}
}

// Recent returns the newest events, optionally filtered by kind.
func (r *Recorder) Recent(ctx context.Context, kind model.EventKind, limit int) ([]model.Event, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return r.reader.RecentEvents(ctx, kind, limit)
}

// Dropped reports how many events were discarded so far.
func (r *Recorder) Dropped() uint64 {
	return r.dropped.Load()
}

// Disabled is used when no journal backend is configured.
type Disabled struct{}

func (Disabled) Record(model.Event) {}

func (Disabled) Recent(context.Context, model.EventKind, int) ([]model.Event, error) {
	return nil, nil
}
