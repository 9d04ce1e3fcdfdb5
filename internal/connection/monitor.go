// Package connection tracks environment connectivity and the last successful
// reconciliation with the server.
package connection

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/goodnatureofminers/educhain-backend/internal/clock"
	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/internal/storage"
)

const syncFlightKey = "sync"

// Monitor is the single owner of ConnectivityState for a process.
//
// Concurrent Sync calls share one in-flight reconciliation. Each caller waits
// on its own context. The reconciliation is canceled, leaving state
// untouched, only once every caller waiting on it has given up.
type Monitor struct {
	logger     *zap.Logger
	store      storage.Store
	reconciler Reconciler
	metrics    Metrics
	journal    Journal
	now        clock.NowFunc

	flight        singleflight.Group
	flightMu      sync.Mutex
	flightCtx     context.Context
	flightCancel  context.CancelFunc
	flightWaiters int

	mu         sync.RWMutex
	online     bool
	lastSynced time.Time
	hasSynced  bool

	subsMu  sync.Mutex
	subs    map[uint64]chan model.ConnectivityState
	nextSub uint64
}

// NewMonitor restores the persisted sync time and starts with the given
// reachability flag.
func NewMonitor(
	ctx context.Context,
	store storage.Store,
	reconciler Reconciler,
	metrics Metrics,
	journal Journal,
	online bool,
	logger *zap.Logger,
) (*Monitor, error) {
	if store == nil {
		return nil, errors.New("connection monitor store is required")
	}
	if reconciler == nil {
		return nil, errors.New("connection monitor reconciler is required")
	}
	if metrics == nil {
		return nil, errors.New("connection monitor metrics is required")
	}
	if journal == nil {
		journal = nopJournal{}
	}

	m := &Monitor{
		logger:     logger.Named("connection"),
		store:      store,
		reconciler: reconciler,
		metrics:    metrics,
		journal:    journal,
		now:        clock.NowUTC,
		online:     online,
		subs:       make(map[uint64]chan model.ConnectivityState),
	}

	last, ok, err := storage.LastSyncedKey.Get(ctx, store)
	switch {
	case errors.Is(err, storage.ErrCorruptValue):
		m.logger.Warn("ignoring unreadable last sync time", zap.Error(err))
	case err != nil:
		return nil, fmt.Errorf("restore last sync time: %w", err)
	case ok:
		m.lastSynced, m.hasSynced = last, true
	}

	m.metrics.ObserveNetwork(online)
	m.logger.Info("connection monitor ready",
		zap.Bool("online", online),
		zap.Bool("restored_last_synced", m.hasSynced))

	return m, nil
}

// State returns the current snapshot.
func (m *Monitor) State() model.ConnectivityState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stateLocked()
}

// IsOnline reports the most recently delivered network signal.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

func (m *Monitor) stateLocked() model.ConnectivityState {
	state := model.ConnectivityState{IsOnline: m.online}
	if m.hasSynced {
		last := m.lastSynced
		state.LastSyncedAt = &last
	}
	return state
}

// OnNetworkChange delivers the environment connectivity signal. Subscribers
// are notified when the value changes.
func (m *Monitor) OnNetworkChange(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	state := m.stateLocked()
	m.subsMu.Lock()
	m.mu.Unlock()
	m.broadcastLocked(state)
	m.subsMu.Unlock()

	m.metrics.ObserveNetwork(online)
	m.journal.Record(model.Event{
		Kind:       model.EventNetworkChange,
		OccurredAt: m.now(),
		Status:     model.EventSuccess,
		Detail:     strconv.FormatBool(online),
	})
	m.logger.Info("network state changed", zap.Bool("online", online))
}

// Sync reconciles local state with the server and records the completion time.
// It fails with ErrOffline, without a network attempt, while offline.
func (m *Monitor) Sync(ctx context.Context) (time.Time, error) {
	started := time.Now()

	if !m.IsOnline() {
		m.metrics.ObserveSync(ErrOffline, started)
		return time.Time{}, ErrOffline
	}

	results := m.joinFlight(ctx)
	select {
	case <-ctx.Done():
		m.leaveFlight(true)
		err := ctx.Err()
		m.metrics.ObserveSync(err, started)
		m.logger.Warn("sync abandoned", zap.Error(err))
		return time.Time{}, err
	case res := <-results:
		m.leaveFlight(false)
		m.metrics.ObserveSync(res.Err, started)
		if res.Err != nil {
			m.logger.Warn("sync failed", zap.Error(res.Err), zap.Bool("shared", res.Shared))
			return time.Time{}, res.Err
		}
		return res.Val.(time.Time), nil
	}
}

// joinFlight attaches the caller to the running reconciliation or starts one
// on a context detached from any single caller.
func (m *Monitor) joinFlight(ctx context.Context) <-chan singleflight.Result {
	m.flightMu.Lock()
	defer m.flightMu.Unlock()

	if m.flightWaiters == 0 {
		m.flightCtx, m.flightCancel = context.WithCancel(context.WithoutCancel(ctx))
	}
	m.flightWaiters++
	flightCtx := m.flightCtx
	return m.flight.DoChan(syncFlightKey, func() (any, error) {
		return m.sync(flightCtx)
	})
}

// leaveFlight cancels the reconciliation when the last waiter leaves. An
// abandoned flight is forgotten so the next Sync starts fresh.
func (m *Monitor) leaveFlight(abandoned bool) {
	m.flightMu.Lock()
	defer m.flightMu.Unlock()

	m.flightWaiters--
	if m.flightWaiters > 0 {
		return
	}
	m.flightCancel()
	if abandoned {
		m.flight.Forget(syncFlightKey)
	}
}

func (m *Monitor) sync(ctx context.Context) (time.Time, error) {
	started := time.Now()
	err := m.reconciler.Reconcile(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		m.journal.Record(model.Event{
			Kind:       model.EventSync,
			OccurredAt: m.now(),
			Duration:   time.Since(started),
			Status:     model.EventError,
			Detail:     err.Error(),
		})
		return time.Time{}, fmt.Errorf("reconcile: %w", err)
	}

	m.mu.Lock()
	completed := m.now()
	if m.hasSynced && completed.Before(m.lastSynced) {
		completed = m.lastSynced
	}
	if err := storage.LastSyncedKey.Set(ctx, m.store, completed); err != nil {
		m.mu.Unlock()
		return time.Time{}, fmt.Errorf("persist last sync time: %w", err)
	}
	m.lastSynced, m.hasSynced = completed, true
	state := m.stateLocked()
	m.subsMu.Lock()
	m.mu.Unlock()
	m.broadcastLocked(state)
	m.subsMu.Unlock()

	m.journal.Record(model.Event{
		Kind:       model.EventSync,
		OccurredAt: completed,
		Duration:   time.Since(started),
		Status:     model.EventSuccess,
	})
	m.logger.Debug("sync complete", zap.Time("last_synced", completed))

	return completed, nil
}

// Subscribe returns a channel carrying state changes and a func that ends the
// subscription. Slow readers only see the latest state.
func (m *Monitor) Subscribe() (<-chan model.ConnectivityState, func()) {
	ch := make(chan model.ConnectivityState, 1)

	m.subsMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.subsMu.Lock()
			delete(m.subs, id)
			close(ch)
			m.subsMu.Unlock()
		})
	}
}

// broadcastLocked must be called with subsMu held.
func (m *Monitor) broadcastLocked(state model.ConnectivityState) {
	for _, ch := range m.subs {
		select {
		case ch <- state:
			continue
		default:
		}
		// Replace the stale pending value.
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

type nopJournal struct{}

func (nopJournal) Record(model.Event) {}
