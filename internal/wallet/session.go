// Package wallet owns the connected wallet identity of a session.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/educhain-backend/internal/clock"
	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/internal/storage"
)

// Session serializes every mutation of the wallet state through one mutex.
// Concurrent Connect calls share the pending attempt instead of racing.
type Session struct {
	logger    *zap.Logger
	store     storage.Store
	connector Connector
	signer    Signer
	metrics   Metrics
	journal   Journal
	now       clock.NowFunc

	mu      sync.Mutex
	address string
	pending *attempt
	// generation is bumped by Disconnect so late attempts can be discarded.
	generation uint64
}

type attempt struct {
	generation uint64
	done       chan struct{}
	address    string
	err        error
}

// NewSession restores a persisted address, starting Connected when one exists.
func NewSession(
	ctx context.Context,
	store storage.Store,
	connector Connector,
	signer Signer,
	metrics Metrics,
	journal Journal,
	logger *zap.Logger,
) (*Session, error) {
	if store == nil {
		return nil, errors.New("wallet session store is required")
	}
	if connector == nil {
		return nil, errors.New("wallet session connector is required")
	}
	if signer == nil {
		return nil, errors.New("wallet session signer is required")
	}
	if metrics == nil {
		return nil, errors.New("wallet session metrics is required")
	}
	if journal == nil {
		journal = nopJournal{}
	}

	address, _, err := storage.WalletAddressKey.Get(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("restore wallet address: %w", err)
	}

	s := &Session{
		logger:    logger.Named("wallet"),
		store:     store,
		connector: connector,
		signer:    signer,
		metrics:   metrics,
		journal:   journal,
		now:       clock.NowUTC,
		address:   address,
	}
	s.metrics.SetConnected(address != "")
	s.logger.Info("wallet session ready", zap.Bool("connected", address != ""))

	return s, nil
}

// Snapshot returns the current wallet state.
func (s *Session) Snapshot() model.WalletState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := model.WalletState{
		Address:      s.address,
		IsConnecting: s.pending != nil,
	}
	switch {
	case s.address != "":
		state.Status = model.WalletConnected
	case s.pending != nil:
		state.Status = model.WalletConnecting
	default:
		state.Status = model.WalletDisconnected
	}
	return state
}

// Connect returns the current address when already connected. Otherwise it
// starts, or joins, a connect attempt and waits for it to resolve.
func (s *Session) Connect(ctx context.Context) (string, error) {
	started := time.Now()

	s.mu.Lock()
	if s.address != "" {
		address := s.address
		s.mu.Unlock()
		return address, nil
	}
	if s.pending != nil {
		a := s.pending
		s.mu.Unlock()
		return s.wait(ctx, a)
	}
	a := &attempt{generation: s.generation, done: make(chan struct{})}
	s.pending = a
	s.mu.Unlock()

	address, err := s.connector.Connect(ctx)
	if err == nil {
		err = ctx.Err()
	}
	s.resolve(ctx, a, address, err)
	s.metrics.Observe("connect", a.err, started)

	return a.address, a.err
}

func (s *Session) wait(ctx context.Context, a *attempt) (string, error) {
	select {
	case <-ctx.Done():
		return "", &ConnectError{Err: ctx.Err()}
	case <-a.done:
		return a.address, a.err
	}
}

// resolve clears the connecting flag and applies the outcome in one critical
// section.
func (s *Session) resolve(ctx context.Context, a *attempt, address string, err error) {
	s.mu.Lock()
	defer close(a.done)
	defer s.mu.Unlock()

	if s.pending == a {
		s.pending = nil
	}
	if err == nil && s.generation != a.generation {
		err = ErrConnectAborted
	}
	if err == nil {
		if perr := storage.WalletAddressKey.Set(ctx, s.store, address); perr != nil {
			err = fmt.Errorf("persist wallet address: %w", perr)
		}
	}
	if err != nil {
		a.err = &ConnectError{Err: err}
		s.journal.Record(model.Event{
			Kind:       model.EventWalletConnect,
			OccurredAt: s.now(),
			Status:     model.EventError,
			Detail:     err.Error(),
		})
		s.logger.Warn("wallet connect failed", zap.Error(err))
		return
	}

	s.address = address
	a.address = address
	s.metrics.SetConnected(true)
	s.journal.Record(model.Event{
		Kind:       model.EventWalletConnect,
		Subject:    address,
		OccurredAt: s.now(),
		Status:     model.EventSuccess,
	})
	s.logger.Info("wallet connected", zap.String("address", address))
}

// Disconnect clears the address in storage and then in memory. Calling it
// while disconnected is a no-op apart from the storage delete. A pending
// connect is abandoned. When the delete fails the session stays as it was.
func (s *Session) Disconnect(ctx context.Context) error {
	started := time.Now()

	s.mu.Lock()
	previous := s.address
	if err := storage.WalletAddressKey.Delete(ctx, s.store); err != nil {
		s.mu.Unlock()
		s.metrics.Observe("disconnect", err, started)
		s.logger.Error("failed to clear persisted wallet address", zap.Error(err))
		return fmt.Errorf("disconnect wallet: %w", err)
	}
	s.address = ""
	s.pending = nil
	s.generation++
	s.mu.Unlock()

	s.metrics.SetConnected(false)
	s.metrics.Observe("disconnect", nil, started)
	if previous != "" {
		s.journal.Record(model.Event{
			Kind:       model.EventWalletDisconnect,
			Subject:    previous,
			OccurredAt: s.now(),
			Status:     model.EventSuccess,
		})
		s.logger.Info("wallet disconnected", zap.String("address", previous))
	}
	return nil
}

// SignMessage signs message with the connected wallet. It fails with
// ErrNotConnected iff no address is held at call time.
func (s *Session) SignMessage(ctx context.Context, message string) (string, error) {
	started := time.Now()

	s.mu.Lock()
	address := s.address
	s.mu.Unlock()

	if address == "" {
		s.metrics.Observe("sign", ErrNotConnected, started)
		return "", ErrNotConnected
	}

	sig, err := s.signer.Sign(ctx, address, message)
	s.metrics.Observe("sign", err, started)
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	return sig, nil
}

type nopJournal struct{}

func (nopJournal) Record(model.Event) {}
