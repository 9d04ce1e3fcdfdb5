package connection

import (
	"context"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Reconciler performs the round trip that brings local state in line with the server.
	Reconciler interface {
		Reconcile(ctx context.Context) error
	}
	// Checker reports whether a single reachability target answers.
	Checker interface {
		Check(ctx context.Context, target string) error
	}
	Metrics interface {
		ObserveSync(err error, started time.Time)
		ObserveNetwork(online bool)
	}
	Journal interface {
		Record(event model.Event)
	}
)
