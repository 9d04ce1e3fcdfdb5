package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/internal/textgen"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Connectivity interface {
		State() model.ConnectivityState
		OnNetworkChange(online bool)
		Sync(ctx context.Context) (time.Time, error)
	}
	Wallet interface {
		Snapshot() model.WalletState
		Connect(ctx context.Context) (string, error)
		Disconnect(ctx context.Context) error
		SignMessage(ctx context.Context, message string) (string, error)
	}
	Downloads interface {
		List(ctx context.Context) ([]model.DownloadedItem, error)
		Add(ctx context.Context, item model.DownloadedItem) (model.DownloadedItem, error)
		Remove(ctx context.Context, id string) error
	}
	Features interface {
		Quiz(ctx context.Context, topic string, difficulty textgen.Difficulty) (textgen.Quiz, error)
		Explain(ctx context.Context, concept string) (string, error)
		LocalUseCase(ctx context.Context, concept, region, industry string) (string, error)
		Translate(ctx context.Context, content string, target textgen.Language) (string, error)
	}
	Events interface {
		Recent(ctx context.Context, kind model.EventKind, limit int) ([]model.Event, error)
	}
	ConnectivityFeed interface {
		State() model.ConnectivityState
		Subscribe() (<-chan model.ConnectivityState, func())
	}
)
