package journal

import (
	"context"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Writer interface {
		InsertEvents(ctx context.Context, events []model.Event) error
	}
	Reader interface {
		RecentEvents(ctx context.Context, kind model.EventKind, limit int) ([]model.Event, error)
	}
)
