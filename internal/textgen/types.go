package textgen

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Generator interface {
		Generate(ctx context.Context, feature, prompt string) (string, error)
	}
	OnlineChecker interface {
		IsOnline() bool
	}
	Metrics interface {
		Observe(feature string, err error, started time.Time)
	}
)
