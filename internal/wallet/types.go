package wallet

import (
	"context"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Connector establishes a wallet connection and returns its address.
	Connector interface {
		Connect(ctx context.Context) (string, error)
	}
	// Signer produces a signature for message on behalf of address.
	Signer interface {
		Sign(ctx context.Context, address, message string) (string, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		SetConnected(connected bool)
	}
	Journal interface {
		Record(event model.Event)
	}
)
