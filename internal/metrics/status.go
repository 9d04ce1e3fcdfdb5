// Package metrics exposes Prometheus collectors for the educhain session daemon.
package metrics

import (
	"errors"

	"github.com/goodnatureofminers/educhain-backend/internal/connection"
	"github.com/goodnatureofminers/educhain-backend/internal/wallet"
)

const namespace = "educhain"

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, connection.ErrOffline):
		return "offline"
	case errors.Is(err, wallet.ErrNotConnected):
		return "not_connected"
	default:
		return "error"
	}
}
