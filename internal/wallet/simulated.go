package wallet

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/educhain-backend/internal/clock"
)

const (
	DefaultConnectLatency = time.Second
	DefaultSignLatency    = 500 * time.Millisecond

	signatureNonceSize = 32
)

// SimulatedConnector stands in for a browser wallet extension. Each connect
// derives a display address from a fresh secp256k1 key.
type SimulatedConnector struct {
	latency time.Duration
	sleep   clock.SleepFunc
}

// NewSimulatedConnector builds a SimulatedConnector. A non-positive latency
// selects DefaultConnectLatency.
func NewSimulatedConnector(latency time.Duration) *SimulatedConnector {
	if latency <= 0 {
		latency = DefaultConnectLatency
	}
	return &SimulatedConnector{latency: latency, sleep: clock.SleepWithContext}
}

// Connect waits the simulated latency and returns a new mock address.
func (c *SimulatedConnector) Connect(ctx context.Context) (string, error) {
	if err := c.sleep(ctx, c.latency); err != nil {
		return "", err
	}
	return NewMockAddress()
}

// NewMockAddress renders HASH160 of an ephemeral compressed public key as
// 0x<8 hex>...<4 hex>.
func NewMockAddress() (string, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	id := hex.EncodeToString(btcutil.Hash160(priv.PubKey().SerializeCompressed()))
	return "0x" + id[:8] + "..." + id[len(id)-4:], nil
}

// SimulatedSigner returns opaque signatures. They are not verifiable against
// the address and must be replaced before any real signing is relied on.
type SimulatedSigner struct {
	latency time.Duration
	sleep   clock.SleepFunc
}

// NewSimulatedSigner builds a SimulatedSigner. A non-positive latency selects
// DefaultSignLatency.
func NewSimulatedSigner(latency time.Duration) *SimulatedSigner {
	if latency <= 0 {
		latency = DefaultSignLatency
	}
	return &SimulatedSigner{latency: latency, sleep: clock.SleepWithContext}
}

// Sign waits the simulated latency and returns 0x + hex(sha256d(nonce || message)).
func (s *SimulatedSigner) Sign(ctx context.Context, _ string, message string) (string, error) {
	if err := s.sleep(ctx, s.latency); err != nil {
		return "", err
	}
	buf := make([]byte, signatureNonceSize, signatureNonceSize+len(message))
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	buf = append(buf, message...)
	return "0x" + hex.EncodeToString(chainhash.DoubleHashB(buf)), nil
}
