package model

// WalletStatus describes the lifecycle position of the wallet session.
type WalletStatus string

var (
	// WalletDisconnected means no address is held.
	WalletDisconnected WalletStatus = "disconnected"
	// WalletConnecting means a connect attempt is pending.
	WalletConnecting WalletStatus = "connecting"
	// WalletConnected means an address is held.
	WalletConnected WalletStatus = "connected"
)

// WalletState is a snapshot of the wallet session.
type WalletState struct {
	Address      string
	IsConnecting bool
	Status       WalletStatus
}

// IsConnected reports whether an address is held.
func (s WalletState) IsConnected() bool {
	return s.Address != ""
}
