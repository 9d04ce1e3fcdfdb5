package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned by wallet-only operations without a session.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrConnectAborted is reported to a pending connect superseded by Disconnect.
	ErrConnectAborted = errors.New("connect aborted by disconnect")
)

// ConnectError reports a failed connect attempt. The session is left disconnected.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("failed to connect wallet: %v", e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}
