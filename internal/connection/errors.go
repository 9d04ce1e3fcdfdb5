package connection

import "errors"

// ErrOffline is returned by network-gated operations while the environment
// reports no connectivity. Callers retry after reconnecting.
var ErrOffline = errors.New("cannot sync data while offline")
