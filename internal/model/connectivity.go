// Package model defines the session state shared by the educhain coordinators.
package model

import "time"

// ConnectivityState is a snapshot of the connection monitor.
type ConnectivityState struct {
	IsOnline bool
	// LastSyncedAt is nil until the first successful sync.
	LastSyncedAt *time.Time
}
