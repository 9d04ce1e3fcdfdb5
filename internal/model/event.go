package model

import "time"

// EventKind names a journaled session event.
type EventKind string

var (
	EventSync             EventKind = "sync"
	EventNetworkChange    EventKind = "network_change"
	EventWalletConnect    EventKind = "wallet_connect"
	EventWalletDisconnect EventKind = "wallet_disconnect"
	EventDownloadAdd      EventKind = "download_add"
	EventDownloadRemove   EventKind = "download_remove"
)

// EventStatus is the outcome of a journaled operation.
type EventStatus string

var (
	EventSuccess EventStatus = "success"
	EventError   EventStatus = "error"
)

// Event is a single row of the session journal.
type Event struct {
	Kind       EventKind
	Subject    string
	OccurredAt time.Time
	Duration   time.Duration
	Status     EventStatus
	Detail     string
}
