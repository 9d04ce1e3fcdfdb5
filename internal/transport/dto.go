package transport

import (
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type connectionResponse struct {
	IsOnline     bool       `json:"isOnline"`
	LastSyncedAt *time.Time `json:"lastSyncedAt"`
}

func toConnection(s model.ConnectivityState) connectionResponse {
	return connectionResponse{IsOnline: s.IsOnline, LastSyncedAt: s.LastSyncedAt}
}

type syncResponse struct {
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

type networkRequest struct {
	Online *bool `json:"online"`
}

type walletResponse struct {
	Address      string `json:"address"`
	IsConnecting bool   `json:"isConnecting"`
	Status       string `json:"status"`
}

func toWallet(s model.WalletState) walletResponse {
	return walletResponse{Address: s.Address, IsConnecting: s.IsConnecting, Status: string(s.Status)}
}

type signRequest struct {
	Message string `json:"message"`
}

type signResponse struct {
	Signature string `json:"signature"`
}

type downloadsResponse struct {
	Items []model.DownloadedItem `json:"items"`
}

type (
	quizRequest struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
	}
	explainRequest struct {
		Concept string `json:"concept"`
	}
	useCaseRequest struct {
		Concept  string `json:"concept"`
		Region   string `json:"region"`
		Industry string `json:"industry"`
	}
	translateRequest struct {
		Content  string `json:"content"`
		Language string `json:"language"`
	}
	textResponse struct {
		Text string `json:"text"`
	}
)

type eventResponse struct {
	Kind       string    `json:"kind"`
	Subject    string    `json:"subject,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	DurationMs int64     `json:"durationMs"`
	Status     string    `json:"status"`
	Detail     string    `json:"detail,omitempty"`
}

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

func toEvents(events []model.Event) eventsResponse {
	out := eventsResponse{Events: make([]eventResponse, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, eventResponse{
			Kind:       string(e.Kind),
			Subject:    e.Subject,
			OccurredAt: e.OccurredAt,
			DurationMs: e.Duration.Milliseconds(),
			Status:     string(e.Status),
			Detail:     e.Detail,
		})
	}
	return out
}
