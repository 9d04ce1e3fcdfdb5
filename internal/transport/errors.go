package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/educhain-backend/internal/connection"
	"github.com/goodnatureofminers/educhain-backend/internal/downloads"
	"github.com/goodnatureofminers/educhain-backend/internal/textgen"
	"github.com/goodnatureofminers/educhain-backend/internal/wallet"
)

const (
	CodeOffline       = "offline"
	CodeNotConnected  = "not_connected"
	CodeConnectFailed = "connect_failed"
	CodeBadRequest    = "bad_request"
	CodeNotFound      = "not_found"
	CodeInternal      = "internal"
)

var errBadRequest = errors.New("bad request")

func classify(err error) (int, string) {
	var connectErr *wallet.ConnectError
	switch {
	case errors.Is(err, connection.ErrOffline):
		return http.StatusServiceUnavailable, CodeOffline
	case errors.Is(err, wallet.ErrNotConnected):
		return http.StatusForbidden, CodeNotConnected
	case errors.As(err, &connectErr):
		return http.StatusBadGateway, CodeConnectFailed
	case errors.Is(err, errBadRequest),
		errors.Is(err, downloads.ErrInvalidItem),
		errors.Is(err, textgen.ErrInvalidRequest):
		return http.StatusBadRequest, CodeBadRequest
	case errors.Is(err, downloads.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	h.writeErrorStatus(w, r, status, code, err)
}

func (h *Handler) writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	if status >= http.StatusInternalServerError && code == CodeInternal {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.String("code", code), zap.Error(err))
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
}
