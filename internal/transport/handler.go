// Package transport exposes the session coordinators over REST and gRPC.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/educhain-backend/internal/downloads"
	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/internal/textgen"
)

const (
	maxBodyBytes = 1 << 20
	maxEvents    = 500
)

// Handler serves the REST API.
type Handler struct {
	connectivity Connectivity
	wallet       Wallet
	downloads    Downloads
	features     Features
	events       Events
	logger       *zap.Logger
}

// NewHandler builds a Handler. features and events may be nil, in which case
// their routes are not registered.
func NewHandler(
	connectivity Connectivity,
	wallet Wallet,
	downloads Downloads,
	features Features,
	events Events,
	logger *zap.Logger,
) (*Handler, error) {
	if connectivity == nil || wallet == nil || downloads == nil {
		return nil, errors.New("connectivity, wallet and downloads are required")
	}
	return &Handler{
		connectivity: connectivity,
		wallet:       wallet,
		downloads:    downloads,
		features:     features,
		events:       events,
		logger:       logger.Named("rest"),
	}, nil
}

type route struct {
	method  string
	pattern string
	handler gwruntime.HandlerFunc
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	routes := []route{
		{http.MethodGet, "/v1/connection", h.getConnection},
		{http.MethodPost, "/v1/connection/sync", h.sync},
		{http.MethodPost, "/v1/connection/network", h.setNetwork},
		{http.MethodGet, "/v1/wallet", h.getWallet},
		{http.MethodPost, "/v1/wallet/connect", h.connectWallet},
		{http.MethodPost, "/v1/wallet/disconnect", h.disconnectWallet},
		{http.MethodPost, "/v1/wallet/sign", h.signMessage},
		{http.MethodGet, "/v1/downloads", h.listDownloads},
		{http.MethodPost, "/v1/downloads", h.addDownload},
		{http.MethodDelete, "/v1/downloads/{id}", h.removeDownload},
	}
	if h.features != nil {
		routes = append(routes, route{http.MethodPost, "/v1/generate/{feature}", h.generate})
	}
	if h.events != nil {
		routes = append(routes, route{http.MethodGet, "/v1/events", h.listEvents})
	}

	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func decode(r *http.Request, w http.ResponseWriter, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", errBadRequest, err)
	}
	return nil
}

func (h *Handler) getConnection(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, toConnection(h.connectivity.State()))
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ts, err := h.connectivity.Sync(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, syncResponse{LastSyncedAt: ts})
}

func (h *Handler) setNetwork(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req networkRequest
	if err := decode(r, w, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Online == nil {
		h.writeError(w, r, fmt.Errorf("%w: online is required", errBadRequest))
		return
	}
	h.connectivity.OnNetworkChange(*req.Online)
	writeJSON(w, http.StatusOK, toConnection(h.connectivity.State()))
}

func (h *Handler) getWallet(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, toWallet(h.wallet.Snapshot()))
}

func (h *Handler) connectWallet(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if _, err := h.wallet.Connect(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWallet(h.wallet.Snapshot()))
}

func (h *Handler) disconnectWallet(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if err := h.wallet.Disconnect(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWallet(h.wallet.Snapshot()))
}

func (h *Handler) signMessage(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req signRequest
	if err := decode(r, w, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	sig, err := h.wallet.SignMessage(r.Context(), req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, signResponse{Signature: sig})
}

func (h *Handler) listDownloads(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	items, err := h.downloads.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []model.DownloadedItem{}
	}
	downloads.SortByRecent(items)
	writeJSON(w, http.StatusOK, downloadsResponse{Items: items})
}

func (h *Handler) addDownload(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var item model.DownloadedItem
	if err := decode(r, w, &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	stored, err := h.downloads.Add(r.Context(), item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) removeDownload(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if err := h.downloads.Remove(r.Context(), params["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx := r.Context()
	switch feature := params["feature"]; feature {
	case "quiz":
		var req quizRequest
		if err := decode(r, w, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		quiz, err := h.features.Quiz(ctx, req.Topic, textgen.Difficulty(req.Difficulty))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, quiz)
	case "explain":
		var req explainRequest
		if err := decode(r, w, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeText(w, r)(h.features.Explain(ctx, req.Concept))
	case "usecase":
		var req useCaseRequest
		if err := decode(r, w, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeText(w, r)(h.features.LocalUseCase(ctx, req.Concept, req.Region, req.Industry))
	case "translate":
		var req translateRequest
		if err := decode(r, w, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeText(w, r)(h.features.Translate(ctx, req.Content, textgen.Language(req.Language)))
	default:
		h.writeErrorStatus(w, r, http.StatusNotFound, CodeNotFound, fmt.Errorf("unknown feature %q", feature))
	}
}

func (h *Handler) writeText(w http.ResponseWriter, r *http.Request) func(string, error) {
	return func(text string, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, textResponse{Text: text})
	}
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxEvents {
			h.writeError(w, r, fmt.Errorf("%w: limit must be between 0 and %d", errBadRequest, maxEvents))
			return
		}
		limit = n
	}

	events, err := h.events.Recent(r.Context(), model.EventKind(q.Get("kind")), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvents(events))
}
