// Package drawsvc serves POST /draw for local development and Lambda
// deployments of the draw service.
package drawsvc

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"

	"github.com/arcanaland/shuffledraw/internal/deck"
	"github.com/arcanaland/shuffledraw/internal/draw"
	"github.com/google/uuid"
)

// Options configures the draw handler
type Options struct {
	// ImageBaseURL prefixes "/images/<file>" in every returned card
	ImageBaseURL string
	// AllowOrigin is sent as Access-Control-Allow-Origin
	AllowOrigin string
	// Rand overrides the card source; nil uses the auto-seeded global one
	Rand *rand.Rand
}

// Handler serves draw requests
type Handler struct {
	opts Options
	mu   sync.Mutex // guards opts.Rand, which is not safe for concurrent use
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// New returns a draw handler
func New(opts Options) *Handler {
	if opts.AllowOrigin == "" {
		opts.AllowOrigin = "*"
	}
	opts.ImageBaseURL = strings.TrimRight(opts.ImageBaseURL, "/")
	return &Handler{opts: opts}
}

// Routes returns a mux with /draw and /healthcheck registered
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/draw", h)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	return mux
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	log := slog.With("request_id", requestID, "method", r.Method, "path", r.URL.Path)

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Access-Control-Allow-Origin", h.opts.AllowOrigin)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "content-type, authorization")
	header.Set("X-Request-Id", requestID)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		h.writeError(w, log, http.StatusMethodNotAllowed, "method_not_allowed", "Only POST requests are allowed")
		return
	}

	var req draw.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, log, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}

	if req.DeckSize == "" || req.DeckReverse == "" {
		h.writeError(w, log, http.StatusBadRequest, "missing_parameters", "deckSize and deckReverse are required")
		return
	}

	h.mu.Lock()
	result, err := deck.Deal(req, h.opts.Rand)
	h.mu.Unlock()
	if errors.Is(err, deck.ErrUnknownDeckSize) {
		h.writeError(w, log, http.StatusBadRequest, "invalid_deck_options", "Invalid deck size or reverse option")
		return
	} else if err != nil {
		h.writeError(w, log, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	for i := range result.DrawnCards {
		result.DrawnCards[i].Image = h.opts.ImageBaseURL + "/images/" + result.DrawnCards[i].Image
	}

	log.Info("Cards drawn", "deck_size", req.DeckSize, "deck_reverse", req.DeckReverse,
		"requested", req.NumCards, "drawn", len(result.DrawnCards))
	h.writeJSON(w, log, http.StatusOK, result)
}

func (h *Handler) writeJSON(w http.ResponseWriter, log *slog.Logger, code int, data interface{}) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, log *slog.Logger, code int, kind, message string) {
	log.Warn("Rejected draw request", "status", code, "error", kind)
	h.writeJSON(w, log, code, errorResponse{Error: kind, Message: message})
}
