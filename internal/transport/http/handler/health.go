package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health-check endpoints.
type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler { return &HealthHandler{db: db} }

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "ping":
		writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "pong"})
	case "db":
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if h.db == nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		if err := h.db.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "database health check failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "ok"})
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
