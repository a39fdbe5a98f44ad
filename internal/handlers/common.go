package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lighthouse-data/enricher/internal/enrich"
	"github.com/lighthouse-data/enricher/internal/tasks"
)

// Handler carries the HTTP surface's dependencies.
type Handler struct {
	enricher    *enrich.Enricher
	coordinator *tasks.Coordinator
	maxRows     int
}

// New builds the HTTP handler set. maxRows caps how many rows of a bulk
// upload are processed.
func New(enricher *enrich.Enricher, coordinator *tasks.Coordinator, maxRows int) *Handler {
	return &Handler{
		enricher:    enricher,
		coordinator: coordinator,
		maxRows:     maxRows,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}
