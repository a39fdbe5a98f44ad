package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lighthouse-data/enricher/internal/models"
)

// HandleEnrich enriches a single product record synchronously.
func (h *Handler) HandleEnrich(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var record models.ProductRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if record.MPN == "" {
		h.writeError(w, "mpn is required", http.StatusBadRequest)
		return
	}

	result := h.enricher.Enrich(r.Context(), record)
	h.writeJSON(w, result)
}
