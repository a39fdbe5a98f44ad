package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/lighthouse-data/enricher/internal/models"
	"github.com/lighthouse-data/enricher/internal/tabular"
	"github.com/lighthouse-data/enricher/internal/tasks"
)

// maxUploadBytes caps bulk file uploads at 25MB.
const maxUploadBytes = 25 * 1024 * 1024

// HandleBulkEnrich accepts a product table upload and submits it as a
// background task. The response carries the task identifier for polling.
func (h *Handler) HandleBulkEnrich(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(data) >= maxUploadBytes {
		h.writeError(w, "File too large (max 25MB)", http.StatusBadRequest)
		return
	}

	includeImages := strings.EqualFold(r.FormValue("include_images"), "true")

	batchSize := 50
	if v := r.FormValue("batch_size"); v != "" {
		batchSize, err = strconv.Atoi(v)
		if err != nil {
			h.writeError(w, "batch_size must be an integer", http.StatusBadRequest)
			return
		}
	}

	records, err := tabular.ParseFile(header.Filename, data)
	if err != nil {
		h.writeError(w, "Failed to parse input file: "+err.Error(), http.StatusBadRequest)
		return
	}

	if h.maxRows > 0 && len(records) > h.maxRows {
		records = records[:h.maxRows]
	}

	taskID, err := h.coordinator.Submit(records, includeImages, batchSize)
	if err != nil {
		if errors.Is(err, tasks.ErrInvalidBatchSize) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Failed to submit task: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, models.BulkSubmission{
		Status:    "processing",
		TaskID:    taskID,
		Message:   fmt.Sprintf("Processing %d rows in the background", len(records)),
		TotalRows: len(records),
		// Rough estimate used by clients to pick a polling interval.
		EstimatedSeconds: len(records) * 2,
	})
}
