package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lighthouse-data/enricher/internal/assemble"
	"github.com/lighthouse-data/enricher/internal/tasks"
)

// HandleTask serves task endpoints under /api/v1/tasks/:
//
//	GET {id}           progress snapshot
//	GET {id}/result    ordered rows + totals as JSON (DONE only)
//	GET {id}/download  XLSX artifact (DONE only)
func (h *Handler) HandleTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/tasks/")
	taskID, action, _ := strings.Cut(rest, "/")
	if taskID == "" {
		h.writeError(w, "Task ID is required", http.StatusBadRequest)
		return
	}

	switch action {
	case "":
		h.taskStatus(w, taskID)
	case "result":
		h.taskResult(w, taskID)
	case "download":
		h.taskDownload(w, taskID)
	default:
		h.writeError(w, "Unknown task action: "+action, http.StatusNotFound)
	}
}

func (h *Handler) taskStatus(w http.ResponseWriter, taskID string) {
	snapshot, err := h.coordinator.Status(taskID)
	if err != nil {
		h.writeTaskError(w, err)
		return
	}
	h.writeJSON(w, snapshot)
}

func (h *Handler) taskResult(w http.ResponseWriter, taskID string) {
	result, err := h.coordinator.Result(taskID)
	if err != nil {
		h.writeTaskError(w, err)
		return
	}
	h.writeJSON(w, result)
}

func (h *Handler) taskDownload(w http.ResponseWriter, taskID string) {
	result, err := h.coordinator.Result(taskID)
	if err != nil {
		h.writeTaskError(w, err)
		return
	}

	workbook, err := assemble.Workbook(result)
	if err != nil {
		h.writeError(w, "Failed to assemble workbook: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "enriched_"+taskID+".xlsx"))
	if _, err := w.Write(workbook); err != nil {
		h.writeError(w, "Failed to write workbook: "+err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		h.writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, tasks.ErrTaskNotReady):
		h.writeError(w, err.Error(), http.StatusConflict)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}
