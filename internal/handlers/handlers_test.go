package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lighthouse-data/enricher/internal/enrich"
	"github.com/lighthouse-data/enricher/internal/extract"
	"github.com/lighthouse-data/enricher/internal/models"
	"github.com/lighthouse-data/enricher/internal/prompts"
	"github.com/lighthouse-data/enricher/internal/tasks"
)

type fakeExtractor struct {
	delay time.Duration
}

func (f *fakeExtractor) Extract(ctx context.Context, record models.ProductRecord, prompt string) (extract.Result, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return extract.Result{
		Attributes: map[string]string{"Material": "Copper"},
		Confidence: models.ConfidenceHigh,
		Usage:      models.TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

type fakeImages struct{}

func (fakeImages) Resolve(ctx context.Context, record models.ProductRecord) string {
	return "https://cdn.example.com/" + record.MPN + ".jpg"
}

func newTestHandler(t *testing.T, extractor *fakeExtractor) *Handler {
	t.Helper()
	taxonomy, err := prompts.LoadTaxonomy("")
	if err != nil {
		t.Fatal(err)
	}
	enricher := enrich.New(prompts.NewResolver(), taxonomy, extractor, fakeImages{}, 0, nil)
	store := tasks.NewStore(0)
	t.Cleanup(store.Close)
	coordinator := tasks.NewCoordinator(enricher, store, 50, 4, nil)
	return New(enricher, coordinator, 2000)
}

func TestHandleEnrich(t *testing.T) {
	h := newTestHandler(t, &fakeExtractor{})

	body := `{"mpn": "ABC123", "manufacturer": "Acme", "category": "Electrical", "attributes_to_extract": ["Material"]}`
	req := httptest.NewRequest("POST", "/api/v1/enrich", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleEnrich(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var result models.EnrichmentResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.MPN != "ABC123" || result.Attributes["Material"] != "Copper" {
		t.Errorf("result = %+v", result)
	}
	if result.Confidence != models.ConfidenceHigh {
		t.Errorf("confidence = %s", result.Confidence)
	}
}

func TestHandleEnrich_Errors(t *testing.T) {
	h := newTestHandler(t, &fakeExtractor{})

	tests := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{"wrong method", "GET", "", http.StatusMethodNotAllowed},
		{"invalid JSON", "POST", "{not json", http.StatusBadRequest},
		{"missing mpn", "POST", `{"manufacturer": "Acme"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/enrich", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.HandleEnrich(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func uploadRequest(t *testing.T, filename, contents string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(contents)); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/api/v1/bulk-enrich", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

const testCSV = `mfg_part_number,manufacturer_name,category
WH-1234,Acme,Plumbing
EL-5678,Volt Co,Electrical
`

func submitBulk(t *testing.T, h *Handler) models.BulkSubmission {
	t.Helper()
	w := httptest.NewRecorder()
	h.HandleBulkEnrich(w, uploadRequest(t, "products.csv", testCSV, map[string]string{
		"include_images": "true",
		"batch_size":     "2",
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("bulk submit status = %d, body: %s", w.Code, w.Body.String())
	}

	var submission models.BulkSubmission
	if err := json.NewDecoder(w.Body).Decode(&submission); err != nil {
		t.Fatal(err)
	}
	if submission.TaskID == "" || submission.TotalRows != 2 {
		t.Fatalf("submission = %+v", submission)
	}
	return submission
}

func getTask(h *Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.HandleTask(w, httptest.NewRequest("GET", path, nil))
	return w
}

func waitForTask(t *testing.T, h *Handler, taskID string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		w := getTask(h, "/api/v1/tasks/"+taskID)
		if w.Code != http.StatusOK {
			t.Fatalf("status poll returned %d: %s", w.Code, w.Body.String())
		}
		var snap models.TaskSnapshot
		if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
			t.Fatal(err)
		}
		if snap.State.Terminal() {
			if snap.State != models.TaskDone {
				t.Fatalf("task ended %s: %s", snap.State, snap.Error)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("task did not finish in time")
}

func TestBulkEnrichLifecycle(t *testing.T) {
	h := newTestHandler(t, &fakeExtractor{})

	submission := submitBulk(t, h)
	waitForTask(t, h, submission.TaskID)

	// Result rows come back in input order with images resolved.
	w := getTask(h, "/api/v1/tasks/"+submission.TaskID+"/result")
	if w.Code != http.StatusOK {
		t.Fatalf("result status = %d: %s", w.Code, w.Body.String())
	}
	var result models.TaskResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(result.Rows))
	}
	if result.Rows[0].MPN != "WH-1234" || result.Rows[1].MPN != "EL-5678" {
		t.Errorf("rows out of order: %s, %s", result.Rows[0].MPN, result.Rows[1].MPN)
	}
	if result.Rows[0].ImageURL != "https://cdn.example.com/WH-1234.jpg" {
		t.Errorf("image URL = %q", result.Rows[0].ImageURL)
	}
	if result.Totals.TotalTokens != 30 {
		t.Errorf("totals = %+v", result.Totals)
	}

	// Download serves the workbook as an attachment.
	w = getTask(h, "/api/v1/tasks/"+submission.TaskID+"/download")
	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, submission.TaskID) {
		t.Errorf("content disposition = %q", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("download body is empty")
	}
}

func TestHandleBulkEnrich_Errors(t *testing.T) {
	h := newTestHandler(t, &fakeExtractor{})

	t.Run("invalid batch size", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleBulkEnrich(w, uploadRequest(t, "products.csv", testCSV, map[string]string{"batch_size": "0"}))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("non-integer batch size", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleBulkEnrich(w, uploadRequest(t, "products.csv", testCSV, map[string]string{"batch_size": "many"}))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unsupported file type", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleBulkEnrich(w, uploadRequest(t, "products.pdf", "not a table", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/bulk-enrich", nil)
		w := httptest.NewRecorder()
		h.HandleBulkEnrich(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestHandleTask_Errors(t *testing.T) {
	h := newTestHandler(t, &fakeExtractor{delay: 200 * time.Millisecond})

	t.Run("unknown task", func(t *testing.T) {
		if w := getTask(h, "/api/v1/tasks/no-such-task"); w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("missing task id", func(t *testing.T) {
		if w := getTask(h, "/api/v1/tasks/"); w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("result before done", func(t *testing.T) {
		submission := submitBulk(t, h)
		if w := getTask(h, "/api/v1/tasks/"+submission.TaskID+"/result"); w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		submission := submitBulk(t, h)
		if w := getTask(h, "/api/v1/tasks/"+submission.TaskID+"/zip"); w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleTask(w, httptest.NewRequest("DELETE", "/api/v1/tasks/abc", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", w.Code)
		}
	})
}
