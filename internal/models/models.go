package models

import "time"

// Confidence is a coarse reliability label on extracted attributes.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// ProductRecord identifies one enrichment unit. One per input row, immutable.
type ProductRecord struct {
	MPN           string   `json:"mpn"`
	Manufacturer  string   `json:"manufacturer,omitempty"`
	Category      string   `json:"category,omitempty"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Attributes    []string `json:"attributes_to_extract,omitempty"`
	IncludeImages bool     `json:"include_images"`
}

// CatSubcat returns the "category,subcategory" pair used in prompts, or an
// empty string when either half is missing.
func (r ProductRecord) CatSubcat() string {
	if r.Category == "" || r.Subcategory == "" {
		return ""
	}
	return r.Category + "," + r.Subcategory
}

// TokenUsage records the language-model units consumed by one extraction call.
type TokenUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalTokens  int     `json:"total_tokens"`
	CostINR      float64 `json:"cost_inr"`
}

// Add returns the element-wise sum of u and v.
func (u TokenUsage) Add(v TokenUsage) TokenUsage {
	return TokenUsage{
		InputTokens:  u.InputTokens + v.InputTokens,
		OutputTokens: u.OutputTokens + v.OutputTokens,
		TotalTokens:  u.TotalTokens + v.TotalTokens,
		CostINR:      u.CostINR + v.CostINR,
	}
}

// EnrichmentResult is the outcome for one ProductRecord: either a success
// payload or a failure payload, never both.
type EnrichmentResult struct {
	MPN          string `json:"mpn"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Category     string `json:"category,omitempty"`
	Subcategory  string `json:"subcategory,omitempty"`

	Attributes          map[string]string `json:"attributes,omitempty"`
	RequestedAttributes []string          `json:"requested_attributes,omitempty"`
	Confidence          Confidence        `json:"confidence,omitempty"`
	ImageURL            string            `json:"image_url,omitempty"`
	RawResponse         string            `json:"raw_response,omitempty"`
	TokenUsage          TokenUsage        `json:"token_data"`

	Error string `json:"error,omitempty"`

	ProcessingSeconds float64 `json:"processing_time_seconds"`
}

// Failed reports whether this row ended in a per-row failure.
func (r EnrichmentResult) Failed() bool { return r.Error != "" }

// TaskState is the lifecycle state of one bulk submission.
type TaskState string

const (
	TaskPending TaskState = "PENDING"
	TaskRunning TaskState = "RUNNING"
	TaskDone    TaskState = "DONE"
	TaskFailed  TaskState = "FAILED"
)

// Terminal reports whether no further transition can leave this state.
func (s TaskState) Terminal() bool { return s == TaskDone || s == TaskFailed }

// TaskSnapshot is a read-only view of a task's progress for polling.
type TaskSnapshot struct {
	ID            string    `json:"task_id"`
	State         TaskState `json:"state"`
	TotalRows     int       `json:"total_rows"`
	CompletedRows int       `json:"completed_rows"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BulkSubmission is the response returned when a bulk file is accepted.
type BulkSubmission struct {
	Status           string `json:"status"`
	TaskID           string `json:"task_id"`
	Message          string `json:"message"`
	TotalRows        int    `json:"total_rows"`
	EstimatedSeconds int    `json:"estimated_time_seconds"`
}

// TaskResult is the aggregate exposed once a task reaches DONE.
type TaskResult struct {
	TaskID string             `json:"task_id"`
	Rows   []EnrichmentResult `json:"rows"`
	Totals TokenUsage         `json:"totals"`
}
