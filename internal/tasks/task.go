package tasks

import (
	"sync"
	"time"

	"github.com/lighthouse-data/enricher/internal/models"
)

// BatchTask is the mutable rendezvous point for one bulk submission. Result
// slots are pre-sized to the row count and filled as rows complete, in
// whatever order they finish; every mutation happens under the task mutex.
type BatchTask struct {
	mu sync.Mutex

	id        string
	state     models.TaskState
	totalRows int
	completed int
	results   []models.EnrichmentResult
	totals    models.TokenUsage
	errMsg    string
	createdAt time.Time
	doneAt    time.Time
}

func newBatchTask(id string, totalRows int) *BatchTask {
	return &BatchTask{
		id:        id,
		state:     models.TaskPending,
		totalRows: totalRows,
		results:   make([]models.EnrichmentResult, totalRows),
		createdAt: time.Now(),
	}
}

// ID returns the task identifier.
func (t *BatchTask) ID() string { return t.id }

// Snapshot returns a read-only progress view.
func (t *BatchTask) Snapshot() models.TaskSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return models.TaskSnapshot{
		ID:            t.id,
		State:         t.state,
		TotalRows:     t.totalRows,
		CompletedRows: t.completed,
		Error:         t.errMsg,
		CreatedAt:     t.createdAt,
	}
}

// start moves the task from PENDING to RUNNING.
func (t *BatchTask) start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == models.TaskPending {
		t.state = models.TaskRunning
	}
}

// complete records one row's outcome in its original-index slot. Failed rows
// count toward completion but contribute nothing to the running totals.
func (t *BatchTask) complete(index int, result models.EnrichmentResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Terminal() || index < 0 || index >= len(t.results) {
		return
	}
	t.results[index] = result
	t.completed++
	if !result.Failed() {
		t.totals = t.totals.Add(result.TokenUsage)
	}
}

// finish transitions RUNNING to DONE. Terminal states are never left.
func (t *BatchTask) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Terminal() {
		return
	}
	t.state = models.TaskDone
	t.doneAt = time.Now()
}

// fail records an unrecoverable coordinator-level error. Row failures never
// reach here; they live in their result slots.
func (t *BatchTask) fail(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Terminal() {
		return
	}
	t.state = models.TaskFailed
	t.errMsg = msg
	t.doneAt = time.Now()
}

// result returns the ordered rows and totals once the task is DONE.
func (t *BatchTask) result() (models.TaskResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != models.TaskDone {
		return models.TaskResult{}, ErrTaskNotReady
	}
	rows := make([]models.EnrichmentResult, len(t.results))
	copy(rows, t.results)
	return models.TaskResult{TaskID: t.id, Rows: rows, Totals: t.totals}, nil
}

// expired reports whether a terminal task left the retention window.
func (t *BatchTask) expired(retention time.Duration, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Terminal() && !t.doneAt.IsZero() && now.Sub(t.doneAt) > retention
}
