// Package tasks drives bulk enrichment: it partitions submitted records into
// batches, fans each batch's rows out to the record enricher under a
// concurrency bound, and reassembles results in input order on a BatchTask.
package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lighthouse-data/enricher/internal/models"
)

// RecordEnricher is the per-record unit of work. Implementations never
// return an error; per-row failures are encoded in the result.
type RecordEnricher interface {
	Enrich(ctx context.Context, record models.ProductRecord) models.EnrichmentResult
}

// Coordinator owns task submission, execution and querying.
type Coordinator struct {
	enricher     RecordEnricher
	store        *Store
	maxBatchSize int
	concurrency  int
	logger       *slog.Logger
}

// NewCoordinator wires a coordinator. concurrency is the internal per-batch
// fan-out bound; it is additionally capped at the batch size per submission.
func NewCoordinator(enricher RecordEnricher, store *Store, maxBatchSize, concurrency int, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Coordinator{
		enricher:     enricher,
		store:        store,
		maxBatchSize: maxBatchSize,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// Submit validates the batch size, registers a new task and hands the work
// off to a background goroutine. It returns the task identifier immediately;
// nothing has been processed yet when it returns.
func (c *Coordinator) Submit(records []models.ProductRecord, includeImages bool, batchSize int) (string, error) {
	if batchSize <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	if c.maxBatchSize > 0 && batchSize > c.maxBatchSize {
		return "", fmt.Errorf("%w: got %d, max is %d", ErrInvalidBatchSize, batchSize, c.maxBatchSize)
	}

	for i := range records {
		records[i].IncludeImages = includeImages
	}

	task := newBatchTask(uuid.NewString(), len(records))
	c.store.Put(task)

	c.logger.Info("Submitted bulk task",
		"task_id", task.ID(), "rows", len(records), "batch_size", batchSize)

	go c.run(task, records, batchSize)

	return task.ID(), nil
}

// Status returns a progress snapshot for the task.
func (c *Coordinator) Status(taskID string) (models.TaskSnapshot, error) {
	task, ok := c.store.Get(taskID)
	if !ok {
		return models.TaskSnapshot{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return task.Snapshot(), nil
}

// Result returns the ordered rows and aggregate totals once the task is DONE.
func (c *Coordinator) Result(taskID string) (models.TaskResult, error) {
	task, ok := c.store.Get(taskID)
	if !ok {
		return models.TaskResult{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return task.result()
}

// run processes all batches and finishes the task. The submitter has already
// disengaged, so anything that escapes the per-row boundary is caught here
// and recorded on the task instead of raised.
func (c *Coordinator) run(task *BatchTask, records []models.ProductRecord, batchSize int) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Coordinator failure", "task_id", task.ID(), "panic", r)
			task.fail(fmt.Sprintf("coordinator failure: %v", r))
		}
	}()

	task.start()
	ctx := context.Background()

	total := len(records)
	for batchStart := 0; batchStart < total; batchStart += batchSize {
		batchEnd := min(batchStart+batchSize, total)
		c.logger.Info("Processing batch",
			"task_id", task.ID(), "from", batchStart, "to", batchEnd)

		g := new(errgroup.Group)
		g.SetLimit(min(c.concurrency, batchSize))
		for i := batchStart; i < batchEnd; i++ {
			g.Go(func() error {
				task.complete(i, c.enricher.Enrich(ctx, records[i]))
				return nil
			})
		}
		// Rows never return errors, so Wait is purely a join point.
		_ = g.Wait()
	}

	task.finish()

	snap := task.Snapshot()
	c.logger.Info("Bulk task complete",
		"task_id", task.ID(),
		"rows", snap.TotalRows,
		"completed", snap.CompletedRows)
}
