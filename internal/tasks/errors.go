package tasks

import "errors"

var (
	// ErrInvalidBatchSize rejects a submission before any row is processed.
	// Batch sizes must be positive and no larger than the configured maximum.
	ErrInvalidBatchSize = errors.New("invalid batch size")

	// ErrTaskNotFound is returned for an unknown task identifier.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNotReady is returned when a result is requested before DONE.
	ErrTaskNotReady = errors.New("task is not done yet")
)
