package providers

import (
	"context"
	"fmt"
)

// Generation is the raw output of one text-generation call, including the
// token counts the provider reported. Zero counts mean the provider did not
// report usage and the caller should estimate.
type Generation struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Generator is the external text-generation capability. Implementations make
// exactly one API call per Generate; retry policy belongs to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Generation, error)
}

// ImageCandidate is one hit from the image-search capability.
type ImageCandidate struct {
	URL          string
	ThumbnailURL string
	SourceURL    string
}

// ImageSearcher is the external image-search capability.
type ImageSearcher interface {
	SearchImages(ctx context.Context, query string) ([]ImageCandidate, error)
}

// GenerationError wraps a failed generation call (network, auth, quota).
// Parsing problems are never a GenerationError.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
