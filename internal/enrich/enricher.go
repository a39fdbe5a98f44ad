// Package enrich implements the per-record unit of work: resolve the prompt
// template, run attribute extraction, optionally resolve an image, and merge
// everything into a single EnrichmentResult. Enrich never lets an error
// escape its own boundary; failures become failure results.
package enrich

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/lighthouse-data/enricher/internal/extract"
	"github.com/lighthouse-data/enricher/internal/models"
	"github.com/lighthouse-data/enricher/internal/prompts"
)

// AttributeExtractor is the extraction stage contract.
type AttributeExtractor interface {
	Extract(ctx context.Context, record models.ProductRecord, prompt string) (extract.Result, error)
}

// ImageResolver is the image-resolution stage contract. Implementations
// return "" rather than an error when no image is available.
type ImageResolver interface {
	Resolve(ctx context.Context, record models.ProductRecord) string
}

// Enricher enriches one product record at a time. It is stateless and safe
// for concurrent use.
type Enricher struct {
	templates   *prompts.Resolver
	taxonomy    *prompts.Taxonomy
	extractor   AttributeExtractor
	images      ImageResolver
	callTimeout time.Duration
	logger      *slog.Logger
}

// New wires an Enricher from its collaborators. callTimeout caps each of the
// two external calls individually; zero means no ceiling.
func New(templates *prompts.Resolver, taxonomy *prompts.Taxonomy, extractor AttributeExtractor, images ImageResolver, callTimeout time.Duration, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{
		templates:   templates,
		taxonomy:    taxonomy,
		extractor:   extractor,
		images:      images,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// Enrich produces the EnrichmentResult for one record. Extraction failure
// yields a failure result; image resolution runs concurrently and its outcome
// is discarded when extraction fails.
func (e *Enricher) Enrich(ctx context.Context, record models.ProductRecord) models.EnrichmentResult {
	start := time.Now()

	if record.Category == "" {
		record.Category = "Generic"
	}

	requested := record.Attributes
	if len(requested) == 0 {
		requested = e.taxonomy.DefaultAttributes(record.Category)
	}
	// The extractor scores coverage against the same list the prompt asks
	// for, taxonomy defaults included. record is a copy, so this mutation
	// stays local.
	record.Attributes = requested

	result := models.EnrichmentResult{
		MPN:                 record.MPN,
		Manufacturer:        record.Manufacturer,
		Category:            record.Category,
		Subcategory:         record.Subcategory,
		RequestedAttributes: requested,
	}

	template := e.templates.Resolve(record.Category)
	prompt, err := template.Render(record, requested)
	if err != nil {
		result.Error = err.Error()
		result.ProcessingSeconds = elapsed(start)
		return result
	}

	// Image lookup is independent of extraction, so it runs alongside it.
	imageCh := make(chan string, 1)
	if record.IncludeImages {
		go func() {
			imgCtx, cancel := e.callContext(ctx)
			defer cancel()
			imageCh <- e.images.Resolve(imgCtx, record)
		}()
	} else {
		imageCh <- ""
	}

	genCtx, cancel := e.callContext(ctx)
	extracted, err := e.extractor.Extract(genCtx, record, prompt)
	cancel()
	if err != nil {
		e.logger.Error("Attribute extraction failed", "mpn", record.MPN, "error", err)
		result.Error = err.Error()
		result.ProcessingSeconds = elapsed(start)
		return result
	}

	result.Attributes = extracted.Attributes
	result.Confidence = extracted.Confidence
	result.TokenUsage = extracted.Usage
	result.RawResponse = extracted.RawText
	result.ImageURL = <-imageCh
	result.ProcessingSeconds = elapsed(start)

	e.logger.Info("Enriched record",
		"mpn", record.MPN,
		"template", template.Name(),
		"confidence", result.Confidence,
		"attributes", len(result.Attributes),
		"seconds", result.ProcessingSeconds)

	return result
}

func (e *Enricher) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.callTimeout)
}

func elapsed(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}
