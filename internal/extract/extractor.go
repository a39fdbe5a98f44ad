// Package extract turns one rendered prompt into a mapping of attribute
// values via the external generation capability. Parsing problems degrade the
// confidence label instead of failing; only the generation call itself can
// return an error.
package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lighthouse-data/enricher/internal/models"
	"github.com/lighthouse-data/enricher/internal/providers"
	"github.com/lighthouse-data/enricher/internal/tokencost"
)

// Result is the outcome of one extraction call.
type Result struct {
	Attributes map[string]string
	Confidence models.Confidence
	Usage      models.TokenUsage
	RawText    string
}

// Extractor invokes the generation capability exactly once per Extract call.
// Retries, if any, are the caller's policy.
type Extractor struct {
	generator providers.Generator
	pricing   tokencost.Pricing
	logger    *slog.Logger
}

// New returns an extractor over the given generator.
func New(generator providers.Generator, pricing tokencost.Pricing, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{generator: generator, pricing: pricing, logger: logger}
}

// Extract sends the prompt to the generator and parses the response into an
// attribute mapping. It errors only when the generation call fails.
func (x *Extractor) Extract(ctx context.Context, record models.ProductRecord, prompt string) (Result, error) {
	gen, err := x.generator.Generate(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("extract attributes for %s: %w", record.MPN, err)
	}

	inputTokens := gen.InputTokens
	outputTokens := gen.OutputTokens
	if inputTokens == 0 && outputTokens == 0 {
		// Provider did not report usage.
		inputTokens = tokencost.Estimate(prompt)
		outputTokens = tokencost.Estimate(gen.Text)
	}
	usage := x.pricing.Usage(inputTokens, outputTokens)

	parsed, ok := ParseAttributes(gen.Text)
	if !ok {
		x.logger.Warn("Could not parse attributes from model output, degrading to LOW",
			"mpn", record.MPN, "response_length", len(gen.Text))
		return Result{
			Attributes: map[string]string{},
			Confidence: models.ConfidenceLow,
			Usage:      usage,
			RawText:    gen.Text,
		}, nil
	}

	// Extra attributes the model discovered are kept alongside the
	// requested ones; only the requested list feeds the confidence score.
	return Result{
		Attributes: parsed,
		Confidence: scoreConfidence(parsed, record.Attributes),
		Usage:      usage,
		RawText:    gen.Text,
	}, nil
}

// scoreConfidence applies the coverage rules: when attributes were requested,
// the ratio of requested names that came back non-empty decides the label
// (>0.8 HIGH, >0.5 MEDIUM, else LOW). With no requested list, more than five
// extracted attributes rates MEDIUM.
func scoreConfidence(attributes map[string]string, requested []string) models.Confidence {
	if len(requested) == 0 {
		if len(attributes) > 5 {
			return models.ConfidenceMedium
		}
		return models.ConfidenceLow
	}

	var covered int
	for _, name := range requested {
		if attributes[name] != "" {
			covered++
		}
	}

	ratio := float64(covered) / float64(len(requested))
	switch {
	case ratio > 0.8:
		return models.ConfidenceHigh
	case ratio > 0.5:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
