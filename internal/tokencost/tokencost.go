package tokencost

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/lighthouse-data/enricher/internal/models"
)

// Pricing converts token counts into a monetary cost. Rates are USD per one
// million tokens; the factor converts the USD total into INR.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
	USDToINR         float64
}

// Usage builds a TokenUsage from raw counts.
func (p Pricing) Usage(inputTokens, outputTokens int) models.TokenUsage {
	inputUSD := float64(inputTokens) / 1_000_000 * p.InputPerMillion
	outputUSD := float64(outputTokens) / 1_000_000 * p.OutputPerMillion
	return models.TokenUsage{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
		CostINR:      (inputUSD + outputUSD) * p.USDToINR,
	}
}

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// Estimate counts the tokens in text. Providers that report usage make this
// unnecessary; it backs up the ones that do not. Falls back to the rough
// four-characters-per-token heuristic if the encoding cannot be loaded.
func Estimate(text string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return len(text) / 4
	}
	return len(encoding.Encode(text, nil, nil))
}
