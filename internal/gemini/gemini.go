package gemini

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lighthouse-data/enricher/internal/providers"
)

// Gemini is a text-generation provider backed by Google Gemini.
type Gemini struct {
	model string
}

// New returns a new Gemini provider for the given model.
func New(model string) *Gemini {
	return &Gemini{model: model}
}

// Generate sends one prompt to Gemini and returns the response text with the
// token counts Gemini reported.
func (g *Gemini) Generate(ctx context.Context, prompt string) (providers.Generation, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("GEMINI_API_KEY environment variable not set"),
		}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("failed to create new gemini client: %w", err),
		}
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.0)
	model.SetTopP(0.9)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("failed to generate content: %w", err),
		}
	}

	if len(resp.Candidates) == 0 {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("no candidates returned from Gemini"),
		}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("empty content returned from Gemini"),
		}
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("unexpected response format from Gemini"),
		}
	}

	gen := providers.Generation{Text: string(txt)}
	if resp.UsageMetadata != nil {
		gen.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		gen.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return gen, nil
}
