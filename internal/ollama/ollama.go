package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/lighthouse-data/enricher/internal/providers"
)

// Ollama is a text-generation provider backed by a local Ollama server.
// Ollama reports eval counts in its response, so no estimation is needed.
type Ollama struct {
	model  string
	client *http.Client
}

// New returns a new Ollama provider for the given model.
func New(model string) *Ollama {
	return &Ollama{model: model, client: &http.Client{}}
}

func host() string {
	ollamaHost := os.Getenv("OLLAMA_URL")
	if ollamaHost == "" {
		ollamaHost = os.Getenv("OLLAMA_HOST")
	}
	if ollamaHost == "" {
		ollamaHost = "http://localhost:11434"
	}
	return ollamaHost
}

// Generate sends one prompt to Ollama and returns the response text.
func (o *Ollama) Generate(ctx context.Context, prompt string) (providers.Generation, error) {
	requestBody := map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
		"options": map[string]interface{}{
			"temperature": 0.0,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "ollama",
			Err:      fmt.Errorf("failed to marshal request: %w", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", host()+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "ollama",
			Err:      fmt.Errorf("failed to create request: %w", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "ollama",
			Err:      fmt.Errorf("failed to call Ollama API: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return providers.Generation{}, &providers.GenerationError{
			Provider: "ollama",
			Err:      fmt.Errorf("ollama API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var ollamaResp struct {
		Response        string `json:"response"`
		PromptEvalCount int    `json:"prompt_eval_count"`
		EvalCount       int    `json:"eval_count"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "ollama",
			Err:      fmt.Errorf("failed to decode Ollama response: %w", err),
		}
	}

	return providers.Generation{
		Text:         ollamaResp.Response,
		InputTokens:  ollamaResp.PromptEvalCount,
		OutputTokens: ollamaResp.EvalCount,
	}, nil
}
