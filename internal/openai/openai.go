package openai

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

// OpenAI is a text-generation provider backed by the chat completions API.
type OpenAI struct {
	model  string
	client *http.Client
}

// New returns a new OpenAI provider for the given model.
func New(model string) *OpenAI {
	return &OpenAI{model: model, client: &http.Client{}}
}

// Generate sends one prompt to OpenAI and returns the response text with the
// token counts from the usage block.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (providers.Generation, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "openai",
			Err:      fmt.Errorf("OPENAI_API_KEY environment variable not set"),
		}
	}

	url := "https://api.openai.com/v1/chat/completions"

	requestBody, err := json.Marshal(map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature":     0.0,
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "openai",
			Err:      fmt.Errorf("failed to marshal request body: %w", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "openai",
			Err:      fmt.Errorf("failed to create new request: %w", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "openai",
			Err:      fmt.Errorf("failed to send request: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return providers.Generation{}, &providers.GenerationError{
			Provider: "openai",
			Err:      fmt.Errorf("openAI API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var openaiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "openai",
			Err:      fmt.Errorf("failed to decode OpenAI response: %w", err),
		}
	}

	if len(openaiResp.Choices) == 0 {
		return providers.Generation{}, &providers.GenerationError{
			Provider: "openai",
			Err:      fmt.Errorf("no response from OpenAI"),
		}
	}

	return providers.Generation{
		Text:         openaiResp.Choices[0].Message.Content,
		InputTokens:  openaiResp.Usage.PromptTokens,
		OutputTokens: openaiResp.Usage.CompletionTokens,
	}, nil
}
