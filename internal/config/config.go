package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting. Values come from the environment with
// the defaults the service shipped with; a .env file is loaded by the root
// command before FromEnv runs.
type Config struct {
	// Provider selection
	Provider    string // "gemini", "openai" or "ollama"
	GeminiModel string
	OpenAIModel string
	OllamaModel string

	// Google Custom Search (image resolution)
	GoogleAPIKey string
	GoogleCSEID  string

	// Processing limits
	MaxBatchSize int
	MaxRows      int
	Concurrency  int

	// Per-call ceiling for the external generation and search calls.
	CallTimeout time.Duration

	// Token cost settings
	USDToINR             float64
	InputCostPerMillion  float64
	OutputCostPerMillion float64

	// Completed tasks are evicted after this window.
	TaskRetention time.Duration

	// Optional YAML taxonomy of default attributes per category.
	TaxonomyPath string
}

// FromEnv builds a Config from the environment.
func FromEnv() Config {
	return Config{
		Provider:    getenv("ENRICHER_PROVIDER", "gemini"),
		GeminiModel: getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIModel: getenv("OPENAI_MODEL", "gpt-4o"),
		OllamaModel: getenv("OLLAMA_MODEL", "mistral-small3.2:24b"),

		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GoogleCSEID:  os.Getenv("GOOGLE_CSE_ID"),

		MaxBatchSize: getenvInt("MAX_BATCH_SIZE", 50),
		MaxRows:      getenvInt("MAX_ROWS_TO_PROCESS", 2000),
		Concurrency:  getenvInt("ROW_CONCURRENCY", 8),

		CallTimeout: getenvDuration("CALL_TIMEOUT", 60*time.Second),

		USDToINR:             getenvFloat("USD_TO_INR", 86.0),
		InputCostPerMillion:  getenvFloat("INPUT_TOKEN_COST_PER_MILLION", 0.10),
		OutputCostPerMillion: getenvFloat("OUTPUT_TOKEN_COST_PER_MILLION", 0.40),

		TaskRetention: getenvDuration("TASK_RETENTION", time.Hour),

		TaxonomyPath: os.Getenv("TAXONOMY_PATH"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
