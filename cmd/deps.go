package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lighthouse-data/enricher/internal/config"
	"github.com/lighthouse-data/enricher/internal/enrich"
	"github.com/lighthouse-data/enricher/internal/extract"
	"github.com/lighthouse-data/enricher/internal/gemini"
	"github.com/lighthouse-data/enricher/internal/imagesearch"
	"github.com/lighthouse-data/enricher/internal/ollama"
	"github.com/lighthouse-data/enricher/internal/openai"
	"github.com/lighthouse-data/enricher/internal/prompts"
	"github.com/lighthouse-data/enricher/internal/providers"
	"github.com/lighthouse-data/enricher/internal/tokencost"
)

// buildEnricher wires the per-record pipeline from configuration. Shared by
// the serve command and the one-off enrich command.
func buildEnricher(cfg config.Config) (*enrich.Enricher, error) {
	var generator providers.Generator
	switch cfg.Provider {
	case "gemini":
		generator = gemini.New(cfg.GeminiModel)
	case "openai":
		generator = openai.New(cfg.OpenAIModel)
	case "ollama":
		generator = ollama.New(cfg.OllamaModel)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}

	taxonomy, err := prompts.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	pricing := tokencost.Pricing{
		InputPerMillion:  cfg.InputCostPerMillion,
		OutputPerMillion: cfg.OutputCostPerMillion,
		USDToINR:         cfg.USDToINR,
	}

	extractor := extract.New(generator, pricing, slog.Default())
	searcher := imagesearch.NewGoogleSearcher(cfg.GoogleAPIKey, cfg.GoogleCSEID)
	images := imagesearch.NewResolver(searcher, slog.Default())

	return enrich.New(prompts.NewResolver(), taxonomy, extractor, images, cfg.CallTimeout, slog.Default()), nil
}
