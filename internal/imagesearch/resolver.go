// Package imagesearch resolves a product record to zero or one image URL.
// Resolution is best-effort: every failure of the underlying search surfaces
// as "no image", never as an error.
package imagesearch

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/lighthouse-data/enricher/internal/models"
	"github.com/lighthouse-data/enricher/internal/providers"
)

// Resolver picks an image URL for a record using an ImageSearcher.
type Resolver struct {
	searcher providers.ImageSearcher
	logger   *slog.Logger
}

// NewResolver returns a resolver over the given searcher.
func NewResolver(searcher providers.ImageSearcher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{searcher: searcher, logger: logger}
}

// Resolve returns an image URL for the record, or "" when none was found.
// Candidates hosted on the manufacturer's own site win over earlier hits.
func (r *Resolver) Resolve(ctx context.Context, record models.ProductRecord) string {
	query := buildQuery(record)

	candidates, err := r.searcher.SearchImages(ctx, query)
	if err != nil {
		r.logger.Warn("Image search failed, continuing without image",
			"mpn", record.MPN, "error", err)
		return ""
	}

	return pickCandidate(candidates, record.Manufacturer)
}

func buildQuery(record models.ProductRecord) string {
	parts := []string{record.MPN, "product"}
	if record.Manufacturer != "" {
		parts = append(parts, record.Manufacturer)
	}
	if record.Category != "" {
		parts = append(parts, record.Category)
	}
	return strings.Join(parts, " ")
}

// pickCandidate prefers an image whose source page mentions the manufacturer,
// then falls back to the first candidate with a usable web URL.
func pickCandidate(candidates []providers.ImageCandidate, manufacturer string) string {
	if manufacturer != "" {
		needle := strings.ToLower(manufacturer)
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.SourceURL), needle) && validURL(c.URL) {
				return c.URL
			}
		}
	}
	for _, c := range candidates {
		if validURL(c.URL) {
			return c.URL
		}
	}
	return ""
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
