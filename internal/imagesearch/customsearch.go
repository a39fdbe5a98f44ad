package imagesearch

import (
	"context"
	"fmt"
	"strings"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/lighthouse-data/enricher/internal/providers"
)

// GoogleSearcher searches product images via the Google Custom Search API.
type GoogleSearcher struct {
	apiKey string
	cseID  string
}

// NewGoogleSearcher returns a searcher for the given API key and search
// engine ID.
func NewGoogleSearcher(apiKey, cseID string) *GoogleSearcher {
	return &GoogleSearcher{apiKey: apiKey, cseID: cseID}
}

// SearchImages runs one image search and returns the candidate URLs in
// ranking order.
func (g *GoogleSearcher) SearchImages(ctx context.Context, query string) ([]providers.ImageCandidate, error) {
	if g.apiKey == "" || g.cseID == "" {
		return nil, fmt.Errorf("google custom search is not configured")
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}

	resp, err := svc.Cse.List().
		Q(query).
		Cx(g.cseID).
		SearchType("image").
		ImgType("photo").
		FileType("jpg|png").
		Num(10).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("image search request failed: %w", err)
	}

	var candidates []providers.ImageCandidate
	for _, item := range resp.Items {
		// x-raw-image: links show up for some PDF results and are unusable.
		if item.Link == "" || strings.HasPrefix(item.Link, "x-raw-image:") {
			continue
		}
		candidate := providers.ImageCandidate{URL: item.Link}
		if item.Image != nil {
			candidate.ThumbnailURL = item.Image.ThumbnailLink
			candidate.SourceURL = item.Image.ContextLink
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}
