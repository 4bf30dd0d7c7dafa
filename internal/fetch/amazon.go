package fetch

import (
	"context"
	"log/slog"
	"net/url"

	"trendella-backend/internal/catalog"
	"trendella-backend/internal/marketplace"
	"trendella-backend/internal/model"
	"trendella-backend/internal/sanitize"
)

const fallbackAmazonTag = "trendella-20"

// AmazonFetcher prefers live RapidAPI results and falls back to the curated
// catalog when the API is unconfigured or comes back empty.
type AmazonFetcher struct {
	live         *marketplace.AmazonClient
	catalog      *catalog.Fetcher
	affiliateTag string
	logger       *slog.Logger
}

// NewAmazonFetcher composes the live client and the catalog fallback.
func NewAmazonFetcher(live *marketplace.AmazonClient, fallback *catalog.Fetcher, affiliateTag string, logger *slog.Logger) *AmazonFetcher {
	if affiliateTag == "" {
		affiliateTag = fallbackAmazonTag
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AmazonFetcher{live: live, catalog: fallback, affiliateTag: affiliateTag, logger: logger}
}

// Store reports which marketplace this fetcher serves.
func (f *AmazonFetcher) Store() model.Store { return model.StoreAmazon }

// Fetch tries the live API first, decorating each result with the affiliate
// tag, then falls back to the curated catalog.
func (f *AmazonFetcher) Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct {
	if f.live != nil && f.live.Configured() {
		products := f.live.Fetch(ctx, spec)
		if len(products) > 0 {
			return f.withAffiliateTags(products)
		}
		f.logger.Info("no live amazon results, falling back to curated catalog")
	}
	return f.catalog.Fetch(ctx, spec)
}

func (f *AmazonFetcher) withAffiliateTags(products []model.NormalizedProduct) []model.NormalizedProduct {
	out := make([]model.NormalizedProduct, 0, len(products))
	for _, p := range products {
		u, err := url.Parse(p.AffiliateURL)
		if err != nil {
			f.logger.Warn("invalid affiliate URL from live amazon search", slog.String("id", p.ID))
			continue
		}
		q := u.Query()
		if q.Get("tag") == "" {
			q.Set("tag", f.affiliateTag)
			u.RawQuery = q.Encode()
			p.AffiliateURL = sanitize.AffiliateURL(u.String())
		}
		out = append(out, p)
	}
	return out
}
