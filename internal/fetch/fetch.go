// Package fetch defines the source-fetcher contract and wires the per-store
// implementations behind the shared response cache.
package fetch

import (
	"context"
	"log/slog"

	"trendella-backend/internal/cache"
	"trendella-backend/internal/catalog"
	"trendella-backend/internal/config"
	"trendella-backend/internal/droplog"
	"trendella-backend/internal/marketplace"
	"trendella-backend/internal/model"
)

// Fetcher turns a query spec into normalized products from one marketplace.
// Implementations must not fail: any upstream problem is absorbed as an empty
// result with a logged warning.
type Fetcher interface {
	Store() model.Store
	Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct
}

// Registry maps stores to their fetchers.
type Registry struct {
	fetchers map[model.Store]Fetcher
}

// NewRegistry indexes fetchers by store. Later entries for the same store win.
func NewRegistry(fetchers ...Fetcher) *Registry {
	m := make(map[model.Store]Fetcher, len(fetchers))
	for _, f := range fetchers {
		m[f.Store()] = f
	}
	return &Registry{fetchers: m}
}

// Lookup returns the fetcher for store, if registered.
func (r *Registry) Lookup(store model.Store) (Fetcher, bool) {
	f, ok := r.fetchers[store]
	return f, ok
}

// BuildRegistry constructs the production fetcher set from configuration,
// each store wrapped in the shared response cache.
func BuildRegistry(cfg config.Config, logger *slog.Logger) *Registry {
	drops := droplog.NewStore(cfg.DropLogDir)
	shared := cache.New(cfg.CacheEntries, cfg.CacheTTL)

	amazon := NewAmazonFetcher(
		marketplace.NewAmazonClient(cfg.RapidAPIKey, cfg.RapidAPIAmazonHost, logger, drops),
		catalog.NewAmazon(cfg.AffiliateAmazonTag, logger),
		cfg.AffiliateAmazonTag,
		logger,
	)

	return NewRegistry(
		WithCache(amazon, shared),
		WithCache(catalog.NewAliExpress(cfg.AffiliateAliCampaignID, cfg.AffiliateAliAppID, logger), shared),
		WithCache(catalog.NewShein(cfg.AffiliateSheinSiteID, logger), shared),
		WithCache(marketplace.NewEbayClient(cfg.EbayAppID, cfg.AffiliateEbayCampaignID, logger, drops), shared),
		WithCache(marketplace.NewEtsyClient(cfg.EtsyAPIKey, logger, drops), shared),
		WithCache(marketplace.NewBestBuyClient(cfg.BestBuyAPIKey, logger, drops), shared),
	)
}
