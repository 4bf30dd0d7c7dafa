package fetch

import (
	"context"

	"trendella-backend/internal/cache"
	"trendella-backend/internal/model"
)

// Cached decorates a fetcher with the shared response cache. Identical specs
// within the TTL window are served from memory without touching the upstream.
// Concurrent identical misses may each hit the upstream; only the eventual
// result is cached for later requests.
type Cached struct {
	inner Fetcher
	cache *cache.ProductCache
}

// WithCache wraps inner with the given cache.
func WithCache(inner Fetcher, c *cache.ProductCache) *Cached {
	return &Cached{inner: inner, cache: c}
}

// Store reports the wrapped fetcher's marketplace.
func (c *Cached) Store() model.Store { return c.inner.Store() }

// Fetch serves from cache when possible, otherwise delegates and caches.
func (c *Cached) Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct {
	key := cache.Key(string(c.inner.Store()), spec)
	if products, ok := c.cache.Get(key); ok {
		return products
	}
	products := c.inner.Fetch(ctx, spec)
	c.cache.Set(key, products)
	return products
}
