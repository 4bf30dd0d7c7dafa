// Package trending maintains read models over the recommendation analytics
// stream: which search phrases and stores are being served right now. The
// models are eventually consistent; the request path never writes them.
package trending

import (
	"context"

	"trendella-backend/internal/model"
)

// Entry is one counted phrase or store in a read model.
type Entry struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

// Store accumulates served events and answers top-N queries.
type Store interface {
	RecordServed(ctx context.Context, event model.RecommendationServed) error
	TopPhrases(ctx context.Context, n int) ([]Entry, error)
	TopStores(ctx context.Context, n int) ([]Entry, error)
}
