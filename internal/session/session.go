// Package session remembers the products served to a conversation so a later
// "add to wishlist" call can recover the exact ranked object without
// re-fetching.
package session

import (
	"context"
	"strings"

	"trendella-backend/internal/model"
)

// Store is the per-conversation product memory. Remember accumulates into the
// session's set (same composite key overwrites); Lookup recovers a product by
// id, with store empty meaning "any store carrying this id".
type Store interface {
	Remember(ctx context.Context, sessionID string, products []model.NormalizedProduct) error
	Lookup(ctx context.Context, sessionID, productID string, store model.Store) (model.NormalizedProduct, bool, error)
}

// compositeKey avoids cross-store collisions: two stores can both carry an
// item whose native id collides after normalization.
func compositeKey(store model.Store, productID string) string {
	return string(store) + "|" + productID
}

func keyMatchesID(key, productID string) bool {
	return strings.HasSuffix(key, "|"+productID)
}
