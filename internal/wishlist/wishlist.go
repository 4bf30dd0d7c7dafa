// Package wishlist persists saved products per actor. Guests get an
// in-process store tied to their cookie id; signed-in users get a durable
// Redis-backed store, and a guest's items merge into it on login.
package wishlist

import (
	"context"
	"strings"

	"trendella-backend/internal/model"
)

// Store is a single actor-keyed wishlist backend. Saved products are
// independent snapshots; mutating a served product never changes a saved one.
type Store interface {
	Save(ctx context.Context, actorID string, product model.NormalizedProduct) error
	// Remove deletes by product id. An empty store removes the id from every
	// store it was saved under.
	Remove(ctx context.Context, actorID, productID string, store model.Store) error
	List(ctx context.Context, actorID string) ([]model.NormalizedProduct, error)
}

func itemKey(store model.Store, productID string) string {
	return string(store) + "|" + productID
}

func itemKeyMatchesID(key, productID string) bool {
	return strings.HasSuffix(key, "|"+productID)
}
