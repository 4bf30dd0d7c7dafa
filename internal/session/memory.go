package session

import (
	"context"
	"sync"
	"time"

	"trendella-backend/internal/model"
)

// MemoryStore is the in-process fallback used when Redis is not configured.
// Entries expire lazily on lookup.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	products  map[string]model.NormalizedProduct
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      defaultTTL,
		now:      time.Now,
	}
}

func (s *MemoryStore) Remember(_ context.Context, sessionID string, products []model.NormalizedProduct) error {
	if len(products) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || s.now().After(entry.expiresAt) {
		entry = memoryEntry{products: make(map[string]model.NormalizedProduct)}
	}
	for _, product := range products {
		entry.products[compositeKey(product.Store, product.ID)] = product
	}
	entry.expiresAt = s.now().Add(s.ttl)
	s.sessions[sessionID] = entry
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, sessionID, productID string, store model.Store) (model.NormalizedProduct, bool, error) {
	// Full lock: entry.products is shared with Remember, and an expired
	// entry is deleted here.
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return model.NormalizedProduct{}, false, nil
	}

	if s.now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return model.NormalizedProduct{}, false, nil
	}

	if store != "" {
		product, ok := entry.products[compositeKey(store, productID)]
		return product, ok, nil
	}
	for key, product := range entry.products {
		if keyMatchesID(key, productID) {
			return product, true, nil
		}
	}
	return model.NormalizedProduct{}, false, nil
}
