package wishlist

import (
	"context"
	"sync"

	"trendella-backend/internal/model"
)

// GuestStore holds wishlists for anonymous visitors in process memory. Lost
// on restart, which is acceptable for a pre-login cart-like surface.
type GuestStore struct {
	mu    sync.RWMutex
	lists map[string]map[string]model.NormalizedProduct
}

// NewGuestStore creates an empty guest wishlist store.
func NewGuestStore() *GuestStore {
	return &GuestStore{lists: make(map[string]map[string]model.NormalizedProduct)}
}

func (s *GuestStore) Save(_ context.Context, actorID string, product model.NormalizedProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[actorID]
	if !ok {
		list = make(map[string]model.NormalizedProduct)
		s.lists[actorID] = list
	}
	list[itemKey(product.Store, product.ID)] = product
	return nil
}

func (s *GuestStore) Remove(_ context.Context, actorID, productID string, store model.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[actorID]
	if !ok {
		return nil
	}
	if store != "" {
		delete(list, itemKey(store, productID))
		return nil
	}
	for key := range list {
		if itemKeyMatchesID(key, productID) {
			delete(list, key)
		}
	}
	return nil
}

func (s *GuestStore) List(_ context.Context, actorID string) ([]model.NormalizedProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.lists[actorID]
	out := make([]model.NormalizedProduct, 0, len(list))
	for _, product := range list {
		out = append(out, product)
	}
	return out, nil
}

// Drain returns the guest's products and deletes the list, for merge into a
// user wishlist at login.
func (s *GuestStore) Drain(_ context.Context, actorID string) ([]model.NormalizedProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[actorID]
	if !ok {
		return nil, nil
	}
	out := make([]model.NormalizedProduct, 0, len(list))
	for _, product := range list {
		out = append(out, product)
	}
	delete(s.lists, actorID)
	return out, nil
}
