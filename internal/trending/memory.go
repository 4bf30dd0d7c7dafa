package trending

import (
	"context"
	"sort"
	"sync"

	"trendella-backend/internal/model"
)

// MemoryStore is the in-process trending store used when Redis is not
// configured. Counters reset on restart.
type MemoryStore struct {
	mu      sync.Mutex
	phrases map[string]float64
	stores  map[string]float64
}

// NewMemoryStore creates an empty in-memory trending store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		phrases: make(map[string]float64),
		stores:  make(map[string]float64),
	}
}

// RecordServed bumps every phrase and store counter from one event.
func (s *MemoryStore) RecordServed(ctx context.Context, event model.RecommendationServed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, phrase := range event.SearchPhrases {
		s.phrases[phrase]++
	}
	for _, store := range event.Stores {
		s.stores[store]++
	}
	return nil
}

// TopPhrases returns the n highest-count phrases, most served first.
func (s *MemoryStore) TopPhrases(ctx context.Context, n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return topOf(s.phrases, n), nil
}

// TopStores returns the n highest-count stores, most served first.
func (s *MemoryStore) TopStores(ctx context.Context, n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return topOf(s.stores, n), nil
}

// topOf sorts by count descending, name ascending on ties so output is stable.
func topOf(counts map[string]float64, n int) []Entry {
	if n <= 0 {
		return nil
	}
	entries := make([]Entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, Entry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
