package trending

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"trendella-backend/internal/model"
)

const (
	phrasesKey = "trending:phrases"
	storesKey  = "trending:stores"
)

// RedisStore keeps the trending counters in two sorted sets so top-N reads
// stay a single ZREVRANGE regardless of cardinality.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects the trending counters to Redis at addr.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// RecordServed bumps every phrase and store counter from one event.
func (s *RedisStore) RecordServed(ctx context.Context, event model.RecommendationServed) error {
	// redis/go-redis/v9: ZIncrBy on a sorted set keeps members ordered by
	// count, so the read side never sorts.
	pipe := s.client.TxPipeline()
	for _, phrase := range event.SearchPhrases {
		pipe.ZIncrBy(ctx, phrasesKey, 1, phrase)
	}
	for _, store := range event.Stores {
		pipe.ZIncrBy(ctx, storesKey, 1, store)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record served event: %w", err)
	}
	return nil
}

// TopPhrases returns the n highest-count phrases, most served first.
func (s *RedisStore) TopPhrases(ctx context.Context, n int) ([]Entry, error) {
	return s.top(ctx, phrasesKey, n)
}

// TopStores returns the n highest-count stores, most served first.
func (s *RedisStore) TopStores(ctx context.Context, n int) ([]Entry, error) {
	return s.top(ctx, storesKey, n)
}

func (s *RedisStore) top(ctx context.Context, key string, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	members, err := s.client.ZRevRangeWithScores(ctx, key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read trending %s: %w", key, err)
	}
	entries := make([]Entry, 0, len(members))
	for _, member := range members {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Name: name, Count: member.Score})
	}
	return entries, nil
}
