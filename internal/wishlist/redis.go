package wishlist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"trendella-backend/internal/model"
)

// RedisStore is the durable wishlist backend for signed-in users. One hash
// per user, field per store|id composite key, no expiry.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed user wishlist store.
func NewRedisStore(addr string) *RedisStore {
	// redis/go-redis/v9: user wishlists survive restarts, unlike guest lists.
	return &RedisStore{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func userKey(actorID string) string {
	return fmt.Sprintf("wishlist:user:%s", actorID)
}

func (s *RedisStore) Save(ctx context.Context, actorID string, product model.NormalizedProduct) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("marshal wishlist product %s: %w", product.ID, err)
	}
	if err := s.rdb.HSet(ctx, userKey(actorID), itemKey(product.Store, product.ID), payload).Err(); err != nil {
		return fmt.Errorf("save wishlist product: %w", err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, actorID, productID string, store model.Store) error {
	key := userKey(actorID)
	if store != "" {
		if err := s.rdb.HDel(ctx, key, itemKey(store, productID)).Err(); err != nil {
			return fmt.Errorf("remove wishlist product: %w", err)
		}
		return nil
	}

	fields, err := s.rdb.HKeys(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("list wishlist keys: %w", err)
	}
	var matched []string
	for _, field := range fields {
		if itemKeyMatchesID(field, productID) {
			matched = append(matched, field)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	if err := s.rdb.HDel(ctx, key, matched...).Err(); err != nil {
		return fmt.Errorf("remove wishlist products: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, actorID string) ([]model.NormalizedProduct, error) {
	fields, err := s.rdb.HGetAll(ctx, userKey(actorID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	out := make([]model.NormalizedProduct, 0, len(fields))
	for field, val := range fields {
		var product model.NormalizedProduct
		if err := json.Unmarshal([]byte(val), &product); err != nil {
			return nil, fmt.Errorf("decode wishlist product %s: %w", field, err)
		}
		out = append(out, product)
	}
	return out, nil
}
