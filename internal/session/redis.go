package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trendella-backend/internal/model"
)

const defaultTTL = time.Hour

// RedisStore keeps session memory in a Redis hash per session, field per
// composite product key, expiring after an hour of inactivity.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(addr string) *RedisStore {
	// redis/go-redis/v9: one hash per session.
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisStore{rdb: rdb, ttl: defaultTTL}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:products:%s", sessionID)
}

// Remember merges products into the session hash and refreshes the TTL.
func (s *RedisStore) Remember(ctx context.Context, sessionID string, products []model.NormalizedProduct) error {
	if len(products) == 0 {
		return nil
	}
	key := sessionKey(sessionID)

	fields := make(map[string]any, len(products))
	for _, product := range products {
		payload, err := json.Marshal(product)
		if err != nil {
			return fmt.Errorf("marshal product %s: %w", product.ID, err)
		}
		fields[compositeKey(product.Store, product.ID)] = payload
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session products: %w", err)
	}
	return nil
}

// Lookup recovers one remembered product. With a store the composite key is
// fetched directly; without one the whole hash is scanned for a matching id.
func (s *RedisStore) Lookup(ctx context.Context, sessionID, productID string, store model.Store) (model.NormalizedProduct, bool, error) {
	key := sessionKey(sessionID)

	if store != "" {
		val, err := s.rdb.HGet(ctx, key, compositeKey(store, productID)).Result()
		if err == redis.Nil {
			return model.NormalizedProduct{}, false, nil
		}
		if err != nil {
			return model.NormalizedProduct{}, false, fmt.Errorf("lookup session product: %w", err)
		}
		return decodeProduct(val)
	}

	fields, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return model.NormalizedProduct{}, false, fmt.Errorf("scan session products: %w", err)
	}
	for field, val := range fields {
		if keyMatchesID(field, productID) {
			return decodeProduct(val)
		}
	}
	return model.NormalizedProduct{}, false, nil
}

func decodeProduct(val string) (model.NormalizedProduct, bool, error) {
	var product model.NormalizedProduct
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return model.NormalizedProduct{}, false, fmt.Errorf("decode session product: %w", err)
	}
	return product, true, nil
}
