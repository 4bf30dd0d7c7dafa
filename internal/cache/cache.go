// Package cache provides the in-process response cache the source fetchers
// share. Entries are keyed by a content hash of (store namespace, query spec)
// and evicted least-recently-used once capacity is reached.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"trendella-backend/internal/model"
)

type entry struct {
	key       string
	products  []model.NormalizedProduct
	prev      *entry
	next      *entry
	expiresAt time.Time
}

// ProductCache is a thread-safe LRU cache with TTL support. Get, Set, and
// eviction are all O(1); expired entries are dropped lazily on access.
type ProductCache struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration

	items map[string]*entry

	// head.next is the most recently used, tail.prev the least.
	head *entry
	tail *entry
}

// New creates a cache with the given capacity and time-to-live.
func New(capacity int, ttl time.Duration) *ProductCache {
	if capacity <= 0 {
		capacity = 128
	}
	if ttl <= 0 {
		ttl = 20 * time.Minute
	}

	c := &ProductCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry, capacity),
		head:     &entry{},
		tail:     &entry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Key derives the cache key for a spec within a store namespace. Identical
// specs always hash identically, so repeated requests inside the TTL window
// hit the same entry.
func Key(namespace string, spec model.ProductQuerySpec) string {
	payload, err := json.Marshal(spec)
	if err != nil {
		// Spec is a plain struct; marshalling cannot realistically fail, but a
		// distinct key keeps a broken spec from aliasing a healthy one.
		payload = []byte(fmt.Sprintf("%+v", spec))
	}
	sum := sha256.Sum256(append([]byte(namespace+"|"), payload...))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached products for key, or nil when absent or expired.
// Found entries are promoted to most recently used.
func (c *ProductCache) Get(key string) ([]model.NormalizedProduct, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.remove(e)
		return nil, false
	}
	c.moveToFront(e)
	return e.products, true
}

// Set stores products under key, evicting the least recently used entry when
// the cache is full.
func (c *ProductCache) Set(key string, products []model.NormalizedProduct) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.products = products
		e.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(e)
		return
	}

	if len(c.items) >= c.capacity {
		c.remove(c.tail.prev)
	}

	e := &entry{
		key:       key,
		products:  products,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = e
	c.pushFront(e)
}

// Len reports the number of live entries, expired ones included until touched.
func (c *ProductCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *ProductCache) pushFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *ProductCache) moveToFront(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.pushFront(e)
}

func (c *ProductCache) remove(e *entry) {
	if e == c.head || e == c.tail {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}
