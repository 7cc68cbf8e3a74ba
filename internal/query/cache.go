// ABOUTME: TTL cache with in-flight request deduplication for query results
// ABOUTME: Keys are entity-family paths ("personal/all"); invalidation is by prefix

package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a cached result stays fresh before the next access
// triggers a refetch.
const DefaultTTL = 60 * time.Second

type cacheEntry struct {
	data      any
	fetchedAt time.Time
}

// Cache is a thread-safe TTL cache of query results. Concurrent fetches for
// the same key share a single in-flight request.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	group   singleflight.Group
}

// NewCache creates a cache. A non-positive ttl selects DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// fetch returns the cached value for key when fresh, otherwise runs fn and
// stores its result. At most one fn runs per key at a time; concurrent
// callers share the result.
func (c *Cache) fetch(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Since(e.fetchedAt) < c.ttl {
		return e.data, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A caller we queued behind may have refreshed the entry already.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && time.Since(e.fetchedAt) < c.ttl {
			return e.data, nil
		}

		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{data: v, fetchedAt: time.Now()}
		c.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Invalidate drops the entries for the given exact keys.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// InvalidatePrefix drops every entry whose key starts with prefix. Entity
// mutations use this to invalidate the whole key family ("personal"
// covers both "personal/all" and "personal/INVESTIGADOR"), so reads issued
// after a mutation always observe the change.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}
