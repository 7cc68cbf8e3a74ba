// ABOUTME: Query and Mutation primitives over the cache
// ABOUTME: Pages read Query views and write through Mutations that invalidate

package query

import (
	"context"
	"sync"
	"sync/atomic"
)

// Query binds one fetch function to a cache key and tracks the view state
// pages render from: the last-known value, a loading flag and an error flag.
type Query[T any] struct {
	cache *Cache
	key   string
	fetch func(context.Context) (T, error)

	mu      sync.Mutex
	last    T
	loading bool
	failed  bool
}

// NewQuery creates a query for the given key.
func NewQuery[T any](cache *Cache, key string, fetch func(context.Context) (T, error)) *Query[T] {
	return &Query[T]{cache: cache, key: key, fetch: fetch}
}

// Get returns the value for this query's key, fetching it through the cache
// when no fresh result exists. On failure the last-known value is returned
// alongside the error, so pages can keep rendering stale data.
func (q *Query[T]) Get(ctx context.Context) (T, error) {
	q.mu.Lock()
	q.loading = true
	q.mu.Unlock()

	v, err := q.cache.fetch(ctx, q.key, func(ctx context.Context) (any, error) {
		return q.fetch(ctx)
	})

	q.mu.Lock()
	defer q.mu.Unlock()
	q.loading = false
	if err != nil {
		q.failed = true
		return q.last, err
	}
	q.failed = false
	q.last = v.(T)
	return q.last, nil
}

// Last returns the last successfully fetched value without touching the
// cache. Before the first resolution it is the zero value (an empty list).
func (q *Query[T]) Last() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.last
}

// Loading reports whether a Get is currently in flight.
func (q *Query[T]) Loading() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loading
}

// Failed reports whether the most recent Get returned an error.
func (q *Query[T]) Failed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.failed
}

// Refetch invalidates this query's cache entry and fetches again.
func (q *Query[T]) Refetch(ctx context.Context) (T, error) {
	q.cache.Invalidate(q.key)
	return q.Get(ctx)
}

// Mutation runs writes for one entity family and invalidates its cached
// query results on success. Pending is observable while the write runs.
type Mutation struct {
	cache   *Cache
	family  string
	pending atomic.Bool
}

// NewMutation creates a mutation that invalidates every cache key of the
// given entity family.
func NewMutation(cache *Cache, family string) *Mutation {
	return &Mutation{cache: cache, family: family}
}

// Do executes fn; when it succeeds the entity family's cache entries are
// dropped so subsequently-issued reads observe the change.
func (m *Mutation) Do(ctx context.Context, fn func(context.Context) error) error {
	m.pending.Store(true)
	defer m.pending.Store(false)

	if err := fn(ctx); err != nil {
		return err
	}
	m.cache.InvalidatePrefix(m.family)
	return nil
}

// Pending reports whether a mutation is currently running.
func (m *Mutation) Pending() bool {
	return m.pending.Load()
}
