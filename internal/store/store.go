// ABOUTME: Store interface for the persisted mock-mode key-value data
// ABOUTME: Each entity service owns one fixed key holding a JSON document

package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for mock-mode persistence. Values are opaque
// JSON documents (an array per list entity, an object for the singleton).
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
