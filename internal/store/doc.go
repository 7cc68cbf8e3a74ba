// Package store provides the persisted key-value backing for mock-mode
// entity services using SQLite.
//
// Each entity service serializes its whole collection to JSON and stores
// it under one fixed string key (for example gidas_personal_lista_mock).
// Every write is a full read-modify-write of that document; there is no
// per-record access.
//
// # SQLite Configuration
//
// The store uses a single kv table with WAL mode enabled:
//
//	PRAGMA journal_mode=WAL;
//
// Pass ":memory:" as the path for an ephemeral database in tests.
//
// # Error Handling
//
//   - ErrNotFound: the requested key does not exist
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewMockStore() for unit tests that don't need durability:
//
//	st := store.NewMockStore()
package store
