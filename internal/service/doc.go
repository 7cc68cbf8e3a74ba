// Package service implements the per-entity data services.
//
// # Modes
//
// Every service operates in exactly one of two modes, decided once at
// construction from the configuration and never re-evaluated:
//
//   - remote: operations delegate to the REST API through internal/httpx
//   - mock: the whole collection is a JSON array under a fixed key in the
//     internal/store key-value store, read-modify-written on every
//     operation, with an artificial latency so callers see the same
//     asynchronous behavior as the remote path
//
// # Contract
//
// List returns records in insertion order and never resorts. Upsert with an
// empty id appends (the mock assigns a UUID, the server assigns its own);
// upsert with an id replaces the stored record entirely, no field merging.
// Delete of an unknown id is a no-op. Two concurrent mock writes race on
// the shared document; the last read-modify-write cycle to complete wins,
// which matches the remote API's lack of optimistic concurrency.
//
// The Uct singleton deviates from the collection pattern: Get may report
// absence (nil, nil), Upsert is always a full PUT replace, and there is no
// list operation.
package service
