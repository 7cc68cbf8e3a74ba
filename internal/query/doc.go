// Package query is the data-fetch and caching layer between the console
// pages and the entity services.
//
// # Model
//
// Each entity binds to a cache key family mirroring its REST path
// ("personal", "proyectos", ...); filtered list variants extend the key
// with the filter discriminant ("personal/INVESTIGADOR",
// "docencia/<investigadorId>"). A cached result is fresh for 60 seconds;
// the next access after that refetches. Concurrent fetches for the same
// key share one in-flight request.
//
// Query values expose the last-known list (empty before the first
// resolution), a loading flag, an error flag and an imperative Refetch.
// Mutations expose a pending flag and invalidate the whole key family on
// success, so list reads issued after a mutation observe the change. No
// ordering is guaranteed between two concurrent mutations against the same
// record: the last write to complete wins.
//
// # Personnel filtering
//
// The personnel query accepts a subtype filter that is resolved either by
// the server (?tipo=..., when enabled in configuration) or locally over
// the unfiltered list. Callers cannot tell the difference: they always get
// an already-filtered list plus the filtered count and unfiltered total.
package query
