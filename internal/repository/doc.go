// Package repository defines the data access contract for taskboard.
//
// The Collection interface is instantiated once per entity table and is
// deliberately thin: each method is one store round trip, and the only
// error the contract distinguishes is ErrNotFound. The backends live in
// subpackages:
//
//   - surreal: the production backend, one shared SurrealDB connection
//   - sqlite: a local single-file backend for running without SurrealDB
//   - memory: a map-backed backend used by tests
//
// All three satisfy Collection for any entity type, so services and
// handlers never know which store they are talking to.
package repository
