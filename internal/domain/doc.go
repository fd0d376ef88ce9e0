// Package domain defines the entities served by the taskboard API and the
// rules for mutating them.
//
// Entities carry opaque string IDs (the record key, without the table
// prefix) and CBOR-safe timestamps. Partial updates are expressed as patch
// types whose nil fields mean "keep the current value"; the merge rules live
// next to the entities so every storage backend and service applies the same
// semantics.
package domain
