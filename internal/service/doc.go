// Package service implements the business rules between the HTTP surface
// and the repositories: create-with-uniqueness, read-merge-write updates,
// guarded deletes, and the user→role reference checks.
//
// Every mutation is a check-then-act sequence — a lookup followed by a
// conditional write. The services serialize each sequence with a per-key
// lock (one key per record id, one per unique value) so two in-process
// requests cannot interleave inside the window. Failures surface as typed
// errors (NotFoundError, ConflictError, ReferenceError, InUseError) that
// the handler layer translates to HTTP exactly once.
package service
