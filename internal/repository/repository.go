package repository

import (
	"context"
	"errors"
)

// ErrNotFound reports that no record exists for the requested id or
// field value. Backends wrap it with entity context; callers match it
// with errors.Is.
var ErrNotFound = errors.New("record not found")

// Collection is the data-access contract for one entity table. Every
// operation is a single round trip to the backing store: no retries, no
// transactions, no batching. Uniqueness and existence rules are the
// service layer's job.
type Collection[T any] interface {
	// GetAll returns every record in the table, order unspecified.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the record with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*T, error)

	// GetByField runs a single-field equality query expected to match
	// zero or one records and returns the first match, or ErrNotFound.
	// If the table already holds duplicates the extras are ignored.
	GetByField(ctx context.Context, field, value string) (*T, error)

	// Create inserts a new record and returns the stored row. A store
	// that reports no created row is an error.
	Create(ctx context.Context, content T) (*T, error)

	// Update replaces the full content of the record at id and returns
	// the stored row, or ErrNotFound if the id is absent.
	Update(ctx context.Context, id string, content T) (*T, error)

	// Delete removes the record at id and returns the deleted row, or
	// ErrNotFound if the id is absent.
	Delete(ctx context.Context, id string) (*T, error)
}
