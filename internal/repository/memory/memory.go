// Package memory is a map-backed repository backend.
//
// It exists for tests and throwaway runs: the service and handler suites
// exercise the real protocols against it without a database, and the server
// can boot with store "memory" for local experiments. Data lives for the
// process lifetime only.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// Collection keeps records of one entity type in a mutex-guarded map.
// Field lookups go through caller-supplied accessors so the backend stays
// generic over entity shapes.
type Collection[T any] struct {
	mu      sync.RWMutex
	table   string
	records map[string]T

	getID  func(T) string
	setID  func(*T, string)
	fields map[string]func(T) string
}

// NewCollection builds an empty collection. fields maps queryable field
// names to accessors returning their string value.
func NewCollection[T any](
	table string,
	getID func(T) string,
	setID func(*T, string),
	fields map[string]func(T) string,
) *Collection[T] {
	return &Collection[T]{
		table:   table,
		records: make(map[string]T),
		getID:   getID,
		setID:   setID,
		fields:  fields,
	}
}

// NewTodos returns a todo collection with its queryable fields wired.
func NewTodos() *Collection[domain.Todo] {
	return NewCollection(domain.TodoTable,
		func(t domain.Todo) string { return t.ID },
		func(t *domain.Todo, id string) { t.ID = id },
		map[string]func(domain.Todo) string{
			"title": func(t domain.Todo) string { return t.Title },
		})
}

// NewUsers returns a user collection with its queryable fields wired.
func NewUsers() *Collection[domain.User] {
	return NewCollection(domain.UserTable,
		func(u domain.User) string { return u.ID },
		func(u *domain.User, id string) { u.ID = id },
		map[string]func(domain.User) string{
			"email": func(u domain.User) string { return u.Email },
			"phone": func(u domain.User) string { return u.Phone },
			"role":  func(u domain.User) string { return u.Role },
		})
}

// NewRoles returns a role collection with its queryable fields wired.
func NewRoles() *Collection[domain.Role] {
	return NewCollection(domain.RoleTable,
		func(r domain.Role) string { return r.ID },
		func(r *domain.Role, id string) { r.ID = id },
		map[string]func(domain.Role) string{
			"name": func(r domain.Role) string { return r.Name },
		})
}

func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.records))
	for _, rec := range c.records {
		out = append(out, rec)
	}
	return out, nil
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[id]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", c.table, id, repository.ErrNotFound)
	}
	return &rec, nil
}

func (c *Collection[T]) GetByField(ctx context.Context, field, value string) (*T, error) {
	get, ok := c.fields[field]
	if !ok {
		return nil, fmt.Errorf("%s has no queryable field %q", c.table, field)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, rec := range c.records {
		if get(rec) == value {
			match := rec
			return &match, nil
		}
	}
	return nil, fmt.Errorf("%s with %s %q: %w", c.table, field, value, repository.ErrNotFound)
}

func (c *Collection[T]) Create(ctx context.Context, content T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.getID(content)
	if id == "" {
		id = uuid.NewString()
		c.setID(&content, id)
	}
	if _, exists := c.records[id]; exists {
		return nil, fmt.Errorf("%s %s already exists", c.table, id)
	}

	c.records[id] = content
	return &content, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, content T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[id]; !ok {
		return nil, fmt.Errorf("%s %s: %w", c.table, id, repository.ErrNotFound)
	}

	c.setID(&content, id)
	c.records[id] = content
	return &content, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[id]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", c.table, id, repository.ErrNotFound)
	}

	delete(c.records, id)
	return &rec, nil
}
