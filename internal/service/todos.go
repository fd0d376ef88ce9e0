package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// Todos implements the todo protocols over a repository collection.
type Todos struct {
	repo  repository.Collection[domain.Todo]
	locks *keyLock
	now   func() time.Time
}

// NewTodos builds the todo service.
func NewTodos(repo repository.Collection[domain.Todo]) *Todos {
	return &Todos{repo: repo, locks: newKeyLock(), now: time.Now}
}

// List returns every todo.
func (s *Todos) List(ctx context.Context) ([]domain.Todo, error) {
	return s.repo.GetAll(ctx)
}

// Get returns the todo with the given id.
func (s *Todos) Get(ctx context.Context, id string) (*domain.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Todo with ID: %s not found", id)
	}
	return todo, nil
}

// GetByTitle returns the todo holding the given title.
func (s *Todos) GetByTitle(ctx context.Context, title string) (*domain.Todo, error) {
	todo, err := s.repo.GetByField(ctx, "title", title)
	if err != nil {
		return nil, notFoundAs(err, "Todo with title: %s not found", title)
	}
	return todo, nil
}

// Create inserts a new todo after checking the title is unused. New todos
// always start not completed with both timestamps set to now.
func (s *Todos) Create(ctx context.Context, todo domain.Todo) (*domain.Todo, error) {
	key := "todo:title:" + todo.Title
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.repo.GetByField(ctx, "title", todo.Title)
	if err == nil {
		return nil, &ConflictError{Message: "Todo already exists", Existing: existing}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	todo.ID = ""
	todo.StampNew(s.now())
	return s.repo.Create(ctx, todo)
}

// Update merges the patch over the stored todo and writes it back.
func (s *Todos) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	key := "todo:id:" + id
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Todo with ID: %s not found", id)
	}

	todo.Merge(patch, s.now())
	todo.ID = ""
	updated, err := s.repo.Update(ctx, id, *todo)
	if err != nil {
		return nil, notFoundAs(err, "Todo with ID: %s not found", id)
	}
	return updated, nil
}

// Delete removes the todo with the given id and returns it.
func (s *Todos) Delete(ctx context.Context, id string) (*domain.Todo, error) {
	key := "todo:id:" + id
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, notFoundAs(err, "Todo with ID: %s not found", id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Todo with ID: %s not found", id)
	}
	return deleted, nil
}

// notFoundAs converts a repository ErrNotFound into the user-facing typed
// error; anything else passes through untouched as a store failure.
func notFoundAs(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Message: fmt.Sprintf(format, args...)}
	}
	return err
}
