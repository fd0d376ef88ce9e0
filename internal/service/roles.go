package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// Roles implements the role protocols. It holds the user collection so a
// delete can refuse to orphan referencing users.
type Roles struct {
	repo  repository.Collection[domain.Role]
	users repository.Collection[domain.User]
	locks *keyLock
	now   func() time.Time
}

// NewRoles builds the role service.
func NewRoles(repo repository.Collection[domain.Role], users repository.Collection[domain.User]) *Roles {
	return &Roles{repo: repo, users: users, locks: newKeyLock(), now: time.Now}
}

// List returns every role.
func (s *Roles) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.GetAll(ctx)
}

// Get returns the role with the given id.
func (s *Roles) Get(ctx context.Context, id string) (*domain.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Role with ID: %s not found", id)
	}
	return role, nil
}

// GetByName returns the role holding the given name.
func (s *Roles) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	role, err := s.repo.GetByField(ctx, "name", name)
	if err != nil {
		return nil, notFoundAs(err, "Role with name: %s not found", name)
	}
	return role, nil
}

// Create inserts a new role after checking the name is unused.
func (s *Roles) Create(ctx context.Context, role domain.Role) (*domain.Role, error) {
	key := "role:name:" + role.Name
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.repo.GetByField(ctx, "name", role.Name)
	if err == nil {
		return nil, &ConflictError{Message: "Role already exists", Existing: existing}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	role.ID = ""
	role.StampNew(s.now())
	return s.repo.Create(ctx, role)
}

// Update merges the patch over the stored role and writes it back.
func (s *Roles) Update(ctx context.Context, id string, patch domain.RolePatch) (*domain.Role, error) {
	key := "role:id:" + id
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Role with ID: %s not found", id)
	}

	role.Merge(patch, s.now())
	role.ID = ""
	updated, err := s.repo.Update(ctx, id, *role)
	if err != nil {
		return nil, notFoundAs(err, "Role with ID: %s not found", id)
	}
	return updated, nil
}

// Delete removes the role with the given id. Deletion is refused while any
// user still references the role.
func (s *Roles) Delete(ctx context.Context, id string) (*domain.Role, error) {
	key := "role:id:" + id
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, notFoundAs(err, "Role with ID: %s not found", id)
	}

	_, err := s.users.GetByField(ctx, "role", id)
	if err == nil {
		return nil, &InUseError{Message: fmt.Sprintf("Role with ID: %s is still assigned to users", id)}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Role with ID: %s not found", id)
	}
	return deleted, nil
}
