package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// Users implements the user protocols. It holds the role collection as
// well: users reference roles by id and every write carrying a role id is
// checked against it.
type Users struct {
	repo  repository.Collection[domain.User]
	roles repository.Collection[domain.Role]
	locks *keyLock
	now   func() time.Time
}

// NewUsers builds the user service.
func NewUsers(repo repository.Collection[domain.User], roles repository.Collection[domain.Role]) *Users {
	return &Users{repo: repo, roles: roles, locks: newKeyLock(), now: time.Now}
}

// List returns every user.
func (s *Users) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAll(ctx)
}

// Get returns the user with the given id.
func (s *Users) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "User with ID: %s not found", id)
	}
	return user, nil
}

// GetByEmail returns the user holding the given email.
func (s *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.GetByField(ctx, "email", email)
	if err != nil {
		return nil, notFoundAs(err, "User with email: %s not found", email)
	}
	return user, nil
}

// GetByPhone returns the user holding the given phone number.
func (s *Users) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, err := s.repo.GetByField(ctx, "phone", phone)
	if err != nil {
		return nil, notFoundAs(err, "User with phone: %s not found", phone)
	}
	return user, nil
}

// GetRole resolves the role referenced by the user with the given id.
func (s *Users) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == "" {
		return nil, &NotFoundError{Message: fmt.Sprintf("User with ID: %s has no role", id)}
	}

	role, err := s.roles.GetByID(ctx, user.Role)
	if err != nil {
		return nil, notFoundAs(err, "Role with ID: %s not found", user.Role)
	}
	return role, nil
}

// Create inserts a new user after checking the email is unused and any
// role reference resolves.
func (s *Users) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := s.checkRoleRef(ctx, user.Role); err != nil {
		return nil, err
	}

	key := "user:email:" + user.Email
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.repo.GetByField(ctx, "email", user.Email)
	if err == nil {
		return nil, &ConflictError{Message: "User already exists", Existing: existing}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user.ID = ""
	user.StampNew(s.now())
	return s.repo.Create(ctx, user)
}

// Update merges the patch over the stored user and writes it back. A patch
// introducing a role reference is checked like a create.
func (s *Users) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Role != nil {
		if err := s.checkRoleRef(ctx, *patch.Role); err != nil {
			return nil, err
		}
	}

	key := "user:id:" + id
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "User with ID: %s not found", id)
	}

	user.Merge(patch, s.now())
	user.ID = ""
	updated, err := s.repo.Update(ctx, id, *user)
	if err != nil {
		return nil, notFoundAs(err, "User with ID: %s not found", id)
	}
	return updated, nil
}

// Delete removes the user with the given id and returns it.
func (s *Users) Delete(ctx context.Context, id string) (*domain.User, error) {
	key := "user:id:" + id
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, notFoundAs(err, "User with ID: %s not found", id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "User with ID: %s not found", id)
	}
	return deleted, nil
}

// checkRoleRef verifies that a non-empty role id points at an existing
// role. An empty id means "no role" and is always fine.
func (s *Users) checkRoleRef(ctx context.Context, roleID string) error {
	if roleID == "" {
		return nil
	}
	if _, err := s.roles.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ReferenceError{Message: fmt.Sprintf("Role with ID: %s not found", roleID)}
		}
		return err
	}
	return nil
}
