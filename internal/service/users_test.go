package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository/memory"
)

type userFixture struct {
	users *Users
	roles *Roles
}

func newUserFixture() userFixture {
	userRepo := memory.NewUsers()
	roleRepo := memory.NewRoles()
	clock := fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	users := NewUsers(userRepo, roleRepo)
	users.now = clock
	roles := NewRoles(roleRepo, userRepo)
	roles.now = clock
	return userFixture{users: users, roles: roles}
}

func TestUserCreateAndLookups(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	created, err := f.users.Create(ctx, domain.User{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.CreatedAt)

	byEmail, err := f.users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byPhone, err := f.users.GetByPhone(ctx, "555-0100")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPhone.ID)

	_, err = f.users.GetByEmail(ctx, "nobody@example.com")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User with email: nobody@example.com not found", notFound.Message)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	_, err := f.users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = f.users.Create(ctx, domain.User{Name: "Imposter", Email: "ada@example.com"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "User already exists", conflict.Message)
}

func TestUserCreateWithDanglingRole(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	_, err := f.users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com", Role: "missing"})
	var ref *ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "Role with ID: missing not found", ref.Message)
}

func TestUserRoleResolution(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	role, err := f.roles.Create(ctx, domain.Role{Name: "admin"})
	require.NoError(t, err)

	user, err := f.users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com", Role: role.ID})
	require.NoError(t, err)
	assert.Equal(t, role.ID, user.Role, "role is stored as a reference, not embedded")

	resolved, err := f.users.GetRole(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", resolved.Name)

	bare, err := f.users.Create(ctx, domain.User{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)
	_, err = f.users.GetRole(ctx, bare.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUserUpdateMergeAndRoleCheck(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	role, err := f.roles.Create(ctx, domain.Role{Name: "admin"})
	require.NoError(t, err)
	created, err := f.users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com", Phone: "555-0100"})
	require.NoError(t, err)

	updated, err := f.users.Update(ctx, created.ID, domain.UserPatch{Role: &role.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, role.ID, updated.Role)
	assert.True(t, updated.UpdatedAt.Time.After(created.UpdatedAt.Time))

	missing := "missing"
	_, err = f.users.Update(ctx, created.ID, domain.UserPatch{Role: &missing})
	var ref *ReferenceError
	require.ErrorAs(t, err, &ref)
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	created, err := f.users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = f.users.Delete(ctx, created.ID)
	require.NoError(t, err)

	var notFound *NotFoundError
	_, err = f.users.Delete(ctx, created.ID)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User with ID: "+created.ID+" not found", notFound.Message)
}
