package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
)

func TestRoleCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	_, err := f.roles.Create(ctx, domain.Role{Name: "admin"})
	require.NoError(t, err)

	_, err = f.roles.Create(ctx, domain.Role{Name: "admin"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Role already exists", conflict.Message)
}

func TestRoleGetByName(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	created, err := f.roles.Create(ctx, domain.Role{Name: "admin"})
	require.NoError(t, err)

	got, err := f.roles.GetByName(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.roles.GetByName(ctx, "wizard")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Role with name: wizard not found", notFound.Message)
}

func TestRoleUpdate(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	created, err := f.roles.Create(ctx, domain.Role{Name: "admin"})
	require.NoError(t, err)

	name := "operator"
	updated, err := f.roles.Update(ctx, created.ID, domain.RolePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "operator", updated.Name)
	assert.Equal(t, created.CreatedAt.Time, updated.CreatedAt.Time)
	assert.True(t, updated.UpdatedAt.Time.After(created.UpdatedAt.Time))
}

func TestRoleDeleteRefusedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()

	role, err := f.roles.Create(ctx, domain.Role{Name: "admin"})
	require.NoError(t, err)
	user, err := f.users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com", Role: role.ID})
	require.NoError(t, err)

	_, err = f.roles.Delete(ctx, role.ID)
	var inUse *InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "Role with ID: "+role.ID+" is still assigned to users", inUse.Message)

	// Detach the user, then deletion goes through.
	none := ""
	_, err = f.users.Update(ctx, user.ID, domain.UserPatch{Role: &none})
	require.NoError(t, err)

	deleted, err := f.roles.Delete(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", deleted.Name)

	var notFound *NotFoundError
	_, err = f.roles.Delete(ctx, role.ID)
	require.ErrorAs(t, err, &notFound)
}
