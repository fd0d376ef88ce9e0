package domain

import (
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// RoleTable is the store table holding roles.
const RoleTable = "role"

// Role groups users under a named label. Name is unique across the table.
// The user→role reference lives on the user record; roles do not keep a
// member list.
type Role struct {
	ID        string                 `json:"id,omitempty"`
	Name      string                 `json:"name"`
	CreatedAt *models.CustomDateTime `json:"created_at,omitempty"`
	UpdatedAt *models.CustomDateTime `json:"updated_at,omitempty"`
}

// RolePatch is a partial update. Nil fields keep the current value.
type RolePatch struct {
	Name *string `json:"name"`
}

// StampNew initializes lifecycle fields for a freshly created role.
func (r *Role) StampNew(now time.Time) {
	ts := timestamp(now)
	r.CreatedAt = ts
	r.UpdatedAt = ts
}

// Merge overlays the provided patch fields and refreshes UpdatedAt.
func (r *Role) Merge(p RolePatch, now time.Time) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	r.UpdatedAt = timestamp(now)
}
