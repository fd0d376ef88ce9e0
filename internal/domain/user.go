package domain

import (
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// UserTable is the store table holding users.
const UserTable = "user"

// User is an account holder. Email is unique across the table. Role holds
// the id of the referenced role, or empty when the user has none; the role
// record itself is never embedded.
type User struct {
	ID        string                 `json:"id,omitempty"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone,omitempty"`
	Role      string                 `json:"role,omitempty"`
	CreatedAt *models.CustomDateTime `json:"created_at,omitempty"`
	UpdatedAt *models.CustomDateTime `json:"updated_at,omitempty"`
}

// UserPatch is a partial update. Nil fields keep the current value.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
}

// StampNew initializes lifecycle fields for a freshly created user.
func (u *User) StampNew(now time.Time) {
	ts := timestamp(now)
	u.CreatedAt = ts
	u.UpdatedAt = ts
}

// Merge overlays the provided patch fields and refreshes UpdatedAt.
func (u *User) Merge(p UserPatch, now time.Time) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	u.UpdatedAt = timestamp(now)
}
