package domain

import (
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// TodoTable is the store table holding todos.
const TodoTable = "todo"

// Todo is a single task item. Title is unique across the table.
type Todo struct {
	ID        string                 `json:"id,omitempty"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content,omitempty"`
	Completed *bool                  `json:"completed,omitempty"`
	CreatedAt *models.CustomDateTime `json:"created_at,omitempty"`
	UpdatedAt *models.CustomDateTime `json:"updated_at,omitempty"`
}

// TodoPatch is a partial update. Nil fields keep the current value.
type TodoPatch struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

// StampNew initializes lifecycle fields for a freshly created todo:
// not completed, created and updated now.
func (t *Todo) StampNew(now time.Time) {
	completed := false
	t.Completed = &completed
	ts := timestamp(now)
	t.CreatedAt = ts
	t.UpdatedAt = ts
}

// Merge overlays the provided patch fields and refreshes UpdatedAt.
func (t *Todo) Merge(p TodoPatch, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Completed != nil {
		completed := *p.Completed
		t.Completed = &completed
	}
	t.UpdatedAt = timestamp(now)
}

// timestamp wraps a wall-clock time in the store's datetime representation.
func timestamp(now time.Time) *models.CustomDateTime {
	return &models.CustomDateTime{Time: now}
}
