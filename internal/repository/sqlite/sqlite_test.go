package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// newTestDB creates an in-memory store for testing.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestTodoRoundTrip(t *testing.T) {
	ctx := context.Background()
	todos := NewTodos(newTestDB(t))

	todo := domain.Todo{Title: "buy milk", Content: "2 liters"}
	todo.StampNew(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	created, err := todos.Create(ctx, todo)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create should assign an id")
	}

	got, err := todos.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Title != "buy milk" || got.Content != "2 liters" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Completed == nil || *got.Completed {
		t.Errorf("Completed = %v, want false", got.Completed)
	}
	if got.CreatedAt == nil || got.CreatedAt.Time.IsZero() {
		t.Errorf("CreatedAt not preserved: %v", got.CreatedAt)
	}
}

func TestGetByFieldJSONExtract(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	if _, err := users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com", Phone: "555-0100"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := users.Create(ctx, domain.User{Name: "Grace", Email: "grace@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := users.GetByField(ctx, "email", "grace@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.Name != "Grace" {
		t.Errorf("Name = %q, want Grace", got.Name)
	}

	if _, err := users.GetByField(ctx, "phone", "555-9999"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("missing phone should be ErrNotFound, got %v", err)
	}
	if _, err := users.GetByField(ctx, "email OR 1=1 --", "x"); err == nil {
		t.Error("malformed field name should be rejected")
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	roles := NewRoles(newTestDB(t))

	if _, err := roles.Update(ctx, "missing", domain.Role{Name: "ghost"}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateReplacesDocument(t *testing.T) {
	ctx := context.Background()
	roles := NewRoles(newTestDB(t))

	created, err := roles.Create(ctx, domain.Role{Name: "admin"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := roles.Update(ctx, created.ID, domain.Role{Name: "operator"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update changed id: %q -> %q", created.ID, updated.ID)
	}

	got, err := roles.GetByField(ctx, "name", "operator")
	if err != nil {
		t.Fatalf("get by name after update: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("lookup after update returned wrong record: %+v", got)
	}
}

func TestDeleteThenGone(t *testing.T) {
	ctx := context.Background()
	todos := NewTodos(newTestDB(t))

	created, err := todos.Create(ctx, domain.Todo{Title: "buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := todos.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Title != "buy milk" {
		t.Errorf("delete should return the removed record, got %+v", deleted)
	}

	if _, err := todos.GetByID(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("get after delete should be ErrNotFound, got %v", err)
	}
	if _, err := todos.Delete(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestTablesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	todos := NewTodos(db)
	roles := NewRoles(db)

	if _, err := todos.Create(ctx, domain.Todo{Title: "buy milk"}); err != nil {
		t.Fatalf("create todo: %v", err)
	}

	all, err := roles.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all roles: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("role table should not see todo rows, got %d", len(all))
	}
}
