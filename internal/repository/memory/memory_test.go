package memory

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func TestCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	todos := NewTodos()

	created, err := todos.Create(ctx, domain.Todo{Title: "buy milk"})
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
	if got.Title != "buy milk" {
		t.Errorf("Title = %q, want %q", got.Title, "buy milk")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	todos := NewTodos()

	_, err := todos.GetByID(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetByField(t *testing.T) {
	ctx := context.Background()
	users := NewUsers()

	if _, err := users.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com", Phone: "555-0100"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	byEmail, err := users.GetByField(ctx, "email", "ada@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", byEmail.Name)
	}

	if _, err := users.GetByField(ctx, "phone", "555-9999"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("missing phone should be ErrNotFound, got %v", err)
	}

	if _, err := users.GetByField(ctx, "shoe_size", "44"); err == nil {
		t.Error("unknown field should error")
	}
}

func TestUpdateReplacesContent(t *testing.T) {
	ctx := context.Background()
	roles := NewRoles()

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
	if updated.Name != "operator" {
		t.Errorf("Name = %q, want operator", updated.Name)
	}

	if _, err := roles.Update(ctx, "missing", domain.Role{Name: "ghost"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("update of missing id should be ErrNotFound, got %v", err)
	}
}

func TestDeleteReturnsRecordThenNotFound(t *testing.T) {
	ctx := context.Background()
	todos := NewTodos()

	created, err := todos.Create(ctx, domain.Todo{Title: "buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := todos.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Title != created.Title {
		t.Errorf("deleted record = %+v, want the created content", deleted)
	}

	if _, err := todos.GetByID(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("get after delete should be ErrNotFound, got %v", err)
	}
	if _, err := todos.Delete(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestGetAllEmpty(t *testing.T) {
	todos := NewTodos()

	all, err := todos.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("empty table should list zero records, got %d", len(all))
	}
}
