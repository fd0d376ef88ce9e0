package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// Collection provides typed access to one logical table of the records
// store. Entities are stored as JSON documents; the id column mirrors the
// document's id field.
type Collection[T any] struct {
	db    *DB
	table string
	getID func(T) string
	setID func(*T, string)
}

// NewCollection binds a collection to a logical table.
func NewCollection[T any](db *DB, table string, getID func(T) string, setID func(*T, string)) *Collection[T] {
	return &Collection[T]{db: db, table: table, getID: getID, setID: setID}
}

// NewTodos returns the todo collection.
func NewTodos(db *DB) *Collection[domain.Todo] {
	return NewCollection(db, domain.TodoTable,
		func(t domain.Todo) string { return t.ID },
		func(t *domain.Todo, id string) { t.ID = id })
}

// NewUsers returns the user collection.
func NewUsers(db *DB) *Collection[domain.User] {
	return NewCollection(db, domain.UserTable,
		func(u domain.User) string { return u.ID },
		func(u *domain.User, id string) { u.ID = id })
}

// NewRoles returns the role collection.
func NewRoles(db *DB) *Collection[domain.Role] {
	return NewCollection(db, domain.RoleTable,
		func(r domain.Role) string { return r.ID },
		func(r *domain.Role, id string) { r.ID = id })
}

func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := c.db.db.QueryContext(ctx,
		"SELECT data FROM records WHERE tbl = ?", c.table)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.table, err)
		}
		var rec T
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", c.table, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	row := c.db.db.QueryRowContext(ctx,
		"SELECT data FROM records WHERE tbl = ? AND id = ?", c.table, id)
	return c.scanOne(row, fmt.Sprintf("%s %s", c.table, id))
}

func (c *Collection[T]) GetByField(ctx context.Context, field, value string) (*T, error) {
	if !validFieldName(field) {
		return nil, fmt.Errorf("invalid field name %q", field)
	}
	row := c.db.db.QueryRowContext(ctx,
		"SELECT data FROM records WHERE tbl = ? AND json_extract(data, '$."+field+"') = ? LIMIT 1",
		c.table, value)
	return c.scanOne(row, fmt.Sprintf("%s with %s %q", c.table, field, value))
}

func (c *Collection[T]) Create(ctx context.Context, content T) (*T, error) {
	id := c.getID(content)
	if id == "" {
		id = uuid.NewString()
		c.setID(&content, id)
	}

	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode %s record: %w", c.table, err)
	}

	if _, err := c.db.db.ExecContext(ctx,
		"INSERT INTO records (tbl, id, data) VALUES (?, ?, ?)",
		c.table, id, data); err != nil {
		return nil, fmt.Errorf("create %s: %w", c.table, err)
	}
	return &content, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, content T) (*T, error) {
	c.setID(&content, id)
	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode %s record: %w", c.table, err)
	}

	res, err := c.db.db.ExecContext(ctx,
		"UPDATE records SET data = ? WHERE tbl = ? AND id = ?",
		data, c.table, id)
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", c.table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", c.table, id, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%s %s: %w", c.table, id, repository.ErrNotFound)
	}
	return &content, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (*T, error) {
	existing, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := c.db.db.ExecContext(ctx,
		"DELETE FROM records WHERE tbl = ? AND id = ?", c.table, id); err != nil {
		return nil, fmt.Errorf("delete %s %s: %w", c.table, id, err)
	}
	return existing, nil
}

func (c *Collection[T]) scanOne(row *sql.Row, what string) (*T, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan %s: %w", what, err)
	}

	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return &rec, nil
}

// validFieldName restricts json_extract paths to bare lowercase identifiers,
// same rule as the surreal backend.
func validFieldName(field string) bool {
	if field == "" {
		return false
	}
	for _, r := range field {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return true
}
