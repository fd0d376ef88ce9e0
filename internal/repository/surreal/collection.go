package surreal

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"taskboard/internal/repository"
)

// Every query projects the record id down to its plain key part so entity
// structs only ever see opaque strings, never record-id structs.
const (
	selectAllQuery   = "SELECT *, record::id(id) AS id FROM type::table($tb)"
	selectByIDQuery  = "SELECT *, record::id(id) AS id FROM type::thing($tb, $id)"
	selectByFieldFmt = "SELECT *, record::id(id) AS id FROM type::table($tb) WHERE %s = $value LIMIT 1"
	createQuery      = "SELECT *, record::id(id) AS id FROM (CREATE type::table($tb) CONTENT $content)"
	updateQuery      = "SELECT *, record::id(id) AS id FROM (UPDATE type::thing($tb, $id) CONTENT $content)"
	deleteQuery      = "SELECT *, record::id(id) AS id FROM (DELETE type::thing($tb, $id) RETURN BEFORE)"
)

// Collection provides typed access to one SurrealDB table.
type Collection[T any] struct {
	db    *DB
	table string
}

// NewCollection binds a collection to a table on the shared handle.
func NewCollection[T any](db *DB, table string) *Collection[T] {
	return &Collection[T]{db: db, table: table}
}

func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := c.rows(selectAllQuery, map[string]any{"tb": c.table})
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", c.table, err)
	}
	return rows, nil
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	rows, err := c.rows(selectByIDQuery, map[string]any{"tb": c.table, "id": id})
	if err != nil {
		return nil, fmt.Errorf("select %s %s: %w", c.table, id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %s: %w", c.table, id, repository.ErrNotFound)
	}
	return &rows[0], nil
}

func (c *Collection[T]) GetByField(ctx context.Context, field, value string) (*T, error) {
	if !validFieldName(field) {
		return nil, fmt.Errorf("invalid field name %q", field)
	}
	query := fmt.Sprintf(selectByFieldFmt, field)
	rows, err := c.rows(query, map[string]any{"tb": c.table, "value": value})
	if err != nil {
		return nil, fmt.Errorf("select %s by %s: %w", c.table, field, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s with %s %q: %w", c.table, field, value, repository.ErrNotFound)
	}
	return &rows[0], nil
}

func (c *Collection[T]) Create(ctx context.Context, content T) (*T, error) {
	rows, err := c.rows(createQuery, map[string]any{"tb": c.table, "content": content})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create %s: store returned no record", c.table)
	}
	return &rows[0], nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, content T) (*T, error) {
	rows, err := c.rows(updateQuery, map[string]any{"tb": c.table, "id": id, "content": content})
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", c.table, id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %s: %w", c.table, id, repository.ErrNotFound)
	}
	return &rows[0], nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (*T, error) {
	rows, err := c.rows(deleteQuery, map[string]any{"tb": c.table, "id": id})
	if err != nil {
		return nil, fmt.Errorf("delete %s %s: %w", c.table, id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %s: %w", c.table, id, repository.ErrNotFound)
	}
	return &rows[0], nil
}

// rows runs one statement and returns its result set. An empty response
// from the driver is an empty result, not an error.
func (c *Collection[T]) rows(query string, vars map[string]any) ([]T, error) {
	res, err := surrealdb.Query[[]T](c.db.conn, query, vars)
	if err != nil {
		return nil, err
	}
	if res == nil || len(*res) == 0 {
		return nil, nil
	}
	return (*res)[0].Result, nil
}

// validFieldName restricts field lookups to bare lowercase identifiers.
// Field names come from our own route table, not user input, but they are
// the one fragment spliced into a query string.
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
