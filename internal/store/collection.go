package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"noted/internal/jsonutil"
)

// Document is a record that can live in a Collection.
type Document interface {
	DocumentID() uuid.UUID
}

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Collection is a typed handle on one named collection.
type Collection[T Document] struct {
	db   *DB
	name string
}

// NewCollection returns the collection called name. Collections exist
// implicitly; nothing is written until the first insert.
func NewCollection[T Document](db *DB, name string) *Collection[T] {
	return &Collection[T]{db: db, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "store."+op, trace.WithAttributes(
		attribute.String("store.collection", c.name),
	))
}

func finish(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Insert stores doc, failing with ErrAlreadyExists if its ID is taken.
func (c *Collection[T]) Insert(ctx context.Context, doc T) (err error) {
	ctx, span := c.start(ctx, "insert")
	defer func() { finish(span, err) }()

	data, err := jsonutil.MarshalWithContext(doc, "store: encode "+c.name+" document")
	if err != nil {
		return err
	}
	_, err = c.db.conn.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)`,
		c.name, doc.DocumentID().String(), data)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("store: %s/%s: %w", c.name, doc.DocumentID(), ErrAlreadyExists)
		}
		return fmt.Errorf("store: insert into %s: %w", c.name, err)
	}
	return nil
}

// Put inserts doc or replaces the document with the same ID. A replaced
// document keeps its position in List order.
func (c *Collection[T]) Put(ctx context.Context, doc T) (err error) {
	ctx, span := c.start(ctx, "put")
	defer func() { finish(span, err) }()

	data, err := jsonutil.MarshalWithContext(doc, "store: encode "+c.name+" document")
	if err != nil {
		return err
	}
	_, err = c.db.conn.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET data = excluded.data
	`, c.name, doc.DocumentID().String(), data)
	if err != nil {
		return fmt.Errorf("store: put into %s: %w", c.name, err)
	}
	return nil
}

// Get returns the document with the given ID or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id uuid.UUID) (doc T, err error) {
	ctx, span := c.start(ctx, "get")
	defer func() { finish(span, err) }()

	var data string
	err = c.db.conn.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`,
		c.name, id.String()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return doc, fmt.Errorf("store: %s/%s: %w", c.name, id, ErrNotFound)
	}
	if err != nil {
		return doc, fmt.Errorf("store: get from %s: %w", c.name, err)
	}
	return jsonutil.UnmarshalWithContext[T](data, fmt.Sprintf("store: decode %s/%s", c.name, id))
}

// List returns every document in insertion order.
func (c *Collection[T]) List(ctx context.Context) (docs []T, err error) {
	ctx, span := c.start(ctx, "list")
	defer func() { finish(span, err) }()

	rows, err := c.db.conn.QueryContext(ctx,
		`SELECT data FROM documents WHERE collection = ? ORDER BY rowid`, c.name)
	if err != nil {
		return nil, fmt.Errorf("store: list %s: %w", c.name, err)
	}
	return c.scan(rows)
}

// Find returns documents whose top-level JSON field equals value, in
// insertion order. UUIDs compare by their string form.
func (c *Collection[T]) Find(ctx context.Context, field string, value any) (docs []T, err error) {
	ctx, span := c.start(ctx, "find")
	span.SetAttributes(attribute.String("store.field", field))
	defer func() { finish(span, err) }()

	if !fieldName.MatchString(field) {
		return nil, fmt.Errorf("store: invalid field name %q", field)
	}
	if id, ok := value.(uuid.UUID); ok {
		value = id.String()
	}
	rows, err := c.db.conn.QueryContext(ctx, `
		SELECT data FROM documents
		WHERE collection = ? AND json_extract(data, '$.' || ?) = ?
		ORDER BY rowid
	`, c.name, field, value)
	if err != nil {
		return nil, fmt.Errorf("store: find in %s: %w", c.name, err)
	}
	return c.scan(rows)
}

// Delete removes the document with the given ID or returns ErrNotFound.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := c.start(ctx, "delete")
	defer func() { finish(span, err) }()

	res, err := c.db.conn.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, c.name, id.String())
	if err != nil {
		return fmt.Errorf("store: delete from %s: %w", c.name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete from %s: %w", c.name, err)
	}
	if n == 0 {
		return fmt.Errorf("store: %s/%s: %w", c.name, id, ErrNotFound)
	}
	return nil
}

// Count returns the number of documents in the collection.
func (c *Collection[T]) Count(ctx context.Context) (n int, err error) {
	ctx, span := c.start(ctx, "count")
	defer func() { finish(span, err) }()

	err = c.db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`, c.name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: count %s: %w", c.name, err)
	}
	return n, nil
}

func (c *Collection[T]) scan(rows *sql.Rows) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("store: scan %s: %w", c.name, err)
		}
		doc, err := jsonutil.UnmarshalWithContext[T](data, "store: decode "+c.name+" document")
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}
