// Package store is the embedded document database: typed JSON documents kept
// in collections inside a single SQLite file.
//
// A DB handle is owned by the root of the UI tree. It is safe for concurrent
// use as far as database/sql goes, but the application funnels every access
// through tasks run by the UI loop.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"go.opentelemetry.io/otel"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       TEXT NOT NULL,
	PRIMARY KEY (collection, id)
);
`

var tracer = otel.Tracer("noted/store")

var (
	// ErrCreateDir means the database's parent directory could not be created.
	ErrCreateDir = errors.New("create database directory")
	// ErrOpen means the database file could not be opened or initialized.
	ErrOpen = errors.New("open database")
	// ErrCorrupt means the file exists but is not a usable database.
	ErrCorrupt = errors.New("corrupt database file")

	// ErrNotFound is returned when no document has the requested ID.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned by Insert when the ID is taken.
	ErrAlreadyExists = errors.New("document already exists")
)

// OpenError describes why Open failed. Kind is one of ErrCreateDir, ErrOpen
// or ErrCorrupt and can be matched with errors.Is.
type OpenError struct {
	Kind error
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *OpenError) Unwrap() []error { return []error{e.Kind, e.Err} }

// DB is an open document database.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens (or creates) the database file at path, creating parent
// directories on demand.
func Open(path string) (*DB, error) {
	slog.Debug("opening document store", slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &OpenError{Kind: ErrCreateDir, Path: filepath.Dir(path), Err: err}
	}

	dsn, err := fileDSN(path)
	if err != nil {
		return nil, &OpenError{Kind: ErrOpen, Path: path, Err: err}
	}
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &OpenError{Kind: ErrOpen, Path: path, Err: err}
	}
	db, err := initialize(conn, path)
	if err != nil {
		return nil, err
	}
	slog.Debug("document store opened", slog.String("path", path))
	return db, nil
}

// fileDSN builds a file: URI for path. The path is escaped so that '?' and
// '#' in directory names are not read as the start of the query.
func fileDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Path: filepath.ToSlash(abs)}
	return "file:" + u.EscapedPath() + "?_journal_mode=WAL&_busy_timeout=5000", nil
}

// OpenMemory opens a private in-memory database. Used by previews and tests.
func OpenMemory() (*DB, error) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, &OpenError{Kind: ErrOpen, Path: ":memory:", Err: err}
	}
	// Every connection to :memory: is a separate database.
	conn.SetMaxOpenConns(1)
	return initialize(conn, ":memory:")
}

func initialize(conn *sql.DB, path string) (*DB, error) {
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, &OpenError{Kind: classify(err), Path: path, Err: err}
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, &OpenError{Kind: classify(err), Path: path, Err: err}
	}
	return &DB{conn: conn, path: path}, nil
}

// classify maps driver errors onto the OpenError kinds.
func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrNotADB, sqlite3.ErrCorrupt:
			return ErrCorrupt
		}
	}
	return ErrOpen
}

// Path returns the file the database was opened from.
func (db *DB) Path() string {
	return db.path
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// ping is used by tests to check the handle is still usable.
func (db *DB) ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}
