package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/statement"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// DB executes statements against a real SQLite database whose tables are
// generated from a schema catalog.
//
// Unlike the in-memory engine, DB is fail-loud: driver errors are returned
// wrapped.
type DB struct {
	db         *sql.DB
	catalog    []schema.Table
	classifier statement.Classifier
	logger     *slog.Logger
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *DB) { d.logger = l }
}

// WithClassifier replaces the classifier used to find a statement's table
// and kind.
func WithClassifier(c statement.Classifier) Option {
	return func(d *DB) { d.classifier = c }
}

// Open creates or opens a SQLite database at path and creates every catalog
// table that does not exist yet. Use MemoryPath for a throwaway database.
//
// The connection pool is limited to a single connection so an in-memory
// database survives between calls.
func Open(path string, catalog []schema.Table, opts ...Option) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	cat := make([]schema.Table, len(catalog))
	for i, t := range catalog {
		cat[i] = t.Clone()
	}

	if err := applyCatalog(db, cat); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply catalog: %w", err)
	}

	d := &DB{
		db:         db,
		catalog:    cat,
		classifier: statement.Scanner{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Catalog returns a copy of the catalog the database was created from.
func (d *DB) Catalog() []schema.Table {
	out := make([]schema.Table, len(d.catalog))
	for i, t := range d.catalog {
		out[i] = t.Clone()
	}
	return out
}

// TableNames lists the user tables present in the database, sorted.
func (d *DB) TableNames(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applyCatalog creates the catalog tables. It is idempotent.
func applyCatalog(db *sql.DB, catalog []schema.Table) error {
	for _, t := range catalog {
		if _, err := db.Exec(CreateTableSQL(t)); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (d *DB) verifyPragma(name, expected string) error {
	var got string
	if err := d.db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&got); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if got != expected {
		return fmt.Errorf("%s = %q, expected %q", name, got, expected)
	}
	return nil
}
