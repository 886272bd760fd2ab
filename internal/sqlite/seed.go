package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/table"
)

var _ table.Seeder = (*DB)(nil)

// Seed inserts row into the named table, bypassing statement parsing.
// Columns outside the schema are ignored; missing ones are left null.
// Seeding an explicit identity advances the autoincrement counter.
func (d *DB) Seed(ctx context.Context, name string, row table.Row) error {
	def, ok := schema.Find(d.catalog, name)
	if !ok {
		return fmt.Errorf("seed: unknown table %q", name)
	}

	var cols, marks []string
	var args []any
	for _, c := range def.Columns {
		v, ok := row[c.Name]
		if !ok {
			continue
		}
		cols = append(cols, quote(c.Name))
		marks = append(marks, "?")
		args = append(args, toDriver(v))
	}

	query := "INSERT INTO " + quote(def.Name) + " DEFAULT VALUES"
	if len(cols) > 0 {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quote(def.Name), strings.Join(cols, ", "), strings.Join(marks, ", "))
	}

	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}

// Clear deletes every row from every catalog table and restarts identity
// numbering. Schemas are kept.
func (d *DB) Clear(ctx context.Context) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clear: begin: %w", err)
	}
	defer tx.Rollback()

	for _, t := range d.catalog {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+quote(t.Name)); err != nil {
			return fmt.Errorf("clear %s: %w", t.Name, err)
		}
	}

	var hasSequence int
	err = tx.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'",
	).Scan(&hasSequence)
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if hasSequence > 0 {
		if _, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence"); err != nil {
			return fmt.Errorf("clear: reset sequences: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("clear: commit: %w", err)
	}
	d.logger.Debug("database cleared", "tables", len(d.catalog))
	return nil
}
