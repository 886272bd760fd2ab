package sqlite

import (
	"context"
	"fmt"

	"github.com/roach88/sqldouble/internal/engine"
	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/table"
	"github.com/roach88/sqldouble/internal/value"
)

var _ engine.Executor = (*DB)(nil)

// ExecuteQuery runs a select and converts every cell to the declared type
// of its column. Non-select text yields an empty result set without
// touching the database.
func (d *DB) ExecuteQuery(ctx context.Context, text string, params ...statement.Param) (*table.ResultSet, error) {
	stmt := d.classifier.Classify(text)
	if stmt.Kind != statement.KindSelect {
		d.logger.Debug("query ignored: not a select", "kind", stmt.Kind.String())
		return &table.ResultSet{}, nil
	}

	rows, err := d.db.QueryContext(ctx, text, namedArgs(params)...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", stmt.Table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %s: columns: %w", stmt.Table, err)
	}

	types := d.columnTypes(stmt.Table, cols)
	rs := &table.ResultSet{Columns: cols, Rows: []table.Row{}}

	raw := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range raw {
		dest[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("query %s: scan: %w", stmt.Table, err)
		}
		row := make(table.Row, len(cols))
		for i, c := range cols {
			v, err := fromDriver(raw[i], types[i])
			if err != nil {
				return nil, fmt.Errorf("query %s: column %s: %w", stmt.Table, c, err)
			}
			row[c] = v
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", stmt.Table, err)
	}

	d.logger.Debug("query executed", "table", stmt.Table, "rows", len(rs.Rows))
	return rs, nil
}

// ExecuteMutation runs an insert, update or delete and returns the driver's
// affected row count. Select text returns 0 without touching the database.
func (d *DB) ExecuteMutation(ctx context.Context, text string, params ...statement.Param) (int, error) {
	stmt := d.classifier.Classify(text)
	if !stmt.Kind.IsMutation() {
		d.logger.Debug("mutation ignored: not a write", "kind", stmt.Kind.String())
		return 0, nil
	}

	res, err := d.db.ExecContext(ctx, text, namedArgs(params)...)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", stmt.Kind, stmt.Table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s %s: rows affected: %w", stmt.Kind, stmt.Table, err)
	}

	d.logger.Debug("mutation executed",
		"kind", stmt.Kind.String(),
		"table", stmt.Table,
		"affected", n,
	)
	return int(n), nil
}

// columnTypes resolves result column names against the catalog entry for
// tableName. Names the catalog does not know keep the driver's type.
func (d *DB) columnTypes(tableName string, cols []string) []value.Type {
	types := make([]value.Type, len(cols))
	def, ok := schema.Find(d.catalog, tableName)
	if !ok {
		return types
	}
	for i, c := range cols {
		if col, ok := def.ColumnFold(c); ok {
			types[i] = col.Type
		}
	}
	return types
}
