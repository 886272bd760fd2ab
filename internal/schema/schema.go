package schema

import (
	"strings"

	"github.com/roach88/sqldouble/internal/value"
)

// IdentitySuffix is the naming convention that marks an identity column.
// A table whose first column ends with it gets auto-assigned ids on insert.
const IdentitySuffix = "Id"

// Column is a named, typed column. Names are unique within a table.
type Column struct {
	Name string
	Type value.Type
}

// Table is a table schema: a unique name and an ordered column list.
// The first column is the identity column.
type Table struct {
	Name    string
	Columns []Column
}

// Identity returns the identity column and whether the schema has any columns.
func (t Table) Identity() (Column, bool) {
	if len(t.Columns) == 0 {
		return Column{}, false
	}
	return t.Columns[0], true
}

// AutoIdentity reports whether inserts assign the identity column automatically.
func (t Table) AutoIdentity() bool {
	id, ok := t.Identity()
	return ok && strings.HasSuffix(id.Name, IdentitySuffix)
}

// Column looks up a column by exact name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnFold looks up a column ignoring case. Exact matches win.
func (t Table) ColumnFold(name string) (Column, bool) {
	if c, ok := t.Column(name); ok {
		return c, true
	}
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Column{}, false
}

// HasColumn reports whether a column with this exact name exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames returns column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Clone returns a deep copy so callers cannot reorder a live schema.
func (t Table) Clone() Table {
	cols := make([]Column, len(t.Columns))
	copy(cols, t.Columns)
	return Table{Name: t.Name, Columns: cols}
}

// Find returns the schema with the given name from a catalog.
func Find(catalog []Table, name string) (Table, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
