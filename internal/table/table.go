package table

import (
	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/value"
)

// Table holds a schema and its rows in insertion order.
//
// A Table returned for an unknown name has an empty schema. It accepts no
// columns, so anything written to it is dropped, and it is never registered
// in the store.
type Table struct {
	schema schema.Table
	rows   []Row
	ids    Sequence
}

func newTable(s schema.Table) *Table {
	return &Table{schema: s.Clone()}
}

// Name returns the table name. Empty for an unresolved table.
func (t *Table) Name() string { return t.schema.Name }

// Schema returns a copy of the table schema.
func (t *Table) Schema() schema.Table { return t.schema.Clone() }

// Resolved reports whether the table has a schema.
func (t *Table) Resolved() bool { return len(t.schema.Columns) > 0 }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns copies of all rows in insertion order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// At returns the live row at index i. Writes must go through Set so the
// identity sequence stays correct.
func (t *Table) At(i int) Row { return t.rows[i] }

// NewRow returns a row with every schema column set to Null.
func (t *Table) NewRow() Row {
	r := make(Row, len(t.schema.Columns))
	for _, c := range t.schema.Columns {
		r[c.Name] = value.Null{}
	}
	return r
}

// Append stores a copy of r restricted to schema columns. Missing columns
// become Null. Returns false if the table has no schema.
func (t *Table) Append(r Row) bool {
	if !t.Resolved() {
		return false
	}
	row := t.NewRow()
	for _, c := range t.schema.Columns {
		if v, ok := r[c.Name]; ok && v != nil {
			row[c.Name] = v
		}
	}
	t.observe(row)
	t.rows = append(t.rows, row)
	return true
}

// Set writes v into column col of the row at index i. Unknown columns are
// ignored and reported as false.
func (t *Table) Set(i int, col string, v value.Value) bool {
	if !t.schema.HasColumn(col) {
		return false
	}
	if v == nil {
		v = value.Null{}
	}
	t.rows[i][col] = v
	t.observe(t.rows[i])
	return true
}

// Delete removes the rows at the given indexes and returns how many were
// removed. Remaining rows keep their relative order.
func (t *Table) Delete(indexes []int) int {
	if len(indexes) == 0 {
		return 0
	}
	drop := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < len(t.rows) {
			drop[i] = true
		}
	}
	kept := t.rows[:0]
	for i, r := range t.rows {
		if !drop[i] {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = nil
	}
	t.rows = kept
	return len(drop)
}

// NextIdentity returns the next identity value for this table.
func (t *Table) NextIdentity() int64 {
	return t.ids.Next()
}

// clear drops all rows and restarts identity numbering.
func (t *Table) clear() {
	t.rows = nil
	t.ids.Reset()
}

func (t *Table) observe(r Row) {
	id, ok := t.schema.Identity()
	if !ok {
		return
	}
	if n, err := value.AsInt(r.Get(id.Name)); err == nil {
		t.ids.Observe(n)
	}
}
