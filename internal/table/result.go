package table

import (
	"strings"

	"github.com/roach88/sqldouble/internal/value"
)

// ResultSet is the tabular answer to a query: ordered column names and rows
// in stored order.
type ResultSet struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// Empty reports whether the result has no rows.
func (rs *ResultSet) Empty() bool { return rs.Len() == 0 }

// First returns the first row, or false for an empty result.
func (rs *ResultSet) First() (Row, bool) {
	if rs.Empty() {
		return nil, false
	}
	return rs.Rows[0], true
}

// Records converts rows to plain Go maps for encoding.
func (rs *ResultSet) Records() []map[string]any {
	out := make([]map[string]any, 0, rs.Len())
	if rs == nil {
		return out
	}
	for _, r := range rs.Rows {
		rec := make(map[string]any, len(rs.Columns))
		for _, c := range rs.Columns {
			rec[c] = value.Native(r.Get(c))
		}
		out = append(out, rec)
	}
	return out
}

// String renders the result as pipe-separated text: a header line of column
// names followed by one line per row. Nulls print as NULL.
func (rs *ResultSet) String() string {
	if rs == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(rs.Columns, " | "))
	b.WriteByte('\n')
	cells := make([]string, len(rs.Columns))
	for _, r := range rs.Rows {
		for i, c := range rs.Columns {
			cells[i] = value.String(r.Get(c))
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteByte('\n')
	}
	return b.String()
}
