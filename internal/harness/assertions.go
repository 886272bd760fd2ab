package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/sqldouble/internal/fixture"
	"github.com/roach88/sqldouble/internal/table"
	"github.com/roach88/sqldouble/internal/value"
)

// checkQuery evaluates a query step's expectations against rs.
func checkQuery(exp *fixture.Expect, rs *table.ResultSet) []string {
	if exp == nil {
		return nil
	}

	var failures []string
	if exp.Rows != nil && *exp.Rows != rs.Len() {
		failures = append(failures, fmt.Sprintf("expected %d rows, got %d", *exp.Rows, rs.Len()))
	}
	for i, want := range exp.Contains {
		if !containsRow(rs, want) {
			failures = append(failures, fmt.Sprintf("contains[%d]: no row matches %s", i, formatPartial(want)))
		}
	}
	return failures
}

// checkExec evaluates a mutation step's expectations.
func checkExec(exp *fixture.Expect, affected int) []string {
	if exp == nil || exp.Affected == nil || *exp.Affected == affected {
		return nil
	}
	return []string{fmt.Sprintf("expected %d affected, got %d", *exp.Affected, affected)}
}

// containsRow reports whether some row of rs matches every field of want.
func containsRow(rs *table.ResultSet, want map[string]any) bool {
	for _, row := range rs.Rows {
		if matchRow(row, want) {
			return true
		}
	}
	return false
}

// matchRow checks a subset match. Extra columns in row are ignored. Expected
// scalars are converted to the type of the cell they are compared with.
func matchRow(row table.Row, want map[string]any) bool {
	for col, raw := range want {
		cell, ok := lookupFold(row, col)
		if !ok {
			return false
		}
		if !cellMatches(cell, raw) {
			return false
		}
	}
	return true
}

func cellMatches(cell value.Value, raw any) bool {
	expected, err := value.Of(raw)
	if err != nil {
		return false
	}
	if value.IsNull(expected) || value.IsNull(cell) {
		return value.IsNull(expected) && value.IsNull(cell)
	}
	expected, err = value.Coerce(expected, cell.Type())
	if err != nil {
		return false
	}
	return value.Equal(cell, expected)
}

func lookupFold(row table.Row, col string) (value.Value, bool) {
	if v, ok := row[col]; ok {
		return v, true
	}
	for k, v := range row {
		if strings.EqualFold(k, col) {
			return v, true
		}
	}
	return nil, false
}

// formatPartial renders an expected partial row with sorted keys.
func formatPartial(want map[string]any) string {
	keys := make([]string, 0, len(want))
	for k := range want {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, want[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
