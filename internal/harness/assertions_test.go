package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sqldouble/internal/table"
	"github.com/roach88/sqldouble/internal/value"
)

func TestMatchRow(t *testing.T) {
	row := table.Row{
		"EmployeeId": value.Int(4),
		"FirstName":  value.Text("Alice"),
		"Price":      value.MustDecimal("8.50"),
		"Role":       value.Null{},
	}

	tests := []struct {
		name string
		want map[string]any
		ok   bool
	}{
		{"empty matches", map[string]any{}, true},
		{"int", map[string]any{"EmployeeId": 4}, true},
		{"int as text", map[string]any{"EmployeeId": "4"}, true},
		{"case-insensitive column", map[string]any{"firstname": "Alice"}, true},
		{"decimal numeric equality", map[string]any{"Price": 8.5}, true},
		{"null", map[string]any{"Role": nil}, true},
		{"null mismatch", map[string]any{"FirstName": nil}, false},
		{"wrong value", map[string]any{"FirstName": "Bob"}, false},
		{"missing column", map[string]any{"Nickname": "AJ"}, false},
		{"uncoercible", map[string]any{"EmployeeId": "four"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, matchRow(row, tt.want))
		})
	}
}

func TestFormatPartial(t *testing.T) {
	assert.Equal(t, "{A=1, b=x}", formatPartial(map[string]any{"b": "x", "A": 1}))
}
