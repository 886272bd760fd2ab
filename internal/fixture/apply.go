package fixture

import (
	"context"
	"fmt"
	"sort"

	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/table"
	"github.com/roach88/sqldouble/internal/value"
)

// ValidationError reports a fixture that does not fit a catalog.
type ValidationError struct {
	Table  string
	Row    int
	Column string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("tables.%s[%d].%s: %s", e.Table, e.Row, e.Column, e.Reason)
	}
	return fmt.Sprintf("tables.%s: %s", e.Table, e.Reason)
}

// Validate checks every table and column against catalog and that every
// value converts to its column type.
func (f *Fixture) Validate(catalog []schema.Table) error {
	for _, name := range f.TableNames() {
		def, ok := schema.Find(catalog, name)
		if !ok {
			return &ValidationError{Table: name, Reason: "unknown table"}
		}
		for i, raw := range f.Tables[name] {
			if _, err := typedRow(def, i, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply validates the fixture and seeds every row. Tables are seeded in
// sorted name order, rows in file order.
func Apply(ctx context.Context, s table.Seeder, f *Fixture, catalog []schema.Table) error {
	if err := f.Validate(catalog); err != nil {
		return err
	}

	for _, name := range f.TableNames() {
		def, _ := schema.Find(catalog, name)
		for i, raw := range f.Tables[name] {
			row, err := typedRow(def, i, raw)
			if err != nil {
				return err
			}
			if err := s.Seed(ctx, def.Name, row); err != nil {
				return fmt.Errorf("seed tables.%s[%d]: %w", name, i, err)
			}
		}
	}
	return nil
}

// typedRow converts raw YAML scalars to values of the declared column types.
func typedRow(def schema.Table, index int, raw map[string]any) (table.Row, error) {
	row := make(table.Row, len(raw))
	for name, x := range raw {
		col, ok := def.Column(name)
		if !ok {
			return nil, &ValidationError{Table: def.Name, Row: index, Column: name, Reason: "unknown column"}
		}
		v, err := value.Of(x)
		if err != nil {
			return nil, &ValidationError{Table: def.Name, Row: index, Column: name, Reason: err.Error()}
		}
		v, err = value.Coerce(v, col.Type)
		if err != nil {
			return nil, &ValidationError{Table: def.Name, Row: index, Column: name, Reason: err.Error()}
		}
		row[col.Name] = v
	}
	return row, nil
}

// Bind converts the step's parameter map into statement parameters,
// sorted by marker. Strings go through value.Parse so dates and decimals
// written as text bind with their natural type.
func (s Step) Bind() ([]statement.Param, error) {
	markers := make([]string, 0, len(s.Params))
	for m := range s.Params {
		markers = append(markers, m)
	}
	sort.Strings(markers)

	params := make([]statement.Param, 0, len(markers))
	for _, m := range markers {
		var v value.Value
		if str, ok := s.Params[m].(string); ok {
			v = value.Parse(str)
		} else {
			var err error
			if v, err = value.Of(s.Params[m]); err != nil {
				return nil, fmt.Errorf("param %s: %w", m, err)
			}
		}
		params = append(params, statement.Param{Marker: m, Value: v})
	}
	return params, nil
}
