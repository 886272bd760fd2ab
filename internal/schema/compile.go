package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/sqldouble/internal/value"
)

//go:embed restaurant.cue
var restaurantCUE string

// Restaurant returns the built-in catalog: Employees, MenuItems, Orders and
// Tables. It panics if the embedded CUE document does not compile, which can
// only happen through an edit to restaurant.cue.
func Restaurant() []Table {
	tables, err := Load(restaurantCUE)
	if err != nil {
		panic(fmt.Sprintf("embedded restaurant catalog: %v", err))
	}
	return tables
}

// Load compiles CUE source text into a catalog.
func Load(src string) ([]Table, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src, cue.Filename("catalog.cue"))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return Compile(v)
}

// Compile reads a catalog from a CUE value of the shape
//
//	tables: [{name: "Employees", columns: [{name: "EmployeeId", type: "integer"}, ...]}, ...]
//
// Table and column order follow the list order in the source. Table names
// must be unique, and column names unique within a table.
func Compile(v cue.Value) ([]Table, error) {
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	tablesVal := v.LookupPath(cue.ParsePath("tables"))
	if !tablesVal.Exists() {
		return nil, &CompileError{
			Field:   "tables",
			Message: "tables list is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := tablesVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var tables []Table
	seen := make(map[string]bool)
	for iter.Next() {
		t, err := compileTable(iter.Value())
		if err != nil {
			return nil, err
		}
		if seen[t.Name] {
			return nil, &CompileError{
				Field:   "tables",
				Message: fmt.Sprintf("duplicate table %q", t.Name),
				Pos:     iter.Value().Pos(),
			}
		}
		seen[t.Name] = true
		tables = append(tables, t)
	}

	return tables, nil
}

// compileTable parses one table entry.
func compileTable(v cue.Value) (Table, error) {
	name, err := requiredString(v, "name")
	if err != nil {
		return Table{}, err
	}

	t := Table{Name: name}

	colsVal := v.LookupPath(cue.ParsePath("columns"))
	if !colsVal.Exists() {
		return Table{}, &CompileError{
			Field:   name + ".columns",
			Message: "columns list is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := colsVal.List()
	if err != nil {
		return Table{}, formatCUEError(err)
	}

	for iter.Next() {
		colVal := iter.Value()
		colName, err := requiredString(colVal, "name")
		if err != nil {
			return Table{}, err
		}
		typeName, err := requiredString(colVal, "type")
		if err != nil {
			return Table{}, err
		}
		typ, err := value.ParseType(typeName)
		if err != nil {
			return Table{}, &CompileError{
				Field:   name + "." + colName,
				Message: err.Error(),
				Pos:     colVal.Pos(),
			}
		}
		if t.HasColumn(colName) {
			return Table{}, &CompileError{
				Field:   name + "." + colName,
				Message: "duplicate column",
				Pos:     colVal.Pos(),
			}
		}
		t.Columns = append(t.Columns, Column{Name: colName, Type: typ})
	}

	if len(t.Columns) == 0 {
		return Table{}, &CompileError{
			Field:   name + ".columns",
			Message: "at least one column is required",
			Pos:     v.Pos(),
		}
	}

	return t, nil
}

func requiredString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &CompileError{
			Field:   field,
			Message: field + " is required",
			Pos:     v.Pos(),
		}
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// CompileError is a catalog error with its CUE source position, if known.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
