package binder

import (
	"strings"

	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/value"
)

// IDMarker is the parameter marker that carries a row's identity value.
const IDMarker = "@id"

// sigils are the marker prefixes stripped when a marker has no lookup entry.
const sigils = "@:$"

// EmployeeMarkers is the short-name lookup used by the employee repository.
var EmployeeMarkers = map[string]string{
	"@fn":   "FirstName",
	"@ln":   "LastName",
	"@role": "Role",
	"@hd":   "HireDate",
	"@act":  "IsActive",
	"@id":   "EmployeeId",
}

// MenuItemMarkers is the short-name lookup used by the menu repository.
var MenuItemMarkers = map[string]string{
	"@name":      "Name",
	"@desc":      "Description",
	"@price":     "Price",
	"@catId":     "CategoryId",
	"@available": "IsAvailable",
}

// Binder maps parameter markers to column names and writes parameter values
// into rows. It never validates types.
type Binder struct {
	lookup map[string]string
}

// New creates a Binder over a marker → column lookup. The map is copied.
func New(lookup map[string]string) *Binder {
	m := make(map[string]string, len(lookup))
	for k, v := range lookup {
		m[k] = v
	}
	return &Binder{lookup: m}
}

// Default returns a Binder with the EmployeeMarkers lookup.
func Default() *Binder {
	return New(EmployeeMarkers)
}

// Restaurant returns a Binder that knows both the employee and the menu
// repository markers.
func Restaurant() *Binder {
	lookup := make(map[string]string, len(EmployeeMarkers)+len(MenuItemMarkers))
	for k, v := range EmployeeMarkers {
		lookup[k] = v
	}
	for k, v := range MenuItemMarkers {
		lookup[k] = v
	}
	return New(lookup)
}

// Column returns the column a marker binds to: the lookup entry if there is
// one, otherwise the marker with its leading sigil removed.
func (b *Binder) Column(marker string) string {
	if col, ok := b.lookup[marker]; ok {
		return col
	}
	return strings.TrimLeft(marker, sigils)
}

// Assignment is one parameter resolved against a table schema.
type Assignment struct {
	Column string
	Value  value.Value
}

// Assignments resolves params against tbl, dropping markers whose column
// is not in the schema and any marker equal to skip. Nil values become Null.
// Order follows params.
func (b *Binder) Assignments(tbl schema.Table, params []statement.Param, skip string) []Assignment {
	var out []Assignment
	for _, p := range params {
		if skip != "" && p.Marker == skip {
			continue
		}
		col := b.Column(p.Marker)
		if !tbl.HasColumn(col) {
			continue
		}
		v := p.Value
		if v == nil {
			v = value.Null{}
		}
		out = append(out, Assignment{Column: col, Value: v})
	}
	return out
}

// FindID returns the identity parameter, if supplied.
func FindID(params []statement.Param) (statement.Param, bool) {
	for _, p := range params {
		if p.Marker == IDMarker {
			return p, true
		}
	}
	return statement.Param{}, false
}
