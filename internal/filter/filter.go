package filter

import (
	"regexp"

	"github.com/roach88/sqldouble/internal/binder"
	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/table"
	"github.com/roach88/sqldouble/internal/value"
)

// flagLiteral matches the "<column> = 1" shape.
var flagLiteral = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*=\s*1\b`)

// Engine recognises predicates and evaluates them against a table.
type Engine interface {
	Resolve(stmt statement.Statement, tbl schema.Table, params []statement.Param) Predicate
	Apply(tbl *table.Table, p Predicate) []int
}

// TextFilter is the default Engine. It scans WHERE text; it builds no
// expression tree.
type TextFilter struct{}

// Resolve picks the predicate for stmt.
//
// Without a WHERE marker every row matches. With one, an @id parameter
// selects by identity; failing that, a "<boolean column> = 1" literal selects
// rows with the flag set. A WHERE matching neither shape falls back to all
// rows.
func (TextFilter) Resolve(stmt statement.Statement, tbl schema.Table, params []statement.Param) Predicate {
	if !stmt.HasWhere {
		return MatchAll{}
	}

	if id, ok := binder.FindID(params); ok {
		col, _ := tbl.Identity()
		return IdentityEquals{Column: col.Name, Value: id.Value}
	}

	for _, m := range flagLiteral.FindAllStringSubmatch(stmt.Where, -1) {
		if col, ok := tbl.ColumnFold(m[1]); ok && col.Type == value.TypeBoolean {
			return FlagIsTrue{Column: col.Name}
		}
	}

	return MatchAll{}
}

// Apply returns the indexes of rows matching p, in insertion order.
func (TextFilter) Apply(tbl *table.Table, p Predicate) []int {
	var out []int
	switch pred := p.(type) {
	case IdentityEquals:
		want, ok := identityValue(tbl.Schema(), pred)
		if !ok {
			return nil
		}
		for i := 0; i < tbl.Len(); i++ {
			if value.Equal(tbl.At(i).Get(pred.Column), want) {
				out = append(out, i)
			}
		}
	case FlagIsTrue:
		for i := 0; i < tbl.Len(); i++ {
			if isTrue(tbl.At(i).Get(pred.Column)) {
				out = append(out, i)
			}
		}
	default:
		for i := 0; i < tbl.Len(); i++ {
			out = append(out, i)
		}
	}
	return out
}

// identityValue coerces the lookup value to the identity column's type so
// "@id" = "3" finds row 3. A value that cannot be coerced matches nothing.
func identityValue(s schema.Table, p IdentityEquals) (value.Value, bool) {
	col, ok := s.Column(p.Column)
	if !ok {
		return nil, false
	}
	v, err := value.Coerce(p.Value, col.Type)
	if err != nil || value.IsNull(v) {
		return nil, false
	}
	return v, true
}

func isTrue(v value.Value) bool {
	b, err := value.Coerce(v, value.TypeBoolean)
	if err != nil {
		return false
	}
	flag, ok := b.(value.Bool)
	return ok && bool(flag)
}

// Resolve uses the default TextFilter.
func Resolve(stmt statement.Statement, tbl schema.Table, params []statement.Param) Predicate {
	return TextFilter{}.Resolve(stmt, tbl, params)
}

// Apply uses the default TextFilter.
func Apply(tbl *table.Table, p Predicate) []int {
	return TextFilter{}.Apply(tbl, p)
}
