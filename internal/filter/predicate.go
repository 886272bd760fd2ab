package filter

import (
	"fmt"

	"github.com/roach88/sqldouble/internal/value"
)

// Predicate is the row condition recognised in a statement's WHERE text.
//
// This is a sealed interface. The engine understands exactly two shapes plus
// the catch-all:
//   - IdentityEquals: identity column = @id
//   - FlagIsTrue: <boolean column> = 1
//   - MatchAll: no WHERE, or a WHERE nothing above recognised
type Predicate interface {
	fmt.Stringer
	predicateNode() // Marker method - seals interface to this package
}

// MatchAll selects every row.
type MatchAll struct{}

func (MatchAll) predicateNode() {}

func (MatchAll) String() string { return "all rows" }

// IdentityEquals selects rows whose identity column equals Value.
type IdentityEquals struct {
	Column string
	Value  value.Value
}

func (IdentityEquals) predicateNode() {}

func (p IdentityEquals) String() string {
	return fmt.Sprintf("%s = %s", p.Column, value.String(p.Value))
}

// FlagIsTrue selects rows where a boolean column is true.
type FlagIsTrue struct {
	Column string
}

func (FlagIsTrue) predicateNode() {}

func (p FlagIsTrue) String() string {
	return p.Column + " is true"
}
