package statement

import (
	"fmt"

	"github.com/roach88/sqldouble/internal/value"
)

// Kind is the operation a statement performs.
type Kind int

const (
	KindSelect Kind = iota
	KindInsert
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindInsert:
		return "insert"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsMutation reports whether the kind writes rows.
func (k Kind) IsMutation() bool {
	return k == KindInsert || k == KindUpdate || k == KindDelete
}

// Statement is what the classifier learned from raw statement text.
// Nothing here is a parse tree; every field comes from scanning the text.
type Statement struct {
	// Text is the raw statement as given.
	Text string

	// Kind comes from the leading keyword. Anything unrecognised is a select.
	Kind Kind

	// Table is the token following the kind's anchor keyword, or empty when
	// the anchor is missing.
	Table string

	// Columns is the select list in order. Nil means all columns ("*" or a
	// list that could not be read).
	Columns []string

	// HasWhere reports whether the text carries a WHERE marker.
	HasWhere bool

	// Where is the predicate text after WHERE, up to ORDER BY.
	Where string
}

// Param binds a value to a marker such as "@id".
type Param struct {
	Marker string
	Value  value.Value
}

// P builds a Param from a Go native. It panics on unsupported types, so it
// is meant for literals in repositories and tests.
func P(marker string, v any) Param {
	return Param{Marker: marker, Value: value.MustOf(v)}
}

// Classifier turns statement text into a Statement.
type Classifier interface {
	Classify(text string) Statement
}
