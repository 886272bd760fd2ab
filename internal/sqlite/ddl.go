package sqlite

import (
	"strings"

	"github.com/roach88/sqldouble/internal/schema"
	"github.com/roach88/sqldouble/internal/value"
)

// columnType maps a column type to its SQLite declaration. Decimals and
// timestamps are stored as text so they round-trip exactly.
func columnType(t value.Type) string {
	switch t {
	case value.TypeInteger, value.TypeBoolean:
		return "INTEGER"
	case value.TypeDecimal, value.TypeText, value.TypeTimestamp:
		return "TEXT"
	default:
		return "BLOB"
	}
}

// CreateTableSQL renders the CREATE TABLE statement for t. A column that
// follows the identity naming convention becomes the autoincrement key, so
// deleted ids are never handed out again.
func CreateTableSQL(t schema.Table) string {
	auto := t.AutoIdentity()
	id, _ := t.Identity()

	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := quote(c.Name) + " " + columnType(c.Type)
		if auto && c.Name == id.Name {
			def += " PRIMARY KEY AUTOINCREMENT"
		}
		defs = append(defs, def)
	}

	return "CREATE TABLE IF NOT EXISTS " + quote(t.Name) + " (\n\t" +
		strings.Join(defs, ",\n\t") + "\n)"
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
