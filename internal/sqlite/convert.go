package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/value"
)

const sigils = "@:$"

// namedArgs turns parameters into sql.Named arguments. The marker sigil is
// dropped; the driver matches @, : and $ forms of the same name.
func namedArgs(params []statement.Param) []any {
	args := make([]any, 0, len(params))
	for _, p := range params {
		args = append(args, sql.Named(strings.TrimLeft(p.Marker, sigils), toDriver(p.Value)))
	}
	return args
}

// toDriver converts a cell value into the representation stored in SQLite.
func toDriver(v value.Value) any {
	switch x := v.(type) {
	case nil, value.Null:
		return nil
	case value.Int:
		return int64(x)
	case value.Text:
		return string(x)
	case value.Bool:
		if x {
			return int64(1)
		}
		return int64(0)
	case value.Decimal:
		return x.String()
	case value.Timestamp:
		return x.Time().UTC().Format(time.RFC3339Nano)
	default:
		return value.Native(v)
	}
}

// fromDriver converts a scanned SQLite value back into a cell value of the
// declared column type. TypeNull leaves the driver's own type.
func fromDriver(raw any, t value.Type) (value.Value, error) {
	if b, ok := raw.([]byte); ok {
		raw = string(b)
	}

	v, err := value.Of(raw)
	if err != nil {
		return nil, fmt.Errorf("unsupported driver value %T: %w", raw, err)
	}
	if t == value.TypeNull || value.IsNull(v) {
		return v, nil
	}
	return value.Coerce(v, t)
}
