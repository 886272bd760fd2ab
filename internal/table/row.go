package table

import (
	"time"

	"github.com/roach88/sqldouble/internal/value"
)

// Row maps column names to values. A row read from a ResultSet is a copy;
// changing it does not touch the store.
type Row map[string]value.Value

// Get returns the value in col, or Null when the column is absent.
func (r Row) Get(col string) value.Value {
	if v, ok := r[col]; ok && v != nil {
		return v
	}
	return value.Null{}
}

// IsNull reports whether col holds no value.
func (r Row) IsNull(col string) bool {
	return value.IsNull(r.Get(col))
}

// Int reads col as an integer.
func (r Row) Int(col string) (int64, error) {
	n, err := value.AsInt(r.Get(col))
	return n, withColumn(err, col)
}

// Text reads col as text.
func (r Row) Text(col string) (string, error) {
	s, err := value.AsText(r.Get(col))
	return s, withColumn(err, col)
}

// Decimal reads col as a decimal.
func (r Row) Decimal(col string) (value.Decimal, error) {
	d, err := value.AsDecimal(r.Get(col))
	return d, withColumn(err, col)
}

// Bool reads col as a boolean.
func (r Row) Bool(col string) (bool, error) {
	b, err := value.AsBool(r.Get(col))
	return b, withColumn(err, col)
}

// Time reads col as a timestamp.
func (r Row) Time(col string) (time.Time, error) {
	t, err := value.AsTime(r.Get(col))
	return t, withColumn(err, col)
}

// Clone returns a shallow copy. Values are immutable so this is a full copy.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Project returns a copy holding only cols.
func (r Row) Project(cols []string) Row {
	out := make(Row, len(cols))
	for _, c := range cols {
		out[c] = r.Get(c)
	}
	return out
}

func withColumn(err error, col string) error {
	if te, ok := err.(*value.TypeError); ok {
		te.Column = col
		return te
	}
	return err
}
