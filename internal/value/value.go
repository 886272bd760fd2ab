package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Value is a sealed interface representing a single typed cell.
// Only Null, Int, Text, Decimal, Bool and Timestamp implement it.
type Value interface {
	// Type reports the semantic column type this value carries.
	Type() Type

	cellValue() // Sealed - only these types implement it
}

// Null is the "no value" marker stored in unset columns.
type Null struct{}

func (Null) Type() Type { return TypeNull }
func (Null) cellValue() {}

// Int is an integer cell. Always int64.
type Int int64

func (Int) Type() Type { return TypeInteger }
func (Int) cellValue() {}

// Text is a text cell.
type Text string

func (Text) Type() Type { return TypeText }
func (Text) cellValue() {}

// Bool is a boolean cell.
type Bool bool

func (Bool) Type() Type { return TypeBoolean }
func (Bool) cellValue() {}

// Timestamp is a date/time cell.
type Timestamp time.Time

func (Timestamp) Type() Type { return TypeTimestamp }
func (Timestamp) cellValue() {}

// Time returns the wrapped time.Time.
func (ts Timestamp) Time() time.Time { return time.Time(ts) }

// Decimal is an exact decimal cell backed by apd.
// Decimals are immutable once constructed; the pointer is never written through.
type Decimal struct {
	d *apd.Decimal
}

func (Decimal) Type() Type { return TypeDecimal }
func (Decimal) cellValue() {}

// NewDecimal parses s ("12.99", "-3", "1e2") into a Decimal.
func NewDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return Decimal{d: d}, nil
}

// MustDecimal is like NewDecimal but panics on malformed input.
// Intended for literals in fixtures and tests.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFromInt returns the exact decimal for n.
func DecimalFromInt(n int64) Decimal {
	return Decimal{d: apd.New(n, 0)}
}

// Apd returns the underlying decimal. Callers must not modify it.
func (d Decimal) Apd() *apd.Decimal {
	if d.d == nil {
		return apd.New(0, 0)
	}
	return d.d
}

// String renders the decimal in plain notation.
func (d Decimal) String() string {
	return d.Apd().Text('f')
}

// Cmp compares two decimals numerically.
func (d Decimal) Cmp(other Decimal) int {
	return d.Apd().Cmp(other.Apd())
}

// Of converts a Go native into a Value.
// Supported: nil, Value, int, int32, int64, string, bool, time.Time,
// float64 (via its shortest decimal text), *apd.Decimal.
func Of(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case int:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case string:
		return Text(v), nil
	case bool:
		return Bool(v), nil
	case time.Time:
		return Timestamp(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite float %v cannot be stored", v)
		}
		return NewDecimal(strconv.FormatFloat(v, 'f', -1, 64))
	case *apd.Decimal:
		if v == nil {
			return Null{}, nil
		}
		cp := new(apd.Decimal).Set(v)
		return Decimal{d: cp}, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", x)
	}
}

// MustOf is like Of but panics on unsupported input.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}
	return v
}

// IsNull reports whether v is absent or the Null marker.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Equal compares two values. Integers and decimals compare numerically;
// nulls are never equal to anything, including other nulls.
func Equal(a, b Value) bool {
	if IsNull(a) || IsNull(b) {
		return false
	}
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return x == y
		case Decimal:
			return DecimalFromInt(int64(x)).Cmp(y) == 0
		}
	case Decimal:
		switch y := b.(type) {
		case Decimal:
			return x.Cmp(y) == 0
		case Int:
			return x.Cmp(DecimalFromInt(int64(y))) == 0
		}
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Timestamp:
		y, ok := b.(Timestamp)
		return ok && x.Time().Equal(y.Time())
	}
	return false
}

// Native returns the value as a plain Go value suitable for encoding/json
// and database/sql arguments. Decimals become strings.
func Native(v Value) any {
	switch x := v.(type) {
	case nil, Null:
		return nil
	case Int:
		return int64(x)
	case Text:
		return string(x)
	case Bool:
		return bool(x)
	case Timestamp:
		return x.Time()
	case Decimal:
		return x.String()
	}
	return nil
}

// String renders v for human-readable output. Null renders as NULL.
func String(v Value) string {
	switch x := v.(type) {
	case nil, Null:
		return "NULL"
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case Text:
		return string(x)
	case Bool:
		return strconv.FormatBool(bool(x))
	case Timestamp:
		return x.Time().Format(time.RFC3339)
	case Decimal:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
