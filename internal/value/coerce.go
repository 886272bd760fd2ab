package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts accepted when coercing text, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// AsInt reads v as an integer. Decimals with no fractional part are accepted.
func AsInt(v Value) (int64, error) {
	switch x := v.(type) {
	case Int:
		return int64(x), nil
	case Decimal:
		n, err := x.Apd().Int64()
		if err != nil {
			return 0, typeMismatch(TypeInteger, v)
		}
		return n, nil
	}
	return 0, typeMismatch(TypeInteger, v)
}

// AsText reads v as text.
func AsText(v Value) (string, error) {
	if x, ok := v.(Text); ok {
		return string(x), nil
	}
	return "", typeMismatch(TypeText, v)
}

// AsDecimal reads v as a decimal. Integers widen losslessly.
func AsDecimal(v Value) (Decimal, error) {
	switch x := v.(type) {
	case Decimal:
		return x, nil
	case Int:
		return DecimalFromInt(int64(x)), nil
	}
	return Decimal{}, typeMismatch(TypeDecimal, v)
}

// AsBool reads v as a boolean.
func AsBool(v Value) (bool, error) {
	if x, ok := v.(Bool); ok {
		return bool(x), nil
	}
	return false, typeMismatch(TypeBoolean, v)
}

// AsTime reads v as a timestamp.
func AsTime(v Value) (time.Time, error) {
	if x, ok := v.(Timestamp); ok {
		return x.Time(), nil
	}
	return time.Time{}, typeMismatch(TypeTimestamp, v)
}

// Coerce converts v to the declared type t. Null stays Null.
//
// Coercion is used where loosely typed input meets a typed column: fixture
// files, CLI parameters, identity lookups. Statement parameters are bound
// as-is and never pass through here.
func Coerce(v Value, t Type) (Value, error) {
	if IsNull(v) {
		return Null{}, nil
	}
	if v.Type() == t {
		return v, nil
	}

	switch t {
	case TypeInteger:
		switch x := v.(type) {
		case Decimal:
			n, err := AsInt(x)
			if err != nil {
				return nil, err
			}
			return Int(n), nil
		case Text:
			n, err := strconv.ParseInt(strings.TrimSpace(string(x)), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("coerce %q to integer: %w", string(x), err)
			}
			return Int(n), nil
		case Bool:
			if x {
				return Int(1), nil
			}
			return Int(0), nil
		}
	case TypeDecimal:
		switch x := v.(type) {
		case Int:
			return DecimalFromInt(int64(x)), nil
		case Text:
			return NewDecimal(string(x))
		}
	case TypeText:
		return Text(String(v)), nil
	case TypeBoolean:
		switch x := v.(type) {
		case Int:
			return Bool(x != 0), nil
		case Text:
			b, err := strconv.ParseBool(strings.TrimSpace(string(x)))
			if err != nil {
				return nil, fmt.Errorf("coerce %q to boolean: %w", string(x), err)
			}
			return Bool(b), nil
		}
	case TypeTimestamp:
		if x, ok := v.(Text); ok {
			return ParseTimestamp(string(x))
		}
	}

	return nil, typeMismatch(t, v)
}

// ParseTimestamp parses s using the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

// Parse interprets a literal typed on a command line: null, integers,
// decimals, booleans and timestamps are recognised, anything else is text.
func Parse(s string) Value {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "null") {
		return Null{}
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(n)
	}
	if strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false") {
		return Bool(strings.EqualFold(trimmed, "true"))
	}
	if isNumeric(trimmed) {
		if d, err := NewDecimal(trimmed); err == nil {
			return d
		}
	}
	if ts, err := ParseTimestamp(trimmed); err == nil {
		return ts
	}
	return Text(s)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '-' && i == 0:
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return s != "-" && s != "."
}
