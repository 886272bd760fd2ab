package value

import (
	"fmt"
	"strings"
)

// Type is the declared semantic type of a column.
type Type int

const (
	// TypeNull is only ever reported by the Null marker; columns never declare it.
	TypeNull Type = iota
	TypeInteger
	TypeText
	TypeDecimal
	TypeBoolean
	TypeTimestamp
)

var typeNames = map[Type]string{
	TypeNull:      "null",
	TypeInteger:   "integer",
	TypeText:      "text",
	TypeDecimal:   "decimal",
	TypeBoolean:   "boolean",
	TypeTimestamp: "timestamp",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a declared type name to a Type.
// Accepts the canonical names plus the common aliases int, string, bool,
// datetime and money.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "integer", "int":
		return TypeInteger, nil
	case "text", "string":
		return TypeText, nil
	case "decimal", "money":
		return TypeDecimal, nil
	case "boolean", "bool":
		return TypeBoolean, nil
	case "timestamp", "datetime":
		return TypeTimestamp, nil
	default:
		return TypeNull, fmt.Errorf("unknown column type %q", name)
	}
}
