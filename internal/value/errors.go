package value

import (
	"errors"
	"fmt"
)

// TypeError is returned when a stored value is read back as an incompatible
// type, including reading a null as a non-null type.
//
// It is the only error the in-memory store surfaces to callers.
type TypeError struct {
	// Column names the column being read. Empty for bare value conversions.
	Column string

	// Want is the requested type.
	Want Type

	// Got is the type actually stored.
	Got Type
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("column %q: cannot read %s as %s", e.Column, e.Got, e.Want)
	}
	return fmt.Sprintf("cannot read %s as %s", e.Got, e.Want)
}

// IsTypeError returns true if err is, or wraps, a *TypeError.
func IsTypeError(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

func typeMismatch(want Type, got Value) *TypeError {
	g := TypeNull
	if got != nil {
		g = got.Type()
	}
	return &TypeError{Want: want, Got: g}
}
