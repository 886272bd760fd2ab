// Package value defines the typed cells stored in sqldouble tables.
//
// A Value is one of Null, Int, Text, Decimal, Bool or Timestamp. Columns
// declare a Type; nothing enforces that a stored value matches it, because
// statement parameters are written as-is. The mismatch surfaces only when a
// caller reads the value back through AsInt, AsText and friends, which
// return a *TypeError.
//
// Decimals are exact (github.com/cockroachdb/apd/v3) so prices survive a
// round trip without float drift.
package value
