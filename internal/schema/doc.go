// Package schema declares table schemas and the built-in restaurant catalog.
//
// Catalogs are written in CUE and compiled with the CUE Go API. The
// embedded restaurant.cue constrains every column type to the five
// supported kinds, so a typo fails at compile time rather than producing a
// column nobody can read.
package schema
