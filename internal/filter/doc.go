// Package filter is the row filter engine.
//
// It recognises two WHERE shapes by scanning text: identity equality driven
// by an @id parameter, and a boolean flag literal "<column> = 1". Any other
// WHERE selects every row, so an unrecognised predicate never narrows a
// result.
package filter
