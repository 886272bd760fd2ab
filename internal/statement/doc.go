// Package statement classifies raw SQL text for the in-memory engine.
//
// This is deliberately not a parser. The Scanner looks at the leading
// keyword to pick a Kind, reads the whitespace-delimited token after an
// anchor keyword (INTO, UPDATE, FROM) to find the table, and notes whether a
// WHERE marker is present. Statements outside the four supported shapes
// degrade to a select against an empty table name.
//
// Keyword matching is case-insensitive under Unicode case folding
// (golang.org/x/text/cases).
package statement
