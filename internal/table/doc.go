// Package table is the in-memory table store.
//
// A Store holds one Table per catalog schema. Tables keep rows in insertion
// order and an identity Sequence that never hands out the same id twice,
// even after deletes. Clear empties every table and restarts numbering;
// Reset rebuilds the catalog from scratch.
//
// Lookups never fail. Asking for a table that does not exist returns an
// empty, schema-less table, so a malformed statement degrades to an empty
// result instead of an error.
package table
