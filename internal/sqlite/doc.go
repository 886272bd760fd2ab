// Package sqlite runs the same statement text as the in-memory engine
// against a real SQLite database (github.com/mattn/go-sqlite3).
//
// Tables are generated from the schema catalog. Parameters are passed as
// named arguments, so "@id" in the statement binds to the "@id" parameter.
// Booleans are stored as 0/1 integers, decimals and timestamps as text, and
// every scanned cell is converted back to its declared column type.
//
// A DB satisfies engine.Executor and table.Seeder, so tests written against
// the in-memory engine can be pointed at SQLite to check that the double and
// the real database agree.
package sqlite
