// Package harness runs the steps of a fixture against an executor and
// checks their expectations.
//
// A harness run seeds the fixture's tables, then executes each step:
// queries are checked for row counts and partial rows, mutations for their
// affected count. The same fixture can be run against the in-memory engine
// and against SQLite to confirm both agree.
package harness
