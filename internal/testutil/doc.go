// Package testutil holds shared test fixtures: the standard employee and
// menu rosters, golden-file assertions and a fixed trace id generator.
package testutil
