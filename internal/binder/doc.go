// Package binder maps bind-parameter markers to columns.
//
// A marker resolves through a fixed lookup table first ("@fn" → FirstName).
// Anything not in the table has its sigil stripped and is used verbatim, so
// "@Price" binds to Price. Values are written exactly as given.
package binder
