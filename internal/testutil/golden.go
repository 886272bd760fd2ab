package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/sqldouble/internal/table"
)

// AssertResultGolden compares the text rendering of rs against
// testdata/golden/{name}.golden in the calling package.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
func AssertResultGolden(t *testing.T, name string, rs *table.ResultSet) {
	t.Helper()
	AssertGolden(t, name, []byte(rs.String()))
}

// AssertGolden compares raw bytes against testdata/golden/{name}.golden.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}
