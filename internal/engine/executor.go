package engine

import (
	"context"

	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/table"
)

// Executor runs statement text with ordered parameters.
//
// Repositories depend on this interface rather than a concrete database, so
// a test can hand them the in-memory Engine while production code hands
// them a real driver-backed implementation.
type Executor interface {
	// ExecuteQuery runs a SELECT and returns its rows in stored order.
	ExecuteQuery(ctx context.Context, text string, params ...statement.Param) (*table.ResultSet, error)

	// ExecuteMutation runs an INSERT, UPDATE or DELETE and returns the
	// number of affected rows.
	ExecuteMutation(ctx context.Context, text string, params ...statement.Param) (int, error)
}
