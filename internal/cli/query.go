package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sqldouble/internal/table"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Params []string
}

// QueryData is the JSON payload of a query.
type QueryData struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run a SELECT and print its rows",
		Long: `Run a SELECT statement against the configured backend.

Parameters are passed as marker=value pairs. Values are read as integers,
decimals, booleans, timestamps or null where they look like one, and as
text otherwise.

Examples:
  sqldouble query --fixture restaurant.yaml "SELECT * FROM Employees WHERE IsActive = 1"
  sqldouble query --fixture restaurant.yaml -p @id=1 \
      "SELECT FirstName, Role FROM Employees WHERE EmployeeId = @id"
  SQLDOUBLE_BACKEND=sqlite sqldouble query --format json "SELECT * FROM MenuItems"`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "statement parameter as marker=value (repeatable)")

	return cmd
}

func runQuery(opts *QueryOptions, text string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	ctx := cmd.Context()

	params, err := parseParams(opts.Params)
	if err != nil {
		_ = out.Error(ErrCodeParam, err.Error(), nil)
		return err
	}

	s, err := openSession(ctx, opts.RootOptions)
	if err != nil {
		_ = out.Error(ErrCodeBackend, err.Error(), nil)
		return err
	}
	defer s.close()

	rs, err := s.target.ExecuteQuery(ctx, text, params...)
	if err != nil {
		_ = out.Error(ErrCodeStatement, err.Error(), nil)
		return WrapExitError(ExitFailure, "query failed", err)
	}

	opts.Logger.Info("query complete", "rows", rs.Len(), "trace_id", out.TraceID)

	if opts.Format == "json" {
		return out.Success(QueryData{Columns: columnsOf(rs), Rows: rs.Records()})
	}
	return out.Success(fmt.Sprintf("%s(%d rows)\n", rs.String(), rs.Len()))
}

func columnsOf(rs *table.ResultSet) []string {
	if rs.Columns == nil {
		return []string{}
	}
	return rs.Columns
}
