package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ExecOptions holds flags for the exec command.
type ExecOptions struct {
	*RootOptions
	Params []string
	Then   string
}

// ExecData is the JSON payload of an exec.
type ExecData struct {
	Affected int        `json:"affected"`
	Then     *QueryData `json:"then,omitempty"`
}

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exec <sql>",
		Short: "Run an INSERT, UPDATE or DELETE",
		Long: `Run a mutation against the configured backend and print the number of
affected rows.

The in-memory backend lives only for one invocation, so use --then to run a
follow-up SELECT against the mutated state.

Examples:
  sqldouble exec --fixture restaurant.yaml -p @fn=Alice -p @ln=Smith \
      "INSERT INTO Employees (FirstName, LastName) VALUES (@fn, @ln)" \
      --then "SELECT EmployeeId, FirstName FROM Employees"
  sqldouble exec --backend sqlite --db ./restaurant.db -p @id=3 \
      "DELETE FROM Employees WHERE EmployeeId = @id"`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "statement parameter as marker=value (repeatable)")
	cmd.Flags().StringVar(&opts.Then, "then", "", "SELECT to run after the mutation (same parameters)")

	return cmd
}

func runExec(opts *ExecOptions, text string, cmd *cobra.Command) error {
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

	n, err := s.target.ExecuteMutation(ctx, text, params...)
	if err != nil {
		_ = out.Error(ErrCodeStatement, err.Error(), nil)
		return WrapExitError(ExitFailure, "exec failed", err)
	}
	opts.Logger.Info("exec complete", "affected", n, "trace_id", out.TraceID)

	data := ExecData{Affected: n}
	report := fmt.Sprintf("%d rows affected\n", n)

	if opts.Then != "" {
		rs, err := s.target.ExecuteQuery(ctx, opts.Then, params...)
		if err != nil {
			_ = out.Error(ErrCodeStatement, err.Error(), nil)
			return WrapExitError(ExitFailure, "follow-up query failed", err)
		}
		data.Then = &QueryData{Columns: columnsOf(rs), Rows: rs.Records()}
		report += fmt.Sprintf("%s(%d rows)\n", rs.String(), rs.Len())
	}

	if opts.Format == "json" {
		return out.Success(data)
	}
	return out.Success(report)
}
