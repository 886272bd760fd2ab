package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/sqldouble/internal/fixture"
	"github.com/roach88/sqldouble/internal/harness"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <fixture.yaml>",
		Short: "Seed a fixture and verify its steps",
		Long: `Seed a fixture into the configured backend and run its steps, checking
row counts, affected counts and expected rows.

Exit codes:
  0 - All steps passed
  1 - One or more steps failed or a statement errored
  2 - Command error (missing fixture, bad catalog, etc.)

Examples:
  sqldouble check testdata/fixtures/restaurant.yaml
  sqldouble check --backend sqlite testdata/fixtures/restaurant.yaml`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	ctx := cmd.Context()

	fx, err := fixture.Load(path)
	if err != nil {
		_ = out.Error(ErrCodeFixture, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load fixture", err)
	}

	s, err := openSession(ctx, opts)
	if err != nil {
		_ = out.Error(ErrCodeBackend, err.Error(), nil)
		return err
	}
	defer s.close()

	if err := fx.Validate(s.catalog); err != nil {
		_ = out.Error(ErrCodeFixture, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid fixture", err)
	}

	h := harness.New(s.target, s.catalog, opts.Logger)
	result, err := h.Run(ctx, fx)
	if err != nil {
		_ = out.Error(ErrCodeStatement, err.Error(), nil)
		return WrapExitError(ExitFailure, "check aborted", err)
	}

	opts.Logger.Info("check complete", "fixture", fx.Name, "pass", result.Pass, "trace_id", out.TraceID)

	var outErr error
	if opts.Format == "json" {
		outErr = out.Success(result)
	} else {
		outErr = out.Success(result.Summary())
	}
	if outErr != nil {
		return outErr
	}

	if !result.Pass {
		return NewExitError(ExitFailure, "one or more steps failed")
	}
	return nil
}
