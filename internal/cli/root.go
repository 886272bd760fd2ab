package cli

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override flags, e.g.
// SQLDOUBLE_BACKEND=sqlite.
const EnvPrefix = "SQLDOUBLE"

// Backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Backend  string // "memory" | "sqlite"
	Database string // SQLite path; empty means in-memory
	Fixture  string // YAML fixture applied before the command runs
	Catalog  string // CUE catalog file or directory; empty means the restaurant catalog
	Config   string // optional YAML config file

	// TraceGenerator allows overriding trace id generation (for testing).
	// If nil, defaults to UUIDv7Generator.
	TraceGenerator TraceGenerator

	// Logger is configured by the root command before any subcommand runs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidBackends defines the allowed executor backends.
var ValidBackends = []string{BackendMemory, BackendSQLite}

// NewRootCommand creates the root command for the sqldouble CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "sqldouble",
		Short: "sqldouble - an in-memory SQL test double",
		Long: `Run SQL statement text against an in-memory table store, or against
SQLite with the same tables, to see what a repository's queries return.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(v, opts, cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.Backend, "backend", BackendMemory, "executor backend (memory|sqlite)")
	flags.StringVar(&opts.Database, "db", "", "SQLite database path (sqlite backend; default in-memory)")
	flags.StringVar(&opts.Fixture, "fixture", "", "YAML fixture to seed before running")
	flags.StringVar(&opts.Catalog, "catalog", "", "CUE catalog file or directory (default: restaurant catalog)")
	flags.StringVar(&opts.Config, "config", "", "YAML config file providing flag defaults")
	_ = v.BindPFlags(flags)

	// Add subcommands
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))
	cmd.AddCommand(NewTablesCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// configure resolves flags, environment and config file into opts and
// installs the logger. Precedence: flag, environment, config file, default.
func configure(v *viper.Viper, opts *RootOptions, cmd *cobra.Command) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return WrapExitError(ExitCommandError, "failed to read config", err)
		}
	}

	opts.Verbose = v.GetBool("verbose")
	opts.Format = v.GetString("format")
	opts.Backend = v.GetString("backend")
	opts.Database = v.GetString("db")
	opts.Fixture = v.GetString("fixture")
	opts.Catalog = v.GetString("catalog")

	if !slices.Contains(ValidFormats, opts.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if !slices.Contains(ValidBackends, opts.Backend) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid backend %q: must be one of %v", opts.Backend, ValidBackends))
	}

	if opts.TraceGenerator == nil {
		opts.TraceGenerator = UUIDv7Generator{}
	}
	opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Format, opts.Verbose)
	return nil
}

// formatter builds the output formatter for a command run.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		TraceID:   o.TraceGenerator.Generate(),
	}
}

// exactArgs is cobra.ExactArgs with a command-error exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}
