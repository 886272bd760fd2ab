// Command sqldouble runs SQL statement text against an in-memory table store
// or SQLite.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/sqldouble/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
