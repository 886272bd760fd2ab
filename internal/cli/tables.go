package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// TableInfo describes one catalog table.
type TableInfo struct {
	Name     string       `json:"name"`
	Identity string       `json:"identity,omitempty"`
	Columns  []ColumnInfo `json:"columns"`
}

// ColumnInfo describes one column.
type ColumnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List catalog tables and their columns",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(rootOpts, cmd)
		},
	}
}

func runTables(opts *RootOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	catalog, err := LoadCatalog(opts.Catalog)
	if err != nil {
		_ = out.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load catalog", err)
	}

	infos := make([]TableInfo, 0, len(catalog))
	for _, t := range catalog {
		info := TableInfo{Name: t.Name, Columns: make([]ColumnInfo, 0, len(t.Columns))}
		if t.AutoIdentity() {
			id, _ := t.Identity()
			info.Identity = id.Name
		}
		for _, c := range t.Columns {
			info.Columns = append(info.Columns, ColumnInfo{Name: c.Name, Type: c.Type.String()})
		}
		infos = append(infos, info)
	}

	if opts.Format == "json" {
		return out.Success(infos)
	}

	var b strings.Builder
	for _, info := range infos {
		cols := make([]string, len(info.Columns))
		for i, c := range info.Columns {
			cols[i] = c.Name + " " + c.Type
		}
		fmt.Fprintf(&b, "%s (%s)\n", info.Name, strings.Join(cols, ", "))
	}
	return out.Success(b.String())
}
