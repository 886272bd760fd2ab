package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/sqldouble/internal/statement"
	"github.com/roach88/sqldouble/internal/value"
)

// parseParams turns "--param @id=1" flags into statement parameters, in flag
// order. Values are read with value.Parse.
func parseParams(raw []string) ([]statement.Param, error) {
	params := make([]statement.Param, 0, len(raw))
	for _, p := range raw {
		marker, lit, ok := strings.Cut(p, "=")
		marker = strings.TrimSpace(marker)
		if !ok || marker == "" {
			return nil, NewExitError(ExitCommandError,
				fmt.Sprintf("invalid param %q: want <marker>=<value>", p))
		}
		params = append(params, statement.Param{Marker: marker, Value: value.Parse(lit)})
	}
	return params, nil
}
