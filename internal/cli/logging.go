package cli

import (
	"io"
	"log/slog"

	"github.com/lepinkainen/humanlog"
)

// newLogger builds the process logger: human-readable for text output,
// JSON lines for JSON output. Verbose lowers the level to debug.
func newLogger(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = humanlog.NewHandler(w, &humanlog.Options{Level: level})
	}
	return slog.New(handler)
}
