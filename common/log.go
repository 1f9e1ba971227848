package common

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text logger tagged with component. Debug lowers the
// level so per-tick transitions are visible.
func NewLogger(component string, debug bool, out io.Writer) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})).With("component", component)
}
