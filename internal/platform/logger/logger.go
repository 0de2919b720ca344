package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Text output to stdout; the log collector
// handles shipping and structure downstream.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
