package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. JSON to stdout so log
// shippers can pick it up unchanged.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
