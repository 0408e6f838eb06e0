// Package rofilog wires the CLI entry points to a shared *slog.Logger,
// the same structured-logging convention the pack's trace/dag executor
// uses: callers may pass nil to fall back to slog.Default(), and
// attributes are always passed through slog's typed constructors rather
// than interpolated into the message string.
package rofilog

import (
	"log/slog"
	"os"
)

// New returns a text-handler *slog.Logger writing to w at level, for use
// as a CLI's root logger. A nil w defaults to os.Stderr.
func New(w *os.File, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OrDefault returns logger if non-nil, otherwise slog.Default(), mirroring
// the pack's NewExecutor(dag, logger) nil-tolerant convention.
func OrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
