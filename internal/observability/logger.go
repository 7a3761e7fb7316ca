// Package observability provides the structured logger used across accountdeck.
//
// Logs are JSON lines on stderr so they never mix with command output or the
// terminal UI drawn on stdout.
package observability

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger creates a JSON logger tagged with the application name.
// Output defaults to os.Stderr if w is nil. Debug records are kept only when
// verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "accountdeck"))
}

// Nop returns a logger that drops everything. Used as a default in
// constructors and tests.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Component returns l tagged with a component name, or Nop when l is nil.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		return Nop()
	}
	return l.With(slog.String("component", name))
}
