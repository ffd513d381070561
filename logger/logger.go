// Package logger holds the slog.Logger shared by the chordquiz packages.
package logger

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Set installs l for all packages. By default nothing is logged; pass nil to
// go back to that.
//
// Levels in use:
//   - [slog.LevelDebug]: layout and spelling decisions
//   - [slog.LevelInfo]: requests served, files written
//   - [slog.LevelWarn]: recoverable problems (missing font, resampling)
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Get returns the current logger.
func Get() *slog.Logger {
	return loggerPtr.Load()
}

// NewText builds the stderr text logger the CLI uses.
func NewText(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
