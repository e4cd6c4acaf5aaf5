// Package logging builds the slog handlers used by the command line.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type fder interface {
	Fd() uintptr
}

// NewTerminalHandler returns a human readable handler writing to w. Colours are
// only used when w is a terminal.
func NewTerminalHandler(w io.Writer) slog.Handler { //nolint:ireturn
	return tint.NewHandler(w, &tint.Options{ //nolint:exhaustruct
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTerminal(w),
	})
}

// IsTerminal reports whether w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
