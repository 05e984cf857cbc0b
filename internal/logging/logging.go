// Package logging configures the global slog logger for the clipp CLI.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Setup configures the global slog logger. format is "auto", "text",
// or "json"; level is any value slog.Level understands ("debug",
// "info", "warn", "error"), defaulting to info. Call once after flag
// parsing.
func Setup(format, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	w := os.Stderr
	useTint := format == "text" || (format != "json" && IsTTY(w))

	var h slog.Handler
	if useTint {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      lvl,
			TimeFormat: "15:04:05.000",
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		})
	}
	slog.SetDefault(slog.New(h))
}
