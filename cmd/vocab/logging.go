// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger library packages reach through slog.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "vocab",
		Level:  level,
	})
}

// installLogger routes the default slog logger to a charmbracelet logger.
func installLogger(w io.Writer, verbose bool) {
	slog.SetDefault(slog.New(newLogger(w, verbose)))
}
