// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logging configures the default logger
// of the statelist commands.
package logging

import (
	"io"
	"log/slog"
)

// Setup directs the default slog logger to w.
// Only warnings and errors are reported;
// with verbose,
// informative messages are also included.
func Setup(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
