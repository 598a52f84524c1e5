// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gldebug

import (
	"log/slog"

	"github.com/gogpu/gldebug/internal/glog"
)

// SetLogger configures the logger for gldebug and all its sub-packages.
// By default, diagnostics go to [slog.Default].
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging.
//
// Log levels used by gldebug:
//   - [slog.LevelDebug]: command traces, shader cache and lifecycle details
//   - [slog.LevelInfo]: context acquisition
//   - [slog.LevelWarn]: non-fatal issues (backend mirroring failures)
//   - [slog.LevelError]: GL errors, build failures, context creation failures
//
// Example:
//
//	// Full diagnostics on stderr:
//	gldebug.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	glog.Set(l)
}

// Logger returns the current logger used by gldebug.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return glog.L()
}
