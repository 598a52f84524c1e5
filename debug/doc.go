// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package debug wraps a [gl.Context] so that every command is followed by
// an error check.
//
// The wrapper polls the underlying context's error flag once after each
// command. A non-zero code is remembered in a shadow set, so the
// application still sees it from GetError, and is reported to an
// [ErrorFunc]. The default ErrorFunc writes one log line per error:
//
//	WebGL error INVALID_ENUM in BindTexture(FRAMEBUFFER, Texture(1))
//
// Symbolic names come from a [Registry] built from the context's own
// constants. [Formatter] turns command arguments into text, naming the
// arguments that are known to carry enum values.
package debug
