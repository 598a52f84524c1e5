// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gldebug

import "errors"

// ErrNoContext is returned when none of the context types could be created.
// The returned error also wraps the failure of every attempt.
var ErrNoContext = errors.New("gldebug: unable to create a WebGL context")

// Failure messages passed to the display handler of Setup.
const (
	// MsgNoSupport is used when the surface knows none of the context types.
	MsgNoSupport = "This program requires WebGL support, but no WebGL context type is registered."

	// MsgOtherProblem is used when a context type exists but creation failed.
	MsgOtherProblem = "It doesn't appear your system can support WebGL."
)
