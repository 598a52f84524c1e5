// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides drawable surfaces and the registry of context
// types that can render into them.
//
// A [Surface] is the acquisition boundary of gldebug: it hands out a
// [gl.Context] for a named context type ("webgl", "experimental-webgl",
// and so on). Drivers register a factory per context type:
//
//	func init() {
//	    surface.Register("webgl", 10, newContext, nil)
//	}
//
// and [Canvas] dispatches GetContext to the registry:
//
//	c := surface.NewCanvas(640, 480)
//	ctx, err := c.GetContext("webgl", nil)
//
// Like an HTML canvas, a Canvas keeps the first context it creates. Asking
// again for the same type returns that context; asking for a different
// type fails with [ContextTypeMismatchError].
package surface
