// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gldebug instruments WebGL rendering contexts for debugging.
//
// It acquires a context from a [surface.Surface] and layers optional
// wrappers over it, each exposing the same [gl.Context] command surface:
//
//   - [debug.Context] checks the error flag after every command and
//     reports each error with the failing call, enum arguments spelled out.
//   - [lostctx.Context] simulates losing and restoring the context and
//     rejects objects that outlived a loss.
//
// Programs are built with package shader, and package frame provides the
// per-frame scheduler that delivers deferred lifecycle events.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gldebug"
//		"github.com/gogpu/gldebug/shader"
//		"github.com/gogpu/gldebug/surface"
//		_ "github.com/gogpu/gldebug/softgl"
//	)
//
//	canvas := surface.NewCanvas(640, 480)
//	ctx, err := gldebug.GetContext(canvas)
//	if err != nil {
//		log.Fatal(err)
//	}
//	prog, err := shader.InitShaders(ctx, vertexSrc, fragmentSrc)
//
// # Context Acquisition
//
// [Create3DContext] tries each name in [ContextTypes] in order. [Setup]
// additionally reports a failure through a display handler, and
// [GetContext] composes the wrappers:
//
//	raw → debug (WithDebug, on by default) → lostctx (WithLossSimulation)
//
// [LossSimulator] and [DebugContext] find the wrappers again in a composed
// context.
//
// # Logging
//
// Diagnostics are written to a [log/slog] logger shared by every package
// of the module. See [SetLogger].
package gldebug
