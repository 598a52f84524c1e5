// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gl defines the WebGL 1 command surface that every context in
// gldebug implements.
//
// The surface is statically enumerated: [Context] lists every supported
// command and every non-command property, so raw driver contexts and the
// instrumenting wrappers (see packages debug and lostctx) are
// interchangeable. Any caller coded against a raw [Context] works
// unmodified against a wrapped one.
//
// # Resources
//
// GPU objects are represented by small value handles ([Buffer], [Texture],
// [Shader], [Program], [Framebuffer], [Renderbuffer]). The zero handle is
// the null object. Every handle converts to an [Object], a record carrying
// an explicit [Kind] discriminant, which is what resource trackers store.
//
// Handle values are never reused within one context, mirroring WebGL
// object identity: a deleted object's handle stays deleted forever.
//
// # Constants
//
// Numeric enum values are declared as typed [Enum] constants. [Constants]
// returns the name/value table a context exposes for introspection.
package gl
