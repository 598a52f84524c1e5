// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package softgl is an in-memory WebGL 1 driver.
//
// softgl implements [gl.Context] without a GPU. It keeps the full pipeline
// state, owns buffer, texture and renderbuffer storage, validates every
// command against WebGL 1 rules and reports failures through the GL error
// flag exactly as a browser context would. It does not rasterize: draw
// calls are validated and counted, Clear fills the color target and
// ReadPixels reads it back.
//
// Shaders are written in WGSL. CompileShader runs the source through
// naga; the compiler diagnostics become the shader info log. LinkProgram
// reflects vertex inputs and uniforms from the WGSL declarations, so
// GetAttribLocation and GetUniformLocation behave as they would for GLSL.
//
// Importing the package registers the "webgl" context type with the
// surface registry:
//
//	import _ "github.com/gogpu/gldebug/softgl"
//
//	ctx, err := surface.NewCanvas(640, 480).GetContext("webgl", nil)
//
// A [Backend] can mirror resource uploads onto a real device; see package
// halgl.
package softgl
