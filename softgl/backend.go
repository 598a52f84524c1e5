// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import "github.com/gogpu/gldebug/gl"

// Backend receives resource uploads made through a Context.
//
// Calls happen after softgl has validated the command and updated its own
// state. A non-nil error is reported to the application as OUT_OF_MEMORY.
type Backend interface {
	// BufferData is called when a buffer's store is (re)specified.
	BufferData(b gl.Buffer, usage gl.Enum, data []byte) error

	// BufferSubData is called when part of a buffer's store is replaced.
	BufferSubData(b gl.Buffer, offset int, data []byte) error

	// TexImage2D is called when a texture image is specified or one of its
	// regions is replaced. pixels holds the whole image, tightly packed, or
	// is nil when the image has no initial contents.
	TexImage2D(t gl.Texture, target gl.Enum, level, width, height int, format, typ gl.Enum, pixels []byte) error

	// ShaderCompiled is called after a shader compiles successfully.
	// module is the compiled SPIR-V binary.
	ShaderCompiled(s gl.Shader, typ gl.Enum, source string, module []byte) error

	// Release is called once an object is finally destroyed.
	Release(obj gl.Object)
}
