// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gl

// Context is the WebGL 1 command interface.
//
// Commands report failures through the GL error flag, retrieved with
// GetError, never through Go errors. Query commands return zero values on
// failure.
type Context interface {
	// Non-command properties. Wrappers pass these through unchanged.

	// Canvas returns the drawable the context renders into.
	Canvas() Canvas
	// DrawingBufferWidth returns the drawing buffer width in pixels.
	DrawingBufferWidth() int
	// DrawingBufferHeight returns the drawing buffer height in pixels.
	DrawingBufferHeight() int
	// Constants returns the numeric constants exposed by the context.
	Constants() []Constant
	// IsContextLost reports whether the context has been lost.
	IsContextLost() bool

	// GetError returns and clears one pending error code, or NO_ERROR.
	GetError() Enum

	// Object lifecycle.
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateRenderbuffer() Renderbuffer
	CreateShader(typ Enum) Shader
	CreateTexture() Texture
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteRenderbuffer(rb Renderbuffer)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	IsBuffer(b Buffer) bool
	IsEnabled(capability Enum) bool
	IsFramebuffer(fb Framebuffer) bool
	IsProgram(p Program) bool
	IsRenderbuffer(rb Renderbuffer) bool
	IsShader(s Shader) bool
	IsTexture(t Texture) bool

	// Bindings.
	ActiveTexture(texture Enum)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	BindTexture(target Enum, t Texture)
	UseProgram(p Program)

	// Buffer objects.
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	GetBufferParameter(target, pname Enum) int

	// Textures.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height, border int, format, typ Enum, pixels []byte)
	TexSubImage2D(target Enum, level, xoffset, yoffset, width, height int, format, typ Enum, pixels []byte)
	TexParameteri(target, pname Enum, param int)
	GetTexParameter(target, pname Enum) int
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int)

	// Framebuffers and renderbuffers.
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb Renderbuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	CheckFramebufferStatus(target Enum) Enum
	GetFramebufferAttachmentParameter(target, attachment, pname Enum) int
	GetRenderbufferParameter(target, pname Enum) int

	// Shaders and programs.
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderParameter(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetShaderSource(s Shader) string
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	ValidateProgram(p Program)
	GetProgramParameter(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetAttachedShaders(p Program) []Shader
	BindAttribLocation(p Program, index int, name string)
	GetAttribLocation(p Program, name string) int
	GetUniformLocation(p Program, name string) Uniform
	GetActiveAttrib(p Program, index int) ActiveInfo
	GetActiveUniform(p Program, index int) ActiveInfo

	// Uniforms and vertex attributes.
	Uniform1f(u Uniform, v float32)
	Uniform1i(u Uniform, v int)
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)
	UniformMatrix4fv(u Uniform, transpose bool, value []float32)
	GetUniform(p Program, u Uniform) []float32
	EnableVertexAttribArray(index int)
	DisableVertexAttribArray(index int)
	VertexAttribPointer(index, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttrib1f(index int, v float32)
	GetVertexAttrib(index int, pname Enum) int
	GetVertexAttribOffset(index int, pname Enum) int

	// Fixed-function state.
	Enable(capability Enum)
	Disable(capability Enum)
	BlendColor(red, green, blue, alpha float32)
	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFunc(sfactor, dfactor Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepth(depth float32)
	ClearStencil(s int)
	ColorMask(red, green, blue, alpha bool)
	CullFace(mode Enum)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	DepthRange(zNear, zFar float32)
	FrontFace(mode Enum)
	Hint(target, mode Enum)
	LineWidth(width float32)
	PolygonOffset(factor, units float32)
	SampleCoverage(value float32, invert bool)
	Scissor(x, y, width, height int)
	StencilFunc(fn Enum, ref int, mask uint32)
	StencilFuncSeparate(face, fn Enum, ref int, mask uint32)
	StencilMask(mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)
	StencilOp(fail, zfail, zpass Enum)
	StencilOpSeparate(face, fail, zfail, zpass Enum)
	Viewport(x, y, width, height int)
	// GetParameter returns an integer-valued parameter. Object bindings
	// are returned as handle values.
	GetParameter(pname Enum) int

	// Drawing.
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	ReadPixels(x, y, width, height int, format, typ Enum, dst []byte)
	Flush()
	Finish()
}

// Unwrapper is implemented by contexts that wrap another context.
type Unwrapper interface {
	Unwrap() Context
}
