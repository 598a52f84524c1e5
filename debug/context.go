// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package debug

import (
	"log/slog"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/internal/glog"
	"github.com/gogpu/gldebug/internal/shadow"
)

// Context is a gl.Context that checks the error flag after every command.
//
// Errors detected by the wrapper are kept in a shadow set, so GetError on
// the wrapper still returns them. GetError never reaches the wrapped
// context.
type Context struct {
	ctx       gl.Context
	reg       *Registry
	formatter *Formatter
	shadow    *shadow.Set
	onError   ErrorFunc
	logger    *slog.Logger
}

var _ gl.Context = (*Context)(nil)

// NewContext wraps ctx.
func NewContext(ctx gl.Context, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reg := o.registry
	if reg == nil {
		reg = NewRegistry()
	}
	reg.Init(ctx)

	c := &Context{
		ctx:       ctx,
		reg:       reg,
		formatter: NewFormatter(reg),
		shadow:    shadow.New(),
		onError:   o.onError,
		logger:    o.logger,
	}
	if c.onError == nil {
		c.onError = c.logError
	}
	return c
}

// Unwrap returns the wrapped context.
func (c *Context) Unwrap() gl.Context { return c.ctx }

// Registry returns the enum registry used for diagnostics.
func (c *Context) Registry() *Registry { return c.reg }

// logError is the default ErrorFunc.
func (c *Context) logError(err gl.Enum, command string, args []any) {
	name := c.reg.MustEnumToString(err)
	call, ferr := c.formatter.FormatCall(command, args)
	if ferr != nil {
		panic(ferr)
	}
	l := c.logger
	if l == nil {
		l = glog.L()
	}
	l.Error("WebGL error " + name + " in " + call)
}

// check polls the wrapped context's error flag once.
func (c *Context) check(command string, args ...any) {
	err := c.ctx.GetError()
	if err == gl.NO_ERROR {
		return
	}
	c.shadow.Add(err)
	c.onError(err, command, args)
}

// GetError returns one error captured by the wrapper, or NO_ERROR.
func (c *Context) GetError() gl.Enum { return c.shadow.Drain() }

func (c *Context) Canvas() gl.Canvas        { return c.ctx.Canvas() }
func (c *Context) DrawingBufferWidth() int  { return c.ctx.DrawingBufferWidth() }
func (c *Context) DrawingBufferHeight() int { return c.ctx.DrawingBufferHeight() }
func (c *Context) Constants() []gl.Constant { return c.ctx.Constants() }
func (c *Context) IsContextLost() bool      { return c.ctx.IsContextLost() }

// Object lifecycle

func (c *Context) CreateBuffer() gl.Buffer {
	v := c.ctx.CreateBuffer()
	c.check("CreateBuffer")
	return v
}

func (c *Context) CreateFramebuffer() gl.Framebuffer {
	v := c.ctx.CreateFramebuffer()
	c.check("CreateFramebuffer")
	return v
}

func (c *Context) CreateProgram() gl.Program {
	v := c.ctx.CreateProgram()
	c.check("CreateProgram")
	return v
}

func (c *Context) CreateRenderbuffer() gl.Renderbuffer {
	v := c.ctx.CreateRenderbuffer()
	c.check("CreateRenderbuffer")
	return v
}

func (c *Context) CreateShader(typ gl.Enum) gl.Shader {
	v := c.ctx.CreateShader(typ)
	c.check("CreateShader", typ)
	return v
}

func (c *Context) CreateTexture() gl.Texture {
	v := c.ctx.CreateTexture()
	c.check("CreateTexture")
	return v
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	c.ctx.DeleteBuffer(b)
	c.check("DeleteBuffer", b)
}

func (c *Context) DeleteFramebuffer(fb gl.Framebuffer) {
	c.ctx.DeleteFramebuffer(fb)
	c.check("DeleteFramebuffer", fb)
}

func (c *Context) DeleteProgram(p gl.Program) {
	c.ctx.DeleteProgram(p)
	c.check("DeleteProgram", p)
}

func (c *Context) DeleteRenderbuffer(rb gl.Renderbuffer) {
	c.ctx.DeleteRenderbuffer(rb)
	c.check("DeleteRenderbuffer", rb)
}

func (c *Context) DeleteShader(s gl.Shader) {
	c.ctx.DeleteShader(s)
	c.check("DeleteShader", s)
}

func (c *Context) DeleteTexture(t gl.Texture) {
	c.ctx.DeleteTexture(t)
	c.check("DeleteTexture", t)
}

func (c *Context) IsBuffer(b gl.Buffer) bool {
	v := c.ctx.IsBuffer(b)
	c.check("IsBuffer", b)
	return v
}

func (c *Context) IsEnabled(capability gl.Enum) bool {
	v := c.ctx.IsEnabled(capability)
	c.check("IsEnabled", capability)
	return v
}

func (c *Context) IsFramebuffer(fb gl.Framebuffer) bool {
	v := c.ctx.IsFramebuffer(fb)
	c.check("IsFramebuffer", fb)
	return v
}

func (c *Context) IsProgram(p gl.Program) bool {
	v := c.ctx.IsProgram(p)
	c.check("IsProgram", p)
	return v
}

func (c *Context) IsRenderbuffer(rb gl.Renderbuffer) bool {
	v := c.ctx.IsRenderbuffer(rb)
	c.check("IsRenderbuffer", rb)
	return v
}

func (c *Context) IsShader(s gl.Shader) bool {
	v := c.ctx.IsShader(s)
	c.check("IsShader", s)
	return v
}

func (c *Context) IsTexture(t gl.Texture) bool {
	v := c.ctx.IsTexture(t)
	c.check("IsTexture", t)
	return v
}

// Bindings

func (c *Context) ActiveTexture(texture gl.Enum) {
	c.ctx.ActiveTexture(texture)
	c.check("ActiveTexture", texture)
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.ctx.BindBuffer(target, b)
	c.check("BindBuffer", target, b)
}

func (c *Context) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	c.ctx.BindFramebuffer(target, fb)
	c.check("BindFramebuffer", target, fb)
}

func (c *Context) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	c.ctx.BindRenderbuffer(target, rb)
	c.check("BindRenderbuffer", target, rb)
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	c.ctx.BindTexture(target, t)
	c.check("BindTexture", target, t)
}

func (c *Context) UseProgram(p gl.Program) {
	c.ctx.UseProgram(p)
	c.check("UseProgram", p)
}

// Buffer objects

func (c *Context) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	c.ctx.BufferData(target, data, usage)
	c.check("BufferData", target, data, usage)
}

func (c *Context) BufferSubData(target gl.Enum, offset int, data []byte) {
	c.ctx.BufferSubData(target, offset, data)
	c.check("BufferSubData", target, offset, data)
}

func (c *Context) GetBufferParameter(target, pname gl.Enum) int {
	v := c.ctx.GetBufferParameter(target, pname)
	c.check("GetBufferParameter", target, pname)
	return v
}

// Textures

func (c *Context) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height, border int, format, typ gl.Enum, pixels []byte) {
	c.ctx.TexImage2D(target, level, internalFormat, width, height, border, format, typ, pixels)
	c.check("TexImage2D", target, level, internalFormat, width, height, border, format, typ, pixels)
}

func (c *Context) TexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int, format, typ gl.Enum, pixels []byte) {
	c.ctx.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, typ, pixels)
	c.check("TexSubImage2D", target, level, xoffset, yoffset, width, height, format, typ, pixels)
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	c.ctx.TexParameteri(target, pname, param)
	c.check("TexParameteri", target, pname, gl.Enum(param))
}

func (c *Context) GetTexParameter(target, pname gl.Enum) int {
	v := c.ctx.GetTexParameter(target, pname)
	c.check("GetTexParameter", target, pname)
	return v
}

func (c *Context) GenerateMipmap(target gl.Enum) {
	c.ctx.GenerateMipmap(target)
	c.check("GenerateMipmap", target)
}

func (c *Context) PixelStorei(pname gl.Enum, param int) {
	c.ctx.PixelStorei(pname, param)
	c.check("PixelStorei", pname, gl.Enum(param))
}

// Framebuffers and renderbuffers

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	c.ctx.FramebufferRenderbuffer(target, attachment, rbTarget, rb)
	c.check("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	c.ctx.FramebufferTexture2D(target, attachment, texTarget, t, level)
	c.check("FramebufferTexture2D", target, attachment, texTarget, t, level)
}

func (c *Context) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	c.ctx.RenderbufferStorage(target, internalFormat, width, height)
	c.check("RenderbufferStorage", target, internalFormat, width, height)
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	v := c.ctx.CheckFramebufferStatus(target)
	c.check("CheckFramebufferStatus", target)
	return v
}

func (c *Context) GetFramebufferAttachmentParameter(target, attachment, pname gl.Enum) int {
	v := c.ctx.GetFramebufferAttachmentParameter(target, attachment, pname)
	c.check("GetFramebufferAttachmentParameter", target, attachment, pname)
	return v
}

func (c *Context) GetRenderbufferParameter(target, pname gl.Enum) int {
	v := c.ctx.GetRenderbufferParameter(target, pname)
	c.check("GetRenderbufferParameter", target, pname)
	return v
}

// Shaders and programs

func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.ctx.ShaderSource(s, src)
	c.check("ShaderSource", s, src)
}

func (c *Context) CompileShader(s gl.Shader) {
	c.ctx.CompileShader(s)
	c.check("CompileShader", s)
}

func (c *Context) GetShaderParameter(s gl.Shader, pname gl.Enum) int {
	v := c.ctx.GetShaderParameter(s, pname)
	c.check("GetShaderParameter", s, pname)
	return v
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	v := c.ctx.GetShaderInfoLog(s)
	c.check("GetShaderInfoLog", s)
	return v
}

func (c *Context) GetShaderSource(s gl.Shader) string {
	v := c.ctx.GetShaderSource(s)
	c.check("GetShaderSource", s)
	return v
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.ctx.AttachShader(p, s)
	c.check("AttachShader", p, s)
}

func (c *Context) DetachShader(p gl.Program, s gl.Shader) {
	c.ctx.DetachShader(p, s)
	c.check("DetachShader", p, s)
}

func (c *Context) LinkProgram(p gl.Program) {
	c.ctx.LinkProgram(p)
	c.check("LinkProgram", p)
}

func (c *Context) ValidateProgram(p gl.Program) {
	c.ctx.ValidateProgram(p)
	c.check("ValidateProgram", p)
}

func (c *Context) GetProgramParameter(p gl.Program, pname gl.Enum) int {
	v := c.ctx.GetProgramParameter(p, pname)
	c.check("GetProgramParameter", p, pname)
	return v
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	v := c.ctx.GetProgramInfoLog(p)
	c.check("GetProgramInfoLog", p)
	return v
}

func (c *Context) GetAttachedShaders(p gl.Program) []gl.Shader {
	v := c.ctx.GetAttachedShaders(p)
	c.check("GetAttachedShaders", p)
	return v
}

func (c *Context) BindAttribLocation(p gl.Program, index int, name string) {
	c.ctx.BindAttribLocation(p, index, name)
	c.check("BindAttribLocation", p, index, name)
}

func (c *Context) GetAttribLocation(p gl.Program, name string) int {
	v := c.ctx.GetAttribLocation(p, name)
	c.check("GetAttribLocation", p, name)
	return v
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	v := c.ctx.GetUniformLocation(p, name)
	c.check("GetUniformLocation", p, name)
	return v
}

func (c *Context) GetActiveAttrib(p gl.Program, index int) gl.ActiveInfo {
	v := c.ctx.GetActiveAttrib(p, index)
	c.check("GetActiveAttrib", p, index)
	return v
}

func (c *Context) GetActiveUniform(p gl.Program, index int) gl.ActiveInfo {
	v := c.ctx.GetActiveUniform(p, index)
	c.check("GetActiveUniform", p, index)
	return v
}

// Uniforms and vertex attributes

func (c *Context) Uniform1f(u gl.Uniform, v float32) {
	c.ctx.Uniform1f(u, v)
	c.check("Uniform1f", u, v)
}

func (c *Context) Uniform1i(u gl.Uniform, v int) {
	c.ctx.Uniform1i(u, v)
	c.check("Uniform1i", u, v)
}

func (c *Context) Uniform4f(u gl.Uniform, v0, v1, v2, v3 float32) {
	c.ctx.Uniform4f(u, v0, v1, v2, v3)
	c.check("Uniform4f", u, v0, v1, v2, v3)
}

func (c *Context) UniformMatrix4fv(u gl.Uniform, transpose bool, value []float32) {
	c.ctx.UniformMatrix4fv(u, transpose, value)
	c.check("UniformMatrix4fv", u, transpose, value)
}

func (c *Context) GetUniform(p gl.Program, u gl.Uniform) []float32 {
	v := c.ctx.GetUniform(p, u)
	c.check("GetUniform", p, u)
	return v
}

func (c *Context) EnableVertexAttribArray(index int) {
	c.ctx.EnableVertexAttribArray(index)
	c.check("EnableVertexAttribArray", index)
}

func (c *Context) DisableVertexAttribArray(index int) {
	c.ctx.DisableVertexAttribArray(index)
	c.check("DisableVertexAttribArray", index)
}

func (c *Context) VertexAttribPointer(index, size int, typ gl.Enum, normalized bool, stride, offset int) {
	c.ctx.VertexAttribPointer(index, size, typ, normalized, stride, offset)
	c.check("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (c *Context) VertexAttrib1f(index int, v float32) {
	c.ctx.VertexAttrib1f(index, v)
	c.check("VertexAttrib1f", index, v)
}

func (c *Context) GetVertexAttrib(index int, pname gl.Enum) int {
	v := c.ctx.GetVertexAttrib(index, pname)
	c.check("GetVertexAttrib", index, pname)
	return v
}

func (c *Context) GetVertexAttribOffset(index int, pname gl.Enum) int {
	v := c.ctx.GetVertexAttribOffset(index, pname)
	c.check("GetVertexAttribOffset", index, pname)
	return v
}

// Fixed-function state

func (c *Context) Enable(capability gl.Enum) {
	c.ctx.Enable(capability)
	c.check("Enable", capability)
}

func (c *Context) Disable(capability gl.Enum) {
	c.ctx.Disable(capability)
	c.check("Disable", capability)
}

func (c *Context) BlendColor(red, green, blue, alpha float32) {
	c.ctx.BlendColor(red, green, blue, alpha)
	c.check("BlendColor", red, green, blue, alpha)
}

func (c *Context) BlendEquation(mode gl.Enum) {
	c.ctx.BlendEquation(mode)
	c.check("BlendEquation", mode)
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	c.ctx.BlendEquationSeparate(modeRGB, modeAlpha)
	c.check("BlendEquationSeparate", modeRGB, modeAlpha)
}

func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	c.ctx.BlendFunc(sfactor, dfactor)
	c.check("BlendFunc", sfactor, dfactor)
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	c.ctx.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
	c.check("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.ctx.ClearColor(red, green, blue, alpha)
	c.check("ClearColor", red, green, blue, alpha)
}

func (c *Context) ClearDepth(depth float32) {
	c.ctx.ClearDepth(depth)
	c.check("ClearDepth", depth)
}

func (c *Context) ClearStencil(s int) {
	c.ctx.ClearStencil(s)
	c.check("ClearStencil", s)
}

func (c *Context) ColorMask(red, green, blue, alpha bool) {
	c.ctx.ColorMask(red, green, blue, alpha)
	c.check("ColorMask", red, green, blue, alpha)
}

func (c *Context) CullFace(mode gl.Enum) {
	c.ctx.CullFace(mode)
	c.check("CullFace", mode)
}

func (c *Context) DepthFunc(fn gl.Enum) {
	c.ctx.DepthFunc(fn)
	c.check("DepthFunc", fn)
}

func (c *Context) DepthMask(flag bool) {
	c.ctx.DepthMask(flag)
	c.check("DepthMask", flag)
}

func (c *Context) DepthRange(zNear, zFar float32) {
	c.ctx.DepthRange(zNear, zFar)
	c.check("DepthRange", zNear, zFar)
}

func (c *Context) FrontFace(mode gl.Enum) {
	c.ctx.FrontFace(mode)
	c.check("FrontFace", mode)
}

func (c *Context) Hint(target, mode gl.Enum) {
	c.ctx.Hint(target, mode)
	c.check("Hint", target, mode)
}

func (c *Context) LineWidth(width float32) {
	c.ctx.LineWidth(width)
	c.check("LineWidth", width)
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.ctx.PolygonOffset(factor, units)
	c.check("PolygonOffset", factor, units)
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	c.ctx.SampleCoverage(value, invert)
	c.check("SampleCoverage", value, invert)
}

func (c *Context) Scissor(x, y, width, height int) {
	c.ctx.Scissor(x, y, width, height)
	c.check("Scissor", x, y, width, height)
}

func (c *Context) StencilFunc(fn gl.Enum, ref int, mask uint32) {
	c.ctx.StencilFunc(fn, ref, mask)
	c.check("StencilFunc", fn, ref, mask)
}

func (c *Context) StencilFuncSeparate(face, fn gl.Enum, ref int, mask uint32) {
	c.ctx.StencilFuncSeparate(face, fn, ref, mask)
	c.check("StencilFuncSeparate", face, fn, ref, mask)
}

func (c *Context) StencilMask(mask uint32) {
	c.ctx.StencilMask(mask)
	c.check("StencilMask", mask)
}

func (c *Context) StencilMaskSeparate(face gl.Enum, mask uint32) {
	c.ctx.StencilMaskSeparate(face, mask)
	c.check("StencilMaskSeparate", face, mask)
}

func (c *Context) StencilOp(fail, zfail, zpass gl.Enum) {
	c.ctx.StencilOp(fail, zfail, zpass)
	c.check("StencilOp", fail, zfail, zpass)
}

func (c *Context) StencilOpSeparate(face, fail, zfail, zpass gl.Enum) {
	c.ctx.StencilOpSeparate(face, fail, zfail, zpass)
	c.check("StencilOpSeparate", face, fail, zfail, zpass)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.ctx.Viewport(x, y, width, height)
	c.check("Viewport", x, y, width, height)
}

func (c *Context) GetParameter(pname gl.Enum) int {
	v := c.ctx.GetParameter(pname)
	c.check("GetParameter", pname)
	return v
}

// Drawing

func (c *Context) Clear(mask gl.Enum) {
	c.ctx.Clear(mask)
	c.check("Clear", mask)
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	c.ctx.DrawArrays(mode, first, count)
	c.check("DrawArrays", mode, first, count)
}

func (c *Context) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	c.ctx.DrawElements(mode, count, typ, offset)
	c.check("DrawElements", mode, count, typ, offset)
}

func (c *Context) ReadPixels(x, y, width, height int, format, typ gl.Enum, dst []byte) {
	c.ctx.ReadPixels(x, y, width, height, format, typ, dst)
	c.check("ReadPixels", x, y, width, height, format, typ, dst)
}

func (c *Context) Flush() {
	c.ctx.Flush()
	c.check("Flush")
}

func (c *Context) Finish() {
	c.ctx.Finish()
	c.check("Finish")
}
