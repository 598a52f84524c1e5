// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lostctx

import (
	"log/slog"

	"github.com/gogpu/gldebug/frame"
	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/internal/glog"
	"github.com/gogpu/gldebug/internal/shadow"
)

func slogger() *slog.Logger { return glog.L() }

// Context is a gl.Context whose loss and restoration can be triggered on
// demand. It must be used from the goroutine that runs its scheduler.
type Context struct {
	ctx    gl.Context
	sched  frame.Scheduler
	shadow *shadow.Set
	res    *tracker

	epoch     uint64
	lost      bool
	restoring bool

	onLost         Listener
	onRestored     Listener
	nextOnRestored Listener
}

var _ gl.Context = (*Context)(nil)

// NewContext wraps ctx. Listeners are run as tasks posted to sched; a nil
// sched gets a private frame.Loop, reachable through Scheduler.
func NewContext(ctx gl.Context, sched frame.Scheduler) *Context {
	if sched == nil {
		sched = frame.NewLoop()
	}
	return &Context{
		ctx:    ctx,
		sched:  sched,
		shadow: shadow.New(),
		res:    newTracker(),
		epoch:  1,
	}
}

// Unwrap returns the wrapped context.
func (c *Context) Unwrap() gl.Context { return c.ctx }

// Scheduler returns the scheduler listener tasks are posted to.
func (c *Context) Scheduler() frame.Scheduler { return c.sched }

// Epoch returns the current context epoch. It starts at 1 and grows by one
// on every loss.
func (c *Context) Epoch() uint64 { return c.epoch }

// Resources returns the tracked objects in creation order.
func (c *Context) Resources() []Record { return c.res.list() }

// IsContextLost reports whether the simulated context is lost.
func (c *Context) IsContextLost() bool { return c.lost }

// SetLostListener registers l to run after the next loss. It replaces any
// previous lost listener.
func (c *Context) SetLostListener(l Listener) {
	c.onLost = l
}

// SetRestoredListener registers l to run after a restore. A listener
// registered while the context is lost takes effect after the pending
// restore has completed, so it does not fire for that restore.
func (c *Context) SetRestoredListener(l Listener) {
	if c.lost {
		c.nextOnRestored = l
		return
	}
	c.onRestored = l
}

// OnContextLost is SetLostListener for a function.
func (c *Context) OnContextLost(fn func(Event)) {
	c.SetLostListener(listenerOf(fn))
}

// OnContextRestored is SetRestoredListener for a function.
func (c *Context) OnContextRestored(fn func(Event)) {
	c.SetRestoredListener(listenerOf(fn))
}

// LoseContext makes the context lost. The state changes before
// LoseContext returns; the lost listener runs on a later tick. Calling it
// while already lost does nothing.
func (c *Context) LoseContext() {
	if c.lost {
		return
	}
	c.lost = true
	c.epoch++
	drainErrors(c.ctx, nil)
	c.shadow.Clear()
	c.shadow.Add(gl.CONTEXT_LOST_WEBGL)

	slogger().Debug("lostctx: context lost", "epoch", c.epoch, "resources", c.res.len())
	c.sched.Post(func() {
		if c.onLost != nil {
			c.onLost.HandleEvent(Event{StatusMessage: StatusLost})
		}
	})
}

// RestoreContext schedules the restoration of a lost context. On a later
// tick the objects from earlier epochs are deleted, the wrapped context is
// reset to its initial state and the restored listener runs.
//
// RestoreContext does nothing unless the context is lost, and a second
// call while a restore is pending is ignored. It returns
// ErrNoRestoreListener when no restored listener is registered.
func (c *Context) RestoreContext() error {
	if !c.lost || c.restoring {
		return nil
	}
	if c.onRestored == nil {
		return ErrNoRestoreListener
	}
	c.restoring = true
	c.sched.Post(c.restore)
	return nil
}

func (c *Context) restore() {
	freed := c.res.free(c.ctx, c.epoch)
	ResetToInitialState(c.ctx)
	c.lost = false
	c.restoring = false
	slogger().Debug("lostctx: context restored", "epoch", c.epoch, "freed", freed)

	cb := c.onRestored
	if c.nextOnRestored != nil {
		c.onRestored = c.nextOnRestored
		c.nextOnRestored = nil
	}
	if cb != nil {
		cb.HandleEvent(Event{StatusMessage: StatusRestored})
	}
}

// current reports whether obj may be used in the current epoch. Null
// objects are always usable.
func (c *Context) current(obj gl.Object) bool {
	if !obj.IsValid() {
		return true
	}
	epoch, ok := c.res.epochOf(obj)
	return ok && epoch == c.epoch
}

// admit reports whether a command referencing objs may be forwarded to the
// wrapped context. A reference to an object from another epoch raises
// INVALID_OPERATION, even while lost. Nothing is forwarded while lost.
func (c *Context) admit(objs ...gl.Object) bool {
	for _, obj := range objs {
		if !c.current(obj) {
			c.shadow.Add(gl.INVALID_OPERATION)
			return false
		}
	}
	return !c.lost
}

// query is admit for commands with a result. While lost it raises
// nothing, so callers return their failure value quietly.
func (c *Context) query(objs ...gl.Object) bool {
	if c.lost {
		return false
	}
	return c.admit(objs...)
}

func (c *Context) track(obj gl.Object) {
	if obj.IsValid() {
		c.res.add(obj, c.epoch)
	}
}

// GetError returns one pending error. While live, errors raised by the
// wrapped context are collected first.
func (c *Context) GetError() gl.Enum {
	if !c.lost {
		drainErrors(c.ctx, c.shadow.Add)
	}
	return c.shadow.Drain()
}

func (c *Context) Canvas() gl.Canvas        { return c.ctx.Canvas() }
func (c *Context) DrawingBufferWidth() int  { return c.ctx.DrawingBufferWidth() }
func (c *Context) DrawingBufferHeight() int { return c.ctx.DrawingBufferHeight() }
func (c *Context) Constants() []gl.Constant { return c.ctx.Constants() }

// Object lifecycle

func (c *Context) CreateBuffer() gl.Buffer {
	if c.lost {
		return gl.Buffer{}
	}
	v := c.ctx.CreateBuffer()
	c.track(v.Object())
	return v
}

func (c *Context) CreateFramebuffer() gl.Framebuffer {
	if c.lost {
		return gl.Framebuffer{}
	}
	v := c.ctx.CreateFramebuffer()
	c.track(v.Object())
	return v
}

func (c *Context) CreateProgram() gl.Program {
	if c.lost {
		return gl.Program{}
	}
	v := c.ctx.CreateProgram()
	c.track(v.Object())
	return v
}

func (c *Context) CreateRenderbuffer() gl.Renderbuffer {
	if c.lost {
		return gl.Renderbuffer{}
	}
	v := c.ctx.CreateRenderbuffer()
	c.track(v.Object())
	return v
}

func (c *Context) CreateShader(typ gl.Enum) gl.Shader {
	if c.lost {
		return gl.Shader{}
	}
	v := c.ctx.CreateShader(typ)
	c.track(v.Object())
	return v
}

func (c *Context) CreateTexture() gl.Texture {
	if c.lost {
		return gl.Texture{}
	}
	v := c.ctx.CreateTexture()
	c.track(v.Object())
	return v
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	if c.admit(b.Object()) {
		c.ctx.DeleteBuffer(b)
		c.res.remove(b.Object())
	}
}

func (c *Context) DeleteFramebuffer(fb gl.Framebuffer) {
	if c.admit(fb.Object()) {
		c.ctx.DeleteFramebuffer(fb)
		c.res.remove(fb.Object())
	}
}

func (c *Context) DeleteProgram(p gl.Program) {
	if c.admit(p.Object()) {
		c.ctx.DeleteProgram(p)
		c.res.remove(p.Object())
	}
}

func (c *Context) DeleteRenderbuffer(rb gl.Renderbuffer) {
	if c.admit(rb.Object()) {
		c.ctx.DeleteRenderbuffer(rb)
		c.res.remove(rb.Object())
	}
}

func (c *Context) DeleteShader(s gl.Shader) {
	if c.admit(s.Object()) {
		c.ctx.DeleteShader(s)
		c.res.remove(s.Object())
	}
}

func (c *Context) DeleteTexture(t gl.Texture) {
	if c.admit(t.Object()) {
		c.ctx.DeleteTexture(t)
		c.res.remove(t.Object())
	}
}

func (c *Context) IsBuffer(b gl.Buffer) bool {
	return c.query(b.Object()) && c.ctx.IsBuffer(b)
}

func (c *Context) IsEnabled(capability gl.Enum) bool {
	return c.query() && c.ctx.IsEnabled(capability)
}

func (c *Context) IsFramebuffer(fb gl.Framebuffer) bool {
	return c.query(fb.Object()) && c.ctx.IsFramebuffer(fb)
}

func (c *Context) IsProgram(p gl.Program) bool {
	return c.query(p.Object()) && c.ctx.IsProgram(p)
}

func (c *Context) IsRenderbuffer(rb gl.Renderbuffer) bool {
	return c.query(rb.Object()) && c.ctx.IsRenderbuffer(rb)
}

func (c *Context) IsShader(s gl.Shader) bool {
	return c.query(s.Object()) && c.ctx.IsShader(s)
}

func (c *Context) IsTexture(t gl.Texture) bool {
	return c.query(t.Object()) && c.ctx.IsTexture(t)
}

// Bindings

func (c *Context) ActiveTexture(texture gl.Enum) {
	if c.admit() {
		c.ctx.ActiveTexture(texture)
	}
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	if c.admit(b.Object()) {
		c.ctx.BindBuffer(target, b)
	}
}

func (c *Context) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	if c.admit(fb.Object()) {
		c.ctx.BindFramebuffer(target, fb)
	}
}

func (c *Context) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	if c.admit(rb.Object()) {
		c.ctx.BindRenderbuffer(target, rb)
	}
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	if c.admit(t.Object()) {
		c.ctx.BindTexture(target, t)
	}
}

func (c *Context) UseProgram(p gl.Program) {
	if c.admit(p.Object()) {
		c.ctx.UseProgram(p)
	}
}

// Buffer objects

func (c *Context) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	if c.admit() {
		c.ctx.BufferData(target, data, usage)
	}
}

func (c *Context) BufferSubData(target gl.Enum, offset int, data []byte) {
	if c.admit() {
		c.ctx.BufferSubData(target, offset, data)
	}
}

func (c *Context) GetBufferParameter(target, pname gl.Enum) int {
	if !c.query() {
		return 0
	}
	return c.ctx.GetBufferParameter(target, pname)
}

// Textures

func (c *Context) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height, border int, format, typ gl.Enum, pixels []byte) {
	if c.admit() {
		c.ctx.TexImage2D(target, level, internalFormat, width, height, border, format, typ, pixels)
	}
}

func (c *Context) TexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int, format, typ gl.Enum, pixels []byte) {
	if c.admit() {
		c.ctx.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, typ, pixels)
	}
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	if c.admit() {
		c.ctx.TexParameteri(target, pname, param)
	}
}

func (c *Context) GetTexParameter(target, pname gl.Enum) int {
	if !c.query() {
		return 0
	}
	return c.ctx.GetTexParameter(target, pname)
}

func (c *Context) GenerateMipmap(target gl.Enum) {
	if c.admit() {
		c.ctx.GenerateMipmap(target)
	}
}

func (c *Context) PixelStorei(pname gl.Enum, param int) {
	if c.admit() {
		c.ctx.PixelStorei(pname, param)
	}
}

// Framebuffers and renderbuffers

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	if c.admit(rb.Object()) {
		c.ctx.FramebufferRenderbuffer(target, attachment, rbTarget, rb)
	}
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	if c.admit(t.Object()) {
		c.ctx.FramebufferTexture2D(target, attachment, texTarget, t, level)
	}
}

func (c *Context) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	if c.admit() {
		c.ctx.RenderbufferStorage(target, internalFormat, width, height)
	}
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	if !c.query() {
		return gl.FRAMEBUFFER_UNSUPPORTED
	}
	return c.ctx.CheckFramebufferStatus(target)
}

func (c *Context) GetFramebufferAttachmentParameter(target, attachment, pname gl.Enum) int {
	if !c.query() {
		return 0
	}
	return c.ctx.GetFramebufferAttachmentParameter(target, attachment, pname)
}

func (c *Context) GetRenderbufferParameter(target, pname gl.Enum) int {
	if !c.query() {
		return 0
	}
	return c.ctx.GetRenderbufferParameter(target, pname)
}

// Shaders and programs

func (c *Context) ShaderSource(s gl.Shader, src string) {
	if c.admit(s.Object()) {
		c.ctx.ShaderSource(s, src)
	}
}

func (c *Context) CompileShader(s gl.Shader) {
	if c.admit(s.Object()) {
		c.ctx.CompileShader(s)
	}
}

func (c *Context) GetShaderParameter(s gl.Shader, pname gl.Enum) int {
	if !c.query(s.Object()) {
		return 0
	}
	return c.ctx.GetShaderParameter(s, pname)
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	if !c.query(s.Object()) {
		return ""
	}
	return c.ctx.GetShaderInfoLog(s)
}

func (c *Context) GetShaderSource(s gl.Shader) string {
	if !c.query(s.Object()) {
		return ""
	}
	return c.ctx.GetShaderSource(s)
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	if c.admit(p.Object(), s.Object()) {
		c.ctx.AttachShader(p, s)
	}
}

func (c *Context) DetachShader(p gl.Program, s gl.Shader) {
	if c.admit(p.Object(), s.Object()) {
		c.ctx.DetachShader(p, s)
	}
}

func (c *Context) LinkProgram(p gl.Program) {
	if c.admit(p.Object()) {
		c.ctx.LinkProgram(p)
	}
}

func (c *Context) ValidateProgram(p gl.Program) {
	if c.admit(p.Object()) {
		c.ctx.ValidateProgram(p)
	}
}

func (c *Context) GetProgramParameter(p gl.Program, pname gl.Enum) int {
	if !c.query(p.Object()) {
		return 0
	}
	return c.ctx.GetProgramParameter(p, pname)
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	if !c.query(p.Object()) {
		return ""
	}
	return c.ctx.GetProgramInfoLog(p)
}

func (c *Context) GetAttachedShaders(p gl.Program) []gl.Shader {
	if !c.query(p.Object()) {
		return nil
	}
	return c.ctx.GetAttachedShaders(p)
}

func (c *Context) BindAttribLocation(p gl.Program, index int, name string) {
	if c.admit(p.Object()) {
		c.ctx.BindAttribLocation(p, index, name)
	}
}

func (c *Context) GetAttribLocation(p gl.Program, name string) int {
	if !c.query(p.Object()) {
		return -1
	}
	return c.ctx.GetAttribLocation(p, name)
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	if !c.query(p.Object()) {
		return gl.InvalidUniform
	}
	return c.ctx.GetUniformLocation(p, name)
}

func (c *Context) GetActiveAttrib(p gl.Program, index int) gl.ActiveInfo {
	if !c.query(p.Object()) {
		return gl.ActiveInfo{}
	}
	return c.ctx.GetActiveAttrib(p, index)
}

func (c *Context) GetActiveUniform(p gl.Program, index int) gl.ActiveInfo {
	if !c.query(p.Object()) {
		return gl.ActiveInfo{}
	}
	return c.ctx.GetActiveUniform(p, index)
}

// Uniforms and vertex attributes

func (c *Context) Uniform1f(u gl.Uniform, v float32) {
	if c.admit() {
		c.ctx.Uniform1f(u, v)
	}
}

func (c *Context) Uniform1i(u gl.Uniform, v int) {
	if c.admit() {
		c.ctx.Uniform1i(u, v)
	}
}

func (c *Context) Uniform4f(u gl.Uniform, v0, v1, v2, v3 float32) {
	if c.admit() {
		c.ctx.Uniform4f(u, v0, v1, v2, v3)
	}
}

func (c *Context) UniformMatrix4fv(u gl.Uniform, transpose bool, value []float32) {
	if c.admit() {
		c.ctx.UniformMatrix4fv(u, transpose, value)
	}
}

func (c *Context) GetUniform(p gl.Program, u gl.Uniform) []float32 {
	if !c.query(p.Object()) {
		return nil
	}
	return c.ctx.GetUniform(p, u)
}

func (c *Context) EnableVertexAttribArray(index int) {
	if c.admit() {
		c.ctx.EnableVertexAttribArray(index)
	}
}

func (c *Context) DisableVertexAttribArray(index int) {
	if c.admit() {
		c.ctx.DisableVertexAttribArray(index)
	}
}

func (c *Context) VertexAttribPointer(index, size int, typ gl.Enum, normalized bool, stride, offset int) {
	if c.admit() {
		c.ctx.VertexAttribPointer(index, size, typ, normalized, stride, offset)
	}
}

func (c *Context) VertexAttrib1f(index int, v float32) {
	if c.admit() {
		c.ctx.VertexAttrib1f(index, v)
	}
}

func (c *Context) GetVertexAttrib(index int, pname gl.Enum) int {
	if !c.query() {
		return 0
	}
	return c.ctx.GetVertexAttrib(index, pname)
}

func (c *Context) GetVertexAttribOffset(index int, pname gl.Enum) int {
	if !c.query() {
		return 0
	}
	return c.ctx.GetVertexAttribOffset(index, pname)
}

// Fixed-function state

func (c *Context) Enable(capability gl.Enum) {
	if c.admit() {
		c.ctx.Enable(capability)
	}
}

func (c *Context) Disable(capability gl.Enum) {
	if c.admit() {
		c.ctx.Disable(capability)
	}
}

func (c *Context) BlendColor(red, green, blue, alpha float32) {
	if c.admit() {
		c.ctx.BlendColor(red, green, blue, alpha)
	}
}

func (c *Context) BlendEquation(mode gl.Enum) {
	if c.admit() {
		c.ctx.BlendEquation(mode)
	}
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	if c.admit() {
		c.ctx.BlendEquationSeparate(modeRGB, modeAlpha)
	}
}

func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	if c.admit() {
		c.ctx.BlendFunc(sfactor, dfactor)
	}
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	if c.admit() {
		c.ctx.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
	}
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	if c.admit() {
		c.ctx.ClearColor(red, green, blue, alpha)
	}
}

func (c *Context) ClearDepth(depth float32) {
	if c.admit() {
		c.ctx.ClearDepth(depth)
	}
}

func (c *Context) ClearStencil(s int) {
	if c.admit() {
		c.ctx.ClearStencil(s)
	}
}

func (c *Context) ColorMask(red, green, blue, alpha bool) {
	if c.admit() {
		c.ctx.ColorMask(red, green, blue, alpha)
	}
}

func (c *Context) CullFace(mode gl.Enum) {
	if c.admit() {
		c.ctx.CullFace(mode)
	}
}

func (c *Context) DepthFunc(fn gl.Enum) {
	if c.admit() {
		c.ctx.DepthFunc(fn)
	}
}

func (c *Context) DepthMask(flag bool) {
	if c.admit() {
		c.ctx.DepthMask(flag)
	}
}

func (c *Context) DepthRange(zNear, zFar float32) {
	if c.admit() {
		c.ctx.DepthRange(zNear, zFar)
	}
}

func (c *Context) FrontFace(mode gl.Enum) {
	if c.admit() {
		c.ctx.FrontFace(mode)
	}
}

func (c *Context) Hint(target, mode gl.Enum) {
	if c.admit() {
		c.ctx.Hint(target, mode)
	}
}

func (c *Context) LineWidth(width float32) {
	if c.admit() {
		c.ctx.LineWidth(width)
	}
}

func (c *Context) PolygonOffset(factor, units float32) {
	if c.admit() {
		c.ctx.PolygonOffset(factor, units)
	}
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	if c.admit() {
		c.ctx.SampleCoverage(value, invert)
	}
}

func (c *Context) Scissor(x, y, width, height int) {
	if c.admit() {
		c.ctx.Scissor(x, y, width, height)
	}
}

func (c *Context) StencilFunc(fn gl.Enum, ref int, mask uint32) {
	if c.admit() {
		c.ctx.StencilFunc(fn, ref, mask)
	}
}

func (c *Context) StencilFuncSeparate(face, fn gl.Enum, ref int, mask uint32) {
	if c.admit() {
		c.ctx.StencilFuncSeparate(face, fn, ref, mask)
	}
}

func (c *Context) StencilMask(mask uint32) {
	if c.admit() {
		c.ctx.StencilMask(mask)
	}
}

func (c *Context) StencilMaskSeparate(face gl.Enum, mask uint32) {
	if c.admit() {
		c.ctx.StencilMaskSeparate(face, mask)
	}
}

func (c *Context) StencilOp(fail, zfail, zpass gl.Enum) {
	if c.admit() {
		c.ctx.StencilOp(fail, zfail, zpass)
	}
}

func (c *Context) StencilOpSeparate(face, fail, zfail, zpass gl.Enum) {
	if c.admit() {
		c.ctx.StencilOpSeparate(face, fail, zfail, zpass)
	}
}

func (c *Context) Viewport(x, y, width, height int) {
	if c.admit() {
		c.ctx.Viewport(x, y, width, height)
	}
}

func (c *Context) GetParameter(pname gl.Enum) int {
	if !c.query() {
		return 0
	}
	return c.ctx.GetParameter(pname)
}

// Drawing

func (c *Context) Clear(mask gl.Enum) {
	if c.admit() {
		c.ctx.Clear(mask)
	}
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	if c.admit() {
		c.ctx.DrawArrays(mode, first, count)
	}
}

func (c *Context) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	if c.admit() {
		c.ctx.DrawElements(mode, count, typ, offset)
	}
}

func (c *Context) ReadPixels(x, y, width, height int, format, typ gl.Enum, dst []byte) {
	if c.admit() {
		c.ctx.ReadPixels(x, y, width, height, format, typ, dst)
	}
}

func (c *Context) Flush() {
	if c.admit() {
		c.ctx.Flush()
	}
}

func (c *Context) Finish() {
	if c.admit() {
		c.ctx.Finish()
	}
}
