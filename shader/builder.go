// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/internal/glog"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger build failures are reported to. Without it
// the package logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// Builder turns shader sources into linked programs on one context.
type Builder struct {
	ctx    gl.Context
	logger *slog.Logger
}

// NewBuilder returns a Builder issuing its commands to ctx.
func NewBuilder(ctx gl.Context, opts ...Option) *Builder {
	b := &Builder{ctx: ctx}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return glog.L()
}

// StageName returns "vertex" or "fragment" for a shader type.
func StageName(typ gl.Enum) string {
	switch typ {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", uint32(typ))
}

// Compile creates a shader of type typ from src and compiles it. On failure
// the shader is deleted and a *CompileError holding the info log is
// returned.
func (b *Builder) Compile(typ gl.Enum, src string) (gl.Shader, error) {
	ctx := b.ctx
	s := ctx.CreateShader(typ)
	if !s.IsValid() {
		b.log().Error("shader: unable to create shader", "stage", StageName(typ))
		return gl.Shader{}, fmt.Errorf("%w: %s", ErrCreateShader, StageName(typ))
	}

	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	if ctx.GetShaderParameter(s, gl.COMPILE_STATUS) == 0 {
		info := ctx.GetShaderInfoLog(s)
		ctx.DeleteShader(s)
		b.log().Error("shader: failed to compile shader", "stage", StageName(typ), "log", info)
		return gl.Shader{}, &CompileError{Stage: StageName(typ), Log: info}
	}
	return s, nil
}

// Link creates a program from two compiled shaders and links it.
//
// Link owns vs and fs: when it fails they are deleted together with the
// program, and a *LinkError with the program info log is returned.
func (b *Builder) Link(vs, fs gl.Shader) (gl.Program, error) {
	ctx := b.ctx
	p := ctx.CreateProgram()
	if !p.IsValid() {
		ctx.DeleteShader(fs)
		ctx.DeleteShader(vs)
		b.log().Error("shader: unable to create program")
		return gl.Program{}, ErrCreateProgram
	}

	ctx.AttachShader(p, vs)
	ctx.AttachShader(p, fs)
	ctx.LinkProgram(p)
	if ctx.GetProgramParameter(p, gl.LINK_STATUS) == 0 {
		info := ctx.GetProgramInfoLog(p)
		ctx.DeleteProgram(p)
		ctx.DeleteShader(fs)
		ctx.DeleteShader(vs)
		b.log().Error("shader: failed to link program", "log", info)
		return gl.Program{}, &LinkError{Log: info}
	}
	return p, nil
}

// Build compiles vsrc and fsrc and links them into a program. The
// fragment shader is not compiled when the vertex shader fails.
func (b *Builder) Build(vsrc, fsrc string) (gl.Program, error) {
	vs, err := b.Compile(gl.VERTEX_SHADER, vsrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := b.Compile(gl.FRAGMENT_SHADER, fsrc)
	if err != nil {
		b.ctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	return b.Link(vs, fs)
}

// Init is Build followed by making the program current.
func (b *Builder) Init(vsrc, fsrc string) (gl.Program, error) {
	p, err := b.Build(vsrc, fsrc)
	if err != nil {
		return gl.Program{}, err
	}
	b.ctx.UseProgram(p)
	b.log().Debug("shader: program ready", "program", p.Value)
	return p, nil
}
