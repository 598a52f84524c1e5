// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"

	"github.com/gogpu/gldebug/gl"
)

// LoadShader compiles a single shader on ctx.
func LoadShader(ctx gl.Context, typ gl.Enum, src string) (gl.Shader, error) {
	return NewBuilder(ctx).Compile(typ, src)
}

// CreateProgram compiles and links a program on ctx.
func CreateProgram(ctx gl.Context, vsrc, fsrc string) (gl.Program, error) {
	return NewBuilder(ctx).Build(vsrc, fsrc)
}

// InitShaders compiles and links a program on ctx and makes it current.
func InitShaders(ctx gl.Context, vsrc, fsrc string) (gl.Program, error) {
	return NewBuilder(ctx).Init(vsrc, fsrc)
}

// Result is the outcome of a build as a value. Program is zero when the
// build failed and Log then holds the diagnostic.
type Result struct {
	Program gl.Program
	Log     string
}

// OK reports whether the build produced a program.
func (r Result) OK() bool { return r.Program.IsValid() }

// BuildResult is InitShaders returning a Result. The log of a compile or
// link failure is the driver log; other failures carry the error text.
func BuildResult(ctx gl.Context, vsrc, fsrc string) Result {
	p, err := InitShaders(ctx, vsrc, fsrc)
	if err == nil {
		return Result{Program: p}
	}
	var (
		cerr *CompileError
		lerr *LinkError
	)
	switch {
	case errors.As(err, &cerr):
		return Result{Log: cerr.Log}
	case errors.As(err, &lerr):
		return Result{Log: lerr.Log}
	}
	return Result{Log: err.Error()}
}
