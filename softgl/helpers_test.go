// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/gl"
)

const vertexWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u_mvp: mat4x4<f32>;

@vertex
fn vs_main(@location(0) a_position: vec4<f32>, @location(1) a_color: vec4<f32>) -> VertexOutput {
    var output: VertexOutput;
    output.position = u_mvp * a_position;
    output.color = a_color;
    return output;
}
`

const fragmentWGSL = `
@group(0) @binding(1) var<uniform> u_tint: vec4<f32>;

@fragment
fn fs_main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color * u_tint;
}
`

// brokenWGSL has a vertex entry point but does not parse.
const brokenWGSL = `
@vertex
fn vs_main(@location(0) a_position: vec4<f32> -> @builtin(position) vec4<f32> {
    return a_position
}
`

func newTestContext(t *testing.T, opts ...Option) *Context {
	t.Helper()
	c, err := New(gl.Canvas{Width: 16, Height: 8, ClientWidth: 32, ClientHeight: 16}, gl.DefaultAttributes(), opts...)
	require.NoError(t, err)
	return c
}

// drainErrors returns every raised error code in order.
func drainErrors(c gl.Context) []gl.Enum {
	var out []gl.Enum
	for e := c.GetError(); e != gl.NO_ERROR; e = c.GetError() {
		out = append(out, e)
	}
	return out
}

func compileShader(t *testing.T, c gl.Context, typ gl.Enum, src string) gl.Shader {
	t.Helper()
	s := c.CreateShader(typ)
	require.True(t, s.IsValid())
	c.ShaderSource(s, src)
	c.CompileShader(s)
	require.Equal(t, 1, c.GetShaderParameter(s, gl.COMPILE_STATUS), c.GetShaderInfoLog(s))
	return s
}

func linkProgram(t *testing.T, c gl.Context) gl.Program {
	t.Helper()
	vs := compileShader(t, c, gl.VERTEX_SHADER, vertexWGSL)
	fs := compileShader(t, c, gl.FRAGMENT_SHADER, fragmentWGSL)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	require.Equal(t, 1, c.GetProgramParameter(p, gl.LINK_STATUS), c.GetProgramInfoLog(p))
	return p
}
