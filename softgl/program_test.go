// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/gl"
)

func TestCompileAndLink(t *testing.T) {
	c := newTestContext(t)
	p := linkProgram(t, c)
	require.Empty(t, drainErrors(c))

	assert.Equal(t, 2, c.GetProgramParameter(p, gl.ATTACHED_SHADERS))
	assert.Equal(t, 2, c.GetProgramParameter(p, gl.ACTIVE_ATTRIBUTES))
	assert.Equal(t, 2, c.GetProgramParameter(p, gl.ACTIVE_UNIFORMS))
	assert.Equal(t, 0, c.GetAttribLocation(p, "a_position"))
	assert.Equal(t, 1, c.GetAttribLocation(p, "a_color"))
	assert.Equal(t, -1, c.GetAttribLocation(p, "a_missing"))

	assert.Equal(t, gl.ActiveInfo{Name: "a_color", Size: 1, Type: gl.FLOAT_VEC4}, c.GetActiveAttrib(p, 1))
	assert.Equal(t, gl.ActiveInfo{Name: "u_mvp", Size: 1, Type: gl.FLOAT_MAT4}, c.GetActiveUniform(p, 0))
	assert.Equal(t, gl.ActiveInfo{Name: "u_tint", Size: 1, Type: gl.FLOAT_VEC4}, c.GetActiveUniform(p, 1))

	c.GetActiveUniform(p, 2)
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE}, drainErrors(c))
}

func TestUniforms(t *testing.T) {
	c := newTestContext(t)
	p := linkProgram(t, c)
	c.UseProgram(p)

	mvp := c.GetUniformLocation(p, "u_mvp")
	tint := c.GetUniformLocation(p, "u_tint")
	require.True(t, mvp.IsValid())
	require.True(t, tint.IsValid())
	assert.Equal(t, gl.InvalidUniform, c.GetUniformLocation(p, "u_missing"))

	identity := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	c.UniformMatrix4fv(mvp, false, identity)
	c.Uniform4f(tint, 0.5, 0.25, 1, 1)
	require.Empty(t, drainErrors(c))
	assert.Equal(t, identity, c.GetUniform(p, mvp))
	assert.Equal(t, []float32{0.5, 0.25, 1, 1}, c.GetUniform(p, tint))

	c.Uniform1f(tint, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "type mismatch")

	c.UniformMatrix4fv(mvp, true, identity)
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE}, drainErrors(c), "transpose must be false")

	c.Uniform4f(gl.InvalidUniform, 1, 2, 3, 4)
	assert.Empty(t, drainErrors(c), "location -1 is ignored")
}

func TestUniformFromOtherProgram(t *testing.T) {
	c := newTestContext(t)
	p1 := linkProgram(t, c)
	p2 := linkProgram(t, c)

	tint := c.GetUniformLocation(p1, "u_tint")
	c.UseProgram(p2)
	c.Uniform4f(tint, 1, 1, 1, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
}

func TestUniformWithoutProgram(t *testing.T) {
	c := newTestContext(t)
	c.Uniform1f(gl.Uniform{Value: 1024}, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
}

func TestCompileErrors(t *testing.T) {
	c := newTestContext(t)

	broken := c.CreateShader(gl.VERTEX_SHADER)
	c.ShaderSource(broken, brokenWGSL)
	c.CompileShader(broken)
	assert.Equal(t, 0, c.GetShaderParameter(broken, gl.COMPILE_STATUS))
	assert.True(t, strings.HasPrefix(c.GetShaderInfoLog(broken), "ERROR: "), c.GetShaderInfoLog(broken))

	wrongStage := c.CreateShader(gl.FRAGMENT_SHADER)
	c.ShaderSource(wrongStage, vertexWGSL)
	c.CompileShader(wrongStage)
	assert.Equal(t, 0, c.GetShaderParameter(wrongStage, gl.COMPILE_STATUS))
	assert.Equal(t, "ERROR: no @fragment entry point", c.GetShaderInfoLog(wrongStage))

	empty := c.CreateShader(gl.VERTEX_SHADER)
	c.CompileShader(empty)
	assert.Equal(t, "ERROR: empty shader source", c.GetShaderInfoLog(empty))

	assert.Empty(t, drainErrors(c), "compile failures do not raise GL errors")
	assert.Equal(t, vertexWGSL, c.GetShaderSource(wrongStage))
	assert.Equal(t, int(gl.FRAGMENT_SHADER), c.GetShaderParameter(wrongStage, gl.SHADER_TYPE))
}

func TestLinkErrors(t *testing.T) {
	c := newTestContext(t)

	p := c.CreateProgram()
	c.LinkProgram(p)
	assert.Equal(t, 0, c.GetProgramParameter(p, gl.LINK_STATUS))
	assert.Contains(t, c.GetProgramInfoLog(p), "no vertex shader attached")
	assert.Contains(t, c.GetProgramInfoLog(p), "no fragment shader attached")

	vs := c.CreateShader(gl.VERTEX_SHADER)
	c.ShaderSource(vs, vertexWGSL)
	fs := compileShader(t, c, gl.FRAGMENT_SHADER, fragmentWGSL)
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	assert.Equal(t, "ERROR: vertex shader not compiled", c.GetProgramInfoLog(p))
	assert.Equal(t, 2, c.Stats().LinkErrors)

	c.UseProgram(p)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "unlinked programs cannot be used")

	c.AttachShader(p, compileShader(t, c, gl.FRAGMENT_SHADER, fragmentWGSL))
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "one shader per stage")
}

func TestBindAttribLocation(t *testing.T) {
	c := newTestContext(t)
	vs := compileShader(t, c, gl.VERTEX_SHADER, vertexWGSL)
	fs := compileShader(t, c, gl.FRAGMENT_SHADER, fragmentWGSL)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)

	c.BindAttribLocation(p, 5, "a_color")
	c.LinkProgram(p)
	require.Equal(t, 1, c.GetProgramParameter(p, gl.LINK_STATUS), c.GetProgramInfoLog(p))
	assert.Equal(t, 5, c.GetAttribLocation(p, "a_color"))

	c.BindAttribLocation(p, 0, "a_color")
	c.LinkProgram(p)
	assert.Equal(t, 0, c.GetProgramParameter(p, gl.LINK_STATUS))
	assert.Contains(t, c.GetProgramInfoLog(p), "share location 0")

	c.BindAttribLocation(p, MaxVertexAttribs, "a_color")
	c.BindAttribLocation(p, 1, "webgl_reserved")
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE, gl.INVALID_OPERATION}, drainErrors(c))
}

func TestShaderCache(t *testing.T) {
	c := newTestContext(t)
	compileShader(t, c, gl.VERTEX_SHADER, vertexWGSL)
	compileShader(t, c, gl.VERTEX_SHADER, vertexWGSL)
	compileShader(t, c, gl.FRAGMENT_SHADER, fragmentWGSL)

	st := c.Stats()
	assert.Equal(t, 3, st.Compiles)
	assert.Equal(t, 1, st.CacheHits)

	uncached := newTestContext(t, WithShaderCache(0))
	compileShader(t, uncached, gl.VERTEX_SHADER, vertexWGSL)
	compileShader(t, uncached, gl.VERTEX_SHADER, vertexWGSL)
	assert.Equal(t, 0, uncached.Stats().CacheHits)
}

func TestDeleteProgramInUse(t *testing.T) {
	c := newTestContext(t)
	p := linkProgram(t, c)
	c.UseProgram(p)

	c.DeleteProgram(p)
	assert.False(t, c.IsProgram(p))
	assert.Equal(t, int(p.Value), c.GetParameter(gl.CURRENT_PROGRAM), "flagged program stays current")
	assert.Contains(t, c.programs, p.Value)

	c.UseProgram(gl.Program{})
	assert.NotContains(t, c.programs, p.Value)
	assert.Empty(t, drainErrors(c))
}

func TestDeleteAttachedShader(t *testing.T) {
	c := newTestContext(t)
	p := linkProgram(t, c)
	shaders := c.GetAttachedShaders(p)
	require.Len(t, shaders, 2)
	vs := shaders[0]

	c.DeleteShader(vs)
	assert.False(t, c.IsShader(vs))
	assert.Contains(t, c.shaders, vs.Value, "attached shader survives deletion")

	c.DeleteProgram(p)
	assert.NotContains(t, c.shaders, vs.Value)
	assert.Equal(t, 1, c.Live(gl.KindShader))
	assert.Empty(t, drainErrors(c))
}

func TestDetachShader(t *testing.T) {
	c := newTestContext(t)
	p := linkProgram(t, c)
	vs := c.GetAttachedShaders(p)[0]

	c.DetachShader(p, vs)
	assert.Len(t, c.GetAttachedShaders(p), 1)
	assert.Equal(t, 1, c.GetProgramParameter(p, gl.LINK_STATUS), "detaching keeps the last link")

	c.DetachShader(p, vs)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
}

func TestValidateProgram(t *testing.T) {
	c := newTestContext(t)
	p := linkProgram(t, c)
	assert.Equal(t, 0, c.GetProgramParameter(p, gl.VALIDATE_STATUS))
	c.ValidateProgram(p)
	assert.Equal(t, 1, c.GetProgramParameter(p, gl.VALIDATE_STATUS))
}
