// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/frame"
	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/lostctx"
	"github.com/gogpu/gldebug/shader"
	"github.com/gogpu/gldebug/softgl"
)

const vertexSrc = `
@group(0) @binding(0) var<uniform> u_scale: vec4<f32>;

@vertex
fn vs_main(@location(0) a_position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return a_position * u_scale;
}
`

const fragmentSrc = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

// fragmentConflictSrc compiles on its own but redeclares u_scale with
// another type, so linking it with vertexSrc fails.
const fragmentConflictSrc = `
@group(0) @binding(1) var<uniform> u_scale: f32;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0) * u_scale;
}
`

const malformedSrc = `
@vertex
fn vs_main(@location(0) a_position: vec4<f32> -> @builtin(position) vec4<f32> {
    return a_position
}
`

// fixture is a softgl context seen through a loss simulator, whose tracker
// shows every object that is still alive.
type fixture struct {
	raw *softgl.Context
	sim *lostctx.Context
}

func newFixture(t *testing.T, opts ...softgl.Option) fixture {
	t.Helper()
	raw, err := softgl.New(gl.Canvas{Width: 4, Height: 4}, gl.DefaultAttributes(), opts...)
	require.NoError(t, err)
	return fixture{raw: raw, sim: lostctx.NewContext(raw, frame.NewLoop())}
}

func quietBuilder(ctx gl.Context) *shader.Builder {
	return shader.NewBuilder(ctx, shader.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
}

func TestBuild(t *testing.T) {
	f := newFixture(t)

	p, err := quietBuilder(f.sim).Build(vertexSrc, fragmentSrc)
	require.NoError(t, err)
	require.True(t, p.IsValid())
	assert.Equal(t, 1, f.sim.GetProgramParameter(p, gl.LINK_STATUS))
	assert.Equal(t, 0, f.raw.GetParameter(gl.CURRENT_PROGRAM), "Build does not make the program current")
	assert.Len(t, f.sim.Resources(), 3)
}

func TestInit(t *testing.T) {
	f := newFixture(t)

	p, err := quietBuilder(f.sim).Init(vertexSrc, fragmentSrc)
	require.NoError(t, err)
	assert.Equal(t, int(p.Value), f.raw.GetParameter(gl.CURRENT_PROGRAM))
	assert.Equal(t, gl.NO_ERROR, f.sim.GetError())
}

func TestVertexCompileFailure(t *testing.T) {
	f := newFixture(t)

	p, err := quietBuilder(f.sim).Init(malformedSrc, fragmentSrc)
	assert.Equal(t, gl.Program{}, p)

	var cerr *shader.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "vertex", cerr.Stage)
	assert.NotEmpty(t, cerr.Log)
	assert.Contains(t, err.Error(), cerr.Log)

	assert.Empty(t, f.sim.Resources(), "failed build leaves no objects behind")
	assert.Equal(t, 1, f.raw.Stats().Compiles, "fragment shader is not attempted")
	assert.Equal(t, 0, f.raw.GetParameter(gl.CURRENT_PROGRAM))
}

func TestFragmentCompileFailure(t *testing.T) {
	f := newFixture(t)

	_, err := quietBuilder(f.sim).Build(vertexSrc, malformedSrc)
	var cerr *shader.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "fragment", cerr.Stage)
	assert.Contains(t, cerr.Log, "ERROR: no @fragment entry point")

	assert.Empty(t, f.sim.Resources())
	assert.Equal(t, 2, f.raw.Stats().Compiles)
}

func TestLinkFailure(t *testing.T) {
	f := newFixture(t)

	p, err := quietBuilder(f.sim).Build(vertexSrc, fragmentConflictSrc)
	assert.False(t, p.IsValid())

	var lerr *shader.LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Contains(t, lerr.Log, `uniform "u_scale" declared with different types`)
	assert.Empty(t, f.sim.Resources())
	assert.Equal(t, 1, f.raw.Stats().LinkErrors)
	assert.Equal(t, gl.NO_ERROR, f.sim.GetError())
}

func TestCreateProgramFailure(t *testing.T) {
	f := newFixture(t, softgl.WithMaxObjects(2))

	_, err := quietBuilder(f.sim).Build(vertexSrc, fragmentSrc)
	require.ErrorIs(t, err, shader.ErrCreateProgram)
	assert.Empty(t, f.sim.Resources())
	assert.Equal(t, gl.OUT_OF_MEMORY, f.sim.GetError())
}

func TestLostContext(t *testing.T) {
	f := newFixture(t)
	f.sim.LoseContext()

	_, err := quietBuilder(f.sim).Build(vertexSrc, fragmentSrc)
	require.ErrorIs(t, err, shader.ErrCreateShader)
	assert.Contains(t, err.Error(), "vertex")
}

func TestFailuresAreLogged(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	b := shader.NewBuilder(f.sim, shader.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	_, err := b.Build(vertexSrc, fragmentConflictSrc)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "shader: failed to link program")
	assert.Contains(t, buf.String(), "declared with different types")
}

func TestStageName(t *testing.T) {
	assert.Equal(t, "vertex", shader.StageName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", shader.StageName(gl.FRAGMENT_SHADER))
	assert.Equal(t, "0x1234", shader.StageName(0x1234))
}
