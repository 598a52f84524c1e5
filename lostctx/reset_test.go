// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lostctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/lostctx"
	"github.com/gogpu/gldebug/softgl"
)

func TestResetToInitialState(t *testing.T) {
	_, raw, _ := newSim(t)

	buf := raw.CreateBuffer()
	raw.BindBuffer(gl.ARRAY_BUFFER, buf)
	raw.EnableVertexAttribArray(3)
	raw.VertexAttribPointer(3, 2, gl.FLOAT, false, 8, 4)
	raw.ActiveTexture(gl.TEXTURE3)
	tex := raw.CreateTexture()
	raw.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	raw.Enable(gl.SCISSOR_TEST)
	raw.Enable(gl.CULL_FACE)
	raw.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	raw.ClearStencil(7)
	raw.ColorMask(false, true, false, true)
	raw.LineWidth(3)
	raw.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	raw.StencilFunc(gl.EQUAL, 2, 0xF)
	raw.Scissor(1, 1, 2, 2)
	raw.Viewport(1, 1, 2, 2)
	raw.Enable(gl.LINE_WIDTH)

	lostctx.ResetToInitialState(raw)

	st := raw.State()
	assert.Equal(t, gl.TEXTURE0, st.ActiveTexture)
	for i, u := range st.TextureUnits {
		assert.Equal(t, softgl.TextureUnit{}, u, "unit %d", i)
	}
	assert.Equal(t, gl.Buffer{}, st.ArrayBuffer)
	for i, a := range st.VertexAttribs {
		assert.False(t, a.Enabled, "attrib %d", i)
		assert.Equal(t, 4, a.Size)
		assert.Equal(t, 0, a.Offset)
		assert.Equal(t, [4]float32{0, 0, 0, 1}, a.Current)
	}
	for capability, on := range st.Capabilities {
		assert.False(t, on, "capability %#x", uint32(capability))
	}
	assert.Equal(t, gl.ONE, st.BlendSrcRGB)
	assert.Equal(t, gl.ZERO, st.BlendDstAlpha)
	assert.Equal(t, 0, st.ClearStencil)
	assert.Equal(t, [4]bool{true, true, true, true}, st.ColorMask)
	assert.Equal(t, float32(1), st.LineWidth)
	assert.Equal(t, 4, st.UnpackAlignment)
	assert.Equal(t, gl.ALWAYS, st.StencilFront.Func)
	assert.Equal(t, uint32(0xFFFFFFFF), st.StencilBack.ValueMask)

	// Scissor covers the drawing buffer, viewport the client area.
	assert.Equal(t, [4]int{0, 0, 8, 4}, st.Scissor)
	assert.Equal(t, [4]int{0, 0, 16, 8}, st.Viewport)

	assert.Empty(t, drainErrors(raw))
}

func TestResetViewportFallsBackToDrawingBuffer(t *testing.T) {
	raw, err := softgl.New(gl.Canvas{Width: 5, Height: 3}, gl.DefaultAttributes())
	require.NoError(t, err)

	raw.Viewport(0, 0, 1, 1)
	lostctx.ResetToInitialState(raw)
	assert.Equal(t, [4]int{0, 0, 5, 3}, raw.State().Viewport)
}
