// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/gl"
)

func readPixel(t *testing.T, c *Context, x, y int) [4]byte {
	t.Helper()
	var px [4]byte
	c.ReadPixels(x, y, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, px[:])
	require.Empty(t, drainErrors(c))
	return px
}

func TestClear(t *testing.T) {
	c := newTestContext(t)

	c.ClearColor(1, 0, 0, 1)
	c.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	require.Empty(t, drainErrors(c))
	assert.Equal(t, 1, c.Stats().Clears)

	dst := make([]byte, 16*8*4)
	c.ReadPixels(0, 0, 16, 8, gl.RGBA, gl.UNSIGNED_BYTE, dst)
	require.Empty(t, drainErrors(c))
	for i := 0; i < len(dst); i += 4 {
		require.Equal(t, []byte{255, 0, 0, 255}, dst[i:i+4], "pixel %d", i/4)
	}
}

func TestClearScissorAndMask(t *testing.T) {
	c := newTestContext(t)
	c.ClearColor(1, 0, 0, 1)
	c.Clear(gl.COLOR_BUFFER_BIT)

	c.Enable(gl.SCISSOR_TEST)
	c.Scissor(0, 0, 4, 4)
	c.ClearColor(0, 1, 0, 1)
	c.Clear(gl.COLOR_BUFFER_BIT)

	assert.Equal(t, [4]byte{0, 255, 0, 255}, readPixel(t, c, 2, 2))
	assert.Equal(t, [4]byte{255, 0, 0, 255}, readPixel(t, c, 10, 6))

	c.Disable(gl.SCISSOR_TEST)
	c.ColorMask(false, false, true, false)
	c.ClearColor(1, 1, 1, 0)
	c.Clear(gl.COLOR_BUFFER_BIT)
	assert.Equal(t, [4]byte{0, 255, 255, 255}, readPixel(t, c, 2, 2))
}

func TestClearOpaqueDrawingBuffer(t *testing.T) {
	attrs := gl.DefaultAttributes()
	attrs.Alpha = false
	c, err := New(gl.Canvas{Width: 2, Height: 2}, attrs)
	require.NoError(t, err)

	assert.Equal(t, [4]byte{0, 0, 0, 255}, readPixel(t, c, 0, 0))
	c.ClearColor(0.5, 0, 0, 0)
	c.Clear(gl.COLOR_BUFFER_BIT)
	assert.Equal(t, [4]byte{128, 0, 0, 255}, readPixel(t, c, 1, 1))
}

func TestReadPixelsValidation(t *testing.T) {
	c := newTestContext(t)

	c.ReadPixels(0, 0, 1, 1, gl.RGB, gl.UNSIGNED_BYTE, make([]byte, 4))
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))

	c.ReadPixels(0, 0, 1, 1, gl.DEPTH_COMPONENT, gl.UNSIGNED_BYTE, make([]byte, 4))
	assert.Equal(t, []gl.Enum{gl.INVALID_ENUM}, drainErrors(c))

	c.ReadPixels(0, 0, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 15))
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))

	c.PixelStorei(gl.PACK_ALIGNMENT, 8)
	c.ReadPixels(0, 0, 1, 2, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 11))
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
	c.ReadPixels(0, 0, 1, 2, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 12))
	assert.Empty(t, drainErrors(c))

	outside := []byte{7, 7, 7, 7}
	c.ReadPixels(-5, -5, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, outside)
	assert.Equal(t, []byte{7, 7, 7, 7}, outside, "pixels outside the buffer are untouched")
}

func newColorTexture(t *testing.T, c *Context, w, h int) gl.Texture {
	t.Helper()
	tex := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_2D, tex)
	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	require.Empty(t, drainErrors(c))
	return tex
}

func newRenderbuffer(t *testing.T, c *Context, format gl.Enum, w, h int) gl.Renderbuffer {
	t.Helper()
	rb := c.CreateRenderbuffer()
	c.BindRenderbuffer(gl.RENDERBUFFER, rb)
	c.RenderbufferStorage(gl.RENDERBUFFER, format, w, h)
	require.Empty(t, drainErrors(c))
	return rb
}

func TestFramebufferCompleteness(t *testing.T) {
	c := newTestContext(t)
	fb := c.CreateFramebuffer()
	c.BindFramebuffer(gl.FRAMEBUFFER, fb)
	assert.True(t, c.IsFramebuffer(fb))

	assert.Equal(t, gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, c.CheckFramebufferStatus(gl.FRAMEBUFFER))
	c.Clear(gl.COLOR_BUFFER_BIT)
	assert.Equal(t, []gl.Enum{gl.INVALID_FRAMEBUFFER_OPERATION}, drainErrors(c))

	tex := newColorTexture(t, c, 4, 4)
	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	assert.Equal(t, gl.FRAMEBUFFER_COMPLETE, c.CheckFramebufferStatus(gl.FRAMEBUFFER))
	assert.Equal(t, int(gl.TEXTURE), c.GetFramebufferAttachmentParameter(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE))
	assert.Equal(t, int(tex.Value), c.GetFramebufferAttachmentParameter(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME))

	depth := newRenderbuffer(t, c, gl.DEPTH_COMPONENT16, 8, 8)
	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depth)
	assert.Equal(t, gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS, c.CheckFramebufferStatus(gl.FRAMEBUFFER))

	c.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, 4, 4)
	assert.Equal(t, gl.FRAMEBUFFER_COMPLETE, c.CheckFramebufferStatus(gl.FRAMEBUFFER))
	assert.Equal(t, 4, c.GetRenderbufferParameter(gl.RENDERBUFFER, gl.RENDERBUFFER_WIDTH))

	stencil := newRenderbuffer(t, c, gl.STENCIL_INDEX8, 4, 4)
	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, stencil)
	assert.Equal(t, gl.FRAMEBUFFER_UNSUPPORTED, c.CheckFramebufferStatus(gl.FRAMEBUFFER))

	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, gl.Renderbuffer{})
	wrong := newRenderbuffer(t, c, gl.RGBA4, 4, 4)
	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, wrong)
	assert.Equal(t, gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT, c.CheckFramebufferStatus(gl.FRAMEBUFFER))

	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE}, drainErrors(c))
}

func TestFramebufferReadback(t *testing.T) {
	c := newTestContext(t)
	tex := newColorTexture(t, c, 4, 4)
	fb := c.CreateFramebuffer()
	c.BindFramebuffer(gl.FRAMEBUFFER, fb)
	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)

	c.ClearColor(0, 0, 1, 1)
	c.Clear(gl.COLOR_BUFFER_BIT)
	assert.Equal(t, [4]byte{0, 0, 255, 255}, readPixel(t, c, 3, 3))

	c.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
	assert.Equal(t, [4]byte{0, 0, 0, 0}, readPixel(t, c, 3, 3), "default framebuffer untouched")

	c.DeleteFramebuffer(fb)
	assert.Equal(t, 0, c.GetParameter(gl.FRAMEBUFFER_BINDING))
}

func TestFramebufferOperationsNeedBinding(t *testing.T) {
	c := newTestContext(t)
	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, gl.Texture{}, 0)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
	assert.Equal(t, gl.FRAMEBUFFER_COMPLETE, c.CheckFramebufferStatus(gl.FRAMEBUFFER))

	c.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA4, 1, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
}

// vertexData encodes n vec4 positions.
func vertexData(n int) []byte {
	out := make([]byte, n*16)
	for i := 0; i < n*4; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(float32(i)))
	}
	return out
}

func setupDraw(t *testing.T, c *Context, vertices int) {
	t.Helper()
	p := linkProgram(t, c)
	c.UseProgram(p)

	buf := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, buf)
	c.BufferData(gl.ARRAY_BUFFER, vertexData(vertices), gl.STATIC_DRAW)
	c.VertexAttribPointer(0, 4, gl.FLOAT, false, 0, 0)
	c.EnableVertexAttribArray(0)
	require.Empty(t, drainErrors(c))
}

func TestDrawArrays(t *testing.T) {
	c := newTestContext(t)

	c.DrawArrays(gl.TRIANGLES, 0, 3)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "no program")

	setupDraw(t, c, 3)
	c.DrawArrays(gl.TRIANGLES, 0, 3)
	assert.Empty(t, drainErrors(c))
	assert.Equal(t, 1, c.Stats().DrawCalls)

	c.DrawArrays(gl.TRIANGLES, 1, 3)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "reads past the buffer")

	c.DrawArrays(gl.TRIANGLE_FAN+1, 0, 3)
	c.DrawArrays(gl.TRIANGLES, -1, 3)
	assert.Equal(t, []gl.Enum{gl.INVALID_ENUM, gl.INVALID_VALUE}, drainErrors(c))

	c.DrawArrays(gl.TRIANGLES, 0, 0)
	assert.Empty(t, drainErrors(c))
	assert.Equal(t, 1, c.Stats().DrawCalls, "empty draws are not counted")
}

func TestDrawArraysEnabledAttribWithoutBuffer(t *testing.T) {
	c := newTestContext(t)
	setupDraw(t, c, 3)
	c.EnableVertexAttribArray(1)

	c.DrawArrays(gl.TRIANGLES, 0, 3)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
}

func TestDrawElements(t *testing.T) {
	c := newTestContext(t)
	setupDraw(t, c, 3)

	c.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_BYTE, 0)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "no element buffer")

	ebo := c.CreateBuffer()
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	c.BufferData(gl.ELEMENT_ARRAY_BUFFER, []byte{0, 1, 2, 5}, gl.STATIC_DRAW)

	c.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_BYTE, 0)
	assert.Empty(t, drainErrors(c))
	assert.Equal(t, 1, c.Stats().DrawCalls)

	c.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_BYTE, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "index 5 is out of range")

	c.DrawElements(gl.TRIANGLES, 1, gl.UNSIGNED_SHORT, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "misaligned offset")

	c.DrawElements(gl.TRIANGLES, 1, gl.FLOAT, 0)
	assert.Equal(t, []gl.Enum{gl.INVALID_ENUM}, drainErrors(c))
}

func TestVertexAttribPointer(t *testing.T) {
	c := newTestContext(t)

	c.VertexAttribPointer(0, 4, gl.FLOAT, false, 0, 4)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "offset without a buffer")

	buf := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, buf)
	c.VertexAttribPointer(0, 4, gl.FLOAT, false, 0, 2)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "misaligned offset")

	c.VertexAttribPointer(0, 5, gl.FLOAT, false, 0, 0)
	c.VertexAttribPointer(0, 4, gl.INT, false, 0, 0)
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE, gl.INVALID_ENUM}, drainErrors(c))

	c.VertexAttribPointer(2, 3, gl.SHORT, true, 8, 16)
	require.Empty(t, drainErrors(c))
	assert.Equal(t, 3, c.GetVertexAttrib(2, gl.VERTEX_ATTRIB_ARRAY_SIZE))
	assert.Equal(t, int(gl.SHORT), c.GetVertexAttrib(2, gl.VERTEX_ATTRIB_ARRAY_TYPE))
	assert.Equal(t, 1, c.GetVertexAttrib(2, gl.VERTEX_ATTRIB_ARRAY_NORMALIZED))
	assert.Equal(t, int(buf.Value), c.GetVertexAttrib(2, gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING))
	assert.Equal(t, 16, c.GetVertexAttribOffset(2, gl.VERTEX_ATTRIB_ARRAY_POINTER))
}
