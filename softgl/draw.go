// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gldebug/gl"
)

const clearMask = gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT

func isDrawMode(mode gl.Enum) bool {
	return mode <= gl.TRIANGLE_FAN
}

// checkFramebuffer raises INVALID_FRAMEBUFFER_OPERATION unless the bound
// framebuffer is complete.
func (c *Context) checkFramebuffer() bool {
	if c.framebufferStatus() != gl.FRAMEBUFFER_COMPLETE {
		c.setError(gl.INVALID_FRAMEBUFFER_OPERATION)
		return false
	}
	return true
}

func (c *Context) Clear(mask gl.Enum) {
	if mask&^clearMask != 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if !c.checkFramebuffer() {
		return
	}
	c.stats.Clears++
	if mask&gl.COLOR_BUFFER_BIT != 0 {
		c.clearColorTarget()
	}
}

func (c *Context) clearColorTarget() {
	pix, width, height, ok := c.colorTarget()
	if !ok {
		return
	}

	var rgba [4]byte
	for i, v := range c.state.ClearColor {
		rgba[i] = byte(math.Round(float64(v) * 255))
	}
	if c.state.Framebuffer.Value == 0 && !c.attrs.Alpha {
		rgba[3] = 0xFF
	}

	x0, y0, x1, y1 := 0, 0, width, height
	if c.state.Capabilities[gl.SCISSOR_TEST] {
		s := c.state.Scissor
		x0, y0 = max(x0, s[0]), max(y0, s[1])
		x1, y1 = min(x1, s[0]+s[2]), min(y1, s[1]+s[3])
	}

	mask := c.state.ColorMask
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := pix[(y*width+x)*4:]
			for ch := 0; ch < 4; ch++ {
				if mask[ch] {
					p[ch] = rgba[ch]
				}
			}
		}
	}
}

// checkDraw validates the state shared by DrawArrays and DrawElements.
// maxVertex is the highest vertex index the draw reads, or -1 for an
// empty draw.
func (c *Context) checkDraw(maxVertex int) bool {
	prog := c.currentProgram()
	if prog == nil || !prog.linked {
		c.setError(gl.INVALID_OPERATION)
		return false
	}
	if !c.checkFramebuffer() {
		return false
	}
	for i := range c.state.VertexAttribs {
		a := &c.state.VertexAttribs[i]
		if !a.Enabled {
			continue
		}
		buf, ok := c.buffers[a.Buffer.Value]
		if !ok {
			c.setError(gl.INVALID_OPERATION)
			return false
		}
		if maxVertex < 0 {
			continue
		}
		elem := a.Size * attribTypeSize(a.Type)
		stride := a.Stride
		if stride == 0 {
			stride = elem
		}
		if a.Offset+maxVertex*stride+elem > len(buf.data) {
			c.setError(gl.INVALID_OPERATION)
			return false
		}
	}
	return true
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	if !isDrawMode(mode) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if first < 0 || count < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	maxVertex := -1
	if count > 0 {
		maxVertex = first + count - 1
	}
	if !c.checkDraw(maxVertex) {
		return
	}
	if count > 0 {
		c.stats.DrawCalls++
	}
}

func (c *Context) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	if !isDrawMode(mode) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	var size int
	switch typ {
	case gl.UNSIGNED_BYTE:
		size = 1
	case gl.UNSIGNED_SHORT:
		size = 2
	default:
		c.setError(gl.INVALID_ENUM)
		return
	}
	if count < 0 || offset < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if offset%size != 0 {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	buf, ok := c.buffers[c.state.ElementArrayBuffer.Value]
	if !ok || offset+count*size > len(buf.data) {
		c.setError(gl.INVALID_OPERATION)
		return
	}

	maxVertex := -1
	for i := 0; i < count; i++ {
		var v int
		if size == 1 {
			v = int(buf.data[offset+i])
		} else {
			v = int(binary.LittleEndian.Uint16(buf.data[offset+2*i:]))
		}
		maxVertex = max(maxVertex, v)
	}
	if !c.checkDraw(maxVertex) {
		return
	}
	if count > 0 {
		c.stats.DrawCalls++
	}
}

func (c *Context) ReadPixels(x, y, width, height int, format, typ gl.Enum, dst []byte) {
	if !isTexFormat(format) || !isTexType(typ) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if format != gl.RGBA || typ != gl.UNSIGNED_BYTE {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if width < 0 || height < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if !c.checkFramebuffer() {
		return
	}
	stride := alignUp(width*4, c.state.PackAlignment)
	if height > 0 && len(dst) < stride*(height-1)+width*4 {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	pix, fbWidth, fbHeight, ok := c.colorTarget()
	if !ok {
		c.setError(gl.INVALID_OPERATION)
		return
	}

	// Pixels outside the framebuffer are left untouched.
	for row := 0; row < height; row++ {
		sy := y + row
		if sy < 0 || sy >= fbHeight {
			continue
		}
		for col := 0; col < width; col++ {
			sx := x + col
			if sx < 0 || sx >= fbWidth {
				continue
			}
			copy(dst[row*stride+col*4:row*stride+col*4+4], pix[(sy*fbWidth+sx)*4:])
		}
	}
}

func (c *Context) Flush()  {}
func (c *Context) Finish() {}
