// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lostctx

import "github.com/gogpu/gldebug/gl"

// ResetToInitialState puts ctx into the state of a freshly created WebGL
// context: every binding is released, all capabilities are disabled and
// fixed-function state takes its default value. The viewport covers the
// client area of the canvas and the scissor box covers the drawing buffer.
// The drawing buffer is cleared last and pending errors are discarded.
func ResetToInitialState(ctx gl.Context) {
	numAttribs := ctx.GetParameter(gl.MAX_VERTEX_ATTRIBS)
	tmp := ctx.CreateBuffer()
	ctx.BindBuffer(gl.ARRAY_BUFFER, tmp)
	for i := 0; i < numAttribs; i++ {
		ctx.DisableVertexAttribArray(i)
		ctx.VertexAttribPointer(i, 4, gl.FLOAT, false, 0, 0)
		ctx.VertexAttrib1f(i, 0)
	}
	ctx.DeleteBuffer(tmp)

	numUnits := ctx.GetParameter(gl.MAX_TEXTURE_IMAGE_UNITS)
	for i := 0; i < numUnits; i++ {
		ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(i))
		ctx.BindTexture(gl.TEXTURE_CUBE_MAP, gl.Texture{})
		ctx.BindTexture(gl.TEXTURE_2D, gl.Texture{})
	}

	ctx.ActiveTexture(gl.TEXTURE0)
	ctx.UseProgram(gl.Program{})
	ctx.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})
	ctx.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
	ctx.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{})
	ctx.Disable(gl.BLEND)
	ctx.Disable(gl.CULL_FACE)
	ctx.Disable(gl.DEPTH_TEST)
	ctx.Disable(gl.DITHER)
	ctx.Disable(gl.SCISSOR_TEST)
	ctx.BlendColor(0, 0, 0, 0)
	ctx.BlendEquation(gl.FUNC_ADD)
	ctx.BlendFunc(gl.ONE, gl.ZERO)
	ctx.ClearColor(0, 0, 0, 0)
	ctx.ClearDepth(1)
	ctx.ClearStencil(0)
	ctx.ColorMask(true, true, true, true)
	ctx.CullFace(gl.BACK)
	ctx.DepthFunc(gl.LESS)
	ctx.DepthMask(true)
	ctx.DepthRange(0, 1)
	ctx.FrontFace(gl.CCW)
	ctx.Hint(gl.GENERATE_MIPMAP_HINT, gl.DONT_CARE)
	ctx.LineWidth(1)
	ctx.PixelStorei(gl.PACK_ALIGNMENT, 4)
	ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	ctx.PixelStorei(gl.UNPACK_FLIP_Y_WEBGL, 0)
	ctx.PixelStorei(gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL, 0)
	ctx.PixelStorei(gl.UNPACK_COLORSPACE_CONVERSION_WEBGL, int(gl.BROWSER_DEFAULT_WEBGL))
	ctx.PolygonOffset(0, 0)
	ctx.SampleCoverage(1, false)

	canvas := ctx.Canvas()
	ctx.Scissor(0, 0, canvas.Width, canvas.Height)
	ctx.StencilFunc(gl.ALWAYS, 0, 0xFFFFFFFF)
	ctx.StencilMask(0xFFFFFFFF)
	ctx.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)

	w, h := canvas.ClientWidth, canvas.ClientHeight
	if w == 0 && h == 0 {
		w, h = canvas.Width, canvas.Height
	}
	ctx.Viewport(0, 0, w, h)
	ctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	drainErrors(ctx, nil)
}

// maxPendingErrors is the number of distinct error codes a context can
// report, NO_ERROR excluded.
const maxPendingErrors = 6

// drainErrors reads pending errors from ctx until it reports NO_ERROR,
// passing each one to keep when keep is non-nil. At most maxPendingErrors
// codes are read.
func drainErrors(ctx gl.Context, keep func(gl.Enum)) {
	for range maxPendingErrors {
		err := ctx.GetError()
		if err == gl.NO_ERROR {
			return
		}
		if keep != nil {
			keep(err)
		}
	}
}
