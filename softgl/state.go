// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"maps"
	"math"
	"slices"

	"github.com/gogpu/gldebug/gl"
)

// Implementation limits.
const (
	MaxTextureUnits      = 8
	MaxVertexAttribs     = 16
	MaxTextureSize       = 4096
	MaxCubeMapSize       = 4096
	MaxRenderbufferSize  = 4096
	MaxVertexUniforms    = 256
	MaxFragmentUniforms  = 256
	MaxVaryingVectors    = 16
	maxStencilMask       = 0xFFFFFFFF
	uniformLocationScale = 1024
)

// TextureUnit holds the textures bound to one texture unit.
type TextureUnit struct {
	Texture2D gl.Texture
	CubeMap   gl.Texture
}

// VertexAttrib is the state of one generic vertex attribute.
type VertexAttrib struct {
	Enabled    bool
	Size       int
	Type       gl.Enum
	Normalized bool
	Stride     int
	Offset     int
	Buffer     gl.Buffer
	Current    [4]float32
}

// StencilState is the stencil configuration of one face.
type StencilState struct {
	Func      gl.Enum
	Ref       int
	ValueMask uint32
	WriteMask uint32
	Fail      gl.Enum
	ZFail     gl.Enum
	ZPass     gl.Enum
}

// State is a snapshot of the pipeline state of a Context.
type State struct {
	ActiveTexture      gl.Enum
	TextureUnits       []TextureUnit
	ArrayBuffer        gl.Buffer
	ElementArrayBuffer gl.Buffer
	Framebuffer        gl.Framebuffer
	Renderbuffer       gl.Renderbuffer
	Program            gl.Program
	Capabilities       map[gl.Enum]bool
	VertexAttribs      []VertexAttrib

	BlendColor         [4]float32
	BlendEquationRGB   gl.Enum
	BlendEquationAlpha gl.Enum
	BlendSrcRGB        gl.Enum
	BlendDstRGB        gl.Enum
	BlendSrcAlpha      gl.Enum
	BlendDstAlpha      gl.Enum

	ClearColor   [4]float32
	ClearDepth   float32
	ClearStencil int
	ColorMask    [4]bool

	CullFaceMode gl.Enum
	DepthFunc    gl.Enum
	DepthMask    bool
	DepthRange   [2]float32
	FrontFace    gl.Enum

	GenerateMipmapHint gl.Enum
	LineWidth          float32

	PackAlignment              int
	UnpackAlignment            int
	UnpackFlipY                bool
	UnpackPremultiplyAlpha     bool
	UnpackColorspaceConversion gl.Enum

	PolygonOffsetFactor  float32
	PolygonOffsetUnits   float32
	SampleCoverageValue  float32
	SampleCoverageInvert bool

	Scissor  [4]int
	Viewport [4]int

	StencilFront StencilState
	StencilBack  StencilState
}

// capabilities lists the values accepted by Enable, Disable and IsEnabled.
var capabilities = []gl.Enum{
	gl.BLEND,
	gl.CULL_FACE,
	gl.DEPTH_TEST,
	gl.DITHER,
	gl.POLYGON_OFFSET_FILL,
	gl.SAMPLE_ALPHA_TO_COVERAGE,
	gl.SAMPLE_COVERAGE,
	gl.SCISSOR_TEST,
	gl.STENCIL_TEST,
}

func defaultStencil() StencilState {
	return StencilState{
		Func:      gl.ALWAYS,
		ValueMask: maxStencilMask,
		WriteMask: maxStencilMask,
		Fail:      gl.KEEP,
		ZFail:     gl.KEEP,
		ZPass:     gl.KEEP,
	}
}

// initialState returns the state of a freshly created context whose
// drawing buffer is width by height pixels.
func initialState(width, height int) State {
	caps := make(map[gl.Enum]bool, len(capabilities))
	for _, c := range capabilities {
		caps[c] = false
	}
	caps[gl.DITHER] = true

	attribs := make([]VertexAttrib, MaxVertexAttribs)
	for i := range attribs {
		attribs[i] = VertexAttrib{Size: 4, Type: gl.FLOAT, Current: [4]float32{0, 0, 0, 1}}
	}

	return State{
		ActiveTexture: gl.TEXTURE0,
		TextureUnits:  make([]TextureUnit, MaxTextureUnits),
		Capabilities:  caps,
		VertexAttribs: attribs,

		BlendEquationRGB:   gl.FUNC_ADD,
		BlendEquationAlpha: gl.FUNC_ADD,
		BlendSrcRGB:        gl.ONE,
		BlendDstRGB:        gl.ZERO,
		BlendSrcAlpha:      gl.ONE,
		BlendDstAlpha:      gl.ZERO,

		ClearDepth: 1,
		ColorMask:  [4]bool{true, true, true, true},

		CullFaceMode: gl.BACK,
		DepthFunc:    gl.LESS,
		DepthMask:    true,
		DepthRange:   [2]float32{0, 1},
		FrontFace:    gl.CCW,

		GenerateMipmapHint: gl.DONT_CARE,
		LineWidth:          1,

		PackAlignment:              4,
		UnpackAlignment:            4,
		UnpackColorspaceConversion: gl.BROWSER_DEFAULT_WEBGL,

		SampleCoverageValue: 1,

		Scissor:  [4]int{0, 0, width, height},
		Viewport: [4]int{0, 0, width, height},

		StencilFront: defaultStencil(),
		StencilBack:  defaultStencil(),
	}
}

// clone returns a deep copy of s.
func (s State) clone() State {
	s.TextureUnits = slices.Clone(s.TextureUnits)
	s.VertexAttribs = slices.Clone(s.VertexAttribs)
	s.Capabilities = maps.Clone(s.Capabilities)
	return s
}

// State returns a copy of the current pipeline state.
func (c *Context) State() State {
	return c.state.clone()
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isCompareFunc(fn gl.Enum) bool {
	return fn >= gl.NEVER && fn <= gl.ALWAYS
}

func isStencilOp(op gl.Enum) bool {
	switch op {
	case gl.KEEP, gl.ZERO, gl.REPLACE, gl.INCR, gl.DECR, gl.INVERT, gl.INCR_WRAP, gl.DECR_WRAP:
		return true
	}
	return false
}

func isFace(face gl.Enum) bool {
	return face == gl.FRONT || face == gl.BACK || face == gl.FRONT_AND_BACK
}

func isBlendEquation(mode gl.Enum) bool {
	return mode == gl.FUNC_ADD || mode == gl.FUNC_SUBTRACT || mode == gl.FUNC_REVERSE_SUBTRACT
}

func isBlendFactor(f gl.Enum, src bool) bool {
	switch f {
	case gl.ZERO, gl.ONE,
		gl.SRC_COLOR, gl.ONE_MINUS_SRC_COLOR,
		gl.DST_COLOR, gl.ONE_MINUS_DST_COLOR,
		gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA,
		gl.DST_ALPHA, gl.ONE_MINUS_DST_ALPHA,
		gl.CONSTANT_COLOR, gl.ONE_MINUS_CONSTANT_COLOR,
		gl.CONSTANT_ALPHA, gl.ONE_MINUS_CONSTANT_ALPHA:
		return true
	case gl.SRC_ALPHA_SATURATE:
		return src
	}
	return false
}

func isConstantColor(f gl.Enum) bool {
	return f == gl.CONSTANT_COLOR || f == gl.ONE_MINUS_CONSTANT_COLOR
}

func isConstantAlpha(f gl.Enum) bool {
	return f == gl.CONSTANT_ALPHA || f == gl.ONE_MINUS_CONSTANT_ALPHA
}

// Fixed-function state commands.

func (c *Context) Enable(capability gl.Enum) {
	if _, ok := c.state.Capabilities[capability]; !ok {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.Capabilities[capability] = true
}

func (c *Context) Disable(capability gl.Enum) {
	if _, ok := c.state.Capabilities[capability]; !ok {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.Capabilities[capability] = false
}

func (c *Context) IsEnabled(capability gl.Enum) bool {
	on, ok := c.state.Capabilities[capability]
	if !ok {
		c.setError(gl.INVALID_ENUM)
		return false
	}
	return on
}

func (c *Context) BlendColor(red, green, blue, alpha float32) {
	c.state.BlendColor = [4]float32{clamp01(red), clamp01(green), clamp01(blue), clamp01(alpha)}
}

func (c *Context) BlendEquation(mode gl.Enum) {
	c.BlendEquationSeparate(mode, mode)
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	if !isBlendEquation(modeRGB) || !isBlendEquation(modeAlpha) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.BlendEquationRGB = modeRGB
	c.state.BlendEquationAlpha = modeAlpha
}

func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	c.BlendFuncSeparate(sfactor, dfactor, sfactor, dfactor)
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	if !isBlendFactor(srcRGB, true) || !isBlendFactor(dstRGB, false) ||
		!isBlendFactor(srcAlpha, true) || !isBlendFactor(dstAlpha, false) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	// WebGL forbids mixing constant color and constant alpha factors.
	if (isConstantColor(srcRGB) && isConstantAlpha(dstRGB)) ||
		(isConstantAlpha(srcRGB) && isConstantColor(dstRGB)) {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.state.BlendSrcRGB = srcRGB
	c.state.BlendDstRGB = dstRGB
	c.state.BlendSrcAlpha = srcAlpha
	c.state.BlendDstAlpha = dstAlpha
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.state.ClearColor = [4]float32{clamp01(red), clamp01(green), clamp01(blue), clamp01(alpha)}
}

func (c *Context) ClearDepth(depth float32) {
	c.state.ClearDepth = clamp01(depth)
}

func (c *Context) ClearStencil(s int) {
	c.state.ClearStencil = s
}

func (c *Context) ColorMask(red, green, blue, alpha bool) {
	c.state.ColorMask = [4]bool{red, green, blue, alpha}
}

func (c *Context) CullFace(mode gl.Enum) {
	if !isFace(mode) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.CullFaceMode = mode
}

func (c *Context) DepthFunc(fn gl.Enum) {
	if !isCompareFunc(fn) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.DepthFunc = fn
}

func (c *Context) DepthMask(flag bool) {
	c.state.DepthMask = flag
}

func (c *Context) DepthRange(zNear, zFar float32) {
	if zNear > zFar {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.state.DepthRange = [2]float32{clamp01(zNear), clamp01(zFar)}
}

func (c *Context) FrontFace(mode gl.Enum) {
	if mode != gl.CW && mode != gl.CCW {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.FrontFace = mode
}

func (c *Context) Hint(target, mode gl.Enum) {
	if target != gl.GENERATE_MIPMAP_HINT {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if mode != gl.DONT_CARE && mode != gl.FASTEST && mode != gl.NICEST {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.GenerateMipmapHint = mode
}

func (c *Context) LineWidth(width float32) {
	if width <= 0 || math.IsNaN(float64(width)) {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.state.LineWidth = width
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.state.PolygonOffsetFactor = factor
	c.state.PolygonOffsetUnits = units
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	c.state.SampleCoverageValue = clamp01(value)
	c.state.SampleCoverageInvert = invert
}

func (c *Context) Scissor(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.state.Scissor = [4]int{x, y, width, height}
}

func (c *Context) Viewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.state.Viewport = [4]int{x, y, width, height}
}

// stencilFaces returns the faces selected by face, or nil for an invalid
// face.
func (c *Context) stencilFaces(face gl.Enum) []*StencilState {
	switch face {
	case gl.FRONT:
		return []*StencilState{&c.state.StencilFront}
	case gl.BACK:
		return []*StencilState{&c.state.StencilBack}
	case gl.FRONT_AND_BACK:
		return []*StencilState{&c.state.StencilFront, &c.state.StencilBack}
	}
	return nil
}

func (c *Context) StencilFunc(fn gl.Enum, ref int, mask uint32) {
	c.StencilFuncSeparate(gl.FRONT_AND_BACK, fn, ref, mask)
}

func (c *Context) StencilFuncSeparate(face, fn gl.Enum, ref int, mask uint32) {
	faces := c.stencilFaces(face)
	if faces == nil || !isCompareFunc(fn) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	for _, f := range faces {
		f.Func = fn
		f.Ref = ref
		f.ValueMask = mask
	}
}

func (c *Context) StencilMask(mask uint32) {
	c.StencilMaskSeparate(gl.FRONT_AND_BACK, mask)
}

func (c *Context) StencilMaskSeparate(face gl.Enum, mask uint32) {
	faces := c.stencilFaces(face)
	if faces == nil {
		c.setError(gl.INVALID_ENUM)
		return
	}
	for _, f := range faces {
		f.WriteMask = mask
	}
}

func (c *Context) StencilOp(fail, zfail, zpass gl.Enum) {
	c.StencilOpSeparate(gl.FRONT_AND_BACK, fail, zfail, zpass)
}

func (c *Context) StencilOpSeparate(face, fail, zfail, zpass gl.Enum) {
	faces := c.stencilFaces(face)
	if faces == nil || !isStencilOp(fail) || !isStencilOp(zfail) || !isStencilOp(zpass) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	for _, f := range faces {
		f.Fail = fail
		f.ZFail = zfail
		f.ZPass = zpass
	}
}

// GetParameter returns integer, enum and boolean parameters. Booleans are
// reported as 0 or 1 and object bindings as handle values. Floating-point
// and vector parameters are not available through GetParameter; use State.
func (c *Context) GetParameter(pname gl.Enum) int {
	s := &c.state
	if on, ok := s.Capabilities[pname]; ok {
		return boolInt(on)
	}

	switch pname {
	case gl.ACTIVE_TEXTURE:
		return int(s.ActiveTexture)
	case gl.ARRAY_BUFFER_BINDING:
		return int(s.ArrayBuffer.Value)
	case gl.ELEMENT_ARRAY_BUFFER_BINDING:
		return int(s.ElementArrayBuffer.Value)
	case gl.FRAMEBUFFER_BINDING:
		return int(s.Framebuffer.Value)
	case gl.RENDERBUFFER_BINDING:
		return int(s.Renderbuffer.Value)
	case gl.CURRENT_PROGRAM:
		return int(s.Program.Value)
	case gl.TEXTURE_BINDING_2D:
		return int(c.activeUnit().Texture2D.Value)
	case gl.TEXTURE_BINDING_CUBE_MAP:
		return int(c.activeUnit().CubeMap.Value)

	case gl.BLEND_EQUATION_RGB:
		return int(s.BlendEquationRGB)
	case gl.BLEND_EQUATION_ALPHA:
		return int(s.BlendEquationAlpha)
	case gl.BLEND_SRC_RGB:
		return int(s.BlendSrcRGB)
	case gl.BLEND_DST_RGB:
		return int(s.BlendDstRGB)
	case gl.BLEND_SRC_ALPHA:
		return int(s.BlendSrcAlpha)
	case gl.BLEND_DST_ALPHA:
		return int(s.BlendDstAlpha)

	case gl.CULL_FACE_MODE:
		return int(s.CullFaceMode)
	case gl.DEPTH_FUNC:
		return int(s.DepthFunc)
	case gl.DEPTH_WRITEMASK:
		return boolInt(s.DepthMask)
	case gl.FRONT_FACE:
		return int(s.FrontFace)
	case gl.GENERATE_MIPMAP_HINT:
		return int(s.GenerateMipmapHint)

	case gl.PACK_ALIGNMENT:
		return s.PackAlignment
	case gl.UNPACK_ALIGNMENT:
		return s.UnpackAlignment
	case gl.UNPACK_FLIP_Y_WEBGL:
		return boolInt(s.UnpackFlipY)
	case gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		return boolInt(s.UnpackPremultiplyAlpha)
	case gl.UNPACK_COLORSPACE_CONVERSION_WEBGL:
		return int(s.UnpackColorspaceConversion)

	case gl.STENCIL_CLEAR_VALUE:
		return s.ClearStencil
	case gl.STENCIL_FUNC:
		return int(s.StencilFront.Func)
	case gl.STENCIL_REF:
		return s.StencilFront.Ref
	case gl.STENCIL_VALUE_MASK:
		return int(s.StencilFront.ValueMask)
	case gl.STENCIL_WRITEMASK:
		return int(s.StencilFront.WriteMask)
	case gl.STENCIL_FAIL:
		return int(s.StencilFront.Fail)
	case gl.STENCIL_PASS_DEPTH_FAIL:
		return int(s.StencilFront.ZFail)
	case gl.STENCIL_PASS_DEPTH_PASS:
		return int(s.StencilFront.ZPass)

	case gl.MAX_TEXTURE_SIZE:
		return MaxTextureSize
	case gl.MAX_CUBE_MAP_TEXTURE_SIZE:
		return MaxCubeMapSize
	case gl.MAX_RENDERBUFFER_SIZE:
		return MaxRenderbufferSize
	case gl.MAX_VERTEX_ATTRIBS:
		return MaxVertexAttribs
	case gl.MAX_TEXTURE_IMAGE_UNITS, gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return MaxTextureUnits
	case gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS:
		return 0
	case gl.MAX_VERTEX_UNIFORM_VECTORS:
		return MaxVertexUniforms
	case gl.MAX_FRAGMENT_UNIFORM_VECTORS:
		return MaxFragmentUniforms
	case gl.MAX_VARYING_VECTORS:
		return MaxVaryingVectors
	}

	c.setError(gl.INVALID_ENUM)
	return 0
}
