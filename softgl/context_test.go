// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/surface"
)

func TestNewInvalidSize(t *testing.T) {
	tests := []gl.Canvas{
		{Width: 0, Height: 10},
		{Width: 10, Height: -1},
		{Width: MaxRenderbufferSize + 1, Height: 1},
	}
	for _, canvas := range tests {
		_, err := New(canvas, gl.DefaultAttributes())
		assert.ErrorIs(t, err, ErrInvalidSize, "canvas %+v", canvas)
	}
}

func TestProperties(t *testing.T) {
	c := newTestContext(t)

	assert.Equal(t, 16, c.DrawingBufferWidth())
	assert.Equal(t, 8, c.DrawingBufferHeight())
	assert.Equal(t, 32, c.Canvas().ClientWidth)
	assert.False(t, c.IsContextLost())
	assert.Equal(t, gl.Constants(), c.Constants())
	assert.Equal(t, gl.DefaultAttributes(), c.Attributes())
}

func TestErrorFlagOrder(t *testing.T) {
	c := newTestContext(t)

	c.BindTexture(gl.FRAMEBUFFER, gl.Texture{})
	c.LineWidth(0)
	c.BindTexture(gl.FRAMEBUFFER, gl.Texture{})

	assert.Equal(t, []gl.Enum{gl.INVALID_ENUM, gl.INVALID_VALUE}, drainErrors(c))
	assert.Equal(t, gl.NO_ERROR, c.GetError())
}

func TestBufferLifecycle(t *testing.T) {
	c := newTestContext(t)

	b := c.CreateBuffer()
	require.True(t, b.IsValid())
	assert.False(t, c.IsBuffer(b), "buffer is not a buffer until bound")

	c.BindBuffer(gl.ARRAY_BUFFER, b)
	assert.True(t, c.IsBuffer(b))
	assert.Equal(t, int(b.Value), c.GetParameter(gl.ARRAY_BUFFER_BINDING))

	c.BufferData(gl.ARRAY_BUFFER, make([]byte, 12), gl.STATIC_DRAW)
	assert.Equal(t, 12, c.GetBufferParameter(gl.ARRAY_BUFFER, gl.BUFFER_SIZE))
	assert.Equal(t, int(gl.STATIC_DRAW), c.GetBufferParameter(gl.ARRAY_BUFFER, gl.BUFFER_USAGE))
	assert.Empty(t, drainErrors(c))

	c.BufferSubData(gl.ARRAY_BUFFER, 8, make([]byte, 8))
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE}, drainErrors(c))

	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "buffers keep their first target")

	c.DeleteBuffer(b)
	assert.False(t, c.IsBuffer(b))
	assert.Equal(t, 0, c.GetParameter(gl.ARRAY_BUFFER_BINDING))

	c.DeleteBuffer(b)
	assert.Empty(t, drainErrors(c), "deleting twice is a no-op")

	c.BindBuffer(gl.ARRAY_BUFFER, b)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
}

func TestForeignHandle(t *testing.T) {
	c := newTestContext(t)

	c.DeleteTexture(gl.Texture{Value: 999})
	c.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{Value: 999})
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c))
}

func TestHandlesNeverReused(t *testing.T) {
	c := newTestContext(t)

	seen := make(map[uint32]bool)
	for i := 0; i < 10; i++ {
		b := c.CreateBuffer()
		tex := c.CreateTexture()
		for _, v := range []uint32{b.Value, tex.Value} {
			require.False(t, seen[v], "handle %d reused", v)
			seen[v] = true
		}
		c.DeleteBuffer(b)
		c.DeleteTexture(tex)
	}
	assert.Equal(t, 0, c.Live(gl.KindBuffer))
	assert.Equal(t, 0, c.Live(gl.KindTexture))
}

func TestMaxObjects(t *testing.T) {
	c := newTestContext(t, WithMaxObjects(2))

	assert.True(t, c.CreateBuffer().IsValid())
	tex := c.CreateTexture()
	assert.True(t, tex.IsValid())

	assert.False(t, c.CreateRenderbuffer().IsValid())
	assert.Equal(t, []gl.Enum{gl.OUT_OF_MEMORY}, drainErrors(c))

	c.DeleteTexture(tex)
	assert.True(t, c.CreateRenderbuffer().IsValid())
}

func TestCreateShaderInvalidType(t *testing.T) {
	c := newTestContext(t)

	s := c.CreateShader(gl.TEXTURE_2D)
	assert.False(t, s.IsValid())
	assert.Equal(t, []gl.Enum{gl.INVALID_ENUM}, drainErrors(c))
}

func TestInitialState(t *testing.T) {
	c := newTestContext(t)
	s := c.State()

	assert.Equal(t, gl.TEXTURE0, s.ActiveTexture)
	assert.Len(t, s.TextureUnits, MaxTextureUnits)
	assert.Len(t, s.VertexAttribs, MaxVertexAttribs)
	assert.True(t, s.Capabilities[gl.DITHER])
	assert.False(t, s.Capabilities[gl.BLEND])
	assert.Equal(t, [4]int{0, 0, 16, 8}, s.Viewport)
	assert.Equal(t, [4]int{0, 0, 16, 8}, s.Scissor)
	assert.Equal(t, float32(1), s.ClearDepth)
	assert.Equal(t, gl.LESS, s.DepthFunc)
	assert.Equal(t, uint32(0xFFFFFFFF), s.StencilBack.WriteMask)
	assert.Equal(t, gl.BROWSER_DEFAULT_WEBGL, s.UnpackColorspaceConversion)

	s.Capabilities[gl.BLEND] = true
	assert.False(t, c.IsEnabled(gl.BLEND), "State must return a copy")
}

func TestGetParameter(t *testing.T) {
	c := newTestContext(t)

	c.Enable(gl.BLEND)
	c.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ZERO)
	c.DepthFunc(gl.LEQUAL)
	c.StencilFunc(gl.EQUAL, 3, 0xFF)
	c.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	c.ActiveTexture(gl.TEXTURE3)
	require.Empty(t, drainErrors(c))

	tests := []struct {
		pname gl.Enum
		want  int
	}{
		{gl.BLEND, 1},
		{gl.DEPTH_TEST, 0},
		{gl.BLEND_SRC_RGB, int(gl.SRC_ALPHA)},
		{gl.BLEND_DST_RGB, int(gl.ONE_MINUS_SRC_ALPHA)},
		{gl.DEPTH_FUNC, int(gl.LEQUAL)},
		{gl.STENCIL_FUNC, int(gl.EQUAL)},
		{gl.STENCIL_REF, 3},
		{gl.STENCIL_VALUE_MASK, 0xFF},
		{gl.UNPACK_ALIGNMENT, 1},
		{gl.PACK_ALIGNMENT, 4},
		{gl.ACTIVE_TEXTURE, int(gl.TEXTURE3)},
		{gl.MAX_VERTEX_ATTRIBS, MaxVertexAttribs},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.GetParameter(tt.pname), "pname 0x%x", uint32(tt.pname))
	}

	assert.Equal(t, 0, c.GetParameter(gl.LINE_WIDTH))
	assert.Equal(t, []gl.Enum{gl.INVALID_ENUM}, drainErrors(c))
}

func TestStateValidation(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Context)
		want gl.Enum
	}{
		{"enable unknown", func(c *Context) { c.Enable(gl.TEXTURE_2D) }, gl.INVALID_ENUM},
		{"blend equation", func(c *Context) { c.BlendEquation(gl.ONE) }, gl.INVALID_ENUM},
		{"saturate as dst", func(c *Context) { c.BlendFunc(gl.ONE, gl.SRC_ALPHA_SATURATE) }, gl.INVALID_ENUM},
		{"constant color and alpha", func(c *Context) { c.BlendFunc(gl.CONSTANT_COLOR, gl.CONSTANT_ALPHA) }, gl.INVALID_OPERATION},
		{"cull face", func(c *Context) { c.CullFace(gl.CW) }, gl.INVALID_ENUM},
		{"depth range", func(c *Context) { c.DepthRange(1, 0) }, gl.INVALID_OPERATION},
		{"hint target", func(c *Context) { c.Hint(gl.BLEND, gl.NICEST) }, gl.INVALID_ENUM},
		{"viewport", func(c *Context) { c.Viewport(0, 0, -1, 1) }, gl.INVALID_VALUE},
		{"stencil op", func(c *Context) { c.StencilOp(gl.KEEP, gl.NEVER, gl.KEEP) }, gl.INVALID_ENUM},
		{"stencil face", func(c *Context) { c.StencilMaskSeparate(gl.CW, 0) }, gl.INVALID_ENUM},
		{"pixel store alignment", func(c *Context) { c.PixelStorei(gl.PACK_ALIGNMENT, 3) }, gl.INVALID_VALUE},
		{"active texture", func(c *Context) { c.ActiveTexture(gl.TEXTURE0 + MaxTextureUnits) }, gl.INVALID_ENUM},
		{"attrib index", func(c *Context) { c.EnableVertexAttribArray(MaxVertexAttribs) }, gl.INVALID_VALUE},
		{"clear mask", func(c *Context) { c.Clear(gl.TEXTURE_2D) }, gl.INVALID_VALUE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			tt.call(c)
			assert.Equal(t, []gl.Enum{tt.want}, drainErrors(c))
		})
	}
}

func TestTextureLifecycle(t *testing.T) {
	c := newTestContext(t)

	tex := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_2D, tex)
	assert.True(t, c.IsTexture(tex))

	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 4, 4, 0, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	c.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(gl.LINEAR))
	c.GenerateMipmap(gl.TEXTURE_2D)
	require.Empty(t, drainErrors(c))
	assert.Equal(t, int(gl.LINEAR), c.GetTexParameter(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER))

	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, 4, 4, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "internal format must match format")

	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 4, 4, 0, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 10))
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "pixel data too short")

	c.TexSubImage2D(gl.TEXTURE_2D, 0, 2, 2, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE}, drainErrors(c))

	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 3, 3, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	c.GenerateMipmap(gl.TEXTURE_2D)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "mipmaps need power-of-two sizes")

	c.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, drainErrors(c), "textures keep their first target")

	c.DeleteTexture(tex)
	assert.Equal(t, 0, c.GetParameter(gl.TEXTURE_BINDING_2D))
}

type recordingBackend struct {
	buffers  []gl.Buffer
	textures []gl.Texture
	shaders  []gl.Shader
	released []gl.Object
	fail     error
}

func (b *recordingBackend) BufferData(buf gl.Buffer, _ gl.Enum, _ []byte) error {
	b.buffers = append(b.buffers, buf)
	return b.fail
}

func (b *recordingBackend) BufferSubData(buf gl.Buffer, _ int, _ []byte) error {
	b.buffers = append(b.buffers, buf)
	return b.fail
}

func (b *recordingBackend) TexImage2D(t gl.Texture, _ gl.Enum, _, _, _ int, _, _ gl.Enum, _ []byte) error {
	b.textures = append(b.textures, t)
	return b.fail
}

func (b *recordingBackend) ShaderCompiled(s gl.Shader, _ gl.Enum, _ string, module []byte) error {
	if len(module) == 0 {
		return errors.New("empty module")
	}
	b.shaders = append(b.shaders, s)
	return b.fail
}

func (b *recordingBackend) Release(obj gl.Object) {
	b.released = append(b.released, obj)
}

func TestBackendHooks(t *testing.T) {
	be := &recordingBackend{}
	c := newTestContext(t, WithBackend(be))

	buf := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, buf)
	c.BufferData(gl.ARRAY_BUFFER, []byte{1, 2, 3, 4}, gl.STATIC_DRAW)
	c.BufferSubData(gl.ARRAY_BUFFER, 0, []byte{9})

	tex := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_2D, tex)
	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, []byte{1, 2, 3, 4})

	vs := compileShader(t, c, gl.VERTEX_SHADER, vertexWGSL)
	require.Empty(t, drainErrors(c))

	c.DeleteBuffer(buf)
	c.DeleteShader(vs)

	assert.Equal(t, []gl.Buffer{buf, buf}, be.buffers)
	assert.Equal(t, []gl.Texture{tex}, be.textures)
	assert.Equal(t, []gl.Shader{vs}, be.shaders)
	assert.Equal(t, []gl.Object{buf.Object(), vs.Object()}, be.released)
}

func TestBackendFailureIsOutOfMemory(t *testing.T) {
	be := &recordingBackend{fail: errors.New("device full")}
	c := newTestContext(t, WithBackend(be))

	buf := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, buf)
	c.BufferData(gl.ARRAY_BUFFER, []byte{1}, gl.STATIC_DRAW)
	assert.Equal(t, []gl.Enum{gl.OUT_OF_MEMORY}, drainErrors(c))
}

func TestRegisteredContextType(t *testing.T) {
	entry, ok := surface.Get(ContextType)
	require.True(t, ok)
	assert.Equal(t, "webgl", entry.Name)

	ctx, err := surface.NewCanvas(4, 4).GetContext("webgl", nil)
	require.NoError(t, err)
	_, isSoft := ctx.(*Context)
	assert.True(t, isSoft)
}

func TestFactoryError(t *testing.T) {
	ctx, err := Factory()(gl.Canvas{}, gl.DefaultAttributes())
	assert.Error(t, err)
	assert.Nil(t, ctx)
}
