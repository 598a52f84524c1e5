// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"math/bits"

	"github.com/gogpu/gldebug/gl"
)

func defaultTexParams() map[gl.Enum]int {
	return map[gl.Enum]int{
		gl.TEXTURE_MIN_FILTER: int(gl.NEAREST_MIPMAP_LINEAR),
		gl.TEXTURE_MAG_FILTER: int(gl.LINEAR),
		gl.TEXTURE_WRAP_S:     int(gl.REPEAT),
		gl.TEXTURE_WRAP_T:     int(gl.REPEAT),
	}
}

func isCubeFace(target gl.Enum) bool {
	return target >= gl.TEXTURE_CUBE_MAP_POSITIVE_X && target <= gl.TEXTURE_CUBE_MAP_NEGATIVE_Z
}

// bindTarget maps an image target to the binding point it belongs to.
func bindTarget(target gl.Enum) gl.Enum {
	if isCubeFace(target) {
		return gl.TEXTURE_CUBE_MAP
	}
	return target
}

// bytesPerPixel returns the size of one pixel of the given format and
// type, or zero for an unsupported combination.
func bytesPerPixel(format, typ gl.Enum) int {
	switch typ {
	case gl.UNSIGNED_BYTE:
		switch format {
		case gl.ALPHA, gl.LUMINANCE:
			return 1
		case gl.LUMINANCE_ALPHA:
			return 2
		case gl.RGB:
			return 3
		case gl.RGBA:
			return 4
		}
	case gl.UNSIGNED_SHORT_5_6_5:
		if format == gl.RGB {
			return 2
		}
	case gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1:
		if format == gl.RGBA {
			return 2
		}
	}
	return 0
}

func isTexFormat(format gl.Enum) bool {
	switch format {
	case gl.ALPHA, gl.LUMINANCE, gl.LUMINANCE_ALPHA, gl.RGB, gl.RGBA:
		return true
	}
	return false
}

func isTexType(typ gl.Enum) bool {
	switch typ {
	case gl.UNSIGNED_BYTE, gl.UNSIGNED_SHORT_5_6_5, gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1:
		return true
	}
	return false
}

func isPowerOfTwo(v int) bool {
	return v > 0 && bits.OnesCount(uint(v)) == 1
}

// alignUp rounds n up to a multiple of align.
func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// unpackSize returns the number of client bytes needed for an image
// uploaded with the given row alignment.
func unpackSize(width, height, bpp, align int) int {
	if width == 0 || height == 0 {
		return 0
	}
	return alignUp(width*bpp, align)*(height-1) + width*bpp
}

func (c *Context) activeUnit() *TextureUnit {
	return &c.state.TextureUnits[c.state.ActiveTexture-gl.TEXTURE0]
}

// boundTexture returns the texture bound to the binding point of target
// on the active unit. It raises INVALID_OPERATION when nothing is bound.
func (c *Context) boundTexture(target gl.Enum) *texture {
	u := c.activeUnit()
	var t gl.Texture
	if bindTarget(target) == gl.TEXTURE_CUBE_MAP {
		t = u.CubeMap
	} else {
		t = u.Texture2D
	}
	tex, ok := c.textures[t.Value]
	if !ok {
		c.setError(gl.INVALID_OPERATION)
		return nil
	}
	return tex
}

func (c *Context) ActiveTexture(texture gl.Enum) {
	if texture < gl.TEXTURE0 || texture >= gl.TEXTURE0+MaxTextureUnits {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.state.ActiveTexture = texture
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	if target != gl.TEXTURE_2D && target != gl.TEXTURE_CUBE_MAP {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if t.Value != 0 {
		tex, ok := c.textures[t.Value]
		if !ok {
			c.setError(gl.INVALID_OPERATION)
			return
		}
		if tex.target != 0 && tex.target != target {
			c.setError(gl.INVALID_OPERATION)
			return
		}
		tex.target = target
	}
	u := c.activeUnit()
	if target == gl.TEXTURE_2D {
		u.Texture2D = t
	} else {
		u.CubeMap = t
	}
}

// checkImage validates the parameters shared by TexImage2D and
// TexSubImage2D and returns the pixel size, or zero after raising an
// error.
func (c *Context) checkImage(target gl.Enum, level, width, height int, format, typ gl.Enum) int {
	if target != gl.TEXTURE_2D && !isCubeFace(target) {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	if !isTexFormat(format) || !isTexType(typ) {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	maxSize := MaxTextureSize
	if isCubeFace(target) {
		maxSize = MaxCubeMapSize
	}
	if level < 0 || width < 0 || height < 0 || width > maxSize || height > maxSize {
		c.setError(gl.INVALID_VALUE)
		return 0
	}
	if level > bits.Len(uint(maxSize))-1 {
		c.setError(gl.INVALID_VALUE)
		return 0
	}
	bpp := bytesPerPixel(format, typ)
	if bpp == 0 {
		c.setError(gl.INVALID_OPERATION)
		return 0
	}
	return bpp
}

// unpack copies a client image into tightly packed storage, applying the
// unpack alignment and flip state.
func (c *Context) unpack(pixels []byte, width, height, bpp int) []byte {
	row := width * bpp
	out := make([]byte, row*height)
	if pixels == nil {
		return out
	}
	stride := alignUp(row, c.state.UnpackAlignment)
	for y := 0; y < height; y++ {
		dst := y
		if c.state.UnpackFlipY {
			dst = height - 1 - y
		}
		copy(out[dst*row:(dst+1)*row], pixels[y*stride:y*stride+row])
	}
	return out
}

func (c *Context) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height, border int, format, typ gl.Enum, pixels []byte) {
	bpp := c.checkImage(target, level, width, height, format, typ)
	if bpp == 0 {
		return
	}
	if border != 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if isCubeFace(target) && width != height {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if internalFormat != format {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	tex := c.boundTexture(target)
	if tex == nil {
		return
	}
	if pixels != nil && len(pixels) < unpackSize(width, height, bpp, c.state.UnpackAlignment) {
		c.setError(gl.INVALID_OPERATION)
		return
	}

	img := &texImage{
		width:  width,
		height: height,
		format: format,
		typ:    typ,
		data:   c.unpack(pixels, width, height, bpp),
	}
	tex.images[imageKey{target, level}] = img

	if be := c.opts.backend; be != nil {
		var upload []byte
		if pixels != nil {
			upload = img.data
		}
		if err := be.TexImage2D(gl.Texture{Value: tex.id}, target, level, width, height, format, typ, upload); err != nil {
			slogger().Warn("softgl: backend texture upload failed", "texture", tex.id, "err", err)
			c.setError(gl.OUT_OF_MEMORY)
		}
	}
}

func (c *Context) TexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int, format, typ gl.Enum, pixels []byte) {
	bpp := c.checkImage(target, level, width, height, format, typ)
	if bpp == 0 {
		return
	}
	tex := c.boundTexture(target)
	if tex == nil {
		return
	}
	img, ok := tex.images[imageKey{target, level}]
	if !ok {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if xoffset < 0 || yoffset < 0 || xoffset+width > img.width || yoffset+height > img.height {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if format != img.format || typ != img.typ {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if len(pixels) < unpackSize(width, height, bpp, c.state.UnpackAlignment) {
		c.setError(gl.INVALID_OPERATION)
		return
	}

	src := c.unpack(pixels, width, height, bpp)
	row := width * bpp
	for y := 0; y < height; y++ {
		off := ((yoffset+y)*img.width + xoffset) * bpp
		copy(img.data[off:off+row], src[y*row:(y+1)*row])
	}

	if be := c.opts.backend; be != nil {
		if err := be.TexImage2D(gl.Texture{Value: tex.id}, target, level, img.width, img.height, img.format, img.typ, img.data); err != nil {
			slogger().Warn("softgl: backend texture upload failed", "texture", tex.id, "err", err)
			c.setError(gl.OUT_OF_MEMORY)
		}
	}
}

// texParamTarget validates a TEXTURE_2D or TEXTURE_CUBE_MAP target and
// returns the texture bound to it.
func (c *Context) texParamTarget(target gl.Enum) *texture {
	if target != gl.TEXTURE_2D && target != gl.TEXTURE_CUBE_MAP {
		c.setError(gl.INVALID_ENUM)
		return nil
	}
	return c.boundTexture(target)
}

func validTexParam(pname gl.Enum, param int) (valid, known bool) {
	v := gl.Enum(param)
	switch pname {
	case gl.TEXTURE_MAG_FILTER:
		return v == gl.NEAREST || v == gl.LINEAR, true
	case gl.TEXTURE_MIN_FILTER:
		switch v {
		case gl.NEAREST, gl.LINEAR,
			gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST,
			gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR:
			return true, true
		}
		return false, true
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T:
		return v == gl.REPEAT || v == gl.CLAMP_TO_EDGE || v == gl.MIRRORED_REPEAT, true
	}
	return false, false
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	valid, known := validTexParam(pname, param)
	if !known {
		c.setError(gl.INVALID_ENUM)
		return
	}
	tex := c.texParamTarget(target)
	if tex == nil {
		return
	}
	if !valid {
		c.setError(gl.INVALID_ENUM)
		return
	}
	tex.params[pname] = param
}

func (c *Context) GetTexParameter(target, pname gl.Enum) int {
	if _, known := validTexParam(pname, 0); !known {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	tex := c.texParamTarget(target)
	if tex == nil {
		return 0
	}
	return tex.params[pname]
}

func (c *Context) GenerateMipmap(target gl.Enum) {
	tex := c.texParamTarget(target)
	if tex == nil {
		return
	}

	faces := []gl.Enum{gl.TEXTURE_2D}
	if target == gl.TEXTURE_CUBE_MAP {
		faces = []gl.Enum{
			gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
		}
	}

	base := tex.images[imageKey{faces[0], 0}]
	for _, f := range faces {
		img, ok := tex.images[imageKey{f, 0}]
		if !ok || !isPowerOfTwo(img.width) || !isPowerOfTwo(img.height) ||
			img.width != base.width || img.height != base.height || img.format != base.format {
			c.setError(gl.INVALID_OPERATION)
			return
		}
	}

	bpp := bytesPerPixel(base.format, base.typ)
	for _, f := range faces {
		w, h := base.width, base.height
		for level := 1; w > 1 || h > 1; level++ {
			w, h = max(w/2, 1), max(h/2, 1)
			tex.images[imageKey{f, level}] = &texImage{
				width: w, height: h,
				format: base.format, typ: base.typ,
				data: make([]byte, w*h*bpp),
			}
		}
	}
}

func (c *Context) PixelStorei(pname gl.Enum, param int) {
	s := &c.state
	switch pname {
	case gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT:
		if param != 1 && param != 2 && param != 4 && param != 8 {
			c.setError(gl.INVALID_VALUE)
			return
		}
		if pname == gl.PACK_ALIGNMENT {
			s.PackAlignment = param
		} else {
			s.UnpackAlignment = param
		}
	case gl.UNPACK_FLIP_Y_WEBGL:
		s.UnpackFlipY = param != 0
	case gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		s.UnpackPremultiplyAlpha = param != 0
	case gl.UNPACK_COLORSPACE_CONVERSION_WEBGL:
		v := gl.Enum(param)
		if v != gl.NONE && v != gl.BROWSER_DEFAULT_WEBGL {
			c.setError(gl.INVALID_VALUE)
			return
		}
		s.UnpackColorspaceConversion = v
	default:
		c.setError(gl.INVALID_ENUM)
	}
}
