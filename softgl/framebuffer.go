// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import "github.com/gogpu/gldebug/gl"

func isAttachment(a gl.Enum) bool {
	switch a {
	case gl.COLOR_ATTACHMENT0, gl.DEPTH_ATTACHMENT, gl.STENCIL_ATTACHMENT, gl.DEPTH_STENCIL_ATTACHMENT:
		return true
	}
	return false
}

func renderbufferBytes(format gl.Enum) int {
	switch format {
	case gl.RGBA4, gl.RGB565, gl.RGB5_A1, gl.DEPTH_COMPONENT16:
		return 2
	case gl.STENCIL_INDEX8:
		return 1
	case gl.DEPTH_STENCIL:
		return 4
	}
	return 0
}

// attachmentAccepts reports whether an image of format can be attached
// at point.
func attachmentAccepts(point, format gl.Enum) bool {
	switch point {
	case gl.COLOR_ATTACHMENT0:
		return format == gl.RGBA4 || format == gl.RGB565 || format == gl.RGB5_A1 ||
			format == gl.RGBA || format == gl.RGB
	case gl.DEPTH_ATTACHMENT:
		return format == gl.DEPTH_COMPONENT16
	case gl.STENCIL_ATTACHMENT:
		return format == gl.STENCIL_INDEX8
	case gl.DEPTH_STENCIL_ATTACHMENT:
		return format == gl.DEPTH_STENCIL
	}
	return false
}

func (c *Context) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	if target != gl.FRAMEBUFFER {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if fb.Value != 0 {
		f, ok := c.framebuffers[fb.Value]
		if !ok {
			c.setError(gl.INVALID_OPERATION)
			return
		}
		f.bound = true
	}
	c.state.Framebuffer = fb
}

func (c *Context) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	if target != gl.RENDERBUFFER {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if rb.Value != 0 {
		r, ok := c.renderbuffers[rb.Value]
		if !ok {
			c.setError(gl.INVALID_OPERATION)
			return
		}
		r.bound = true
	}
	c.state.Renderbuffer = rb
}

func (c *Context) boundRenderbuffer(target gl.Enum) *renderbuffer {
	if target != gl.RENDERBUFFER {
		c.setError(gl.INVALID_ENUM)
		return nil
	}
	r, ok := c.renderbuffers[c.state.Renderbuffer.Value]
	if !ok {
		c.setError(gl.INVALID_OPERATION)
		return nil
	}
	return r
}

// boundFramebuffer returns the bound framebuffer object. It raises
// INVALID_ENUM for a bad target and INVALID_OPERATION when the default
// framebuffer is bound.
func (c *Context) boundFramebuffer(target gl.Enum) *framebuffer {
	if target != gl.FRAMEBUFFER {
		c.setError(gl.INVALID_ENUM)
		return nil
	}
	f, ok := c.framebuffers[c.state.Framebuffer.Value]
	if !ok {
		c.setError(gl.INVALID_OPERATION)
		return nil
	}
	return f
}

func (c *Context) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	size := renderbufferBytes(internalFormat)
	if target == gl.RENDERBUFFER && size == 0 {
		c.setError(gl.INVALID_ENUM)
		return
	}
	r := c.boundRenderbuffer(target)
	if r == nil {
		return
	}
	if width < 0 || height < 0 || width > MaxRenderbufferSize || height > MaxRenderbufferSize {
		c.setError(gl.INVALID_VALUE)
		return
	}
	r.format = internalFormat
	r.width = width
	r.height = height
	r.data = make([]byte, width*height*size)
}

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	if !isAttachment(attachment) || rbTarget != gl.RENDERBUFFER {
		c.setError(gl.INVALID_ENUM)
		return
	}
	f := c.boundFramebuffer(target)
	if f == nil {
		return
	}
	if rb.Value == 0 {
		delete(f.attachments, attachment)
		return
	}
	if _, ok := c.renderbuffers[rb.Value]; !ok {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	f.attachments[attachment] = newAttachment(rb.Object(), 0, 0)
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	if !isAttachment(attachment) || (texTarget != gl.TEXTURE_2D && !isCubeFace(texTarget)) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	f := c.boundFramebuffer(target)
	if f == nil {
		return
	}
	if level != 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if t.Value == 0 {
		delete(f.attachments, attachment)
		return
	}
	tex, ok := c.textures[t.Value]
	if !ok || (tex.target != 0 && tex.target != bindTarget(texTarget)) {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	f.attachments[attachment] = newAttachment(t.Object(), texTarget, level)
}

func newAttachment(obj gl.Object, texTarget gl.Enum, level int) attachment {
	return attachment{obj: obj, texTarget: texTarget, level: level}
}

// attachmentImage returns the size and format of the image behind a.
func (c *Context) attachmentImage(a attachment) (width, height int, format gl.Enum, ok bool) {
	switch a.obj.Kind {
	case gl.KindRenderbuffer:
		r, found := c.renderbuffers[a.obj.Value]
		if !found {
			return 0, 0, 0, false
		}
		return r.width, r.height, r.format, true
	case gl.KindTexture:
		tex, found := c.textures[a.obj.Value]
		if !found {
			return 0, 0, 0, false
		}
		img, found := tex.images[imageKey{a.texTarget, a.level}]
		if !found {
			return 0, 0, 0, false
		}
		return img.width, img.height, img.format, true
	}
	return 0, 0, 0, false
}

// framebufferStatus computes the completeness of the bound framebuffer.
func (c *Context) framebufferStatus() gl.Enum {
	f, ok := c.framebuffers[c.state.Framebuffer.Value]
	if !ok {
		return gl.FRAMEBUFFER_COMPLETE
	}
	if len(f.attachments) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}

	w, h := -1, -1
	for point, a := range f.attachments {
		aw, ah, format, ok := c.attachmentImage(a)
		if !ok || aw == 0 || ah == 0 || !attachmentAccepts(point, format) {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if w >= 0 && (aw != w || ah != h) {
			return gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS
		}
		w, h = aw, ah
	}

	_, depth := f.attachments[gl.DEPTH_ATTACHMENT]
	_, stencil := f.attachments[gl.STENCIL_ATTACHMENT]
	_, depthStencil := f.attachments[gl.DEPTH_STENCIL_ATTACHMENT]
	if (depth && stencil) || (depthStencil && (depth || stencil)) {
		return gl.FRAMEBUFFER_UNSUPPORTED
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	if target != gl.FRAMEBUFFER {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	return c.framebufferStatus()
}

func (c *Context) GetFramebufferAttachmentParameter(target, attachment, pname gl.Enum) int {
	if !isAttachment(attachment) {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	f := c.boundFramebuffer(target)
	if f == nil {
		return 0
	}
	a, attached := f.attachments[attachment]

	switch pname {
	case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE:
		if !attached {
			return int(gl.NONE)
		}
		if a.obj.Kind == gl.KindTexture {
			return int(gl.TEXTURE)
		}
		return int(gl.RENDERBUFFER)
	case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME:
		if !attached {
			return 0
		}
		return int(a.obj.Value)
	case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL:
		if !attached || a.obj.Kind != gl.KindTexture {
			c.setError(gl.INVALID_ENUM)
			return 0
		}
		return a.level
	}
	c.setError(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetRenderbufferParameter(target, pname gl.Enum) int {
	if pname != gl.RENDERBUFFER_WIDTH && pname != gl.RENDERBUFFER_HEIGHT && pname != gl.RENDERBUFFER_INTERNAL_FORMAT {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	r := c.boundRenderbuffer(target)
	if r == nil {
		return 0
	}
	switch pname {
	case gl.RENDERBUFFER_WIDTH:
		return r.width
	case gl.RENDERBUFFER_HEIGHT:
		return r.height
	}
	if r.format == 0 {
		return int(gl.RGBA4)
	}
	return int(r.format)
}

// colorTarget returns the RGBA8 color storage of the bound framebuffer
// and its size. ok is false when the color attachment has no RGBA8
// storage that can be cleared or read back.
func (c *Context) colorTarget() (pix []byte, width, height int, ok bool) {
	f, bound := c.framebuffers[c.state.Framebuffer.Value]
	if !bound {
		return c.pixels, c.canvas.Width, c.canvas.Height, true
	}
	a, attached := f.attachments[gl.COLOR_ATTACHMENT0]
	if !attached || a.obj.Kind != gl.KindTexture {
		return nil, 0, 0, false
	}
	tex, found := c.textures[a.obj.Value]
	if !found {
		return nil, 0, 0, false
	}
	img, found := tex.images[imageKey{a.texTarget, a.level}]
	if !found || img.format != gl.RGBA || img.typ != gl.UNSIGNED_BYTE {
		return nil, 0, 0, false
	}
	return img.data, img.width, img.height, true
}
