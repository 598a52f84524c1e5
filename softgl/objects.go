// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import "github.com/gogpu/gldebug/gl"

type buffer struct {
	id     uint32
	target gl.Enum // zero until first bound
	usage  gl.Enum
	data   []byte
}

type imageKey struct {
	target gl.Enum
	level  int
}

type texImage struct {
	width, height int
	format        gl.Enum
	typ           gl.Enum
	data          []byte
}

type texture struct {
	id     uint32
	target gl.Enum // zero until first bound
	images map[imageKey]*texImage
	params map[gl.Enum]int
}

type renderbuffer struct {
	id            uint32
	bound         bool
	format        gl.Enum
	width, height int
	data          []byte
}

type attachment struct {
	obj       gl.Object
	texTarget gl.Enum
	level     int
}

type framebuffer struct {
	id          uint32
	bound       bool
	attachments map[gl.Enum]attachment
}

// allocID returns a fresh object id, or zero after raising OUT_OF_MEMORY
// when the object limit is reached. Ids are never reused.
func (c *Context) allocID() uint32 {
	if c.opts.maxObjects > 0 && c.liveTotal() >= c.opts.maxObjects {
		c.setError(gl.OUT_OF_MEMORY)
		return 0
	}
	c.nextID++
	return c.nextID
}

// issued reports whether id was handed out by this context.
func (c *Context) issued(id uint32) bool {
	return id != 0 && id <= c.nextID
}

func (c *Context) liveTotal() int {
	n := 0
	for _, k := range []gl.Kind{gl.KindBuffer, gl.KindFramebuffer, gl.KindProgram, gl.KindRenderbuffer, gl.KindShader, gl.KindTexture} {
		n += c.Live(k)
	}
	return n
}

// Live returns the number of objects of kind that have not been deleted.
func (c *Context) Live(kind gl.Kind) int {
	switch kind {
	case gl.KindBuffer:
		return len(c.buffers)
	case gl.KindFramebuffer:
		return len(c.framebuffers)
	case gl.KindRenderbuffer:
		return len(c.renderbuffers)
	case gl.KindTexture:
		return len(c.textures)
	case gl.KindProgram:
		n := 0
		for _, p := range c.programs {
			if !p.deleted {
				n++
			}
		}
		return n
	case gl.KindShader:
		n := 0
		for _, s := range c.shaders {
			if !s.deleted {
				n++
			}
		}
		return n
	}
	return 0
}

func (c *Context) release(obj gl.Object) {
	if c.opts.backend != nil {
		c.opts.backend.Release(obj)
	}
}

// deleteUnknown handles Delete* for an id that is not live: ids this
// context issued were already deleted and are ignored, anything else
// belongs to another context.
func (c *Context) deleteUnknown(id uint32) {
	if id != 0 && !c.issued(id) {
		c.setError(gl.INVALID_OPERATION)
	}
}

// Creation.

func (c *Context) CreateBuffer() gl.Buffer {
	id := c.allocID()
	if id == 0 {
		return gl.Buffer{}
	}
	c.buffers[id] = &buffer{id: id}
	return gl.Buffer{Value: id}
}

func (c *Context) CreateFramebuffer() gl.Framebuffer {
	id := c.allocID()
	if id == 0 {
		return gl.Framebuffer{}
	}
	c.framebuffers[id] = &framebuffer{id: id, attachments: make(map[gl.Enum]attachment)}
	return gl.Framebuffer{Value: id}
}

func (c *Context) CreateProgram() gl.Program {
	id := c.allocID()
	if id == 0 {
		return gl.Program{}
	}
	c.programs[id] = &program{id: id, bindings: make(map[string]int)}
	return gl.Program{Value: id}
}

func (c *Context) CreateRenderbuffer() gl.Renderbuffer {
	id := c.allocID()
	if id == 0 {
		return gl.Renderbuffer{}
	}
	c.renderbuffers[id] = &renderbuffer{id: id}
	return gl.Renderbuffer{Value: id}
}

func (c *Context) CreateShader(typ gl.Enum) gl.Shader {
	if typ != gl.VERTEX_SHADER && typ != gl.FRAGMENT_SHADER {
		c.setError(gl.INVALID_ENUM)
		return gl.Shader{}
	}
	id := c.allocID()
	if id == 0 {
		return gl.Shader{}
	}
	c.shaders[id] = &shader{id: id, typ: typ}
	return gl.Shader{Value: id}
}

func (c *Context) CreateTexture() gl.Texture {
	id := c.allocID()
	if id == 0 {
		return gl.Texture{}
	}
	c.textures[id] = &texture{
		id:     id,
		images: make(map[imageKey]*texImage),
		params: defaultTexParams(),
	}
	return gl.Texture{Value: id}
}

// Deletion. Deleting an object unbinds it from every binding point of
// this context.

func (c *Context) DeleteBuffer(b gl.Buffer) {
	buf, ok := c.buffers[b.Value]
	if !ok {
		c.deleteUnknown(b.Value)
		return
	}
	s := &c.state
	if s.ArrayBuffer == b {
		s.ArrayBuffer = gl.Buffer{}
	}
	if s.ElementArrayBuffer == b {
		s.ElementArrayBuffer = gl.Buffer{}
	}
	for i := range s.VertexAttribs {
		if s.VertexAttribs[i].Buffer == b {
			s.VertexAttribs[i].Buffer = gl.Buffer{}
		}
	}
	delete(c.buffers, buf.id)
	c.release(b.Object())
}

func (c *Context) DeleteFramebuffer(fb gl.Framebuffer) {
	if _, ok := c.framebuffers[fb.Value]; !ok {
		c.deleteUnknown(fb.Value)
		return
	}
	if c.state.Framebuffer == fb {
		c.state.Framebuffer = gl.Framebuffer{}
	}
	delete(c.framebuffers, fb.Value)
	c.release(fb.Object())
}

func (c *Context) DeleteRenderbuffer(rb gl.Renderbuffer) {
	if _, ok := c.renderbuffers[rb.Value]; !ok {
		c.deleteUnknown(rb.Value)
		return
	}
	if c.state.Renderbuffer == rb {
		c.state.Renderbuffer = gl.Renderbuffer{}
	}
	c.detachEverywhere(rb.Object())
	delete(c.renderbuffers, rb.Value)
	c.release(rb.Object())
}

func (c *Context) DeleteTexture(t gl.Texture) {
	if _, ok := c.textures[t.Value]; !ok {
		c.deleteUnknown(t.Value)
		return
	}
	for i := range c.state.TextureUnits {
		u := &c.state.TextureUnits[i]
		if u.Texture2D == t {
			u.Texture2D = gl.Texture{}
		}
		if u.CubeMap == t {
			u.CubeMap = gl.Texture{}
		}
	}
	c.detachEverywhere(t.Object())
	delete(c.textures, t.Value)
	c.release(t.Object())
}

// detachEverywhere removes obj from the attachments of the bound
// framebuffer.
func (c *Context) detachEverywhere(obj gl.Object) {
	fb, ok := c.framebuffers[c.state.Framebuffer.Value]
	if !ok {
		return
	}
	for point, a := range fb.attachments {
		if a.obj == obj {
			delete(fb.attachments, point)
		}
	}
}

func (c *Context) DeleteProgram(p gl.Program) {
	prog, ok := c.programs[p.Value]
	if !ok || prog.deleted {
		c.deleteUnknown(p.Value)
		return
	}
	prog.deleted = true
	if c.state.Program != p {
		c.destroyProgram(prog)
	}
}

func (c *Context) DeleteShader(s gl.Shader) {
	sh, ok := c.shaders[s.Value]
	if !ok || sh.deleted {
		c.deleteUnknown(s.Value)
		return
	}
	sh.deleted = true
	if sh.attached == 0 {
		c.destroyShader(sh)
	}
}

// destroyProgram frees a program flagged for deletion once it is no
// longer current, and detaches its shaders.
func (c *Context) destroyProgram(prog *program) {
	for _, sh := range []*shader{prog.vertex, prog.fragment} {
		if sh != nil {
			c.detach(prog, sh)
		}
	}
	delete(c.programs, prog.id)
	c.release(gl.Program{Value: prog.id}.Object())
}

func (c *Context) destroyShader(sh *shader) {
	delete(c.shaders, sh.id)
	c.release(gl.Shader{Value: sh.id}.Object())
}

// Queries.

func (c *Context) IsBuffer(b gl.Buffer) bool {
	buf, ok := c.buffers[b.Value]
	return ok && buf.target != 0
}

func (c *Context) IsFramebuffer(fb gl.Framebuffer) bool {
	f, ok := c.framebuffers[fb.Value]
	return ok && f.bound
}

func (c *Context) IsProgram(p gl.Program) bool {
	prog, ok := c.programs[p.Value]
	return ok && !prog.deleted
}

func (c *Context) IsRenderbuffer(rb gl.Renderbuffer) bool {
	r, ok := c.renderbuffers[rb.Value]
	return ok && r.bound
}

func (c *Context) IsShader(s gl.Shader) bool {
	sh, ok := c.shaders[s.Value]
	return ok && !sh.deleted
}

func (c *Context) IsTexture(t gl.Texture) bool {
	tex, ok := c.textures[t.Value]
	return ok && tex.target != 0
}
