// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import "github.com/gogpu/gldebug/gl"

func attribTypeSize(typ gl.Enum) int {
	switch typ {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT:
		return 2
	case gl.FLOAT:
		return 4
	}
	return 0
}

// attrib returns vertex attribute index or raises INVALID_VALUE.
func (c *Context) attrib(index int) *VertexAttrib {
	if index < 0 || index >= MaxVertexAttribs {
		c.setError(gl.INVALID_VALUE)
		return nil
	}
	return &c.state.VertexAttribs[index]
}

func (c *Context) EnableVertexAttribArray(index int) {
	if a := c.attrib(index); a != nil {
		a.Enabled = true
	}
}

func (c *Context) DisableVertexAttribArray(index int) {
	if a := c.attrib(index); a != nil {
		a.Enabled = false
	}
}

func (c *Context) VertexAttribPointer(index, size int, typ gl.Enum, normalized bool, stride, offset int) {
	a := c.attrib(index)
	if a == nil {
		return
	}
	typeSize := attribTypeSize(typ)
	if typeSize == 0 {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if size < 1 || size > 4 || stride < 0 || stride > 255 || offset < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if offset%typeSize != 0 || stride%typeSize != 0 {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	// Client-side arrays do not exist in WebGL.
	if c.state.ArrayBuffer.Value == 0 && offset != 0 {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	a.Size = size
	a.Type = typ
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
	a.Buffer = c.state.ArrayBuffer
}

func (c *Context) VertexAttrib1f(index int, v float32) {
	if a := c.attrib(index); a != nil {
		a.Current = [4]float32{v, 0, 0, 1}
	}
}

func (c *Context) GetVertexAttrib(index int, pname gl.Enum) int {
	a := c.attrib(index)
	if a == nil {
		return 0
	}
	switch pname {
	case gl.VERTEX_ATTRIB_ARRAY_ENABLED:
		return boolInt(a.Enabled)
	case gl.VERTEX_ATTRIB_ARRAY_SIZE:
		return a.Size
	case gl.VERTEX_ATTRIB_ARRAY_STRIDE:
		return a.Stride
	case gl.VERTEX_ATTRIB_ARRAY_TYPE:
		return int(a.Type)
	case gl.VERTEX_ATTRIB_ARRAY_NORMALIZED:
		return boolInt(a.Normalized)
	case gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
		return int(a.Buffer.Value)
	}
	c.setError(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetVertexAttribOffset(index int, pname gl.Enum) int {
	a := c.attrib(index)
	if a == nil {
		return 0
	}
	if pname != gl.VERTEX_ATTRIB_ARRAY_POINTER {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	return a.Offset
}
