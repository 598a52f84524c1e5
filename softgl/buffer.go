// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"slices"

	"github.com/gogpu/gldebug/gl"
)

// boundBuffer returns the buffer bound to target. It raises INVALID_ENUM
// for a bad target and INVALID_OPERATION when nothing is bound.
func (c *Context) boundBuffer(target gl.Enum) *buffer {
	var b gl.Buffer
	switch target {
	case gl.ARRAY_BUFFER:
		b = c.state.ArrayBuffer
	case gl.ELEMENT_ARRAY_BUFFER:
		b = c.state.ElementArrayBuffer
	default:
		c.setError(gl.INVALID_ENUM)
		return nil
	}
	buf, ok := c.buffers[b.Value]
	if !ok {
		c.setError(gl.INVALID_OPERATION)
		return nil
	}
	return buf
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	if target != gl.ARRAY_BUFFER && target != gl.ELEMENT_ARRAY_BUFFER {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if b.Value != 0 {
		buf, ok := c.buffers[b.Value]
		if !ok {
			c.setError(gl.INVALID_OPERATION)
			return
		}
		// A buffer keeps the target it was first bound to.
		if buf.target != 0 && buf.target != target {
			c.setError(gl.INVALID_OPERATION)
			return
		}
		buf.target = target
	}
	if target == gl.ARRAY_BUFFER {
		c.state.ArrayBuffer = b
	} else {
		c.state.ElementArrayBuffer = b
	}
}

func (c *Context) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	if usage != gl.STREAM_DRAW && usage != gl.STATIC_DRAW && usage != gl.DYNAMIC_DRAW {
		c.setError(gl.INVALID_ENUM)
		return
	}
	buf := c.boundBuffer(target)
	if buf == nil {
		return
	}
	buf.data = slices.Clone(data)
	if buf.data == nil {
		buf.data = []byte{}
	}
	buf.usage = usage

	if be := c.opts.backend; be != nil {
		if err := be.BufferData(gl.Buffer{Value: buf.id}, usage, buf.data); err != nil {
			slogger().Warn("softgl: backend buffer upload failed", "buffer", buf.id, "err", err)
			c.setError(gl.OUT_OF_MEMORY)
		}
	}
}

func (c *Context) BufferSubData(target gl.Enum, offset int, data []byte) {
	if offset < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	buf := c.boundBuffer(target)
	if buf == nil {
		return
	}
	if offset+len(data) > len(buf.data) {
		c.setError(gl.INVALID_VALUE)
		return
	}
	copy(buf.data[offset:], data)

	if be := c.opts.backend; be != nil {
		if err := be.BufferSubData(gl.Buffer{Value: buf.id}, offset, data); err != nil {
			slogger().Warn("softgl: backend buffer update failed", "buffer", buf.id, "err", err)
			c.setError(gl.OUT_OF_MEMORY)
		}
	}
}

func (c *Context) GetBufferParameter(target, pname gl.Enum) int {
	if pname != gl.BUFFER_SIZE && pname != gl.BUFFER_USAGE {
		c.setError(gl.INVALID_ENUM)
		return 0
	}
	buf := c.boundBuffer(target)
	if buf == nil {
		return 0
	}
	if pname == gl.BUFFER_SIZE {
		return len(buf.data)
	}
	if buf.usage == 0 {
		return int(gl.STATIC_DRAW)
	}
	return int(buf.usage)
}
