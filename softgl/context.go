// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/internal/glog"
	"github.com/gogpu/gldebug/internal/shadow"
)

// slogger returns the current package logger.
func slogger() *slog.Logger { return glog.L() }

// Stats counts work done by a Context.
type Stats struct {
	DrawCalls  int
	Clears     int
	Compiles   int
	CacheHits  int
	LinkErrors int
}

// Context is an in-memory WebGL 1 rendering context.
//
// A Context must be used from a single goroutine.
type Context struct {
	canvas gl.Canvas
	attrs  gl.Attributes
	opts   options

	errs  *shadow.Set
	state State
	stats Stats

	nextID        uint32
	buffers       map[uint32]*buffer
	framebuffers  map[uint32]*framebuffer
	programs      map[uint32]*program
	renderbuffers map[uint32]*renderbuffer
	shaders       map[uint32]*shader
	textures      map[uint32]*texture

	// pixels is the RGBA8 color buffer of the default framebuffer,
	// bottom row first.
	pixels []byte

	compiler *compiler
}

var _ gl.Context = (*Context)(nil)

// New creates a context whose drawing buffer has the size of canvas.
func New(canvas gl.Canvas, attrs gl.Attributes, opts ...Option) (*Context, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 ||
		canvas.Width > MaxRenderbufferSize || canvas.Height > MaxRenderbufferSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, canvas.Width, canvas.Height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	comp, err := newCompiler(o.shaderCacheSize)
	if err != nil {
		return nil, fmt.Errorf("softgl: shader cache: %w", err)
	}

	c := &Context{
		canvas:        canvas,
		attrs:         attrs,
		opts:          o,
		errs:          shadow.New(),
		state:         initialState(canvas.Width, canvas.Height),
		buffers:       make(map[uint32]*buffer),
		framebuffers:  make(map[uint32]*framebuffer),
		programs:      make(map[uint32]*program),
		renderbuffers: make(map[uint32]*renderbuffer),
		shaders:       make(map[uint32]*shader),
		textures:      make(map[uint32]*texture),
		pixels:        make([]byte, canvas.Width*canvas.Height*4),
		compiler:      comp,
	}
	if !attrs.Alpha {
		c.fillOpaque()
	}

	slogger().Debug("softgl: context created",
		"width", canvas.Width, "height", canvas.Height,
		"alpha", attrs.Alpha, "backend", o.backend != nil)
	return c, nil
}

// setError raises code on the context's error flag.
func (c *Context) setError(code gl.Enum) {
	c.errs.Add(code)
}

// Attributes returns the attributes the context was created with.
func (c *Context) Attributes() gl.Attributes { return c.attrs }

// Stats returns the work counters.
func (c *Context) Stats() Stats { return c.stats }

func (c *Context) Canvas() gl.Canvas        { return c.canvas }
func (c *Context) DrawingBufferWidth() int  { return c.canvas.Width }
func (c *Context) DrawingBufferHeight() int { return c.canvas.Height }
func (c *Context) Constants() []gl.Constant { return gl.Constants() }
func (c *Context) IsContextLost() bool      { return false }

// GetError returns and clears one raised error code, oldest first.
func (c *Context) GetError() gl.Enum { return c.errs.Drain() }

// fillOpaque sets the alpha channel of the default color buffer to 255.
func (c *Context) fillOpaque() {
	for i := 3; i < len(c.pixels); i += 4 {
		c.pixels[i] = 0xFF
	}
}
