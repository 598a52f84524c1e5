// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/gldebug/gl"
)

// Canvas is an offscreen Surface backed by a context-type Registry.
type Canvas struct {
	width, height             int
	clientWidth, clientHeight int
	registry                  *Registry

	contextType string
	ctx         gl.Context
}

var _ Surface = (*Canvas)(nil)

// NewCanvas returns a canvas that creates contexts from the global
// registry. Its client size equals its drawing buffer size.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasWithRegistry(globalRegistry, width, height)
}

// NewCanvasWithRegistry returns a canvas that creates contexts from r.
func NewCanvasWithRegistry(r *Registry, width, height int) *Canvas {
	return &Canvas{
		width:        width,
		height:       height,
		clientWidth:  width,
		clientHeight: height,
		registry:     r,
	}
}

// Width returns the drawing buffer width.
func (c *Canvas) Width() int { return c.width }

// Height returns the drawing buffer height.
func (c *Canvas) Height() int { return c.height }

// SetClientSize sets the displayed size of the canvas. It affects contexts
// created afterwards.
func (c *Canvas) SetClientSize(width, height int) {
	c.clientWidth = width
	c.clientHeight = height
}

// Desc returns the canvas geometry handed to context factories.
func (c *Canvas) Desc() gl.Canvas {
	return gl.Canvas{
		Width:        c.width,
		Height:       c.height,
		ClientWidth:  c.clientWidth,
		ClientHeight: c.clientHeight,
	}
}

// Context returns the context created by an earlier GetContext, or nil.
func (c *Canvas) Context() gl.Context { return c.ctx }

// GetContext implements Surface.
func (c *Canvas) GetContext(contextType string, attrs *gl.Attributes) (gl.Context, error) {
	if c.ctx != nil {
		if contextType != c.contextType {
			return nil, &ContextTypeMismatchError{Have: c.contextType, Want: contextType}
		}
		return c.ctx, nil
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("surface: invalid canvas size %dx%d", c.width, c.height)
	}

	a := gl.DefaultAttributes()
	if attrs != nil {
		a = *attrs
	}
	ctx, err := c.registry.NewContextByName(contextType, c.Desc(), a)
	if err != nil {
		return nil, err
	}
	c.contextType = contextType
	c.ctx = ctx
	return ctx, nil
}

// ContextTypeMismatchError is returned when a canvas that already has a
// context is asked for a different context type.
type ContextTypeMismatchError struct {
	Have string
	Want string
}

func (e *ContextTypeMismatchError) Error() string {
	return "surface: canvas already has a " + e.Have + " context, cannot create " + e.Want
}
