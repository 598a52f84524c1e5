// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/surface"
)

// ContextType is the context type name softgl registers.
const ContextType = "webgl"

// Factory is the surface.ContextFactory for softgl contexts.
func Factory(opts ...Option) surface.ContextFactory {
	return func(canvas gl.Canvas, attrs gl.Attributes) (gl.Context, error) {
		ctx, err := New(canvas, attrs, opts...)
		if err != nil {
			return nil, err
		}
		return ctx, nil
	}
}

func init() {
	surface.Register(ContextType, 10, Factory(), nil)
}
