// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/gldebug/gl"

// Surface is a drawable that can create rendering contexts.
//
// Surfaces are NOT thread-safe. Each surface should be used from the
// goroutine that owns its context.
type Surface interface {
	// GetContext returns a context of the named type. A nil attrs selects
	// gl.DefaultAttributes.
	GetContext(contextType string, attrs *gl.Attributes) (gl.Context, error)

	// Width returns the drawing buffer width in pixels.
	Width() int

	// Height returns the drawing buffer height in pixels.
	Height() int
}
