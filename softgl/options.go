// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

// DefaultShaderCacheSize is the number of compiled shaders kept per
// context when no WithShaderCache option is given.
const DefaultShaderCacheSize = 64

// Option configures a Context.
type Option func(*options)

type options struct {
	backend         Backend
	maxObjects      int
	shaderCacheSize int
}

func defaultOptions() options {
	return options{
		shaderCacheSize: DefaultShaderCacheSize,
	}
}

// WithBackend mirrors resource uploads onto b.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithMaxObjects limits the number of live objects. Creating more raises
// OUT_OF_MEMORY. Zero means unlimited.
func WithMaxObjects(n int) Option {
	return func(o *options) {
		o.maxObjects = n
	}
}

// WithShaderCache sets how many compiled shaders are cached by source.
// Sizes below one disable the cache.
func WithShaderCache(size int) Option {
	return func(o *options) {
		o.shaderCacheSize = size
	}
}
