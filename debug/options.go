// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package debug

import (
	"log/slog"

	"github.com/gogpu/gldebug/gl"
)

// ErrorFunc is called once for every error the wrapper detects. args are
// the arguments of the failing command, in call order.
type ErrorFunc func(err gl.Enum, command string, args []any)

// Option configures a debug Context.
type Option func(*options)

type options struct {
	onError  ErrorFunc
	registry *Registry
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{}
}

// WithErrorFunc replaces the default log-line error handler.
func WithErrorFunc(fn ErrorFunc) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithRegistry makes the context use reg instead of a private registry.
// reg is initialized from the wrapped context if it is not already.
func WithRegistry(reg *Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithLogger sets the logger used by the default error handler.
// Without it the package logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
