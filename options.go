// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gldebug

import (
	"github.com/gogpu/gldebug/debug"
	"github.com/gogpu/gldebug/frame"
	"github.com/gogpu/gldebug/gl"
)

// Option configures GetContext.
//
// Example:
//
//	// Raw context, no error checking
//	ctx, err := gldebug.GetContext(canvas, gldebug.WithDebug(false))
//
//	// Debug context over a loss simulator driven by loop
//	ctx, err := gldebug.GetContext(canvas, gldebug.WithLossSimulation(loop))
type Option func(*options)

type options struct {
	debug     bool
	onError   debug.ErrorFunc
	registry  *debug.Registry
	lossSim   bool
	scheduler frame.Scheduler
	attrs     *gl.Attributes
	display   func(msg string)
}

func defaultOptions() options {
	return options{
		debug: true,
	}
}

// WithDebug turns the error-checking wrapper on or off. It is on by
// default.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithErrorFunc replaces the log line written for each GL error found by
// the debug wrapper.
func WithErrorFunc(fn debug.ErrorFunc) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithRegistry shares an enum registry with the debug wrapper.
func WithRegistry(reg *debug.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithLossSimulation inserts a loss simulator between the context and the
// debug wrapper. Its listeners run on sched; a nil sched gives the
// simulator a private frame.Loop.
func WithLossSimulation(sched frame.Scheduler) Option {
	return func(o *options) {
		o.lossSim = true
		o.scheduler = sched
	}
}

// WithAttributes sets the context creation attributes.
func WithAttributes(attrs gl.Attributes) Option {
	return func(o *options) {
		o.attrs = &attrs
	}
}

// WithErrorDisplay sets the handler that receives the failure message when
// no context can be created. The default handler logs it.
func WithErrorDisplay(fn func(msg string)) Option {
	return func(o *options) {
		o.display = fn
	}
}
