// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gldebug

import (
	"errors"
	"fmt"

	"github.com/gogpu/gldebug/debug"
	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/lostctx"
	"github.com/gogpu/gldebug/surface"
)

// ContextTypes lists the context type names tried by Create3DContext, in
// order.
var ContextTypes = []string{"webgl", "experimental-webgl", "webkit-3d", "moz-webgl"}

// Create3DContext returns the first context s can create from
// ContextTypes. If every attempt fails, the error wraps ErrNoContext and
// each attempt's failure.
func Create3DContext(s surface.Surface, attrs *gl.Attributes) (gl.Context, error) {
	errs := []error{ErrNoContext}
	for _, typ := range ContextTypes {
		ctx, err := s.GetContext(typ, attrs)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", typ, err))
			continue
		}
		if ctx != nil {
			Logger().Info("gldebug: context created", "type", typ,
				"width", ctx.DrawingBufferWidth(), "height", ctx.DrawingBufferHeight())
			return ctx, nil
		}
	}
	return nil, errors.Join(errs...)
}

// Setup is Create3DContext that also reports a failure to onError. The
// message handed to onError is MsgNoSupport or MsgOtherProblem, followed
// by the status of the last failed attempt. A nil onError logs the
// message.
func Setup(s surface.Surface, attrs *gl.Attributes, onError func(msg string)) (gl.Context, error) {
	ctx, err := Create3DContext(s, attrs)
	if err != nil {
		if onError == nil {
			onError = displayFailure
		}
		onError(FailureMessage(err))
		return nil, err
	}
	return ctx, nil
}

func displayFailure(msg string) {
	Logger().Error(msg)
}

// FailureMessage describes a Create3DContext error for display. The
// status line comes from the last attempt that found its context type, or
// from the last attempt when none did.
func FailureMessage(err error) string {
	attempts := unjoin(err)
	if len(attempts) == 0 {
		return MsgOtherProblem
	}

	msg := MsgNoSupport
	status := attempts[len(attempts)-1]
	for _, e := range attempts {
		var notFound *surface.ContextTypeNotFoundError
		if !errors.As(e, &notFound) {
			msg = MsgOtherProblem
			status = e
		}
	}
	return msg + "\n\nStatus: " + status.Error()
}

// unjoin returns the per-attempt errors of a Create3DContext error.
func unjoin(err error) []error {
	j, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	var out []error
	for _, e := range j.Unwrap() {
		if e != ErrNoContext {
			out = append(out, e)
		}
	}
	return out
}

// GetContext creates a context on s and wraps it as configured by opts.
// By default the context is wrapped by a debug.Context.
//
// With loss simulation enabled the simulator is the outermost wrapper, so
// its GetError collects everything the debug wrapper has captured and the
// loss error is visible right after LoseContext. Commands rejected by the
// simulator never reach the debug wrapper and are not passed to the
// ErrorFunc.
func GetContext(s surface.Surface, opts ...Option) (gl.Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, err := Setup(s, o.attrs, o.display)
	if err != nil {
		return nil, err
	}
	if o.debug {
		var dopts []debug.Option
		if o.onError != nil {
			dopts = append(dopts, debug.WithErrorFunc(o.onError))
		}
		if o.registry != nil {
			dopts = append(dopts, debug.WithRegistry(o.registry))
		}
		ctx = debug.NewContext(ctx, dopts...)
	}
	if o.lossSim {
		ctx = lostctx.NewContext(ctx, o.scheduler)
	}
	return ctx, nil
}

// LossSimulator returns the loss simulator in the wrapper chain of ctx.
func LossSimulator(ctx gl.Context) (*lostctx.Context, bool) {
	return find[*lostctx.Context](ctx)
}

// DebugContext returns the debug wrapper in the wrapper chain of ctx.
func DebugContext(ctx gl.Context) (*debug.Context, bool) {
	return find[*debug.Context](ctx)
}

func find[T gl.Context](ctx gl.Context) (T, bool) {
	for ctx != nil {
		if c, ok := ctx.(T); ok {
			return c, true
		}
		u, ok := ctx.(gl.Unwrapper)
		if !ok {
			break
		}
		ctx = u.Unwrap()
	}
	var zero T
	return zero, false
}
