// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/gldebug"
	"github.com/gogpu/gldebug/debug"
	"github.com/gogpu/gldebug/frame"
	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/halgl"
	"github.com/gogpu/gldebug/lostctx"
	"github.com/gogpu/gldebug/shader"
	"github.com/gogpu/gldebug/softgl"
	"github.com/gogpu/gldebug/surface"
)

//go:embed shaders/*.wgsl
var builtinShaders embed.FS

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgHiRed)
	noteColor = color.New(color.FgCyan)
)

// session is one context created from a config, plus the pieces the
// commands drive directly.
type session struct {
	cfg    config
	out    io.Writer
	canvas *surface.Canvas
	ctx    gl.Context
	loop   *frame.Loop
	reg    *debug.Registry
	mirror *halgl.Mirror

	errCount int
	cleanup  []func()
}

// newSession creates the canvas and context described by cfg. Errors from
// the context are printed to out as they are captured.
func newSession(cfg config, out io.Writer) (*session, error) {
	s := &session{
		cfg:  cfg,
		out:  out,
		loop: frame.NewLoop(),
		reg:  debug.NewRegistry(),
	}

	var opts []softgl.Option
	if cfg.HALMirror {
		m, err := s.openMirror()
		if err != nil {
			return nil, err
		}
		opts = append(opts, softgl.WithBackend(m))
	}

	reg := surface.NewRegistry()
	factory := softgl.Factory(opts...)
	for i, name := range cfg.ContextTypes {
		reg.Register(name, len(cfg.ContextTypes)-i, factory, nil)
	}
	s.canvas = surface.NewCanvasWithRegistry(reg, cfg.Width, cfg.Height)

	gopts := []gldebug.Option{
		gldebug.WithDebug(cfg.Debug),
		gldebug.WithRegistry(s.reg),
		gldebug.WithErrorFunc(s.reportError),
		gldebug.WithErrorDisplay(func(msg string) {
			errColor.Fprintln(s.out, msg)
		}),
	}
	if cfg.LossSimulation {
		gopts = append(gopts, gldebug.WithLossSimulation(s.loop))
	}
	ctx, err := gldebug.GetContext(s.canvas, gopts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.ctx = ctx
	if !s.reg.Initialized() {
		s.reg.Init(ctx)
	}
	return s, nil
}

// openMirror mirrors the session's resources onto a noop HAL device.
func (s *session) openMirror() (*halgl.Mirror, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("hal instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, errors.New("hal: no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("hal device: %w", err)
	}
	m, err := halgl.New(openDev.Device, openDev.Queue)
	if err != nil {
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	s.mirror = m
	s.cleanup = append(s.cleanup, func() {
		m.Close()
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return m, nil
}

// Close releases the HAL mirror, if any.
func (s *session) Close() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
	s.cleanup = nil
}

func (s *session) reportError(err gl.Enum, command string, args []any) {
	s.errCount++
	name := s.reg.MustEnumToString(err)
	call, ferr := debug.NewFormatter(s.reg).FormatCall(command, args)
	if ferr != nil {
		call = command
	}
	errColor.Fprintf(s.out, "WebGL error %s in %s\n", name, call)
}

// simulator returns the lost-context simulator of the session.
func (s *session) simulator() (*lostctx.Context, bool) {
	return gldebug.LossSimulator(s.ctx)
}

// sources returns the configured shader sources, falling back to the
// built-in triangle shaders.
func (s *session) sources() (vsrc, fsrc string, err error) {
	read := func(path, builtin string) (string, error) {
		var (
			b   []byte
			err error
		)
		if path == "" {
			b, err = builtinShaders.ReadFile(builtin)
		} else {
			b, err = os.ReadFile(path)
		}
		return string(b), err
	}
	if vsrc, err = read(s.cfg.VertexShader, "shaders/triangle_vs.wgsl"); err != nil {
		return "", "", err
	}
	if fsrc, err = read(s.cfg.FragmentShader, "shaders/triangle_fs.wgsl"); err != nil {
		return "", "", err
	}
	return vsrc, fsrc, nil
}

// build compiles and links the configured shaders and makes the program
// current.
func (s *session) build() (shader.Result, error) {
	vsrc, fsrc, err := s.sources()
	if err != nil {
		return shader.Result{}, err
	}
	res := shader.BuildResult(s.ctx, vsrc, fsrc)
	if res.OK() {
		okColor.Fprintf(s.out, "program %d built\n", res.Program.Value)
	} else {
		errColor.Fprintf(s.out, "build failed:\n%s\n", res.Log)
	}
	return res, nil
}

// discard deletes a program together with its attached shaders.
func (s *session) discard(p gl.Program) {
	if !p.IsValid() {
		return
	}
	shaders := s.ctx.GetAttachedShaders(p)
	s.ctx.DeleteProgram(p)
	for _, sh := range shaders {
		s.ctx.DeleteShader(sh)
	}
}

func (s *session) printMirrorStats() {
	if s.mirror == nil {
		return
	}
	st := s.mirror.Stats()
	noteColor.Fprintf(s.out, "hal mirror: %d buffers, %d textures, %d shader modules, %d uploads (%d bytes)\n",
		st.Buffers, st.Textures, st.Modules, st.Uploads, st.BytesWritten)
}
