// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/lostctx"
)

var drillCommand = &cli.Command{
	Name:  "drill",
	Usage: "Loses and restores the context once",
	Description: `Builds a program and a few resources, loses the context, shows how
commands behave while it is lost, restores it and rebuilds. Loss
simulation is always enabled for this command.`,
	Action: runDrill,
}

func runDrill(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	cfg.LossSimulation = true

	s, err := newSession(cfg, ctx.App.Writer)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := newDrill(s)
	if err != nil {
		return err
	}
	return d.run(ctx.Context)
}

// drill walks a context through one loss and restore, one step per frame.
type drill struct {
	s   *session
	sim *lostctx.Context

	prog gl.Program
	buf  gl.Buffer
	tex  gl.Texture

	lost     int
	restored int
	step     int
}

func newDrill(s *session) (*drill, error) {
	sim, ok := s.simulator()
	if !ok {
		return nil, errors.New("context has no loss simulator")
	}
	d := &drill{s: s, sim: sim}
	sim.OnContextLost(d.onLost)
	sim.OnContextRestored(d.onRestored)
	return d, nil
}

func (d *drill) steps() []func() error {
	return []func() error{
		d.setup,
		d.lose,
		d.whileLost,
		d.afterRestore,
	}
}

// run schedules one step per frame on the session loop and ticks the loop
// until the last step has run.
func (d *drill) run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	steps := d.steps()
	var (
		stepErr error
		next    func()
	)
	next = func() {
		if d.step == len(steps) {
			cancel()
			return
		}
		if err := steps[d.step](); err != nil {
			stepErr = err
			cancel()
			return
		}
		d.step++
		d.s.loop.RequestFrame(func(_ time.Duration) { next() })
	}
	d.s.loop.RequestFrame(func(_ time.Duration) { next() })

	err := d.s.loop.Run(ctx, d.s.cfg.TickInterval.Duration)
	if stepErr != nil {
		return stepErr
	}
	if d.step < len(steps) {
		return err
	}

	d.summary()
	if d.lost != 1 || d.restored != 1 {
		return fmt.Errorf("drill: got %d lost and %d restored events, want 1 each", d.lost, d.restored)
	}
	return nil
}

// createResources builds the program and a vertex buffer and texture.
func (d *drill) createResources() error {
	res, err := d.s.build()
	if err != nil {
		return err
	}
	if !res.OK() {
		return errBuildFailed
	}
	d.prog = res.Program

	ctx := d.s.ctx
	d.buf = ctx.CreateBuffer()
	ctx.BindBuffer(gl.ARRAY_BUFFER, d.buf)
	ctx.BufferData(gl.ARRAY_BUFFER, make([]byte, 3*8*4), gl.STATIC_DRAW)

	d.tex = ctx.CreateTexture()
	ctx.BindTexture(gl.TEXTURE_2D, d.tex)
	ctx.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, []byte{255, 255, 255, 255})
	return nil
}

func (d *drill) setup() error {
	if err := d.createResources(); err != nil {
		return err
	}
	d.s.ctx.ClearColor(0, 0, 0, 1)
	d.s.ctx.Clear(gl.COLOR_BUFFER_BIT)
	noteColor.Fprintf(d.s.out, "epoch %d: %d tracked objects\n", d.sim.Epoch(), len(d.sim.Resources()))
	d.s.printMirrorStats()
	return nil
}

func (d *drill) lose() error {
	warnColor.Fprintln(d.s.out, "losing context")
	d.sim.LoseContext()
	if !d.s.ctx.IsContextLost() {
		return errors.New("context still live after LoseContext")
	}
	return nil
}

func (d *drill) whileLost() error {
	ctx := d.s.ctx
	ctx.Clear(gl.COLOR_BUFFER_BIT)
	if p := ctx.CreateProgram(); p.IsValid() {
		return fmt.Errorf("lost context created program %d", p.Value)
	}
	for e := ctx.GetError(); e != gl.NO_ERROR; e = ctx.GetError() {
		noteColor.Fprintf(d.s.out, "pending error: %s\n", d.s.reg.MustEnumToString(e))
	}
	return d.sim.RestoreContext()
}

func (d *drill) afterRestore() error {
	ctx := d.s.ctx
	if ctx.IsContextLost() {
		return errors.New("context still lost after restore")
	}
	for e := ctx.GetError(); e != gl.NO_ERROR; e = ctx.GetError() {
		noteColor.Fprintf(d.s.out, "pending error: %s\n", d.s.reg.MustEnumToString(e))
	}

	// Handles from the previous epoch are stale.
	stale := d.buf
	if err := d.createResources(); err != nil {
		return err
	}
	ctx.BindBuffer(gl.ARRAY_BUFFER, stale)
	if e := ctx.GetError(); e != gl.INVALID_OPERATION {
		return fmt.Errorf("stale buffer: got %s, want INVALID_OPERATION", d.s.reg.MustEnumToString(e))
	}
	noteColor.Fprintf(d.s.out, "stale buffer %d rejected: INVALID_OPERATION\n", stale.Value)
	noteColor.Fprintf(d.s.out, "epoch %d: %d tracked objects\n", d.sim.Epoch(), len(d.sim.Resources()))
	d.s.printMirrorStats()
	return nil
}

func (d *drill) onLost(ev lostctx.Event) {
	d.lost++
	warnColor.Fprintf(d.s.out, "event: %s\n", ev.StatusMessage)
}

func (d *drill) onRestored(ev lostctx.Event) {
	d.restored++
	okColor.Fprintf(d.s.out, "event: %s\n", ev.StatusMessage)
}

func (d *drill) summary() {
	fmt.Fprintf(d.s.out, "drill finished: %d lost, %d restored, %d errors reported\n",
		d.lost, d.restored, d.s.errCount)
}
