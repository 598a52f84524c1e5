// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"
)

var watchCommand = &cli.Command{
	Name:      "watch",
	Usage:     "Rebuilds the program whenever a shader file changes",
	ArgsUsage: "[vertex.wgsl fragment.wgsl]",
	Action:    runWatch,
}

func runWatch(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() == 2 {
		cfg.VertexShader = ctx.Args().Get(0)
		cfg.FragmentShader = ctx.Args().Get(1)
	}
	if cfg.VertexShader == "" || cfg.FragmentShader == "" {
		return errors.New("watch needs a vertex and a fragment shader file")
	}

	s, err := newSession(cfg, ctx.App.Writer)
	if err != nil {
		return err
	}
	defer s.Close()

	sigctx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
	defer stop()
	return watch(sigctx, s)
}

// watch builds the program, then rebuilds it on the first loop tick after
// either shader file changes. Directories are watched rather than the
// files so editors that replace files on save are still seen.
func watch(ctx context.Context, s *session) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	targets := make(map[string]bool)
	for _, p := range []string{s.cfg.VertexShader, s.cfg.FragmentShader} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	res, err := s.build()
	if err != nil {
		return err
	}
	prog := res.Program

	ticker := time.NewTicker(s.cfg.TickInterval.Duration)
	defer ticker.Stop()

	dirty := false
	for {
		select {
		case <-ctx.Done():
			s.discard(prog)
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if targets[filepath.Clean(ev.Name)] && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				dirty = true
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			warnColor.Fprintf(s.out, "watch: %v\n", err)
		case <-ticker.C:
			s.loop.Tick()
			if !dirty {
				continue
			}
			dirty = false
			noteColor.Fprintln(s.out, "shader changed, rebuilding")
			s.discard(prog)
			res, err := s.build()
			prog = res.Program
			if err != nil {
				warnColor.Fprintf(s.out, "watch: %v\n", err)
				continue
			}
			s.printMirrorStats()
		}
	}
}
