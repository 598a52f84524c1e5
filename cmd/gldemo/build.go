// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/urfave/cli/v2"
)

var errBuildFailed = errors.New("shader program build failed")

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "Compiles and links a shader program",
	ArgsUsage: "[vertex.wgsl fragment.wgsl]",
	Description: `Builds the configured shaders, or the built-in triangle shaders when
none are configured, and prints the driver log on failure.`,
	Action: runBuild,
}

func runBuild(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	switch ctx.NArg() {
	case 0:
	case 2:
		cfg.VertexShader = ctx.Args().Get(0)
		cfg.FragmentShader = ctx.Args().Get(1)
	default:
		return errors.New("need a vertex and a fragment shader file")
	}

	s, err := newSession(cfg, ctx.App.Writer)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.build()
	if err != nil {
		return err
	}
	s.printMirrorStats()
	if !res.OK() {
		return errBuildFailed
	}
	return nil
}
