// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command gldemo exercises gldebug on the software context: it builds
// shader programs, runs context loss drills and rebuilds programs when
// shader files change.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/gldebug"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "TOML configuration file",
		EnvVars: []string{"GLDEMO_CONFIG"},
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "canvas width",
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "canvas height",
	}
	contextTypeFlag = &cli.StringSliceFlag{
		Name:  "context-type",
		Usage: "context type names the canvas provides",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "wrap the context with the error-reporting wrapper",
	}
	lossFlag = &cli.BoolFlag{
		Name:  "loss",
		Usage: "wrap the context with the lost-context simulator",
	}
	tickFlag = &cli.DurationFlag{
		Name:  "tick",
		Usage: "frame loop tick interval",
	}
	vertexFlag = &cli.StringFlag{
		Name:  "vertex",
		Usage: "vertex shader file (WGSL)",
	}
	fragmentFlag = &cli.StringFlag{
		Name:  "fragment",
		Usage: "fragment shader file (WGSL)",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error)",
	}
	mirrorFlag = &cli.BoolFlag{
		Name:  "hal-mirror",
		Usage: "mirror resources onto a noop HAL device",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "gldemo",
		Usage: "WebGL debugging layer demo",
		Flags: []cli.Flag{
			configFlag,
			widthFlag,
			heightFlag,
			contextTypeFlag,
			debugFlag,
			lossFlag,
			tickFlag,
			vertexFlag,
			fragmentFlag,
			logLevelFlag,
			mirrorFlag,
		},
		Commands: []*cli.Command{
			buildCommand,
			drillCommand,
			watchCommand,
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// makeConfig loads the configuration file and applies the command-line
// overrides.
func makeConfig(ctx *cli.Context) (config, error) {
	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return cfg, err
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(contextTypeFlag.Name) {
		cfg.ContextTypes = ctx.StringSlice(contextTypeFlag.Name)
	}
	if ctx.IsSet(debugFlag.Name) {
		cfg.Debug = ctx.Bool(debugFlag.Name)
	}
	if ctx.IsSet(lossFlag.Name) {
		cfg.LossSimulation = ctx.Bool(lossFlag.Name)
	}
	if ctx.IsSet(tickFlag.Name) {
		cfg.TickInterval.Duration = ctx.Duration(tickFlag.Name)
	}
	if ctx.IsSet(vertexFlag.Name) {
		cfg.VertexShader = ctx.String(vertexFlag.Name)
	}
	if ctx.IsSet(fragmentFlag.Name) {
		cfg.FragmentShader = ctx.String(fragmentFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(mirrorFlag.Name) {
		cfg.HALMirror = ctx.Bool(mirrorFlag.Name)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	lvl, _ := cfg.level()
	gldebug.SetLogger(slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: lvl})))
	return cfg, nil
}
