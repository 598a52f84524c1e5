// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// duration is a time.Duration read from a TOML string such as "16ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type config struct {
	Width          int      `toml:"width"`
	Height         int      `toml:"height"`
	ContextTypes   []string `toml:"context_types"`
	Debug          bool     `toml:"debug"`
	LossSimulation bool     `toml:"loss_simulation"`
	TickInterval   duration `toml:"tick_interval"`
	VertexShader   string   `toml:"vertex_shader"`
	FragmentShader string   `toml:"fragment_shader"`
	LogLevel       string   `toml:"log_level"`
	HALMirror      bool     `toml:"hal_mirror"`
}

func defaultConfig() config {
	return config{
		Width:        300,
		Height:       150,
		ContextTypes: []string{"webgl"},
		Debug:        true,
		TickInterval: duration{16 * time.Millisecond},
		LogLevel:     "info",
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.TickInterval.Duration <= 0 {
		return errors.New("tick interval must be positive")
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}
