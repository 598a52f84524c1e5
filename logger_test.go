// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gldebug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestSetLoggerNilDisables(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger after SetLogger(nil) should be disabled at LevelError")
	}
}

func TestSetLoggerCustom(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("probe", "key", "value")

	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("expected log output to contain %q, got %q", "probe", buf.String())
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		}()
		go func() {
			defer wg.Done()
			_ = Logger()
		}()
	}
	wg.Wait()
}
