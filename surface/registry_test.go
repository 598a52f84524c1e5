// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gldebug/gl"
)

// stubContext satisfies gl.Context for registry tests. Its methods are
// never called.
type stubContext struct {
	gl.Context
	name   string
	canvas gl.Canvas
	attrs  gl.Attributes
}

func stubFactory(name string) ContextFactory {
	return func(canvas gl.Canvas, attrs gl.Attributes) (gl.Context, error) {
		return &stubContext{name: name, canvas: canvas, attrs: attrs}, nil
	}
}

var testCanvas = gl.Canvas{Width: 100, Height: 100, ClientWidth: 100, ClientHeight: 100}

// TestRegistryRegister tests context type registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	r.Register("test", 50, stubFactory("test"), nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered context type not found")
	}

	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("context type should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests context type removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()

	r.Register("temp", 10, stubFactory("temp"), nil)

	if _, ok := r.Get("temp"); !ok {
		t.Fatal("context type should exist before unregister")
	}

	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("context type should not exist after unregister")
	}
}

// TestRegistryList tests listing context types.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()

	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("mid", 50, stubFactory("mid"), nil)

	list := r.List()

	if len(list) != 3 {
		t.Fatalf("expected 3 context types, got %d", len(list))
	}

	want := []string{"high", "mid", "low"}
	for i, name := range want {
		if list[i] != name {
			t.Errorf("list[%d] = %s, want %s", i, list[i], name)
		}
	}
}

// TestRegistryAvailable tests filtering by availability.
func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()

	r.Register("available", 100, stubFactory("available"), func() bool { return true })
	r.Register("unavailable", 200, stubFactory("unavailable"), func() bool { return false })

	available := r.Available()

	if len(available) != 1 {
		t.Fatalf("expected 1 available context type, got %d", len(available))
	}
	if available[0] != "available" {
		t.Errorf("expected 'available', got %s", available[0])
	}
}

// TestRegistryNewContextByName tests creating named contexts.
func TestRegistryNewContextByName(t *testing.T) {
	r := NewRegistry()
	r.Register("specific", 50, stubFactory("specific"), nil)

	attrs := gl.DefaultAttributes()
	attrs.Antialias = false

	ctx, err := r.NewContextByName("specific", testCanvas, attrs)
	if err != nil {
		t.Fatalf("NewContextByName failed: %v", err)
	}

	stub := ctx.(*stubContext)
	if stub.name != "specific" {
		t.Errorf("name = %s, want specific", stub.name)
	}
	if stub.canvas != testCanvas {
		t.Errorf("canvas = %+v, want %+v", stub.canvas, testCanvas)
	}
	if stub.attrs.Antialias {
		t.Error("attributes were not passed to the factory")
	}
}

// TestRegistryNewContextByNameNotFound tests error for unknown types.
func TestRegistryNewContextByNameNotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewContextByName("nonexistent", testCanvas, gl.DefaultAttributes())
	if err == nil {
		t.Fatal("expected error for nonexistent context type")
	}

	var notFound *ContextTypeNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ContextTypeNotFoundError, got %T", err)
	}
	if notFound.Name != "nonexistent" {
		t.Errorf("error name = %s, want nonexistent", notFound.Name)
	}
}

// TestRegistryNewContextByNameUnavailable tests error for unavailable types.
func TestRegistryNewContextByNameUnavailable(t *testing.T) {
	r := NewRegistry()
	r.Register("unavailable", 50, stubFactory("unavailable"), func() bool { return false })

	_, err := r.NewContextByName("unavailable", testCanvas, gl.DefaultAttributes())

	var unavailable *ContextTypeUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("expected ContextTypeUnavailableError, got %T", err)
	}
}

// TestRegistryNoContextType tests error when nothing is registered.
func TestRegistryNoContextType(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewContext(testCanvas, gl.DefaultAttributes())
	if !errors.Is(err, ErrNoContextType) {
		t.Errorf("expected ErrNoContextType, got %v", err)
	}
}

// TestRegistryFactoryError tests handling of factory errors.
func TestRegistryFactoryError(t *testing.T) {
	r := NewRegistry()

	expectedErr := errors.New("creation failed")
	r.Register("failing", 50, func(gl.Canvas, gl.Attributes) (gl.Context, error) {
		return nil, expectedErr
	}, nil)

	_, err := r.NewContextByName("failing", testCanvas, gl.DefaultAttributes())
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected factory error, got %v", err)
	}
}

// TestRegistryPrioritySelection tests that the highest priority type that
// succeeds is selected.
func TestRegistryPrioritySelection(t *testing.T) {
	r := NewRegistry()

	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("broken", 200, func(gl.Canvas, gl.Attributes) (gl.Context, error) {
		return nil, errors.New("broken")
	}, nil)

	ctx, err := r.NewContext(testCanvas, gl.DefaultAttributes())
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	if got := ctx.(*stubContext).name; got != "high" {
		t.Errorf("selected = %s, want high", got)
	}
}

// TestRegistryOverwrite tests that re-registering overwrites.
func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()

	r.Register("test", 10, stubFactory("test"), nil)
	r.Register("test", 50, stubFactory("test"), nil)

	entry, _ := r.Get("test")
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50 (should be overwritten)", entry.Priority)
	}
}

// TestErrorMessages tests error message formatting.
func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ContextTypeNotFoundError{Name: "webgl"}, "surface: context type not found: webgl"},
		{&ContextTypeUnavailableError{Name: "moz-webgl"}, "surface: context type unavailable: moz-webgl"},
		{&ContextTypeMismatchError{Have: "webgl", Want: "webgl2"}, "surface: canvas already has a webgl context, cannot create webgl2"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
