// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"fmt"
)

var (
	// ErrCreateShader is returned when the context hands out no shader
	// object, for example because it is lost or out of memory.
	ErrCreateShader = errors.New("shader: unable to create shader")

	// ErrCreateProgram is returned when the context hands out no program
	// object.
	ErrCreateProgram = errors.New("shader: unable to create program")
)

// CompileError reports a shader that failed to compile.
type CompileError struct {
	// Stage is "vertex" or "fragment".
	Stage string
	// Log is the shader info log.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader: failed to link program: " + e.Log
}
