// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shadow implements the pending error-code set used by contexts
// that capture GL errors and report them later through GetError.
package shadow

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/gogpu/gldebug/gl"
)

// Set is an insertion-ordered set of pending GL error codes.
// Adding a code that is already pending does not change its position.
// The zero value is not usable; call New.
type Set struct {
	codes *linkedhashset.Set
}

// New returns an empty set.
func New() *Set {
	return &Set{codes: linkedhashset.New()}
}

// Add marks code as pending. NO_ERROR is ignored.
func (s *Set) Add(code gl.Enum) {
	if code == gl.NO_ERROR {
		return
	}
	s.codes.Add(code)
}

// Has reports whether code is pending.
func (s *Set) Has(code gl.Enum) bool {
	return s.codes.Contains(code)
}

// Drain removes and returns the oldest pending code, or NO_ERROR when the
// set is empty.
func (s *Set) Drain() gl.Enum {
	it := s.codes.Iterator()
	if !it.Next() {
		return gl.NO_ERROR
	}
	code := it.Value().(gl.Enum)
	s.codes.Remove(code)
	return code
}

// Len returns the number of pending codes.
func (s *Set) Len() int { return s.codes.Size() }

// Clear drops every pending code.
func (s *Set) Clear() { s.codes.Clear() }

// Codes returns the pending codes in drain order without removing them.
func (s *Set) Codes() []gl.Enum {
	values := s.codes.Values()
	out := make([]gl.Enum, len(values))
	for i, v := range values {
		out[i] = v.(gl.Enum)
	}
	return out
}
