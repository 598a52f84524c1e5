// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package debug

import (
	"fmt"
	"sync"

	"github.com/gogpu/gldebug/gl"
)

// Registry maps numeric enum values back to their symbolic names.
//
// The mapping is lossy: several names can share one value (NONE, ZERO,
// POINTS and NO_ERROR are all 0). The name recorded last wins.
type Registry struct {
	mu    sync.RWMutex
	names map[gl.Enum]string
}

// NewRegistry returns an uninitialized registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Init records every constant exposed by ctx. Calls after the first are
// no-ops.
func (r *Registry) Init(ctx gl.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names != nil {
		return
	}
	consts := ctx.Constants()
	r.names = make(map[gl.Enum]string, len(consts))
	for _, c := range consts {
		r.names[c.Value] = c.Name
	}
}

// Initialized reports whether Init has run.
func (r *Registry) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names != nil
}

// Len returns the number of distinct values known.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// MightBeEnum reports whether v matches any known enum value.
func (r *Registry) MightBeEnum(v gl.Enum) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.names == nil {
		return false, ErrNotInitialized
	}
	_, ok := r.names[v]
	return ok, nil
}

// EnumToString returns the symbolic name of v. Values with no known name
// render as "*UNKNOWN ENUM (0x<hex>)".
func (r *Registry) EnumToString(v gl.Enum) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.names == nil {
		return "", ErrNotInitialized
	}
	if name, ok := r.names[v]; ok {
		return name, nil
	}
	return unknownEnum(v), nil
}

// MustEnumToString is like EnumToString but panics if the registry is not
// initialized.
func (r *Registry) MustEnumToString(v gl.Enum) string {
	s, err := r.EnumToString(v)
	if err != nil {
		panic(err)
	}
	return s
}

func unknownEnum(v gl.Enum) string {
	return fmt.Sprintf("*UNKNOWN ENUM (0x%x)", uint32(v))
}
