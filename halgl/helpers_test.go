// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package halgl_test

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/halgl"
	"github.com/gogpu/gldebug/softgl"
)

const vertexWGSL = `
@vertex
fn vs_main(@location(0) a_position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return a_position;
}
`

// createNoopDevice opens the first adapter of the noop HAL backend.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	require.NoError(t, err)
	adapters := instance.EnumerateAdapters(nil)
	require.NotEmpty(t, adapters)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

// newMirrored returns a softgl context whose resources are mirrored onto a
// noop device.
func newMirrored(t *testing.T) (*softgl.Context, *halgl.Mirror) {
	t.Helper()
	device, queue := createNoopDevice(t)
	m, err := halgl.New(device, queue)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	c, err := softgl.New(gl.Canvas{Width: 8, Height: 8}, gl.DefaultAttributes(), softgl.WithBackend(m))
	require.NoError(t, err)
	return c, m
}

func drainErrors(c gl.Context) []gl.Enum {
	var out []gl.Enum
	for e := c.GetError(); e != gl.NO_ERROR; e = c.GetError() {
		out = append(out, e)
	}
	return out
}
