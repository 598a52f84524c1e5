// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package halgl

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by device providers backed by gogpu/wgpu.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewFromProvider returns a Mirror on the HAL device and queue of a host
// application's device provider.
//
// The provider must implement HalDevice() any and HalQueue() any returning
// a hal.Device and a hal.Queue.
func NewFromProvider(provider gpucontext.DeviceProvider) (*Mirror, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}
	slogger().Debug("halgl: mirror attached to provider", "format", provider.SurfaceFormat())
	return New(device, queue)
}
