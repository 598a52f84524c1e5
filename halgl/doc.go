// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package halgl mirrors the resources of a softgl context onto a
// gogpu/wgpu HAL device.
//
// A Mirror implements softgl.Backend. Install it with softgl.WithBackend and
// every buffer store, base-level texture image and compiled shader created
// through the context is recreated as a hal.Buffer, hal.Texture or
// hal.ShaderModule:
//
//	m, err := halgl.New(device, queue)
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//	ctx, err := softgl.New(canvas, gl.DefaultAttributes(), softgl.WithBackend(m))
//
// Textures are always stored as RGBA8Unorm. Images in other formats are
// expanded on upload. Cube maps become six-layer array textures, one layer
// per face. Mipmap levels above zero are not mirrored.
//
// When the device is owned by a host application, NewFromProvider accepts
// its gpucontext.DeviceProvider instead.
package halgl
