// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package halgl

import "errors"

var (
	// ErrNilDevice is returned when New is called without a device or queue.
	ErrNilDevice = errors.New("halgl: nil device or queue")

	// ErrNoHALProvider is returned by NewFromProvider when the provider
	// does not expose its HAL device and queue.
	ErrNoHALProvider = errors.New("halgl: provider does not expose HAL types")

	// ErrClosed is returned by uploads made after Close.
	ErrClosed = errors.New("halgl: mirror closed")

	// ErrUnknownBuffer is returned when a partial update targets a buffer
	// whose store was never mirrored.
	ErrUnknownBuffer = errors.New("halgl: unknown buffer")

	// ErrUnsupportedFormat is returned for texel layouts that cannot be
	// expanded to RGBA8.
	ErrUnsupportedFormat = errors.New("halgl: unsupported texture format")

	// ErrInvalidSPIRV is returned when a shader module is not a whole
	// number of 32-bit words.
	ErrInvalidSPIRV = errors.New("halgl: invalid SPIR-V binary")
)
