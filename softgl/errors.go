// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import "errors"

// Errors returned by New.
var (
	// ErrInvalidSize is returned for a drawing buffer that is empty or
	// larger than MaxRenderbufferSize in either dimension.
	ErrInvalidSize = errors.New("softgl: invalid drawing buffer size")
)
