// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package debug

import "errors"

// ErrNotInitialized is returned by Registry lookups made before Init.
var ErrNotInitialized = errors.New("debug: enum registry not initialized, call Init(ctx) first")
