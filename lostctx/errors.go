// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lostctx

import "errors"

// ErrNoRestoreListener is returned by RestoreContext when no restored
// listener has been registered.
var ErrNoRestoreListener = errors.New("lostctx: cannot restore the context without a restored listener")
