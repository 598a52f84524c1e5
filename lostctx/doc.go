// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lostctx simulates losing and restoring a GL context.
//
// A [Context] wraps a live gl.Context and behaves as if the device behind it
// could disappear at any time. LoseContext flips the simulator into the lost
// state at once; the registered lost listener runs on a later tick of the
// host [frame.Scheduler]. While lost, commands are swallowed, creation
// returns null handles and queries return their failure values.
//
// Every object created through the simulator is stamped with the current
// epoch. Each loss starts a new epoch, so objects created before a loss
// are rejected with INVALID_OPERATION afterwards. RestoreContext deletes those objects from the
// underlying context, puts it back into its initial state with
// [ResetToInitialState] and then runs the restored listener.
//
//	sim := lostctx.NewContext(ctx, loop)
//	sim.OnContextRestored(func(lostctx.Event) { rebuild(sim) })
//	sim.LoseContext()
//	_ = sim.RestoreContext()
//	loop.Tick()
package lostctx
