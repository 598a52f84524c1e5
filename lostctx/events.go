// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lostctx

// Status messages carried by lifecycle events.
const (
	StatusLost     = "context lost"
	StatusRestored = "context restored"
)

// Event is delivered to lost and restored listeners.
type Event struct {
	StatusMessage string
}

// Listener receives context lifecycle events.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// HandleEvent calls f(ev).
func (f ListenerFunc) HandleEvent(ev Event) { f(ev) }

// listenerOf converts fn to a Listener, keeping nil as nil.
func listenerOf(fn func(Event)) Listener {
	if fn == nil {
		return nil
	}
	return ListenerFunc(fn)
}
