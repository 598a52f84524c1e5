// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame provides the single-threaded per-frame scheduler that
// drives deferred work in gldebug.
//
// A [Loop] is the host's "schedule next frame" primitive. Work posted with
// [Loop.Post] runs on the next [Loop.Tick], in FIFO order, never
// synchronously inside the call that posted it. Frame callbacks requested
// with [Loop.RequestFrame] run after the posted tasks of the same tick.
package frame

import (
	"context"
	"sync"
	"time"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Scheduler defers a task to a later turn of the host loop.
type Scheduler interface {
	Post(task func())
}

// FrameID identifies a pending frame callback.
type FrameID uint64

type frameRequest struct {
	id       FrameID
	fn       func(elapsed time.Duration)
	canceled bool
}

// Loop is a FIFO task queue advanced explicitly by Tick.
//
// Post, RequestFrame and Cancel may be called from any goroutine; Tick and
// Run must be called from the goroutine that owns the GPU context.
type Loop struct {
	mu      sync.Mutex
	tasks   *linkedlistqueue.Queue
	frames  *linkedlistqueue.Queue
	pending map[FrameID]*frameRequest
	nextID  FrameID
	ticks   uint64
	start   time.Time
	now     func() time.Time
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{
		tasks:   linkedlistqueue.New(),
		frames:  linkedlistqueue.New(),
		pending: make(map[FrameID]*frameRequest),
		start:   time.Now(),
		now:     time.Now,
	}
}

// Post queues task to run on the next tick.
func (l *Loop) Post(task func()) {
	if task == nil {
		return
	}
	l.mu.Lock()
	l.tasks.Enqueue(task)
	l.mu.Unlock()
}

// RequestFrame queues fn to run once on the next tick, after posted tasks.
// fn receives the time elapsed since the loop was created.
func (l *Loop) RequestFrame(fn func(elapsed time.Duration)) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	req := &frameRequest{id: l.nextID, fn: fn}
	l.frames.Enqueue(req)
	l.pending[req.id] = req
	return req.id
}

// Cancel drops a frame callback that has not run yet.
func (l *Loop) Cancel(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req, ok := l.pending[id]; ok {
		req.canceled = true
		delete(l.pending, id)
	}
}

// Pending returns the number of queued tasks and frame callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tasks.Size() + len(l.pending)
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// Tick runs every task and frame callback queued before the tick started
// and returns how many ran. Work queued while the tick runs waits for the
// next tick.
func (l *Loop) Tick() int {
	l.mu.Lock()
	l.ticks++
	tasks := drain(l.tasks)
	reqs := drain(l.frames)
	for _, r := range reqs {
		delete(l.pending, r.(*frameRequest).id)
	}
	elapsed := l.now().Sub(l.start)
	l.mu.Unlock()

	ran := 0
	for _, t := range tasks {
		t.(func())()
		ran++
	}
	for _, r := range reqs {
		req := r.(*frameRequest)
		l.mu.Lock()
		canceled := req.canceled
		l.mu.Unlock()
		if canceled {
			continue
		}
		req.fn(elapsed)
		ran++
	}
	return ran
}

// Run ticks the loop every interval until ctx is done.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}

// drain empties q and returns its values in FIFO order.
func drain(q *linkedlistqueue.Queue) []interface{} {
	out := make([]interface{}, 0, q.Size())
	for {
		v, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
