// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lostctx

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/gogpu/gldebug/gl"
)

// Record is an object created through the simulator together with the
// epoch it was created in.
type Record struct {
	Object gl.Object
	Epoch  uint64
}

// tracker remembers created objects in creation order.
type tracker struct {
	records *linkedhashmap.Map // gl.Object -> uint64
}

func newTracker() *tracker {
	return &tracker{records: linkedhashmap.New()}
}

func (t *tracker) add(obj gl.Object, epoch uint64) {
	t.records.Put(obj, epoch)
}

func (t *tracker) remove(obj gl.Object) {
	t.records.Remove(obj)
}

// epochOf returns the creation epoch of obj and whether it is tracked.
func (t *tracker) epochOf(obj gl.Object) (uint64, bool) {
	v, ok := t.records.Get(obj)
	if !ok {
		return 0, false
	}
	return v.(uint64), true
}

func (t *tracker) len() int { return t.records.Size() }

func (t *tracker) list() []Record {
	out := make([]Record, 0, t.records.Size())
	it := t.records.Iterator()
	for it.Next() {
		out = append(out, Record{Object: it.Key().(gl.Object), Epoch: it.Value().(uint64)})
	}
	return out
}

// free deletes every object created before epoch from ctx and forgets it.
// It returns the number of objects deleted.
func (t *tracker) free(ctx gl.Context, epoch uint64) int {
	n := 0
	for _, r := range t.list() {
		if r.Epoch >= epoch {
			continue
		}
		deleteObject(ctx, r.Object)
		t.remove(r.Object)
		n++
	}
	return n
}

func deleteObject(ctx gl.Context, obj gl.Object) {
	switch obj.Kind {
	case gl.KindBuffer:
		ctx.DeleteBuffer(gl.Buffer{Value: obj.Value})
	case gl.KindFramebuffer:
		ctx.DeleteFramebuffer(gl.Framebuffer{Value: obj.Value})
	case gl.KindProgram:
		ctx.DeleteProgram(gl.Program{Value: obj.Value})
	case gl.KindRenderbuffer:
		ctx.DeleteRenderbuffer(gl.Renderbuffer{Value: obj.Value})
	case gl.KindShader:
		ctx.DeleteShader(gl.Shader{Value: obj.Value})
	case gl.KindTexture:
		ctx.DeleteTexture(gl.Texture{Value: obj.Value})
	}
}
