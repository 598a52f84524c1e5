// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package halgl

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/gldebug/internal/glog"
	"github.com/gogpu/gldebug/softgl"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func slogger() *slog.Logger { return glog.L() }

var (
	bufferUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageUniform |
		gputypes.BufferUsageCopyDst | gputypes.BufferUsageCopySrc
	textureUsage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
)

type bufferEntry struct {
	buf hal.Buffer
	// shadow holds the whole store, padded to a multiple of four bytes, so
	// unaligned partial updates can be widened before they are written.
	shadow []byte
}

type textureEntry struct {
	tex           hal.Texture
	width, height uint32
	layers        uint32
}

// Stats counts the HAL resources held by a Mirror.
type Stats struct {
	Buffers  int
	Textures int
	Modules  int
	// Uploads is the number of WriteBuffer and WriteTexture calls issued.
	Uploads int
	// BytesWritten is the total payload of those calls.
	BytesWritten uint64
}

// Mirror recreates softgl resources on a HAL device.
//
// Mirror is safe for concurrent use.
type Mirror struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue
	closed bool

	buffers  map[uint32]*bufferEntry
	textures map[uint32]*textureEntry
	modules  map[uint32]hal.ShaderModule

	uploads      int
	bytesWritten uint64
}

var _ softgl.Backend = (*Mirror)(nil)

// New returns a Mirror that creates resources on device and uploads them
// through queue.
func New(device hal.Device, queue hal.Queue) (*Mirror, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Mirror{
		device:   device,
		queue:    queue,
		buffers:  make(map[uint32]*bufferEntry),
		textures: make(map[uint32]*textureEntry),
		modules:  make(map[uint32]hal.ShaderModule),
	}, nil
}

// Stats returns a snapshot of the mirrored resources.
func (m *Mirror) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Buffers:      len(m.buffers),
		Textures:     len(m.textures),
		Modules:      len(m.modules),
		Uploads:      m.uploads,
		BytesWritten: m.bytesWritten,
	}
}

// Has reports whether obj currently has a HAL counterpart.
func (m *Mirror) Has(obj gl.Object) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch obj.Kind {
	case gl.KindBuffer:
		_, ok := m.buffers[obj.Value]
		return ok
	case gl.KindTexture:
		_, ok := m.textures[obj.Value]
		return ok
	case gl.KindShader:
		_, ok := m.modules[obj.Value]
		return ok
	}
	return false
}

// Close destroys every mirrored resource. Later uploads fail with
// ErrClosed. The device and queue are not destroyed.
func (m *Mirror) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true

	for id, e := range m.buffers {
		m.device.DestroyBuffer(e.buf)
		delete(m.buffers, id)
	}
	for id, e := range m.textures {
		m.device.DestroyTexture(e.tex)
		delete(m.textures, id)
	}
	for id, mod := range m.modules {
		m.device.DestroyShaderModule(mod)
		delete(m.modules, id)
	}
}

func (m *Mirror) writeBuffer(buf hal.Buffer, offset uint64, data []byte) {
	m.queue.WriteBuffer(buf, offset, data)
	m.uploads++
	m.bytesWritten += uint64(len(data))
}

// BufferData recreates the HAL buffer backing b and uploads data.
func (m *Mirror) BufferData(b gl.Buffer, _ gl.Enum, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	if old, ok := m.buffers[b.Value]; ok {
		m.device.DestroyBuffer(old.buf)
		delete(m.buffers, b.Value)
	}

	size := alignUp(max(len(data), 4), 4)
	buf, err := m.device.CreateBuffer(&hal.BufferDescriptor{
		Label: fmt.Sprintf("gl-buffer-%d", b.Value),
		Size:  uint64(size),
		Usage: bufferUsage,
	})
	if err != nil {
		return fmt.Errorf("halgl: create buffer %d: %w", b.Value, err)
	}

	e := &bufferEntry{buf: buf, shadow: make([]byte, size)}
	copy(e.shadow, data)
	m.buffers[b.Value] = e
	if len(data) > 0 {
		m.writeBuffer(buf, 0, e.shadow)
	}
	return nil
}

// BufferSubData replaces part of a mirrored buffer. The written range is
// widened to four-byte boundaries.
func (m *Mirror) BufferSubData(b gl.Buffer, offset int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	e, ok := m.buffers[b.Value]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, b.Value)
	}
	if offset < 0 || offset+len(data) > len(e.shadow) {
		return fmt.Errorf("halgl: buffer %d: range [%d, %d) out of bounds", b.Value, offset, offset+len(data))
	}
	if len(data) == 0 {
		return nil
	}

	copy(e.shadow[offset:], data)
	start := offset &^ 3
	end := min(alignUp(offset+len(data), 4), len(e.shadow))
	m.writeBuffer(e.buf, uint64(start), e.shadow[start:end])
	return nil
}

// TexImage2D mirrors level zero of a texture image. Cube map faces are
// written to the matching layer of a six-layer texture.
func (m *Mirror) TexImage2D(t gl.Texture, target gl.Enum, level, width, height int, format, typ gl.Enum, pixels []byte) error {
	if level != 0 {
		return nil
	}

	var rgba []byte
	if pixels != nil {
		var err error
		if rgba, err = toRGBA(format, typ, width, height, pixels); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	if width == 0 || height == 0 {
		m.releaseTexture(t.Value)
		return nil
	}

	layers, layer := uint32(1), uint32(0)
	if target != gl.TEXTURE_2D {
		layers, layer = 6, uint32(target-gl.TEXTURE_CUBE_MAP_POSITIVE_X)
	}

	e, ok := m.textures[t.Value]
	if !ok || e.width != uint32(width) || e.height != uint32(height) || e.layers != layers {
		m.releaseTexture(t.Value)
		tex, err := m.device.CreateTexture(&hal.TextureDescriptor{
			Label: fmt.Sprintf("gl-texture-%d", t.Value),
			Size: hal.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: layers,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatRGBA8Unorm,
			Usage:         textureUsage,
		})
		if err != nil {
			return fmt.Errorf("halgl: create texture %d: %w", t.Value, err)
		}
		e = &textureEntry{tex: tex, width: uint32(width), height: uint32(height), layers: layers}
		m.textures[t.Value] = e
	}

	if rgba == nil {
		return nil
	}
	m.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  e.tex,
			MipLevel: 0,
			Origin:   hal.Origin3D{Z: layer},
			Aspect:   gputypes.TextureAspectAll,
		},
		rgba,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  e.width * 4,
			RowsPerImage: e.height,
		},
		&hal.Extent3D{Width: e.width, Height: e.height, DepthOrArrayLayers: 1},
	)
	m.uploads++
	m.bytesWritten += uint64(len(rgba))
	return nil
}

// ShaderCompiled creates a shader module from the compiled SPIR-V,
// replacing any module made by an earlier compile of the same shader.
func (m *Mirror) ShaderCompiled(s gl.Shader, typ gl.Enum, _ string, module []byte) error {
	words, err := spirvWords(module)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	mod, err := m.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: fmt.Sprintf("gl-shader-%d", s.Value),
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return fmt.Errorf("halgl: create shader module %d: %w", s.Value, err)
	}
	if old, ok := m.modules[s.Value]; ok {
		m.device.DestroyShaderModule(old)
	}
	m.modules[s.Value] = mod
	slogger().Debug("halgl: shader module created", "shader", s.Value, "type", fmt.Sprintf("0x%x", uint32(typ)), "words", len(words))
	return nil
}

// Release destroys the HAL counterpart of obj, if any.
func (m *Mirror) Release(obj gl.Object) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch obj.Kind {
	case gl.KindBuffer:
		if e, ok := m.buffers[obj.Value]; ok {
			m.device.DestroyBuffer(e.buf)
			delete(m.buffers, obj.Value)
		}
	case gl.KindTexture:
		m.releaseTexture(obj.Value)
	case gl.KindShader:
		if mod, ok := m.modules[obj.Value]; ok {
			m.device.DestroyShaderModule(mod)
			delete(m.modules, obj.Value)
		}
	}
}

func (m *Mirror) releaseTexture(id uint32) {
	if e, ok := m.textures[id]; ok {
		m.device.DestroyTexture(e.tex)
		delete(m.textures, id)
	}
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
