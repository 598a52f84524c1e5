// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package debug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gldebug/debug"
	"github.com/gogpu/gldebug/gl"
)

func TestIsEnumArg(t *testing.T) {
	assert.True(t, debug.IsEnumArg("BindTexture", 0))
	assert.False(t, debug.IsEnumArg("BindTexture", 1))
	assert.True(t, debug.IsEnumArg("TexImage2D", 7))
	assert.False(t, debug.IsEnumArg("TexImage2D", 3))
	assert.False(t, debug.IsEnumArg("Viewport", 0))
	assert.False(t, debug.IsEnumArg("NoSuchCommand", 0))
}

func TestFormatCall(t *testing.T) {
	r := debug.NewRegistry()
	r.Init(newSoftContext(t))
	f := debug.NewFormatter(r)

	tests := []struct {
		command string
		args    []any
		want    string
	}{
		{"BindTexture", []any{gl.TEXTURE_2D, gl.Texture{Value: 3}}, "BindTexture(TEXTURE_2D, Texture(3))"},
		{"Viewport", []any{0, 0, 640, 480}, "Viewport(0, 0, 640, 480)"},
		{"Clear", []any{gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT}, "Clear(COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT)"},
		{"Clear", []any{gl.STENCIL_BUFFER_BIT | gl.Enum(0x1)}, "Clear(STENCIL_BUFFER_BIT | 0x1)"},
		{"Clear", []any{gl.Enum(0)}, "Clear(0x0)"},
		{"BufferData", []any{gl.ARRAY_BUFFER, []byte{1, 2, 3}, gl.STATIC_DRAW}, "BufferData(ARRAY_BUFFER, [3 bytes], STATIC_DRAW)"},
		{"ShaderSource", []any{gl.Shader{Value: 2}, "void main() {}"}, `ShaderSource(Shader(2), "void main() {}")`},
		{"Uniform1i", []any{gl.Uniform{Value: -1}, 3}, "Uniform1i(Uniform(-1), 3)"},
		{"TexImage2D", []any{gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil},
			"TexImage2D(TEXTURE_2D, 0, RGBA, 1, 1, 0, RGBA, UNSIGNED_BYTE, null)"},
		{"Enable", []any{gl.Enum(0xbeef)}, "Enable(*UNKNOWN ENUM (0xbeef))"},
		{"Flush", nil, "Flush()"},
		{"BindTexture", []any{3553, gl.Texture{Value: 3}}, "BindTexture(TEXTURE_2D, Texture(3))"},
		{"Enable", []any{uint32(0x0be2)}, "Enable(BLEND)"},
		{"Enable", []any{-1}, "Enable(-1)"},
		{"TexParameteri", []any{gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(gl.LINEAR)},
			"TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, LINEAR)"},
		{"Clear", []any{int(gl.COLOR_BUFFER_BIT)}, "Clear(COLOR_BUFFER_BIT)"},
	}
	for _, tt := range tests {
		got, err := f.FormatCall(tt.command, tt.args)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatterNeedsRegistry(t *testing.T) {
	f := debug.NewFormatter(debug.NewRegistry())

	_, err := f.FormatCall("Enable", []any{gl.BLEND})
	assert.ErrorIs(t, err, debug.ErrNotInitialized)

	_, err = f.FormatArg("Clear", 0, gl.COLOR_BUFFER_BIT)
	assert.ErrorIs(t, err, debug.ErrNotInitialized)

	s, err := f.FormatArg("Viewport", 0, 12)
	require.NoError(t, err)
	assert.Equal(t, "12", s)
}

func TestFormatArgPlainIntegers(t *testing.T) {
	r := debug.NewRegistry()
	r.Init(newSoftContext(t))
	f := debug.NewFormatter(r)

	s, err := f.FormatArg("BindTexture", 0, 3553)
	require.NoError(t, err)
	assert.Equal(t, "TEXTURE_2D", s)

	s, err = f.FormatArg("BindTexture", 0, int64(1)<<40)
	require.NoError(t, err)
	assert.Equal(t, "1099511627776", s)

	s, err = f.FormatArg("Viewport", 2, 3553)
	require.NoError(t, err)
	assert.Equal(t, "3553", s)
}
