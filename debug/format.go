// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package debug

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gldebug/gl"
)

// enumArgs lists, per command, the argument positions that carry enum
// values. Positions follow the gl.Context method signatures.
var enumArgs = map[string]map[int]bool{
	// Generic setters and getters
	"Enable":       {0: true},
	"Disable":      {0: true},
	"IsEnabled":    {0: true},
	"GetParameter": {0: true},
	"Hint":         {0: true, 1: true},

	// Rendering
	"DrawArrays":   {0: true},
	"DrawElements": {0: true, 2: true},

	// Shaders
	"CreateShader":        {0: true},
	"GetShaderParameter":  {1: true},
	"GetProgramParameter": {1: true},

	// Vertex attributes
	"GetVertexAttrib":       {1: true},
	"GetVertexAttribOffset": {1: true},
	"VertexAttribPointer":   {2: true},

	// Textures
	"BindTexture":     {0: true},
	"ActiveTexture":   {0: true},
	"GetTexParameter": {0: true, 1: true},
	"TexParameteri":   {0: true, 1: true, 2: true},
	"TexImage2D":      {0: true, 2: true, 6: true, 7: true},
	"TexSubImage2D":   {0: true, 6: true, 7: true},
	"GenerateMipmap":  {0: true},

	// Buffer objects
	"BindBuffer":         {0: true},
	"BufferData":         {0: true, 2: true},
	"BufferSubData":      {0: true},
	"GetBufferParameter": {0: true, 1: true},

	// Renderbuffers and framebuffers
	"PixelStorei":                       {0: true, 1: true},
	"ReadPixels":                        {4: true, 5: true},
	"BindRenderbuffer":                  {0: true},
	"BindFramebuffer":                   {0: true},
	"CheckFramebufferStatus":            {0: true},
	"FramebufferRenderbuffer":           {0: true, 1: true, 2: true},
	"FramebufferTexture2D":              {0: true, 1: true, 2: true},
	"GetFramebufferAttachmentParameter": {0: true, 1: true, 2: true},
	"GetRenderbufferParameter":          {0: true, 1: true},
	"RenderbufferStorage":               {0: true, 1: true},

	// Frame buffer operations (clear, blend, depth test, stencil)
	"DepthFunc":             {0: true},
	"BlendFunc":             {0: true, 1: true},
	"BlendFuncSeparate":     {0: true, 1: true, 2: true, 3: true},
	"BlendEquation":         {0: true},
	"BlendEquationSeparate": {0: true, 1: true},
	"StencilFunc":           {0: true},
	"StencilFuncSeparate":   {0: true, 1: true},
	"StencilMaskSeparate":   {0: true},
	"StencilOp":             {0: true, 1: true, 2: true},
	"StencilOpSeparate":     {0: true, 1: true, 2: true, 3: true},

	// Culling
	"CullFace":  {0: true},
	"FrontFace": {0: true},
}

// clearBits names the bits accepted by Clear, in display order.
var clearBits = []struct {
	bit  gl.Enum
	name string
}{
	{gl.COLOR_BUFFER_BIT, "COLOR_BUFFER_BIT"},
	{gl.DEPTH_BUFFER_BIT, "DEPTH_BUFFER_BIT"},
	{gl.STENCIL_BUFFER_BIT, "STENCIL_BUFFER_BIT"},
}

// IsEnumArg reports whether argument index of command carries an enum.
func IsEnumArg(command string, index int) bool {
	return enumArgs[command][index]
}

// Formatter renders command arguments for diagnostics.
type Formatter struct {
	reg *Registry
}

// NewFormatter returns a formatter that names enums through reg.
func NewFormatter(reg *Registry) *Formatter {
	return &Formatter{reg: reg}
}

// FormatArg renders argument index of command. Enum-valued positions are
// rendered by name; everything else is printed plainly.
func (f *Formatter) FormatArg(command string, index int, value any) (string, error) {
	if command == "Clear" && index == 0 {
		if e, ok := enumValue(value); ok {
			return f.formatClearMask(e)
		}
	}
	if IsEnumArg(command, index) {
		if e, ok := enumValue(value); ok {
			return f.reg.EnumToString(e)
		}
	}
	switch v := value.(type) {
	case nil:
		return "null", nil
	case []byte:
		return fmt.Sprintf("[%d bytes]", len(v)), nil
	case string:
		return fmt.Sprintf("%q", v), nil
	}
	return fmt.Sprint(value), nil
}

// FormatCall renders command and its arguments as "Name(a, b, c)".
func (f *Formatter) FormatCall(command string, args []any) (string, error) {
	var sb strings.Builder
	sb.WriteString(command)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		s, err := f.FormatArg(command, i, a)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

func (f *Formatter) formatClearMask(mask gl.Enum) (string, error) {
	if !f.reg.Initialized() {
		return "", ErrNotInitialized
	}
	var parts []string
	rest := mask
	for _, b := range clearBits {
		if mask&b.bit != 0 {
			parts = append(parts, b.name)
			rest &^= b.bit
		}
	}
	if rest != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, " | "), nil
}

// enumValue converts an enum-position argument to gl.Enum. Integers of any
// kind are accepted; negative or oversized values are not enums.
func enumValue(value any) (gl.Enum, bool) {
	switch v := value.(type) {
	case gl.Enum:
		return v, true
	case int:
		return intEnum(int64(v))
	case int8:
		return intEnum(int64(v))
	case int16:
		return intEnum(int64(v))
	case int32:
		return intEnum(int64(v))
	case int64:
		return intEnum(v)
	case uint:
		return uintEnum(uint64(v))
	case uint8:
		return gl.Enum(v), true
	case uint16:
		return gl.Enum(v), true
	case uint32:
		return gl.Enum(v), true
	case uint64:
		return uintEnum(v)
	}
	return 0, false
}

func intEnum(v int64) (gl.Enum, bool) {
	if v < 0 {
		return 0, false
	}
	return uintEnum(uint64(v))
}

func uintEnum(v uint64) (gl.Enum, bool) {
	if v > math.MaxUint32 {
		return 0, false
	}
	return gl.Enum(v), true
}
