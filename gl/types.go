// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gl

import "fmt"

// Enum is a GL enumerated value or bitmask.
type Enum uint32

// Kind discriminates the GPU object kinds a context can create.
type Kind uint8

// Object kinds.
const (
	KindBuffer Kind = iota + 1
	KindFramebuffer
	KindProgram
	KindRenderbuffer
	KindShader
	KindTexture
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "Buffer"
	case KindFramebuffer:
		return "Framebuffer"
	case KindProgram:
		return "Program"
	case KindRenderbuffer:
		return "Renderbuffer"
	case KindShader:
		return "Shader"
	case KindTexture:
		return "Texture"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Object is a tagged reference to any GPU object.
type Object struct {
	Kind  Kind
	Value uint32
}

// IsValid reports whether o refers to an object rather than null.
func (o Object) IsValid() bool { return o.Value != 0 }

func (o Object) String() string { return fmt.Sprintf("%s(%d)", o.Kind, o.Value) }

// Buffer is a buffer object handle.
type Buffer struct{ Value uint32 }

// Framebuffer is a framebuffer object handle.
type Framebuffer struct{ Value uint32 }

// Program is a program object handle.
type Program struct{ Value uint32 }

// Renderbuffer is a renderbuffer object handle.
type Renderbuffer struct{ Value uint32 }

// Shader is a shader object handle.
type Shader struct{ Value uint32 }

// Texture is a texture object handle.
type Texture struct{ Value uint32 }

// Uniform is a uniform location. Negative values are invalid locations.
type Uniform struct{ Value int }

// InvalidUniform is returned when a uniform name does not resolve.
var InvalidUniform = Uniform{Value: -1}

func (v Buffer) IsValid() bool       { return v.Value != 0 }
func (v Framebuffer) IsValid() bool  { return v.Value != 0 }
func (v Program) IsValid() bool      { return v.Value != 0 }
func (v Renderbuffer) IsValid() bool { return v.Value != 0 }
func (v Shader) IsValid() bool       { return v.Value != 0 }
func (v Texture) IsValid() bool      { return v.Value != 0 }
func (v Uniform) IsValid() bool      { return v.Value >= 0 }

func (v Buffer) Object() Object       { return Object{KindBuffer, v.Value} }
func (v Framebuffer) Object() Object  { return Object{KindFramebuffer, v.Value} }
func (v Program) Object() Object      { return Object{KindProgram, v.Value} }
func (v Renderbuffer) Object() Object { return Object{KindRenderbuffer, v.Value} }
func (v Shader) Object() Object       { return Object{KindShader, v.Value} }
func (v Texture) Object() Object      { return Object{KindTexture, v.Value} }

func (v Buffer) String() string       { return fmt.Sprintf("Buffer(%d)", v.Value) }
func (v Framebuffer) String() string  { return fmt.Sprintf("Framebuffer(%d)", v.Value) }
func (v Program) String() string      { return fmt.Sprintf("Program(%d)", v.Value) }
func (v Renderbuffer) String() string { return fmt.Sprintf("Renderbuffer(%d)", v.Value) }
func (v Shader) String() string       { return fmt.Sprintf("Shader(%d)", v.Value) }
func (v Texture) String() string      { return fmt.Sprintf("Texture(%d)", v.Value) }
func (v Uniform) String() string      { return fmt.Sprintf("Uniform(%d)", v.Value) }

// Canvas describes the drawable a context renders into.
type Canvas struct {
	// Width and Height are the drawing buffer size in pixels.
	Width, Height int

	// ClientWidth and ClientHeight are the displayed size in pixels.
	ClientWidth, ClientHeight int
}

// Attributes are context creation attributes.
type Attributes struct {
	Alpha                 bool
	Depth                 bool
	Stencil               bool
	Antialias             bool
	PremultipliedAlpha    bool
	PreserveDrawingBuffer bool
}

// DefaultAttributes returns the WebGL default creation attributes.
func DefaultAttributes() Attributes {
	return Attributes{
		Alpha:              true,
		Depth:              true,
		Antialias:          true,
		PremultipliedAlpha: true,
	}
}

// ActiveInfo describes an active attribute or uniform of a linked program.
type ActiveInfo struct {
	Name string
	Size int
	Type Enum
}

// Constant is a named numeric value exposed by a context.
type Constant struct {
	Name  string
	Value Enum
}
