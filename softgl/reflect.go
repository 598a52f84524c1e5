// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/gldebug/gl"
)

var (
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	entryRe        = regexp.MustCompile(`(@vertex|@fragment|@compute)\s*(?:@\w+(?:\([^)]*\))?\s*)*fn\s+(\w+)\s*\(`)
	locationRe     = regexp.MustCompile(`@location\(\s*(\d+)\s*\)`)
	attrRe         = regexp.MustCompile(`@\w+(?:\([^)]*\))?`)
	uniformRe      = regexp.MustCompile(`var<uniform>\s+(\w+)\s*:\s*([^;]+);`)
	textureRe      = regexp.MustCompile(`var\s+(\w+)\s*:\s*(texture_2d|texture_cube)\s*<[^;]*>\s*;`)
)

// attribDecl is a vertex input declared by a vertex entry point.
type attribDecl struct {
	name     string
	location int
	typ      gl.Enum
}

// uniformDecl is a uniform visible to GL as a named location.
type uniformDecl struct {
	name string
	typ  gl.Enum
}

func stripComments(src string) string {
	src = blockCommentRe.ReplaceAllString(src, "")
	return lineCommentRe.ReplaceAllString(src, "")
}

// findEntryPoint returns the name of the first function carrying stage and
// the offset of its opening parenthesis.
func findEntryPoint(src, stage string) (string, int) {
	for _, m := range entryRe.FindAllStringSubmatchIndex(src, -1) {
		if src[m[2]:m[3]] == stage {
			return src[m[4]:m[5]], m[1] - 1
		}
	}
	return "", -1
}

// splitTopLevel splits s on commas that are not nested inside <> or ().
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// entryParams returns the parameter declarations of the stage entry point.
func entryParams(src, stage string) []string {
	_, open := findEntryPoint(src, stage)
	if open < 0 {
		return nil
	}
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return splitTopLevel(src[open+1 : i])
			}
		}
	}
	return nil
}

// structFields returns the member declarations of struct name, or nil if
// src declares no such struct.
func structFields(src, name string) []string {
	re, err := regexp.Compile(`struct\s+` + regexp.QuoteMeta(name) + `\s*\{`)
	if err != nil {
		return nil
	}
	loc := re.FindStringIndex(src)
	if loc == nil {
		return nil
	}
	end := strings.IndexByte(src[loc[1]:], '}')
	if end < 0 {
		return nil
	}
	return splitTopLevel(src[loc[1] : loc[1]+end])
}

// field is one parsed parameter or struct member.
type field struct {
	name     string
	typ      string
	location int // -1 without @location
	builtin  bool
}

func parseField(decl string) field {
	f := field{location: -1}
	if m := locationRe.FindStringSubmatch(decl); m != nil {
		f.location, _ = strconv.Atoi(m[1])
	}
	f.builtin = strings.Contains(decl, "@builtin")
	name, typ, _ := strings.Cut(attrRe.ReplaceAllString(decl, ""), ":")
	f.name = strings.TrimSpace(name)
	f.typ = strings.TrimSpace(typ)
	return f
}

// wgslType maps a WGSL type to the GL type reported by GetActiveAttrib
// and GetActiveUniform, or zero if GL has no equivalent.
func wgslType(t string) gl.Enum {
	switch strings.ReplaceAll(t, " ", "") {
	case "f32":
		return gl.FLOAT
	case "vec2<f32>", "vec2f":
		return gl.FLOAT_VEC2
	case "vec3<f32>", "vec3f":
		return gl.FLOAT_VEC3
	case "vec4<f32>", "vec4f":
		return gl.FLOAT_VEC4
	case "i32", "u32":
		return gl.INT
	case "vec2<i32>", "vec2i", "vec2<u32>", "vec2u":
		return gl.INT_VEC2
	case "vec3<i32>", "vec3i", "vec3<u32>", "vec3u":
		return gl.INT_VEC3
	case "vec4<i32>", "vec4i", "vec4<u32>", "vec4u":
		return gl.INT_VEC4
	case "bool":
		return gl.BOOL
	case "mat2x2<f32>", "mat2x2f":
		return gl.FLOAT_MAT2
	case "mat3x3<f32>", "mat3x3f":
		return gl.FLOAT_MAT3
	case "mat4x4<f32>", "mat4x4f":
		return gl.FLOAT_MAT4
	}
	return 0
}

// components returns the number of scalar values stored for a uniform.
func components(t gl.Enum) int {
	switch t {
	case gl.FLOAT_VEC2, gl.INT_VEC2:
		return 2
	case gl.FLOAT_VEC3, gl.INT_VEC3:
		return 3
	case gl.FLOAT_VEC4, gl.INT_VEC4, gl.FLOAT_MAT2:
		return 4
	case gl.FLOAT_MAT3:
		return 9
	case gl.FLOAT_MAT4:
		return 16
	}
	return 1
}

// reflectAttribs returns the vertex inputs of the vertex entry point in
// src, including members of struct-typed parameters.
func reflectAttribs(src string) []attribDecl {
	src = stripComments(src)
	var out []attribDecl
	add := func(f field) {
		if f.builtin || f.location < 0 {
			return
		}
		out = append(out, attribDecl{name: f.name, location: f.location, typ: wgslType(f.typ)})
	}
	for _, p := range entryParams(src, "@vertex") {
		f := parseField(p)
		if f.location >= 0 || f.builtin {
			add(f)
			continue
		}
		for _, m := range structFields(src, f.typ) {
			add(parseField(m))
		}
	}
	return out
}

// reflectUniforms returns the uniforms declared in src. Members of
// struct-typed uniform buffers are reported as "block.member".
func reflectUniforms(src string) []uniformDecl {
	src = stripComments(src)
	var out []uniformDecl
	for _, m := range uniformRe.FindAllStringSubmatch(src, -1) {
		name, typ := m[1], strings.TrimSpace(m[2])
		if t := wgslType(typ); t != 0 {
			out = append(out, uniformDecl{name: name, typ: t})
			continue
		}
		for _, member := range structFields(src, typ) {
			f := parseField(member)
			if t := wgslType(f.typ); t != 0 {
				out = append(out, uniformDecl{name: name + "." + f.name, typ: t})
			}
		}
	}
	for _, m := range textureRe.FindAllStringSubmatch(src, -1) {
		t := gl.SAMPLER_2D
		if m[2] == "texture_cube" {
			t = gl.SAMPLER_CUBE
		}
		out = append(out, uniformDecl{name: m[1], typ: t})
	}
	return out
}
