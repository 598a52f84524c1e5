// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/gldebug/gl"
)

type shader struct {
	id       uint32
	typ      gl.Enum
	source   string
	compiled bool
	log      string
	module   []byte
	deleted  bool
	attached int

	// compiledSource is the source of the last successful compile.
	compiledSource string
}

type program struct {
	id       uint32
	vertex   *shader
	fragment *shader

	deleted   bool
	linked    bool
	validated bool
	log       string

	bindings map[string]int
	attribs  []attribDecl
	uniforms []uniformDecl
	values   [][]float32
}

// lookupShader returns a live shader or raises INVALID_VALUE.
func (c *Context) lookupShader(s gl.Shader) *shader {
	sh, ok := c.shaders[s.Value]
	if !ok || sh.deleted {
		c.setError(gl.INVALID_VALUE)
		return nil
	}
	return sh
}

// lookupProgram returns a live program or raises INVALID_VALUE.
func (c *Context) lookupProgram(p gl.Program) *program {
	prog, ok := c.programs[p.Value]
	if !ok || prog.deleted {
		c.setError(gl.INVALID_VALUE)
		return nil
	}
	return prog
}

// linkedProgram is lookupProgram that also requires a successful link,
// raising INVALID_OPERATION otherwise.
func (c *Context) linkedProgram(p gl.Program) *program {
	prog := c.lookupProgram(p)
	if prog == nil {
		return nil
	}
	if !prog.linked {
		c.setError(gl.INVALID_OPERATION)
		return nil
	}
	return prog
}

// currentProgram returns the program in use, which may be flagged for
// deletion, or nil.
func (c *Context) currentProgram() *program {
	return c.programs[c.state.Program.Value]
}

// Shaders.

func (c *Context) ShaderSource(s gl.Shader, src string) {
	if sh := c.lookupShader(s); sh != nil {
		sh.source = src
	}
}

func (c *Context) CompileShader(s gl.Shader) {
	sh := c.lookupShader(s)
	if sh == nil {
		return
	}
	res, cached := c.compiler.compile(sh.typ, sh.source)
	c.stats.Compiles++
	if cached {
		c.stats.CacheHits++
	}

	sh.compiled = res.ok
	sh.log = res.log
	sh.module = res.module
	if !res.ok {
		slogger().Debug("softgl: shader compile failed", "shader", sh.id, "log", res.log)
		return
	}
	sh.compiledSource = sh.source

	if be := c.opts.backend; be != nil {
		if err := be.ShaderCompiled(s, sh.typ, sh.source, res.module); err != nil {
			slogger().Warn("softgl: backend shader module failed", "shader", sh.id, "err", err)
			c.setError(gl.OUT_OF_MEMORY)
		}
	}
}

func (c *Context) GetShaderParameter(s gl.Shader, pname gl.Enum) int {
	sh := c.lookupShader(s)
	if sh == nil {
		return 0
	}
	switch pname {
	case gl.SHADER_TYPE:
		return int(sh.typ)
	case gl.DELETE_STATUS:
		return boolInt(sh.deleted)
	case gl.COMPILE_STATUS:
		return boolInt(sh.compiled)
	}
	c.setError(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	if sh := c.lookupShader(s); sh != nil {
		return sh.log
	}
	return ""
}

func (c *Context) GetShaderSource(s gl.Shader) string {
	if sh := c.lookupShader(s); sh != nil {
		return sh.source
	}
	return ""
}

// Programs.

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	prog := c.lookupProgram(p)
	if prog == nil {
		return
	}
	sh := c.lookupShader(s)
	if sh == nil {
		return
	}
	slot := &prog.vertex
	if sh.typ == gl.FRAGMENT_SHADER {
		slot = &prog.fragment
	}
	if *slot != nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	*slot = sh
	sh.attached++
}

// detach removes sh from prog and destroys it if it was waiting for that.
func (c *Context) detach(prog *program, sh *shader) {
	switch sh {
	case prog.vertex:
		prog.vertex = nil
	case prog.fragment:
		prog.fragment = nil
	default:
		return
	}
	sh.attached--
	if sh.deleted && sh.attached == 0 {
		c.destroyShader(sh)
	}
}

func (c *Context) DetachShader(p gl.Program, s gl.Shader) {
	prog := c.lookupProgram(p)
	if prog == nil {
		return
	}
	// A shader flagged for deletion can still be detached.
	sh, ok := c.shaders[s.Value]
	if !ok {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if prog.vertex != sh && prog.fragment != sh {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.detach(prog, sh)
}

func (c *Context) LinkProgram(p gl.Program) {
	prog := c.lookupProgram(p)
	if prog == nil {
		return
	}
	prog.linked = false
	prog.validated = false
	prog.attribs = nil
	prog.uniforms = nil
	prog.values = nil

	if err := c.link(prog); err != "" {
		prog.log = err
		c.stats.LinkErrors++
		slogger().Debug("softgl: program link failed", "program", prog.id, "log", err)
		return
	}
	prog.log = ""
	prog.linked = true
}

// link resolves the interface of prog and returns the link log on failure.
func (c *Context) link(prog *program) string {
	var problems []string
	for _, st := range []struct {
		name string
		sh   *shader
	}{{"vertex", prog.vertex}, {"fragment", prog.fragment}} {
		switch {
		case st.sh == nil:
			problems = append(problems, fmt.Sprintf("ERROR: no %s shader attached", st.name))
		case !st.sh.compiled:
			problems = append(problems, fmt.Sprintf("ERROR: %s shader not compiled", st.name))
		}
	}
	if len(problems) > 0 {
		return strings.Join(problems, "\n")
	}

	attribs := reflectAttribs(prog.vertex.compiledSource)
	byLocation := make(map[int]string, len(attribs))
	for i := range attribs {
		a := &attribs[i]
		if loc, ok := prog.bindings[a.name]; ok {
			a.location = loc
		}
		if a.location >= MaxVertexAttribs {
			problems = append(problems, fmt.Sprintf("ERROR: attribute %q location %d exceeds MAX_VERTEX_ATTRIBS", a.name, a.location))
			continue
		}
		if other, taken := byLocation[a.location]; taken {
			problems = append(problems, fmt.Sprintf("ERROR: attributes %q and %q share location %d", other, a.name, a.location))
			continue
		}
		byLocation[a.location] = a.name
	}

	var uniforms []uniformDecl
	types := make(map[string]gl.Enum)
	for _, src := range []string{prog.vertex.compiledSource, prog.fragment.compiledSource} {
		for _, u := range reflectUniforms(src) {
			if t, seen := types[u.name]; seen {
				if t != u.typ {
					problems = append(problems, fmt.Sprintf("ERROR: uniform %q declared with different types", u.name))
				}
				continue
			}
			types[u.name] = u.typ
			uniforms = append(uniforms, u)
		}
	}
	if len(uniforms) > MaxVertexUniforms {
		problems = append(problems, "ERROR: too many uniforms")
	}
	if len(problems) > 0 {
		return strings.Join(problems, "\n")
	}

	prog.attribs = attribs
	prog.uniforms = uniforms
	prog.values = make([][]float32, len(uniforms))
	for i, u := range uniforms {
		prog.values[i] = make([]float32, components(u.typ))
	}
	return ""
}

func (c *Context) ValidateProgram(p gl.Program) {
	if prog := c.lookupProgram(p); prog != nil {
		prog.validated = prog.linked
	}
}

func (c *Context) UseProgram(p gl.Program) {
	if p.Value != 0 {
		prog := c.lookupProgram(p)
		if prog == nil {
			return
		}
		if !prog.linked {
			c.setError(gl.INVALID_OPERATION)
			return
		}
	}
	old := c.currentProgram()
	c.state.Program = p
	if old != nil && old.deleted && old.id != p.Value {
		c.destroyProgram(old)
	}
}

func (c *Context) GetProgramParameter(p gl.Program, pname gl.Enum) int {
	prog := c.lookupProgram(p)
	if prog == nil {
		return 0
	}
	switch pname {
	case gl.DELETE_STATUS:
		return boolInt(prog.deleted)
	case gl.LINK_STATUS:
		return boolInt(prog.linked)
	case gl.VALIDATE_STATUS:
		return boolInt(prog.validated)
	case gl.ATTACHED_SHADERS:
		return len(c.attachedShaders(prog))
	case gl.ACTIVE_ATTRIBUTES:
		return len(prog.attribs)
	case gl.ACTIVE_UNIFORMS:
		return len(prog.uniforms)
	}
	c.setError(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	if prog := c.lookupProgram(p); prog != nil {
		return prog.log
	}
	return ""
}

func (c *Context) attachedShaders(prog *program) []gl.Shader {
	var out []gl.Shader
	for _, sh := range []*shader{prog.vertex, prog.fragment} {
		if sh != nil {
			out = append(out, gl.Shader{Value: sh.id})
		}
	}
	return out
}

func (c *Context) GetAttachedShaders(p gl.Program) []gl.Shader {
	if prog := c.lookupProgram(p); prog != nil {
		return c.attachedShaders(prog)
	}
	return nil
}

func (c *Context) BindAttribLocation(p gl.Program, index int, name string) {
	prog := c.lookupProgram(p)
	if prog == nil {
		return
	}
	if index < 0 || index >= MaxVertexAttribs {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if strings.HasPrefix(name, "webgl_") || strings.HasPrefix(name, "_webgl_") {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	prog.bindings[name] = index
}

func (c *Context) GetAttribLocation(p gl.Program, name string) int {
	prog := c.linkedProgram(p)
	if prog == nil {
		return -1
	}
	for _, a := range prog.attribs {
		if a.name == name {
			return a.location
		}
	}
	return -1
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	prog := c.linkedProgram(p)
	if prog == nil {
		return gl.InvalidUniform
	}
	for i, u := range prog.uniforms {
		if u.name == name {
			return gl.Uniform{Value: int(prog.id)*uniformLocationScale + i}
		}
	}
	return gl.InvalidUniform
}

func (c *Context) GetActiveAttrib(p gl.Program, index int) gl.ActiveInfo {
	prog := c.lookupProgram(p)
	if prog == nil {
		return gl.ActiveInfo{}
	}
	if index < 0 || index >= len(prog.attribs) {
		c.setError(gl.INVALID_VALUE)
		return gl.ActiveInfo{}
	}
	a := prog.attribs[index]
	return gl.ActiveInfo{Name: a.name, Size: 1, Type: a.typ}
}

func (c *Context) GetActiveUniform(p gl.Program, index int) gl.ActiveInfo {
	prog := c.lookupProgram(p)
	if prog == nil {
		return gl.ActiveInfo{}
	}
	if index < 0 || index >= len(prog.uniforms) {
		c.setError(gl.INVALID_VALUE)
		return gl.ActiveInfo{}
	}
	u := prog.uniforms[index]
	return gl.ActiveInfo{Name: u.name, Size: 1, Type: u.typ}
}

// Uniforms.

// uniformSlot resolves a location of prog to a uniform index, or -1.
func uniformSlot(prog *program, u gl.Uniform) int {
	if u.Value < 0 || u.Value/uniformLocationScale != int(prog.id) {
		return -1
	}
	idx := u.Value % uniformLocationScale
	if idx >= len(prog.uniforms) {
		return -1
	}
	return idx
}

// setUniform stores values into location u of the current program after
// checking the uniform type with accept. Location -1 is silently ignored.
func (c *Context) setUniform(u gl.Uniform, accept func(gl.Enum) bool, values ...float32) {
	if u == gl.InvalidUniform {
		return
	}
	prog := c.currentProgram()
	if prog == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	idx := uniformSlot(prog, u)
	if idx < 0 || !accept(prog.uniforms[idx].typ) {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	copy(prog.values[idx], values)
}

func isSampler(t gl.Enum) bool {
	return t == gl.SAMPLER_2D || t == gl.SAMPLER_CUBE
}

func (c *Context) Uniform1f(u gl.Uniform, v float32) {
	c.setUniform(u, func(t gl.Enum) bool { return t == gl.FLOAT || t == gl.BOOL }, v)
}

func (c *Context) Uniform1i(u gl.Uniform, v int) {
	if prog := c.currentProgram(); prog != nil {
		if idx := uniformSlot(prog, u); idx >= 0 && isSampler(prog.uniforms[idx].typ) &&
			(v < 0 || v >= MaxTextureUnits) {
			c.setError(gl.INVALID_VALUE)
			return
		}
	}
	c.setUniform(u, func(t gl.Enum) bool { return t == gl.INT || t == gl.BOOL || isSampler(t) }, float32(v))
}

func (c *Context) Uniform4f(u gl.Uniform, v0, v1, v2, v3 float32) {
	c.setUniform(u, func(t gl.Enum) bool { return t == gl.FLOAT_VEC4 }, v0, v1, v2, v3)
}

func (c *Context) UniformMatrix4fv(u gl.Uniform, transpose bool, value []float32) {
	if transpose || len(value) != 16 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.setUniform(u, func(t gl.Enum) bool { return t == gl.FLOAT_MAT4 }, value...)
}

func (c *Context) GetUniform(p gl.Program, u gl.Uniform) []float32 {
	prog := c.linkedProgram(p)
	if prog == nil {
		return nil
	}
	idx := uniformSlot(prog, u)
	if idx < 0 {
		c.setError(gl.INVALID_OPERATION)
		return nil
	}
	return slices.Clone(prog.values[idx])
}
