// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softgl

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/gogpu/gldebug/gl"
	"github.com/gogpu/naga"
)

// compileResult is the outcome of compiling one shader source.
type compileResult struct {
	ok     bool
	log    string
	entry  string
	module []byte
}

type cacheKey struct {
	typ gl.Enum
	src string
}

// compiler compiles WGSL through naga and caches results by source.
type compiler struct {
	cache *lru.Cache // nil when caching is disabled
}

func newCompiler(size int) (*compiler, error) {
	if size < 1 {
		return &compiler{}, nil
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &compiler{cache: cache}, nil
}

// compile returns the result for src and whether it came from the cache.
func (c *compiler) compile(typ gl.Enum, src string) (compileResult, bool) {
	key := cacheKey{typ: typ, src: src}
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			return v.(compileResult), true
		}
	}
	res := compileWGSL(typ, src)
	if c.cache != nil {
		c.cache.Add(key, res)
	}
	return res, false
}

func stageAttr(typ gl.Enum) string {
	if typ == gl.VERTEX_SHADER {
		return "@vertex"
	}
	return "@fragment"
}

func compileWGSL(typ gl.Enum, src string) compileResult {
	if strings.TrimSpace(src) == "" {
		return compileResult{log: "ERROR: empty shader source"}
	}
	stage := stageAttr(typ)
	entry, _ := findEntryPoint(stripComments(src), stage)
	if entry == "" {
		return compileResult{log: fmt.Sprintf("ERROR: no %s entry point", stage)}
	}

	module, err := naga.Compile(src)
	if err != nil {
		return compileResult{log: "ERROR: " + err.Error()}
	}
	return compileResult{ok: true, entry: entry, module: module}
}
