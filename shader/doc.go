// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader compiles shader sources and links them into programs.
//
// A [Builder] runs the pipeline strictly in order: vertex shader, fragment
// shader, program creation, link. The first failure stops the pipeline and
// every object created by the failed attempt is deleted before the error
// is returned, so a failed build never leaks shader or program objects.
//
// Compile and link failures are returned as [*CompileError] and
// [*LinkError]. Both carry the complete driver log:
//
//	prog, err := shader.NewBuilder(ctx).Init(vertexSrc, fragmentSrc)
//	var cerr *shader.CompileError
//	if errors.As(err, &cerr) {
//		fmt.Println(cerr.Stage, cerr.Log)
//	}
//
// The package-level helpers [LoadShader], [CreateProgram] and
// [InitShaders] are shorthands for a Builder using the package logger.
package shader
