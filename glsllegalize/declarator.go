// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsllegalize

import "github.com/gogpu/glslentry/ir"

// declaratorFlavor is the kind of wrapper a globalVaryingDeclarator node
// adds. Array is the only flavor the pass currently produces (one node per
// nesting level of SOA-decomposed array), but it is kept as an enum rather
// than collapsing the type, matching the original's own single-case enum.
type declaratorFlavor uint8

const (
	declaratorArray declaratorFlavor = iota
)

// globalVaryingDeclarator is a cons-list of outer-array wrappers accumulated
// while recursing down through nested array types: each nested array
// prepends its node, so the innermost array comes first in the list and the
// outermost last. createSimpleGLSLGlobalVarying consumes the list starting
// from its head, wrapping the innermost element type in one array dimension
// at a time.
type globalVaryingDeclarator struct {
	Flavor       declaratorFlavor
	ElementCount *ir.Inst // an OpIntValue
	Next         *globalVaryingDeclarator
}
