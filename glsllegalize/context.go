// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsllegalize

import (
	"github.com/gogpu/glslentry/diagnostic"
	"github.com/gogpu/glslentry/extension"
	"github.com/gogpu/glslentry/ir"
	"github.com/gogpu/glslentry/layout"
)

// context is the per-entry-point scratch state threaded through every
// function in this package: the stage being legalized, the builder
// currently emitting instructions, the diagnostic sink, and the
// extension/profile tracker.
type context struct {
	stage   layout.Stage
	builder *ir.Builder
	sink    *diagnostic.Sink
	tracker *extension.Tracker

	// funcName labels diagnostics raised while processing this entry point.
	funcName string
}

func (c *context) requireExtension(name string) {
	c.tracker.RequireExtension(name)
}

func (c *context) requireVersion(v extension.ProfileVersion) {
	c.tracker.RequireVersion(v)
}

func (c *context) loc(detail string) diagnostic.Loc {
	return diagnostic.Loc{Function: c.funcName, Detail: detail}
}
