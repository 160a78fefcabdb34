// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsllegalize

import (
	"strings"

	"github.com/gogpu/glslentry/diagnostic"
	"github.com/gogpu/glslentry/extension"
	"github.com/gogpu/glslentry/ir"
	"github.com/gogpu/glslentry/layout"
)

// glslSystemValueInfo describes how an HLSL-style system-value semantic
// maps onto a GLSL built-in: its name, an optional outer-array wrapper name
// (for geometry-shader inputs addressed as gl_in[...].gl_Position), and the
// type GLSL expects the built-in to have.
type glslSystemValueInfo struct {
	Name           string
	OuterArrayName string
	RequiredType   ir.Type
}

var (
	floatType = ir.BasicType{Kind: ir.ScalarFloat}
	intType   = ir.BasicType{Kind: ir.ScalarInt}
	uintType  = ir.BasicType{Kind: ir.ScalarUint}
	boolType  = ir.BasicType{Kind: ir.ScalarBool}
)

func vec(scalar ir.ScalarKind, size int) ir.VectorType { return ir.VectorType{Scalar: scalar, Size: size} }

// resolveGLSLSystemValue maps vl's system-value semantic (if it has one) to
// a GLSL built-in descriptor, recording any extension/profile-version side
// effects along the way. It returns nil when vl is not a system value at
// all, when the semantic is SV_Target (which is just an ordinary `out`
// variable in GLSL, not a built-in), and when the semantic is unrecognized
// (in which case an error diagnostic is raised and the caller should fall
// back to treating the parameter as an ordinary varying).
func resolveGLSLSystemValue(ctx *context, vl *layout.VarLayout, kind layout.ResourceKind, stage layout.Stage) *glslSystemValueInfo {
	if vl.SystemValueSemantic == "" {
		return nil
	}
	semanticName := strings.ToLower(vl.SystemValueSemantic)

	var info glslSystemValueInfo

	switch semanticName {
	case "sv_position":
		// This semantic works like gl_FragCoord as a fragment-shader
		// input, and like gl_Position everywhere else (including as a
		// geometry-shader input, read back from a previous stage).
		switch {
		case stage == layout.StageFragment && kind == layout.VaryingInput:
			info.Name = "gl_FragCoord"
		case stage == layout.StageGeometry && kind == layout.VaryingInput:
			info.OuterArrayName = "gl_in"
			info.Name = "gl_Position"
		default:
			info.Name = "gl_Position"
		}
		info.RequiredType = vec(ir.ScalarFloat, 4)

	case "sv_target":
		// Fragment-shader outputs need no built-in: they are ordinary
		// `out` variables with ordinary locations.
		return nil

	case "sv_clipdistance":
		info.Name = "gl_ClipDistance"
		info.RequiredType = floatType

	case "sv_culldistance":
		ctx.requireExtension("ARB_cull_distance")
		info.Name = "gl_CullDistance"
		info.RequiredType = floatType

	case "sv_coverage":
		info.Name = "gl_SampleMask"
		info.RequiredType = intType

	case "sv_depth":
		info.Name = "gl_FragDepth"
		info.RequiredType = floatType

	case "sv_depthgreaterequal":
		info.Name = "gl_FragDepth"
		info.RequiredType = floatType

	case "sv_depthlessequal":
		info.Name = "gl_FragDepth"
		info.RequiredType = floatType

	case "sv_dispatchthreadid":
		info.Name = "gl_GlobalInvocationID"
		info.RequiredType = vec(ir.ScalarUint, 3)

	case "sv_domainlocation":
		info.Name = "gl_TessCoord"
		info.RequiredType = vec(ir.ScalarFloat, 3)

	case "sv_groupid":
		info.Name = "gl_WorkGroupID"
		info.RequiredType = vec(ir.ScalarUint, 3)

	case "sv_groupindex":
		info.Name = "gl_LocalInvocationIndex"
		info.RequiredType = uintType

	case "sv_groupthreadid":
		info.Name = "gl_LocalInvocationID"
		info.RequiredType = vec(ir.ScalarUint, 3)

	case "sv_gsinstanceid":
		info.Name = "gl_InvocationID"
		info.RequiredType = intType

	case "sv_instanceid":
		info.Name = "gl_InstanceIndex"
		info.RequiredType = intType

	case "sv_isfrontface":
		info.Name = "gl_FrontFacing"
		info.RequiredType = boolType

	case "sv_outputcontrolpointid":
		info.Name = "gl_InvocationID"
		info.RequiredType = intType

	case "sv_pointsize":
		info.Name = "gl_PointSize"
		info.RequiredType = floatType

	case "sv_primitiveid":
		info.Name = "gl_PrimitiveID"
		info.RequiredType = intType

	case "sv_rendertargetarrayindex":
		switch stage {
		case layout.StageGeometry:
			ctx.requireVersion(extension.GLSL_150)
		case layout.StageFragment:
			ctx.requireVersion(extension.GLSL_430)
		default:
			ctx.requireVersion(extension.GLSL_450)
			ctx.requireExtension("GL_ARB_shader_viewport_layer_array")
		}
		info.Name = "gl_Layer"
		info.RequiredType = intType

	case "sv_sampleindex":
		info.Name = "gl_SampleID"
		info.RequiredType = intType

	case "sv_stencilref":
		ctx.requireExtension("ARB_shader_stencil_export")
		info.Name = "gl_FragStencilRef"
		info.RequiredType = intType

	case "sv_tessfactor":
		// "Tessellation factors must be declared as an array; they
		// cannot be packed into a single vector." HLSL allows
		// float[2|3|4]; GLSL always has room for float[4]. No
		// element-count-aware conversion is performed here — an open
		// question carried forward rather than resolved, see
		// adaptInst.
		info.Name = "gl_TessLevelOuter"
		info.RequiredType = ir.ArrayType{Elem: floatType, Count: 4}

	case "sv_vertexid":
		info.Name = "gl_VertexIndex"
		info.RequiredType = intType

	case "sv_viewportarrayindex":
		info.Name = "gl_ViewportIndex"
		info.RequiredType = intType

	case "nv_x_right":
		ctx.requireVersion(extension.GLSL_450)
		ctx.requireExtension("GL_NVX_multiview_per_view_attributes")
		// Hack inherited from the original: this maps one output onto
		// element 1 of the multiview array, relying on the caller to
		// separately copy gl_Position into element 0.
		info.Name = "gl_PositionPerViewNV[1]"

	case "nv_viewport_mask":
		ctx.requireVersion(extension.GLSL_450)
		ctx.requireExtension("GL_NVX_multiview_per_view_attributes")
		info.Name = "gl_ViewportMaskPerViewNV"

	default:
		info.Name = ""
	}

	if info.Name != "" {
		return &info
	}

	ctx.sink.Error(ctx.loc(`parameter "`+vl.SemanticName+`"`), diagnostic.CodeUnknownSystemValue,
		"unknown system-value semantic %q", vl.SystemValueSemantic)
	return nil
}
