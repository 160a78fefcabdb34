// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsllegalize rewrites one shader entry point's parameter and
// return-value signature into the flat set of global varyings GLSL
// requires, scalarizing aggregates and binding HLSL-style system-value
// semantics onto GLSL built-ins along the way.
package glsllegalize

import (
	"github.com/gogpu/glslentry/diagnostic"
	"github.com/gogpu/glslentry/extension"
	"github.com/gogpu/glslentry/ir"
	"github.com/gogpu/glslentry/layout"
)

// legalizeRayTracingEntryPointParameterForGLSL handles a ray-tracing stage
// parameter: it is lifted verbatim to a global parameter of the same type
// (no scalarization), and the entry point is marked as depending on it so
// dead-code elimination never removes it, since ray-tracing shader linkage
// is keyed on payload/attribute type rather than on usage within the shader.
func legalizeRayTracingEntryPointParameterForGLSL(ctx *context, fn *ir.Func, param *ir.Inst, paramLayout *layout.VarLayout) {
	b := ctx.builder
	paramType := param.DataType()

	globalParam := b.CreateGlobalParam(paramType)
	b.AddLayoutDecoration(globalParam, paramLayout)
	ir.MoveGlobalBeforeFunc(globalParam, fn)
	param.ReplaceUsesWith(globalParam)

	b.AddDependsOnDecoration(fn, globalParam)
}

// emitVertexCallee, if call is a call to a function whose "glsl" target
// intrinsic is exactly EmitVertex(), returns that function; otherwise nil.
func emitVertexCallee(call *ir.Inst) *ir.Func {
	fn := ir.ResolveUltimateCallee(call)
	if fn == nil {
		return nil
	}
	def, ok := fn.TargetIntrinsic("glsl")
	if !ok || def != "EmitVertex()" {
		return nil
	}
	return fn
}

// legalizeGeometryStreamParameterForGLSL handles an `out`/`inout` parameter
// whose pointee is a geometry-shader output stream (e.g. a
// TriangleStream<Vert> in HLSL-style source): it materializes one global
// varying per scalarized field, then inserts, just before every
// EmitVertex(stream, vertex) call in the function, an assignment from vertex
// into those globals. The calls themselves are kept.
//
// Reports whether param was a geometry stream (and therefore handled);
// callers fall through to the ordinary in/out handling when it is not.
func legalizeGeometryStreamParameterForGLSL(ctx *context, fn *ir.Func, param *ir.Inst, paramLayout *layout.VarLayout) bool {
	paramPtrType, ok := param.DataType().(ir.PtrTypeBase)
	if !ok {
		return false
	}
	streamType, ok := paramPtrType.ValueType().(ir.StreamOutputType)
	if !ok {
		return false
	}

	b := ctx.builder
	globalOutputVal := createGLSLGlobalVaryings(ctx, streamType.Elem, paramLayout, layout.VaryingOutput)

	// Rewrite every call to an EmitVertex()-intrinsic function: assign the
	// vertex argument into the global varyings just before the call.
	//
	// A GS output stream might in principle be threaded through other
	// functions, which would require legalizing those too; for now only
	// direct EmitVertex calls inside this entry point are handled.
	//
	// The scan runs over a snapshot of each block, so the instructions
	// inserted before a call never shift that call back under the loop.
	for _, block := range fn.Blocks {
		insts := append([]*ir.Inst(nil), block.Insts...)
		for _, inst := range insts {
			if inst.Op != ir.OpCall {
				continue
			}
			if emitVertexCallee(inst) == nil {
				continue
			}
			// Operands: [0]=callee, [1]=stream param, [2]=vertex value.
			if len(inst.Operands) < 3 {
				continue
			}
			b.SetInsertBefore(inst)
			assign(b, globalOutputVal, ValueVal(inst.Operands[2]))
		}
	}

	// The stream parameter itself still has uses from those EmitVertex
	// calls; there's nothing sensible to replace it with since the emitted
	// code never actually reads it, so replace it with an undefined value.
	first := fn.FirstBlock()
	if first != nil && len(first.Insts) > 0 {
		b.SetInsertBefore(first.Insts[0])
	} else if first != nil {
		b.SetInsertInto(first)
	}
	undefinedVal := b.EmitUndefined(param.DataType())
	param.ReplaceUsesWith(undefinedVal)

	return true
}

// legalizeEntryPointParameterForGLSL rewrites a single entry-point
// parameter into one or more global varyings, replacing every use of the
// parameter inside the function body.
func legalizeEntryPointParameterForGLSL(ctx *context, fn *ir.Func, param *ir.Inst, paramLayout *layout.VarLayout) {
	b := ctx.builder
	paramType := param.DataType()

	if legalizeGeometryStreamParameterForGLSL(ctx, fn, param, paramLayout) {
		return
	}

	if ctx.stage.IsRayTracing() {
		legalizeRayTracingEntryPointParameterForGLSL(ctx, fn, param, paramLayout)
		return
	}

	paramPtrType, isPtrLike := paramType.(ir.PtrTypeBase)
	if isPtrLike {
		// The parameter is passed by reference (`out` or `inout`). We
		// replace it with a local variable, and bind one or two sets of
		// global varyings (input side for `inout`, output side always)
		// around it.
		valueType := paramPtrType.ValueType()

		localVariable := b.EmitVar(valueType)
		localVal := AddressVal(localVariable)

		if _, isInOut := paramType.(ir.InOutType); isInOut {
			globalInputVal := createGLSLGlobalVaryings(ctx, valueType, paramLayout, layout.VaryingInput)
			assign(b, localVal, globalInputVal)
		}

		param.ReplaceUsesWith(localVariable)

		globalOutputVal := createGLSLGlobalVaryings(ctx, valueType, paramLayout, layout.VaryingOutput)

		// At every return site, write the local variable out to the
		// global output varyings just before the return. A separate
		// builder is used so the return-site writes don't disturb the
		// insertion point used for the local variable / input copy above.
		terminatorBuilder := ir.NewBuilder(b.Module)
		terminatorBuilder.Func = fn
		for _, block := range fn.Blocks {
			last := block.LastInst()
			if last == nil {
				continue
			}
			if last.Op != ir.OpReturnVal && last.Op != ir.OpReturnVoid {
				continue
			}
			terminatorBuilder.SetInsertBefore(last)
			assign(terminatorBuilder, globalOutputVal, localVal)
		}
		return
	}

	// The easy case: the parameter is passed by value. Materialize the
	// global varyings once, up front, and replace every use of the
	// parameter with the materialized value.
	globalValue := createGLSLGlobalVaryings(ctx, paramType, paramLayout, layout.VaryingInput)
	materialized := materialize(b, globalValue)
	param.ReplaceUsesWith(materialized)
}

// LegalizeEntryPointForGLSL rewrites fn's parameter list and return type so
// that it takes no parameters and returns void, scalarizing every
// parameter and the return value (if any) into global varyings.
//
// fn must not yet have any callers: legalizing an entry point changes its
// signature, which would invalidate any existing call site. This is
// returned as an error, not asserted, since it is a precondition on the
// caller-supplied module rather than an internal invariant of this pass.
func LegalizeEntryPointForGLSL(module *ir.Module, fn *ir.Func, sink *diagnostic.Sink, tracker *extension.Tracker) error {
	if ir.HasUses(module, fn) {
		return errorf("glsllegalize: entry point %q already has callers", fn.Name)
	}

	entryPointLayout := fn.EntryPointLayout
	if entryPointLayout == nil {
		panic(errorf("glsllegalize: entry point %q has no layout decoration", fn.Name))
	}

	ctx := &context{
		stage:    entryPointLayout.Stage,
		sink:     sink,
		tracker:  tracker,
		funcName: fn.Name,
	}

	b := ir.NewBuilder(module)
	b.Func = fn
	if first := fn.FirstBlock(); first != nil {
		b.SetInsertInto(first)
	}
	ctx.builder = b

	// Early-out: a void-returning function with no parameters is already
	// legal for GLSL.
	if _, isVoid := fn.ResultType.(ir.VoidType); isVoid {
		if fn.ParamCount() == 0 {
			return nil
		}
	} else {
		resultGlobal := createGLSLGlobalVaryings(ctx, fn.ResultType, entryPointLayout.ResultLayout, layout.VaryingOutput)

		// Every instruction of every block is scanned, not only block
		// terminators. After a returnVal is rewritten, the scan resumes at
		// the returnVoid that replaced it.
		for _, block := range fn.Blocks {
			for i := 0; i < len(block.Insts); i++ {
				inst := block.Insts[i]
				if inst.Op != ir.OpReturnVal {
					continue
				}
				returnValue := inst.Operands[0]

				b.SetInsertBefore(inst)
				assign(b, resultGlobal, ValueVal(returnValue))
				newReturn := b.EmitReturnVoid()

				inst.RemoveAndDeallocate()

				for block.Insts[i] != newReturn {
					i++
				}
			}
		}
	}

	if firstBlock := fn.FirstBlock(); firstBlock != nil {
		if len(firstBlock.Insts) > 0 {
			b.SetInsertBefore(firstBlock.Insts[0])
		} else {
			b.SetInsertInto(firstBlock)
		}

		for _, param := range fn.Params {
			if param.Layout == nil {
				panic(errorf("glsllegalize: parameter of %q has no layout decoration", fn.Name))
			}
			legalizeEntryPointParameterForGLSL(ctx, fn, param, param.Layout)
		}

		for _, param := range fn.Params {
			param.RemoveAndDeallocate()
		}
	}

	fn.SetVoidSignature()

	return nil
}
