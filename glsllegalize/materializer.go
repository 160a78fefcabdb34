// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsllegalize

import (
	"github.com/gogpu/glslentry/ir"
	"github.com/gogpu/glslentry/layout"
)

// createSimpleGLSLGlobalVarying materializes a single global varying
// parameter (plus, for array-nested calls, the array-of declarators wrapped
// around it) for a leaf type: a scalar, vector, matrix, or anything else
// that fell through createGLSLGlobalVaryingsImpl's structural recursion
// without being a struct, array, or stream.
func createSimpleGLSLGlobalVarying(
	ctx *context,
	inType ir.Type,
	inVarLayout *layout.VarLayout,
	inTypeLayout layout.TypeLayout,
	kind layout.ResourceKind,
	bindingIndex uint32,
	declarator *globalVaryingDeclarator,
) ScalarizedVal {
	systemValueInfo := resolveGLSLSystemValue(ctx, inVarLayout, kind, ctx.stage)

	typ := inType
	if systemValueInfo != nil && systemValueInfo.RequiredType != nil {
		typ = systemValueInfo.RequiredType
	}

	// Build the actual type and type-layout, wrapping one array dimension
	// per declarator node (innermost first).
	typeLayout := inTypeLayout
	for dd := declarator; dd != nil; dd = dd.Next {
		arrayType := ir.ArrayType{Elem: typ, Count: int(dd.ElementCount.IntValue)}

		arrayTypeLayout := &layout.ArrayTypeLayout{
			OriginalElementTypeLayout: typeLayout,
			ElementTypeLayout:         typeLayout,
		}
		arrayTypeLayout.SetRules(typeLayout.Rules())

		if resInfo := inTypeLayout.FindResourceInfo(kind); resInfo != nil {
			elementCount := uint32(dd.ElementCount.IntValue)
			arrayTypeLayout.AddResourceInfo(kind).Count = resInfo.Count * elementCount
		}

		typ = arrayType
		typeLayout = arrayTypeLayout
	}

	// A fresh layout for the variable is always constructed, even if the
	// original had its own: it might be an `inout` parameter, and only the
	// side named by kind should be described here.
	varLayout := inVarLayout.Clone(typeLayout)
	varLayout.AddResourceInfo(kind).Index = bindingIndex

	isOutput := kind == layout.VaryingOutput
	paramType := typ
	if isOutput {
		paramType = ir.OutType{Elem: typ}
	}

	globalParam := ctx.builder.CreateGlobalParam(paramType)
	ir.MoveGlobalBeforeFunc(globalParam, ctx.builder.Func)

	var val ScalarizedVal
	if isOutput {
		val = AddressVal(globalParam)
	} else {
		val = ValueVal(globalParam)
	}

	if systemValueInfo != nil {
		ctx.builder.AddImportDecoration(globalParam, systemValueInfo.Name)

		if fromType := systemValueInfo.RequiredType; fromType != nil {
			toType := inType
			if !ir.TypesEqual(fromType, toType) {
				val = typeAdapterValOf(&typeAdapterVal{
					Val:         val,
					ActualType:  systemValueInfo.RequiredType,
					PretendType: inType,
				})
			}
		}

		if systemValueInfo.OuterArrayName != "" {
			ctx.builder.AddGLSLOuterArrayDecoration(globalParam, systemValueInfo.OuterArrayName)
		}
	}

	ctx.builder.AddLayoutDecoration(globalParam, varLayout)

	return val
}

// createGLSLGlobalVaryingsImpl recurses through type's structure,
// SOA-decomposing arrays and structs into one global varying per leaf.
func createGLSLGlobalVaryingsImpl(
	ctx *context,
	typ ir.Type,
	varLayout *layout.VarLayout,
	typeLayout layout.TypeLayout,
	kind layout.ResourceKind,
	bindingIndex uint32,
	declarator *globalVaryingDeclarator,
) ScalarizedVal {
	switch t := typ.(type) {
	case ir.VoidType:
		return ScalarizedVal{}

	case ir.BasicType, ir.VectorType:
		return createSimpleGLSLGlobalVarying(ctx, typ, varLayout, typeLayout, kind, bindingIndex, declarator)

	case ir.MatrixType:
		// A matrix-typed varying should, in principle, be handled like an
		// array of rows; left as a single leaf for now, an open question
		// carried forward rather than resolved.
		return createSimpleGLSLGlobalVarying(ctx, typ, varLayout, typeLayout, kind, bindingIndex, declarator)

	case ir.ArrayType:
		arrayLayout, ok := typeLayout.(*layout.ArrayTypeLayout)
		if !ok {
			panic(errorf("createGLSLGlobalVaryingsImpl: array type without an ArrayTypeLayout"))
		}
		arrayDeclarator := &globalVaryingDeclarator{
			Flavor:       declaratorArray,
			ElementCount: ctx.builder.GetIntValue(ctx.builder.GetIntType(), int64(t.Count)),
			Next:         declarator,
		}
		return createGLSLGlobalVaryingsImpl(ctx, t.Elem, varLayout, arrayLayout.ElementTypeLayout, kind, bindingIndex, arrayDeclarator)

	case ir.StreamOutputType:
		streamLayout, ok := typeLayout.(*layout.StreamOutputTypeLayout)
		if !ok {
			panic(errorf("createGLSLGlobalVaryingsImpl: stream type without a StreamOutputTypeLayout"))
		}
		return createGLSLGlobalVaryingsImpl(ctx, t.Elem, varLayout, streamLayout.ElementTypeLayout, kind, bindingIndex, declarator)

	case ir.StructType:
		structLayout, ok := typeLayout.(*layout.StructTypeLayout)
		if !ok {
			panic(errorf("createGLSLGlobalVaryingsImpl: struct type without a StructTypeLayout"))
		}

		fullType := typ
		for dd := declarator; dd != nil; dd = dd.Next {
			fullType = ir.ArrayType{Elem: fullType, Count: int(dd.ElementCount.IntValue)}
		}

		tv := &tupleVal{Type: fullType}

		for fieldIndex, field := range t.Fields {
			fieldLayout := structLayout.Fields[fieldIndex]

			fieldBindingIndex := bindingIndex
			if fieldResInfo := fieldLayout.FindResourceInfo(kind); fieldResInfo != nil {
				fieldBindingIndex += fieldResInfo.Index
			}

			fieldVal := createGLSLGlobalVaryingsImpl(ctx, field.Type, fieldLayout, fieldLayout.TypeLayout, kind, fieldBindingIndex, declarator)
			if !fieldVal.IsNone() {
				tv.Elements = append(tv.Elements, tupleElement{Key: field.Key, Val: fieldVal})
			}
		}

		return tupleValOf(tv)

	default:
		return createSimpleGLSLGlobalVarying(ctx, typ, varLayout, typeLayout, kind, bindingIndex, declarator)
	}
}

// createGLSLGlobalVaryings is the entry point into the materializer: it
// reads the starting binding index off varLayout and recurses from there.
func createGLSLGlobalVaryings(ctx *context, typ ir.Type, vl *layout.VarLayout, kind layout.ResourceKind) ScalarizedVal {
	var bindingIndex uint32
	if rr := vl.FindResourceInfo(kind); rr != nil {
		bindingIndex = rr.Index
	}
	return createGLSLGlobalVaryingsImpl(ctx, typ, vl, vl.TypeLayout, kind, bindingIndex, nil)
}
