// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsllegalize

import "github.com/gogpu/glslentry/ir"

// Flavor distinguishes the five shapes a ScalarizedVal can take.
type Flavor uint8

const (
	// FlavorNone is the zero value: no value at all.
	FlavorNone Flavor = iota

	// FlavorValue wraps a plain r-value instruction.
	FlavorValue

	// FlavorAddress wraps an l-value (pointer) instruction.
	FlavorAddress

	// FlavorTuple is a SOA decomposition of zero or more ScalarizedVals,
	// one per struct field. When the tuple stands for an array of structs,
	// each element holds that field for the whole array.
	FlavorTuple

	// FlavorTypeAdapter wraps a value that is stored with one type but
	// needs to present itself as having a different type.
	FlavorTypeAdapter
)

// ScalarizedVal stands in for a conceptual shader value that might actually
// be backed by several global varyings. It layers an "is this a tuple? an
// l-value?" question over the top of the IR rather than introducing tuple
// types into the IR itself.
//
// This is a tagged union, not an interface hierarchy: Tuple and TypeAdapter
// variants are never nil pointers of a common interface, they are fields on
// this struct gated by Flavor.
type ScalarizedVal struct {
	Flavor Flavor

	// Inst is set for FlavorValue and FlavorAddress.
	Inst *ir.Inst

	// tuple is set for FlavorTuple.
	tuple *tupleVal

	// adapter is set for FlavorTypeAdapter.
	adapter *typeAdapterVal
}

// tupleElement is one field of a tupleVal: the struct key it corresponds to,
// plus the scalarized value materialized for that field.
type tupleElement struct {
	Key *ir.StructKey
	Val ScalarizedVal
}

// tupleVal is the payload of a FlavorTuple ScalarizedVal.
type tupleVal struct {
	Type     ir.Type
	Elements []tupleElement
}

// typeAdapterVal is the payload of a FlavorTypeAdapter ScalarizedVal: val is
// actually of type ActualType, but every caller should be able to treat it
// as though it were PretendType.
type typeAdapterVal struct {
	Val         ScalarizedVal
	ActualType  ir.Type
	PretendType ir.Type
}

// ValueVal wraps a plain r-value instruction.
func ValueVal(inst *ir.Inst) ScalarizedVal {
	return ScalarizedVal{Flavor: FlavorValue, Inst: inst}
}

// AddressVal wraps an l-value (pointer) instruction.
func AddressVal(inst *ir.Inst) ScalarizedVal {
	return ScalarizedVal{Flavor: FlavorAddress, Inst: inst}
}

// tupleValOf wraps a tupleVal as a ScalarizedVal.
func tupleValOf(t *tupleVal) ScalarizedVal {
	return ScalarizedVal{Flavor: FlavorTuple, tuple: t}
}

// typeAdapterValOf wraps a typeAdapterVal as a ScalarizedVal.
//
// The wrapped value must not itself be a FlavorTypeAdapter: adaptation is
// resolved eagerly against the innermost real value, not chained, since
// there is never a reason to adapt a type twice in this pass.
func typeAdapterValOf(t *typeAdapterVal) ScalarizedVal {
	if t.Val.Flavor == FlavorTypeAdapter {
		panic(errorf("glsllegalize: type adapter wrapping another type adapter"))
	}
	return ScalarizedVal{Flavor: FlavorTypeAdapter, adapter: t}
}

// IsNone reports whether val carries no value at all (a void result).
func (val ScalarizedVal) IsNone() bool {
	return val.Flavor == FlavorNone
}

// extractField returns the scalarized value of one field of val, given the
// field's positional index (its order in the tuple) and struct key.
func extractField(b *ir.Builder, val ScalarizedVal, fieldIndex int, key *ir.StructKey) ScalarizedVal {
	switch val.Flavor {
	case FlavorValue:
		fieldType := ir.FieldType(val.Inst.DataType(), key)
		return ValueVal(b.EmitFieldExtract(fieldType, val.Inst, key))

	case FlavorAddress:
		ptrType, _ := val.Inst.DataType().(ir.PtrTypeBase)
		fieldType := ir.FieldType(ptrType.ValueType(), key)
		fieldPtrType := ir.WrapPtrLike(ptrType, fieldType)
		return AddressVal(b.EmitFieldAddress(fieldPtrType, val.Inst, key))

	case FlavorTuple:
		return val.tuple.Elements[fieldIndex].Val

	default:
		panic(errorf("glsllegalize: extractField unimplemented for flavor %d", val.Flavor))
	}
}

// adaptInst wraps a plain instruction of type fromType as a value of type
// toType, by emitting a constructor/conversion call. No actual logic about
// what is and isn't a legal GLSL conversion is performed here; this mirrors
// the TODO left in the original adaptType.
func adaptInst(b *ir.Builder, val *ir.Inst, toType ir.Type) ScalarizedVal {
	return ValueVal(b.EmitConstructorInst(toType, val))
}

// adaptVal adapts a ScalarizedVal of flavor Value or Address to toType.
func adaptVal(b *ir.Builder, val ScalarizedVal, toType ir.Type) ScalarizedVal {
	switch val.Flavor {
	case FlavorValue:
		return adaptInst(b, val.Inst, toType)

	case FlavorAddress:
		loaded := b.EmitLoad(val.Inst)
		return adaptInst(b, loaded, toType)

	default:
		panic(errorf("glsllegalize: adaptVal unimplemented for flavor %d", val.Flavor))
	}
}

// assign writes right into left, recursing element-by-element whenever a
// tuple is on either side.
func assign(b *ir.Builder, left, right ScalarizedVal) {
	switch left.Flavor {
	case FlavorAddress:
		switch right.Flavor {
		case FlavorValue:
			b.EmitStore(left.Inst, right.Inst)

		case FlavorAddress:
			loaded := b.EmitLoad(right.Inst)
			b.EmitStore(left.Inst, loaded)

		case FlavorTuple:
			// Assigning from a tuple into a non-tuple destination:
			// perform the assignment element-by-element.
			for i, elem := range right.tuple.Elements {
				leftElem := extractField(b, left, i, elem.Key)
				assign(b, leftElem, elem.Val)
			}

		default:
			panic(errorf("glsllegalize: assign unimplemented for right flavor %d", right.Flavor))
		}

	case FlavorTuple:
		// The destination is itself a tuple: assign into each field.
		for i, elem := range left.tuple.Elements {
			rightElem := extractField(b, right, i, elem.Key)
			assign(b, elem.Val, rightElem)
		}

	case FlavorTypeAdapter:
		// The destination had its type adjusted; adapt the right-hand
		// side to the adapter's actual (stored) type before recursing
		// into the wrapped value.
		adaptedRight := adaptVal(b, right, left.adapter.ActualType)
		assign(b, left.adapter.Val, adaptedRight)

	default:
		panic(errorf("glsllegalize: assign unimplemented for left flavor %d", left.Flavor))
	}
}

// getSubscript indexes into val at a dynamic index, producing a scalarized
// value of the given element type. For a tuple this recurses into every
// field, building a fresh tuple of subscripted fields.
func getSubscript(b *ir.Builder, elemType ir.Type, val ScalarizedVal, indexVal *ir.Inst) ScalarizedVal {
	switch val.Flavor {
	case FlavorValue:
		return ValueVal(b.EmitElementExtract(elemType, val.Inst, indexVal))

	case FlavorAddress:
		return AddressVal(b.EmitElementAddress(b.GetPtrType(elemType), val.Inst, indexVal))

	case FlavorTuple:
		structType, ok := elemType.(ir.StructType)
		if !ok {
			panic(errorf("glsllegalize: getSubscript tuple element type is not a struct"))
		}
		result := &tupleVal{Type: elemType}
		for i, field := range structType.Fields {
			inputElem := val.tuple.Elements[i]
			result.Elements = append(result.Elements, tupleElement{
				Key: inputElem.Key,
				Val: getSubscript(b, field.Type, inputElem.Val, indexVal),
			})
		}
		return tupleValOf(result)

	default:
		panic(errorf("glsllegalize: getSubscript unimplemented for flavor %d", val.Flavor))
	}
}

// getSubscriptIndex is getSubscript with a compile-time-known integer index.
func getSubscriptIndex(b *ir.Builder, elemType ir.Type, val ScalarizedVal, index int) ScalarizedVal {
	return getSubscript(b, elemType, val, b.GetIntValue(b.GetIntType(), int64(index)))
}

// materialize collapses val down to a single IR instruction, loading
// addresses and reconstructing tuples as needed.
func materialize(b *ir.Builder, val ScalarizedVal) *ir.Inst {
	switch val.Flavor {
	case FlavorValue:
		return val.Inst

	case FlavorAddress:
		return b.EmitLoad(val.Inst)

	case FlavorTuple:
		return materializeTuple(b, val)

	case FlavorTypeAdapter:
		// Somebody is using this value where its actual type doesn't
		// match the type it pretends to have; adapt it from its actual
		// type to its pretend type before materializing further.
		adapted := adaptVal(b, val.adapter.Val, val.adapter.PretendType)
		return materialize(b, adapted)

	default:
		panic(errorf("glsllegalize: materialize unimplemented for flavor %d", val.Flavor))
	}
}

// materializeTuple is the FlavorTuple case of materialize, split out because
// it has two very different shapes depending on whether the tuple stands in
// for an array (SOA -> AOS reconstruction) or an ordinary aggregate.
func materializeTuple(b *ir.Builder, val ScalarizedVal) *ir.Inst {
	t := val.tuple

	if arrayType, ok := t.Type.(ir.ArrayType); ok {
		// The tuple represents an array: each field is itself an array,
		// so extract element ii of every field and reassemble it into
		// array element ii of the result.
		elems := make([]*ir.Inst, arrayType.Count)
		for i := 0; i < arrayType.Count; i++ {
			elemVal := getSubscriptIndex(b, arrayType.Elem, val, i)
			elems[i] = materialize(b, elemVal)
		}
		return b.EmitMakeArray(arrayType, elems...)
	}

	elems := make([]*ir.Inst, len(t.Elements))
	for i, elem := range t.Elements {
		elems[i] = materialize(b, elem.Val)
	}
	return b.EmitConstructorInst(t.Type, elems...)
}
