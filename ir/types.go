package ir

import "fmt"

// Type is the IR's closed set of shader types.
type Type interface {
	typeString() string
}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarFloat ScalarKind = iota
	ScalarInt
	ScalarUint
	ScalarBool
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarFloat:
		return "float"
	case ScalarInt:
		return "int"
	case ScalarUint:
		return "uint"
	case ScalarBool:
		return "bool"
	default:
		return "unknown-scalar"
	}
}

// VoidType is the type of a function with no return value.
type VoidType struct{}

func (VoidType) typeString() string { return "void" }

// BasicType is a single scalar value (the "IRBasicType" of the original).
type BasicType struct {
	Kind ScalarKind
}

func (t BasicType) typeString() string { return t.Kind.String() }

// VectorType is a fixed-size vector of a scalar kind.
type VectorType struct {
	Scalar ScalarKind
	Size   int // 2, 3, or 4
}

func (t VectorType) typeString() string { return fmt.Sprintf("%s%d", t.Scalar, t.Size) }

// MatrixType is a fixed-size matrix of a scalar kind.
//
// Matrix-typed varyings are handled as a single leaf by the materializer,
// not decomposed into per-row SOA storage; see glsllegalize/materializer.go.
type MatrixType struct {
	Scalar  ScalarKind
	Rows    int
	Columns int
}

func (t MatrixType) typeString() string {
	return fmt.Sprintf("%s%dx%d", t.Scalar, t.Rows, t.Columns)
}

// ArrayType is a fixed-length array of some element type.
type ArrayType struct {
	Elem  Type
	Count int
}

func (t ArrayType) typeString() string { return fmt.Sprintf("%s[%d]", t.Elem.typeString(), t.Count) }

// StructKey identifies a struct field. Field identity is by pointer, not by
// name, matching the original IR's IRStructKey*: two fields with the same
// name but different keys are different fields.
type StructKey struct {
	Name string
}

// StructField is one member of a StructType.
type StructField struct {
	Key  *StructKey
	Type Type
}

// StructType is a nominal aggregate of fields, each independently typed.
type StructType struct {
	Name   string
	Fields []StructField
}

func (t StructType) typeString() string { return t.Name }

// FieldType returns the type of the field identified by key, or nil if base
// is not a StructType or has no such field.
func FieldType(base Type, key *StructKey) Type {
	st, ok := base.(StructType)
	if !ok {
		return nil
	}
	for _, f := range st.Fields {
		if f.Key == key {
			return f.Type
		}
	}
	return nil
}

// StreamOutputType wraps the element type of a geometry-shader output
// stream (e.g. TriangleStream<Vert> in HLSL-style source).
type StreamOutputType struct {
	Elem Type
}

func (t StreamOutputType) typeString() string { return fmt.Sprintf("stream<%s>", t.Elem.typeString()) }

// PtrTypeBase is implemented by every pointer-like wrapper type (plain
// pointers as well as the Out/InOut by-reference parameter wrappers), so
// that code can recover the pointee type without a type switch over every
// variant.
type PtrTypeBase interface {
	Type
	ValueType() Type
}

// PtrType is an ordinary pointer to a value of some type.
type PtrType struct {
	Elem Type
}

func (t PtrType) typeString() string  { return fmt.Sprintf("ptr<%s>", t.Elem.typeString()) }
func (t PtrType) ValueType() Type     { return t.Elem }

// OutType marks a by-reference parameter written by the callee but never
// read (HLSL `out`).
type OutType struct {
	Elem Type
}

func (t OutType) typeString() string { return fmt.Sprintf("out<%s>", t.Elem.typeString()) }
func (t OutType) ValueType() Type    { return t.Elem }

// InOutType marks a by-reference parameter both read and written by the
// callee (HLSL `inout`).
type InOutType struct {
	Elem Type
}

func (t InOutType) typeString() string { return fmt.Sprintf("inout<%s>", t.Elem.typeString()) }
func (t InOutType) ValueType() Type    { return t.Elem }

// WrapPtrLike returns a pointer-like type over elem using the same wrapper
// kind as orig (Ptr, Out, or InOut). Used when a field or element address is
// computed from a base whose wrapper kind must be preserved, e.g. taking the
// address of a field of an `inout` parameter still yields an `inout`-shaped
// address and not a plain pointer.
func WrapPtrLike(orig Type, elem Type) Type {
	switch orig.(type) {
	case OutType:
		return OutType{Elem: elem}
	case InOutType:
		return InOutType{Elem: elem}
	default:
		return PtrType{Elem: elem}
	}
}

// FuncType is the signature of a function.
type FuncType struct {
	Params []Type
	Result Type
}

func (t FuncType) typeString() string { return "func" }

// TypesEqual reports whether a and b describe the same type. Struct and
// array identity is structural (field-for-field), matching the original
// IR's isTypeEqual.
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case BasicType:
		bv, ok := b.(BasicType)
		return ok && av.Kind == bv.Kind
	case VectorType:
		bv, ok := b.(VectorType)
		return ok && av.Kind() == bv.Kind() && av.Size == bv.Size
	case MatrixType:
		bv, ok := b.(MatrixType)
		return ok && av.Scalar == bv.Scalar && av.Rows == bv.Rows && av.Columns == bv.Columns
	case ArrayType:
		bv, ok := b.(ArrayType)
		return ok && av.Count == bv.Count && TypesEqual(av.Elem, bv.Elem)
	case StructType:
		bv, ok := b.(StructType)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if av.Fields[i].Key != bv.Fields[i].Key || !TypesEqual(av.Fields[i].Type, bv.Fields[i].Type) {
				return false
			}
		}
		return true
	case StreamOutputType:
		bv, ok := b.(StreamOutputType)
		return ok && TypesEqual(av.Elem, bv.Elem)
	case PtrType:
		bv, ok := b.(PtrType)
		return ok && TypesEqual(av.Elem, bv.Elem)
	case OutType:
		bv, ok := b.(OutType)
		return ok && TypesEqual(av.Elem, bv.Elem)
	case InOutType:
		bv, ok := b.(InOutType)
		return ok && TypesEqual(av.Elem, bv.Elem)
	case VoidType:
		_, ok := b.(VoidType)
		return ok
	default:
		return false
	}
}

// Kind is a convenience accessor so VectorType can be compared without
// repeating the struct literal shape.
func (t VectorType) Kind() ScalarKind { return t.Scalar }
