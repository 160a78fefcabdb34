package ir

import "github.com/gogpu/glslentry/layout"

// Builder emits instructions at a single insertion point, the way the
// original IR's IRBuilder does: callers move the insertion point around
// (SetInsertInto, SetInsertBefore) and every Emit* call inserts there.
//
// A single Module may have several independent Builders pointed at
// different positions in the same function at once — the entry-point
// rewriter relies on this to emit return-site cleanup without disturbing
// the insertion point used for top-of-function initialization.
type Builder struct {
	Module *Module
	Func   *Func

	block *Block
	idx   int // insert before block.Insts[idx]; idx == len(block.Insts) appends
}

// NewBuilder returns a builder with no insertion point set.
func NewBuilder(module *Module) *Builder {
	return &Builder{Module: module}
}

// SetInsertInto points the builder at the end of block.
func (b *Builder) SetInsertInto(block *Block) {
	b.block = block
	b.idx = len(block.Insts)
}

// SetInsertBefore points the builder immediately before inst, which must
// currently belong to a block.
func (b *Builder) SetInsertBefore(inst *Inst) {
	blk := inst.Block()
	b.block = blk
	b.idx = blk.indexOf(inst)
}

func (b *Builder) insert(inst *Inst) *Inst {
	b.block.insertAt(b.idx, inst)
	b.idx++
	return inst
}

func (b *Builder) addOperand(inst *Inst, ops ...*Inst) {
	inst.Operands = append(inst.Operands, ops...)
	for _, op := range ops {
		op.addUse(inst)
	}
}

// --- Type constructors ------------------------------------------------

func (b *Builder) GetVoidType() Type { return VoidType{} }

func (b *Builder) GetBasicType(kind ScalarKind) Type { return BasicType{Kind: kind} }

func (b *Builder) GetIntType() Type { return BasicType{Kind: ScalarInt} }

// GetIntValue returns a constant integer instruction of the given type.
// It has no block and is not inserted anywhere; it exists purely to carry
// a compile-time-known count (array sizes, swizzle indices).
func (b *Builder) GetIntValue(t Type, v int64) *Inst {
	return &Inst{Op: OpIntValue, Type: t, IntValue: v}
}

func (b *Builder) GetVectorType(scalar Type, size *Inst) Type {
	basic, _ := scalar.(BasicType)
	return VectorType{Scalar: basic.Kind, Size: int(size.IntValue)}
}

func (b *Builder) GetArrayType(elem Type, count *Inst) Type {
	return ArrayType{Elem: elem, Count: int(count.IntValue)}
}

func (b *Builder) GetPtrType(elem Type) Type { return PtrType{Elem: elem} }

func (b *Builder) GetOutType(elem Type) Type { return OutType{Elem: elem} }

func (b *Builder) GetInOutType(elem Type) Type { return InOutType{Elem: elem} }

func (b *Builder) GetFuncType(params []Type, result Type) Type {
	return FuncType{Params: params, Result: result}
}

// --- Instruction emitters -----------------------------------------------

func (b *Builder) EmitVar(elemType Type) *Inst {
	return b.insert(&Inst{Op: OpVar, Type: PtrType{Elem: elemType}})
}

func (b *Builder) EmitLoad(ptr *Inst) *Inst {
	pt, _ := ptr.Type.(PtrTypeBase)
	var elem Type
	if pt != nil {
		elem = pt.ValueType()
	}
	inst := &Inst{Op: OpLoad, Type: elem}
	b.addOperand(inst, ptr)
	return b.insert(inst)
}

func (b *Builder) EmitStore(ptr, val *Inst) *Inst {
	inst := &Inst{Op: OpStore, Type: VoidType{}}
	b.addOperand(inst, ptr, val)
	return b.insert(inst)
}

func (b *Builder) EmitFieldExtract(fieldType Type, base *Inst, key *StructKey) *Inst {
	inst := &Inst{Op: OpFieldExtract, Type: fieldType, FieldKey: key}
	b.addOperand(inst, base)
	return b.insert(inst)
}

func (b *Builder) EmitFieldAddress(ptrType Type, base *Inst, key *StructKey) *Inst {
	inst := &Inst{Op: OpFieldAddress, Type: ptrType, FieldKey: key}
	b.addOperand(inst, base)
	return b.insert(inst)
}

func (b *Builder) EmitElementExtract(elemType Type, base, index *Inst) *Inst {
	inst := &Inst{Op: OpElementExtract, Type: elemType}
	b.addOperand(inst, base, index)
	return b.insert(inst)
}

func (b *Builder) EmitElementAddress(ptrType Type, base, index *Inst) *Inst {
	inst := &Inst{Op: OpElementAddress, Type: ptrType}
	b.addOperand(inst, base, index)
	return b.insert(inst)
}

// EmitConstructorInst emits a single-result constructor/conversion call
// of toType over args (emitConstructorInst in the original).
func (b *Builder) EmitConstructorInst(toType Type, args ...*Inst) *Inst {
	inst := &Inst{Op: OpConstructor, Type: toType}
	b.addOperand(inst, args...)
	return b.insert(inst)
}

func (b *Builder) EmitMakeArray(arrayType Type, elems ...*Inst) *Inst {
	inst := &Inst{Op: OpMakeArray, Type: arrayType}
	b.addOperand(inst, elems...)
	return b.insert(inst)
}

func (b *Builder) EmitUndefined(t Type) *Inst {
	return b.insert(&Inst{Op: OpUndefined, Type: t})
}

// EmitCall emits a call to callee (an OpFuncRef, or a chain of
// OpSpecialize/OpGeneric wrappers around one) with the given arguments.
func (b *Builder) EmitCall(resultType Type, callee *Inst, args ...*Inst) *Inst {
	inst := &Inst{Op: OpCall, Type: resultType}
	b.addOperand(inst, callee)
	b.addOperand(inst, args...)
	return b.insert(inst)
}

func (b *Builder) EmitReturnVal(val *Inst) *Inst {
	inst := &Inst{Op: OpReturnVal, Type: VoidType{}}
	b.addOperand(inst, val)
	return b.insert(inst)
}

func (b *Builder) EmitReturnVoid() *Inst {
	return b.insert(&Inst{Op: OpReturnVoid, Type: VoidType{}})
}

// CreateGlobalParam allocates a fresh global shader parameter of the given
// type and appends it to the module (addGlobalParam in the original).
func (b *Builder) CreateGlobalParam(t Type) *Inst {
	g := &Inst{Op: OpGlobalParam, Type: t}
	b.Module.Globals = append(b.Module.Globals, g)
	return g
}

// MoveGlobalBeforeFunc is a cosmetic no-op placeholder for the original's
// moveValueBefore(globalParam, func): global parameter ordering has no
// semantic effect in this IR (there is no textual emission step here), but
// the call site is preserved so the rewriter's structure mirrors the
// original's.
func MoveGlobalBeforeFunc(*Inst, *Func) {}

// --- Decoration creators -------------------------------------------------

func (b *Builder) AddLayoutDecoration(inst *Inst, vl *layout.VarLayout) {
	inst.Layout = vl
}

func (b *Builder) AddImportDecoration(inst *Inst, name string) {
	inst.ImportName = name
}

func (b *Builder) AddGLSLOuterArrayDecoration(inst *Inst, name string) {
	inst.OuterArray = name
}

func (b *Builder) AddDependsOnDecoration(fn *Func, global *Inst) {
	fn.DependsOn = append(fn.DependsOn, global)
}
