package ir

import "github.com/gogpu/glslentry/layout"

// Op identifies the operation an instruction performs.
type Op uint8

const (
	OpParam Op = iota
	OpGlobalParam
	OpVar // local variable (alloca); Type is always a PtrType
	OpLoad
	OpStore
	OpFieldExtract
	OpFieldAddress
	OpElementExtract
	OpElementAddress
	OpConstructor // emitConstructorInst: aggregate-or-conversion constructor call
	OpMakeArray
	OpUndefined
	OpIntValue
	OpReturnVal
	OpReturnVoid
	OpCall
	OpFuncRef
	OpSpecialize
	OpGeneric
)

// Inst is a single IR instruction, a function parameter, or a module-level
// global parameter — all three share the same node shape so that a
// legalization pass can replace uses and detach any of them uniformly.
type Inst struct {
	Op       Op
	Type     Type
	Operands []*Inst

	// FieldKey is set for OpFieldExtract / OpFieldAddress.
	FieldKey *StructKey

	// IntValue is the constant payload of an OpIntValue.
	IntValue int64

	// Callee is set for OpFuncRef (the thing an OpCall's first operand
	// ultimately resolves to after unwrapping OpSpecialize/OpGeneric).
	Callee *Func

	// GenericReturn is the value an OpGeneric wrapper ultimately returns,
	// mirroring findGenericReturnVal in the original pass.
	GenericReturn *Inst

	// Decorations, attached by the builder's decoration-creator methods.
	Layout     *layout.VarLayout
	ImportName string
	OuterArray string

	block *Block
	uses  []*Inst
	dead  bool
}

// DataType returns the instruction's IR type (getDataType in the original).
func (v *Inst) DataType() Type { return v.Type }

// addUse registers user as a consumer of v.
func (v *Inst) addUse(user *Inst) {
	if v == nil {
		return
	}
	v.uses = append(v.uses, user)
}

// removeUse drops one occurrence of user from v's use list.
func (v *Inst) removeUse(user *Inst) {
	for i, u := range v.uses {
		if u == user {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
}

// HasUses reports whether any instruction still operates on v.
func (v *Inst) HasUses() bool { return len(v.uses) > 0 }

// ReplaceUsesWith rewrites every operand slot across the module that
// currently points at v so that it points at repl instead. v's own use
// list is cleared; repl accumulates the transferred uses.
func (v *Inst) ReplaceUsesWith(repl *Inst) {
	users := v.uses
	v.uses = nil
	for _, user := range users {
		for i, op := range user.Operands {
			if op == v {
				user.Operands[i] = repl
				repl.addUse(user)
			}
		}
	}
}

// RemoveAndDeallocate detaches v from its parent block. v must have no
// remaining uses.
func (v *Inst) RemoveAndDeallocate() {
	if v.dead {
		return
	}
	for _, op := range v.Operands {
		op.removeUse(v)
	}
	if v.block != nil {
		v.block.removeInst(v)
	}
	v.dead = true
}

// Block returns the block this instruction lives in, or nil for a
// parameter or global parameter.
func (v *Inst) Block() *Block { return v.block }
