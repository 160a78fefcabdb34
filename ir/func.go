package ir

import "github.com/gogpu/glslentry/layout"

// Func is a function definition: a parameter list, a result type, and a
// sequence of basic blocks.
type Func struct {
	Name       string
	Params     []*Inst // each an OpParam
	ResultType Type
	Blocks     []*Block
	Module     *Module

	// EntryPointLayout is the layout decoration consumed by
	// LegalizeEntryPointForGLSL (IRLayoutDecoration in the original).
	EntryPointLayout *layout.EntryPointLayout

	// DependsOn records globals the entry point depends on even though
	// nothing in its body references them (ray-tracing payload linkage).
	DependsOn []*Inst

	// TargetIntrinsics maps a backend name ("glsl") to the intrinsic
	// definition text this function was declared as (e.g. "EmitVertex()"),
	// matching findTargetIntrinsicDecoration in the original.
	TargetIntrinsics map[string]string
}

// FirstBlock returns the function's entry block, or nil if it has none.
func (f *Func) FirstBlock() *Block {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// ParamCount returns the number of parameters the function currently has.
func (f *Func) ParamCount() int { return len(f.Params) }

// RemoveParam deletes p from the function's parameter list. p must have no
// remaining uses.
func (f *Func) RemoveParam(p *Inst) {
	for i, q := range f.Params {
		if q == p {
			f.Params = append(f.Params[:i], f.Params[i+1:]...)
			p.dead = true
			return
		}
	}
}

// SetVoidSignature retypes the function as taking no parameters and
// returning void, the final step of entry-point legalization.
func (f *Func) SetVoidSignature() {
	f.Params = nil
	f.ResultType = VoidType{}
}

// TargetIntrinsic returns the intrinsic definition text f was given for the
// named backend, and whether one was set.
func (f *Func) TargetIntrinsic(target string) (string, bool) {
	if f.TargetIntrinsics == nil {
		return "", false
	}
	def, ok := f.TargetIntrinsics[target]
	return def, ok
}

// HasUses reports whether any Call in the module ultimately resolves to f
// (after unwrapping Specialize/Generic wrappers), the precondition checked
// before legalizing an entry point.
func HasUses(module *Module, f *Func) bool {
	for _, other := range module.Funcs {
		for _, b := range other.Blocks {
			for _, inst := range b.Insts {
				if inst.Op != OpCall {
					continue
				}
				if ResolveUltimateCallee(inst) == f {
					return true
				}
			}
		}
	}
	return false
}

// ResolveUltimateCallee unwraps a call instruction's callee operand through
// any chain of Specialize and Generic wrappers, returning the concrete
// function it ultimately invokes (or nil if it cannot be resolved to one).
//
// This is the "callee unwrapping loop" the original pass inlines at its one
// call site; factored out here per spec.md §9's design note that it should
// be a reusable helper.
func ResolveUltimateCallee(call *Inst) *Func {
	if call.Op != OpCall || len(call.Operands) == 0 {
		return nil
	}
	callee := call.Operands[0]
	for {
		switch callee.Op {
		case OpSpecialize:
			if len(callee.Operands) == 0 {
				return nil
			}
			callee = callee.Operands[0]
			continue
		case OpGeneric:
			if callee.GenericReturn == nil {
				return nil
			}
			callee = callee.GenericReturn
			continue
		case OpFuncRef:
			return callee.Callee
		default:
			return nil
		}
	}
}
