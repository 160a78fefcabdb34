package glsllegalize

import (
	"github.com/gogpu/glslentry/diagnostic"
	"github.com/gogpu/glslentry/extension"
	"github.com/gogpu/glslentry/ir"
	"github.com/gogpu/glslentry/layout"
)

// fixture bundles the pieces a test needs to build an entry-point function
// and then legalize it: the module, the function, a diagnostic sink, and an
// extension tracker.
type fixture struct {
	Module *ir.Module
	Func   *ir.Func
	Sink   *diagnostic.Sink
	Ext    *extension.Tracker
}

// newFixture builds an entry-point function named "main" in stage, with no
// parameters or body yet; callers add parameters with addParam and the body
// with the Builder returned by newBuilder before invoking
// LegalizeEntryPointForGLSL.
func newFixture(stage layout.Stage, resultType ir.Type, resultLayout *layout.VarLayout) *fixture {
	block := &ir.Block{}
	fn := &ir.Func{
		Name:       "main",
		ResultType: resultType,
		Blocks:     []*ir.Block{block},
		EntryPointLayout: &layout.EntryPointLayout{
			Stage:        stage,
			ResultLayout: resultLayout,
		},
	}
	block.Func = fn

	module := &ir.Module{Funcs: []*ir.Func{fn}}
	return &fixture{
		Module: module,
		Func:   fn,
		Sink:   diagnostic.NewSink(),
		Ext:    extension.NewTracker(),
	}
}

// newBuilder returns a builder positioned at the end of fn's entry block,
// for use when hand-assembling a function body before legalizing it.
func (fx *fixture) newBuilder() *ir.Builder {
	b := ir.NewBuilder(fx.Module)
	b.Func = fx.Func
	b.SetInsertInto(fx.Func.FirstBlock())
	return b
}

// addParam appends a fresh parameter of type t, described by vl, to fn.
func (fx *fixture) addParam(t ir.Type, vl *layout.VarLayout) *ir.Inst {
	p := &ir.Inst{Op: ir.OpParam, Type: t, Layout: vl}
	fx.Func.Params = append(fx.Func.Params, p)
	return p
}

// legalize runs LegalizeEntryPointForGLSL over the fixture's function.
func (fx *fixture) legalize() error {
	return LegalizeEntryPointForGLSL(fx.Module, fx.Func, fx.Sink, fx.Ext)
}

func basicVarLayout(semantic, systemValue string) *layout.VarLayout {
	return &layout.VarLayout{
		SemanticName:        semantic,
		SystemValueSemantic: systemValue,
		TypeLayout:          layout.NewBasicTypeLayout(""),
	}
}

func newContextFixture(stage layout.Stage, fn *ir.Func, b *ir.Builder) *context {
	return &context{
		stage:    stage,
		builder:  b,
		sink:     diagnostic.NewSink(),
		tracker:  extension.NewTracker(),
		funcName: fn.Name,
	}
}

// globalWithImportName finds the single global parameter decorated with the
// given import name, or nil.
func globalWithImportName(module *ir.Module, name string) *ir.Inst {
	for _, g := range module.Globals {
		if g.ImportName == name {
			return g
		}
	}
	return nil
}
