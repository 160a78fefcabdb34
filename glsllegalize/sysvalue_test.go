package glsllegalize

import (
	"testing"

	"github.com/gogpu/glslentry/extension"
	"github.com/gogpu/glslentry/ir"
	"github.com/gogpu/glslentry/layout"
)

func newSysvalueContext(stage layout.Stage) *context {
	fx := newFixture(stage, ir.VoidType{}, nil)
	return newContextFixture(stage, fx.Func, fx.newBuilder())
}

func TestResolveGLSLSystemValuePosition(t *testing.T) {
	cases := []struct {
		name   string
		stage  layout.Stage
		kind   layout.ResourceKind
		builtin string
		outer  string
	}{
		{"fragment input is gl_FragCoord", layout.StageFragment, layout.VaryingInput, "gl_FragCoord", ""},
		{"geometry input is gl_in[].gl_Position", layout.StageGeometry, layout.VaryingInput, "gl_Position", "gl_in"},
		{"vertex output is gl_Position", layout.StageVertex, layout.VaryingOutput, "gl_Position", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newSysvalueContext(tc.stage)
			vl := basicVarLayout("SV_POSITION", "SV_Position")

			info := resolveGLSLSystemValue(ctx, vl, tc.kind, tc.stage)
			if info == nil {
				t.Fatalf("resolveGLSLSystemValue returned nil")
			}
			if info.Name != tc.builtin {
				t.Errorf("Name = %q, want %q", info.Name, tc.builtin)
			}
			if info.OuterArrayName != tc.outer {
				t.Errorf("OuterArrayName = %q, want %q", info.OuterArrayName, tc.outer)
			}
			if !ir.TypesEqual(info.RequiredType, vec(ir.ScalarFloat, 4)) {
				t.Errorf("RequiredType = %v, want float4", info.RequiredType)
			}
		})
	}
}

func TestResolveGLSLSystemValueTargetIsNotABuiltin(t *testing.T) {
	ctx := newSysvalueContext(layout.StageFragment)
	vl := basicVarLayout("SV_TARGET", "SV_Target")

	info := resolveGLSLSystemValue(ctx, vl, layout.VaryingOutput, layout.StageFragment)
	if info != nil {
		t.Fatalf("resolveGLSLSystemValue(SV_Target) = %+v, want nil", info)
	}
	if ctx.sink.HasErrors() {
		t.Errorf("SV_Target should not raise a diagnostic")
	}
}

func TestResolveGLSLSystemValueUnknownSemanticReportsError(t *testing.T) {
	ctx := newSysvalueContext(layout.StageVertex)
	vl := basicVarLayout("MY_SEMANTIC", "MY_SEMANTIC")

	info := resolveGLSLSystemValue(ctx, vl, layout.VaryingOutput, layout.StageVertex)
	if info != nil {
		t.Fatalf("resolveGLSLSystemValue(unknown) = %+v, want nil", info)
	}
	if !ctx.sink.HasErrors() {
		t.Fatalf("expected an error diagnostic for an unrecognized system-value semantic")
	}
	errs := ctx.sink.Errors()
	if len(errs) != 1 || errs[0].Code != "glsl-legalize/unknown-system-value" {
		t.Errorf("Errors() = %+v, want one glsl-legalize/unknown-system-value diagnostic", errs)
	}
}

func TestResolveGLSLSystemValueCaseInsensitive(t *testing.T) {
	ctx := newSysvalueContext(layout.StageVertex)
	vl := basicVarLayout("sv_instanceid", "sv_InstanceID")

	info := resolveGLSLSystemValue(ctx, vl, layout.VaryingInput, layout.StageVertex)
	if info == nil || info.Name != "gl_InstanceIndex" {
		t.Fatalf("resolveGLSLSystemValue(sv_InstanceID) = %+v, want gl_InstanceIndex", info)
	}
	if !ir.TypesEqual(info.RequiredType, ir.BasicType{Kind: ir.ScalarInt}) {
		t.Errorf("RequiredType = %v, want int", info.RequiredType)
	}
}

func TestResolveGLSLSystemValueRenderTargetArrayIndexIsStageDependent(t *testing.T) {
	cases := []struct {
		stage       layout.Stage
		wantVersion extension.ProfileVersion
		wantExt     []string
	}{
		{layout.StageGeometry, extension.GLSL_150, nil},
		{layout.StageFragment, extension.GLSL_430, nil},
		{layout.StageVertex, extension.GLSL_450, []string{"GL_ARB_shader_viewport_layer_array"}},
	}

	for _, tc := range cases {
		ctx := newSysvalueContext(tc.stage)
		vl := basicVarLayout("SV_RENDERTARGETARRAYINDEX", "SV_RenderTargetArrayIndex")

		info := resolveGLSLSystemValue(ctx, vl, layout.VaryingOutput, tc.stage)
		if info == nil || info.Name != "gl_Layer" {
			t.Fatalf("stage %v: resolveGLSLSystemValue = %+v, want gl_Layer", tc.stage, info)
		}
		if got := ctx.tracker.RequiredVersion(); got != tc.wantVersion {
			t.Errorf("stage %v: RequiredVersion() = %v, want %v", tc.stage, got, tc.wantVersion)
		}
		if got := ctx.tracker.Extensions(); !equalStrings(got, tc.wantExt) {
			t.Errorf("stage %v: Extensions() = %v, want %v", tc.stage, got, tc.wantExt)
		}
	}
}

func TestResolveGLSLSystemValueCullDistanceRequiresExtension(t *testing.T) {
	ctx := newSysvalueContext(layout.StageVertex)
	vl := basicVarLayout("SV_CULLDISTANCE", "SV_CullDistance")

	info := resolveGLSLSystemValue(ctx, vl, layout.VaryingOutput, layout.StageVertex)
	if info == nil || info.Name != "gl_CullDistance" {
		t.Fatalf("resolveGLSLSystemValue(SV_CullDistance) = %+v", info)
	}
	if !equalStrings(ctx.tracker.Extensions(), []string{"ARB_cull_distance"}) {
		t.Errorf("Extensions() = %v, want [ARB_cull_distance]", ctx.tracker.Extensions())
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
