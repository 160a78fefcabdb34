package extension

import (
	"reflect"
	"testing"
)

func TestTrackerRequireVersionMonotonic(t *testing.T) {
	tr := NewTracker()
	tr.RequireVersion(GLSL_430)
	tr.RequireVersion(GLSL_150)
	if got := tr.RequiredVersion(); got != GLSL_430 {
		t.Fatalf("RequiredVersion() = %v, want %v (must not regress)", got, GLSL_430)
	}
	tr.RequireVersion(GLSL_450)
	if got := tr.RequiredVersion(); got != GLSL_450 {
		t.Fatalf("RequiredVersion() = %v, want %v", got, GLSL_450)
	}
}

func TestTrackerExtensionsAreSortedAndDeduplicated(t *testing.T) {
	tr := NewTracker()
	tr.RequireExtension("GL_ARB_shader_viewport_layer_array")
	tr.RequireExtension("GL_NVX_multiview_per_view_attributes")
	tr.RequireExtension("ARB_cull_distance")
	tr.RequireExtension("ARB_cull_distance")

	got := tr.Extensions()
	want := []string{"ARB_cull_distance", "GL_ARB_shader_viewport_layer_array", "GL_NVX_multiview_per_view_attributes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
}

func TestRenderTargetArrayIndexStageDependentVersion(t *testing.T) {
	// Mirrors the three-way stage switch in the system-value resolver:
	// geometry gets GLSL 150, fragment GLSL 430, everything else GLSL 450
	// plus an extension.
	cases := []struct {
		stage string
		want  ProfileVersion
	}{
		{"geometry", GLSL_150},
		{"fragment", GLSL_430},
		{"vertex", GLSL_450},
	}
	for _, c := range cases {
		tr := NewTracker()
		switch c.stage {
		case "geometry":
			tr.RequireVersion(GLSL_150)
		case "fragment":
			tr.RequireVersion(GLSL_430)
		default:
			tr.RequireVersion(GLSL_450)
			tr.RequireExtension("GL_ARB_shader_viewport_layer_array")
		}
		if got := tr.RequiredVersion(); got != c.want {
			t.Errorf("stage %s: RequiredVersion() = %v, want %v", c.stage, got, c.want)
		}
	}
}
