package layout

import "testing"

func TestResourceInfoAddFind(t *testing.T) {
	bt := NewBasicTypeLayout("std430")

	if got := bt.FindResourceInfo(VaryingOutput); got != nil {
		t.Fatalf("FindResourceInfo on empty layout = %v, want nil", got)
	}

	info := bt.AddResourceInfo(VaryingOutput)
	info.Index = 3
	info.Count = 1

	again := bt.AddResourceInfo(VaryingOutput)
	if again != info {
		t.Fatalf("AddResourceInfo did not return the existing entry")
	}
	if got := bt.FindResourceInfo(VaryingOutput); got.Index != 3 {
		t.Fatalf("Index = %d, want 3", got.Index)
	}
}

func TestVarLayoutClonePreservesMetadataNotResources(t *testing.T) {
	src := &VarLayout{
		SemanticName:             "COLOR",
		SemanticIndex:            2,
		SystemValueSemantic:      "SV_Position",
		SystemValueSemanticIndex: 0,
		Stage:                    StageFragment,
		Flags:                    1,
	}
	src.AddResourceInfo(VaryingInput).Index = 5

	clone := src.Clone(NewBasicTypeLayout("std140"))

	if clone.SemanticName != src.SemanticName || clone.Stage != src.Stage {
		t.Fatalf("Clone lost descriptive metadata: %+v", clone)
	}
	if clone.FindResourceInfo(VaryingInput) != nil {
		t.Fatalf("Clone must start with no resource infos, got %v", clone.FindResourceInfo(VaryingInput))
	}
	if clone.TypeLayout == nil {
		t.Fatalf("Clone dropped the supplied TypeLayout")
	}
}

func TestStageIsRayTracing(t *testing.T) {
	rtStages := []Stage{StageAnyHit, StageCallable, StageClosestHit, StageIntersection, StageMiss, StageRayGeneration}
	for _, s := range rtStages {
		if !s.IsRayTracing() {
			t.Errorf("Stage(%d).IsRayTracing() = false, want true", s)
		}
	}

	rasterStages := []Stage{StageVertex, StageFragment, StageGeometry, StageCompute, StageHull, StageDomain}
	for _, s := range rasterStages {
		if s.IsRayTracing() {
			t.Errorf("Stage(%d).IsRayTracing() = true, want false", s)
		}
	}
}

func TestStructTypeLayoutFieldOrder(t *testing.T) {
	st := &StructTypeLayout{
		Fields: []*VarLayout{
			{SemanticName: "POSITION", TypeLayout: NewBasicTypeLayout("")},
			{SemanticName: "NORMAL", TypeLayout: NewBasicTypeLayout("")},
		},
	}
	if len(st.Fields) != 2 || st.Fields[0].SemanticName != "POSITION" {
		t.Fatalf("unexpected field layout order: %+v", st.Fields)
	}
}
