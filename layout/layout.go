package layout

// Stage identifies a shader pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageGeometry
	StageCompute
	StageHull   // HLSL hull / GLSL tessellation control
	StageDomain // HLSL domain / GLSL tessellation evaluation

	// Ray-tracing stages. Every parameter in these stages is lifted
	// verbatim rather than scalarized (spec.md §4.4).
	StageAnyHit
	StageCallable
	StageClosestHit
	StageIntersection
	StageMiss
	StageRayGeneration
)

// IsRayTracing reports whether s is one of the ray-tracing stages.
func (s Stage) IsRayTracing() bool {
	switch s {
	case StageAnyHit, StageCallable, StageClosestHit, StageIntersection, StageMiss, StageRayGeneration:
		return true
	default:
		return false
	}
}

// ResourceKind distinguishes a varying input from a varying output. The
// legalization pass only ever asks the layout package about these two
// kinds; other resource kinds (uniforms, textures, ...) are the concern of
// the out-of-scope resource-layout computation described in spec.md §1.
type ResourceKind uint8

const (
	VaryingInput ResourceKind = iota
	VaryingOutput
)

// ResourceInfo is a single kind/index/count triple.
type ResourceInfo struct {
	Kind  ResourceKind
	Index uint32
	Count uint32
}

// resources is embedded by every TypeLayout variant and by VarLayout to
// give them FindResourceInfo / AddResourceInfo and a shared layout-rule tag.
type resources struct {
	infos map[ResourceKind]*ResourceInfo
	rules string
}

// Rules returns the opaque layout-rule tag (e.g. "std140", "std430")
// inherited from whatever produced this layout. Out of scope for this
// package beyond carrying it through unchanged: the rule-governed offset
// and stride computation is the resource-layout collaborator's job.
func (r *resources) Rules() string { return r.rules }

// SetRules sets the layout-rule tag.
func (r *resources) SetRules(rules string) { r.rules = rules }

// FindResourceInfo returns the ResourceInfo for kind, or nil.
func (r *resources) FindResourceInfo(kind ResourceKind) *ResourceInfo {
	if r.infos == nil {
		return nil
	}
	return r.infos[kind]
}

// AddResourceInfo returns the ResourceInfo for kind, creating it (with
// Index/Count zero) if it does not already exist.
func (r *resources) AddResourceInfo(kind ResourceKind) *ResourceInfo {
	if r.infos == nil {
		r.infos = make(map[ResourceKind]*ResourceInfo)
	}
	info, ok := r.infos[kind]
	if !ok {
		info = &ResourceInfo{Kind: kind}
		r.infos[kind] = info
	}
	return info
}

// TypeLayout mirrors the shape of an ir.Type: a struct type gets a
// StructTypeLayout, an array an ArrayTypeLayout, and so on. Only the
// handful of shapes the legalization pass actually recurses through are
// modeled; anything else is a BasicTypeLayout leaf.
type TypeLayout interface {
	typeLayout()
	FindResourceInfo(kind ResourceKind) *ResourceInfo
	AddResourceInfo(kind ResourceKind) *ResourceInfo
	Rules() string
}

// BasicTypeLayout is the layout of a scalar, vector, or matrix leaf.
type BasicTypeLayout struct {
	resources
}

func (*BasicTypeLayout) typeLayout() {}

// NewBasicTypeLayout returns a fresh leaf layout using the given rule tag.
func NewBasicTypeLayout(rules string) *BasicTypeLayout {
	bt := &BasicTypeLayout{}
	bt.SetRules(rules)
	return bt
}

// ArrayTypeLayout is the layout of a fixed-length array.
type ArrayTypeLayout struct {
	resources
	OriginalElementTypeLayout TypeLayout
	ElementTypeLayout         TypeLayout
	UniformStride             uint32
}

func (*ArrayTypeLayout) typeLayout() {}

// StructTypeLayout is the layout of a struct, one VarLayout per field in
// declaration order (parallel to the struct's ir.StructType.Fields).
type StructTypeLayout struct {
	resources
	Fields []*VarLayout
}

func (*StructTypeLayout) typeLayout() {}

// StreamOutputTypeLayout is the layout of a geometry-shader output stream;
// the stream wrapper itself carries no resource usage, only its element.
type StreamOutputTypeLayout struct {
	resources
	ElementTypeLayout TypeLayout
}

func (*StreamOutputTypeLayout) typeLayout() {}

// VarLayout is the per-variable (or per-field) layout record: semantic
// name/index, an optional system-value semantic string, the owning stage,
// a nested TypeLayout, and a set of resource-kind/index pairs.
type VarLayout struct {
	resources

	SemanticName  string
	SemanticIndex uint32

	// SystemValueSemantic is the raw HLSL-style semantic spelling (e.g.
	// "SV_Position"), or "" if this variable is not a system value.
	SystemValueSemantic      string
	SystemValueSemanticIndex uint32

	Stage Stage
	Flags uint32

	TypeLayout TypeLayout
}

// Clone returns a fresh VarLayout carrying over vl's descriptive metadata
// (semantic name/index, system-value semantic, stage, flags) but with an
// empty resource-info set and the given type layout, matching the
// "fresh layout for the variable" construction in createSimpleGLSLGlobalVarying.
func (vl *VarLayout) Clone(typeLayout TypeLayout) *VarLayout {
	return &VarLayout{
		SemanticName:             vl.SemanticName,
		SemanticIndex:            vl.SemanticIndex,
		SystemValueSemantic:      vl.SystemValueSemantic,
		SystemValueSemanticIndex: vl.SystemValueSemanticIndex,
		Stage:                    vl.Stage,
		Flags:                    vl.Flags,
		TypeLayout:               typeLayout,
	}
}

// EntryPointLayout is the layout attached to an entry-point function: its
// stage and the layout of its (possibly void) result.
type EntryPointLayout struct {
	Stage        Stage
	ResultLayout *VarLayout
}
