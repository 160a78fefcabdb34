package ir

// Module owns every global parameter and function in a shader program.
type Module struct {
	Globals []*Inst // each an OpGlobalParam
	Funcs   []*Func
}
