// Package layout describes the resource-binding metadata that an earlier
// compiler stage attaches to entry-point parameters, struct fields, and
// array elements: binding indices, semantic names, and a type-layout tree
// that mirrors the shape of the IR type it describes.
//
// This package is an "external collaborator" of the legalization pass in
// the sense of spec.md §6: the pass reads binding indices out of it and
// builds fresh VarLayout/TypeLayout values when it materializes a global
// varying, but this package has no opinion about GLSL, HLSL, or any other
// target language.
package layout
