// Package ir defines the intermediate representation consumed by the GLSL
// entry-point legalization pass.
//
// The IR is organized around a Module that owns a flat list of global
// parameters and functions. Functions are built from basic blocks of
// instructions; every instruction is a node in a small use-def graph (each
// instruction tracks both its operands and the consumers of its result), so
// that passes can rewrite a function in place: replace every use of one
// value with another, or detach an instruction from its block entirely.
//
// # Structure
//
//   - Type: the closed set of shader types (scalar, vector,
//     matrix, array, struct, pointer, and the "out"/"inout" wrapper types
//     used to model by-reference parameters).
//   - Inst: a single instruction. Parameters and global shader variables are
//     also represented as instructions (Op values without a parent block),
//     so that a rewrite pass can treat "a value produced by a parameter" and
//     "a value produced by an ordinary instruction" uniformly.
//   - Block / Func / Module: the containing structure.
//   - Builder: an insertion-point-based instruction emitter.
//
// This package has no notion of shader source syntax, semantic analysis, or
// target-language code generation; it exists purely to give a legalization
// pass something concrete to mutate.
package ir
