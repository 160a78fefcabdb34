// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package extension tracks the GLSL extensions and minimum profile version
// a legalized entry point ends up requiring.
//
// It generalizes the teacher's glsl.Version and the UsedExtensions/
// RequiredVersion fields of glsl.TranslationInfo into a standalone
// accumulator: createGLSLGlobalVaryings and the system-value resolver call
// into a Tracker as they materialize varyings, rather than writing directly
// into a fixed result struct.
package extension
