// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsllegalize

import "github.com/pkg/errors"

// errorf builds an error for a structural impossibility or an unimplemented
// flavor combination — invariants this package's own callers should never
// be able to violate from a well-formed entry point. Those call sites wrap
// the result in panic, following mewspring-toy/lower's
// panic(errors.Errorf(...)) idiom for a lowering pass's internal
// invariants; these are not meant to be recovered from. The one exception
// is LegalizeEntryPointForGLSL's check that the entry point has no callers,
// which returns the error to its caller instead.
func errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}
