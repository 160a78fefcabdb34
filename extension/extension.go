// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package extension

import (
	"fmt"

	"github.com/rickypai/natsort"
)

// ProfileVersion is a minimum required GLSL profile, in the same spirit as
// the teacher's glsl.Version but restricted to the handful of versions the
// system-value resolver can require.
type ProfileVersion struct {
	Major uint8
	Minor uint8
}

// Profile versions referenced by the system-value mapping table.
var (
	GLSL_150 = ProfileVersion{Major: 1, Minor: 50}
	GLSL_430 = ProfileVersion{Major: 4, Minor: 30}
	GLSL_450 = ProfileVersion{Major: 4, Minor: 50}
)

// String returns the version the way a #version directive would spell it.
func (v ProfileVersion) String() string {
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

// number is Major*100+Minor, used to compare versions numerically.
func (v ProfileVersion) number() int {
	return int(v.Major)*100 + int(v.Minor)
}

// LessThan reports whether v is a strictly lower profile than other.
func (v ProfileVersion) LessThan(other ProfileVersion) bool {
	return v.number() < other.number()
}

// Tracker accumulates the extensions and minimum profile version a
// legalized entry point requires. One Tracker is shared across every
// parameter and return value legalized for a given entry point.
type Tracker struct {
	extensions      map[string]struct{}
	requiredVersion ProfileVersion
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{extensions: make(map[string]struct{})}
}

// RequireExtension records that name must be enabled in the generated GLSL.
func (t *Tracker) RequireExtension(name string) {
	t.extensions[name] = struct{}{}
}

// RequireVersion raises the tracker's required profile version to version
// if it is not already at least that high.
func (t *Tracker) RequireVersion(version ProfileVersion) {
	if t.requiredVersion.LessThan(version) {
		t.requiredVersion = version
	}
}

// Extensions returns the required extensions in natural sort order, so
// repeated legalization runs over the same module produce a stable result.
func (t *Tracker) Extensions() []string {
	names := make([]string, 0, len(t.extensions))
	for name := range t.extensions {
		names = append(names, name)
	}
	natsort.Strings(names)
	return names
}

// RequiredVersion returns the minimum profile version recorded so far.
func (t *Tracker) RequiredVersion() ProfileVersion {
	return t.requiredVersion
}
