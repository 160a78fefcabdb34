// Package diagnostic collects non-fatal diagnostics (errors, warnings,
// notes) raised while walking an entry point, each tagged with a stable
// code and a location inside the function being processed.
//
// It is deliberately small next to HugoDaniel/miniray's internal/diagnostic
// package, which this is grounded on: there is no source text or byte-offset
// tracking here, because this pass runs on an in-memory IR that was never
// produced from text in the first place. A Loc names the function and the
// parameter or field within it instead of a line/column pair.
package diagnostic
