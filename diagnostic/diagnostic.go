package diagnostic

import "fmt"

// Severity is the severity level of a Diagnostic.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Code is a stable, greppable diagnostic identifier, e.g.
// "glsl-legalize/unknown-system-value".
type Code string

// Known codes raised by the glsllegalize package.
const (
	CodeUnknownSystemValue Code = "glsl-legalize/unknown-system-value"
)

// Loc names where inside an entry point a diagnostic occurred: the
// function, and a human-readable description of the parameter, field, or
// return value within it.
type Loc struct {
	Function string
	Detail   string
}

func (l Loc) String() string {
	if l.Detail == "" {
		return l.Function
	}
	return l.Function + ": " + l.Detail
}

// Diagnostic is a single reported message.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Loc      Loc
}

// Error satisfies the error interface so a Diagnostic can be returned or
// wrapped directly where that is convenient.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Loc, d.Severity, d.Message)
}

// Sink accumulates diagnostics raised while legalizing an entry point.
type Sink struct {
	diagnostics []Diagnostic
	hasErrors   bool
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends d to the sink.
func (s *Sink) Add(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
	if d.Severity == Error {
		s.hasErrors = true
	}
}

// Error records an error-severity diagnostic at loc with the given code.
func (s *Sink) Error(loc Loc, code Code, format string, args ...any) {
	s.Add(Diagnostic{Severity: Error, Code: code, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// Warning records a warning-severity diagnostic at loc with the given code.
func (s *Sink) Warning(loc Loc, code Code, format string, args ...any) {
	s.Add(Diagnostic{Severity: Warning, Code: code, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// Note records a note-severity diagnostic at loc with the given code.
func (s *Sink) Note(loc Loc, code Code, format string, args ...any) {
	s.Add(Diagnostic{Severity: Note, Code: code, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	return s.hasErrors
}

// Diagnostics returns every diagnostic recorded so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Errors returns only the error-severity diagnostics.
func (s *Sink) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, d := range s.diagnostics {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	return errs
}
