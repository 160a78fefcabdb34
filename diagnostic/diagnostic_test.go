package diagnostic

import "testing"

func TestSinkErrorSetsHasErrors(t *testing.T) {
	sink := NewSink()
	if sink.HasErrors() {
		t.Fatalf("fresh sink reports HasErrors")
	}

	sink.Warning(Loc{Function: "vertMain"}, CodeUnknownSystemValue, "just a warning")
	if sink.HasErrors() {
		t.Fatalf("HasErrors true after a warning only")
	}

	sink.Error(Loc{Function: "vertMain", Detail: `parameter "tint"`}, CodeUnknownSystemValue,
		"unknown system-value semantic %q", "SV_Bogus")
	if !sink.HasErrors() {
		t.Fatalf("HasErrors false after an error was recorded")
	}

	if got := len(sink.Diagnostics()); got != 2 {
		t.Fatalf("Diagnostics() len = %d, want 2", got)
	}
	if got := len(sink.Errors()); got != 1 {
		t.Fatalf("Errors() len = %d, want 1", got)
	}
}

func TestDiagnosticErrorString(t *testing.T) {
	d := &Diagnostic{
		Severity: Error,
		Code:     CodeUnknownSystemValue,
		Message:  `unknown system-value semantic "SV_Bogus"`,
		Loc:      Loc{Function: "vertMain", Detail: `parameter "tint"`},
	}
	want := `vertMain: parameter "tint": error: unknown system-value semantic "SV_Bogus"`
	if got := d.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestLocStringWithoutDetail(t *testing.T) {
	l := Loc{Function: "fragMain"}
	if got := l.String(); got != "fragMain" {
		t.Fatalf("String() = %q, want %q", got, "fragMain")
	}
}
