package diag

import (
	"testing"

	"github.com/RaphaeleL/ris-sub000/internal/token"
)

func pos(line, col int) token.Position {
	return token.Position{Line: line, Column: col}
}

func TestReportAndAll(t *testing.T) {
	sink := NewSink("main.ris")
	sink.Report(Error, Lexer, pos(1, 1), "unexpected character")
	sink.Report(Warning, Semantic, pos(2, 5), "unused variable")

	all := sink.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d diagnostics, want 2", len(all))
	}
	if all[0].Severity != Error || all[0].Component != Lexer {
		t.Errorf("first diagnostic = %+v, want Error/Lexer", all[0])
	}
	if all[0].File != "main.ris" {
		t.Errorf("diagnostic File = %q, want %q", all[0].File, "main.ris")
	}
}

func TestErrorsAndWarningsFilter(t *testing.T) {
	sink := NewSink("main.ris")
	sink.Report(Error, Parser, pos(1, 1), "expected ';'")
	sink.Report(Warning, Semantic, pos(2, 1), "unused variable x")
	sink.Report(Error, Semantic, pos(3, 1), "type mismatch")
	sink.Report(Info, Semantic, pos(4, 1), "inferred type int")

	if got := len(sink.Errors()); got != 2 {
		t.Errorf("Errors() returned %d, want 2", got)
	}
	if got := len(sink.Warnings()); got != 1 {
		t.Errorf("Warnings() returned %d, want 1", got)
	}
}

func TestHasErrors(t *testing.T) {
	sink := NewSink("main.ris")
	if sink.HasErrors() {
		t.Error("empty sink should not have errors")
	}
	sink.Report(Warning, Lexer, pos(1, 1), "just a warning")
	if sink.HasErrors() {
		t.Error("sink with only a warning should not have errors")
	}
	sink.Report(Error, Lexer, pos(1, 1), "a real error")
	if !sink.HasErrors() {
		t.Error("sink with an Error diagnostic should have errors")
	}
}

func TestClear(t *testing.T) {
	sink := NewSink("main.ris")
	sink.Report(Error, Lexer, pos(1, 1), "boom")
	sink.Clear()
	if len(sink.All()) != 0 {
		t.Error("Clear should empty the diagnostic list")
	}
	if sink.HasErrors() {
		t.Error("HasErrors should be false after Clear")
	}
}

func TestFormatForDisplay(t *testing.T) {
	sink := NewSink("main.ris")
	sink.Report(Error, Lexer, pos(3, 7), "unexpected character '@'")
	got := sink.FormatForDisplay(false)
	want := "[lexer] unexpected character '@' at 3:7\n"
	if got != want {
		t.Errorf("FormatForDisplay() = %q, want %q", got, want)
	}
}

func TestFormatGCC(t *testing.T) {
	sink := NewSink("main.ris")
	sink.Report(Error, Semantic, pos(10, 2), "undeclared identifier 'y'")
	got := sink.FormatGCC(false)
	want := "main.ris:10:2: error: undeclared identifier 'y'\n"
	if got != want {
		t.Errorf("FormatGCC() = %q, want %q", got, want)
	}
}

func TestFormatGCCFallsBackToPlaceholderFile(t *testing.T) {
	sink := &Sink{}
	sink.Report(Error, Lexer, pos(1, 1), "no primary file set")
	got := sink.FormatGCC(false)
	want := "<source>:1:1: error: no primary file set\n"
	if got != want {
		t.Errorf("FormatGCC() = %q, want %q", got, want)
	}
}

func TestStableSortOrdersByFileThenLineThenColumn(t *testing.T) {
	sink := NewSink("main.ris")
	// Reported out of order to verify the sort, not just echo insertion order.
	sink.Report(Error, Semantic, pos(5, 1), "third")
	sink.Report(Error, Lexer, pos(1, 9), "second")
	sink.Report(Error, Lexer, pos(1, 1), "first")

	ds := sink.orderedDiagnostics(true)
	if len(ds) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(ds))
	}
	wantOrder := []string{"first", "second", "third"}
	for i, msg := range wantOrder {
		if ds[i].Message != msg {
			t.Errorf("position %d: message = %q, want %q", i, ds[i].Message, msg)
		}
	}
}

func TestStableSortPreservesInsertionOrderWithoutSort(t *testing.T) {
	sink := NewSink("main.ris")
	sink.Report(Error, Semantic, pos(5, 1), "third")
	sink.Report(Error, Lexer, pos(1, 9), "second")
	sink.Report(Error, Lexer, pos(1, 1), "first")

	ds := sink.orderedDiagnostics(false)
	wantOrder := []string{"third", "second", "first"}
	for i, msg := range wantOrder {
		if ds[i].Message != msg {
			t.Errorf("position %d: message = %q, want %q", i, ds[i].Message, msg)
		}
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{Error, "error"},
		{Warning, "warning"},
		{Info, "info"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
