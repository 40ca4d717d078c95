package frontend

import (
	"testing"

	"github.com/RaphaeleL/ris-sub000/internal/diag"
)

func TestCompileFrontEndSucceedsWithoutSystemIncludeProvider(t *testing.T) {
	sink := diag.NewSink("test.ris")
	_, ok := CompileFrontEnd("void main() { }", ".", nil, sink)
	if !ok {
		t.Fatalf("unexpected failure: %v", sink.Errors())
	}
}

func TestCompileFrontEndReportsMissingSystemIncludeProvider(t *testing.T) {
	sink := diag.NewSink("test.ris")
	_, ok := CompileFrontEnd("#include <std>\nvoid main() { }", ".", nil, sink)
	if ok {
		t.Fatal("expected failure: no system-include provider configured")
	}
}

func TestCompileFrontEndResolvesRelativeFileInclude(t *testing.T) {
	sink := diag.NewSink("test.ris")
	result, ok := CompileFrontEnd(`#include "included.ris"
void main() { int y = helper(1); }
`, "testdata", nil, sink)
	if !ok {
		t.Fatalf("unexpected failure: %v", sink.Errors())
	}
	if len(result.Program.Functions) != 2 {
		t.Fatalf("expected helper + main, got %d functions", len(result.Program.Functions))
	}
}

func TestCompileFrontEndStopsAtFirstFailingPhase(t *testing.T) {
	sink := diag.NewSink("test.ris")
	_, ok := CompileFrontEnd(`void main() { int x = 1`, ".", nil, sink)
	if ok {
		t.Fatal("expected a parse failure (unterminated block)")
	}
}
