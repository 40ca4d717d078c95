package stdinclude

import (
	"testing"

	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/lexer"
)

func TestProviderResolvesStd(t *testing.T) {
	src, ok := Provider("std")
	if !ok || src == "" {
		t.Fatal("expected Provider(\"std\") to resolve to non-empty source")
	}
}

func TestProviderRejectsUnknownName(t *testing.T) {
	if _, ok := Provider("posix"); ok {
		t.Fatal("expected an unknown system-include name to be rejected")
	}
}

func TestIncludeStdProducesNoTokensAndNoErrors(t *testing.T) {
	sink := diag.NewSink("test.ris")
	toks := lexer.New(`#include <std>
int main() { return 0; }
`, ".", lexer.WithSink(sink), lexer.WithSystemIncludeProvider(Provider)).Tokenize()

	if sink.HasErrors() {
		t.Fatalf("unexpected lexer errors: %v", sink.Errors())
	}
	// The include expands to comments only: the token stream should read
	// exactly as if the #include line were absent.
	want := lexer.New(`int main() { return 0; }
`, ".", lexer.WithSink(diag.NewSink("test.ris"))).Tokenize()
	if len(toks) != len(want) {
		t.Fatalf("expected include to contribute zero tokens, got %d vs %d", len(toks), len(want))
	}
}

func TestUnknownSystemIncludeIsReported(t *testing.T) {
	sink := diag.NewSink("test.ris")
	lexer.New(`#include <bogus>
`, ".", lexer.WithSink(sink), lexer.WithSystemIncludeProvider(Provider)).Tokenize()
	if !sink.HasErrors() {
		t.Fatal("expected an error for an unresolvable system include")
	}
}
