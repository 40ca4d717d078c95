package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/lexer"
	"github.com/RaphaeleL/ris-sub000/internal/stdinclude"
)

// printDiagnostics writes every diagnostic in sink to stderr, honoring the
// global --format flag: "gcc" renders GCC-style "file:line:col: severity:
// message" lines, anything else renders the default "[component] message
// at line:col" form.
func printDiagnostics(sink *diag.Sink) {
	if diagFormat == "gcc" {
		fmt.Fprint(os.Stderr, sink.FormatGCC(true))
		return
	}
	fmt.Fprint(os.Stderr, sink.FormatForDisplay(true))
}

// systemIncludeProvider resolves `#include <name>` against --system-include-dir
// first (name.ris under that directory), falling back to the built-in
// <std> bundle so the flag only ever adds search locations, never removes
// the standard one.
func systemIncludeProvider() lexer.SystemIncludeProvider {
	return func(name string) (string, bool) {
		if systemIncludeDir != "" {
			path := filepath.Join(systemIncludeDir, name+".ris")
			if data, err := os.ReadFile(path); err == nil {
				return string(data), true
			}
		}
		return stdinclude.Provider(name)
	}
}
