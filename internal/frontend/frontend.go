// Package frontend wires the lexer, parser, and semantic analyzer together
// behind the one entry point the core exposes to its driver.
package frontend

import (
	"github.com/RaphaeleL/ris-sub000/internal/ast"
	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/lexer"
	"github.com/RaphaeleL/ris-sub000/internal/parser"
	"github.com/RaphaeleL/ris-sub000/internal/semantic"
)

// Result is the (Program, SymbolTable) pair a successful compile returns.
type Result struct {
	Program *ast.Program
	Symbols *semantic.SymbolTable
}

// CompileFrontEnd lexes, parses, and semantically analyzes source, honoring
// includes rooted at baseDir and resolved through systemInclude for
// `#include <name>`. It reports every diagnostic it produces to sink and
// returns ok == false if sink.HasErrors() at any phase boundary — lexical
// errors stop the pipeline before parsing, parse errors stop it before
// semantic analysis, so a caller never sees an AST built from a malformed
// token stream or a symbol table built from a malformed AST.
func CompileFrontEnd(source string, baseDir string, systemInclude lexer.SystemIncludeProvider, sink *diag.Sink, extra ...lexer.Option) (Result, bool) {
	opts := []lexer.Option{lexer.WithSink(sink)}
	if systemInclude != nil {
		opts = append(opts, lexer.WithSystemIncludeProvider(systemInclude))
	}
	opts = append(opts, extra...)
	tokens := lexer.New(source, baseDir, opts...).Tokenize()
	if sink.HasErrors() {
		return Result{}, false
	}

	program := parser.New(tokens, sink).Parse()
	if sink.HasErrors() {
		return Result{}, false
	}

	symbols := semantic.Analyze(program, sink)
	if sink.HasErrors() {
		return Result{}, false
	}

	return Result{Program: program, Symbols: symbols}, true
}
