package semantic

import (
	"fmt"

	"github.com/RaphaeleL/ris-sub000/internal/ast"
	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/token"
	"github.com/RaphaeleL/ris-sub000/internal/types"
)

// Analyzer walks a Program, populates the symbol table, checks every
// construct, and annotates each expression node with the type it computes.
// It never stops on the first error: every check that fails records a
// diagnostic and analysis of sibling constructs proceeds.
type Analyzer struct {
	symbols *SymbolTable
	sink    *diag.Sink

	currentReturn types.Type // declared return type of the function body being analyzed
	loopDepth     int        // >0 inside a while/for body
	switchDepth   int        // >0 inside a switch body
}

// NewAnalyzer creates an Analyzer whose root scope is already seeded with
// the runtime function catalog, before analysis of user declarations
// begins.
func NewAnalyzer(sink *diag.Sink) *Analyzer {
	a := &Analyzer{symbols: NewSymbolTable(), sink: sink}
	seedRuntime(a.symbols)
	return a
}

// Symbols exposes the symbol table built during Analyze, part of the
// (Program, SymbolTable) pair the core hands to its driver.
func (a *Analyzer) Symbols() *SymbolTable { return a.symbols }

// Analyze runs the two-stage pass over prog and returns the populated
// symbol table. Callers check sink.HasErrors() to decide whether to
// proceed to a backend.
func Analyze(prog *ast.Program, sink *diag.Sink) *SymbolTable {
	a := NewAnalyzer(sink)
	a.analyzeProgram(prog)
	return a.symbols
}

func (a *Analyzer) analyzeProgram(prog *ast.Program) {
	// Stage 1: global variable declarations, in source order.
	for _, g := range prog.Globals {
		a.analyzeGlobalVarDecl(g)
	}

	// Stage 2a: insert every function's signature first, so forward calls
	// between user functions resolve regardless of declaration order.
	declared := make([]types.FunctionType, len(prog.Functions))
	for i, fn := range prog.Functions {
		ret, ok := a.resolveType(fn.ReturnType)
		if !ok {
			a.errf(fn.Position, "unknown return type %q for function %q", fn.ReturnType.String(), fn.Name)
		}
		params := make([]types.Type, len(fn.Params))
		for j, p := range fn.Params {
			pt, ok := a.resolveType(p.Type)
			if !ok {
				a.errf(p.Type.Position, "unknown parameter type %q in function %q", p.Type.String(), fn.Name)
				pt = types.Int
			}
			params[j] = pt
		}
		fnType := types.FunctionType{Return: ret, Params: params}
		declared[i] = fnType
		if !a.symbols.InsertLocal(fn.Name, fnType) {
			a.errf(fn.Position, "function %q is already declared", fn.Name)
		}
	}

	// Stage 2b: analyze each body, in source order.
	for i, fn := range prog.Functions {
		a.analyzeFunctionBody(fn, declared[i])
	}
}

func (a *Analyzer) analyzeGlobalVarDecl(v *ast.VarDecl) {
	a.analyzeVarDecl(v)
}

func (a *Analyzer) analyzeFunctionBody(fn *ast.FuncDecl, sig types.FunctionType) {
	a.symbols.Enter()
	defer a.symbols.Exit()

	for i, p := range fn.Params {
		if !a.symbols.InsertLocal(p.Name, sig.Params[i]) {
			a.errf(fn.Position, "duplicate parameter %q in function %q", p.Name, fn.Name)
		}
	}

	prevReturn := a.currentReturn
	a.currentReturn = sig.Return
	a.analyzeBlock(fn.Body)
	a.currentReturn = prevReturn
}

// resolveType resolves the syntactic TypeExpr te to a semantic types.Type,
// returning ok == false for an unknown primitive name; callers report the
// error.
func (a *Analyzer) resolveType(te *ast.TypeExpr) (types.Type, bool) {
	if te == nil {
		return types.VoidTy, false
	}
	if te.Name == "list" {
		elem, ok := a.resolveType(te.Elem)
		if !ok {
			return types.NewList(elem), false
		}
		return types.NewList(elem), true
	}
	t, ok := types.FromName(te.Name)
	if !ok {
		return types.Int, false
	}
	return t, true
}

func (a *Analyzer) errf(pos token.Position, format string, args ...interface{}) {
	a.sink.Report(diag.Error, diag.Semantic, pos, fmt.Sprintf(format, args...))
}
