package semantic

import (
	"testing"

	"github.com/RaphaeleL/ris-sub000/internal/ast"
	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/lexer"
	"github.com/RaphaeleL/ris-sub000/internal/parser"
	"github.com/RaphaeleL/ris-sub000/internal/types"
)

func analyze(t *testing.T, src string) (*ast.Program, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink("test.ris")
	toks := lexer.New(src, ".", lexer.WithSink(sink)).Tokenize()
	prog := parser.New(toks, sink).Parse()
	Analyze(prog, sink)
	return prog, sink
}

func TestGlobalVarDeclTypeChecks(t *testing.T) {
	_, sink := analyze(t, "int x = 1;")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestGlobalVarDeclRejectsTypeMismatch(t *testing.T) {
	_, sink := analyze(t, "bool x = 1;")
	if !sink.HasErrors() {
		t.Fatal("expected an error assigning int to bool")
	}
}

func TestIntWidensToFloat(t *testing.T) {
	_, sink := analyze(t, "float x = 1;")
	if sink.HasErrors() {
		t.Fatalf("int should widen to float: %v", sink.Errors())
	}
}

func TestRedeclarationInSameScopeIsRejected(t *testing.T) {
	_, sink := analyze(t, "int x; int x;")
	if !sink.HasErrors() {
		t.Fatal("expected a redeclaration error")
	}
}

func TestForwardCallBetweenFunctions(t *testing.T) {
	src := `
	int caller() { return callee(); }
	int callee() { return 1; }
	`
	_, sink := analyze(t, src)
	if sink.HasErrors() {
		t.Fatalf("forward call should resolve: %v", sink.Errors())
	}
}

func TestCallArityMismatch(t *testing.T) {
	src := `
	int add(int a, int b) { return a + b; }
	void main() { add(1); }
	`
	_, sink := analyze(t, src)
	if !sink.HasErrors() {
		t.Fatal("expected an arity mismatch error")
	}
}

func TestReturnTypeMismatch(t *testing.T) {
	_, sink := analyze(t, "bool f() { return 1; }")
	if !sink.HasErrors() {
		t.Fatal("expected a return type mismatch error")
	}
}

func TestBareReturnRequiresVoid(t *testing.T) {
	_, sink := analyze(t, "int f() { return; }")
	if !sink.HasErrors() {
		t.Fatal("bare return in a non-void function should be rejected")
	}
}

func TestBreakOutsideLoopIsRejected(t *testing.T) {
	_, sink := analyze(t, "void f() { break; }")
	if !sink.HasErrors() {
		t.Fatal("break outside a loop/switch should be rejected")
	}
}

func TestBreakInsideSwitchIsAllowed(t *testing.T) {
	src := `void f() { switch (1) { case 1: break; } }`
	_, sink := analyze(t, src)
	if sink.HasErrors() {
		t.Fatalf("break inside a switch should be legal: %v", sink.Errors())
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	_, sink := analyze(t, "void f() { if (1) { } }")
	if !sink.HasErrors() {
		t.Fatal("expected an error: int is not bool")
	}
}

func TestForInitScopeVisibleToConditionAndUpdate(t *testing.T) {
	src := `void f() { for (int i = 0; i < 10; i = i + 1) { } }`
	_, sink := analyze(t, src)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestListPushPopSizeGet(t *testing.T) {
	src := `
	void f() {
		list<int> xs = [1, 2, 3];
		xs.push(4);
		int y = xs.pop();
		int n = xs.size();
		int z = xs.get(0);
	}
	`
	_, sink := analyze(t, src)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestListLiteralWidensIntToFloat(t *testing.T) {
	prog, sink := analyze(t, "list<float> xs = [1, 2.5];")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	lit := prog.Globals[0].Initializer.(*ast.ListLiteral)
	lst, ok := lit.ResolvedType().(types.ListType)
	if !ok || !lst.Element.Equals(types.Float) {
		t.Fatalf("expected list<float>, got %v", lit.ResolvedType())
	}
}

func TestEmptyListLiteralNeedsContextualType(t *testing.T) {
	_, sink := analyze(t, "void f() { g(); } void g() { int x = 0; list<int> xs = []; xs.push(1); }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestStringConcatenationWithPlus(t *testing.T) {
	_, sink := analyze(t, `string s = "a" + "b";`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestPrintAcceptsAnyArityAndPrimitiveOrListTypes(t *testing.T) {
	src := `void f() { print(1); print(1, 2.0, true, "s"); println(); println(1); }`
	_, sink := analyze(t, src)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestPrintRequiresAtLeastOneArgument(t *testing.T) {
	_, sink := analyze(t, "void f() { print(); }")
	if !sink.HasErrors() {
		t.Fatal("expected an error: print() needs at least one argument")
	}
}

func TestRuntimeCatalogIsCallable(t *testing.T) {
	src := `void f() { string s = ris_malloc(4); ris_free(s); int n = ris_string_length(s); }`
	_, sink := analyze(t, src)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestFunctionNameCannotBeUsedAsValue(t *testing.T) {
	src := `int f() { return 1; } void g() { int x = f; }`
	_, sink := analyze(t, src)
	if !sink.HasErrors() {
		t.Fatal("referencing a function name outside a call should be rejected")
	}
}

func TestFieldAccessIsAlwaysRejected(t *testing.T) {
	_, sink := analyze(t, "void f() { a.b; }")
	if !sink.HasErrors() {
		t.Fatal("field access should always be rejected: no struct types exist")
	}
}
