package semantic

import (
	"testing"

	"github.com/RaphaeleL/ris-sub000/internal/types"
)

func TestInsertLocalRejectsDuplicateInSameScope(t *testing.T) {
	st := NewSymbolTable()
	if !st.InsertLocal("x", types.Int) {
		t.Fatal("first insert should succeed")
	}
	if st.InsertLocal("x", types.Float) {
		t.Fatal("duplicate insert in the same scope should fail")
	}
}

func TestShadowingInNestedScopeIsAllowed(t *testing.T) {
	st := NewSymbolTable()
	st.InsertLocal("x", types.Int)
	st.Enter()
	if !st.InsertLocal("x", types.Float) {
		t.Fatal("shadowing in an inner scope should be allowed")
	}
	sym, _ := st.Lookup("x")
	if !sym.Type.Equals(types.Float) {
		t.Fatalf("inner lookup should see the shadowing binding, got %s", sym.Type.String())
	}
	st.Exit()
	sym, _ = st.Lookup("x")
	if !sym.Type.Equals(types.Int) {
		t.Fatalf("after Exit, lookup should see the outer binding, got %s", sym.Type.String())
	}
}

func TestLookupFindsNearestEnclosingBinding(t *testing.T) {
	st := NewSymbolTable()
	st.InsertLocal("g", types.Bool)
	st.Enter()
	st.Enter()
	sym, ok := st.Lookup("g")
	if !ok || !sym.Type.Equals(types.Bool) {
		t.Fatalf("expected to find g from two scopes deep, got %v, %v", sym, ok)
	}
}

func TestLookupLocalIgnoresEnclosingScopes(t *testing.T) {
	st := NewSymbolTable()
	st.InsertLocal("g", types.Int)
	st.Enter()
	if _, ok := st.LookupLocal("g"); ok {
		t.Fatal("LookupLocal should not see an outer-scope binding")
	}
}

func TestDepthTracksEnterExit(t *testing.T) {
	st := NewSymbolTable()
	if st.Depth() != 1 {
		t.Fatalf("fresh table should have depth 1, got %d", st.Depth())
	}
	st.Enter()
	st.Enter()
	if st.Depth() != 3 {
		t.Fatalf("want depth 3, got %d", st.Depth())
	}
	st.Exit()
	if st.Depth() != 2 {
		t.Fatalf("want depth 2, got %d", st.Depth())
	}
}
