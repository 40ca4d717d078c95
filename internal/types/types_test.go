package types

import "testing"

func TestPrimitiveAssignability(t *testing.T) {
	tests := []struct {
		name   string
		target Type
		source Type
		want   bool
	}{
		{"identical int", Int, Int, true},
		{"float from int widens", Float, Int, true},
		{"int from char widens", Int, Char, true},
		{"int from float narrows, rejected", Int, Float, false},
		{"bool from int rejected", Bool, Int, false},
		{"string from char rejected", Str, Char, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.AssignableFrom(tt.source); got != tt.want {
				t.Errorf("AssignableFrom(%s <- %s) = %v, want %v", tt.target, tt.source, got, tt.want)
			}
		})
	}
}

func TestListAssignability(t *testing.T) {
	intList := NewList(Int)
	floatList := NewList(Float)

	if !intList.AssignableFrom(NewList(Int)) {
		t.Error("list<int> should accept list<int>")
	}
	if intList.AssignableFrom(floatList) {
		t.Error("list<int> should not accept list<float>: element types must match exactly")
	}
	if intList.AssignableFrom(Int) {
		t.Error("list<int> should not accept a bare int")
	}
}

func TestComparability(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"int vs float", Int, Float, true},
		{"char vs int", Char, Int, true},
		{"bool vs bool", Bool, Bool, true},
		{"string vs string", Str, Str, true},
		{"bool vs int", Bool, Int, false},
		{"string vs int", Str, Int, false},
		{"list vs list", NewList(Int), NewList(Int), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ComparableWith(tt.b); got != tt.want {
				t.Errorf("ComparableWith(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestArithmeticness(t *testing.T) {
	for _, ty := range []Type{Int, Float, Char} {
		if !ty.IsArithmetic() {
			t.Errorf("%s should be arithmetic", ty)
		}
	}
	for _, ty := range []Type{Bool, Str, VoidTy, NewList(Int)} {
		if ty.IsArithmetic() {
			t.Errorf("%s should not be arithmetic", ty)
		}
	}
}

func TestFunctionTypeNeverAssignableOrComparable(t *testing.T) {
	fn := FunctionType{Return: Int, Params: []Type{Int, Bool}}
	if fn.AssignableFrom(fn) {
		t.Error("function types must never be assignable")
	}
	if fn.ComparableWith(fn) {
		t.Error("function types must never be comparable")
	}
}

func TestFunctionTypeEquals(t *testing.T) {
	a := FunctionType{Return: Int, Params: []Type{Int, Str}}
	b := FunctionType{Return: Int, Params: []Type{Int, Str}}
	c := FunctionType{Return: Float, Params: []Type{Int, Str}}
	if !a.Equals(b) {
		t.Error("structurally identical function types should be equal")
	}
	if a.Equals(c) {
		t.Error("function types with different return types should not be equal")
	}
}

func TestWidenArithmetic(t *testing.T) {
	if got := WidenArithmetic(Int, Int); !got.Equals(Int) {
		t.Errorf("int+int should widen to int, got %s", got)
	}
	if got := WidenArithmetic(Int, Float); !got.Equals(Float) {
		t.Errorf("int+float should widen to float, got %s", got)
	}
	if got := WidenArithmetic(Char, Char); !got.Equals(Int) {
		t.Errorf("char+char should widen to int, got %s", got)
	}
}

func TestFromName(t *testing.T) {
	if _, ok := FromName("list"); ok {
		t.Error("FromName should not resolve \"list\" — list<T> is built by the parser")
	}
	if ty, ok := FromName("string"); !ok || !ty.Equals(Str) {
		t.Error("FromName(\"string\") should resolve to Str")
	}
}
