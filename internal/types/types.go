// Package types implements the closed Type variant: primitives,
// list<T>, and function signatures, plus the assignability, comparability,
// and arithmeticness predicates the semantic analyzer checks against.
package types

import "strings"

// Primitive enumerates the six primitive kinds.
type Primitive int

const (
	INT Primitive = iota
	FLOAT
	BOOL
	CHAR
	STRING
	VOID
)

func (p Primitive) String() string {
	switch p {
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case BOOL:
		return "bool"
	case CHAR:
		return "char"
	case STRING:
		return "string"
	case VOID:
		return "void"
	default:
		return "?"
	}
}

// Type is the closed variant Type = Primitive(P) | List(Type) |
// Function(Type, [Type]). Every concrete case below implements it.
type Type interface {
	String() string
	// Equals reports structural equality.
	Equals(other Type) bool
	// AssignableFrom reports whether a value of type other may be stored
	// into a location of this type (this = target, other = source).
	AssignableFrom(other Type) bool
	// ComparableWith reports whether this and other may appear on either
	// side of == / !=. The ordering operators < <= > >= use a narrower rule
	// in the analyzer: two arithmetic operands or two strings.
	ComparableWith(other Type) bool
	// IsArithmetic reports membership in {int, float, char}.
	IsArithmetic() bool
	// IsBoolean reports whether this is exactly bool.
	IsBoolean() bool
	// IsVoid reports whether this is exactly void.
	IsVoid() bool
}

// PrimitiveType is a leaf Type wrapping one of the six Primitive kinds.
type PrimitiveType struct {
	Kind Primitive
}

// Shared singletons for the six primitives: comparison by Equals still
// works correctly even when two call sites use distinct instances, but
// reusing these avoids needless allocation since primitives have no
// parameters.
var (
	Int    Type = PrimitiveType{Kind: INT}
	Float  Type = PrimitiveType{Kind: FLOAT}
	Bool   Type = PrimitiveType{Kind: BOOL}
	Char   Type = PrimitiveType{Kind: CHAR}
	Str    Type = PrimitiveType{Kind: STRING}
	VoidTy Type = PrimitiveType{Kind: VOID}
)

func (t PrimitiveType) String() string { return t.Kind.String() }

func (t PrimitiveType) Equals(other Type) bool {
	o, ok := other.(PrimitiveType)
	return ok && o.Kind == t.Kind
}

// AssignableFrom is ris's assignability relation for primitives:
// identical; or target=float, source=int; or target=int, source=char.
func (t PrimitiveType) AssignableFrom(other Type) bool {
	o, ok := other.(PrimitiveType)
	if !ok {
		return false
	}
	if o.Kind == t.Kind {
		return true
	}
	if t.Kind == FLOAT && o.Kind == INT {
		return true
	}
	if t.Kind == INT && o.Kind == CHAR {
		return true
	}
	return false
}

// ComparableWith holds when both sides are arithmetic, both bool, or both string.
func (t PrimitiveType) ComparableWith(other Type) bool {
	o, ok := other.(PrimitiveType)
	if !ok {
		return false
	}
	if t.IsArithmetic() && o.IsArithmetic() {
		return true
	}
	if t.Kind == BOOL && o.Kind == BOOL {
		return true
	}
	if t.Kind == STRING && o.Kind == STRING {
		return true
	}
	return false
}

func (t PrimitiveType) IsArithmetic() bool {
	return t.Kind == INT || t.Kind == FLOAT || t.Kind == CHAR
}

func (t PrimitiveType) IsBoolean() bool { return t.Kind == BOOL }
func (t PrimitiveType) IsVoid() bool    { return t.Kind == VOID }

// ListType is `list<Element>`. A FixedLength of -1 denotes an unbounded
// list; ris's grammar never produces a bounded one, but the assignability
// rule below accounts for the case where a future extension does.
type ListType struct {
	Element     Type
	FixedLength int
}

// NewList constructs an unbounded list<Element>.
func NewList(element Type) ListType {
	return ListType{Element: element, FixedLength: -1}
}

func (t ListType) String() string { return "list<" + t.Element.String() + ">" }

func (t ListType) Equals(other Type) bool {
	o, ok := other.(ListType)
	return ok && t.Element.Equals(o.Element) && t.FixedLength == o.FixedLength
}

// AssignableFrom holds when target=List(T1), source=List(T2) with
// T1=T2 (and matching lengths if target has a fixed one).
func (t ListType) AssignableFrom(other Type) bool {
	o, ok := other.(ListType)
	if !ok {
		return false
	}
	if !t.Element.Equals(o.Element) {
		return false
	}
	if t.FixedLength >= 0 && t.FixedLength != o.FixedLength {
		return false
	}
	return true
}

func (t ListType) ComparableWith(Type) bool { return false }
func (t ListType) IsArithmetic() bool       { return false }
func (t ListType) IsBoolean() bool          { return false }
func (t ListType) IsVoid() bool             { return false }

// FunctionType is Function(Return, Params). Function types are never
// assignable and never comparable; they only appear as symbol-table
// entries, never as a value an expression can hold.
type FunctionType struct {
	Return Type
	Params []Type
}

func (t FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Return.String())
	sb.WriteString(" (")
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (t FunctionType) Equals(other Type) bool {
	o, ok := other.(FunctionType)
	if !ok || len(t.Params) != len(o.Params) || !t.Return.Equals(o.Return) {
		return false
	}
	for i, p := range t.Params {
		if !p.Equals(o.Params[i]) {
			return false
		}
	}
	return true
}

func (t FunctionType) AssignableFrom(Type) bool  { return false }
func (t FunctionType) ComparableWith(Type) bool  { return false }
func (t FunctionType) IsArithmetic() bool        { return false }
func (t FunctionType) IsBoolean() bool           { return false }
func (t FunctionType) IsVoid() bool              { return false }

// FromName resolves the spelling of a primitive type keyword
// (`int`/`float`/`bool`/`char`/`string`/`void`) to its Type. ok is false
// for any other spelling, including "list" (list<T> is built by the
// parser directly).
func FromName(name string) (Type, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "bool":
		return Bool, true
	case "char":
		return Char, true
	case "string":
		return Str, true
	case "void":
		return VoidTy, true
	default:
		return nil, false
	}
}

// WidenArithmetic is the binary-arithmetic result-type rule: float if
// either operand is float, else int (char promotes to int).
func WidenArithmetic(lhs, rhs Type) Type {
	lp, lok := lhs.(PrimitiveType)
	rp, rok := rhs.(PrimitiveType)
	if lok && lp.Kind == FLOAT {
		return Float
	}
	if rok && rp.Kind == FLOAT {
		return Float
	}
	return Int
}
