package ast

import (
	"strings"

	"github.com/RaphaeleL/ris-sub000/internal/token"
)

// LiteralKind distinguishes the five literal expression forms.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	CharLiteral
	StringLiteral
	BoolLiteral
)

// Literal is a literal value as written in source: an int/float/char/string
// token's raw text, or the spelling "true"/"false" for a bool literal.
type Literal struct {
	exprBase
	Kind LiteralKind
	Text string
}

func (l *Literal) exprNode() {}
func (l *Literal) String() string {
	if l.Kind == StringLiteral {
		return "\"" + l.Text + "\""
	}
	if l.Kind == CharLiteral {
		return "'" + l.Text + "'"
	}
	return l.Text
}

// Identifier is a bare name reference, resolved by the analyzer to a
// variable symbol; referencing a function by name outside a call is
// illegal.
type Identifier struct {
	exprBase
	Name string
}

func (i *Identifier) exprNode()     {}
func (i *Identifier) String() string { return i.Name }

// Binary is a two-operand operator expression: arithmetic, comparison,
// equality, logical, or assignment.
type Binary struct {
	exprBase
	Op  token.Kind
	Lhs Expr
	Rhs Expr
}

func (b *Binary) exprNode() {}
func (b *Binary) String() string {
	return "(" + b.Lhs.String() + " " + b.Op.String() + " " + b.Rhs.String() + ")"
}

// Unary is a prefix operator applied to a single operand: `!` or unary `-`.
// Prefix `++` is represented by the dedicated PreIncrement node instead, to
// keep its l-value requirement distinct from `!`/unary `-`.
type Unary struct {
	exprBase
	Op      token.Kind
	Operand Expr
}

func (u *Unary) exprNode() {}
func (u *Unary) String() string { return "(" + u.Op.String() + u.Operand.String() + ")" }

// PreIncrement is `++x`. Its operand must be an l-value of arithmetic type.
type PreIncrement struct {
	exprBase
	Operand Expr
}

func (p *PreIncrement) exprNode()     {}
func (p *PreIncrement) String() string { return "(++" + p.Operand.String() + ")" }

// PostIncrement is `x++`.
type PostIncrement struct {
	exprBase
	Operand Expr
}

func (p *PostIncrement) exprNode()     {}
func (p *PostIncrement) String() string { return "(" + p.Operand.String() + "++)" }

// Call is a named-function invocation, `name(args...)`. Calls to
// user-declared functions and to the runtime-provided catalog are
// represented identically; the analyzer recognizes the polymorphic
// print/println pair by callee name and checks their arity/types loosely.
type Call struct {
	exprBase
	CalleeName string
	Args       []Expr
}

func (c *Call) exprNode() {}
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.CalleeName + "(" + strings.Join(args, ", ") + ")"
}

// Index is `target[index]`, requiring target: list<T> and index: int or
// char.
type Index struct {
	exprBase
	Target Expr
	Idx    Expr
}

func (ix *Index) exprNode() {}
func (ix *Index) String() string {
	return ix.Target.String() + "[" + ix.Idx.String() + "]"
}

// MethodName is the closed set of list methods a MethodCall may invoke.
type MethodName string

const (
	MethodPush MethodName = "push"
	MethodPop  MethodName = "pop"
	MethodSize MethodName = "size"
	MethodGet  MethodName = "get"
)

// MethodCall is `receiver.method(args...)` where receiver: list<T> and
// method is one of push/pop/size/get. `get` is kept distinct from Index
// only because it is spelled differently in source; the analyzer treats
// the two as equivalent.
type MethodCall struct {
	exprBase
	Receiver Expr
	Method   MethodName
	Args     []Expr
}

func (m *MethodCall) exprNode() {}
func (m *MethodCall) String() string {
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = a.String()
	}
	return m.Receiver.String() + "." + string(m.Method) + "(" + strings.Join(args, ", ") + ")"
}

// ListLiteral is `[e1, ..., en]` or `[]`; the empty case is given its
// element type contextually by the analyzer.
type ListLiteral struct {
	exprBase
	Elements []Expr
}

func (l *ListLiteral) exprNode() {}
func (l *ListLiteral) String() string {
	elems := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// FieldAccess is `object.field_name`, reserved for a future struct
// feature; the parser produces it but the analyzer always rejects it
// (there are no struct types in this language).
type FieldAccess struct {
	exprBase
	Object    Expr
	FieldName string
}

func (f *FieldAccess) exprNode() {}
func (f *FieldAccess) String() string {
	return f.Object.String() + "." + f.FieldName
}
