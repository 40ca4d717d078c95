// Package ast defines the tagged-variant abstract syntax tree for ris:
// one closed interface for expressions, one for statements, each with an
// exhaustive set of concrete node types. A type switch on the concrete node
// is simpler here than a visitor, since the node set is small and fixed and
// every consumer (parser, analyzer) already lives in this module. Every
// node owns its children exclusively; there is no shared ownership and no
// parent pointers.
package ast

import (
	"strings"

	"github.com/RaphaeleL/ris-sub000/internal/token"
	"github.com/RaphaeleL/ris-sub000/internal/types"
)

// Node is the root interface every AST node implements.
type Node interface {
	Pos() token.Position
	String() string
}

// Expr is any node that produces a value. The semantic analyzer annotates
// each Expr with the Type it computes via SetType; before analysis,
// ResolvedType() returns nil.
type Expr interface {
	Node
	exprNode()
	ResolvedType() types.Type
	SetType(types.Type)
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// exprBase centralizes the position and type-annotation bookkeeping every
// expression node needs, so each concrete type need only embed it.
type exprBase struct {
	Position token.Position
	typ      types.Type
}

func (b *exprBase) Pos() token.Position      { return b.Position }
func (b *exprBase) ResolvedType() types.Type { return b.typ }
func (b *exprBase) SetType(t types.Type)     { b.typ = t }

// stmtBase centralizes the position field every statement node needs.
type stmtBase struct {
	Position token.Position
}

func (b *stmtBase) Pos() token.Position { return b.Position }

// TypeExpr is the *syntax* of a type annotation as written in source —
// a primitive name, or "list" wrapping an Elem TypeExpr
// (`Type := "int" | ... | "list" "<" Type ">"`). The semantic analyzer
// resolves a TypeExpr to a types.Type; TypeExpr itself carries no
// resolved-type semantics.
type TypeExpr struct {
	Position token.Position
	Name     string // one of int/float/bool/char/string/void/list
	Elem     *TypeExpr // non-nil iff Name == "list"
}

func (t *TypeExpr) Pos() token.Position { return t.Position }

func (t *TypeExpr) String() string {
	if t.Name == "list" {
		return "list<" + t.Elem.String() + ">"
	}
	return t.Name
}

// Param is one (type, name) entry in a function's parameter list.
type Param struct {
	Type *TypeExpr
	Name string
}

// FuncDecl is a top-level function definition.
type FuncDecl struct {
	Position   token.Position
	Name       string
	ReturnType *TypeExpr
	Params     []Param
	Body       *Block
}

func (f *FuncDecl) Pos() token.Position { return f.Position }
func (f *FuncDecl) String() string {
	var sb strings.Builder
	sb.WriteString(f.ReturnType.String())
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.String())
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	sb.WriteString(") ")
	sb.WriteString(f.Body.String())
	return sb.String()
}

// Program is the root AST node: the Globals and Functions of one
// compilation unit after include expansion. It exclusively owns every
// declaration reachable from it.
type Program struct {
	Globals   []*VarDecl
	Functions []*FuncDecl
}

func (p *Program) Pos() token.Position {
	if len(p.Globals) > 0 {
		return p.Globals[0].Pos()
	}
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, g := range p.Globals {
		sb.WriteString(g.String())
		sb.WriteString("\n")
	}
	for _, f := range p.Functions {
		sb.WriteString(f.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
