package semantic

import (
	"github.com/RaphaeleL/ris-sub000/internal/ast"
	"github.com/RaphaeleL/ris-sub000/internal/token"
	"github.com/RaphaeleL/ris-sub000/internal/types"
)

// analyzeExpr type-checks e, annotates it via SetType, and returns the
// computed type (nil if a check failed badly enough that no sound type
// exists). expected carries the surrounding context's target type, used
// only for the empty-list-literal case.
func (a *Analyzer) analyzeExpr(e ast.Expr, expected types.Type) types.Type {
	t := a.typeOf(e, expected)
	e.SetType(t)
	return t
}

func (a *Analyzer) typeOf(e ast.Expr, expected types.Type) types.Type {
	switch ex := e.(type) {
	case *ast.Literal:
		return a.typeOfLiteral(ex)
	case *ast.Identifier:
		return a.typeOfIdentifier(ex)
	case *ast.Binary:
		return a.typeOfBinary(ex)
	case *ast.Unary:
		return a.typeOfUnary(ex)
	case *ast.PreIncrement:
		return a.typeOfIncrement(ex.Operand)
	case *ast.PostIncrement:
		return a.typeOfIncrement(ex.Operand)
	case *ast.Call:
		return a.typeOfCall(ex)
	case *ast.Index:
		return a.typeOfIndex(ex)
	case *ast.MethodCall:
		return a.typeOfMethodCall(ex)
	case *ast.ListLiteral:
		return a.typeOfListLiteral(ex, expected)
	case *ast.FieldAccess:
		a.errf(ex.Position, "field access is not supported: this language has no struct types")
		return nil
	default:
		return nil
	}
}

func (a *Analyzer) typeOfLiteral(l *ast.Literal) types.Type {
	switch l.Kind {
	case ast.IntLiteral:
		return types.Int
	case ast.FloatLiteral:
		return types.Float
	case ast.CharLiteral:
		return types.Char
	case ast.StringLiteral:
		return types.Str
	case ast.BoolLiteral:
		return types.Bool
	default:
		return nil
	}
}

// typeOfIdentifier resolves a variable reference. Referencing a function
// name outside a call is illegal — calls are their own node.
func (a *Analyzer) typeOfIdentifier(id *ast.Identifier) types.Type {
	sym, ok := a.symbols.Lookup(id.Name)
	if !ok {
		a.errf(id.Position, "undeclared identifier %q", id.Name)
		return nil
	}
	if _, isFunc := sym.Type.(types.FunctionType); isFunc {
		a.errf(id.Position, "%q is a function and cannot be used as a value", id.Name)
		return nil
	}
	return sym.Type
}

func isLValue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.Index, *ast.FieldAccess:
		return true
	default:
		return false
	}
}

func (a *Analyzer) typeOfBinary(b *ast.Binary) types.Type {
	if b.Op == token.ASSIGN {
		return a.typeOfAssignment(b)
	}

	lhs := a.analyzeExpr(b.Lhs, nil)
	rhs := a.analyzeExpr(b.Rhs, nil)
	if lhs == nil || rhs == nil {
		return nil
	}

	switch {
	case isArithmeticOp(b.Op):
		if isStringConcat(b.Op, lhs, rhs) {
			return types.Str
		}
		if !lhs.IsArithmetic() || !rhs.IsArithmetic() {
			a.errf(b.Position, "operator %s requires arithmetic operands, got %s and %s", b.Op.String(), lhs.String(), rhs.String())
			return nil
		}
		return types.WidenArithmetic(lhs, rhs)
	case isComparisonOp(b.Op):
		bothArithmetic := lhs.IsArithmetic() && rhs.IsArithmetic()
		bothString := lhs.Equals(types.Str) && rhs.Equals(types.Str)
		if !bothArithmetic && !bothString {
			a.errf(b.Position, "operator %s requires two arithmetic operands or two strings, got %s and %s", b.Op.String(), lhs.String(), rhs.String())
		}
		return types.Bool
	case isEqualityOp(b.Op):
		if !lhs.ComparableWith(rhs) {
			a.errf(b.Position, "operator %s: %s and %s are not comparable", b.Op.String(), lhs.String(), rhs.String())
		}
		return types.Bool
	case isLogicalOp(b.Op):
		if !lhs.IsBoolean() || !rhs.IsBoolean() {
			a.errf(b.Position, "operator %s requires bool operands, got %s and %s", b.Op.String(), lhs.String(), rhs.String())
		}
		return types.Bool
	default:
		a.errf(b.Position, "internal: unhandled binary operator %s", b.Op.String())
		return nil
	}
}

func isArithmeticOp(k token.Kind) bool {
	switch k {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return true
	default:
		return false
	}
}

func isComparisonOp(k token.Kind) bool {
	switch k {
	case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ:
		return true
	default:
		return false
	}
}

func isEqualityOp(k token.Kind) bool {
	return k == token.EQ || k == token.NOT_EQ
}

func isLogicalOp(k token.Kind) bool {
	return k == token.AND_AND || k == token.OR_OR
}

// isStringConcat special-cases `+` on two strings: the one arithmetic
// operator that is legal on a non-arithmetic type, since `+` on two
// strings denotes concatenation.
func isStringConcat(op token.Kind, lhs, rhs types.Type) bool {
	return op == token.PLUS && lhs.Equals(types.Str) && rhs.Equals(types.Str)
}

func (a *Analyzer) typeOfAssignment(b *ast.Binary) types.Type {
	if !isLValue(b.Lhs) {
		a.errf(b.Lhs.Pos(), "assignment target must be a variable, index, or field access")
	}
	lhs := a.analyzeExpr(b.Lhs, nil)
	rhs := a.analyzeExpr(b.Rhs, lhs)
	if lhs == nil || rhs == nil {
		return lhs
	}
	if !lhs.AssignableFrom(rhs) {
		a.errf(b.Position, "type mismatch: cannot assign %s to %s", rhs.String(), lhs.String())
	}
	return lhs
}

func (a *Analyzer) typeOfUnary(u *ast.Unary) types.Type {
	operand := a.analyzeExpr(u.Operand, nil)
	if operand == nil {
		return nil
	}
	switch u.Op {
	case token.BANG:
		if !operand.IsBoolean() {
			a.errf(u.Position, "! requires a bool operand, got %s", operand.String())
		}
		return types.Bool
	case token.MINUS:
		if !operand.IsArithmetic() {
			a.errf(u.Position, "unary - requires an arithmetic operand, got %s", operand.String())
			return nil
		}
		return operand
	default:
		a.errf(u.Position, "internal: unhandled unary operator %s", u.Op.String())
		return nil
	}
}

func (a *Analyzer) typeOfIncrement(operand ast.Expr) types.Type {
	t := a.analyzeExpr(operand, nil)
	if t == nil {
		return nil
	}
	if !isLValue(operand) {
		a.errf(operand.Pos(), "++ requires an l-value operand")
	}
	if !t.IsArithmetic() {
		a.errf(operand.Pos(), "++ requires an arithmetic operand, got %s", t.String())
	}
	return t
}

// typeOfCall handles both user-declared functions and the single
// arity-and-type-polymorphic print/println pair.
func (a *Analyzer) typeOfCall(c *ast.Call) types.Type {
	if c.CalleeName == "print" || c.CalleeName == "println" {
		return a.typeOfPrintCall(c)
	}

	sym, ok := a.symbols.Lookup(c.CalleeName)
	if !ok {
		a.errf(c.Position, "call to undeclared function %q", c.CalleeName)
		for _, arg := range c.Args {
			a.analyzeExpr(arg, nil)
		}
		return nil
	}
	fnType, isFunc := sym.Type.(types.FunctionType)
	if !isFunc {
		a.errf(c.Position, "%q is not a function", c.CalleeName)
		for _, arg := range c.Args {
			a.analyzeExpr(arg, nil)
		}
		return nil
	}
	if len(c.Args) != len(fnType.Params) {
		a.errf(c.Position, "%q expects %d argument(s), got %d", c.CalleeName, len(fnType.Params), len(c.Args))
	}
	for i, arg := range c.Args {
		var want types.Type
		if i < len(fnType.Params) {
			want = fnType.Params[i]
		}
		argType := a.analyzeExpr(arg, want)
		if want != nil && argType != nil && !want.AssignableFrom(argType) {
			a.errf(arg.Pos(), "argument %d of %q: cannot assign %s to %s", i+1, c.CalleeName, argType.String(), want.String())
		}
	}
	return fnType.Return
}

func (a *Analyzer) typeOfPrintCall(c *ast.Call) types.Type {
	if c.CalleeName == "print" && len(c.Args) == 0 {
		a.errf(c.Position, "print requires at least one argument")
	}
	for _, arg := range c.Args {
		t := a.analyzeExpr(arg, nil)
		if t == nil {
			continue
		}
		if _, isFn := t.(types.FunctionType); isFn {
			a.errf(arg.Pos(), "%s cannot print a function value", c.CalleeName)
		}
	}
	return types.VoidTy
}

func (a *Analyzer) typeOfIndex(ix *ast.Index) types.Type {
	target := a.analyzeExpr(ix.Target, nil)
	idx := a.analyzeExpr(ix.Idx, nil)
	if idx != nil && !types.Int.AssignableFrom(idx) {
		a.errf(ix.Idx.Pos(), "index expression must be int or char, got %s", idx.String())
	}
	if target == nil {
		return nil
	}
	lst, ok := target.(types.ListType)
	if !ok {
		a.errf(ix.Target.Pos(), "cannot index into %s: not a list", target.String())
		return nil
	}
	return lst.Element
}

func (a *Analyzer) typeOfMethodCall(m *ast.MethodCall) types.Type {
	recv := a.analyzeExpr(m.Receiver, nil)
	if recv == nil {
		for _, arg := range m.Args {
			a.analyzeExpr(arg, nil)
		}
		return nil
	}
	lst, ok := recv.(types.ListType)
	if !ok {
		a.errf(m.Receiver.Pos(), "method %q requires a list receiver, got %s", m.Method, recv.String())
		for _, arg := range m.Args {
			a.analyzeExpr(arg, nil)
		}
		return nil
	}

	switch m.Method {
	case ast.MethodPush:
		a.checkArgs(m, []types.Type{lst.Element})
		return types.VoidTy
	case ast.MethodPop:
		a.checkArgs(m, nil)
		return lst.Element
	case ast.MethodSize:
		a.checkArgs(m, nil)
		return types.Int
	case ast.MethodGet:
		a.checkArgs(m, []types.Type{types.Int})
		return lst.Element
	default:
		a.errf(m.Position, "unknown list method %q", m.Method)
		return nil
	}
}

func (a *Analyzer) checkArgs(m *ast.MethodCall, want []types.Type) {
	if len(m.Args) != len(want) {
		a.errf(m.Position, "method %q expects %d argument(s), got %d", m.Method, len(want), len(m.Args))
	}
	for i, arg := range m.Args {
		var expected types.Type
		if i < len(want) {
			expected = want[i]
		}
		argType := a.analyzeExpr(arg, expected)
		if expected != nil && argType != nil && !expected.AssignableFrom(argType) {
			a.errf(arg.Pos(), "method %q argument %d: cannot assign %s to %s", m.Method, i+1, argType.String(), expected.String())
		}
	}
}

// typeOfListLiteral scans elements left to right, widening int to float
// when needed, and falls back to the contextual expected type when the
// literal is empty.
func (a *Analyzer) typeOfListLiteral(l *ast.ListLiteral, expected types.Type) types.Type {
	if len(l.Elements) == 0 {
		if lst, ok := expected.(types.ListType); ok {
			return lst
		}
		a.errf(l.Position, "cannot infer the element type of an empty list literal without a declared target type")
		return nil
	}

	var elemExpected types.Type
	if lst, ok := expected.(types.ListType); ok {
		elemExpected = lst.Element
	}

	running := a.analyzeExpr(l.Elements[0], elemExpected)
	for _, elem := range l.Elements[1:] {
		t := a.analyzeExpr(elem, running)
		if running == nil || t == nil {
			continue
		}
		if running.Equals(types.Int) && t.Equals(types.Float) {
			running = types.Float
			continue
		}
		if !running.AssignableFrom(t) {
			a.errf(elem.Pos(), "list element of type %s is not assignable to %s", t.String(), running.String())
		}
	}
	if running == nil {
		return nil
	}
	return types.NewList(running)
}
