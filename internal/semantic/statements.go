package semantic

import (
	"github.com/RaphaeleL/ris-sub000/internal/ast"
	"github.com/RaphaeleL/ris-sub000/internal/token"
)

// analyzeVarDecl resolves the declared type, rejects redeclaration in the
// current scope, and — if an initializer is present — checks it is
// assignable to the declared type.
func (a *Analyzer) analyzeVarDecl(v *ast.VarDecl) {
	declType, ok := a.resolveType(v.DeclaredType)
	if !ok {
		a.errf(v.Position, "unknown type %q for variable %q", v.DeclaredType.String(), v.Name)
	}

	if v.Initializer != nil {
		initType := a.analyzeExpr(v.Initializer, declType)
		if ok && initType != nil && !declType.AssignableFrom(initType) {
			a.errf(v.Initializer.Pos(), "type mismatch: cannot assign %s to %s", initType.String(), declType.String())
		}
	}

	if !a.symbols.InsertLocal(v.Name, declType) {
		a.errf(v.Position, "%q is already declared in this scope", v.Name)
	}
}

// analyzeBlock enters a new scope, analyzes every statement, and exits —
// the parser only recorded the nesting; scope creation happens here.
func (a *Analyzer) analyzeBlock(b *ast.Block) {
	a.symbols.Enter()
	defer a.symbols.Exit()
	for _, s := range b.Stmts {
		a.analyzeStmt(s)
	}
}

// analyzeStmt dispatches on the concrete Stmt type via an exhaustive type
// switch — there is no visitor interface.
func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Block:
		a.analyzeBlock(st)
	case *ast.VarDecl:
		a.analyzeVarDecl(st)
	case *ast.ExprStmt:
		a.analyzeExpr(st.Expression, nil)
	case *ast.If:
		a.analyzeIf(st)
	case *ast.While:
		a.analyzeWhile(st)
	case *ast.For:
		a.analyzeFor(st)
	case *ast.Switch:
		a.analyzeSwitch(st)
	case *ast.Break:
		if a.loopDepth == 0 && a.switchDepth == 0 {
			a.errf(st.Position, "break is only legal inside a while, for, or switch body")
		}
	case *ast.Continue:
		if a.loopDepth == 0 {
			a.errf(st.Position, "continue is only legal inside a while or for body")
		}
	case *ast.Return:
		a.analyzeReturn(st)
	default:
		a.errf(token.Position{}, "internal: unhandled statement type %T", st)
	}
}

func (a *Analyzer) requireBoolean(cond ast.Expr, context string) {
	t := a.analyzeExpr(cond, nil)
	if t == nil {
		return
	}
	if !t.IsBoolean() {
		a.errf(cond.Pos(), "%s condition must be bool, got %s", context, t.String())
	}
}

func (a *Analyzer) analyzeIf(st *ast.If) {
	a.requireBoolean(st.Cond, "if")
	a.analyzeStmt(st.Then)
	if st.Else != nil {
		a.analyzeStmt(st.Else)
	}
}

func (a *Analyzer) analyzeWhile(st *ast.While) {
	a.requireBoolean(st.Cond, "while")
	a.loopDepth++
	a.analyzeStmt(st.Body)
	a.loopDepth--
}

// analyzeFor runs Init in the for-scope, so the condition and update see
// the init binding.
func (a *Analyzer) analyzeFor(st *ast.For) {
	a.symbols.Enter()
	defer a.symbols.Exit()

	if st.Init != nil {
		a.analyzeStmt(st.Init)
	}
	if st.Cond != nil {
		a.requireBoolean(st.Cond, "for")
	}
	if st.Update != nil {
		a.analyzeExpr(st.Update, nil)
	}

	a.loopDepth++
	a.analyzeStmt(st.Body)
	a.loopDepth--
}

// analyzeSwitch requires an arithmetic or bool scrutinee, and every case
// value assignable to the scrutinee's type.
func (a *Analyzer) analyzeSwitch(st *ast.Switch) {
	scrutType := a.analyzeExpr(st.Scrutinee, nil)
	if scrutType != nil && !scrutType.IsArithmetic() && !scrutType.IsBoolean() {
		a.errf(st.Scrutinee.Pos(), "switch expression must be arithmetic or bool, got %s", scrutType.String())
	}

	a.switchDepth++
	defer func() { a.switchDepth-- }()

	for _, c := range st.Cases {
		if c.Value != nil {
			valType := a.analyzeExpr(c.Value, scrutType)
			if scrutType != nil && valType != nil && !scrutType.AssignableFrom(valType) {
				a.errf(c.Value.Pos(), "case value of type %s is not assignable to switch type %s", valType.String(), scrutType.String())
			}
		}
		a.symbols.Enter()
		for _, s := range c.Stmts {
			a.analyzeStmt(s)
		}
		a.symbols.Exit()
	}
}

func (a *Analyzer) analyzeReturn(st *ast.Return) {
	if st.Value == nil {
		if a.currentReturn != nil && !a.currentReturn.IsVoid() {
			a.errf(st.Position, "bare return is only legal in a void function, current return type is %s", a.currentReturn.String())
		}
		return
	}
	valType := a.analyzeExpr(st.Value, a.currentReturn)
	if valType == nil || a.currentReturn == nil {
		return
	}
	if !a.currentReturn.AssignableFrom(valType) {
		a.errf(st.Value.Pos(), "return type mismatch: expected %s, got %s", a.currentReturn.String(), valType.String())
	}
}
