// Package ast: see ast.go for the Node/Expr/Stmt interfaces,
// expressions.go for the closed expression variant, and statements.go for
// the closed statement variant. There is deliberately no visitor
// interface — every phase that must handle all node kinds does so with an
// exhaustive Go type switch, which the compiler checks at each call site
// instead of at a central accept/visit registration point.
package ast
