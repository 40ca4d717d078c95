// Package parser turns a token stream into an ast.Program. It is a plain
// recursive-descent parser with one precedence-climbing loop for
// expressions — there is no separate Pratt prefix/infix function table,
// since the grammar's prefix position only ever needs parsePrimary plus
// the fixed unary-operator set.
package parser
