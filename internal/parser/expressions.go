package parser

import "github.com/RaphaeleL/ris-sub000/internal/ast"
import "github.com/RaphaeleL/ris-sub000/internal/token"

// parseExpression implements precedence climbing over the binary operator
// levels: it parses one unary expression, then repeatedly folds in binary
// operators whose precedence is at least minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		opPrec, ok := precedences[p.cur().Kind]
		if !ok || opPrec < minPrec {
			return left
		}
		op := p.advance()
		nextMin := opPrec + 1
		if rightAssociative[op.Kind] {
			nextMin = opPrec
		}
		right := p.parseExpression(nextMin)
		bin := &ast.Binary{Op: op.Kind, Lhs: left, Rhs: right}
		bin.Position = left.Pos()
		left = bin
	}
}

// parseUnary handles level 8, `! - ++`, then falls through to postfix.
func (p *Parser) parseUnary() ast.Expr {
	switch p.cur().Kind {
	case token.BANG, token.MINUS:
		op := p.advance()
		operand := p.parseUnary()
		u := &ast.Unary{Op: op.Kind, Operand: operand}
		u.Position = op.Position
		return u
	case token.INC:
		op := p.advance()
		operand := p.parseUnary()
		pre := &ast.PreIncrement{Operand: operand}
		pre.Position = op.Position
		return pre
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles postfix `++`, index, and method/field-access
// chaining, all left-associative. Calls are built in parsePrimary.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.INC:
			pos := p.advance().Position
			post := &ast.PostIncrement{Operand: expr}
			post.Position = pos
			expr = post
		case token.LBRACKET:
			pos := p.advance().Position
			idx := p.parseExpression(lowest)
			p.consume(token.RBRACKET, "expected ']' to close index expression")
			ix := &ast.Index{Target: expr, Idx: idx}
			ix.Position = pos
			expr = ix
		case token.DOT:
			dotPos := p.advance().Position
			name, ok := p.consume(token.IDENT, "expected a name after '.'")
			if !ok {
				return expr
			}
			if p.at(token.LPAREN) {
				args := p.parseArgs()
				mc := &ast.MethodCall{Receiver: expr, Method: ast.MethodName(name.Lexeme), Args: args}
				mc.Position = dotPos
				expr = mc
			} else {
				fa := &ast.FieldAccess{Object: expr, FieldName: name.Lexeme}
				fa.Position = dotPos
				expr = fa
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	if !p.at(token.RPAREN) {
		args = append(args, p.parseExpression(lowest))
		for p.at(token.COMMA) {
			p.advance()
			args = append(args, p.parseExpression(lowest))
		}
	}
	p.consume(token.RPAREN, "expected ')' to close argument list")
	return args
}

// parsePrimary handles level 10: literals, identifiers (an identifier
// followed by `(` becomes a Call here; index and method chaining are
// folded in by parsePostfix), parenthesized expressions, and list literals.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.INTEGER:
		p.advance()
		return p.literal(tok, ast.IntLiteral)
	case token.FLOAT:
		p.advance()
		return p.literal(tok, ast.FloatLiteral)
	case token.CHAR:
		p.advance()
		return p.literal(tok, ast.CharLiteral)
	case token.STRING:
		p.advance()
		return p.literal(tok, ast.StringLiteral)
	case token.TRUE, token.FALSE:
		p.advance()
		return p.literal(tok, ast.BoolLiteral)
	case token.IDENT:
		p.advance()
		if p.at(token.LPAREN) {
			args := p.parseArgs()
			call := &ast.Call{CalleeName: tok.Lexeme, Args: args}
			call.Position = tok.Position
			return call
		}
		id := &ast.Identifier{Name: tok.Lexeme}
		id.Position = tok.Position
		return id
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression(lowest)
		p.consume(token.RPAREN, "expected ')' to close parenthesized expression")
		return inner
	case token.LBRACKET:
		return p.parseListLiteral()
	default:
		p.errorf("unexpected token %s in expression", tok.Kind)
		p.advance()
		lit := &ast.Literal{Kind: ast.IntLiteral, Text: "0"}
		lit.Position = tok.Position
		return lit
	}
}

func (p *Parser) literal(tok token.Token, kind ast.LiteralKind) *ast.Literal {
	lit := &ast.Literal{Kind: kind, Text: tok.Lexeme}
	lit.Position = tok.Position
	return lit
}

func (p *Parser) parseListLiteral() *ast.ListLiteral {
	pos := p.advance().Position // '['
	lst := &ast.ListLiteral{}
	lst.Position = pos
	if !p.at(token.RBRACKET) {
		lst.Elements = append(lst.Elements, p.parseExpression(lowest))
		for p.at(token.COMMA) {
			p.advance()
			lst.Elements = append(lst.Elements, p.parseExpression(lowest))
		}
	}
	p.consume(token.RBRACKET, "expected ']' to close list literal")
	return lst
}
