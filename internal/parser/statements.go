package parser

import "github.com/RaphaeleL/ris-sub000/internal/ast"
import "github.com/RaphaeleL/ris-sub000/internal/token"

// parseBlock parses `{ Stmt* }`. The parser only records the nesting; scope
// creation is the analyzer's job.
func (p *Parser) parseBlock() *ast.Block {
	pos := p.cur().Position
	p.consume(token.LBRACE, "expected '{' to start a block")
	block := &ast.Block{}
	block.Position = pos
	for !p.at(token.RBRACE) && !p.atEOF() {
		start := p.pos
		s := p.parseStatement()
		if s != nil {
			block.Stmts = append(block.Stmts, s)
		}
		if p.pos == start {
			p.advance()
		}
	}
	p.consume(token.RBRACE, "expected '}' to close a block")
	return block
}

// parseStatement dispatches on the lookahead token.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur().Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.SWITCH:
		return p.parseSwitch()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		pos := p.advance().Position
		p.consume(token.SEMICOLON, "expected ';' after break")
		b := &ast.Break{}
		b.Position = pos
		return b
	case token.CONTINUE:
		pos := p.advance().Position
		p.consume(token.SEMICOLON, "expected ';' after continue")
		c := &ast.Continue{}
		c.Position = pos
		return c
	default:
		if p.isTypeKeyword(p.cur().Kind) {
			return p.parseLocalVarDecl()
		}
		return p.parseExprStatement()
	}
}

func (p *Parser) parseLocalVarDecl() *ast.VarDecl {
	pos := p.cur().Position
	declType := p.parseTypeExpr()
	name, ok := p.consume(token.IDENT, "expected an identifier after the type")
	if !ok {
		p.synchronizeToStatement()
		v := &ast.VarDecl{DeclaredType: declType}
		v.Position = pos
		return v
	}
	return p.parseVarDeclFrom(pos, declType, name.Lexeme)
}

func (p *Parser) parseExprStatement() *ast.ExprStmt {
	pos := p.cur().Position
	expr := p.parseExpression(lowest)
	p.consume(token.SEMICOLON, "expected ';' after expression")
	stmt := &ast.ExprStmt{Expression: expr}
	stmt.Position = pos
	return stmt
}

func (p *Parser) parseIf() *ast.If {
	pos := p.advance().Position // 'if'
	p.consume(token.LPAREN, "expected '(' after if")
	cond := p.parseExpression(lowest)
	p.consume(token.RPAREN, "expected ')' after if condition")
	then := p.parseStatement()
	stmt := &ast.If{Cond: cond, Then: then}
	stmt.Position = pos
	if p.at(token.ELSE) {
		p.advance()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhile() *ast.While {
	pos := p.advance().Position // 'while'
	p.consume(token.LPAREN, "expected '(' after while")
	cond := p.parseExpression(lowest)
	p.consume(token.RPAREN, "expected ')' after while condition")
	body := p.parseStatement()
	w := &ast.While{Cond: cond, Body: body}
	w.Position = pos
	return w
}

// parseFor parses `for ( init? ; cond? ; update? ) body` where init, when
// present, is a variable declaration or an expression followed by `;`.
func (p *Parser) parseFor() *ast.For {
	pos := p.advance().Position // 'for'
	p.consume(token.LPAREN, "expected '(' after for")

	f := &ast.For{}
	f.Position = pos
	if p.at(token.SEMICOLON) {
		p.advance()
	} else if p.isTypeKeyword(p.cur().Kind) {
		f.Init = p.parseLocalVarDecl()
	} else {
		f.Init = p.parseExprStatement()
	}

	if !p.at(token.SEMICOLON) {
		f.Cond = p.parseExpression(lowest)
	}
	p.consume(token.SEMICOLON, "expected ';' after for condition")

	if !p.at(token.RPAREN) {
		f.Update = p.parseExpression(lowest)
	}
	p.consume(token.RPAREN, "expected ')' after for clauses")

	f.Body = p.parseStatement()
	return f
}

// parseSwitch parses `switch ( Expr ) { Case* }`.
func (p *Parser) parseSwitch() *ast.Switch {
	pos := p.advance().Position // 'switch'
	p.consume(token.LPAREN, "expected '(' after switch")
	scrutinee := p.parseExpression(lowest)
	p.consume(token.RPAREN, "expected ')' after switch expression")
	p.consume(token.LBRACE, "expected '{' to start switch body")

	sw := &ast.Switch{Scrutinee: scrutinee}
	sw.Position = pos
	for !p.at(token.RBRACE) && !p.atEOF() {
		start := p.pos
		c := p.parseCase()
		if c != nil {
			sw.Cases = append(sw.Cases, c)
		}
		if p.pos == start {
			p.advance()
		}
	}
	p.consume(token.RBRACE, "expected '}' to close switch body")
	return sw
}

func (p *Parser) parseCase() *ast.Case {
	pos := p.cur().Position
	c := &ast.Case{}
	c.Position = pos
	switch p.cur().Kind {
	case token.CASE:
		p.advance()
		c.Value = p.parseExpression(lowest)
	case token.DEFAULT:
		p.advance()
	default:
		p.errorf("expected 'case' or 'default', got %s", p.cur().Kind)
		p.synchronizeToStatement()
		return nil
	}
	p.consume(token.COLON, "expected ':' after case label")
	for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) && !p.atEOF() {
		start := p.pos
		s := p.parseStatement()
		if s != nil {
			c.Stmts = append(c.Stmts, s)
		}
		if p.pos == start {
			p.advance()
		}
	}
	return c
}

func (p *Parser) parseReturn() *ast.Return {
	pos := p.advance().Position // 'return'
	r := &ast.Return{}
	r.Position = pos
	if !p.at(token.SEMICOLON) {
		r.Value = p.parseExpression(lowest)
	}
	p.consume(token.SEMICOLON, "expected ';' after return")
	return r
}
