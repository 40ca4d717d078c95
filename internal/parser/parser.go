// Package parser implements a recursive-descent parser with precedence
// climbing for expressions, consuming a token vector and producing an
// ast.Program. It never aborts on the first error: a failed construct
// resynchronizes and parsing continues so the driver can report every
// syntax error in one pass.
package parser

import (
	"fmt"

	"github.com/RaphaeleL/ris-sub000/internal/ast"
	"github.com/RaphaeleL/ris-sub000/internal/diag"
	"github.com/RaphaeleL/ris-sub000/internal/token"
)

// Precedence levels for binary operators, lowest to highest.
const (
	_ int = iota
	lowest
	assignPrec  // =
	orPrec      // ||
	andPrec     // &&
	equalsPrec  // == !=
	comparePrec // < <= > >=
	sumPrec     // + -
	productPrec // * / %
)

var precedences = map[token.Kind]int{
	token.ASSIGN:     assignPrec,
	token.OR_OR:       orPrec,
	token.AND_AND:     andPrec,
	token.EQ:          equalsPrec,
	token.NOT_EQ:       equalsPrec,
	token.LESS:         comparePrec,
	token.LESS_EQ:      comparePrec,
	token.GREATER:      comparePrec,
	token.GREATER_EQ:   comparePrec,
	token.PLUS:         sumPrec,
	token.MINUS:        sumPrec,
	token.STAR:         productPrec,
	token.SLASH:        productPrec,
	token.PERCENT:      productPrec,
}

// rightAssociative holds the operators whose precedence climbing recurses
// into the same level on the right-hand side instead of the next level up.
// Assignment is the only one.
var rightAssociative = map[token.Kind]bool{
	token.ASSIGN: true,
}

// Parser consumes a pre-scanned token slice. Lexing happens entirely before
// parsing begins, so the parser never talks to the lexer directly.
type Parser struct {
	tokens []token.Token
	pos    int
	sink   *diag.Sink
}

// New creates a Parser over tokens, reporting syntax errors to sink.
func New(tokens []token.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

func (p *Parser) cur() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) atEOF() bool { return p.cur().Kind == token.EOF }

// consume advances past the expected kind, or records a parse error at the
// current token and keeps the cursor in place.
func (p *Parser) consume(expected token.Kind, message string) (token.Token, bool) {
	if p.at(expected) {
		return p.advance(), true
	}
	p.errorf("%s (got %s)", message, p.cur().Kind)
	return token.Token{}, false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.sink.Report(diag.Error, diag.Parser, p.cur().Position, fmt.Sprintf(format, args...))
}

func (p *Parser) isTypeKeyword(k token.Kind) bool {
	switch k {
	case token.INT, token.FLOATKW, token.BOOL, token.CHARKW, token.STRINGKW, token.VOID, token.LIST:
		return true
	default:
		return false
	}
}

// synchronizeToDeclaration skips tokens until one that can start a
// top-level declaration, or EOF, so a broken declaration does not wedge
// the parser.
func (p *Parser) synchronizeToDeclaration() {
	for !p.atEOF() {
		if p.isTypeKeyword(p.cur().Kind) {
			return
		}
		p.advance()
	}
}

// synchronizeToStatement skips tokens until `;`, `}`, or a statement/type
// starter, consuming a trailing `;` if that is what stopped it.
func (p *Parser) synchronizeToStatement() {
	for !p.atEOF() {
		switch p.cur().Kind {
		case token.SEMICOLON:
			p.advance()
			return
		case token.RBRACE:
			return
		case token.IF, token.WHILE, token.FOR, token.SWITCH, token.RETURN,
			token.BREAK, token.CONTINUE, token.LBRACE:
			return
		}
		if p.isTypeKeyword(p.cur().Kind) {
			return
		}
		p.advance()
	}
}

// Parse consumes the full token stream and returns the resulting Program.
// Parsing never stops on error: a malformed declaration is skipped and
// the next one is attempted.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.atEOF() {
		start := p.pos
		decl := p.parseDeclaration()
		switch d := decl.(type) {
		case *ast.VarDecl:
			prog.Globals = append(prog.Globals, d)
		case *ast.FuncDecl:
			prog.Functions = append(prog.Functions, d)
		}
		if p.pos == start {
			// No progress was made; force an advance to avoid looping forever.
			p.advance()
		}
	}
	return prog
}

// parseDeclaration dispatches a top-level declaration by scanning ahead
// past the type and identifier to the first of `(`, `{`, `;`, `=`.
func (p *Parser) parseDeclaration() ast.Node {
	if !p.isTypeKeyword(p.cur().Kind) {
		p.errorf("expected a type keyword to start a declaration, got %s", p.cur().Kind)
		p.synchronizeToDeclaration()
		return nil
	}
	typeExpr := p.parseTypeExpr()
	namePos := p.cur().Position
	name, ok := p.consume(token.IDENT, "expected an identifier after the type")
	if !ok {
		p.synchronizeToDeclaration()
		return nil
	}
	if p.at(token.LPAREN) {
		return p.parseFuncDeclFrom(namePos, typeExpr, name.Lexeme)
	}
	return p.parseVarDeclFrom(namePos, typeExpr, name.Lexeme)
}

// parseTypeExpr parses `Type := "int" | "float" | ... | "list" "<" Type ">"`.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	pos := p.cur().Position
	if p.at(token.LIST) {
		p.advance()
		if _, ok := p.consume(token.LESS, "expected '<' after list"); !ok {
			return &ast.TypeExpr{Position: pos, Name: "list", Elem: &ast.TypeExpr{Name: "int"}}
		}
		elem := p.parseTypeExpr()
		p.consume(token.GREATER, "expected '>' to close list type")
		return &ast.TypeExpr{Position: pos, Name: "list", Elem: elem}
	}
	if !p.isTypeKeyword(p.cur().Kind) || p.at(token.LIST) {
		p.errorf("expected a type, got %s", p.cur().Kind)
		return &ast.TypeExpr{Position: pos, Name: "int"}
	}
	name := p.cur().Kind.String()
	p.advance()
	return &ast.TypeExpr{Position: pos, Name: name}
}

func (p *Parser) parseFuncDeclFrom(pos token.Position, ret *ast.TypeExpr, name string) *ast.FuncDecl {
	p.advance() // consume '('
	var params []ast.Param
	if !p.at(token.RPAREN) {
		params = append(params, p.parseParam())
		for p.at(token.COMMA) {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.consume(token.RPAREN, "expected ')' to close parameter list")
	body := p.parseBlock()
	return &ast.FuncDecl{Position: pos, Name: name, ReturnType: ret, Params: params, Body: body}
}

func (p *Parser) parseParam() ast.Param {
	t := p.parseTypeExpr()
	name, _ := p.consume(token.IDENT, "expected a parameter name")
	return ast.Param{Type: t, Name: name.Lexeme}
}

func (p *Parser) parseVarDeclFrom(pos token.Position, declType *ast.TypeExpr, name string) *ast.VarDecl {
	v := &ast.VarDecl{Name: name, DeclaredType: declType}
	v.Position = pos
	if p.at(token.ASSIGN) {
		p.advance()
		v.Initializer = p.parseExpression(lowest)
	}
	p.consume(token.SEMICOLON, "expected ';' to terminate declaration")
	return v
}
