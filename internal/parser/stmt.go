package parser

import (
	"github.com/hassan/bootc/internal/lexer"
	"github.com/hassan/bootc/internal/parser/ast"
)

// tryStmt reports whether a statement starts at the cursor.
func (p *Parser) tryStmt() bool {
	for _, tt := range []lexer.TokenType{lexer.TokenLeftBrace, lexer.TokenDo, lexer.TokenWhile, lexer.TokenIf} {
		if _, ok := p.try(tt); ok {
			return true
		}
	}
	return p.tryCExpr()
}

// parseStmts parses statements for as long as one starts at the cursor.
func (p *Parser) parseStmts() []ast.Node {
	var stmts []ast.Node
	for p.tryStmt() {
		stmts = append(stmts, p.parseStmt())
	}
	return stmts
}

// parseStmt parses one statement.
//
// GRAMMAR:
//
//	stmt = "{" [ stmt ] "}"
//	     | "do" [ stmt ] "end"
//	     | "while" expr body
//	     | "if" expr body
//	     | expr eos
func (p *Parser) parseStmt() ast.Node {
	if open, ok := p.tryConsume(lexer.TokenLeftBrace); ok {
		stmts := p.parseStmts()
		p.consumeType(lexer.TokenRightBrace)
		return &ast.Scope{Loc: loc(p.spanFrom(open.Span)), Stmts: stmts}
	}
	if open, ok := p.tryConsume(lexer.TokenDo); ok {
		stmts := p.parseStmts()
		p.consumeType(lexer.TokenEnd)
		return &ast.Scope{Loc: loc(p.spanFrom(open.Span)), Stmts: stmts}
	}
	if kw, ok := p.tryConsume(lexer.TokenWhile); ok {
		return p.parseWhile(kw)
	}
	if kw, ok := p.tryConsume(lexer.TokenIf); ok {
		return p.parseIf(kw)
	}
	if p.tryCExpr() {
		expr := p.parseExpr()
		p.consumeEOS()
		return expr
	}

	p.fail("expected statement")
	return nil
}

// openBody consumes the token that opens the body of while and if.
//
// "do" and "{" are tried before the newline form on purpose: a newline only
// opens a body when neither keyword follows the condition.
func (p *Parser) openBody(what string) *lexer.Token {
	for _, tt := range []lexer.TokenType{lexer.TokenDo, lexer.TokenLeftBrace, lexer.TokenNewline} {
		if open, ok := p.tryConsume(tt); ok {
			return open
		}
	}
	p.fail(what + " needs a block as body")
	return nil
}

// parseWhile parses the rest of a while statement.
//
// GRAMMAR:
//
//	while = "while" expr "do" [ stmt ] "end"
//	      | "while" expr "{"  [ stmt ] "}"
//	      | "while" expr WSNL [ stmt ] "end"
func (p *Parser) parseWhile(kw *lexer.Token) ast.Node {
	cond := p.parseExpr()
	open := p.openBody("while")
	body := p.parseStmts()

	if open.Type == lexer.TokenLeftBrace {
		p.consumeType(lexer.TokenRightBrace)
	} else {
		p.consumeType(lexer.TokenEnd)
	}

	return &ast.While{Loc: loc(p.spanFrom(kw.Span)), Cond: cond, Body: body}
}

// parseIf parses the rest of an if statement.
//
// GRAMMAR:
//
//	if = "if" expr "do" [ stmt ]     [ "else" [ stmt ] ]         "end"
//	   | "if" expr "{"  [ stmt ] "}" [ "else" "{" [ stmt ] "}" ]
//	   | "if" expr WSNL [ stmt ]     [ "else" [ stmt ] ]         "end"
func (p *Parser) parseIf(kw *lexer.Token) ast.Node {
	cond := p.parseExpr()
	open := p.openBody("if")
	braced := open.Type == lexer.TokenLeftBrace

	node := &ast.If{Cond: cond}
	node.True = p.parseStmts()
	if braced {
		p.consumeType(lexer.TokenRightBrace)
	}

	if _, ok := p.tryConsume(lexer.TokenElse); ok {
		if braced {
			p.consumeType(lexer.TokenLeftBrace)
		}
		node.False = p.parseStmts()
		if braced {
			p.consumeType(lexer.TokenRightBrace)
		}
	}

	if !braced {
		p.consumeType(lexer.TokenEnd)
	}

	node.Loc = loc(p.spanFrom(kw.Span))
	return node
}

// tryEOS reports whether the cursor is at something that may end a statement.
func (p *Parser) tryEOS() bool {
	for _, tt := range []lexer.TokenType{lexer.TokenEOF, lexer.TokenSemicolon, lexer.TokenRightBrace, lexer.TokenEnd, lexer.TokenNewline} {
		if _, ok := p.try(tt); ok {
			return true
		}
	}
	return false
}

// consumeEOS ends an expression statement.
//
// ";" and a newline are consumed. The end of file and the closers "}",
// "end" and "else" are left in place for the enclosing rule.
func (p *Parser) consumeEOS() {
	if _, ok := p.try(lexer.TokenEOF); ok {
		return
	}
	if _, ok := p.tryConsume(lexer.TokenSemicolon); ok {
		return
	}
	for _, tt := range []lexer.TokenType{lexer.TokenRightBrace, lexer.TokenEnd, lexer.TokenElse} {
		if _, ok := p.try(tt); ok {
			return
		}
	}
	if _, ok := p.tryConsume(lexer.TokenNewline); ok {
		return
	}
	p.fail("expected end of statement")
}
