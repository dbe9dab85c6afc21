// Package parser implements a recursive descent parser for the compiler.
//
// PARSING STRATEGY:
// Every grammar rule is a method on Parser built on two cursor primitives:
// try (look at the next relevant token without moving) and consume (move
// past it). Statements are parsed by plain recursive descent. Binary
// operators are not ranked here: an expression made of several operands is
// returned as one flat ast.UOps chain, and package resolve applies
// precedence later.
//
// ERROR HANDLING STRATEGY:
// The first syntax error is fatal. The failing rule panics with the
// diagnostic, Parse recovers it at the top, reports it to the sink and
// returns it as the error. There is no resynchronization and no partial AST.
package parser

import (
	"github.com/hassan/bootc/internal/diag"
	"github.com/hassan/bootc/internal/lexer"
	"github.com/hassan/bootc/internal/module"
	"github.com/hassan/bootc/internal/parser/ast"
)

// Rule is a grammar production that Parse can start from.
type Rule func(p *Parser) ast.Node

// Entry rules.
var (
	// Program parses statements until the end of the file and wraps them in
	// an *ast.Scope.
	Program Rule = (*Parser).parseProgram

	// Stmt parses exactly one statement.
	Stmt Rule = (*Parser).parseStmt

	// Expr parses one expression, including unresolved operator chains.
	Expr Rule = (*Parser).parseExpr

	// CExpr parses one operand: a literal, name, parenthesised or unary
	// expression with any call, index and member suffixes.
	CExpr Rule = (*Parser).parseCExpr
)

// RuleByName returns the entry rule called name: program, stmt, expr or
// cexpr.
func RuleByName(name string) (Rule, bool) {
	switch name {
	case "program":
		return Program, true
	case "stmt":
		return Stmt, true
	case "expr":
		return Expr, true
	case "cexpr":
		return CExpr, true
	default:
		return nil, false
	}
}

// Parse runs rule over the tokens of m and then requires the end of file.
//
// On a syntax error the diagnostic is reported to sink and returned as a
// *diag.Diagnostic; a nil sink drops it. Misuse of the parser cursor by a
// rule panics with *ContractError and is not turned into an error.
func Parse(m *module.Module, rule Rule, sink diag.Sink) (node ast.Node, err error) {
	p := newParser(m)
	if sink == nil {
		sink = diag.Discard
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			sink.Report(b.diag)
			node, err = nil, b.diag
		}
	}()

	node = rule(p)
	p.consumeType(lexer.TokenEOF)
	return node, nil
}

// ParseSource is a convenience wrapper that builds a module from source and
// parses it as a program.
func ParseSource(filename, source string, sink diag.Sink) (ast.Node, error) {
	return Parse(module.New(filename, source), Program, sink)
}

// parseProgram parses the top level: [ stmt ] until end of file.
func (p *Parser) parseProgram() ast.Node {
	start := lexer.Span{}
	stmts := p.parseStmts()
	if len(stmts) > 0 {
		start = stmts[0].Span().Cover(stmts[len(stmts)-1].Span())
	}
	return &ast.Scope{Loc: loc(start), Stmts: stmts}
}
