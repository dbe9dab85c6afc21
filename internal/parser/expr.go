package parser

import (
	"github.com/hassan/bootc/internal/lexer"
	"github.com/hassan/bootc/internal/parser/ast"
)

// tryCExpr reports whether an operand starts at the cursor.
func (p *Parser) tryCExpr() bool {
	for _, tt := range []lexer.TokenType{lexer.TokenIdentifier, lexer.TokenInt, lexer.TokenString, lexer.TokenLeftParen} {
		if _, ok := p.try(tt); ok {
			return true
		}
	}
	for _, op := range lexer.UnaryOps {
		if _, ok := p.try(op.Token); ok {
			return true
		}
	}
	return false
}

// parseCExpr parses an operand.
//
// GRAMMAR:
//
//	cexpr = ID | INT | STR | "(" expr ")" | unary_op cexpr
//	      | cexpr "(" [ expr { "," expr } ] ")"
//	      | cexpr "[" [ expr { "," expr } ] "]"
//	      | cexpr "." ID
//
// The suffix forms are left recursive, so they are applied in a loop after
// the first operand is parsed.
func (p *Parser) parseCExpr() ast.Node {
	node := p.parsePrimary()

	for {
		if _, ok := p.tryConsume(lexer.TokenLeftParen); ok {
			args := p.parseArgs(lexer.TokenRightParen)
			node = &ast.Call{Loc: loc(p.spanFrom(node.Span())), Target: node, Args: args}
		} else if _, ok := p.tryConsume(lexer.TokenLeftBracket); ok {
			args := p.parseArgs(lexer.TokenRightBracket)
			node = &ast.Index{Loc: loc(p.spanFrom(node.Span())), Target: node, Args: args}
		} else if _, ok := p.tryConsume(lexer.TokenPeriod); ok {
			name := p.consumeType(lexer.TokenIdentifier)
			node = &ast.Member{
				Loc:       loc(p.spanFrom(node.Span())),
				Aggregate: node,
				Name:      p.text(name),
				NameRange: name.Span,
			}
		} else {
			return node
		}
	}
}

// parsePrimary parses the operand a suffix loop starts from.
func (p *Parser) parsePrimary() ast.Node {
	if tok, ok := p.tryConsume(lexer.TokenIdentifier); ok {
		return &ast.Ident{Loc: loc(tok.Span), Name: p.text(tok)}
	}
	if tok, ok := p.tryConsume(lexer.TokenInt); ok {
		return &ast.IntLit{Loc: loc(tok.Span), Value: tok.Int}
	}
	if tok, ok := p.tryConsume(lexer.TokenString); ok {
		return &ast.StrLit{Loc: loc(tok.Span), Value: tok.Str}
	}
	if _, ok := p.tryConsume(lexer.TokenLeftParen); ok {
		expr := p.parseExpr()
		p.consumeType(lexer.TokenRightParen)
		return expr
	}
	for _, op := range lexer.UnaryOps {
		if tok, ok := p.tryConsume(op.Token); ok {
			arg := p.parseCExpr()
			return &ast.Unary{Loc: loc(tok.Span.Cover(arg.Span())), Op: op, Arg: arg}
		}
	}

	p.fail("")
	return nil
}

// parseArgs parses a comma separated expression list after the opening
// bracket, up to and including closer.
func (p *Parser) parseArgs(closer lexer.TokenType) []ast.Node {
	var args []ast.Node
	if _, ok := p.try(closer); !ok {
		args = append(args, p.parseExpr())
		for {
			if _, ok := p.tryConsume(lexer.TokenComma); !ok {
				break
			}
			args = append(args, p.parseExpr())
		}
	}
	p.consumeType(closer)
	return args
}

// tryBinaryOp returns the index of the next token if it can act as a binary
// operator: any identifier or a token from the binary operator table.
func (p *Parser) tryBinaryOp() (int, bool) {
	if i, ok := p.try(lexer.TokenIdentifier); ok {
		return i, true
	}
	for _, op := range lexer.BinaryOps {
		if i, ok := p.try(op.Token); ok {
			return i, true
		}
	}
	return 0, false
}

// parseExpr parses an operand optionally followed by operator/operand pairs.
//
// GRAMMAR:
//
//	expr = cexpr { binary_op cexpr }
//
// A lone operand is returned as is. Anything longer becomes one flat
// *ast.UOps chain; precedence is applied later by package resolve. The chain
// stops before a token that could end the statement, so an operator on the
// next line starts a new statement.
func (p *Parser) parseExpr() ast.Node {
	node := p.parseCExpr()

	if _, ok := p.tryBinaryOp(); !ok || p.tryEOS() {
		return node
	}

	chain := &ast.UOps{List: []ast.Node{node}}
	for {
		i, ok := p.tryBinaryOp()
		if !ok || p.tryEOS() {
			break
		}
		op := p.consume(i)
		chain.List = append(chain.List, &ast.Ident{Loc: loc(op.Span), Name: p.text(op)})
		chain.List = append(chain.List, p.parseCExpr())
	}

	chain.Loc = loc(node.Span().Cover(chain.List[len(chain.List)-1].Span()))
	return chain
}
