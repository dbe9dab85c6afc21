package parser

import (
	"fmt"

	"github.com/hassan/bootc/internal/diag"
	"github.com/hassan/bootc/internal/lexer"
	"github.com/hassan/bootc/internal/module"
	"github.com/hassan/bootc/internal/parser/ast"
)

// Parser is the cursor grammar rules walk the token stream with.
//
// Rules never look at the token slice directly. They probe with try, which
// looks past trivia and reports whether the next relevant token has a given
// type, and advance with consume. Every probed type is remembered until the
// next successful consume so a failing rule can say everything it would
// have accepted.
type Parser struct {
	module *module.Module

	// pos is the index of the first token not consumed yet.
	pos int

	// last is the index of the last consumed token, -1 before the first one.
	last int

	// tried is the attempted-kinds set: every type probed since the last
	// consume, deduplicated, in first-probed order.
	tried []lexer.TokenType
}

func newParser(m *module.Module) *Parser {
	return &Parser{module: m, last: -1}
}

// ContractError reports a misuse of the cursor by a grammar rule. It is a
// programming error, never caused by the input, and is not recovered.
type ContractError struct {
	Index  int
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("parser contract violation: %s (token index %d)", e.Reason, e.Index)
}

// bailout carries a fatal parse diagnostic up to Parse.
type bailout struct {
	diag *diag.Diagnostic
}

// next returns the index of the next token that matters to a probe for tt.
// Whitespace and comments are always skipped, newlines unless tt is the
// newline type itself. It returns false once the stream is exhausted.
func (p *Parser) next(tt lexer.TokenType) (int, bool) {
	tokens := p.module.Tokens
	for i := p.pos; i < len(tokens); i++ {
		switch tokens[i].Type {
		case lexer.TokenWhitespace, lexer.TokenComment:
			continue
		case lexer.TokenNewline:
			if tt != lexer.TokenNewline {
				continue
			}
		}
		return i, true
	}
	return 0, false
}

// try records tt as attempted and returns the index of the next relevant
// token if it has type tt. It never moves the cursor.
func (p *Parser) try(tt lexer.TokenType) (int, bool) {
	p.attempt(tt)

	i, ok := p.next(tt)
	if !ok || p.module.Tokens[i].Type != tt {
		return 0, false
	}
	return i, true
}

func (p *Parser) attempt(tt lexer.TokenType) {
	for _, seen := range p.tried {
		if seen == tt {
			return
		}
	}
	p.tried = append(p.tried, tt)
}

// consume moves the cursor past token index i and clears the attempted
// kinds. Trivia skipped on the way stays in the stream untouched.
func (p *Parser) consume(i int) *lexer.Token {
	if i < 0 || i >= len(p.module.Tokens) {
		panic(&ContractError{Index: i, Reason: "token not part of the parsed module"})
	}
	if i < p.pos {
		panic(&ContractError{Index: i, Reason: "token already consumed"})
	}

	p.pos = i + 1
	p.last = i
	p.tried = p.tried[:0]
	return &p.module.Tokens[i]
}

// tryConsume consumes the next relevant token if it has type tt.
func (p *Parser) tryConsume(tt lexer.TokenType) (*lexer.Token, bool) {
	i, ok := p.try(tt)
	if !ok {
		return nil, false
	}
	return p.consume(i), true
}

// consumeType consumes the next relevant token, which must have type tt.
func (p *Parser) consumeType(tt lexer.TokenType) *lexer.Token {
	tok, ok := p.tryConsume(tt)
	if !ok {
		p.fail("")
	}
	return tok
}

// fail aborts the parse with a diagnostic built from the attempted kinds.
// The location is the next non-trivia token.
func (p *Parser) fail(message string) {
	offset := len(p.module.Source)
	if i, ok := p.next(lexer.TokenEOF); ok {
		offset = p.module.Tokens[i].Span.Start
	}

	d := diag.At(p.module, offset, message)
	for _, tt := range p.tried {
		d.Expected = append(d.Expected, tt.Desc())
	}
	d.After = "start of file"
	if p.last >= 0 {
		d.After = p.module.Tokens[p.last].Dump(p.module.Source)
	}

	panic(bailout{diag: d})
}

// spanFrom returns the span from start to the end of the last consumed token.
func (p *Parser) spanFrom(start lexer.Span) lexer.Span {
	if p.last < 0 {
		return start
	}
	return start.Cover(p.module.Tokens[p.last].Span)
}

// text returns the source text of a token.
func (p *Parser) text(tok *lexer.Token) string {
	return tok.Text(p.module.Source)
}

// loc is a shorthand for building node locations.
func loc(span lexer.Span) ast.Loc {
	return ast.Loc{Range: span}
}
