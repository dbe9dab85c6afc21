// Package module holds one compiled unit: its filename, its source text and
// the token stream produced from it.
//
// A Module is built once by New and never changes afterwards. Tokens and AST
// nodes refer into it by span, so it must outlive both.
package module

import (
	"fmt"
	"os"
	"sort"

	"github.com/hassan/bootc/internal/lexer"
)

// Module is a tokenized source unit.
type Module struct {
	// Filename is the name used in diagnostics.
	Filename string

	// Source is the complete source text.
	Source string

	// Tokens is the finished, lossless token stream. It ends with TokenEOF.
	Tokens []lexer.Token

	// ErrorCount is the number of lexical errors, nested ones included.
	ErrorCount int

	// lineStarts holds the offset of the first byte of every line.
	lineStarts []int
}

// New tokenizes source and returns the resulting module.
func New(filename, source string) *Module {
	tokens, errors := lexer.Tokenize(source)

	lineStarts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &Module{
		Filename:   filename,
		Source:     source,
		Tokens:     tokens,
		ErrorCount: errors,
		lineStarts: lineStarts,
	}
}

// ReadFile loads path from disk and tokenizes it.
func ReadFile(path string) (*Module, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return New(path, string(source)), nil
}

// Text returns the source text covered by span.
func (m *Module) Text(span lexer.Span) string {
	return m.Source[span.Start:span.End()]
}

// Position returns the 1-based line and 0-based column of a byte offset.
// Offsets past the end are clamped to the end of the source.
func (m *Module) Position(offset int) lexer.Position {
	if offset > len(m.Source) {
		offset = len(m.Source)
	}
	if offset < 0 {
		offset = 0
	}

	// The line is the last line start that is <= offset.
	line := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	})

	return lexer.Position{
		Filename: m.Filename,
		Line:     line,
		Column:   offset - m.lineStarts[line-1],
		Offset:   offset,
	}
}

// TokenPosition returns the position of the first byte of token index i.
func (m *Module) TokenPosition(i int) lexer.Position {
	return m.Position(m.Tokens[i].Span.Start)
}

// LineCount returns the number of lines of the source. An empty source has
// one (empty) line.
func (m *Module) LineCount() int {
	return len(m.lineStarts)
}

// Line returns the text of the 1-based line n without its line terminator.
func (m *Module) Line(n int) string {
	if n < 1 || n > m.LineCount() {
		return ""
	}

	start := m.lineStarts[n-1]
	end := len(m.Source)
	if n < m.LineCount() {
		end = m.lineStarts[n] - 1
	}
	if end > start && m.Source[end-1] == '\r' {
		end--
	}
	return m.Source[start:end]
}

// Errors returns every lexical error token in source order, including the
// ones nested inside string literals.
func (m *Module) Errors() []lexer.Token {
	errs := make([]lexer.Token, 0, m.ErrorCount)
	for _, token := range m.Tokens {
		if token.Type == lexer.TokenError {
			errs = append(errs, token)
		}
		errs = append(errs, token.Nested...)
	}
	return errs
}
