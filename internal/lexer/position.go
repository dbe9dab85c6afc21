// Package lexer provides lexical analysis (tokenization) functionality for the compiler.
// It transforms raw source text into a lossless stream of tokens that can be consumed by the parser.
package lexer

import (
	"strconv"
)

// Span is a non-owning byte range of the source buffer.
//
// Start is the 0-based byte offset of the first byte, Len the number of
// bytes. Token spans of one stream are contiguous: each span starts where the
// previous one ended.
type Span struct {
	Start int
	Len   int
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Contains returns true if the given offset is within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End()
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	start, end := s.Start, s.End()
	if other.Start < start {
		start = other.Start
	}
	if other.End() > end {
		end = other.End()
	}
	return Span{Start: start, Len: end - start}
}

// String returns the span as "start+len", e.g. "12+3".
func (s Span) String() string {
	return strconv.Itoa(s.Start) + "+" + strconv.Itoa(s.Len)
}

// Position represents a location in the source code.
//
// Positions are derived from offsets on demand (see module.Module); tokens
// only store spans.
type Position struct {
	// Filename is the name of the source file.
	Filename string

	// Line is the 1-based line number. Zero means "no position".
	Line int

	// Column is the 0-based byte column within the line.
	Column int

	// Offset is the 0-based byte offset from the start of the file.
	Offset int
}

// String returns a human-readable representation of the position.
// Format: "filename:line:column"
// Example: "main.b:42:15"
func (p Position) String() string {
	return p.Filename + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsValid reports whether p points into a source line. Lines start at 1, so
// the zero Position is not valid.
func (p Position) IsValid() bool {
	return p.Line > 0
}
