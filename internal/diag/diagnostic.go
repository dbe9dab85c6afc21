// Package diag carries compiler diagnostics from the lexer and parser to
// their destination.
//
// A Diagnostic is a plain record. Where it goes is decided by a Sink, which
// the caller hands to the parser explicitly: a Printer writes styled text to
// a terminal or file, a Collector keeps diagnostics in memory, and Discard
// drops them.
package diag

import (
	"fmt"
	"strings"

	"github.com/hassan/bootc/internal/lexer"
	"github.com/hassan/bootc/internal/module"
)

// Diagnostic is a single error report tied to a source location.
//
// It renders as
//
//	file:line:col: [message: ]expected k1, k2 after <token>
//
// followed by an excerpt of the offending source line.
type Diagnostic struct {
	Filename string
	Line     int // 1-based
	Column   int // 0-based byte column

	// Message is a free-form description; may be empty when Expected says it all.
	Message string

	// Expected lists human-readable token kinds that would have been accepted.
	Expected []string

	// After describes the last token accepted before the error.
	After string

	// SourceLine is the text of the line at Line, used for the excerpt.
	SourceLine string
}

// At builds a diagnostic for a byte offset in m.
func At(m *module.Module, offset int, message string) *Diagnostic {
	pos := m.Position(offset)
	return &Diagnostic{
		Filename:   pos.Filename,
		Line:       pos.Line,
		Column:     pos.Column,
		Message:    message,
		SourceLine: m.Line(pos.Line),
	}
}

// FromToken turns a lexical error token into a diagnostic.
func FromToken(m *module.Module, tok lexer.Token) *Diagnostic {
	message := tok.Message
	if message == "" {
		message = "unexpected " + tok.Type.Desc()
	}
	return At(m, tok.Span.Start, message)
}

// Position returns the location of the diagnostic.
func (d *Diagnostic) Position() lexer.Position {
	return lexer.Position{Filename: d.Filename, Line: d.Line, Column: d.Column}
}

// Header returns the message without the location prefix or excerpt.
func (d *Diagnostic) Header() string {
	var b strings.Builder
	b.WriteString(d.Message)

	if len(d.Expected) > 0 {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString("expected ")
		b.WriteString(strings.Join(d.Expected, ", "))
	}

	if d.After != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("after ")
		b.WriteString(d.After)
	}
	return b.String()
}

// Error implements the error interface with the single-line form.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Filename, d.Line, d.Column, d.Header())
}

// Excerpt returns the source line followed by a caret under the column.
// Tabs before the column are kept so the caret lines up in a terminal.
// It returns "" when the diagnostic has no line.
func (d *Diagnostic) Excerpt() string {
	if !d.Position().IsValid() {
		return ""
	}

	var caret strings.Builder
	for i := 0; i < d.Column; i++ {
		if i < len(d.SourceLine) && d.SourceLine[i] == '\t' {
			caret.WriteByte('\t')
		} else {
			caret.WriteByte(' ')
		}
	}
	caret.WriteByte('^')
	return d.SourceLine + "\n" + caret.String()
}
