package diag

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when a Printer emits ANSI styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // style only when the writer is a terminal
	ColorAlways ColorMode = "always" // always style
	ColorNever  ColorMode = "never"  // plain text
)

// ParseColorMode converts a configuration string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Printer is a Sink that writes diagnostics as text.
type Printer struct {
	mu      sync.Mutex
	w       io.Writer
	context bool
	err     error

	location lipgloss.Style
	message  lipgloss.Style
	expected lipgloss.Style
	caret    lipgloss.Style
}

// NewPrinter returns a Printer writing to w. When context is set, every
// diagnostic is followed by the source line and a caret under the column.
func NewPrinter(w io.Writer, mode ColorMode, context bool) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		context:  context,
		location: r.NewStyle().Bold(true),
		message:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		expected: r.NewStyle().Foreground(lipgloss.Color("11")),
		caret:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

// Report implements Sink. Write errors are remembered and returned by Err.
func (p *Printer) Report(d *Diagnostic) {
	text := p.Format(d)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, text)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Format renders d the way Report writes it, including the trailing newline.
func (p *Printer) Format(d *Diagnostic) string {
	var b strings.Builder

	b.WriteString(p.location.Render(fmt.Sprintf("%s:%d:%d:", d.Filename, d.Line, d.Column)))
	b.WriteByte(' ')

	// The header is rendered in pieces so every part can carry its own style.
	if d.Message != "" {
		b.WriteString(p.message.Render(d.Message))
		if len(d.Expected) > 0 {
			b.WriteString(": ")
		}
	}
	if len(d.Expected) > 0 {
		b.WriteString("expected ")
		b.WriteString(p.expected.Render(strings.Join(d.Expected, ", ")))
	}
	if d.After != "" {
		if d.Message != "" || len(d.Expected) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("after ")
		b.WriteString(d.After)
	}
	b.WriteByte('\n')

	if p.context {
		if excerpt := d.Excerpt(); excerpt != "" {
			line, caret, _ := strings.Cut(excerpt, "\n")
			b.WriteString(line)
			b.WriteByte('\n')
			// Only the caret itself is styled; lipgloss would expand the tabs
			// of the padding.
			b.WriteString(strings.TrimSuffix(caret, "^"))
			b.WriteString(p.caret.Render("^"))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
