package diag

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hassan/bootc/internal/module"
)

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "expected set with after",
			diag:     Diagnostic{Filename: "a.b", Line: 1, Column: 4, Expected: []string{"'do'", "'{'", "newline"}, After: `ID "x"`},
			expected: `a.b:1:4: expected 'do', '{', newline after ID "x"`,
		},
		{
			name:     "message and expected set",
			diag:     Diagnostic{Filename: "a.b", Line: 2, Column: 0, Message: "while needs a block as body", Expected: []string{"'do'"}, After: "start of file"},
			expected: "a.b:2:0: while needs a block as body: expected 'do' after start of file",
		},
		{
			name:     "message only",
			diag:     Diagnostic{Filename: "a.b", Line: 3, Column: 7, Message: "stray character in source code"},
			expected: "a.b:3:7: stray character in source code",
		},
		{
			name:     "message and after",
			diag:     Diagnostic{Filename: "a.b", Line: 1, Column: 1, Message: "expected statement", After: "'{'"},
			expected: "a.b:1:1: expected statement after '{'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.diag.Error()
			if result != tt.expected {
				t.Errorf("Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDiagnostic_IsError(t *testing.T) {
	var err error = &Diagnostic{Filename: "f", Line: 1, Message: "boom"}

	var d *Diagnostic
	if !errors.As(err, &d) {
		t.Fatal("errors.As() did not find *Diagnostic")
	}
	if d.Position().String() != "f:1:0" {
		t.Errorf("Position() = %v, want f:1:0", d.Position())
	}
}

func TestDiagnostic_Excerpt(t *testing.T) {
	d := Diagnostic{Line: 1, SourceLine: "\tx = ?", Column: 5}
	expected := "\tx = ?\n\t    ^"
	if result := d.Excerpt(); result != expected {
		t.Errorf("Excerpt() = %q, want %q", result, expected)
	}

	blank := Diagnostic{Line: 3}
	if result := blank.Excerpt(); result != "\n^" {
		t.Errorf("Excerpt() on a blank line = %q, want %q", result, "\n^")
	}

	nowhere := Diagnostic{Column: 4, SourceLine: "x"}
	if result := nowhere.Excerpt(); result != "" {
		t.Errorf("Excerpt() without a line = %q, want empty", result)
	}
}

func TestFromToken(t *testing.T) {
	m := module.New("test.b", "x = 1\ny = $\n")
	errs := m.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() len = %d, want 1", len(errs))
	}

	d := FromToken(m, errs[0])
	if d.Line != 2 || d.Column != 4 {
		t.Errorf("position = %d:%d, want 2:4", d.Line, d.Column)
	}
	if d.Message != "stray character in source code" {
		t.Errorf("Message = %q", d.Message)
	}
	if d.SourceLine != "y = $" {
		t.Errorf("SourceLine = %q", d.SourceLine)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever, true)

	p.Report(&Diagnostic{
		Filename:   "t.b",
		Line:       1,
		Column:     6,
		Expected:   []string{"'do'", "'{'", "newline"},
		After:      `ID "x"`,
		SourceLine: "while x y",
	})

	expected := "t.b:1:6: expected 'do', '{', newline after ID \"x\"\nwhile x y\n      ^\n"
	if buf.String() != expected {
		t.Errorf("Report() wrote %q, want %q", buf.String(), expected)
	}
	if p.Err() != nil {
		t.Errorf("Err() = %v, want nil", p.Err())
	}
}

func TestPrinter_NoContext(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever, false)

	d := &Diagnostic{Filename: "t.b", Line: 2, Column: 3, Message: "unterminated string", SourceLine: `a "b`}
	p.Report(d)

	if buf.String() != d.Error()+"\n" {
		t.Errorf("Report() wrote %q, want %q", buf.String(), d.Error()+"\n")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrinter_WriteError(t *testing.T) {
	p := NewPrinter(failingWriter{}, ColorNever, false)
	p.Report(&Diagnostic{Filename: "t.b", Line: 1, Message: "x"})
	p.Report(&Diagnostic{Filename: "t.b", Line: 2, Message: "y"})

	if p.Err() == nil || p.Err().Error() != "disk full" {
		t.Errorf("Err() = %v, want disk full", p.Err())
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorMode
		wantErr  bool
	}{
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{" never ", ColorNever, false},
		{"", ColorAuto, false},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseColorMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if result != tt.expected {
				t.Errorf("ParseColorMode(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Report(&Diagnostic{Message: "x"})
		}()
	}
	wg.Wait()

	if c.Len() != 8 {
		t.Errorf("Len() = %d, want 8", c.Len())
	}
	if len(c.Diagnostics()) != 8 {
		t.Errorf("Diagnostics() len = %d, want 8", len(c.Diagnostics()))
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", c.Len())
	}
}

func TestMulti(t *testing.T) {
	var a, b Collector
	var lines []string
	sink := Multi(&a, &b, Discard, SinkFunc(func(d *Diagnostic) {
		lines = append(lines, d.Error())
	}))

	sink.Report(&Diagnostic{Filename: "m", Line: 1, Message: "one"})

	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("collector lengths = %d, %d, want 1, 1", a.Len(), b.Len())
	}
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "one") {
		t.Errorf("func sink saw %v", lines)
	}
}
