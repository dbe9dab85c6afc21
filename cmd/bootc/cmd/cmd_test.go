package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hassan/bootc/internal/config"
	"github.com/hassan/bootc/internal/parser"
)

// run executes the command line with args and a plain-text config.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "bootc.toml")
	cfg := "[diagnostics]\ncolor = \"never\"\ncontext = false\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "main.b", "x = a + b * c\nwhile x do y end\n")

	stdout, stderr, err := run(t, "parse", path)
	if err != nil {
		t.Fatalf("parse error = %v, stderr %q", err, stderr)
	}
	expected := "(uops x = a + b * c)\n(while x (y))\n"
	if stdout != expected {
		t.Errorf("parse output = %q, want %q", stdout, expected)
	}
}

func TestParseCommand_Resolve(t *testing.T) {
	path := writeSource(t, "main.b", "x = a + b * c\n")

	stdout, _, err := run(t, "parse", "--resolve", path)
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if stdout != "(= x (+ a (* b c)))\n" {
		t.Errorf("parse output = %q", stdout)
	}
}

func TestParseCommand_Rule(t *testing.T) {
	path := writeSource(t, "expr.b", "f(x)[1]")

	stdout, _, err := run(t, "parse", "--rule", "cexpr", path)
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if stdout != "(index (call f x) 1)\n" {
		t.Errorf("parse output = %q", stdout)
	}

	if _, _, err := run(t, "parse", "--rule", "module", path); err == nil || errors.Is(err, ErrFailed) {
		t.Errorf("unknown rule error = %v, want a usage error", err)
	}
}

func TestParseCommand_StmtRuleKeepsBlock(t *testing.T) {
	path := writeSource(t, "block.b", "{ a; b }")

	stdout, _, err := run(t, "parse", "--rule", "stmt", path)
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if stdout != "(scope a b)\n" {
		t.Errorf("parse output = %q, want %q", stdout, "(scope a b)\n")
	}
}

func TestParseCommand_MultipleFiles(t *testing.T) {
	good := writeSource(t, "good.b", "a\n")
	bad := writeSource(t, "bad.b", "while x")
	other := writeSource(t, "other.b", "b\n")

	stdout, stderr, err := run(t, "parse", good, bad, other)
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("parse error = %v, want ErrFailed", err)
	}

	expected := "== " + good + " ==\na\n== " + other + " ==\nb\n"
	if stdout != expected {
		t.Errorf("parse output = %q, want %q", stdout, expected)
	}
	if !strings.Contains(stderr, bad+":1:7: while needs a block as body") {
		t.Errorf("stderr = %q, want the while diagnostic", stderr)
	}
}

func TestParseCommand_LexicalError(t *testing.T) {
	path := writeSource(t, "lex.b", `print("a\q")`+"\n")

	stdout, stderr, err := run(t, "parse", path)
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("parse error = %v, want ErrFailed", err)
	}
	if !strings.Contains(stderr, path+":1:8: unknown escape code in string") {
		t.Errorf("stderr = %q, want the escape diagnostic", stderr)
	}
	// The string is still a complete token, so the tree is printed.
	if stdout != "(call print \"a\")\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestParseCommand_MissingFile(t *testing.T) {
	_, _, err := run(t, "parse", filepath.Join(t.TempDir(), "missing.b"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("parse error = %v, want os.ErrNotExist", err)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "t.b", "x = 1 // c\n")

	stdout, _, err := run(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}
	expected := "1:0\tID \"x\"\n1:2\t'='\n1:4\tINT 1\n2:0\tEOF\n"
	if stdout != expected {
		t.Errorf("tokens output = %q, want %q", stdout, expected)
	}

	stdout, _, err = run(t, "tokens", "--trivia", path)
	if err != nil {
		t.Fatalf("tokens --trivia error = %v", err)
	}
	if !strings.Contains(stdout, "1:6\tCOMMENT \"// c\"\n") || !strings.Contains(stdout, "1:10\tWSNL \"\\n\"\n") {
		t.Errorf("tokens --trivia output = %q", stdout)
	}
}

func TestTokensCommand_Errors(t *testing.T) {
	path := writeSource(t, "t.b", "x $\n")

	stdout, stderr, err := run(t, "tokens", path)
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("tokens error = %v, want ErrFailed", err)
	}
	if !strings.Contains(stdout, "1:2\tERROR \"stray character in source code\"") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, path+":1:2: stray character in source code") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "bootc ") {
		t.Errorf("version output = %q", stdout)
	}

	if _, _, err := run(t, "version", "--check", ">= 999"); !errors.Is(err, ErrFailed) {
		t.Errorf("version --check error = %v, want ErrFailed", err)
	}
}

func TestConfigRulesAreParserRules(t *testing.T) {
	for _, name := range config.Rules {
		if _, ok := parser.RuleByName(name); !ok {
			t.Errorf("config rule %q has no parser rule", name)
		}
	}
}
