package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hassan/bootc/internal/diag"
	"github.com/hassan/bootc/internal/module"
	"github.com/hassan/bootc/internal/parser"
	"github.com/hassan/bootc/internal/parser/ast"
	"github.com/hassan/bootc/internal/resolve"
)

// compileOptions selects what compile does after tokenizing.
type compileOptions struct {
	rule    parser.Rule
	program bool // rule is parser.Program
	resolve bool
}

// unit is the outcome of compiling one file.
type unit struct {
	path    string
	mod     *module.Module
	node    ast.Node // nil when parsing failed
	program bool
	diags   []*diag.Diagnostic
}

func (u *unit) failed() bool {
	return len(u.diags) > 0
}

// options returns the compile options from the configuration, overridden by
// the command's --rule and --resolve flags when they were given.
func (a *app) options(rule string, resolveSet bool, resolveFlag bool) (compileOptions, error) {
	if rule == "" {
		rule = a.cfg.Parser.Rule
	}
	r, ok := parser.RuleByName(rule)
	if !ok {
		return compileOptions{}, fmt.Errorf("unknown rule %q", rule)
	}

	opts := compileOptions{rule: r, program: rule == "program", resolve: a.cfg.Parser.ResolveOperators}
	if resolveSet {
		opts.resolve = resolveFlag
	}
	return opts, nil
}

// compile reads, tokenizes and parses one file. Lexical and syntax errors end
// up in the unit's diagnostics; only I/O errors are returned.
func (a *app) compile(path string, opts compileOptions) (*unit, error) {
	start := time.Now()

	m, err := module.ReadFile(path)
	if err != nil {
		return nil, err
	}
	u := &unit{path: path, mod: m, program: opts.program}

	var collected diag.Collector
	sink := diag.Multi(&collected, diag.SinkFunc(func(d *diag.Diagnostic) {
		a.logger.Debug("diagnostic", "file", path, "pos", d.Position(), "msg", d.Header())
	}))
	for _, tok := range m.Errors() {
		sink.Report(diag.FromToken(m, tok))
	}

	node, err := parser.Parse(m, opts.rule, sink)
	if err == nil && opts.resolve {
		node, err = resolve.Resolve(node)
		var resolveErr *resolve.Error
		if errors.As(err, &resolveErr) {
			sink.Report(diag.At(m, resolveErr.Span.Start, resolveErr.Message))
		} else if err != nil {
			return nil, err
		}
	}
	if err == nil {
		u.node = node
	}
	u.diags = collected.Diagnostics()

	a.logger.Info("compiled",
		"file", path,
		"tokens", len(m.Tokens),
		"lexical_errors", m.ErrorCount,
		"diagnostics", len(u.diags),
		"elapsed", time.Since(start),
	)
	if u.node != nil {
		a.logger.Debug("syntax tree", "file", path, "nodes", ast.Count(u.node))
	}
	return u, nil
}

// emit prints the diagnostics of u to p and its syntax tree to w. With
// header set the tree is preceded by the file name. A program is printed one
// top-level statement per line.
func emit(w io.Writer, p *diag.Printer, u *unit, header bool) error {
	for _, d := range u.diags {
		p.Report(d)
	}
	if err := p.Err(); err != nil {
		return err
	}
	if u.node == nil {
		return nil
	}

	if header {
		if _, err := fmt.Fprintf(w, "== %s ==\n", u.path); err != nil {
			return err
		}
	}
	nodes := []ast.Node{u.node}
	if scope, ok := u.node.(*ast.Scope); ok && u.program {
		nodes = scope.Stmts
	}
	return ast.Fprint(w, nodes...)
}
