package resolve

import (
	"errors"
	"testing"

	"github.com/hassan/bootc/internal/lexer"
	"github.com/hassan/bootc/internal/module"
	"github.com/hassan/bootc/internal/parser"
	"github.com/hassan/bootc/internal/parser/ast"
)

func TestPrecedenceOf(t *testing.T) {
	tests := []struct {
		name     string
		spelling string
		expected Precedence
	}{
		// Assignment (lowest)
		{"assign", "=", PrecAssignment},
		{"plus equals", "+=", PrecAssignment},
		{"shift left equals", "<<=", PrecAssignment},
		{"xor equals", "^=", PrecAssignment},

		// Named
		{"named", "max", PrecNamed},

		{"logical or", "||", PrecOr},
		{"logical and", "&&", PrecAnd},

		{"equal", "==", PrecEquality},
		{"not equal", "!=", PrecEquality},

		{"less than", "<", PrecComparison},
		{"greater equal", ">=", PrecComparison},

		{"bit or", "|", PrecBitOr},
		{"bit xor", "^", PrecBitXor},
		{"bit and", "&", PrecBitAnd},

		{"shift left", "<<", PrecShift},
		{"shift right", ">>", PrecShift},

		{"plus", "+", PrecTerm},
		{"minus", "-", PrecTerm},

		// Factor (highest)
		{"star", "*", PrecFactor},
		{"slash", "/", PrecFactor},
		{"percent", "%", PrecFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Operator(tt.spelling)
			if err != nil {
				t.Fatalf("Operator(%q) error = %v", tt.spelling, err)
			}
			result := precedenceOf(op)
			if result != tt.expected {
				t.Errorf("precedenceOf(%q) = %v, want %v", tt.spelling, result, tt.expected)
			}
		})
	}

	if p := precedenceOf(lexer.Operator{ID: lexer.OpNeg}); p != PrecNone {
		t.Errorf("precedenceOf(neg) = %v, want PrecNone", p)
	}
}

func TestIsRightAssociative(t *testing.T) {
	for _, op := range lexer.BinaryOps {
		want := op.Name == "assign" || len(op.Name) > len("_assign") && op.Name[len(op.Name)-len("_assign"):] == "_assign"
		if got := isRightAssociative(op); got != want {
			t.Errorf("isRightAssociative(%q) = %v, want %v", op.Spelling, got, want)
		}
	}
}

func resolveSource(t *testing.T, rule parser.Rule, source string) ast.Node {
	t.Helper()
	node, err := parser.Parse(module.New("t.b", source), rule, nil)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", source, err)
	}
	resolved, err := Resolve(node)
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", source, err)
	}
	return resolved
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		rule     parser.Rule
		input    string
		expected string
	}{
		{"single operand", parser.Expr, "a", "a"},
		{"factor over term", parser.Expr, "a + b * c", "(+ a (* b c))"},
		{"term before factor", parser.Expr, "a * b + c", "(+ (* a b) c)"},
		{"left associative", parser.Expr, "a - b - c", "(- (- a b) c)"},
		{"right associative assignment", parser.Expr, "a = b = c", "(= a (= b c))"},
		{"compound assignment", parser.Expr, "x += y * 2", "(+= x (* y 2))"},
		{"unary operand", parser.Expr, "-a+b*c/d", "(+ (- a) (/ (* b c) d))"},
		{"named operator", parser.Expr, "a max b + c", "(max a (+ b c))"},
		{"named below assignment", parser.Expr, "x = a max b", "(= x (max a b))"},
		{"named left associative", parser.Expr, "a max b min c", "(min (max a b) c)"},
		{"logical", parser.Expr, "a || b && c == d", "(|| a (&& b (== c d)))"},
		{
			"full ladder",
			parser.Expr,
			"a == b < c | d ^ e & f << g + h * i",
			"(== a (< b (| c (^ d (& e (<< f (+ g (* h i))))))))",
		},
		{"parenthesised", parser.Expr, "(a + b) * c", "(* (+ a b) c)"},
		{"call arguments", parser.Expr, "f(a + b * c, d)", "(call f (+ a (* b c)) d)"},
		{"index and member", parser.Expr, "a[i + 1].m", "(member (index a (+ i 1)) m)"},
		{"unary argument", parser.Expr, "-(a + b)", "(- (+ a b))"},
		{
			"statements",
			parser.Program,
			"while i < n * 2 do\n  i = i + 1\nend\nif a == b { c = 1 } else { c = 2 }\n",
			"(scope (while (< i (* n 2)) ((= i (+ i 1)))) (if (== a b) ((= c 1)) ((= c 2))))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ast.String(resolveSource(t, tt.rule, tt.input))
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolve_NoChainsLeft(t *testing.T) {
	node := resolveSource(t, parser.Program, "x = f(a + b)[c * d].e - -g\ny = (1 + 2) max 3\n")

	ast.Inspect(node, func(n ast.Node) bool {
		if _, ok := n.(*ast.UOps); ok {
			t.Errorf("found unresolved chain %s", ast.String(n))
		}
		return true
	})
}

func TestResolve_DoesNotModifyInput(t *testing.T) {
	node, err := parser.Parse(module.New("t.b", "a + b * c"), parser.Expr, nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	before := ast.String(node)

	if _, err := Resolve(node); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if after := ast.String(node); after != before {
		t.Errorf("input changed from %v to %v", before, after)
	}
}

func TestResolve_Spans(t *testing.T) {
	node := resolveSource(t, parser.Expr, "a + b * c")

	bin := node.(*ast.Binary)
	if bin.Span().String() != "0+9" {
		t.Errorf("outer Span() = %v, want 0+9", bin.Span())
	}
	if right := bin.Right.(*ast.Binary); right.Span().String() != "4+5" {
		t.Errorf("inner Span() = %v, want 4+5", right.Span())
	}
}

func TestResolve_ErrorPointsAtOperator(t *testing.T) {
	chain := &ast.UOps{List: []ast.Node{
		&ast.Ident{Name: "a", Loc: ast.Loc{Range: lexer.Span{Start: 0, Len: 1}}},
		&ast.IntLit{Value: 1, Loc: ast.Loc{Range: lexer.Span{Start: 2, Len: 1}}},
		&ast.Ident{Name: "b", Loc: ast.Loc{Range: lexer.Span{Start: 4, Len: 1}}},
	}}

	_, err := Resolve(chain)
	var resolveErr *Error
	if !errors.As(err, &resolveErr) {
		t.Fatalf("Resolve() error = %v, want *Error", err)
	}
	if resolveErr.Span != (lexer.Span{Start: 2, Len: 1}) {
		t.Errorf("Error.Span = %v, want 2+1", resolveErr.Span)
	}
}

func TestResolve_Errors(t *testing.T) {
	id := func(name string) *ast.Ident { return &ast.Ident{Name: name} }

	tests := []struct {
		name string
		node ast.Node
	}{
		{"even length", &ast.UOps{List: []ast.Node{id("a"), id("+")}}},
		{"operator is not an identifier", &ast.UOps{List: []ast.Node{id("a"), &ast.IntLit{Value: 1}, id("b")}}},
		{"unknown operator", &ast.UOps{List: []ast.Node{id("a"), id("!"), id("b")}}},
		{"nested in scope", &ast.Scope{Stmts: []ast.Node{&ast.UOps{List: []ast.Node{id("a"), id("?"), id("b")}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.node)
			var resolveErr *Error
			if !errors.As(err, &resolveErr) {
				t.Errorf("Resolve() error = %v, want *Error", err)
			}
		})
	}
}

func TestOperator(t *testing.T) {
	op, err := Operator("<<=")
	if err != nil || op.ID != lexer.OpShlAssign {
		t.Errorf("Operator(<<=) = %v, %v, want shl_assign", op, err)
	}

	op, err = Operator("max")
	if err != nil || op.ID != lexer.OpNamed || op.Spelling != "max" {
		t.Errorf("Operator(max) = %v, %v, want named max", op, err)
	}

	for _, bad := range []string{"", "!", "1x", "a b", "while"} {
		if _, err := Operator(bad); err == nil {
			t.Errorf("Operator(%q) error = nil, want error", bad)
		}
	}
}
