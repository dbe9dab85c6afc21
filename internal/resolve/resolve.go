// Package resolve turns the flat operator chains left by the parser into
// trees of binary operations.
//
// The parser only delimits a chain such as `a + b * c` and stores it as an
// *ast.UOps node. Resolve ranks the operators by precedence and
// associativity and replaces every chain with nested *ast.Binary nodes. The
// input tree is not modified; a new tree is returned.
package resolve

import (
	"fmt"

	"github.com/hassan/bootc/internal/lexer"
	"github.com/hassan/bootc/internal/parser/ast"
)

// Error reports a chain that cannot be resolved.
type Error struct {
	Span    lexer.Span
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// Resolve returns a copy of the tree rooted at n with every operator chain
// resolved.
func Resolve(n ast.Node) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.Ident:
		leaf := *n
		return &leaf, nil

	case *ast.IntLit:
		leaf := *n
		return &leaf, nil

	case *ast.StrLit:
		leaf := *n
		return &leaf, nil

	case *ast.Binary:
		left, err := Resolve(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Resolve(n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Loc: n.Loc, Op: n.Op, Left: left, Right: right}, nil

	case *ast.Unary:
		arg, err := Resolve(n.Arg)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Loc: n.Loc, Op: n.Op, Arg: arg}, nil

	case *ast.Call:
		target, args, err := resolveTarget(n.Target, n.Args)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Loc: n.Loc, Target: target, Args: args}, nil

	case *ast.Index:
		target, args, err := resolveTarget(n.Target, n.Args)
		if err != nil {
			return nil, err
		}
		return &ast.Index{Loc: n.Loc, Target: target, Args: args}, nil

	case *ast.Member:
		aggregate, err := Resolve(n.Aggregate)
		if err != nil {
			return nil, err
		}
		return &ast.Member{Loc: n.Loc, Aggregate: aggregate, Name: n.Name, NameRange: n.NameRange}, nil

	case *ast.UOps:
		return resolveChain(n)

	case *ast.Scope:
		stmts, err := resolveList(n.Stmts)
		if err != nil {
			return nil, err
		}
		return &ast.Scope{Loc: n.Loc, Stmts: stmts}, nil

	case *ast.While:
		cond, err := Resolve(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := resolveList(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.While{Loc: n.Loc, Cond: cond, Body: body}, nil

	case *ast.If:
		cond, err := Resolve(n.Cond)
		if err != nil {
			return nil, err
		}
		trueCase, err := resolveList(n.True)
		if err != nil {
			return nil, err
		}
		falseCase, err := resolveList(n.False)
		if err != nil {
			return nil, err
		}
		return &ast.If{Loc: n.Loc, Cond: cond, True: trueCase, False: falseCase}, nil

	default:
		return nil, fmt.Errorf("resolve: unexpected node %T", n)
	}
}

func resolveTarget(target ast.Node, args []ast.Node) (ast.Node, []ast.Node, error) {
	target, err := Resolve(target)
	if err != nil {
		return nil, nil, err
	}
	args, err = resolveList(args)
	if err != nil {
		return nil, nil, err
	}
	return target, args, nil
}

func resolveList(nodes []ast.Node) ([]ast.Node, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		resolved, err := Resolve(n)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

// chain is a UOps list split into operands and the operators between them:
// ops[i] sits between operands[i] and operands[i+1].
type chain struct {
	operands []ast.Node
	ops      []lexer.Operator
	pos      int
}

func resolveChain(n *ast.UOps) (ast.Node, error) {
	if len(n.List)%2 == 0 {
		return nil, &Error{Span: n.Span(), Message: fmt.Sprintf("operator chain has even length %d", len(n.List))}
	}

	operators := n.Operators()
	if len(operators) != len(n.List)/2 {
		for i := 1; i < len(n.List); i += 2 {
			if _, ok := n.List[i].(*ast.Ident); !ok {
				return nil, &Error{Span: n.List[i].Span(), Message: fmt.Sprintf("operator position holds %T", n.List[i])}
			}
		}
	}

	c := &chain{}
	for _, ident := range operators {
		op, err := Operator(ident.Name)
		if err != nil {
			return nil, &Error{Span: ident.Span(), Message: err.Error()}
		}
		c.ops = append(c.ops, op)
	}
	for _, item := range n.Operands() {
		operand, err := Resolve(item)
		if err != nil {
			return nil, err
		}
		c.operands = append(c.operands, operand)
	}

	return c.expr(PrecAssignment), nil
}

// expr is precedence climbing over the chain: it consumes operators of at
// least minPrec and returns the tree built from them.
func (c *chain) expr(minPrec Precedence) ast.Node {
	left := c.operands[c.pos]

	for c.pos < len(c.ops) {
		op := c.ops[c.pos]
		prec := precedenceOf(op)
		if prec < minPrec {
			break
		}
		c.pos++

		next := prec + 1
		if isRightAssociative(op) {
			next = prec
		}
		right := c.expr(next)

		left = &ast.Binary{
			Loc:   ast.Loc{Range: left.Span().Cover(right.Span())},
			Op:    op,
			Left:  left,
			Right: right,
		}
	}

	return left
}

// Operator returns the binary operator spelled by name: an entry of the
// binary operator table, or a named operator when name is an identifier.
func Operator(name string) (lexer.Operator, error) {
	if op, ok := lexer.BinaryOpBySpelling(name); ok {
		return op, nil
	}

	tokens, errs := lexer.Tokenize(name)
	if errs != 0 || len(tokens) != 2 || tokens[0].Type != lexer.TokenIdentifier {
		return lexer.Operator{}, fmt.Errorf("unknown binary operator %q", name)
	}
	return lexer.Operator{
		Token:    lexer.TokenIdentifier,
		ID:       lexer.OpNamed,
		Name:     name,
		Spelling: name,
	}, nil
}
