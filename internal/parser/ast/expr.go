package ast

import (
	"github.com/hassan/bootc/internal/lexer"
)

// Expression nodes represent values and computations.

// Ident is a name: a variable reference, or an operator inside a UOps chain.
type Ident struct {
	Loc
	Name string
}

// IntLit is a decimal integer literal.
type IntLit struct {
	Loc
	Value uint64
}

// StrLit is a string literal. Value has its escape codes resolved.
type StrLit struct {
	Loc
	Value string
}

// Unary applies a prefix operator to one operand: -x, !x, ~x, +x.
type Unary struct {
	Loc
	Op  lexer.Operator
	Arg Node
}

// Call is a function call: Target(Args...).
type Call struct {
	Loc
	Target Node
	Args   []Node
}

// Index is an indexing operation: Target[Args...].
type Index struct {
	Loc
	Target Node
	Args   []Node
}

// Member is a member access: Aggregate.Name.
type Member struct {
	Loc
	Aggregate Node

	// Name is the member name; NameRange is where it appears in the source.
	Name      string
	NameRange lexer.Span
}

// UOps is an unresolved chain of binary operations.
//
// List alternates operands and operators: operand, op, operand, op, operand.
// Its length is always odd. Operators are *Ident nodes holding the operator
// spelling ("+", "<<=") or a plain identifier used as an operator ("max").
// Precedence is not applied here; see package resolve.
type UOps struct {
	Loc
	List []Node
}

// Operands returns the operand nodes of the chain.
func (u *UOps) Operands() []Node {
	operands := make([]Node, 0, len(u.List)/2+1)
	for i := 0; i < len(u.List); i += 2 {
		operands = append(operands, u.List[i])
	}
	return operands
}

// Operators returns the operator nodes of the chain. An operator position
// that does not hold an *Ident is skipped.
func (u *UOps) Operators() []*Ident {
	operators := make([]*Ident, 0, len(u.List)/2)
	for i := 1; i < len(u.List); i += 2 {
		if op, ok := u.List[i].(*Ident); ok {
			operators = append(operators, op)
		}
	}
	return operators
}

// Binary is a resolved binary operation. The parser never produces it; it is
// the output of the operator resolution pass.
type Binary struct {
	Loc
	Op    lexer.Operator
	Left  Node
	Right Node
}
