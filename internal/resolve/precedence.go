package resolve

import (
	"github.com/hassan/bootc/internal/lexer"
)

// Precedence represents operator precedence levels.
//
// PRECEDENCE RULES (from lowest to highest):
// 1. Assignment (=, +=, -=, etc.)
// 2. Named operators (a max b)
// 3. Logical OR (||)
// 4. Logical AND (&&)
// 5. Equality (==, !=)
// 6. Comparison (<, <=, >, >=)
// 7. Bitwise OR (|)
// 8. Bitwise XOR (^)
// 9. Bitwise AND (&)
// 10. Shift (<<, >>)
// 11. Addition/Subtraction (+, -)
// 12. Multiplication/Division (*, /, %)
//
// Unary operators, calls, indexing and member access never reach this pass:
// the parser already binds them inside a single operand.
type Precedence int

const (
	PrecNone       Precedence = iota
	PrecAssignment            // =, +=, -=, etc.
	PrecNamed                 // identifiers in operator position
	PrecOr                    // ||
	PrecAnd                   // &&
	PrecEquality              // ==, !=
	PrecComparison            // <, <=, >, >=
	PrecBitOr                 // |
	PrecBitXor                // ^
	PrecBitAnd                // &
	PrecShift                 // <<, >>
	PrecTerm                  // +, -
	PrecFactor                // *, /, %
)

// precedenceOf returns the precedence level of a binary operator.
func precedenceOf(op lexer.Operator) Precedence {
	switch op.ID {
	case lexer.OpAssign,
		lexer.OpAddAssign,
		lexer.OpSubAssign,
		lexer.OpMulAssign,
		lexer.OpDivAssign,
		lexer.OpModAssign,
		lexer.OpShlAssign,
		lexer.OpShrAssign,
		lexer.OpBitAndAssign,
		lexer.OpBitOrAssign,
		lexer.OpBitXorAssign:
		return PrecAssignment

	case lexer.OpNamed:
		return PrecNamed

	case lexer.OpOr:
		return PrecOr

	case lexer.OpAnd:
		return PrecAnd

	case lexer.OpEqual, lexer.OpNotEqual:
		return PrecEquality

	case lexer.OpLess,
		lexer.OpLessEqual,
		lexer.OpGreater,
		lexer.OpGreaterEqual:
		return PrecComparison

	case lexer.OpBitOr:
		return PrecBitOr

	case lexer.OpBitXor:
		return PrecBitXor

	case lexer.OpBitAnd:
		return PrecBitAnd

	case lexer.OpShl, lexer.OpShr:
		return PrecShift

	case lexer.OpAdd, lexer.OpSub:
		return PrecTerm

	case lexer.OpMul, lexer.OpDiv, lexer.OpMod:
		return PrecFactor

	default:
		return PrecNone
	}
}

// isRightAssociative returns true if the operator is right-associative.
//
// ASSOCIATIVITY:
// - Left-associative: a + b + c = (a + b) + c
// - Right-associative: a = b = c = (a = (b = c))
//
// Only the assignment family is right-associative.
func isRightAssociative(op lexer.Operator) bool {
	return precedenceOf(op) == PrecAssignment
}
