package lexer

// This file holds the static configuration data of the language: keyword
// spellings and the unary and binary operator tables. The lexer and parser
// only look entries up; nothing here is computed.

// OpID identifies an operator independently of the token that spells it.
type OpID int

const (
	OpNone OpID = iota

	// Unary operators
	OpPlus       // +x
	OpNeg        // -x
	OpNot        // !x
	OpComplement // ~x

	// Binary operators - Arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	// Binary operators - Shift
	OpShl
	OpShr

	// Binary operators - Comparison
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNotEqual

	// Binary operators - Bitwise
	OpBitAnd
	OpBitOr
	OpBitXor

	// Binary operators - Logical
	OpAnd
	OpOr

	// Binary operators - Assignment
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpShlAssign
	OpShrAssign
	OpBitAndAssign
	OpBitOrAssign
	OpBitXorAssign

	// OpNamed is an identifier used in operator position, e.g. `a max b`.
	// It never appears in the tables; later passes create it.
	OpNamed
)

// Operator is one entry of an operator table.
type Operator struct {
	// Token is the token type that spells the operator.
	Token TokenType

	// ID is the operator identity.
	ID OpID

	// Name is the declarative name of the operator, e.g. "add" or "neg".
	// For OpNamed it holds the identifier.
	Name string

	// Spelling is the source spelling, e.g. "+".
	Spelling string
}

var keywords = []struct {
	spelling  string
	tokenType TokenType
}{
	{"do", TokenDo},
	{"end", TokenEnd},
	{"if", TokenIf},
	{"else", TokenElse},
	{"while", TokenWhile},
}

// UnaryOps is the unary operator table, in the order the parser probes it.
var UnaryOps = []Operator{
	{TokenPlus, OpPlus, "plus", "+"},
	{TokenMinus, OpNeg, "neg", "-"},
	{TokenNot, OpNot, "not", "!"},
	{TokenBitNot, OpComplement, "compl", "~"},
}

// BinaryOps is the binary operator table, in the order the parser probes it.
var BinaryOps = []Operator{
	{TokenPlus, OpAdd, "add", "+"},
	{TokenMinus, OpSub, "sub", "-"},
	{TokenStar, OpMul, "mul", "*"},
	{TokenSlash, OpDiv, "div", "/"},
	{TokenPercent, OpMod, "mod", "%"},

	{TokenShl, OpShl, "shl", "<<"},
	{TokenShr, OpShr, "shr", ">>"},

	{TokenLess, OpLess, "lt", "<"},
	{TokenLessEqual, OpLessEqual, "le", "<="},
	{TokenGreater, OpGreater, "gt", ">"},
	{TokenGreaterEqual, OpGreaterEqual, "ge", ">="},
	{TokenEqual, OpEqual, "eq", "=="},
	{TokenNotEqual, OpNotEqual, "neq", "!="},

	{TokenBitAnd, OpBitAnd, "bin_and", "&"},
	{TokenBitOr, OpBitOr, "bin_or", "|"},
	{TokenBitXor, OpBitXor, "bin_xor", "^"},

	{TokenAnd, OpAnd, "and", "&&"},
	{TokenOr, OpOr, "or", "||"},

	{TokenAssign, OpAssign, "assign", "="},
	{TokenPlusEq, OpAddAssign, "add_assign", "+="},
	{TokenMinusEq, OpSubAssign, "sub_assign", "-="},
	{TokenStarEq, OpMulAssign, "mul_assign", "*="},
	{TokenSlashEq, OpDivAssign, "div_assign", "/="},
	{TokenPercentEq, OpModAssign, "mod_assign", "%="},
	{TokenShlEq, OpShlAssign, "shl_assign", "<<="},
	{TokenShrEq, OpShrAssign, "shr_assign", ">>="},
	{TokenAndEq, OpBitAndAssign, "bin_and_assign", "&="},
	{TokenOrEq, OpBitOrAssign, "bin_or_assign", "|="},
	{TokenXorEq, OpBitXorAssign, "bin_xor_assign", "^="},
}

// LookupKeyword checks if an identifier is actually a keyword.
// Returns the keyword token type if it is, or TokenIdentifier if not.
// The match is exact: same length, same bytes.
func LookupKeyword(identifier string) TokenType {
	for _, kw := range keywords {
		if kw.spelling == identifier {
			return kw.tokenType
		}
	}
	return TokenIdentifier
}

// UnaryOp returns the unary operator spelled by the token type.
func UnaryOp(tt TokenType) (Operator, bool) {
	return lookupOp(UnaryOps, tt)
}

// BinaryOp returns the binary operator spelled by the token type.
func BinaryOp(tt TokenType) (Operator, bool) {
	return lookupOp(BinaryOps, tt)
}

// BinaryOpBySpelling returns the binary operator with the given source
// spelling, e.g. "<<=".
func BinaryOpBySpelling(spelling string) (Operator, bool) {
	for _, op := range BinaryOps {
		if op.Spelling == spelling {
			return op, true
		}
	}
	return Operator{}, false
}

func lookupOp(table []Operator, tt TokenType) (Operator, bool) {
	for _, op := range table {
		if op.Token == tt {
			return op, true
		}
	}
	return Operator{}, false
}
