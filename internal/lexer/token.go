package lexer

import (
	"strconv"
)

// TokenType represents the type of a token.
//
// The set is closed: the lexer never produces a type outside this list.
type TokenType int

// Token type enumeration.
//
// ORGANIZATION: Tokens are grouped logically:
// 1. Special tokens (EOF, Error) and trivia (whitespace, comments)
// 2. Literals and identifiers
// 3. Keywords
// 4. Structural punctuation
// 5. Operators (arithmetic, shifts, comparison, bitwise, logical, assignment)
//
// Trivia tokens stay in the stream. The parser skips them on demand, which
// keeps the stream a lossless copy of the source.
const (
	// Special tokens

	// TokenEOF marks the end of the input. It always has a zero-length span
	// and appears exactly once, as the last token of a stream.
	TokenEOF TokenType = iota

	// TokenError represents a lexical error. The human-readable description
	// is stored in Token.Message; the span covers the offending bytes.
	TokenError

	// TokenWhitespace is a run of blanks that contains no newline.
	TokenWhitespace

	// TokenNewline is a run of blanks that contains at least one newline.
	// The parser uses it to infer statement ends.
	TokenNewline

	// TokenComment is a line comment or a (possibly nested) block comment.
	TokenComment

	// Literals

	// TokenInt is a decimal integer literal. The decoded value is in Token.Int.
	TokenInt

	// TokenString is a string literal. The decoded value, with escape codes
	// resolved, is in Token.Str.
	TokenString

	// TokenIdentifier is any name that is not a keyword.
	TokenIdentifier

	// Keywords
	TokenDo
	TokenEnd
	TokenIf
	TokenElse
	TokenWhile

	// Delimiters
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenComma        // ,
	TokenPeriod       // .
	TokenSemicolon    // ;

	// Operators - Arithmetic
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %

	// Operators - Shift
	TokenShl // <<
	TokenShr // >>

	// Operators - Comparison
	TokenLess         // <
	TokenLessEqual    // <=
	TokenGreater      // >
	TokenGreaterEqual // >=
	TokenEqual        // ==
	TokenNotEqual     // !=

	// Operators - Bitwise
	TokenBitAnd // &
	TokenBitOr  // |
	TokenBitXor // ^
	TokenBitNot // ~

	// Operators - Logical
	TokenAnd // &&
	TokenOr  // ||
	TokenNot // !

	// Operators - Assignment
	TokenAssign    // =
	TokenPlusEq    // +=
	TokenMinusEq   // -=
	TokenStarEq    // *=
	TokenSlashEq   // /=
	TokenPercentEq // %=
	TokenShlEq     // <<=
	TokenShrEq     // >>=
	TokenAndEq     // &=
	TokenOrEq      // |=
	TokenXorEq     // ^=

	tokenTypeCount
)

// Token is a single classified slice of the source.
//
// Tokens are value types. The span never owns source text; only decoded
// literal payloads (Int, Str) and error messages are stored separately.
type Token struct {
	// Type is the token type.
	Type TokenType

	// Span is the byte range of the token in the source buffer.
	Span Span

	// Int is the decoded value of a TokenInt. Overflow wraps silently.
	Int uint64

	// Str is the decoded value of a TokenString.
	Str string

	// Message describes the problem of a TokenError.
	Message string

	// Nested holds error tokens found inside a string literal, such as
	// unknown escape codes. They are not part of the top-level stream.
	Nested []Token
}

// Text returns the source text covered by the token.
func (t Token) Text(source string) string {
	return source[t.Span.Start:t.Span.End()]
}

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool {
	return t.Type == TokenWhitespace || t.Type == TokenNewline || t.Type == TokenComment
}

// Dump returns an inline, single-line representation of the token.
// Format: TYPE followed by the decoded payload where one exists.
// Examples: `ID "foo"`, `INT 42`, `STR "a\n"`, `ERROR "stray character in source code"`, `'{'`.
func (t Token) Dump(source string) string {
	switch t.Type {
	case TokenIdentifier:
		return "ID " + strconv.Quote(t.Text(source))
	case TokenInt:
		return "INT " + strconv.FormatUint(t.Int, 10)
	case TokenString:
		return "STR " + strconv.Quote(t.Str)
	case TokenError:
		return "ERROR " + strconv.Quote(t.Message)
	case TokenWhitespace, TokenNewline, TokenComment:
		return t.Type.String() + " " + strconv.Quote(t.Text(source))
	case TokenEOF:
		return "EOF"
	default:
		return t.Type.Desc()
	}
}

// tokenInfo is the declarative name table for token types.
//
// name is the short upper-case identifier used in dumps and logs. desc is the
// description shown in "expected ..." diagnostics: the quoted spelling for
// fixed tokens, a word for token classes.
var tokenInfo = [tokenTypeCount]struct {
	name string
	desc string
}{
	TokenEOF:        {"EOF", "end of file"},
	TokenError:      {"ERROR", "error"},
	TokenWhitespace: {"WS", "whitespace"},
	TokenNewline:    {"WSNL", "newline"},
	TokenComment:    {"COMMENT", "comment"},
	TokenInt:        {"INT", "integer"},
	TokenString:     {"STR", "string"},
	TokenIdentifier: {"ID", "identifier"},

	TokenDo:    {"DO", "'do'"},
	TokenEnd:   {"END", "'end'"},
	TokenIf:    {"IF", "'if'"},
	TokenElse:  {"ELSE", "'else'"},
	TokenWhile: {"WHILE", "'while'"},

	TokenLeftBrace:    {"CBO", "'{'"},
	TokenRightBrace:   {"CBC", "'}'"},
	TokenLeftParen:    {"RBO", "'('"},
	TokenRightParen:   {"RBC", "')'"},
	TokenLeftBracket:  {"SBO", "'['"},
	TokenRightBracket: {"SBC", "']'"},
	TokenComma:        {"COMMA", "','"},
	TokenPeriod:       {"PERIOD", "'.'"},
	TokenSemicolon:    {"SEMI", "';'"},

	TokenPlus:    {"ADD", "'+'"},
	TokenMinus:   {"SUB", "'-'"},
	TokenStar:    {"MUL", "'*'"},
	TokenSlash:   {"DIV", "'/'"},
	TokenPercent: {"MOD", "'%'"},

	TokenShl: {"SL", "'<<'"},
	TokenShr: {"SR", "'>>'"},

	TokenLess:         {"LT", "'<'"},
	TokenLessEqual:    {"LE", "'<='"},
	TokenGreater:      {"GT", "'>'"},
	TokenGreaterEqual: {"GE", "'>='"},
	TokenEqual:        {"EQ", "'=='"},
	TokenNotEqual:     {"NEQ", "'!='"},

	TokenBitAnd: {"BIN_AND", "'&'"},
	TokenBitOr:  {"BIN_OR", "'|'"},
	TokenBitXor: {"BIN_XOR", "'^'"},
	TokenBitNot: {"COMPL", "'~'"},

	TokenAnd: {"AND", "'&&'"},
	TokenOr:  {"OR", "'||'"},
	TokenNot: {"NOT", "'!'"},

	TokenAssign:    {"ASSIGN", "'='"},
	TokenPlusEq:    {"ADD_ASSIGN", "'+='"},
	TokenMinusEq:   {"SUB_ASSIGN", "'-='"},
	TokenStarEq:    {"MUL_ASSIGN", "'*='"},
	TokenSlashEq:   {"DIV_ASSIGN", "'/='"},
	TokenPercentEq: {"MOD_ASSIGN", "'%='"},
	TokenShlEq:     {"SL_ASSIGN", "'<<='"},
	TokenShrEq:     {"SR_ASSIGN", "'>>='"},
	TokenAndEq:     {"BIN_AND_ASSIGN", "'&='"},
	TokenOrEq:      {"BIN_OR_ASSIGN", "'|='"},
	TokenXorEq:     {"BIN_XOR_ASSIGN", "'^='"},
}

// String returns the short name of a token type, e.g. "ID" or "CBO".
func (tt TokenType) String() string {
	if tt < 0 || tt >= tokenTypeCount {
		return "UNKNOWN"
	}
	return tokenInfo[tt].name
}

// Desc returns the description used in "expected ..." diagnostics.
func (tt TokenType) Desc() string {
	if tt < 0 || tt >= tokenTypeCount {
		return "unknown token"
	}
	return tokenInfo[tt].desc
}
