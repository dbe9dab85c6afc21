package lexer

import (
	"strings"
)

// eof is returned by peek when the lookahead runs past the end of the source.
const eof = -1

// Lexer performs lexical analysis on source text, converting it into a
// stream of tokens.
//
// The lexer makes a single left-to-right pass without backtracking. It never
// stops on a lexical error: problems are recorded as TokenError tokens in the
// stream and counted, so later stages see them in source order.
//
// The lexer works on bytes. Anything outside ASCII is reported as a stray
// character, one byte at a time.
type Lexer struct {
	// source is the complete source text being lexed.
	source string

	// start is the byte offset of the token being scanned.
	start int

	// current is the byte offset we're currently examining.
	current int

	// tokens collects the finished stream.
	tokens []Token

	// errors counts error tokens, including nested ones.
	errors int
}

// New creates a new Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		tokens: make([]Token, 0, len(source)/4+1),
	}
}

// Tokenize converts source into a token stream and returns it together with
// the number of lexical errors found.
//
// The stream always ends with exactly one zero-length TokenEOF, and the spans
// of all tokens cover the source exactly once, in order.
func Tokenize(source string) ([]Token, int) {
	l := New(source)
	return l.Run()
}

// Run scans the whole source. It is not meant to be called twice.
func (l *Lexer) Run() ([]Token, int) {
	for l.next() {
	}
	return l.tokens, l.errors
}

// next scans one token and appends it to the stream.
// It returns false once the EOF token has been appended.
func (l *Lexer) next() bool {
	l.start = l.current

	c := l.advance()
	switch c {
	case eof:
		l.emit(TokenEOF)
		return false

	// Single-character tokens
	case '{':
		l.emit(TokenLeftBrace)
	case '}':
		l.emit(TokenRightBrace)
	case '(':
		l.emit(TokenLeftParen)
	case ')':
		l.emit(TokenRightParen)
	case '[':
		l.emit(TokenLeftBracket)
	case ']':
		l.emit(TokenRightBracket)
	case ',':
		l.emit(TokenComma)
	case '.':
		l.emit(TokenPeriod)
	case ';':
		l.emit(TokenSemicolon)
	case '~':
		l.emit(TokenBitNot)
	case '"':
		l.scanString()

	// Operators that can be one, two or three characters long.
	// The longest spelling is tried first.
	case '+':
		l.emitEither('=', TokenPlusEq, TokenPlus)
	case '-':
		l.emitEither('=', TokenMinusEq, TokenMinus)
	case '*':
		l.emitEither('=', TokenStarEq, TokenStar)
	case '%':
		l.emitEither('=', TokenPercentEq, TokenPercent)
	case '^':
		l.emitEither('=', TokenXorEq, TokenBitXor)
	case '=':
		l.emitEither('=', TokenEqual, TokenAssign)
	case '!':
		l.emitEither('=', TokenNotEqual, TokenNot)

	case '/':
		switch {
		case l.match('/'):
			l.scanLineComment()
		case l.match('*'):
			l.scanBlockComment()
		case l.match('='):
			l.emit(TokenSlashEq)
		default:
			l.emit(TokenSlash)
		}

	case '<':
		switch {
		case l.match('<'):
			l.emitEither('=', TokenShlEq, TokenShl)
		case l.match('='):
			l.emit(TokenLessEqual)
		default:
			l.emit(TokenLess)
		}

	case '>':
		switch {
		case l.match('>'):
			l.emitEither('=', TokenShrEq, TokenShr)
		case l.match('='):
			l.emit(TokenGreaterEqual)
		default:
			l.emit(TokenGreater)
		}

	case '&':
		switch {
		case l.match('&'):
			l.emit(TokenAnd)
		case l.match('='):
			l.emit(TokenAndEq)
		default:
			l.emit(TokenBitAnd)
		}

	case '|':
		switch {
		case l.match('|'):
			l.emit(TokenOr)
		case l.match('='):
			l.emit(TokenOrEq)
		default:
			l.emit(TokenBitOr)
		}

	default:
		switch {
		case isSpace(c):
			l.scanWhitespace(c)
		case isDigit(c):
			l.scanInt(c)
		case isLetter(c):
			l.scanIdentifier()
		default:
			// Every unknown byte is reported on its own.
			l.emitError("stray character in source code")
		}
	}
	return true
}

// peek returns the byte offset bytes ahead of the current position, or eof.
func (l *Lexer) peek(offset int) int {
	if l.current+offset >= len(l.source) {
		return eof
	}
	return int(l.source[l.current+offset])
}

// advance consumes and returns the current byte, or returns eof without
// consuming anything at the end of the source.
func (l *Lexer) advance() int {
	c := l.peek(0)
	if c != eof {
		l.current++
	}
	return c
}

// match consumes the current byte if it equals expected.
func (l *Lexer) match(expected byte) bool {
	if l.peek(0) != int(expected) {
		return false
	}
	l.current++
	return true
}

// emitEither emits long if the next byte is next, short otherwise.
func (l *Lexer) emitEither(next byte, long, short TokenType) {
	if l.match(next) {
		l.emit(long)
		return
	}
	l.emit(short)
}

// span returns the span of the token being scanned.
func (l *Lexer) span() Span {
	return Span{Start: l.start, Len: l.current - l.start}
}

func (l *Lexer) emit(tokenType TokenType) {
	l.tokens = append(l.tokens, Token{Type: tokenType, Span: l.span()})
}

func (l *Lexer) emitError(message string) {
	l.errors++
	l.tokens = append(l.tokens, Token{Type: TokenError, Span: l.span(), Message: message})
}

// scanWhitespace collapses a run of blanks into one token. The first blank c
// has already been consumed.
func (l *Lexer) scanWhitespace(c int) {
	tokenType := TokenWhitespace
	for {
		if c == '\n' {
			tokenType = TokenNewline
		}
		c = l.peek(0)
		if !isSpace(c) {
			break
		}
		l.current++
	}
	l.emit(tokenType)
}

// scanInt scans a decimal integer literal. The first digit c has already
// been consumed. Overflow is not checked and radix prefixes are not
// recognized.
func (l *Lexer) scanInt(c int) {
	value := uint64(c - '0')
	for isDigit(l.peek(0)) {
		value = value*10 + uint64(l.advance()-'0')
	}
	l.tokens = append(l.tokens, Token{Type: TokenInt, Span: l.span(), Int: value})
}

// scanIdentifier scans an identifier or keyword. The first character has
// already been consumed.
func (l *Lexer) scanIdentifier() {
	for c := l.peek(0); isLetter(c) || isDigit(c); c = l.peek(0) {
		l.current++
	}
	l.emit(LookupKeyword(l.source[l.start:l.current]))
}

// scanLineComment scans a line comment. "//" has already been consumed.
// The terminating newline is not part of the comment.
func (l *Lexer) scanLineComment() {
	for c := l.peek(0); c != '\n' && c != eof; c = l.peek(0) {
		l.current++
	}
	l.emit(TokenComment)
}

// scanBlockComment scans a block comment. "/*" has already been consumed.
//
// Block comments nest: every "/*" opens a level and every "*/" closes one.
// The comment ends when the depth returns to zero.
func (l *Lexer) scanBlockComment() {
	depth := 1
	for depth > 0 {
		switch {
		case l.peek(0) == '*' && l.peek(1) == '/':
			l.current += 2
			depth--
		case l.peek(0) == '/' && l.peek(1) == '*':
			l.current += 2
			depth++
		case l.peek(0) == eof:
			l.emitError("unterminated multiline comment")
			return
		default:
			l.current++
		}
	}
	l.emit(TokenComment)
}

// scanString scans a string literal. The opening quote has already been
// consumed.
//
// ESCAPES: \\, \", \n and \t are decoded. Any other escape code is reported
// as a nested error token and dropped from the value; the string itself stays
// valid. Raw newlines are allowed.
func (l *Lexer) scanString() {
	var value strings.Builder
	var nested []Token

	for {
		c := l.advance()
		switch c {
		case eof:
			l.errors += len(nested)
			l.emitError("unterminated string")
			l.tokens[len(l.tokens)-1].Nested = nested
			return

		case '"':
			l.errors += len(nested)
			l.tokens = append(l.tokens, Token{
				Type:   TokenString,
				Span:   l.span(),
				Str:    value.String(),
				Nested: nested,
			})
			return

		case '\\':
			switch e := l.advance(); e {
			case eof:
				l.errors += len(nested)
				l.emitError("unterminated escape code in string")
				l.tokens[len(l.tokens)-1].Nested = nested
				return
			case '\\':
				value.WriteByte('\\')
			case '"':
				value.WriteByte('"')
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			default:
				nested = append(nested, Token{
					Type:    TokenError,
					Span:    Span{Start: l.current - 2, Len: 2},
					Message: "unknown escape code in string",
				})
			}

		default:
			value.WriteByte(byte(c))
		}
	}
}

// Helper functions for character classification.
// All of them take the int returned by peek, so eof is never a match.

// isSpace matches the C locale's isspace.
func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

// isLetter returns true for ASCII letters and the underscore.
func isLetter(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
