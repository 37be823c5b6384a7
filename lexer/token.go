package lexer

import (
	"fmt"
)

// Token represents a known sequence of bytes (lexical unit)
type Token struct {
	tt     TokenType
	lexeme []byte

	start int
	end   int

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme []byte, start int, line int, col int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		start:  start,
		end:    start + len(lexeme),
		line:   line,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Span returns the byte offsets where the lexical unit starts and ends
func (t Token) Span() (int, int) {
	return t.start, t.end
}

// Bytes returns the raw bytes of the lexical unit. The returned slice aliases
// the source buffer.
func (t Token) Bytes() []byte {
	return t.lexeme
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return string(t.lexeme)
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
