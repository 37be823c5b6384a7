package lexer

import (
	"errors"

	"github.com/golang/glog"
)

// ErrUnterminatedString is reported when a string is not closed before a raw
// newline or the end of input.
var ErrUnterminatedString = errors.New("unterminated string")

type lexState func(*Lexer) lexState

var (
	isOpen  = isTokenType(TokenOpen)
	isClose = isTokenType(TokenClose)

	isWhitespace = isOneOf([]byte(" \t\f\n"))
	isAtomBreak  = isOneOf([]byte(" \t\f\n;([{}])\""))
)

const (
	quote     = '"'
	backslash = '\\'
	semicolon = ';'
	newline   = '\n'
)

type mark struct {
	offset int

	line      int
	lineStart int
}

// Lexer represents a lexical analyzer over an in-memory buffer
type Lexer struct {
	in []byte

	mark
	start int
	end   int

	tokLine int
	tokCol  int

	tok     Token
	lastErr error
}

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{in: in}
}

// Next scans and returns the next token. After an unterminated string every
// call returns a TokenError and the lexer stays where the previous token
// ended.
func (lx *Lexer) Next() Token {
	if lx.lastErr != nil {
		return lx.tok
	}

	saved := lx.mark
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.tok.tt == TokenError {
		lx.mark = saved
		glog.V(2).Infof("lexer: %v at %d:%d", lx.lastErr, lx.tok.line, lx.tok.col)
		return lx.tok
	}

	lx.end = lx.offset
	return lx.tok
}

// Offset returns the byte offset right after the last token that was scanned
// successfully.
func (lx *Lexer) Offset() int {
	return lx.end
}

// Err returns the error that stopped the lexer, if any
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) eof() bool {
	return lx.offset >= len(lx.in)
}

func (lx *Lexer) peek() byte {
	return lx.in[lx.offset]
}

func (lx *Lexer) advance() {
	if lx.in[lx.offset] == newline {
		lx.line++
		lx.lineStart = lx.offset + 1
	}
	lx.offset++
}

func (lx *Lexer) markStart() {
	lx.start = lx.offset
	lx.tokLine = lx.line + 1
	lx.tokCol = lx.offset - lx.lineStart + 1
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = Token{
		tt:     tt,
		lexeme: lx.in[lx.start:lx.offset],

		start: lx.start,
		end:   lx.offset,

		line: lx.tokLine,
		col:  lx.tokCol,
	}
}

func lexDefaultState(lx *Lexer) lexState {
	for !lx.eof() && isWhitespace(lx.peek()) {
		lx.advance()
	}

	lx.markStart()

	if lx.eof() {
		return lexEmit(TokenEOF)
	}

	c := lx.peek()
	switch {
	case c == semicolon:
		return lexComment
	case c == quote:
		lx.advance()
		return lexString
	case isOpen(c):
		lx.advance()
		return lexEmit(TokenOpen)
	case isClose(c):
		lx.advance()
		return lexEmit(TokenClose)
	}

	return lexAtom
}

func lexComment(lx *Lexer) lexState {
	for !lx.eof() && lx.peek() != newline {
		lx.advance()
	}
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	for !lx.eof() {
		switch lx.peek() {
		case quote:
			lx.advance()
			return lexEmit(TokenString)
		case newline:
			return lexStateError(ErrUnterminatedString)
		case backslash:
			lx.advance()
			if lx.eof() {
				return lexStateError(ErrUnterminatedString)
			}
		}
		lx.advance()
	}
	return lexStateError(ErrUnterminatedString)
}

func lexAtom(lx *Lexer) lexState {
	for !lx.eof() && !isAtomBreak(lx.peek()) {
		lx.advance()
	}
	return lexEmit(TokenAtom)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return nil
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(TokenError)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, up to
// and including TokenEOF, or an error if a string is left unterminated.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(in)
	for {
		tok := lx.Next()
		if tok.Is(TokenError) {
			return nil, lx.Err()
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
