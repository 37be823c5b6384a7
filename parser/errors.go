package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sexp/lexer"
)

var (
	ErrUnexpectedEOF       = errors.New("unexpected EOF")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrMismatchedDelimiter = errors.New("mismatched delimiter")
	ErrUnterminatedString  = lexer.ErrUnterminatedString
)

// SyntaxError describes where reading stopped and why.
type SyntaxError struct {
	Err error

	Offset int
	Line   int
	Col    int
}

func newSyntaxError(err error, tok lexer.Token) *SyntaxError {
	offset, _ := tok.Span()
	line, col := tok.Pos()
	return &SyntaxError{
		Err:    err,
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
