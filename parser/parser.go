package parser

import (
	"io"

	"github.com/golang/glog"

	"github.com/xiam/sexp/ast"
	"github.com/xiam/sexp/escape"
	"github.com/xiam/sexp/lexer"
)

// Parser reads values from a fully materialized buffer, one top-level value
// per call to Next.
type Parser struct {
	lx *lexer.Lexer

	tok      lexer.Token
	consumed int
	offset   int

	lastErr error
}

// New creates a parser that reads from in
func New(in []byte) *Parser {
	p := &Parser{lx: lexer.New(in)}
	p.tok = p.lx.Next()
	return p
}

// Next reads the next top-level value. It returns io.EOF once the input holds
// nothing but whitespace and comments. Any other error is final: subsequent
// calls return it again.
func (p *Parser) Next() (ast.Value, error) {
	if p.lastErr != nil {
		return nil, p.lastErr
	}

	if p.tok.Is(lexer.TokenEOF) {
		p.offset = p.lx.Offset()
		return nil, io.EOF
	}

	v, err := p.readAny()
	if err != nil {
		p.lastErr = err
		p.offset = p.lx.Offset()
		return nil, err
	}

	p.offset = p.consumed
	return v, nil
}

// Offset returns the byte offset right after the last value returned by Next,
// or the offset where scanning stopped if Next failed.
func (p *Parser) Offset() int {
	return p.offset
}

func (p *Parser) next() {
	_, p.consumed = p.tok.Span()
	p.tok = p.lx.Next()
}

func (p *Parser) fail(err error) error {
	glog.V(3).Infof("parser: %v at %v", err, p.tok)
	return newSyntaxError(err, p.tok)
}

func (p *Parser) readAny() (ast.Value, error) {
	if glog.V(3) {
		glog.Infof("parser: read %v", p.tok)
	}

	switch p.tok.Type() {
	case lexer.TokenOpen:
		return p.readList()
	case lexer.TokenString:
		return p.readString()
	case lexer.TokenAtom:
		return p.readAtom()
	case lexer.TokenClose:
		return nil, p.fail(ErrUnexpectedToken)
	case lexer.TokenEOF:
		return nil, p.fail(ErrUnexpectedEOF)
	case lexer.TokenError:
		return nil, p.fail(p.lx.Err())
	}

	panic("unreachable")
}

func (p *Parser) readList() (ast.Value, error) {
	closer, ok := lexer.Closer(p.tok.Bytes()[0])
	if !ok {
		panic("unreachable")
	}
	p.next()

	list := ast.NewList()
	for {
		switch p.tok.Type() {
		case lexer.TokenClose:
			if p.tok.Bytes()[0] != closer {
				return nil, p.fail(ErrMismatchedDelimiter)
			}
			p.next()
			return list, nil
		case lexer.TokenEOF:
			return nil, p.fail(ErrUnexpectedEOF)
		case lexer.TokenError:
			return nil, p.fail(p.lx.Err())
		}

		item, err := p.readAny()
		if err != nil {
			return nil, err
		}
		list.Append(item)
	}
}

func (p *Parser) readString() (ast.Value, error) {
	raw := p.tok.Bytes()
	s := ast.NewStringBytes(escape.Unescape(raw[1 : len(raw)-1]))
	p.next()
	return s, nil
}

func (p *Parser) readAtom() (ast.Value, error) {
	raw := p.tok.Bytes()

	var v ast.Value
	if f, ok := parseNumber(raw); ok {
		v = ast.NewNumber(f)
	} else {
		v = ast.NewSymbolBytes(raw)
	}

	p.next()
	return v, nil
}

// Read reads one value from the start of in and returns it along with the
// number of bytes consumed. A nil value means nothing could be read, in that
// case the offset is where scanning stopped.
func Read(in []byte) (ast.Value, int) {
	v, n, _ := Parse(in)
	return v, n
}

// Parse is like Read but also reports why no value could be read. Input that
// holds no value at all yields io.EOF, malformed input a *SyntaxError.
func Parse(in []byte) (ast.Value, int, error) {
	p := New(in)
	v, err := p.Next()
	return v, p.Offset(), err
}
