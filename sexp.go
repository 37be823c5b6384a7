// Package sexp reads and writes S-expressions made of strings, symbols,
// numbers and lists.
//
//	value  := list | string | number | symbol
//	list   := open value* close    ; "(" ")", "[" "]" or "{" "}", shapes must match
//	string := '"' (escape-pair | ~["\n])* '"'
//	number := decimal floating point literal
//	symbol := bytes other than whitespace, delimiters, ';' and '"'
//
// A ';' starts a comment that runs to the end of the line.
package sexp

import (
	"bytes"
	"io"

	"github.com/xiam/sexp/ast"
	"github.com/xiam/sexp/parser"
)

// Value is an S-expression
type Value = ast.Value

// Reader reads S-expressions from an io.Reader. The input is read completely
// before parsing starts.
type Reader struct {
	r io.Reader
}

// NewReader creates a Reader on top of r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadAll reads every top-level value
func (r *Reader) ReadAll() ([]Value, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.r); err != nil {
		return nil, err
	}
	return ReadAll(buf.Bytes())
}

// Read reads one value from the start of in and returns it together with the
// number of bytes consumed. It returns a nil Value if in does not start with a
// well-formed value.
func Read(in []byte) (Value, int) {
	return parser.Read(in)
}

// Parse is like Read, it also returns io.EOF when in holds no value and a
// *parser.SyntaxError when it is malformed.
func Parse(in []byte) (Value, int, error) {
	return parser.Parse(in)
}

// ReadAll reads every top-level value in in
func ReadAll(in []byte) ([]Value, error) {
	values := []Value{}

	p := parser.New(in)
	for {
		v, err := p.Next()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// Display returns the canonical text form of v
func Display(v Value) string {
	return ast.Display(v)
}
