package ast

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xiam/sexp/escape"
)

const printerInitialSize = 64

// Print writes a human-readable, indented representation of the tree rooted at
// v to w, one value per line.
func Print(w io.Writer, v Value) {
	printLevel(w, v, 0)
}

func printLevel(w io.Writer, v Value, level int) {
	indent := strings.Repeat("    ", level)
	if v == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, v.Type())
	switch n := v.(type) {
	case *List:
		fmt.Fprintf(w, "[%d]\n", n.Len())
		for i := 0; i < n.Len(); i++ {
			printLevel(w, n.Nth(i), level+1)
		}

	case *String, *Symbol, *Number:
		fmt.Fprintf(w, "%s\n", Encode(v))

	default:
		panic("unknown value type")
	}
}

// Encode transforms a value into its canonical text representation
func Encode(v Value) []byte {
	p := newPrinter()
	p.value(v)
	return p.bytes()
}

// Display returns the canonical text representation of v
func Display(v Value) string {
	return string(Encode(v))
}

type printer struct {
	buf bytes.Buffer
}

func newPrinter() *printer {
	p := &printer{}
	p.buf.Grow(printerInitialSize)
	return p
}

// bytes returns a copy of the output trimmed to its length.
func (p *printer) bytes() []byte {
	out := make([]byte, p.buf.Len())
	copy(out, p.buf.Bytes())
	return out
}

func (p *printer) value(v Value) {
	switch n := v.(type) {
	case *String:
		p.buf.WriteByte('"')
		for _, c := range n.b {
			if s, ok := escape.EscapeByte(c); ok {
				p.buf.WriteString(s)
				continue
			}
			p.buf.WriteByte(c)
		}
		p.buf.WriteByte('"')

	case *Symbol:
		p.buf.Write(n.b)

	case *Number:
		p.buf.WriteString(formatNumber(n.v))

	case *List:
		p.buf.WriteByte('(')
		for i, e := range n.elements {
			if i > 0 {
				p.buf.WriteByte(' ')
			}
			p.value(e)
		}
		p.buf.WriteByte(')')

	default:
		panic(fmt.Sprintf("ast: can't print value %#v", v))
	}
}

// formatNumber renders v like C's "%g": six significant digits, trailing
// zeros removed.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
