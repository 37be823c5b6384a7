package ast

import (
	"bytes"
	"math"
)

// Value represents an S-expression. The set of implementations is closed:
// *String, *Symbol, *Number and *List.
type Value interface {
	Type() ValueType
	String() string

	value()
}

// String is a quoted byte string, it may contain zero bytes.
type String struct {
	b []byte
}

// NewString creates a string value holding a copy of s
func NewString(s string) *String {
	return &String{b: []byte(s)}
}

// NewStringBytes creates a string value holding a copy of the given bytes
func NewStringBytes(b []byte) *String {
	return &String{b: clone(b)}
}

// Type returns TypeString
func (s *String) Type() ValueType {
	return TypeString
}

// Bytes returns the raw content of the string. The returned slice must not be
// modified.
func (s *String) Bytes() []byte {
	return s.b
}

// Text returns the content of the string
func (s *String) Text() string {
	return string(s.b)
}

// Len returns the number of bytes in the string
func (s *String) Len() int {
	return len(s.b)
}

func (s *String) String() string {
	return Display(s)
}

func (*String) value() {}

// Symbol is a bare identifier-like atom.
type Symbol struct {
	b []byte
}

// NewSymbol creates a symbol value named s
func NewSymbol(s string) *Symbol {
	return &Symbol{b: []byte(s)}
}

// NewSymbolBytes creates a symbol value holding a copy of the given bytes
func NewSymbolBytes(b []byte) *Symbol {
	return &Symbol{b: clone(b)}
}

// Type returns TypeSymbol
func (s *Symbol) Type() ValueType {
	return TypeSymbol
}

// Bytes returns the raw name of the symbol. The returned slice must not be
// modified.
func (s *Symbol) Bytes() []byte {
	return s.b
}

// Text returns the name of the symbol
func (s *Symbol) Text() string {
	return string(s.b)
}

// Len returns the number of bytes in the symbol name
func (s *Symbol) Len() int {
	return len(s.b)
}

// Eq reports whether the symbol name is exactly ref
func (s *Symbol) Eq(ref string) bool {
	return string(s.b) == ref
}

func (s *Symbol) String() string {
	return Display(s)
}

func (*Symbol) value() {}

// Number is a 64-bit floating point value.
type Number struct {
	v float64
}

// NewNumber creates a number value
func NewNumber(v float64) *Number {
	return &Number{v: v}
}

// Type returns TypeNumber
func (n *Number) Type() ValueType {
	return TypeNumber
}

// Float64 returns the value of the number
func (n *Number) Float64() float64 {
	return n.v
}

func (n *Number) String() string {
	return Display(n)
}

func (*Number) value() {}

// IsString returns true if v is a string
func IsString(v Value) bool {
	x, ok := v.(*String)
	return ok && x != nil
}

// IsSymbol returns true if v is a symbol
func IsSymbol(v Value) bool {
	x, ok := v.(*Symbol)
	return ok && x != nil
}

// IsNumber returns true if v is a number
func IsNumber(v Value) bool {
	x, ok := v.(*Number)
	return ok && x != nil
}

// IsList returns true if v is a list
func IsList(v Value) bool {
	x, ok := v.(*List)
	return ok && x != nil
}

// Equal reports whether a and b are structurally equal. Numbers are compared
// bit for bit, so NaN equals a NaN with the same payload and 0 differs from -0.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *String:
		y, ok := b.(*String)
		return ok && bytes.Equal(x.b, y.b)
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && bytes.Equal(x.b, y.b)
	case *Number:
		y, ok := b.(*Number)
		return ok && math.Float64bits(x.v) == math.Float64bits(y.v)
	case *List:
		y, ok := b.(*List)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.elements {
			if !Equal(x.elements[i], y.elements[i]) {
				return false
			}
		}
		return true
	}
	panic("unknown value type")
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

var (
	_ = Value(&String{})
	_ = Value(&Symbol{})
	_ = Value(&Number{})
	_ = Value(&List{})
)
