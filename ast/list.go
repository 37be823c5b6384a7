package ast

import (
	"fmt"
)

const minListCap = 2

// List is an ordered sequence of values. Lists grow by appending only.
type List struct {
	elements []Value
}

// NewList creates a list holding the given values, in order
func NewList(values ...Value) *List {
	l := &List{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Type returns TypeList
func (l *List) Type() ValueType {
	return TypeList
}

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.elements)
}

// Cap returns the number of elements the list can hold before it has to grow
func (l *List) Cap() int {
	return cap(l.elements)
}

// Nth returns the element at position i. It panics unless 0 <= i < Len().
func (l *List) Nth(i int) Value {
	if i < 0 || i >= len(l.elements) {
		panic(fmt.Sprintf("ast: list index %d out of range [0, %d)", i, len(l.elements)))
	}
	return l.elements[i]
}

// Append adds v at the end of the list and returns the list. The list becomes
// the owner of v.
func (l *List) Append(v Value) *List {
	if v == nil {
		panic("ast: can't append a nil value to a list")
	}
	l.ensure(len(l.elements) + 1)
	l.elements = append(l.elements, v)
	return l
}

// ensure grows the backing array by a factor of 1.5 until it can hold n
// elements.
func (l *List) ensure(n int) {
	c := cap(l.elements)
	if c >= n {
		return
	}
	if c < minListCap {
		c = minListCap
	}
	for c < n {
		c = c * 3 / 2
	}
	elements := make([]Value, len(l.elements), c)
	copy(elements, l.elements)
	l.elements = elements
}

func (l *List) String() string {
	return Display(l)
}

func (*List) value() {}
