package scheme

import (
	"fmt"
	"strconv"
	"strings"
)

// Data is a fundamental type (symbol, boolean, string, number, pair, procedure)
type Data interface{}

type Symbol string
type Boolean bool
type Number float64
type String string

func (sym Symbol) String() string {
	return string(sym)
}

func (num Number) String() string {
	return strconv.FormatFloat(float64(num), 'g', -1, 64)
}

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (s String) String() string {
	return strconv.Quote(string(s))
}

type Null byte

var Empty Null = 0xfe // Null is nothing so it can be anything

func (n Null) String() string {
	return "()"
}

type unspecified struct{}

// Unspecified is the value of a form whose result the language leaves open,
// such as a one-armed if whose test fails.
var Unspecified Data = unspecified{}

func (unspecified) String() string {
	return "#<unspecified>"
}

var (
	T     = Boolean(true)
	False = Boolean(false)
)

func nullp(d Data) bool {
	v, ok := d.(Null)
	return ok && v == Empty
}

func pairp(d Data) bool {
	_, ok := d.(*Pair)
	return ok
}

func getSymbol(d Data) (Symbol, error) {
	if p, ok := d.(Symbol); ok {
		return p, nil
	}
	return "", fmt.Errorf("value is not a symbol: %v", d)
}

// IsTrue reports whether d counts as true in a conditional. Only #f is false.
func IsTrue(d Data) bool {
	b, ok := d.(Boolean)
	return !ok || bool(b)
}

// Eqv compares atoms by value and everything else by identity.
func Eqv(a, b Data) bool {
	switch x := a.(type) {
	case Number, String, Boolean, Symbol, Null:
		return a == b
	case *Pair:
		y, ok := b.(*Pair)
		return ok && x == y
	case *Primitive:
		y, ok := b.(*Primitive)
		return ok && x == y
	case *Compound:
		y, ok := b.(*Compound)
		return ok && x == y
	}
	return false
}

// Equal compares lists structurally and everything else with Eqv.
func Equal(a, b Data) bool {
	for {
		x, ok := a.(*Pair)
		if !ok {
			return Eqv(a, b)
		}
		y, ok := b.(*Pair)
		if !ok || !Equal(x.car, y.car) {
			return false
		}
		a, b = x.cdr, y.cdr
	}
}

// Repr renders d in external syntax.
func Repr(d Data) string {
	switch v := d.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", d)
}

func reprAll(ds []Data) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = Repr(d)
	}
	return strings.Join(parts, " ")
}
