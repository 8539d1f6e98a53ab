package scheme

import (
	"fmt"
	"strings"
)

type Pair struct {
	car Data
	cdr Data
}

func Cons(car, cdr Data) *Pair {
	return &Pair{car, cdr}
}

func (p *Pair) Car() Data { return p.car }
func (p *Pair) Cdr() Data { return p.cdr }

func (p *Pair) String() string {
	var b strings.Builder
	b.WriteString("(")
	for {
		b.WriteString(Repr(p.car))
		if nullp(p.cdr) {
			break
		}
		next, ok := p.cdr.(*Pair)
		if !ok {
			b.WriteString(" . " + Repr(p.cdr))
			break
		}
		b.WriteString(" ")
		p = next
	}
	b.WriteString(")")
	return b.String()
}

// List builds a proper list from its arguments.
func List(items ...Data) Data {
	return SliceToList(items, Empty)
}

// SliceToList conses items onto tail, last item first.
func SliceToList(items []Data, tail Data) Data {
	li := tail
	for i := len(items) - 1; i >= 0; i-- {
		li = Cons(items[i], li)
	}
	return li
}

// ListToSlice flattens a proper list. Improper lists are an error.
func ListToSlice(d Data) ([]Data, error) {
	var out []Data
	for !nullp(d) {
		p, ok := d.(*Pair)
		if !ok {
			return nil, fmt.Errorf("not a proper list: %v", Repr(d))
		}
		out = append(out, p.car)
		d = p.cdr
	}
	return out, nil
}

func getPair(d Data) (*Pair, error) {
	if p, ok := d.(*Pair); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%v: value is not a pair", Repr(d))
}

// Len returns the length of a proper list, or -1 if d is not one.
func Len(d Data) int {
	var i int
	for !nullp(d) {
		p, ok := d.(*Pair)
		if !ok {
			return -1
		}
		i++
		d = p.cdr
	}
	return i
}

// copyDatum returns a fresh copy of the pair structure of d.
func copyDatum(d Data) Data {
	p, ok := d.(*Pair)
	if !ok {
		return d
	}
	head := Cons(copyDatum(p.car), Empty)
	last := head
	for {
		next, ok := p.cdr.(*Pair)
		if !ok {
			last.cdr = copyDatum(p.cdr)
			return head
		}
		cell := Cons(copyDatum(next.car), Empty)
		last.cdr = cell
		last = cell
		p = next
	}
}
