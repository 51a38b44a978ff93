// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value // import "robpike.io/nock/value"

import (
	"math/big"
	"strings"
)

// Noun is the only kind of data in Nock: an Atom or a *Cell.
// Nouns are never modified once built, so they may be shared freely.
type Noun interface {
	Expr
	noun()
}

// Atom is an unsigned integer of any size.
// The zero value is the atom 0.
type Atom struct {
	x *big.Int // nil means zero; never modified.
}

// Cell is an ordered pair of nouns.
type Cell struct {
	Head Noun
	Tail Noun
}

var (
	// Yes and No are the loobeans: 0 is true, 1 is false.
	Yes = NewAtom(0)
	No  = NewAtom(1)

	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

func (Atom) noun()  {}
func (*Cell) noun() {}
func (Atom) expr()  {}
func (*Cell) expr() {}

// NewAtom returns the atom with value n.
func NewAtom(n uint64) Atom {
	if n == 0 {
		return Atom{}
	}
	return Atom{new(big.Int).SetUint64(n)}
}

// AtomFromBig returns the atom with the value of x, which must not be negative.
// The atom holds a copy of x.
func AtomFromBig(x *big.Int) Atom {
	if x.Sign() < 0 {
		panic("value: negative atom " + x.String())
	}
	if x.Sign() == 0 {
		return Atom{}
	}
	return Atom{new(big.Int).Set(x)}
}

// ParseAtom returns the atom written as s, a string of decimal digits.
// Periods group digits and are ignored: 1.000.000 is a million.
func ParseAtom(s string) (Atom, error) {
	digits := strings.ReplaceAll(s, ".", "")
	if digits == "" {
		return Atom{}, Errorf("bad atom %q", s)
	}
	for _, r := range digits {
		if r < '0' || '9' < r {
			return Atom{}, Errorf("bad atom %q", s)
		}
	}
	x, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Atom{}, Errorf("bad atom %q", s)
	}
	return AtomFromBig(x), nil
}

func (a Atom) big() *big.Int {
	if a.x == nil {
		return bigZero
	}
	return a.x
}

// Big returns the value of a as a new big.Int.
func (a Atom) Big() *big.Int {
	return new(big.Int).Set(a.big())
}

// Uint64 returns the value of a and reports whether it fits in a uint64.
func (a Atom) Uint64() (uint64, bool) {
	x := a.big()
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}

// IsZero reports whether a is 0.
func (a Atom) IsZero() bool {
	return a.big().Sign() == 0
}

// Inc returns a+1.
func (a Atom) Inc() Atom {
	return Atom{new(big.Int).Add(a.big(), bigOne)}
}

// Equal reports whether a and b are the same number.
func (a Atom) Equal(b Atom) bool {
	return a.big().Cmp(b.big()) == 0
}

func (a Atom) String() string {
	return a.big().String()
}

// NewCell returns the cell [head tail].
func NewCell(head, tail Noun) *Cell {
	return &Cell{Head: head, Tail: tail}
}

// List returns the right-nested chain of its arguments:
// List(a, b, c) is [a [b c]]. With one argument it returns that noun.
func List(nouns ...Noun) Noun {
	if len(nouns) == 0 {
		panic("value: empty List")
	}
	n := nouns[len(nouns)-1]
	for i := len(nouns) - 2; i >= 0; i-- {
		n = NewCell(nouns[i], n)
	}
	return n
}

func (c *Cell) String() string {
	return exprString(c)
}

// Equal reports whether a and b are structurally identical.
// Deep nouns are compared without recursion.
func Equal(a, b Noun) bool {
	type pair struct{ a, b Noun }
	work := []pair{{a, b}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		switch x := p.a.(type) {
		case Atom:
			y, ok := p.b.(Atom)
			if !ok || !x.Equal(y) {
				return false
			}
		case *Cell:
			y, ok := p.b.(*Cell)
			if !ok {
				return false
			}
			if x == y {
				continue
			}
			work = append(work, pair{x.Tail, y.Tail}, pair{x.Head, y.Head})
		default:
			return false
		}
	}
	return true
}
