// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strings"
	"unicode/utf8"
)

// Expr is a parsed expression. Every Noun is an Expr; so are operator
// applications and brackets that still contain them.
type Expr interface {
	String() string
	expr()
}

// Op is one of the five Nock operators, named by their runes.
type Op byte

const (
	Wut Op = '?' // cell test
	Lus Op = '+' // increment
	Tis Op = '=' // equality
	Fas Op = '/' // slot
	Tar Op = '*' // nock
)

// IsOp reports whether r is an operator character.
func IsOp(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune("?+=/*", r)
}

func (op Op) String() string {
	return string(rune(op))
}

// Apply is an operator applied to the expression following it, as in +[0 1].
type Apply struct {
	Op    Op
	Right Expr
}

// Pair is a bracketed pair at least one of whose halves holds an operator,
// as in [+1 2]. Brackets without operators are parsed as a *Cell.
type Pair struct {
	Head Expr
	Tail Expr
}

func (*Apply) expr() {}
func (*Pair) expr()  {}

func (a *Apply) String() string {
	return exprString(a)
}

func (p *Pair) String() string {
	return exprString(p)
}

// NewPair returns [head tail]: a *Cell if both are nouns, otherwise a *Pair.
func NewPair(head, tail Expr) Expr {
	h, hok := head.(Noun)
	t, tok := tail.(Noun)
	if hok && tok {
		return NewCell(h, t)
	}
	return &Pair{Head: head, Tail: tail}
}

// halves returns the head and tail of a bracketed expression.
func halves(e Expr) (head, tail Expr, ok bool) {
	switch e := e.(type) {
	case *Cell:
		return e.Head, e.Tail, true
	case *Pair:
		return e.Head, e.Tail, true
	}
	return nil, nil, false
}

// exprString renders e in the surface syntax. A bracket whose tail is
// another bracket prints as one flat list: [1 [2 3]] is [1 2 3].
// It uses an explicit stack so very deep nouns can be printed.
func exprString(e Expr) string {
	var b strings.Builder
	// Each item is an expression to print or, when e is nil, literal text.
	type item struct {
		e    Expr
		text string
	}
	stack := []item{{e: e}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch e := it.e.(type) {
		case nil:
			b.WriteString(it.text)
		case Atom:
			b.WriteString(e.String())
		case *Apply:
			b.WriteString(e.Op.String())
			stack = append(stack, item{e: e.Right})
		default:
			var row []Expr
			var x Expr = e
			for {
				h, t, ok := halves(x)
				if !ok {
					row = append(row, x)
					break
				}
				row = append(row, h)
				x = t
			}
			b.WriteByte('[')
			stack = append(stack, item{text: "]"})
			for i := len(row) - 1; i >= 0; i-- {
				stack = append(stack, item{e: row[i]})
				if i > 0 {
					stack = append(stack, item{text: " "})
				}
			}
		}
	}
	return b.String()
}
