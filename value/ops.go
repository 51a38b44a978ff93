// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// The scalar operators and slot addressing.

// CellTest implements ?: Yes (0) for a cell, No (1) for an atom.
func CellTest(n Noun) Noun {
	if _, ok := n.(*Cell); ok {
		return Yes
	}
	return No
}

// Increment implements +: a+1 for an atom a. A cell crashes.
func Increment(n Noun) (Noun, error) {
	a, ok := n.(Atom)
	if !ok {
		return nil, crash(Lus, n)
	}
	return a.Inc(), nil
}

// Equality implements =: for a cell [a b], Yes if a and b are
// structurally equal and No otherwise. An atom crashes.
func Equality(n Noun) (Noun, error) {
	c, ok := n.(*Cell)
	if !ok {
		return nil, crash(Tis, n)
	}
	if Equal(c.Head, c.Tail) {
		return Yes, nil
	}
	return No, nil
}

// Slot implements /[axis tree]. Axis 1 is the whole tree; for axis n,
// 2n is the head of /[n tree] and 2n+1 its tail. Each bit of the axis
// below the leading 1 is therefore one step, 0 to the head and 1 to the
// tail, taken from the most significant end.
// A cell or zero axis, or a path that runs into an atom, crashes.
func Slot(axis, tree Noun) (Noun, error) {
	a, ok := axis.(Atom)
	if !ok || a.IsZero() {
		return nil, crash(Fas, NewCell(axis, tree))
	}
	x := a.big()
	n := tree
	for i := x.BitLen() - 2; i >= 0; i-- {
		c, ok := n.(*Cell)
		if !ok {
			return nil, crash(Fas, NewCell(axis, tree))
		}
		if x.Bit(i) == 0 {
			n = c.Head
		} else {
			n = c.Tail
		}
	}
	return n, nil
}

// Apply applies op to n. The * operator runs m.
func (m *Machine) Apply(op Op, n Noun) (Noun, error) {
	switch op {
	case Wut:
		return CellTest(n), nil
	case Lus:
		return Increment(n)
	case Tis:
		return Equality(n)
	case Fas:
		c, ok := n.(*Cell)
		if !ok {
			return nil, crash(Fas, n)
		}
		return Slot(c.Head, c.Tail)
	case Tar:
		c, ok := n.(*Cell)
		if !ok {
			return nil, crash(Tar, n)
		}
		return m.Nock(c.Head, c.Tail)
	}
	return nil, Errorf("unknown operator %q", op)
}

// ApplyOp applies op to n using a machine with no limits.
func ApplyOp(op Op, n Noun) (Noun, error) {
	var m Machine
	return m.Apply(op, n)
}
