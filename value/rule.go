// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Rule identifies a line of the reduction table for the * operator.
type Rule int

const (
	RuleCons    Rule = iota // *[a [b c] d]
	RuleSlot                // *[a 0 b]
	RuleConst               // *[a 1 b]
	RuleEval                // *[a 2 b c]
	RuleCell                // *[a 3 b]
	RuleInc                 // *[a 4 b]
	RuleEq                  // *[a 5 b]
	RuleIf                  // *[a 6 b c d]
	RuleCompose             // *[a 7 b c]
	RulePush                // *[a 8 b c]
	RuleInvoke              // *[a 9 b c]
	RuleClue                // *[a 10 [b c] d]
	RuleHint                // *[a 10 b c]
	RuleCrash               // *a
)

var ruleText = [...]string{
	RuleCons:    "*[a [b c] d]     [*[a b c] *[a d]]",
	RuleSlot:    "*[a 0 b]         /[b a]",
	RuleConst:   "*[a 1 b]         b",
	RuleEval:    "*[a 2 b c]       *[*[a b] *[a c]]",
	RuleCell:    "*[a 3 b]         ?*[a b]",
	RuleInc:     "*[a 4 b]         +*[a b]",
	RuleEq:      "*[a 5 b]         =*[a b]",
	RuleIf:      "*[a 6 b c d]     *[a 2 [0 1] 2 [1 c d] [1 0] 2 [1 2 3] [1 0] 4 4 b]",
	RuleCompose: "*[a 7 b c]       *[a 2 b 1 c]",
	RulePush:    "*[a 8 b c]       *[a 7 [[7 [0 1] b] 0 1] c]",
	RuleInvoke:  "*[a 9 b c]       *[a 7 c 2 [0 1] 0 b]",
	RuleClue:    "*[a 10 [b c] d]  *[a 8 c 7 [0 3] d]",
	RuleHint:    "*[a 10 b c]      *[a c]",
	RuleCrash:   "*a               *a",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleText) {
		return "unknown rule"
	}
	return ruleText[r]
}

func atoms(ns ...uint64) []Noun {
	list := make([]Noun, len(ns))
	for i, n := range ns {
		list[i] = NewAtom(n)
	}
	return list
}

// Expand rewrites a formula whose opcode is one of the derived opcodes 6
// through 10 into its definition in terms of the other rules. It reports
// false if formula is not such a formula or its operands have the wrong
// shape.
func Expand(formula Noun) (Noun, bool) {
	f, ok := formula.(*Cell)
	if !ok {
		return nil, false
	}
	op, ok := f.Head.(Atom)
	if !ok {
		return nil, false
	}
	code, ok := op.Uint64()
	if !ok || code < 6 || code > 10 {
		return nil, false
	}
	args, ok := f.Tail.(*Cell)
	if !ok {
		return nil, false
	}
	b, c := args.Head, args.Tail
	n := NewAtom
	switch code {
	case 6:
		cd, ok := c.(*Cell)
		if !ok {
			return nil, false
		}
		// [2 [0 1] 2 [1 c d] [1 0] 2 [1 2 3] [1 0] 4 4 b]
		return List(
			n(2), List(atoms(0, 1)...),
			n(2), List(n(1), cd.Head, cd.Tail), List(atoms(1, 0)...),
			n(2), List(atoms(1, 2, 3)...), List(atoms(1, 0)...),
			n(4), n(4), b,
		), true
	case 7:
		// [2 b 1 c]
		return List(n(2), b, n(1), c), true
	case 8:
		// [7 [[7 [0 1] b] 0 1] c]
		return List(
			n(7),
			List(List(n(7), List(atoms(0, 1)...), b), n(0), n(1)),
			c,
		), true
	case 9:
		// [7 c 2 [0 1] 0 b]
		return List(n(7), c, n(2), List(atoms(0, 1)...), n(0), b), true
	case 10:
		hint, ok := b.(*Cell)
		if !ok {
			// [10 b c] is just c.
			return c, true
		}
		// [8 c 7 [0 3] d]
		return List(n(8), hint.Tail, n(7), List(atoms(0, 3)...), c), true
	}
	return nil, false
}
