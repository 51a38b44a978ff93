// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// A Tracer receives each rule a Machine applies, with the subject and
// formula it was applied to. Depth is the number of pending
// continuations, suitable for indentation.
type Tracer interface {
	Trace(depth int, rule Rule, subject, formula Noun)
}

// Machine reduces *[subject formula]. Rather than recurse in Go, it keeps
// its continuations in a slice, so formula depth is limited only by memory,
// and tail positions (the second half of opcodes 2 and 6 through 10) reuse
// the current continuation: loops built from them run in constant space.
//
// The zero Machine has no limits and no tracing. A Machine must not be used
// by more than one goroutine at a time.
type Machine struct {
	// Trace, if not nil, receives every rule applied.
	Trace Tracer
	// Hint, if not nil, is called for each opcode 10 with the hint tag and,
	// for a dynamic hint, its computed clue (nil for a static hint).
	// It cannot affect the result. With Expand set, dynamic hints are
	// reduced by their expansion and not reported.
	Hint func(tag, clue Noun)
	// Expand causes opcodes 6 through 10 to be reduced by rewriting them
	// with Expand instead of directly. The results are the same.
	Expand bool
	// MaxSteps, if positive, bounds the number of formulas evaluated by
	// one call to Nock; beyond it Nock returns ErrStepLimit.
	MaxSteps int64
	// Done, if not nil, is polled during evaluation; once it is closed,
	// Nock returns ErrInterrupted.
	Done <-chan struct{}

	steps int64
	stack []frame
}

// pollInterval is how many steps pass between checks of Done.
const pollInterval = 1024

// kind says what to do with a computed value when a frame is popped.
type kind uint8

const (
	consTail kind = iota // Head done: evaluate formula a, the tail, against subject.
	consDone             // Tail done: the result is [a value].
	evalFormula          // Opcode 2, new subject done: evaluate formula a against subject.
	evalRun              // Opcode 2, new formula done: run it against subject a.
	cellTest             // Opcode 3.
	increment            // Opcode 4.
	equality             // Opcode 5.
	choose               // Opcode 6, test done: 0 selects a, 1 selects b.
	compose              // Opcode 7: run formula a against the value.
	push                 // Opcode 8: run formula a against [value subject].
	invoke               // Opcode 9, core done: run its arm at axis a against it.
	clue                 // Opcode 10, clue done: report it with tag b, run a against subject.
)

type frame struct {
	kind    kind
	subject Noun
	formula Noun // The formula being reduced when the frame was pushed; for crash reports.
	a, b    Noun
}

// Nock reduces *[subject formula] using a Machine with no limits.
func Nock(subject, formula Noun) (Noun, error) {
	var m Machine
	return m.Nock(subject, formula)
}

// Steps reports the number of formulas evaluated by the most recent call to Nock.
func (m *Machine) Steps() int64 {
	return m.steps
}

// Nock reduces *[subject formula] to a normal form. A formula that no
// rule accepts, anywhere in the reduction, makes the result a *Crash.
// Nock is not reentrant: neither Trace nor Hint may call it.
func (m *Machine) Nock(subject, formula Noun) (Noun, error) {
	m.steps = 0
	m.stack = m.stack[:0]
	defer func() {
		// Let the garbage collector have the nouns.
		clear(m.stack)
		m.stack = m.stack[:0]
	}()
	var result Noun
	for {
		// Evaluate *[subject formula], either producing a result or
		// setting up the next evaluation.
		if err := m.step(); err != nil {
			return nil, err
		}
		f, ok := formula.(*Cell)
		if !ok {
			return nil, m.crash(subject, formula)
		}
		switch op := f.Head.(type) {
		case *Cell:
			m.trace(RuleCons, subject, formula)
			m.push(frame{kind: consTail, subject: subject, formula: formula, a: f.Tail})
			formula = op
			continue
		case Atom:
			code, ok := op.Uint64()
			if !ok || code > 10 {
				return nil, m.crash(subject, formula)
			}
			args := f.Tail
			if code >= 6 && m.Expand {
				m.trace(Rule(int(RuleIf)+int(code)-6)+m.staticHint(code, args), subject, formula)
				if code == 10 {
					m.hint(args)
				}
				expanded, ok := Expand(formula)
				if !ok {
					return nil, m.crash(subject, formula)
				}
				formula = expanded
				continue
			}
			switch code {
			case 0:
				m.trace(RuleSlot, subject, formula)
				r, err := Slot(args, subject)
				if err != nil {
					m.trace(RuleCrash, subject, formula)
					return nil, err
				}
				result = r
			case 1:
				m.trace(RuleConst, subject, formula)
				result = args
			case 2:
				bc, ok := args.(*Cell)
				if !ok {
					return nil, m.crash(subject, formula)
				}
				m.trace(RuleEval, subject, formula)
				m.push(frame{kind: evalFormula, subject: subject, formula: formula, a: bc.Tail})
				formula = bc.Head
				continue
			case 3, 4, 5:
				m.trace(Rule(int(RuleCell)+int(code)-3), subject, formula)
				m.push(frame{kind: cellTest + kind(code-3), subject: subject, formula: formula})
				formula = args
				continue
			case 6:
				bc, ok := args.(*Cell)
				if !ok {
					return nil, m.crash(subject, formula)
				}
				cd, ok := bc.Tail.(*Cell)
				if !ok {
					return nil, m.crash(subject, formula)
				}
				m.trace(RuleIf, subject, formula)
				m.push(frame{kind: choose, subject: subject, formula: formula, a: cd.Head, b: cd.Tail})
				formula = bc.Head
				continue
			case 7, 8, 9:
				bc, ok := args.(*Cell)
				if !ok {
					return nil, m.crash(subject, formula)
				}
				m.trace(Rule(int(RuleCompose)+int(code)-7), subject, formula)
				switch code {
				case 7:
					m.push(frame{kind: compose, subject: subject, formula: formula, a: bc.Tail})
					formula = bc.Head
				case 8:
					m.push(frame{kind: push, subject: subject, formula: formula, a: bc.Tail})
					formula = bc.Head
				case 9:
					m.push(frame{kind: invoke, subject: subject, formula: formula, a: bc.Head})
					formula = bc.Tail
				}
				continue
			case 10:
				hd, ok := args.(*Cell)
				if !ok {
					return nil, m.crash(subject, formula)
				}
				if tc, ok := hd.Head.(*Cell); ok {
					m.trace(RuleClue, subject, formula)
					m.push(frame{kind: clue, subject: subject, formula: formula, a: hd.Tail, b: tc.Head})
					formula = tc.Tail
					continue
				}
				m.trace(RuleHint, subject, formula)
				m.hint(args)
				formula = hd.Tail
				continue
			}
		default:
			return nil, m.crash(subject, formula)
		}

		// We have a result. Pop continuations until one of them
		// needs another evaluation.
	Return:
		for {
			if len(m.stack) == 0 {
				return result, nil
			}
			fr := m.pop()
			switch fr.kind {
			case consTail:
				m.push(frame{kind: consDone, a: result})
				subject, formula = fr.subject, fr.a
				break Return
			case consDone:
				result = NewCell(fr.a, result)
			case evalFormula:
				m.push(frame{kind: evalRun, formula: fr.formula, a: result})
				subject, formula = fr.subject, fr.a
				break Return
			case evalRun:
				subject, formula = fr.a, result
				break Return
			case cellTest:
				result = CellTest(result)
			case increment:
				r, err := Increment(result)
				if err != nil {
					return nil, err
				}
				result = r
			case equality:
				r, err := Equality(result)
				if err != nil {
					return nil, err
				}
				result = r
			case choose:
				t, ok := result.(Atom)
				switch {
				case ok && t.Equal(Yes):
					formula = fr.a
				case ok && t.Equal(No):
					formula = fr.b
				default:
					return nil, m.crash(fr.subject, fr.formula)
				}
				subject = fr.subject
				break Return
			case compose:
				subject, formula = result, fr.a
				break Return
			case push:
				subject, formula = NewCell(result, fr.subject), fr.a
				break Return
			case invoke:
				arm, err := Slot(fr.a, result)
				if err != nil {
					return nil, err
				}
				subject, formula = result, arm
				break Return
			case clue:
				if m.Hint != nil {
					m.Hint(fr.b, result)
				}
				subject, formula = fr.subject, fr.a
				break Return
			}
		}
	}
}

// step counts one evaluation and enforces the limits.
func (m *Machine) step() error {
	m.steps++
	if m.MaxSteps > 0 && m.steps > m.MaxSteps {
		return ErrStepLimit
	}
	if m.Done != nil && m.steps%pollInterval == 0 {
		select {
		case <-m.Done:
			return ErrInterrupted
		default:
		}
	}
	return nil
}

func (m *Machine) push(f frame) {
	m.stack = append(m.stack, f)
}

func (m *Machine) pop() frame {
	f := m.stack[len(m.stack)-1]
	m.stack[len(m.stack)-1] = frame{}
	m.stack = m.stack[:len(m.stack)-1]
	return f
}

func (m *Machine) trace(rule Rule, subject, formula Noun) {
	if m.Trace != nil {
		m.Trace.Trace(len(m.stack), rule, subject, formula)
	}
}

// staticHint adjusts the trace rule for opcode 10, whose table has two lines.
func (m *Machine) staticHint(code uint64, args Noun) Rule {
	if code != 10 {
		return 0
	}
	if c, ok := args.(*Cell); ok {
		if _, ok := c.Head.(*Cell); ok {
			return 0
		}
	}
	return 1
}

// hint reports a static hint, whose operands are [tag formula].
func (m *Machine) hint(args Noun) {
	if m.Hint == nil {
		return
	}
	c, ok := args.(*Cell)
	if !ok {
		return
	}
	switch tag := c.Head.(type) {
	case Atom:
		m.Hint(tag, nil)
	}
}

func (m *Machine) crash(subject, formula Noun) error {
	m.trace(RuleCrash, subject, formula)
	return crash(Tar, NewCell(subject, formula))
}
