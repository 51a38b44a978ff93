// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec evaluates parsed Nock expressions.
package exec // import "robpike.io/nock/exec"

import (
	"robpike.io/nock/config"
	"robpike.io/nock/value"
)

// Context holds execution context: the configuration and the machine
// that runs the * operator. A Context must not be used by more than one
// goroutine at a time, but separate Contexts are independent.
type Context struct {
	// config is the configuration state used for evaluation, printing, etc.
	config *config.Config

	machine value.Machine
	done    <-chan struct{}
	// steps counts the formulas evaluated by the most recent Reduce,
	// across all of its * applications.
	steps int64
	// indent caches trace indentation markers for this context.
	indent string
}

// NewContext returns a new execution context using the configuration.
func NewContext(conf *config.Config) *Context {
	return &Context{
		config: conf,
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// SetDone installs a channel that, once closed, interrupts evaluation
// with value.ErrInterrupted. A nil channel never interrupts.
func (c *Context) SetDone(done <-chan struct{}) {
	c.done = done
}

// Steps reports the number of formulas evaluated by the most recent
// Reduce or Eval.
func (c *Context) Steps() int64 {
	return c.steps
}

// Eval evaluates a top-level expression. An expression that is not an
// operator application is a subject and formula pair and is run with
// the * operator: evaluating [a b] computes *[a b].
func (c *Context) Eval(e value.Expr) (value.Noun, error) {
	if _, ok := e.(*value.Apply); !ok {
		e = &value.Apply{Op: value.Tar, Right: e}
	}
	return c.Reduce(e)
}

// Reduce reduces e to a normal form, innermost operator applications
// first and left before right. A noun is already normal and is returned
// unchanged. The first crash stops the reduction and is returned as
// a *value.Crash.
func (c *Context) Reduce(e value.Expr) (value.Noun, error) {
	c.steps = 0
	if n, ok := e.(value.Noun); ok {
		return n, nil
	}
	c.setup()
	// Each work item is an expression to reduce or, once its operands
	// are on the value stack, to finish.
	type work struct {
		e      value.Expr
		finish bool
	}
	todo := []work{{e: e}}
	var values []value.Noun
	for len(todo) > 0 {
		w := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		switch e := w.e.(type) {
		case value.Noun:
			values = append(values, e)
		case *value.Pair:
			if w.finish {
				n := len(values)
				values = append(values[:n-2], value.NewCell(values[n-2], values[n-1]))
				continue
			}
			todo = append(todo, work{e: e, finish: true}, work{e: e.Tail}, work{e: e.Head})
		case *value.Apply:
			if w.finish {
				n := len(values)
				r, err := c.apply(e.Op, values[n-1])
				if err != nil {
					return nil, err
				}
				values[n-1] = r
				continue
			}
			todo = append(todo, work{e: e, finish: true}, work{e: e.Right})
		default:
			return nil, value.Errorf("cannot reduce %T", e)
		}
	}
	return values[0], nil
}

// setup brings the machine up to date with the configuration.
func (c *Context) setup() {
	m := &c.machine
	m.Trace = nil
	m.Hint = nil
	if c.config.Trace() {
		m.Trace = c
		m.Hint = c.traceHint
	}
	m.Expand = c.config.Expand()
	m.Done = c.done
}

// apply applies a single operator to a reduced operand.
func (c *Context) apply(op value.Op, n value.Noun) (value.Noun, error) {
	if _, isCell := n.(*value.Cell); op != value.Tar || !isCell {
		if c.config.Trace() {
			c.traceOp(op, n)
		}
		return value.ApplyOp(op, n)
	}
	// The step limit covers the whole reduction, not each *.
	if max := c.config.MaxSteps(); max > 0 {
		if c.steps >= max {
			return nil, value.ErrStepLimit
		}
		c.machine.MaxSteps = max - c.steps
	} else {
		c.machine.MaxSteps = 0
	}
	r, err := c.machine.Apply(op, n)
	c.steps += c.machine.Steps()
	return r, err
}
