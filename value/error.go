// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// Error is the type of a syntax or usage error, such as malformed input.
// The parser panics with an Error and the run loop recovers it.
type Error string

func (err Error) Error() string {
	return string(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// A Crash is the outcome of applying an operator to a noun that no rule
// accepts. It is a legitimate result of evaluating some Nock programs,
// not a failure of the interpreter.
type Crash struct {
	Op      Op   // The operator that could not be applied.
	Operand Noun // The noun it was applied to.
}

func (c *Crash) Error() string {
	return "crash: " + c.Op.String() + c.Operand.String()
}

func crash(op Op, operand Noun) *Crash {
	return &Crash{Op: op, Operand: operand}
}

var (
	// ErrStepLimit reports that evaluation was stopped after the
	// configured number of steps.
	ErrStepLimit = Error("step limit exceeded")
	// ErrInterrupted reports that evaluation was cancelled from outside.
	ErrInterrupted = Error("interrupted")
)
