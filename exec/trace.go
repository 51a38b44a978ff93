// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"strings"

	"robpike.io/nock/value"
)

// maxTrace bounds the length of a noun printed in a trace line.
const maxTrace = 60

// short returns its argument, truncating if it's too long.
func short(s string) string {
	if len(s) > maxTrace {
		s = s[:maxTrace] + "..."
	}
	return s
}

// traceIndent returns an indentation marker showing the depth of the stack.
// The marker is kept per context; contexts may trace in parallel.
func (c *Context) traceIndent(depth int) string {
	n := 2 * depth
	if len(c.indent) < n {
		c.indent = strings.Repeat("| ", depth+10)
	}
	return c.indent[:n]
}

// Trace implements value.Tracer. It prints the rule applied and the
// expression it was applied to.
func (c *Context) Trace(depth int, rule value.Rule, subject, formula value.Noun) {
	e := &value.Apply{Op: value.Tar, Right: value.NewCell(subject, formula)}
	fmt.Fprintf(c.config.TraceOutput(), "%s%s\t%s\n", c.traceIndent(depth), rule, short(e.String()))
}

// traceOp prints the application of an operator other than *, which
// happens outside the machine.
func (c *Context) traceOp(op value.Op, n value.Noun) {
	e := &value.Apply{Op: op, Right: n}
	fmt.Fprintf(c.config.TraceOutput(), "%s\n", short(e.String()))
}

// traceHint prints a hint reported by opcode 10.
func (c *Context) traceHint(tag, clue value.Noun) {
	if clue == nil {
		fmt.Fprintf(c.config.TraceOutput(), "hint %s\n", tag)
		return
	}
	fmt.Fprintf(c.config.TraceOutput(), "hint %s %s\n", tag, short(clue.String()))
}
