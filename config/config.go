// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings that control evaluation and printing.
package config // import "robpike.io/nock/config"

import (
	"io"
	"os"
)

const (
	// NockVersion is the revision of the Nock rules implemented.
	NockVersion = "5K"
	// Version is the revision of this interpreter.
	Version = "0.1"
)

// DebugFlags lists the names of the debug flags, in sorted order.
var DebugFlags = [...]string{
	"panic",
	"parse",
	"tokens",
}

// A Config holds information about the configuration of the system.
// The zero value of a Config is ready to use.
type Config struct {
	prompt      string
	output      io.Writer
	errOutput   io.Writer
	traceOutput io.Writer
	trace       bool
	expand      bool
	maxSteps    int64
	debug       map[string]bool
}

// Clone returns a copy of c that can be changed without affecting c.
func (c *Config) Clone() *Config {
	d := *c
	d.debug = nil
	for name, state := range c.debug {
		d.SetDebug(name, state)
	}
	return &d
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed; a nil value
// sets it back to os.Stdout.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed; a nil value
// sets it back to os.Stderr.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

// TraceOutput returns the writer that receives the trace of reductions.
// Unless set, it is the same as Output.
func (c *Config) TraceOutput() io.Writer {
	if c.traceOutput == nil {
		return c.Output()
	}
	return c.traceOutput
}

func (c *Config) SetTraceOutput(output io.Writer) {
	c.traceOutput = output
}

// Trace reports whether each reduction step is traced.
func (c *Config) Trace() bool {
	return c.trace
}

// SetTrace turns tracing on or off. Tracing never changes a result.
func (c *Config) SetTrace(trace bool) {
	c.trace = trace
}

// Expand reports whether opcodes 6 through 10 are reduced through their
// macro expansions rather than directly.
func (c *Config) Expand() bool {
	return c.expand
}

func (c *Config) SetExpand(expand bool) {
	c.expand = expand
}

// MaxSteps returns the maximum number of reduction steps for a single
// evaluation. Zero means no limit.
func (c *Config) MaxSteps() int64 {
	return c.maxSteps
}

func (c *Config) SetMaxSteps(max int64) {
	if max < 0 {
		max = 0
	}
	c.maxSteps = max
}

// Debug reports the state of the named debug flag.
func (c *Config) Debug(flag string) bool {
	return c.debug[flag]
}

// IsDebugFlag reports whether flag names a known debug flag.
func IsDebugFlag(flag string) bool {
	for _, f := range DebugFlags {
		if f == flag {
			return true
		}
	}
	return false
}

// SetDebug sets the named debug flag. It reports whether the flag is known.
func (c *Config) SetDebug(flag string, state bool) bool {
	if !IsDebugFlag(flag) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[flag] = state
	return true
}
