// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mobile is a narrow string-in, string-out interface to nock,
// for wrapping in a mobile UI with gomobile, which handles only
// primitive types.
//
// One configuration and context are shared by Eval and Demo, so
// settings such as )trace or )steps persist between calls until Reset.
// Only one caller may use the package at a time.
package mobile

//go:generate sh -c "go run help_gen.go | gofmt >help.go"

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"robpike.io/nock/config"
	"robpike.io/nock/exec"
	"robpike.io/nock/lex"
	"robpike.io/nock/parse"
	"robpike.io/nock/value"
)

// inputName labels the lines passed to Eval in error messages.
const inputName = "input"

var (
	conf    config.Config
	context *exec.Context
)

func init() {
	Reset()
}

// Eval evaluates each line of text and returns the normal forms, one per
// line, along with anything the special commands printed, traces included.
// A line that crashes or does not parse contributes an error, prefixed by
// its line number, and evaluation goes on with the next line. The errors
// of all lines are joined; a crash can be recovered with errors.As and
// a *value.Crash.
func Eval(text string) (string, error) {
	var out bytes.Buffer
	conf.SetOutput(&out)
	conf.SetErrOutput(&out)
	defer func() {
		conf.SetOutput(nil)
		conf.SetErrOutput(nil)
	}()
	parser := parse.NewParser(inputName, lex.NewLexer(&conf, inputName, strings.NewReader(text)), context)
	var errs []error
	for {
		n, ok, err := evalLine(parser)
		switch {
		case err != nil:
			errs = append(errs, err)
		case n != nil:
			fmt.Fprintln(&out, n)
		}
		if !ok {
			return out.String(), errors.Join(errs...)
		}
	}
}

// evalLine evaluates the next line of input. The boolean is false at EOF.
func evalLine(parser *parse.Parser) (n value.Noun, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, isErr := r.(value.Error)
			if !isErr {
				panic(r)
			}
			// The rest of the line was discarded; go on.
			n, ok, err = nil, true, fmt.Errorf("%s%w", parser.Loc(), e)
		}
	}()
	e, ok := parser.Line()
	if e == nil {
		return nil, ok, nil
	}
	n, err = context.Eval(e)
	if err != nil {
		return nil, ok, fmt.Errorf("%s%w", parser.Loc(), err)
	}
	return n, ok, nil
}

// Steps reports the number of formulas evaluated by the last expression.
func Steps() int64 {
	return context.Steps()
}

// Demo steps through a script one line at a time.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo resets the interpreter and returns a Demo of the lines of input.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next evaluates the next line of the script. It returns ("", io.EOF)
// after the last line. A crash on one line does not stop the demo.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}

// Reset discards the settings made by special commands, such as the
// step limit and tracing, and starts a fresh context.
func Reset() {
	conf = config.Config{}
	context = exec.NewContext(&conf)
}

// Help returns the help page formatted in HTML.
func Help() string {
	return help
}
