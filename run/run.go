// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for nock.
// It is factored out of main so it can be used for tests.
// This layout also helps out nock/mobile.
package run // import "robpike.io/nock/run"

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"robpike.io/nock/config"
	"robpike.io/nock/exec"
	"robpike.io/nock/lex"
	"robpike.io/nock/parse"
	"robpike.io/nock/value"
)

// Run runs the parser/evaluator until EOF or error.
// The return value says whether we completed without error. If the return
// value is true, it means we ran out of data (EOF) and the run was successful.
// Typical execution is therefore to loop calling Run until it succeeds.
// Error details, including crashes, are reported to the configured error
// output stream.
func Run(p *parse.Parser, context *exec.Context, interactive bool) (success bool) {
	conf := context.Config()
	writer := conf.Output()
	defer func() {
		if conf.Debug("panic") {
			return
		}
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			fmt.Fprintf(conf.ErrOutput(), "%s%s\n", p.Loc(), err)
			success = false
			return
		}
		panic(err)
	}()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		e, ok := p.Line()
		if e != nil {
			n, err := context.Eval(e)
			if err != nil {
				fmt.Fprintf(conf.ErrOutput(), "%s%s\n", p.Loc(), err)
				return false
			}
			fmt.Fprintln(writer, n)
		}
		if !ok {
			return true
		}
	}
}

// Eval evaluates the single expression in text and returns its normal form.
// A crash is returned as a *value.Crash; a malformed expression as a
// value.Error.
func Eval(context *exec.Context, text string) (value.Noun, error) {
	e, err := parse.Parse(text)
	if err != nil {
		return nil, err
	}
	return context.Eval(e)
}

// Nock evaluates text, which holds any number of expressions and special
// commands, using a fresh context with configuration conf. It returns
// the rendered normal forms, one per line, or stops at the first problem
// with its description: "crash: " and the stuck operation for a crash,
// "error: " and a message for anything else.
func Nock(conf *config.Config, text string) string {
	conf = conf.Clone()
	var out, errOut bytes.Buffer
	conf.SetOutput(&out)
	conf.SetErrOutput(&errOut)
	context := exec.NewContext(conf)
	parser := parse.NewParser("", lex.NewLexer(conf, "", strings.NewReader(text)), context)
	if !run(parser, context) {
		return strings.TrimSuffix(out.String()+errOut.String(), "\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}

// run is Run with problems reported in the form Nock returns.
func run(p *parse.Parser, context *exec.Context) (success bool) {
	conf := context.Config()
	defer func() {
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			fmt.Fprintf(conf.ErrOutput(), "error: %s\n", err)
			success = false
			return
		}
		panic(err)
	}()
	for {
		e, ok := p.Line()
		if e != nil {
			n, err := context.Eval(e)
			var crash *value.Crash
			switch {
			case errors.As(err, &crash):
				fmt.Fprintln(conf.ErrOutput(), crash)
				return false
			case err != nil:
				fmt.Fprintf(conf.ErrOutput(), "error: %s\n", err)
				return false
			}
			fmt.Fprintln(conf.Output(), n)
		}
		if !ok {
			return true
		}
	}
}
