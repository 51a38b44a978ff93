// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/sync/errgroup"

	"robpike.io/nock/config"
	"robpike.io/nock/demo"
	"robpike.io/nock/exec"
	"robpike.io/nock/lex"
	"robpike.io/nock/parse"
	"robpike.io/nock/run"
)

var (
	debugFlags = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
	demoFlag   = flag.Bool("demo", false, "run the demo")
	execute    = flag.String("e", "", "evaluate the `expression` and exit")
	expand     = flag.Bool("expand", false, "reduce opcodes 6 through 10 through their definitions")
	prompt     = flag.String("prompt", "nock> ", "command `prompt`")
	steps      = flag.Int64("steps", 0, "stop an evaluation after `n` steps; 0 means no limit")
	timeout    = flag.Duration("timeout", 0, "stop an evaluation after `duration`; 0 means no limit")
	trace      = flag.Bool("trace", false, "print each reduction rule as it is applied")
)

const historyFile = ".nock_history"

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("nock: ")

	flag.Usage = usage
	flag.Parse()

	initConf()

	switch {
	case *demoFlag:
		runDemo()
	case *execute != "":
		if !runString(*execute) {
			os.Exit(1)
		}
	case flag.NArg() > 0:
		if !runFiles(flag.Args()) {
			os.Exit(1)
		}
	case isTerminal(os.Stdin):
		repl()
	default:
		ex := exec.NewContext(&conf)
		parser := parse.NewParser("<stdin>", lex.NewLexer(&conf, "<stdin>", bufio.NewReader(os.Stdin)), ex)
		for !runWithLimits(context.Background(), parser, ex) {
		}
	}
}

// initConf sets the configuration from the flags.
func initConf() {
	conf.SetPrompt(*prompt)
	conf.SetTrace(*trace)
	conf.SetExpand(*expand)
	conf.SetMaxSteps(*steps)
	if *debugFlags != "" {
		for _, name := range strings.Split(*debugFlags, ",") {
			if !conf.SetDebug(name, true) {
				log.Fatalf("no such debug flag: %s", name)
			}
		}
	}
}

// runWithLimits runs the parser until EOF or error, like run.Run,
// stopping any evaluation that outlasts the timeout or is interrupted.
func runWithLimits(ctx context.Context, p *parse.Parser, ex *exec.Context) bool {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	ex.SetDone(ctx.Done())
	return run.Run(p, ex, false)
}

// runString evaluates the text of the -e flag.
func runString(text string) bool {
	ex := exec.NewContext(&conf)
	parser := parse.NewParser("<stdin>", lex.NewLexer(&conf, "<stdin>", strings.NewReader(text)), ex)
	return runWithLimits(context.Background(), parser, ex)
}

// runFiles evaluates the named files concurrently, each in its own
// context, and prints their output in argument order. Each file stops
// at its first error. It reports whether all of them succeeded.
func runFiles(names []string) bool {
	type result struct {
		out, errOut bytes.Buffer
		ok          bool
	}
	results := make([]result, len(names))
	eg, ctx := errgroup.WithContext(context.Background())
	for i, name := range names {
		eg.Go(func() error {
			fd, err := os.Open(name)
			if err != nil {
				return err
			}
			defer fd.Close()
			r := &results[i]
			c := conf.Clone()
			c.SetOutput(&r.out)
			c.SetErrOutput(&r.errOut)
			ex := exec.NewContext(c)
			parser := parse.NewParser(name, lex.NewLexer(c, name, bufio.NewReader(fd)), ex)
			r.ok = runWithLimits(ctx, parser, ex)
			return nil
		})
	}
	err := eg.Wait()
	ok := err == nil
	for i := range results {
		os.Stdout.Write(results[i].out.Bytes())
		os.Stderr.Write(results[i].errOut.Bytes())
		ok = ok && results[i].ok
	}
	if err != nil {
		log.Print(err)
	}
	return ok
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// repl runs an interactive session with line editing and history.
func repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	ex := exec.NewContext(&conf)
	for {
		text, ok := readExpr(ln)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(text, "\n", " "))
		parser := parse.NewParser("<stdin>", lex.NewLexer(&conf, "<stdin>", strings.NewReader(text)), ex)
		runWithLimits(context.Background(), parser, ex)
	}
}

// readExpr reads lines until they hold a complete expression.
// The boolean is false at EOF.
func readExpr(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		p := conf.Prompt()
		if b.Len() > 0 {
			p = strings.Repeat(" ", len(p))
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			log.Fatal(err)
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !parse.Incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// runDemo runs the demo script, feeding nock through a pipe.
func runDemo() {
	pr, pw := io.Pipe()
	c := conf.Clone()
	c.SetPrompt("")
	ex := exec.NewContext(c)
	parser := parse.NewParser("demo", lex.NewLexer(c, "demo", bufio.NewReader(pr)), ex)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for !runWithLimits(context.Background(), parser, ex) {
		}
	}()
	err := demo.Run(os.Stdin, pw, os.Stdout)
	pw.Close()
	<-done
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Demo finished")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: nock [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
