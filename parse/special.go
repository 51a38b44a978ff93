// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"robpike.io/nock/config"
	"robpike.io/nock/lex"
	"robpike.io/nock/scan"
	"robpike.io/nock/value"
)

// maxGetDepth bounds the nesting of )get.
const maxGetDepth = 10

func (p *Parser) need(want ...scan.Type) scan.Token {
	tok := p.next()
	for _, w := range want {
		if tok.Type == w {
			return tok
		}
	}
	// Make the output look nice; usually there is only one item.
	if len(want) == 1 {
		p.errorf("expected %s, got %s", want[0], tok)
	}
	str := want[0].String()
	for _, s := range want[1:] {
		str += " or " + s.String()
	}
	p.errorf("expected %s; got %s", str, tok)
	panic("not reached")
}

// nextNumber returns the next atom, which must fit in a non-negative int64.
func (p *Parser) nextNumber() int64 {
	a, err := value.ParseAtom(p.need(scan.Atom).Text)
	if err != nil {
		p.errorf("%s", err)
	}
	n, ok := a.Uint64()
	if !ok || n > 1<<63-1 {
		p.errorf("value out of range: %s", a)
	}
	return int64(n)
}

// nextBool returns the next atom, which must be 0 or 1.
func (p *Parser) nextBool() bool {
	switch p.nextNumber() {
	case 0:
		return false
	case 1:
		return true
	}
	p.errorf("value must be 0 or 1")
	panic("not reached")
}

func truth(x bool) int {
	if x {
		return 1
	}
	return 0
}

func (p *Parser) special() {
	p.need(scan.RightParen)
	conf := p.context.Config()
Switch:
	switch text := p.need(scan.Identifier).Text; text {
	case "help":
		p.Print(specialHelpMessage)
	case "debug":
		if p.peek().Type == scan.EOF {
			for _, f := range config.DebugFlags {
				p.Printf("%s\t%d\n", f, truth(conf.Debug(f)))
			}
			break Switch
		}
		name := p.need(scan.Identifier).Text
		if !config.IsDebugFlag(name) {
			p.Println("no such debug flag:", name)
			break Switch
		}
		if p.peek().Type == scan.EOF {
			// Toggle the value
			conf.SetDebug(name, !conf.Debug(name))
			p.Println(truth(conf.Debug(name)))
			break Switch
		}
		conf.SetDebug(name, p.nextBool())
	case "expand":
		if p.peek().Type == scan.EOF {
			p.Println(truth(conf.Expand()))
			break Switch
		}
		conf.SetExpand(p.nextBool())
	case "get":
		p.runFromFile(p.getString())
	case "prompt":
		if p.peek().Type == scan.EOF {
			p.Printf("%q\n", conf.Prompt())
			break Switch
		}
		conf.SetPrompt(p.getString())
	case "steps":
		if p.peek().Type == scan.EOF {
			p.Println(conf.MaxSteps())
			break Switch
		}
		conf.SetMaxSteps(p.nextNumber())
	case "trace":
		if p.peek().Type == scan.EOF {
			p.Println(truth(conf.Trace()))
			break Switch
		}
		conf.SetTrace(p.nextBool())
	case "version":
		p.Printf("nock %s, Nock %s\n", config.Version, config.NockVersion)
	default:
		p.errorf(")%s: not recognized", text)
	}
	p.need(scan.EOF)
}

// Print prints the args and writes them to the configured output writer.
func (p *Parser) Print(args ...interface{}) {
	fmt.Fprint(p.context.Config().Output(), args...)
}

// getString returns the value of the string that must be next in the input.
func (p *Parser) getString() string {
	str, err := strconv.Unquote(p.need(scan.String).Text)
	if err != nil {
		p.errorf("%s", err)
	}
	return str
}

// runFromFile executes the contents of the named file.
func (p *Parser) runFromFile(name string) {
	fd, err := os.Open(name)
	if err != nil {
		p.errorf("%s", err)
	}
	defer fd.Close()
	p.runFromReader(name, fd)
}

// runFromReader executes the contents of the io.Reader, identified by name.
// It stops at the first error, which it reports.
func (p *Parser) runFromReader(name string, reader io.Reader) {
	if p.depth >= maxGetDepth {
		p.errorf("invocations of %q nested too deep", name)
	}
	conf := p.context.Config()
	parser := NewParser(name, lex.NewTokenizer(conf, name, bufio.NewReader(reader)), p.context)
	parser.depth = p.depth + 1
	defer func() {
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			fmt.Fprintf(conf.ErrOutput(), "%s%s\n", parser.Loc(), err)
			return
		}
		panic(err)
	}()
	for {
		e, ok := parser.Line()
		if e != nil {
			n, err := p.context.Eval(e)
			if err != nil {
				fmt.Fprintf(conf.ErrOutput(), "%s%s\n", parser.Loc(), err)
				return
			}
			p.Println(n)
		}
		if !ok {
			return
		}
	}
}
