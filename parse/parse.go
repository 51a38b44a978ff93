// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns tokens into Nock expressions.
package parse // import "robpike.io/nock/parse"

import (
	"fmt"
	"strings"

	"robpike.io/nock/config"
	"robpike.io/nock/exec"
	"robpike.io/nock/lex"
	"robpike.io/nock/scan"
	"robpike.io/nock/value"
)

// tree formats an expression in an unambiguous form for debugging.
// It generates the output for )debug parse.
func tree(e value.Expr) string {
	switch e := e.(type) {
	case value.Atom:
		return fmt.Sprintf("<atom %s>", e)
	case *value.Cell:
		return fmt.Sprintf("<cell %s>", e)
	case *value.Pair:
		return fmt.Sprintf("[%s %s]", tree(e.Head), tree(e.Tail))
	case *value.Apply:
		return fmt.Sprintf("(%s %s)", e.Op, tree(e.Right))
	default:
		return fmt.Sprintf("%T", e)
	}
}

// Parser stores the state for the nock parser.
type Parser struct {
	reader   lex.TokenReader
	tokens   []scan.Token    // Points to tokenBuf.
	tokenBuf [100]scan.Token // Reusable.
	fileName string
	lineNum  int
	context  *exec.Context
	depth    int // Nesting of )get.
}

// NewParser returns a new parser that will read from the token reader.
func NewParser(fileName string, reader lex.TokenReader, context *exec.Context) *Parser {
	return &Parser{
		reader:   reader,
		fileName: fileName,
		context:  context,
	}
}

// Printf formats the args and writes them to the configured output writer.
func (p *Parser) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.context.Config().Output(), format, args...)
}

// Println prints the args and writes them to the configured output writer.
func (p *Parser) Println(args ...interface{}) {
	fmt.Fprintln(p.context.Config().Output(), args...)
}

// Loc returns the current input location in the form "name:line: ".
// If the input is standard input, it returns the empty string.
func (p *Parser) Loc() string {
	if p.fileName == "" || p.fileName == "<stdin>" {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", p.fileName, p.lineNum)
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
		p.lineNum = tok.Line
	}
	if tok.Type == scan.Error {
		p.errorf("%s", tok.Text)
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF}
	}
	return p.tokens[0]
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.tokens = p.tokenBuf[:0]
	panic(value.Errorf(format, args...))
}

// Line reads a line of input and returns the expression it holds.
// A nil expression means there was none: the line was blank or held
// a special command. The boolean is false at EOF.
//
// Line
//
//	) special command '\n'
//	expr '\n'
func (p *Parser) Line() (value.Expr, bool) {
	if !p.readTokensToNewline() {
		return nil, false
	}
	tok := p.peek()
	switch tok.Type {
	case scan.EOF:
		return nil, true
	case scan.RightParen:
		p.special()
		return nil, true
	}
	e := p.expr()
	if tok := p.peek(); tok.Type != scan.EOF {
		p.errorf("unexpected %s after expression", tok)
	}
	if p.context.Config().Debug("parse") {
		p.Println(tree(e))
	}
	return e, true
}

// readTokensToNewline reads the tokens of the next line of input.
// A line continues past a newline while a bracket is open.
// The boolean is false at EOF.
// We read all tokens before parsing for easy error recovery
// if an error occurs mid-line.
func (p *Parser) readTokensToNewline() bool {
	p.tokens = p.tokenBuf[:0]
	depth := 0
	for {
		tok := p.reader.Next()
		switch tok.Type {
		case scan.Error:
			p.lineNum = tok.Line
			p.errorf("%s", tok.Text)
		case scan.Newline:
			if depth > 0 && (len(p.tokens) == 0 || p.tokens[0].Type != scan.RightParen) {
				continue
			}
			return true
		case scan.EOF:
			return len(p.tokens) > 0
		case scan.LeftBrack:
			depth++
		case scan.RightBrack:
			depth--
		}
		p.tokens = append(p.tokens, tok)
		p.lineNum = tok.Line
	}
}

// level is a bracket being parsed, or the outermost level of the line.
type level struct {
	items []value.Expr // Completed expressions.
	ops   []value.Op   // Operators waiting for the next expression.
	line  int          // Where the bracket opened.
}

// expr parses one expression.
//
//	expr
//		atom
//		operator expr
//		'[' expr expr... ']'
//
// Brackets are kept on an explicit stack, so nesting depth is
// limited only by memory.
func (p *Parser) expr() value.Expr {
	stack := []*level{{}}
	for {
		top := stack[len(stack)-1]
		var e value.Expr
		tok := p.next()
		switch tok.Type {
		case scan.Atom:
			a, err := value.ParseAtom(tok.Text)
			if err != nil {
				p.errorf("%s", err)
			}
			e = a
		case scan.Operator:
			top.ops = append(top.ops, value.Op(tok.Text[0]))
			continue
		case scan.LeftBrack:
			stack = append(stack, &level{line: tok.Line})
			continue
		case scan.RightBrack:
			if len(stack) == 1 {
				p.errorf("unexpected ]")
			}
			if len(top.ops) > 0 {
				p.errorf("missing operand for %s", top.ops[len(top.ops)-1])
			}
			if len(top.items) < 2 {
				p.errorf("cell needs two or more items: [%s]", exprs(top.items))
			}
			e = top.items[len(top.items)-1]
			for i := len(top.items) - 2; i >= 0; i-- {
				e = value.NewPair(top.items[i], e)
			}
			stack = stack[:len(stack)-1]
			top = stack[len(stack)-1]
		case scan.EOF:
			if len(stack) > 1 {
				p.errorf("unclosed [ from line %d", top.line)
			}
			if len(top.ops) > 0 {
				p.errorf("missing operand for %s", top.ops[len(top.ops)-1])
			}
			p.errorf("missing expression")
		default:
			p.errorf("unexpected %s", tok)
		}
		for i := len(top.ops) - 1; i >= 0; i-- {
			e = &value.Apply{Op: top.ops[i], Right: e}
		}
		top.ops = top.ops[:0]
		if len(stack) == 1 {
			return e
		}
		top.items = append(top.items, e)
	}
}

// exprs formats a list of expressions separated by spaces.
func exprs(list []value.Expr) string {
	s := make([]string, len(list))
	for i, e := range list {
		s[i] = e.String()
	}
	return strings.Join(s, " ")
}

// Parse parses text holding a single expression.
func Parse(text string) (e value.Expr, err error) {
	conf := &config.Config{}
	p := NewParser("", lex.NewLexer(conf, "", strings.NewReader(text)), exec.NewContext(conf))
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if r, ok := r.(value.Error); ok {
			err = r
			return
		}
		panic(r)
	}()
	e, ok := p.Line()
	for ok {
		var extra value.Expr
		extra, ok = p.Line()
		switch {
		case e == nil:
			e = extra
		case extra != nil:
			return nil, value.Errorf("more than one expression")
		}
	}
	if e == nil {
		return nil, value.Errorf("no expression")
	}
	return e, nil
}

// Incomplete reports whether text ends inside an open bracket, so
// more input is needed to complete an expression.
func Incomplete(text string) bool {
	s := scan.New(&config.Config{}, "", strings.NewReader(text))
	depth := 0
	for {
		switch s.Next().Type {
		case scan.LeftBrack:
			depth++
		case scan.RightBrack:
			depth--
		case scan.Error:
			return false
		case scan.EOF:
			return depth > 0
		}
	}
}
