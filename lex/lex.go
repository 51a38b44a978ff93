// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lex provides the token streams the parser reads.
package lex // import "robpike.io/nock/lex"

import (
	"bufio"
	"io"

	"robpike.io/nock/config"
	"robpike.io/nock/scan"
)

// A TokenReader is like a reader, but returns lex tokens of type scan.Token. It also can tell you
// where the most recently returned token was found.
// The underlying scanner elides all spaces except newline, so the input looks like a stream of
// Tokens; original spacing is lost but we don't need it.
type TokenReader interface {
	// Next returns the next token.
	Next() scan.Token
	// FileName reports the source file name of the current token.
	FileName() string
	// Line reports the source line number of the current token.
	Line() int
}

// NewLexer returns a TokenReader that scans text from r.
func NewLexer(conf *config.Config, name string, r io.Reader) TokenReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return NewTokenizer(conf, name, br)
}

// The rest of this file is implementations of TokenReader.

// A Tokenizer is a simple wrapping of scan.Scanner, configured
// for our purposes and made a TokenReader. It forms the lowest level,
// turning text from readers into tokens.
type Tokenizer struct {
	s        *scan.Scanner
	line     int
	fileName string
}

func NewTokenizer(conf *config.Config, name string, r io.ByteReader) *Tokenizer {
	return &Tokenizer{
		s:        scan.New(conf, name, r),
		line:     1,
		fileName: name,
	}
}

func (t *Tokenizer) FileName() string {
	return t.fileName
}

func (t *Tokenizer) Line() int {
	return t.line
}

func (t *Tokenizer) Next() scan.Token {
	tok := t.s.Next()
	t.line = tok.Line
	return tok
}

// A Slice is a TokenReader over tokens that have already been classified,
// for instance by another front end. After the last token it returns EOF.
type Slice struct {
	tokens   []scan.Token
	fileName string
	line     int
	pos      int
}

// NewSlice returns a Slice reading the tokens in order.
func NewSlice(name string, tokens []scan.Token) *Slice {
	return &Slice{
		tokens:   tokens,
		fileName: name,
		line:     1,
	}
}

func (s *Slice) Next() scan.Token {
	if s.pos >= len(s.tokens) {
		return scan.Token{Type: scan.EOF, Line: s.line, Text: "EOF"}
	}
	tok := s.tokens[s.pos]
	s.pos++
	if tok.Line > 0 {
		s.line = tok.Line
	}
	return tok
}

func (s *Slice) FileName() string {
	return s.fileName
}

func (s *Slice) Line() int {
	return s.line
}
