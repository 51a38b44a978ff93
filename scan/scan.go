// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type Type

// Package scan turns Nock source text into tokens.
package scan // import "robpike.io/nock/scan"

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"robpike.io/nock/config"
	"robpike.io/nock/value"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Line   int    // The line number on which this token appears
	Offset int    // The byte offset within the line at which it starts.
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // zero value so closed channel delivers EOF
	Error             // error occurred; value is text of error
	Newline
	// Interesting things
	Atom       // digits, possibly grouped by periods: 1.000
	Identifier // alphanumeric word; only special commands use them
	LeftBrack  // '['
	Operator   // one of ? + = / *
	RightBrack // ']'
	RightParen // ')'
	String     // quoted string (includes quotes)
)

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	config    *config.Config
	r         io.ByteReader
	done      bool
	name      string  // the name of the input; used only for error reports
	buf       []byte  // I/O buffer, re-used.
	input     string  // the line of text being scanned.
	lastRune  rune    // most recent return from next()
	lastWidth int     // size of that rune
	line      int     // line number in input
	pos       int     // current position in the input
	start     int     // start position of this item
	token     Token
}

// loadLine reads the next line of input and stores it in (appends it to) the input.
// (l.input may have data left over when we are called.)
// It strips carriage returns to make subsequent processing simpler.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' { // There will never be a \r in l.input.
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	// Reset to beginning of input buffer if there is nothing pending.
	if l.start == l.pos {
		l.input = string(l.buf)
		l.start = 0
		l.pos = 0
	} else {
		l.input += string(l.buf)
	}
}

// readRune reads the next rune from the input.
func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if len(l.input) == l.pos {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	l.lastRune, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r, _ := l.readRune()
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	if l.pos > l.start {
		l.pos -= l.lastWidth
	}
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	tok := Token{Type: t, Line: l.line, Offset: l.start, Text: text}
	if l.config.Debug("tokens") {
		fmt.Fprintf(l.config.Output(), "%s:%d: emit %s\n", l.name, l.line, tok)
	}
	if t == Newline {
		l.line++
	}
	l.token = tok
	l.start = l.pos
	return nil
}

// errorf returns an error token and empties the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Type: Error, Line: l.line, Offset: l.start, Text: fmt.Sprintf(format, args...)}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

// New creates and returns a new scanner.
func New(conf *config.Config, name string, r io.ByteReader) *Scanner {
	l := &Scanner{
		r:      r,
		name:   name,
		line:   1,
		config: conf,
	}
	return l
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{Type: EOF, Line: l.line, Offset: l.pos, Text: "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexComment scans a comment. The comment marker has been consumed.
// The newline that ends it is left to be scanned.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.peek()
		if r == eof || r == '\n' {
			break
		}
		l.next()
	}
	l.start = l.pos
	return lexAny
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		return l.emit(Newline)
	case r == '#':
		return lexComment
	case isSpace(r):
		return lexSpace
	case r == '"':
		return lexQuote
	case r == '.' || isDigit(r):
		l.backup()
		return lexAtom
	case value.IsOp(r):
		return l.emit(Operator)
	case r == '[':
		return l.emit(LeftBrack)
	case r == ']':
		return l.emit(RightBrack)
	case r == ')':
		return l.emit(RightParen)
	case isAlphaNumeric(r):
		l.backup()
		return lexIdentifier
	case r <= unicode.MaxASCII && unicode.IsPrint(r):
		return l.errorf("unexpected character %q", r)
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexAtom scans a run of digits and periods, which must hold
// at least one digit.
func lexAtom(l *Scanner) stateFn {
	digits := 0
	for {
		r := l.peek()
		if isDigit(r) {
			digits++
		} else if r != '.' {
			break
		}
		l.next()
	}
	if isAlphaNumeric(l.peek()) {
		return l.errorf("bad character %#U in atom", l.next())
	}
	if digits == 0 {
		return l.errorf("bad atom syntax: %s", l.input[l.start:l.pos])
	}
	return l.emit(Atom)
}

// lexIdentifier scans an alphanumeric.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	return l.emit(Identifier)
}

// lexQuote scans a quoted string. The opening quote has been consumed.
func lexQuote(l *Scanner) stateFn {
	for {
		switch l.next() {
		case '\\':
			if r := l.next(); r != eof && r != '\n' {
				break
			}
			fallthrough
		case eof, '\n':
			return l.errorf("unterminated quoted string")
		case '"':
			return l.emit(String)
		}
	}
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isAlphaNumeric reports whether r is an ASCII letter, digit, or underscore.
// Command names are ASCII; other letters are not part of the language.
func isAlphaNumeric(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || isDigit(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
