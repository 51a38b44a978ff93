// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo drives the tutorial run by the -demo flag.
// The tutorial script, demo.nock in this directory, is embedded in
// the package.
package demo

import (
	"bufio"
	"bytes"
	"io"

	_ "embed"
)

//go:embed demo.nock
var demoText []byte

// Text returns the tutorial script.
func Text() string {
	return string(demoText)
}

// script hands out the lines of the tutorial in order.
type script struct {
	text []byte
}

// next returns the next line, including its newline, or nil at the end.
func (s *script) next() []byte {
	nl := bytes.IndexByte(s.text, '\n')
	if nl < 0 {
		return nil
	}
	line := s.text[:nl+1]
	s.text = s.text[nl+1:]
	return line
}

// isComment reports whether the line is only narration.
func isComment(line []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(line), []byte("#"))
}

// Run steps through the tutorial. Each empty line the user types shows
// the next line of the script on output and, unless it is narration,
// sends it to the interpreter through toNock, whose results are assumed
// to appear on output too. A line with text is sent instead and the
// script waits; "quit" ends the tutorial. The first line, which explains
// all this, is shown at once.
// With a nil userInput the whole script runs without pausing.
func Run(userInput io.Reader, toNock io.Writer, output io.Writer) error {
	s := &script{text: demoText}
	var user *bufio.Scanner
	if userInput != nil {
		user = bufio.NewScanner(userInput)
	}
	output.Write(s.next())
	for user == nil || user.Scan() {
		if user != nil {
			if typed := bytes.TrimSpace(user.Bytes()); len(typed) > 0 {
				if string(typed) == "quit" {
					break
				}
				if _, err := toNock.Write(append(bytes.Clone(typed), '\n')); err != nil {
					return err
				}
				continue
			}
		}
		line := s.next()
		if line == nil {
			break
		}
		output.Write(line)
		if isComment(line) {
			continue
		}
		if _, err := toNock.Write(line); err != nil {
			return err
		}
	}
	if user == nil {
		return nil
	}
	return user.Err()
}
