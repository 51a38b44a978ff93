// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robpike.io/nock/config"
	"robpike.io/nock/exec"
	"robpike.io/nock/lex"
	"robpike.io/nock/scan"
	"robpike.io/nock/value"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"42", "<atom 42>"},
		{"1.000", "<atom 1000>"},
		{"[1 2]", "<cell [1 2]>"},
		{"[1 2 3]", "<cell [1 2 3]>"},
		{"[[1 2] 3]", "<cell [[1 2] 3]>"},
		{"+1", "(+ <atom 1>)"},
		{"*[42 [0 1]]", "(* <cell [42 0 1]>)"},
		{"[+1 2]", "[(+ <atom 1>) <atom 2>]"},
		{"[1 +2 3]", "[<atom 1> [(+ <atom 2>) <atom 3>]]"},
		{"++?1", "(+ (+ (? <atom 1>)))"},
		{"=[+1 2]", "(= [(+ <atom 1>) <atom 2>])"},
		{"[1\n 2]", "<cell [1 2]>"},
		{"# comment\n\n[1 2] # more\n", "<cell [1 2]>"},
	} {
		e, err := Parse(tc.in)
		require.NoError(t, err, "%q", tc.in)
		assert.Equal(t, tc.want, tree(e), "%q", tc.in)
	}
}

func TestSugar(t *testing.T) {
	for _, tc := range []struct {
		sugar, plain string
	}{
		{"[1 2 3]", "[1 [2 3]]"},
		{"[1 2 3 4]", "[1 [2 [3 4]]]"},
		{"[[1 2 3] 4 5]", "[[1 [2 3]] [4 5]]"},
	} {
		a, err := Parse(tc.sugar)
		require.NoError(t, err)
		b, err := Parse(tc.plain)
		require.NoError(t, err)
		assert.True(t, value.Equal(a.(value.Noun), b.(value.Noun)), "%s vs %s", tc.sugar, tc.plain)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0",
		"[1 2]",
		"[[1 2] [3 4] 5]",
		"[[[4 5] 6 14 15] 0 7]",
		"*[1 +[2 3]]",
		"[?1 2 3]",
		"[=[1 1] /[1 2 3]]",
	} {
		e, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, e.String())
		again, err := Parse(e.String())
		require.NoError(t, err)
		assert.Equal(t, tree(e), tree(again))
	}
}

func TestDeepBrackets(t *testing.T) {
	const depth = 100_000
	text := strings.Repeat("[", depth) + "0" + strings.Repeat(" 0]", depth)
	e, err := Parse(text)
	require.NoError(t, err)
	n, ok := e.(value.Noun)
	require.True(t, ok)
	var got value.Noun = n
	for range depth {
		c, ok := got.(*value.Cell)
		require.True(t, ok)
		got = c.Head
	}
	assert.Equal(t, "0", got.String())
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", "no expression"},
		{"]", "unexpected ]"},
		{"[1 2", "unclosed [ from line 1"},
		{"[1 2]]", "unexpected RightBrack: \"]\" after expression"},
		{"[]", "cell needs two or more items: []"},
		{"[1]", "cell needs two or more items: [1]"},
		{"+", "missing operand for +"},
		{"[1 +]", "missing operand for +"},
		{"1 2", "unexpected Atom: \"2\" after expression"},
		{"1\n2", "more than one expression"},
		{"...", "bad atom syntax: ..."},
		{"[1 (2)]", "unexpected character '('"},
		{"[1 foo]", "unexpected Identifier: \"foo\""},
	} {
		_, err := Parse(tc.in)
		assert.EqualError(t, err, tc.want, "%q", tc.in)
	}
}

func TestIncomplete(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", false},
		{"42", false},
		{"[1 2]", false},
		{"[1", true},
		{"*[42\n[0 1]", true},
		{"[[1 2] # [", true},
		{"[1 2]]", false},
		{"[1 ~", false},
	} {
		assert.Equal(t, tc.want, Incomplete(tc.in), "%q", tc.in)
	}
}

func TestSlice(t *testing.T) {
	// Tokens from another front end: +[41 0].
	tokens := []scan.Token{
		{Type: scan.Operator, Text: "+", Line: 1},
		{Type: scan.LeftBrack, Text: "[", Line: 1},
		{Type: scan.Atom, Text: "41", Line: 1},
		{Type: scan.Atom, Text: "0", Line: 1},
		{Type: scan.RightBrack, Text: "]", Line: 1},
	}
	conf := &config.Config{}
	p := NewParser("tokens", lex.NewSlice("tokens", tokens), exec.NewContext(conf))
	e, ok := p.Line()
	require.True(t, ok)
	assert.Equal(t, "+[41 0]", e.String())
	_, ok = p.Line()
	assert.False(t, ok)
}

// newTestParser returns a parser reading text whose output goes to out.
func newTestParser(text string, out, errOut *bytes.Buffer) (*Parser, *config.Config) {
	conf := &config.Config{}
	conf.SetOutput(out)
	conf.SetErrOutput(errOut)
	p := NewParser("test", lex.NewLexer(conf, "test", strings.NewReader(text)), exec.NewContext(conf))
	return p, conf
}

func TestSpecial(t *testing.T) {
	var out, errOut bytes.Buffer
	p, conf := newTestParser(`)trace 1
)steps 1000
)expand 1
)prompt "nock> "
)debug parse 1
)steps
`, &out, &errOut)
	for {
		e, ok := p.Line()
		assert.Nil(t, e)
		if !ok {
			break
		}
	}
	assert.True(t, conf.Trace())
	assert.Equal(t, int64(1000), conf.MaxSteps())
	assert.True(t, conf.Expand())
	assert.Equal(t, "nock> ", conf.Prompt())
	assert.True(t, conf.Debug("parse"))
	assert.Equal(t, "1000\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	p, _ = newTestParser(")version\n)help\n)debug\n", &out, &errOut)
	for _, ok := p.Line(); ok; _, ok = p.Line() {
	}
	assert.True(t, strings.HasPrefix(out.String(), "nock "+config.Version+", Nock 5K\n) help\n"), out.String())
	assert.Contains(t, out.String(), "panic\t0\nparse\t0\ntokens\t0\n")
}

func TestSpecialErrors(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{")frob", ")frob: not recognized"},
		{")trace 2", "value must be 0 or 1"},
		{")steps x", `expected Atom, got Identifier: "x"`},
		{")prompt nock", `expected String, got Identifier: "nock"`},
		{")trace 1 1", "expected EOF, got Atom: \"1\""},
		{`)get "/no/such/file.nock"`, "open /no/such/file.nock: no such file or directory"},
	} {
		var out, errOut bytes.Buffer
		p, _ := newTestParser(tc.in, &out, &errOut)
		assert.PanicsWithValue(t, value.Error(tc.want), func() { p.Line() }, tc.in)
	}
}

func TestGet(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "inc.nock")
	require.NoError(t, os.WriteFile(file, []byte("# increment\n[42 [4 0 1]]\n+[1 2]\n[1 1]\n"), 0o644))
	var out, errOut bytes.Buffer
	p, _ := newTestParser(`)get "`+file+`"`, &out, &errOut)
	e, ok := p.Line()
	assert.Nil(t, e)
	assert.True(t, ok)
	assert.Equal(t, "43\n", out.String())
	assert.Equal(t, file+":3: crash: +[1 2]\n", errOut.String())
}

func TestGetRecursion(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "self.nock")
	require.NoError(t, os.WriteFile(file, []byte(`)get "`+file+`"`+"\n"), 0o644))
	var out, errOut bytes.Buffer
	p, _ := newTestParser(`)get "`+file+`"`, &out, &errOut)
	p.Line()
	assert.Contains(t, errOut.String(), "nested too deep")
}
