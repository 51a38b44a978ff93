// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robpike.io/nock/value"
)

func TestEval(t *testing.T) {
	for _, test := range []struct {
		input  string
		output string
	}{
		{"", ""},
		{"[23 [0 1]]", "23\n"},
		{"+23", "24\n"},
		{"+1\n+2", "2\n3\n"},
		{")expand 1\n[42 [7 [4 0 1] [4 0 1]]]", "44\n"},
		{")trace\n)steps", "0\n0\n"},
	} {
		Reset()
		out, err := Eval(test.input)
		require.NoError(t, err, "evaluating %q", test.input)
		assert.Equal(t, test.output, out, "evaluating %q", test.input)
	}
}

func TestEvalError(t *testing.T) {
	for _, test := range []struct {
		input string
		error string
	}{
		{"23", "input:1: crash: *23"},
		{"[1 2", "unclosed ["},
		{"+[1 2]", "input:1: crash: +[1 2]"},
		{"\n/[0 1]", "input:2: crash: /[0 1]"},
		{"1a", "bad character"},
		{")steps 3\n[42 [7 [4 0 1] [4 0 1]]]", "input:2: step limit exceeded"},
	} {
		Reset()
		_, err := Eval(test.input)
		require.Error(t, err, "evaluating %q", test.input)
		assert.Contains(t, err.Error(), test.error, "evaluating %q", test.input)
	}
}

// Each line that fails adds an error; the others still run.
func TestEvalKeepsGoing(t *testing.T) {
	Reset()
	out, err := Eval("+[1 2]\n+41\n=7\n?7")
	assert.Equal(t, "42\n1\n", out)
	require.Error(t, err)
	assert.Equal(t, "input:1: crash: +[1 2]\ninput:3: crash: =7", err.Error())

	var crash *value.Crash
	require.True(t, errors.As(err, &crash))
	assert.Equal(t, value.Lus, crash.Op)
	assert.ErrorIs(t, mustEvalErr(t, ")steps 1\n[42 [4 0 1]]"), value.ErrStepLimit)
}

func mustEvalErr(t *testing.T, text string) error {
	t.Helper()
	Reset()
	_, err := Eval(text)
	require.Error(t, err)
	return err
}

func TestSettingsPersistUntilReset(t *testing.T) {
	Reset()
	_, err := Eval(")expand 1")
	require.NoError(t, err)
	out, err := Eval(")expand")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = Eval("[42 [4 0 1]]")
	require.NoError(t, err)
	assert.Equal(t, int64(2), Steps())

	Reset()
	out, err = Eval(")expand")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

const demoText = `# This is a demo.
[23 0 1]
+[1 2] # Cause a crash.
?[1 2] # Keep going
`

const demoOut = `23
0
`

const demoErr = "input:1: crash: +[1 2]"

func TestDemo(t *testing.T) {
	demo := NewDemo(demoText)
	var results, errs []byte
	for {
		result, err := demo.Next()
		if err == io.EOF {
			break
		}
		results = append(results, result...)
		if err != nil {
			errs = append(errs, err.Error()...)
		}
	}
	assert.Equal(t, demoOut, string(results))
	assert.Equal(t, demoErr, string(errs))
}

func TestHelp(t *testing.T) {
	assert.Contains(t, Help(), "Nock")
}
