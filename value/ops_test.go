// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleNouns = []string{
	"0",
	"1",
	"99",
	"340282366920938463463374607431768211456",
	"[0 0]",
	"[1 2]",
	"[[1 2] 3]",
	"[1 2 3 4 5]",
	"[[4 5] [6 14 15]]",
}

// requireCrash checks that err is a crash of op.
func requireCrash(t *testing.T, op Op, err error, msgAndArgs ...interface{}) *Crash {
	t.Helper()
	var c *Crash
	require.Truef(t, errors.As(err, &c), "expected crash, got %v", err)
	require.Equal(t, op, c.Op, msgAndArgs...)
	return c
}

func TestCellTest(t *testing.T) {
	for _, s := range sampleNouns {
		n := mustNoun(t, s)
		got := CellTest(n)
		if _, isCell := n.(*Cell); isCell {
			assert.True(t, Equal(Yes, got), "?%s", s)
		} else {
			assert.True(t, Equal(No, got), "?%s", s)
		}
	}
}

func TestIncrement(t *testing.T) {
	for _, s := range sampleNouns {
		n := mustNoun(t, s)
		got, err := Increment(n)
		a, isAtom := n.(Atom)
		if !isAtom {
			requireCrash(t, Lus, err, "+%s", s)
			continue
		}
		require.NoError(t, err, "+%s", s)
		want := AtomFromBig(a.Big().Add(a.Big(), bigOne))
		assert.True(t, Equal(want, got), "+%s = %s", s, got)
	}
}

func TestEquality(t *testing.T) {
	for _, s := range sampleNouns {
		n := mustNoun(t, s)
		_, err := Equality(n)
		if _, isAtom := n.(Atom); isAtom {
			requireCrash(t, Tis, err, "=%s", s)
		}
		for _, s2 := range sampleNouns {
			got, err := Equality(NewCell(n, mustNoun(t, s2)))
			require.NoError(t, err)
			want := No
			if s == s2 {
				want = Yes
			}
			assert.True(t, Equal(want, got), "=[%s %s] = %s", s, s2, got)
		}
	}
}

func TestSlot(t *testing.T) {
	tree := mustNoun(t, "[[4 5] [6 14 15]]")
	for _, tc := range []struct {
		axis uint64
		want string
	}{
		{1, "[[4 5] 6 14 15]"},
		{2, "[4 5]"},
		{3, "[6 14 15]"},
		{4, "4"},
		{5, "5"},
		{6, "6"},
		{7, "[14 15]"},
		{14, "14"},
		{15, "15"},
	} {
		got, err := Slot(NewAtom(tc.axis), tree)
		require.NoError(t, err, "/%d", tc.axis)
		assert.Equal(t, tc.want, got.String(), "/%d", tc.axis)
	}

	pair := mustNoun(t, "[4 5]")
	for _, tc := range []struct {
		axis uint64
		want string
	}{
		{1, "[4 5]"},
		{2, "4"},
		{3, "5"},
	} {
		got, err := Slot(NewAtom(tc.axis), pair)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "/[%d [4 5]]", tc.axis)
	}
	got, err := Slot(NewAtom(4), mustNoun(t, "[[4 5] 6]"))
	require.NoError(t, err)
	assert.Equal(t, "4", got.String())
}

// slotByHalving is the recursive definition of slot addressing.
func slotByHalving(axis uint64, tree Noun) (Noun, bool) {
	switch {
	case axis == 0:
		return nil, false
	case axis == 1:
		return tree, true
	}
	n, ok := slotByHalving(axis/2, tree)
	if !ok {
		return nil, false
	}
	c, ok := n.(*Cell)
	if !ok {
		return nil, false
	}
	if axis%2 == 0 {
		return c.Head, true
	}
	return c.Tail, true
}

func TestSlotMatchesDefinition(t *testing.T) {
	tree := mustNoun(t, "[[[1 2] [3 4]] [[5 6] [7 8 9]]]")
	for axis := uint64(0); axis < 64; axis++ {
		want, ok := slotByHalving(axis, tree)
		got, err := Slot(NewAtom(axis), tree)
		if !ok {
			requireCrash(t, Fas, err, "/%d", axis)
			continue
		}
		require.NoError(t, err, "/%d", axis)
		assert.True(t, Equal(want, got), "/%d: got %s want %s", axis, got, want)
	}
}

func TestSlotCrash(t *testing.T) {
	for _, s := range sampleNouns {
		tree := mustNoun(t, s)
		_, err := Slot(NewAtom(0), tree)
		c := requireCrash(t, Fas, err, "/[0 %s]", s)
		assert.Equal(t, "crash: /"+NewCell(NewAtom(0), tree).String(), c.Error())
	}
	_, err := Slot(mustNoun(t, "[1 2]"), NewAtom(5))
	requireCrash(t, Fas, err)
	_, err = Slot(NewAtom(2), NewAtom(5))
	requireCrash(t, Fas, err)
	huge, err := ParseAtom("1" + "000000000000000000000000000000")
	require.NoError(t, err)
	_, err = Slot(huge, mustNoun(t, "[1 2]"))
	requireCrash(t, Fas, err)
}

func TestApply(t *testing.T) {
	for _, tc := range []struct {
		op    Op
		in    string
		want  string
		crash bool
	}{
		{op: Wut, in: "[1 2]", want: "0"},
		{op: Wut, in: "7", want: "1"},
		{op: Lus, in: "7", want: "8"},
		{op: Lus, in: "[1 2]", crash: true},
		{op: Tis, in: "[[1 2] [1 2]]", want: "0"},
		{op: Tis, in: "[1 2]", want: "1"},
		{op: Tis, in: "5", crash: true},
		{op: Fas, in: "[3 [4 5]]", want: "5"},
		{op: Fas, in: "3", crash: true},
		{op: Fas, in: "[0 [4 5]]", crash: true},
		{op: Tar, in: "[42 [0 1]]", want: "42"},
		{op: Tar, in: "[5 [4 0 1]]", want: "6"},
		{op: Tar, in: "42", crash: true},
	} {
		got, err := ApplyOp(tc.op, mustNoun(t, tc.in))
		if tc.crash {
			requireCrash(t, tc.op, err, "%s%s", tc.op, tc.in)
			continue
		}
		require.NoError(t, err, "%s%s", tc.op, tc.in)
		assert.Equal(t, tc.want, got.String(), "%s%s", tc.op, tc.in)
	}
	_, err := ApplyOp(Op('%'), NewAtom(1))
	assert.EqualError(t, err, `unknown operator "%"`)
}

func TestIsOp(t *testing.T) {
	for _, r := range "?+=/*" {
		assert.True(t, IsOp(r), "%q", r)
	}
	for _, r := range "[]0a.-Ŀ" {
		assert.False(t, IsOp(r), "%q", r)
	}
}
