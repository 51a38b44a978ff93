// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Nock is an interpreter for Nock, a tiny combinator calculus. It implements
revision 5K of the rules.

Every value is a noun: either an atom, which is a natural number of any size, or a
cell, which is an ordered pair of nouns. Atoms are written in decimal; periods may
group the digits, so 1.000.000 is a million. Cells are written in brackets, and
brackets group to the right, so [1 2 3] is the same noun as [1 [2 3]].

Five operators act on nouns. Each applies to the expression that follows it.

	?a        cell test: 0 if a is a cell, 1 if a is an atom
	+a        increment: a+1; a cell crashes
	=[a b]    equality: 0 if a and b are the same noun, 1 if not; an atom crashes
	/[a b]    slot: the part of b at axis a
	*[a b]    nock: evaluate the formula b against the subject a

In Nock, 0 means yes and 1 means no.

Axis 1 of a noun is the whole noun; axis 2n is the head of axis n and axis 2n+1
is its tail. Axis 0, or an axis that walks into an atom, crashes.

A formula is a cell whose head selects a rule. With subject a:

	*[a [b c] d]     [*[a b c] *[a d]]
	*[a 0 b]         /[b a]
	*[a 1 b]         b
	*[a 2 b c]       *[*[a b] *[a c]]
	*[a 3 b]         ?*[a b]
	*[a 4 b]         +*[a b]
	*[a 5 b]         =*[a b]
	*[a 6 b c d]     *[a 2 [0 1] 2 [1 c d] [1 0] 2 [1 2 3] [1 0] 4 4 b]
	*[a 7 b c]       *[a 2 b 1 c]
	*[a 8 b c]       *[a 7 [[7 [0 1] b] 0 1] c]
	*[a 9 b c]       *[a 7 c 2 [0 1] 0 b]
	*[a 10 [b c] d]  *[a 8 c 7 [0 3] d]
	*[a 10 b c]      *[a c]

Anything else crashes. A crash is not a noun; nock reports the operator and the
noun it could not be applied to, as in

	crash: /[0 42]

A line of input holds one expression. If it is not an operator application, it
is taken as a subject and formula, so

	[42 [4 0 1]]

prints 43. A bracket left open at the end of a line continues onto the next
line. A # begins a comment that extends to the end of the line.

Usage:

	nock [flags] [file...]

With no files, nock reads standard input; from a terminal it is interactive,
with line editing and history. With files, it evaluates each one, concurrently,
and prints the results in the order the files were named.

The flags are:

	-debug l    enable the comma-separated debug flags in l (panic, parse, tokens)
	-demo       run a short tutorial
	-e expr     evaluate the expression and exit
	-expand     reduce opcodes 6 through 10 by rewriting them with their definitions
	-prompt s   interactive prompt
	-steps n    stop any evaluation that takes more than n steps
	-timeout d  stop any evaluation that takes longer than d, such as 5s
	-trace      print each reduction rule as it is applied

Special commands

Lines beginning with a right parenthesis are special commands that control
the interpreter.

	) help
		Print this list of special commands.
	) debug name 0|1
		Toggle or set the named debugging flag. With no argument,
		lists the settings.
	) expand 0|1
		Reduce opcodes 6 through 10 by rewriting them with their
		definitions instead of directly. The results are the same.
	) get "file.nock"
		Read and evaluate the expressions in the named file; return
		to interactive execution afterwards.
	) prompt ""
		Set the interactive prompt.
	) steps 0
		Stop any * that takes more than this many steps.
		Zero means no limit.
	) trace 0|1
		Print each reduction rule as it is applied.
	) version
		Print the versions of the interpreter and of Nock.
*/
package main // import "robpike.io/nock"
