// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

const specialHelpMessage = `) help
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
`
