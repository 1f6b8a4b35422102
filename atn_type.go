// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATN grammar-type constants. A single ATN is built for either a lexer
// or a parser; several deserialization phases (§4.1) branch on this value.
const (
	ATNTypeLexer = iota
	ATNTypeParser
)

// InvalidStateNumber marks a state back-link that was never resolved during
// deserialization.
const InvalidStateNumber = -1
