// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TokenEOF is the token type (or character) representing end of input.
const TokenEOF = -1

// TokenEpsilon is a pseudo symbol used internally by the ATN to denote an
// epsilon (no-input-consumed) transition; it never appears in real input.
const TokenEpsilon = -2

// TokenInvalidType marks a token whose type could not be determined.
const TokenInvalidType = 0

// IntStream is the minimal sequence-of-symbols contract every prediction
// entry point relies on (§3 "Token and character streams", §5 scheduling
// model: synchronous consume/LA/index/seek/mark/release). Both TokenStream
// and CharStream embed it.
type IntStream interface {
	Consume()
	LA(offset int) int

	// Mark/Release bracket a speculative excursion through the stream; the
	// prediction engine restores the marked position on every exit path,
	// including error paths (§7 propagation policy).
	Mark() int
	Release(marker int)

	Index() int
	Seek(index int)

	Size() int
	GetSourceName() string
}
