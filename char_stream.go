// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// CharStream is the IntStream specialization the lexical simulator reads
// from; LA/consume range over Unicode code points rather than token types.
type CharStream interface {
	IntStream
	GetText(start, stop int) string
	GetTextFromInterval(i *Interval) string
}

// InputStream is the reference CharStream implementation: an in-memory,
// rune-indexed buffer. Source-stream adapters (file, network) are an
// external collaborator (§1); this is the minimal concrete stream the
// lexical simulator is exercised and tested against.
type InputStream struct {
	name  string
	index int
	data  []rune
	size  int
}

func NewInputStream(data string) *InputStream {
	runes := []rune(data)
	return &InputStream{
		name: "<empty>",
		data: runes,
		size: len(runes),
	}
}

func (is *InputStream) Index() int { return is.index }

func (is *InputStream) Size() int { return is.size }

func (is *InputStream) Mark() int { return -1 }

func (is *InputStream) Release(marker int) {}

func (is *InputStream) Seek(index int) {
	if index <= is.index {
		is.index = index
		return
	}
	is.index = min(index, is.size)
}

func (is *InputStream) Consume() {
	if is.index >= is.size {
		panic(&ErrIllegalState{Reason: "cannot consume EOF"})
	}
	is.index++
}

func (is *InputStream) LA(offset int) int {
	if offset == 0 {
		return 0
	}
	if offset < 0 {
		offset++ // LA(-1) is the last symbol consumed
	}
	pos := is.index + offset - 1

	if pos < 0 || pos >= is.size {
		return TokenEOF
	}

	return int(is.data[pos])
}

func (is *InputStream) LT(offset int) int { return is.LA(offset) }

func (is *InputStream) GetSourceName() string { return is.name }

func (is *InputStream) GetText(start, stop int) string {
	if stop >= is.size {
		stop = is.size - 1
	}
	if start >= is.size || stop < start {
		return ""
	}
	return string(is.data[start : stop+1])
}

func (is *InputStream) GetTextFromInterval(i *Interval) string {
	return is.GetText(i.Start, i.Stop)
}

func (is *InputStream) String() string { return string(is.data) }
