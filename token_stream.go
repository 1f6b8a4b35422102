// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TokenStream is the IntStream specialization the parser prediction core
// reads from; LA/consume range over token types rather than token indices
// into the underlying character stream.
type TokenStream interface {
	IntStream
	LT(k int) Token
	Get(index int) Token
	GetTokenSource() Lexer
	GetAllText() string
	GetTextFromInterval(*Interval) string
}

// BufferedTokenStream buffers tokens so the parser can look arbitrarily
// far ahead and seek backward, the way the teacher's CommonTokenStream
// does. Tokens enter the buffer only through Append; nothing here pulls
// tokens from tokenSource (see nextToken). Channel filtering (hidden/default) is
// the generated-parser's concern; this buffers channel 0 and hidden
// tokens alike and leaves filtering to callers via GetTokenSource.
type BufferedTokenStream struct {
	tokenSource Lexer
	tokens      []Token
	index       int
	fetchedEOF  bool
}

func NewBufferedTokenStream(lexer Lexer) *BufferedTokenStream {
	return &BufferedTokenStream{tokenSource: lexer, index: -1}
}

func (b *BufferedTokenStream) GetTokenSource() Lexer { return b.tokenSource }

func (b *BufferedTokenStream) lazyInit() {
	if b.index == -1 {
		b.setup()
	}
}

func (b *BufferedTokenStream) setup() {
	b.index = 0
}

func (b *BufferedTokenStream) fetch(n int) int {
	if b.fetchedEOF {
		return 0
	}
	fetched := 0
	for i := 0; i < n; i++ {
		lexed := b.nextToken()
		fetched++
		b.tokens = append(b.tokens, lexed)
		if lexed.GetTokenType() == TokenEOF {
			b.fetchedEOF = true
			break
		}
	}
	return fetched
}

// nextToken always panics, whatever Lexer is wired in: the Lexer interface
// has no NextToken method to call. So fetch panics unless EOF is already
// buffered. LA, LT and Consume read only the tokens added with Append and
// never call fetch.
func (b *BufferedTokenStream) nextToken() Token {
	panic(&ErrIllegalState{Reason: "BufferedTokenStream requires a concrete Lexer.NextToken binding"})
}

// Append adds a token directly to the buffer, bypassing the lexer; this is
// how tests and embedders that already have a token slice populate the
// stream.
func (b *BufferedTokenStream) Append(t Token) {
	if len(b.tokens) > 0 && b.tokens[len(b.tokens)-1].GetTokenType() == TokenEOF {
		return
	}
	b.tokens = append(b.tokens, t)
	if b.index == -1 {
		b.index = 0
	}
	if t.GetTokenType() == TokenEOF {
		b.fetchedEOF = true
	}
}

func (b *BufferedTokenStream) LA(i int) int { return b.LT(i).GetTokenType() }

func (b *BufferedTokenStream) LT(k int) Token {
	b.lazyInit()
	if k == 0 {
		return nil
	}
	if k < 0 {
		return b.Get(b.index + k)
	}
	i := b.index + k - 1
	if i < len(b.tokens) {
		return b.tokens[i]
	}
	return b.tokens[len(b.tokens)-1]
}

func (b *BufferedTokenStream) Get(index int) Token {
	if index < 0 || index >= len(b.tokens) {
		panic(&ErrIllegalState{Reason: "token index out of range"})
	}
	return b.tokens[index]
}

func (b *BufferedTokenStream) Consume() {
	b.lazyInit()
	if b.LA(1) == TokenEOF {
		panic(&ErrIllegalState{Reason: "cannot consume EOF"})
	}
	if b.index < len(b.tokens)-1 || !b.fetchedEOF {
		b.index++
	}
}

func (b *BufferedTokenStream) Index() int { return b.index }

func (b *BufferedTokenStream) Mark() int { return 0 }

func (b *BufferedTokenStream) Release(marker int) {}

func (b *BufferedTokenStream) Seek(index int) { b.index = index }

func (b *BufferedTokenStream) Size() int { return len(b.tokens) }

func (b *BufferedTokenStream) GetSourceName() string {
	if b.tokenSource == nil {
		return "<unknown>"
	}
	return b.tokenSource.GetInputStream().GetSourceName()
}

func (b *BufferedTokenStream) GetAllText() string {
	return b.GetTextFromInterval(NewInterval(0, len(b.tokens)-1))
}

func (b *BufferedTokenStream) GetTextFromInterval(iv *Interval) string {
	if iv.Start < 0 || iv.Stop >= len(b.tokens) {
		return ""
	}
	var sb []byte
	for i := iv.Start; i <= iv.Stop; i++ {
		sb = append(sb, b.tokens[i].GetText()...)
	}
	return string(sb)
}
