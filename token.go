// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Token is the minimal contract the prediction core needs of a lexed
// symbol; token factories, text materialization strategy, and the rest of
// a concrete Token implementation are an external collaborator (§1).
type Token interface {
	GetTokenType() int
	GetChannel() int
	GetStart() int
	GetStop() int
	GetLine() int
	GetColumn() int
	GetText() string
	GetTokenIndex() int
}

// CommonToken is the reference Token implementation; generated lexers may
// supply their own factory instead. The lexical simulator returns token
// types and builds no tokens itself.
type CommonToken struct {
	tokenType  int
	channel    int
	start      int
	stop       int
	line       int
	column     int
	text       string
	tokenIndex int
}

func NewCommonToken(tokenType, start, stop int) *CommonToken {
	return &CommonToken{
		tokenType:  tokenType,
		channel:    TokenDefaultChannel,
		start:      start,
		stop:       stop,
		tokenIndex: -1,
	}
}

const (
	TokenDefaultChannel = 0
	TokenHiddenChannel  = 1
)

func (c *CommonToken) GetTokenType() int  { return c.tokenType }
func (c *CommonToken) GetChannel() int    { return c.channel }
func (c *CommonToken) GetStart() int      { return c.start }
func (c *CommonToken) GetStop() int       { return c.stop }
func (c *CommonToken) GetLine() int       { return c.line }
func (c *CommonToken) GetColumn() int     { return c.column }
func (c *CommonToken) GetText() string    { return c.text }
func (c *CommonToken) GetTokenIndex() int { return c.tokenIndex }

func (c *CommonToken) SetText(text string)        { c.text = text }
func (c *CommonToken) SetLine(line int)            { c.line = line }
func (c *CommonToken) SetColumn(column int)         { c.column = column }
func (c *CommonToken) SetTokenIndex(index int)      { c.tokenIndex = index }
