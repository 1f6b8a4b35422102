// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// LexerActionType discriminates the lexer action table entries a
// serialized lexer ATN carries (§4.1 "lexer action table").
type LexerActionType int

const (
	LexerActionTypeChannel LexerActionType = iota
	LexerActionTypeCustom
	LexerActionTypeMode
	LexerActionTypeMore
	LexerActionTypePopMode
	LexerActionTypePushMode
	LexerActionTypeSkip
	LexerActionTypeType
)

// LexerAction is one entry of a lexer's action table; Execute runs it
// against the active Lexer (§4.5 "Action executor").
type LexerAction interface {
	getActionType() LexerActionType
	getIsPositionDependent() bool
	Execute(lexer Lexer)
	Equals(other LexerAction) bool
	Hash() int
	String() string
}

type BaseLexerAction struct {
	actionType         LexerActionType
	isPositionDependent bool
}

func (b *BaseLexerAction) getActionType() LexerActionType { return b.actionType }

func (b *BaseLexerAction) getIsPositionDependent() bool { return b.isPositionDependent }

func (b *BaseLexerAction) Execute(Lexer) {}

func (b *BaseLexerAction) Hash() int { return int(b.actionType) }

// LexerSkipAction discards the current token (§8 S4 `WS -> skip`).
type LexerSkipAction struct{ *BaseLexerAction }

var LexerSkipActionInstance = NewLexerSkipAction()

func NewLexerSkipAction() *LexerSkipAction {
	return &LexerSkipAction{&BaseLexerAction{actionType: LexerActionTypeSkip}}
}

func (a *LexerSkipAction) Execute(lexer Lexer) { lexer.Skip() }

func (a *LexerSkipAction) Equals(other LexerAction) bool {
	_, ok := other.(*LexerSkipAction)
	return ok
}

func (a *LexerSkipAction) String() string { return "skip" }

// LexerTypeAction records a token type for the emitted token. Its Execute
// is the BaseLexerAction no-op: the Lexer interface has no token-type
// setter, so nothing in this package applies the type.
type LexerTypeAction struct {
	*BaseLexerAction
	tokenType int
}

func NewLexerTypeAction(tokenType int) *LexerTypeAction {
	return &LexerTypeAction{&BaseLexerAction{actionType: LexerActionTypeType}, tokenType}
}

func (a *LexerTypeAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerTypeAction)
	return ok && a.tokenType == o.tokenType
}

func (a *LexerTypeAction) Hash() int { return murmurCombine(int(a.actionType), a.tokenType) }

func (a *LexerTypeAction) String() string { return fmt.Sprintf("type(%d)", a.tokenType) }

// LexerChannelAction records a channel for the emitted token. Its Execute
// is the BaseLexerAction no-op: the Lexer interface has no channel setter,
// so nothing in this package applies the channel.
type LexerChannelAction struct {
	*BaseLexerAction
	channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{&BaseLexerAction{actionType: LexerActionTypeChannel}, channel}
}

func (a *LexerChannelAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerChannelAction)
	return ok && a.channel == o.channel
}

func (a *LexerChannelAction) Hash() int { return murmurCombine(int(a.actionType), a.channel) }

func (a *LexerChannelAction) String() string { return fmt.Sprintf("channel(%d)", a.channel) }

// LexerModeAction switches the active lexer mode.
type LexerModeAction struct {
	*BaseLexerAction
	mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{&BaseLexerAction{actionType: LexerActionTypeMode}, mode}
}

func (a *LexerModeAction) Execute(lexer Lexer) { lexer.SetMode(a.mode) }

func (a *LexerModeAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerModeAction)
	return ok && a.mode == o.mode
}

func (a *LexerModeAction) Hash() int { return murmurCombine(int(a.actionType), a.mode) }

func (a *LexerModeAction) String() string { return fmt.Sprintf("mode(%d)", a.mode) }

// LexerPushModeAction pushes a mode onto the lexer's mode stack.
type LexerPushModeAction struct {
	*BaseLexerAction
	mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{&BaseLexerAction{actionType: LexerActionTypePushMode}, mode}
}

func (a *LexerPushModeAction) Execute(lexer Lexer) { lexer.PushMode(a.mode) }

func (a *LexerPushModeAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerPushModeAction)
	return ok && a.mode == o.mode
}

func (a *LexerPushModeAction) Hash() int { return murmurCombine(int(a.actionType), a.mode) }

func (a *LexerPushModeAction) String() string { return fmt.Sprintf("pushMode(%d)", a.mode) }

// LexerPopModeAction pops the lexer's mode stack.
type LexerPopModeAction struct{ *BaseLexerAction }

var LexerPopModeActionInstance = NewLexerPopModeAction()

func NewLexerPopModeAction() *LexerPopModeAction {
	return &LexerPopModeAction{&BaseLexerAction{actionType: LexerActionTypePopMode}}
}

func (a *LexerPopModeAction) Execute(lexer Lexer) { lexer.PopMode() }

func (a *LexerPopModeAction) Equals(other LexerAction) bool {
	_, ok := other.(*LexerPopModeAction)
	return ok
}

func (a *LexerPopModeAction) String() string { return "popMode" }

// LexerMoreAction marks the current token as incomplete; the next match
// call continues accumulating text instead of emitting a fresh token.
type LexerMoreAction struct{ *BaseLexerAction }

var LexerMoreActionInstance = NewLexerMoreAction()

func NewLexerMoreAction() *LexerMoreAction {
	return &LexerMoreAction{&BaseLexerAction{actionType: LexerActionTypeMore}}
}

func (a *LexerMoreAction) Execute(lexer Lexer) { lexer.More() }

func (a *LexerMoreAction) Equals(other LexerAction) bool {
	_, ok := other.(*LexerMoreAction)
	return ok
}

func (a *LexerMoreAction) String() string { return "more" }

// LexerCustomAction dispatches to the external recognizer's Action
// callback (§6). It is position-dependent because custom actions may
// reference the text matched so far.
type LexerCustomAction struct {
	*BaseLexerAction
	ruleIndex, actionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{
		BaseLexerAction: &BaseLexerAction{actionType: LexerActionTypeCustom, isPositionDependent: true},
		ruleIndex:       ruleIndex,
		actionIndex:     actionIndex,
	}
}

func (a *LexerCustomAction) Execute(lexer Lexer) { lexer.Action(nil, a.ruleIndex, a.actionIndex) }

func (a *LexerCustomAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerCustomAction)
	return ok && a.ruleIndex == o.ruleIndex && a.actionIndex == o.actionIndex
}

func (a *LexerCustomAction) Hash() int {
	return murmurCombine(murmurCombine(int(a.actionType), a.ruleIndex), a.actionIndex)
}

func (a *LexerCustomAction) String() string {
	return fmt.Sprintf("custom(%d,%d)", a.ruleIndex, a.actionIndex)
}

// LexerIndexedCustomAction wraps a position-dependent action together
// with the stream offset it must run at, produced by
// LexerActionExecutor.fixOffsetBeforeMatch (§4.5). Equality delegates to
// the wrapped action so two executors differing only in the recorded
// offset are never mistaken for different action lists by callers
// comparing actions, but the executor itself differentiates them by
// offset when re-executing.
type LexerIndexedCustomAction struct {
	*BaseLexerAction
	offset int
	action LexerAction
}

func NewLexerIndexedCustomAction(offset int, action LexerAction) *LexerIndexedCustomAction {
	return &LexerIndexedCustomAction{
		BaseLexerAction: &BaseLexerAction{actionType: action.getActionType(), isPositionDependent: true},
		offset:          offset,
		action:          action,
	}
}

func (a *LexerIndexedCustomAction) Execute(lexer Lexer) { a.action.Execute(lexer) }

func (a *LexerIndexedCustomAction) Equals(other LexerAction) bool {
	o, ok := other.(*LexerIndexedCustomAction)
	return ok && a.action.Equals(o.action)
}

func (a *LexerIndexedCustomAction) Hash() int { return a.action.Hash() }

func (a *LexerIndexedCustomAction) String() string { return a.action.String() }
