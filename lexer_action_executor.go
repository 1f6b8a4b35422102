// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerActionExecutor is the immutable list of actions a lexer accept
// state carries (§4.5 "Action executor"). fixOffsetBeforeMatch wraps every
// position-dependent action in an indexed variant recording the stream
// offset it must run at, since by the time the executor actually runs the
// stream has moved on to the next token's start.
type LexerActionExecutor struct {
	lexerActions []LexerAction
	cachedHash   int
}

func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{lexerActions: actions}
	h := 0
	for _, a := range actions {
		h = murmurCombine(h, a.Hash())
	}
	e.cachedHash = murmurFinish(h, len(actions))
	return e
}

func (e *LexerActionExecutor) GetLexerActions() []LexerAction { return e.lexerActions }

// fixOffsetBeforeMatch returns a new executor where every position-
// dependent action is wrapped in a LexerIndexedCustomAction recording
// offset, so Execute can seek back to the right point in the stream
// before each one runs (§4.5).
func (e *LexerActionExecutor) fixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	var updated []LexerAction
	for i, a := range e.lexerActions {
		if a.getIsPositionDependent() {
			if updated == nil {
				updated = make([]LexerAction, len(e.lexerActions))
				copy(updated, e.lexerActions)
			}
			updated[i] = NewLexerIndexedCustomAction(offset, a)
		}
	}
	if updated == nil {
		return e
	}
	return NewLexerActionExecutor(updated)
}

// AppendLexerActionExecutor returns a new executor with action appended,
// building on the base executor (which may be nil) (§4.5).
func AppendLexerActionExecutor(base *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	if base == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(base.lexerActions)+1)
	copy(actions, base.lexerActions)
	actions[len(base.lexerActions)] = action
	return NewLexerActionExecutor(actions)
}

// Execute iterates the action list, seeking the stream to startIndex plus
// the recorded offset for indexed actions and to the token's stop index for other
// position-dependent actions, restoring the stop index on exit (§4.5).
func (e *LexerActionExecutor) Execute(lexer Lexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()

	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()

	for _, a := range e.lexerActions {
		toExecute := a
		if indexed, ok := a.(*LexerIndexedCustomAction); ok {
			input.Seek(startIndex + indexed.offset)
			toExecute = indexed.action
			requiresSeek = input.Index() != stopIndex
		} else if a.getIsPositionDependent() {
			input.Seek(stopIndex)
			requiresSeek = false
		}
		toExecute.Execute(lexer)
	}
}

func (e *LexerActionExecutor) Hash() int { return e.cachedHash }

func (e *LexerActionExecutor) Equals(other *LexerActionExecutor) bool {
	return lexerActionExecutorsEqual(e, other)
}

func lexerActionExecutorsEqual(a, b *LexerActionExecutor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.lexerActions) != len(b.lexerActions) {
		return false
	}
	for i := range a.lexerActions {
		if !a.lexerActions[i].Equals(b.lexerActions[i]) {
			return false
		}
	}
	return true
}
