// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Recognizer is the common contract shared by generated parsers and
// lexers: the ATN they are driving, the vocabulary for error messages,
// and the error listeners prediction reports diagnostics to (§6).
type Recognizer interface {
	GetATN() *ATN
	GetErrorListenerDispatch() ErrorListener
	GetParserRuleContext() RuleContext
	GetInputStream() IntStream
}

// Parser is the external collaborator (§6) the prediction engine calls
// back into to evaluate semantic and precedence predicates
// (Transition.Predicate, Transition.PrecedencePredicate) and to read the
// current token / precedence during error construction and left-recursion
// elimination (§4.4.2, §4.4.8).
type Parser interface {
	Recognizer

	// Sempred evaluates the predicate registered at (ruleIndex, predIndex)
	// against the parser's current rule context.
	Sempred(localctx RuleContext, ruleIndex, predIndex int) bool

	// Precpred evaluates a left-recursion precedence predicate: is the
	// current parser precedence >= precedence?
	Precpred(localctx RuleContext, precedence int) bool

	// GetPrecedence returns the parser's current precedence level, used to
	// select a precedence-aware decision's start state (§4.4, §4.4.9).
	GetPrecedence() int

	GetCurrentToken() Token
	GetTokenStream() TokenStream
	NotifyErrorListeners(msg string, offendingToken Token, err RecognitionException)
}

// Lexer is the external collaborator the lexical simulator calls back into
// to execute custom lexer actions (§4.5, §6) and to read/set its own mode
// stack.
type Lexer interface {
	Recognizer

	Action(localctx RuleContext, ruleIndex, actionIndex int)
	GetCharStream() CharStream

	GetLine() int
	SetLine(line int)
	GetCharPositionInLine() int
	SetCharPositionInLine(pos int)

	GetMode() int
	SetMode(mode int)
	PushMode(mode int)
	PopMode() int

	Skip()
	More()

	NotifyListeners(e *LexerNoViableAltException)
}
