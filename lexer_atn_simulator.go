// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// lexerSimState captures the stream position, line/column, and DFA state
// of the most recent accept seen during a match, so execution can keep
// speculating past it and still roll back on failure (§4.5).
type lexerSimState struct {
	index    int
	line     int
	column   int
	dfaState *DFAState
}

func (s *lexerSimState) reset() {
	s.index = -1
	s.line = 0
	s.column = -1
	s.dfaState = nil
}

// LexerATNSimulator drives per-mode token recognition over an ATN (§4.5):
// one DFA is built lazily per lexer mode, mirroring the per-decision DFA
// the adaptive parser prediction engine maintains.
type LexerATNSimulator struct {
	recog Lexer
	atn   *ATN

	decisionToDFA []*DFA

	mode int

	startIndex int
	line       int
	column     int

	prevAccept lexerSimState

	sharedContextCache *PredictionContextCache
}

func NewLexerATNSimulator(recog Lexer, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *LexerATNSimulator {
	return &LexerATNSimulator{
		recog:              recog,
		atn:                atn,
		decisionToDFA:      decisionToDFA,
		sharedContextCache: sharedContextCache,
		column:             0,
		line:               1,
	}
}

func (l *LexerATNSimulator) GetCharPositionInLine() int { return l.column }

func (l *LexerATNSimulator) GetLine() int { return l.line }

func (l *LexerATNSimulator) Reset() {
	l.line = 1
	l.column = 0
	l.mode = 0
}

// Match is the primary entry point of §4.5: drive the automaton for the
// given mode against input, returning the recognized token type (or EOF).
func (l *LexerATNSimulator) Match(input CharStream, mode int) int {
	l.mode = mode
	mark := input.Mark()
	defer input.Release(mark)

	l.startIndex = input.Index()
	l.prevAccept.reset()

	dfa := l.decisionToDFA[mode]
	s0 := dfa.GetS0()
	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

func (l *LexerATNSimulator) matchATN(input CharStream) int {
	startState := l.atn.modeToStartState[l.mode]

	s0Closure := l.computeStartState(input, startState)
	suppressEdge := s0Closure.HasSemanticContext()
	s0Closure.SetHasSemanticContext(false)

	next := l.addDFAState(s0Closure)
	if !suppressEdge {
		l.decisionToDFA[l.mode].SetS0(next)
	}

	return l.execATN(input, next)
}

func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) int {
	if ds0.GetIsAcceptState() {
		l.captureSimState(input, ds0)
	}

	t := input.LA(1)
	s := ds0

	for {
		target := l.getExistingTargetState(s, t)
		if target == nil {
			target = l.computeTargetState(input, s, t)
		}

		if target == ErrorState {
			break
		}

		if t != TokenEOF {
			l.consume(input)
		}

		if target.GetIsAcceptState() {
			l.captureSimState(input, target)
			if t == TokenEOF {
				break
			}
		}

		t = input.LA(1)
		s = target
	}

	return l.failOrAccept(input, s.GetConfigs(), t)
}

// lexerMaxCachedEdge bounds the DFA edge table to the common ASCII/Latin-1
// range (§4.5, §5 "bounded resources"): symbols beyond it always recompute
// through the ATN instead of growing a per-state edge array to the size of
// the largest code point ever seen.
const lexerMaxCachedEdge = 255

func (l *LexerATNSimulator) getExistingTargetState(s *DFAState, t int) *DFAState {
	if t < TokenEOF || t > lexerMaxCachedEdge {
		return nil
	}
	return s.GetIthEdge(t)
}

func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reach := NewOrderedATNConfigSet()
	l.getReachableConfigSet(input, s.GetConfigs(), reach, t)

	if reach.IsEmpty() {
		if !reach.HasSemanticContext() && t >= TokenEOF && t <= lexerMaxCachedEdge {
			s.SetIthEdge(t, ErrorState)
		}
		return ErrorState
	}

	return l.addDFAEdge(s, t, reach)
}

// getReachableConfigSet implements reach(configs, t) (§4.5 step 2): run
// lexer closure on every configuration able to consume t, skipping
// lower-priority alternatives once a higher-priority one has already
// reached an accept state.
func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, closureConfigs *ATNConfigSet, reach *ATNConfigSet, t int) {
	skipAlt := ATNInvalidAltNumber

	for _, cfg := range closureConfigs.GetItems() {
		currentAltReachedAcceptState := cfg.GetAlt() == skipAlt
		if currentAltReachedAcceptState && cfg.GetPassedThroughNonGreedyDecision() {
			continue
		}

		for _, trans := range cfg.GetState().GetTransitions() {
			target := l.getReachableTarget(trans, t)
			if target == nil {
				continue
			}

			lexerActionExecutor := cfg.GetLexerActionExecutor()
			if lexerActionExecutor != nil {
				lexerActionExecutor = lexerActionExecutor.fixOffsetBeforeMatch(input.Index() - l.startIndex)
			}

			next := NewATNConfigFrom(cfg, target, cfg.GetContext(), cfg.GetSemanticContext())
			next.SetLexerActionExecutor(lexerActionExecutor)
			next.SetPassedThroughNonGreedyDecision(cfg.GetPassedThroughNonGreedyDecision() || isNonGreedyDecisionState(target))

			if l.closure(input, next, reach, currentAltReachedAcceptState, true, t == TokenEOF) {
				skipAlt = cfg.GetAlt()
			}
		}
	}
}

func (l *LexerATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, 0, maxUnicodeCodePoint) {
		return trans.getTarget()
	}
	return nil
}

func isNonGreedyDecisionState(s ATNState) bool {
	ds, ok := s.(DecisionState)
	return ok && ds.getNonGreedy()
}

// maxUnicodeCodePoint bounds Matches against the lexer's character
// vocabulary (§4.5, §6 "code points").
const maxUnicodeCodePoint = 0x10FFFF

func (l *LexerATNSimulator) computeStartState(input CharStream, p ATNState) *ATNConfigSet {
	configs := NewOrderedATNConfigSet()
	for i, t := range p.GetTransitions() {
		cfg := NewATNConfig(t.getTarget(), i+1, EmptyPredictionContext, nil)
		l.closure(input, cfg, configs, false, false, false)
	}
	return configs
}

// closure implements the lexer's epsilon closure (§4.5 "Lexer closure
// differences"): rule-stop configurations with an empty context are taken
// as-is, and a true return signals the caller to suppress any
// lower-priority alternative still sharing the same alt number.
func (l *LexerATNSimulator) closure(input CharStream, config *ATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon bool) bool {
	if _, ok := config.GetState().(*RuleStopState); ok {
		ctx := config.GetContext()
		if ctx.isEmpty() {
			configs.Add(config, nil)
			return true
		} else if ctx.hasEmptyPath() {
			configs.Add(config, nil)
			currentAltReachedAcceptState = true
		}

		for i := 0; i < ctx.length(); i++ {
			if ctx.getReturnState(i) == EmptyReturnState {
				continue
			}
			newContext := ctx.GetParent(i)
			returnState := l.atn.GetState(ctx.getReturnState(i))
			next := NewATNConfigFrom(config, returnState, newContext, config.GetSemanticContext())
			currentAltReachedAcceptState = l.closure(input, next, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
		}
		return currentAltReachedAcceptState
	}

	if !config.GetState().GetEpsilonOnlyTransitions() {
		if !currentAltReachedAcceptState || !config.GetPassedThroughNonGreedyDecision() {
			configs.Add(config, nil)
		}
	}

	for _, t := range config.GetState().GetTransitions() {
		next := l.getEpsilonTarget(input, config, t, configs, speculative, treatEOFAsEpsilon)
		if next != nil {
			currentAltReachedAcceptState = l.closure(input, next, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
		}
	}

	return currentAltReachedAcceptState
}

func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *ATNConfig, t Transition, configs *ATNConfigSet, speculative, treatEOFAsEpsilon bool) *ATNConfig {
	switch tt := t.(type) {
	case *RuleTransition:
		newContext := NewSingletonPredictionContext(config.GetContext(), tt.followState.GetStateNumber())
		return NewATNConfigFrom(config, t.getTarget(), newContext, config.GetSemanticContext())

	case *PrecedencePredicateTransition:
		panic(&ErrUnsupportedOperation{Reason: "precedence predicates are not supported in lexers"})

	case *PredicateTransition:
		configs.SetHasSemanticContext(true)
		if l.evaluatePredicate(input, tt.ruleIndex, tt.predIndex, speculative) {
			return NewATNConfigFrom(config, t.getTarget(), config.GetContext(), config.GetSemanticContext())
		}
		return nil

	case *ActionTransition:
		ctx := config.GetContext()
		if ctx == nil || ctx.hasEmptyPath() {
			executor := AppendLexerActionExecutor(config.GetLexerActionExecutor(), l.atn.GetLexerActions()[tt.actionIndex])
			next := NewATNConfigFrom(config, t.getTarget(), ctx, config.GetSemanticContext())
			next.SetLexerActionExecutor(executor)
			return next
		}
		return NewATNConfigFrom(config, t.getTarget(), ctx, config.GetSemanticContext())

	default:
		if t.getIsEpsilon() {
			return NewATNConfigFrom(config, t.getTarget(), config.GetContext(), config.GetSemanticContext())
		}
		if treatEOFAsEpsilon {
			if t.Matches(TokenEOF, 0, maxUnicodeCodePoint) {
				return NewATNConfigFrom(config, t.getTarget(), config.GetContext(), config.GetSemanticContext())
			}
		}
		return nil
	}
}

// evaluatePredicate tests a semantic predicate encountered during closure.
// speculative predicates (every site but the initial mode-start closure,
// §4.5) consume one character first so the predicate can see one token of
// lookahead, then roll the stream back; the non-speculative, start-of-match
// evaluation leaves the stream untouched. When the lexer is nil or has no
// Sempred method, every predicate evaluates to true.
func (l *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	recog, ok := l.recog.(interface {
		Sempred(localctx RuleContext, ruleIndex, predIndex int) bool
	})
	if !ok {
		return true
	}
	if !speculative {
		return recog.Sempred(nil, ruleIndex, predIndex)
	}

	savedColumn := l.column
	savedLine := l.line
	index := input.Index()
	marker := input.Mark()
	defer func() {
		l.column = savedColumn
		l.line = savedLine
		input.Seek(index)
		input.Release(marker)
	}()

	l.consume(input)
	return recog.Sempred(nil, ruleIndex, predIndex)
}

func (l *LexerATNSimulator) captureSimState(input CharStream, dfaState *DFAState) {
	l.prevAccept.index = input.Index()
	l.prevAccept.line = l.line
	l.prevAccept.column = l.column
	l.prevAccept.dfaState = dfaState
}

// addDFAState installs configs as a new deterministic state, deriving its
// accept flag, stored prediction, and action executor from the first
// rule-stop configuration found (§4.5 step 2).
func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	proposed := NewDFAState(-1, configs)

	for _, cfg := range configs.GetItems() {
		if _, ok := cfg.GetState().(*RuleStopState); ok {
			proposed.SetAccept(true)
			proposed.SetLexerActionExecutor(cfg.GetLexerActionExecutor())
			proposed.SetPrediction(l.atn.ruleToTokenType[cfg.GetState().GetRuleIndex()])
			break
		}
	}

	configs.SetReadonly(true)
	return l.decisionToDFA[l.mode].AddState(proposed)
}

func (l *LexerATNSimulator) addDFAEdge(from *DFAState, t int, reach *ATNConfigSet) *DFAState {
	suppressEdge := reach.HasSemanticContext()
	reach.SetHasSemanticContext(false)

	to := l.addDFAState(reach)

	if suppressEdge {
		return to
	}

	if t >= TokenEOF && t <= lexerMaxCachedEdge {
		from.SetIthEdge(t, to)
	}
	return to
}

func (l *LexerATNSimulator) consume(input CharStream) {
	if input.LA(1) == int('\n') {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	input.Consume()
}

// failOrAccept implements §4.5's termination step: replay the last
// captured accept, or fail if none was ever seen.
func (l *LexerATNSimulator) failOrAccept(input CharStream, reach *ATNConfigSet, t int) int {
	if l.prevAccept.dfaState != nil {
		executor := l.prevAccept.dfaState.GetLexerActionExecutor()
		l.accept(input, executor, l.prevAccept.index, l.prevAccept.line, l.prevAccept.column)
		return l.prevAccept.dfaState.GetPrediction()
	}

	if t == TokenEOF && input.Index() == l.startIndex {
		return TokenEOF
	}

	panic(NewLexerNoViableAltException(l.recog, input, l.startIndex, reach))
}

func (l *LexerATNSimulator) accept(input CharStream, executor *LexerActionExecutor, index, line, column int) {
	input.Seek(index)
	l.line = line
	l.column = column

	if executor != nil && l.recog != nil {
		executor.Execute(l.recog, input, l.startIndex)
	}
}
