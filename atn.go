// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ATNInvalidAltNumber represents an ALT number that has yet to be
// calculated or which is invalid for a particular configuration.
var ATNInvalidAltNumber int

// ATN represents an "Augmented Transition Network" — the static state
// graph a grammar compiles to (§3). It owns every ATNState and is
// immutable once deserialization (§4.1) completes; the prediction and
// lexical simulators (§4.4, §4.5) read it but never mutate it, which is
// what lets it be shared lock-free across concurrent predictors (§5).
type ATN struct {
	// DecisionToState is the decision points for all rules, sub-rules,
	// optional blocks, ()+, ()*, etc. Each sub-rule/rule is a decision
	// point, and we must track them so we can build deterministic-automaton
	// predictors for them later.
	DecisionToState []DecisionState

	grammarType int

	// lexerActions is referenced by action transitions in a lexer ATN.
	lexerActions []LexerAction

	maxTokenType int

	modeNameToStartState map[string]*TokensStartState

	modeToStartState []*TokensStartState

	ruleToStartState []*RuleStartState

	ruleToStopState []*RuleStopState

	// ruleToTokenType maps rule index to the resulting token type for
	// lexer ATNs; nil for parser ATNs.
	ruleToTokenType []int

	// states is every state in the ATN, ordered by state number.
	states []ATNState

	mu      sync.Mutex
	stateMu sync.RWMutex
	edgeMu  sync.RWMutex
}

func NewATN(grammarType int, maxTokenType int) *ATN {
	return &ATN{
		grammarType:          grammarType,
		maxTokenType:         maxTokenType,
		modeNameToStartState: make(map[string]*TokensStartState),
	}
}

func (a *ATN) GetGrammarType() int { return a.grammarType }

// NextTokensInContext computes and returns the set of valid tokens that
// can occur starting in state s. If ctx is nil the set is restricted to
// tokens reachable without leaving the rule s belongs to.
func (a *ATN) NextTokensInContext(s ATNState, ctx RuleContext) *IntervalSet {
	return NewLL1Analyzer(a).Look(s, nil, ctx)
}

// NextTokensNoContext computes and caches the set of valid tokens starting
// in state s and staying within the same rule. TokenEpsilon is in the set
// if the end of the rule can be reached.
func (a *ATN) NextTokensNoContext(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	iset := s.GetNextTokenWithinRule()
	if iset == nil {
		iset = a.NextTokensInContext(s, nil)
		iset.SetReadonly(true)
		s.SetNextTokenWithinRule(iset)
	}
	return iset
}

func (a *ATN) NextTokens(s ATNState, ctx RuleContext) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}
	return a.NextTokensInContext(s, ctx)
}

func (a *ATN) addState(state ATNState) {
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

func (a *ATN) removeState(state ATNState) {
	a.states[state.GetStateNumber()] = nil
}

func (a *ATN) defineDecisionState(s DecisionState) int {
	a.DecisionToState = append(a.DecisionToState, s)
	s.setDecision(len(a.DecisionToState) - 1)
	return s.getDecision()
}

func (a *ATN) getDecisionState(decision int) DecisionState {
	if len(a.DecisionToState) == 0 {
		return nil
	}
	return a.DecisionToState[decision]
}

// getExpectedTokens computes the set of input symbols which could follow
// ATN state number stateNumber in the specified full parse context ctx,
// evaluating every semantic predicate encountered as true. If a path
// exists from stateNumber to the outermost context's RuleStopState
// without consuming any symbol, TokenEOF is added to the result.
func (a *ATN) getExpectedTokens(stateNumber int, ctx RuleContext) *IntervalSet {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic(&ErrIllegalState{Reason: "invalid state number"})
	}

	s := a.states[stateNumber]
	following := a.NextTokens(s, nil)
	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()
	expected.addSet(following)
	expected.removeOne(TokenEpsilon)

	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := a.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0]
		following = a.NextTokens(rt.(*RuleTransition).followState, nil)
		expected.addSet(following)
		expected.removeOne(TokenEpsilon)
		ctx = ctx.GetParent()
	}

	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}

	return expected
}

func (a *ATN) GetRuleToStartState(index int) *RuleStartState { return a.ruleToStartState[index] }

func (a *ATN) GetRuleToStopState(index int) *RuleStopState { return a.ruleToStopState[index] }

func (a *ATN) GetMaxTokenType() int { return a.maxTokenType }

func (a *ATN) GetNumberOfDecisions() int { return len(a.DecisionToState) }

func (a *ATN) GetState(stateNumber int) ATNState {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		return nil
	}
	return a.states[stateNumber]
}

func (a *ATN) GetModeToStartState() []*TokensStartState { return a.modeToStartState }

func (a *ATN) GetModeNameToStartState() map[string]*TokensStartState { return a.modeNameToStartState }

// ModeNames returns the lexer's mode names in sorted order, for diagnostic
// output where iteration over modeNameToStartState would otherwise be
// nondeterministic.
func (a *ATN) ModeNames() []string {
	names := maps.Keys(a.modeNameToStartState)
	slices.Sort(names)
	return names
}

func (a *ATN) GetLexerActions() []LexerAction { return a.lexerActions }

// getCachedContext returns the canonical copy of context from cache, with
// each parent replaced by its cached form; it forwards to
// getCachedPredictionContext (§4.2).
func (a *ATN) getCachedContext(context PredictionContext, cache *PredictionContextCache, visited map[PredictionContext]PredictionContext) PredictionContext {
	return getCachedPredictionContext(context, cache, visited)
}
