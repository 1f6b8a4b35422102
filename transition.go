// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Transition kind discriminants (§3). The source models these as an
// inheritance tree; Go prefers a tagged union with a dispatch function per
// operation, so TransitionType is the discriminant and every Transition
// implementation answers the same two questions: IsEpsilon, and Matches.
type TransitionType int

const (
	TransitionEPSILON TransitionType = iota + 1
	TransitionRANGE
	TransitionRULE
	TransitionPREDICATE
	TransitionATOM
	TransitionACTION
	TransitionSET
	TransitionNOTSET
	TransitionWILDCARD
	TransitionPRECEDENCE
)

// Transition is the common interface every edge in the ATN implements.
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	getIsEpsilon() bool
	getLabel() *IntervalSet
	getSerializationType() TransitionType
	Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool
}

type BaseTransition struct {
	target             ATNState
	isEpsilon          bool
	label              int
	intervalSet        *IntervalSet
	serializationType  TransitionType
}

func (t *BaseTransition) getTarget() ATNState { return t.target }

func (t *BaseTransition) setTarget(s ATNState) { t.target = s }

func (t *BaseTransition) getIsEpsilon() bool { return t.isEpsilon }

func (t *BaseTransition) getLabel() *IntervalSet { return t.intervalSet }

func (t *BaseTransition) getSerializationType() TransitionType { return t.serializationType }

func (t *BaseTransition) Matches(int, int, int) bool { return false }

// EpsilonTransition consumes no input. outermostPrecedenceReturn names the
// rule index a return from a precedence-decision entry is associated with,
// or -1 (§3).
type EpsilonTransition struct {
	*BaseTransition
	outermostPrecedenceReturn int
}

func NewEpsilonTransition(target ATNState, outermostPrecedenceReturn int) *EpsilonTransition {
	return &EpsilonTransition{
		BaseTransition:            &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionEPSILON},
		outermostPrecedenceReturn: outermostPrecedenceReturn,
	}
}

func (t *EpsilonTransition) OutermostPrecedenceReturn() int { return t.outermostPrecedenceReturn }

func (t *EpsilonTransition) String() string { return "epsilon" }

// RangeTransition matches a contiguous [From, To] range of symbols.
type RangeTransition struct {
	*BaseTransition
	From, To int
}

func NewRangeTransition(target ATNState, from, to int) *RangeTransition {
	t := &RangeTransition{
		BaseTransition: &BaseTransition{target: target, serializationType: TransitionRANGE},
		From:           from,
		To:             to,
	}
	t.intervalSet = t.makeLabel()
	return t
}

func (t *RangeTransition) makeLabel() *IntervalSet {
	s := NewIntervalSet()
	s.AddRange(t.From, t.To)
	return s
}

func (t *RangeTransition) Matches(symbol, _, _ int) bool {
	return symbol >= t.From && symbol <= t.To
}

// RuleTransition is a call edge into a subrule; it carries the subrule's
// start state, its precedence (for left-recursive rules), and the state
// to resume at once the rule returns (§3).
type RuleTransition struct {
	*BaseTransition
	ruleIndex, precedence int
	followState           ATNState
}

func NewRuleTransition(ruleStart ATNState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	return &RuleTransition{
		BaseTransition: &BaseTransition{target: ruleStart, isEpsilon: true, serializationType: TransitionRULE},
		ruleIndex:      ruleIndex,
		precedence:     precedence,
		followState:    followState,
	}
}

func (t *RuleTransition) GetRuleIndex() int { return t.ruleIndex }

func (t *RuleTransition) GetPrecedence() int { return t.precedence }

func (t *RuleTransition) GetFollowState() ATNState { return t.followState }

// AbstractPredicateTransition is a marker shared by Predicate and
// Precedence transitions so closure dispatch can detect either variant
// where the algorithm treats them alike (§4.4.2).
type AbstractPredicateTransition interface {
	Transition
	iPredicateTransition()
}

// PredicateTransition tests a user-supplied semantic predicate.
// isCtxDependent marks a predicate that reads its rule context: the parser
// closure collects it only at depth 0, inside the decision's own rule, and
// passes through it without collecting it everywhere else.
type PredicateTransition struct {
	*BaseTransition
	ruleIndex, predIndex int
	isCtxDependent       bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{
		BaseTransition: &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPREDICATE},
		ruleIndex:      ruleIndex,
		predIndex:      predIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (t *PredicateTransition) iPredicateTransition() {}

func (t *PredicateTransition) GetPredicate() *Predicate {
	return NewPredicate(t.ruleIndex, t.predIndex, t.isCtxDependent)
}

// AtomTransition matches exactly one symbol.
type AtomTransition struct {
	*BaseTransition
}

func NewAtomTransition(target ATNState, label int) *AtomTransition {
	t := &AtomTransition{BaseTransition: &BaseTransition{target: target, label: label, serializationType: TransitionATOM}}
	s := NewIntervalSet()
	s.AddOne(label)
	t.intervalSet = s
	return t
}

func (t *AtomTransition) Matches(symbol, _, _ int) bool { return t.label == symbol }

// ActionTransition executes an embedded lexer/parser action; it is
// invisible to prediction (§4.4.2: pass-through).
type ActionTransition struct {
	*BaseTransition
	ruleIndex, actionIndex int
	isCtxDependent         bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	return &ActionTransition{
		BaseTransition: &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionACTION},
		ruleIndex:      ruleIndex,
		actionIndex:    actionIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (t *ActionTransition) GetRuleIndex() int { return t.ruleIndex }

func (t *ActionTransition) GetActionIndex() int { return t.actionIndex }

// SetTransition matches any symbol in an IntervalSet.
type SetTransition struct {
	*BaseTransition
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSet()
		set.AddOne(TokenInvalidType)
	}
	return &SetTransition{BaseTransition: &BaseTransition{target: target, intervalSet: set, serializationType: TransitionSET}}
}

func (t *SetTransition) Matches(symbol, _, _ int) bool { return t.intervalSet.Contains(symbol) }

// NotSetTransition matches any symbol NOT in an IntervalSet, within the
// recognizer's vocabulary.
type NotSetTransition struct {
	*SetTransition
}

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	s := NewSetTransition(target, set)
	s.serializationType = TransitionNOTSET
	return &NotSetTransition{SetTransition: s}
}

func (t *NotSetTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab && !t.intervalSet.Contains(symbol)
}

// WildcardTransition matches any symbol in the recognizer's vocabulary.
type WildcardTransition struct {
	*BaseTransition
}

func NewWildcardTransition(target ATNState) *WildcardTransition {
	return &WildcardTransition{BaseTransition: &BaseTransition{target: target, serializationType: TransitionWILDCARD}}
}

func (t *WildcardTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab
}

// PrecedencePredicateTransition implements left-recursion precedence
// filtering (§4.4.8): "is the current precedence >= this alternative's
// precedence?".
type PrecedencePredicateTransition struct {
	*BaseTransition
	precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{
		BaseTransition: &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPRECEDENCE},
		precedence:      precedence,
	}
}

func (t *PrecedencePredicateTransition) iPredicateTransition() {}

func (t *PrecedencePredicateTransition) GetPrecedence() int { return t.precedence }

func (t *PrecedencePredicateTransition) GetPredicate() *PrecedencePredicate {
	return NewPrecedencePredicate(t.precedence)
}
