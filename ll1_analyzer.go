// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LL1AnalyzerHitPred is added to a LOOK result wherever a semantic predicate is
// encountered while predicates are not being seen through (§4.6).
const LL1AnalyzerHitPred = TokenInvalidType

// LL1Analyzer computes context-aware token-set lookahead over the ATN
// (§4.6 LOOK), treating predicates as transparent and tracking which
// rules are on the call stack to avoid infinite recursion through
// left-recursive rules.
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer { return &LL1Analyzer{atn: atn} }

// Look computes the set of token types that can appear next starting at
// s, stopping at stopState (or the end of the enclosing rule if nil),
// using ctx to resolve what follows when the rule chain bottoms out.
func (la *LL1Analyzer) Look(s, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	seeThruPreds := true

	var lookContext PredictionContext
	if ctx != nil {
		lookContext = predictionContextFromRuleContext(la.atn, ctx)
	}

	busy := NewJStore[*atnStateContextPair, atnStateContextPairComparator](atnStateContextPairComparator{})
	calledRuleStack := NewBitSet()

	la.look1(s, stopState, lookContext, r, busy, calledRuleStack, seeThruPreds, true)
	return r
}

// atnStateContextPair is the cycle-avoidance key of §4.6's depth-limited
// closure: (state, context) pairs already explored are skipped.
type atnStateContextPair struct {
	state ATNState
	ctx   PredictionContext
}

type atnStateContextPairComparator struct{}

func (atnStateContextPairComparator) Hash1(p *atnStateContextPair) int {
	h := murmurCombine(0, p.state.GetStateNumber())
	if p.ctx != nil {
		h = murmurCombine(h, p.ctx.Hash())
	}
	return h
}

func (atnStateContextPairComparator) Equals2(a, b *atnStateContextPair) bool {
	if a.state.GetStateNumber() != b.state.GetStateNumber() {
		return false
	}
	if a.ctx == nil || b.ctx == nil {
		return a.ctx == b.ctx
	}
	return a.ctx.Equals(b.ctx)
}

func (la *LL1Analyzer) look1(
	s, stopState ATNState,
	ctx PredictionContext,
	look *IntervalSet,
	busy *JStore[*atnStateContextPair, atnStateContextPairComparator],
	calledRuleStack *BitSet,
	seeThruPreds bool,
	addEOF bool,
) {
	c := &atnStateContextPair{state: s, ctx: ctx}
	if !busy.Add(c) {
		return
	}

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}

		if ctx != EmptyPredictionContext {
			removed := calledRuleStack.Contains(s.GetRuleIndex())
			defer func() {
				if removed {
					calledRuleStack.Add(s.GetRuleIndex())
				}
			}()
			calledRuleStack.Remove(s.GetRuleIndex())

			for i := 0; i < ctx.length(); i++ {
				returnState := la.atn.states[ctx.getReturnState(i)]
				la.look1(returnState, stopState, ctx.GetParent(i), look, busy, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack.Contains(tt.ruleIndex) {
				continue
			}
			newContext := NewSingletonPredictionContext(ctx, tt.followState.GetStateNumber())
			calledRuleStack.Add(tt.ruleIndex)
			la.look1(tt.getTarget(), stopState, newContext, look, busy, calledRuleStack, seeThruPreds, addEOF)
			calledRuleStack.Remove(tt.ruleIndex)
		case AbstractPredicateTransition:
			if seeThruPreds {
				la.look1(t.getTarget(), stopState, ctx, look, busy, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(LL1AnalyzerHitPred)
			}
		case *ActionTransition:
			la.look1(t.getTarget(), stopState, ctx, look, busy, calledRuleStack, seeThruPreds, addEOF)
		default:
			if t.getIsEpsilon() {
				la.look1(t.getTarget(), stopState, ctx, look, busy, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			if _, ok := t.(*WildcardTransition); ok {
				look.AddRange(TokenMinUserTokenType, la.atn.maxTokenType)
				continue
			}
			set := t.getLabel()
			if set == nil {
				continue
			}
			if _, ok := t.(*NotSetTransition); ok {
				set = set.Complement(TokenMinUserTokenType, la.atn.maxTokenType)
			}
			look.addSet(set)
		}
	}
}

// TokenMinUserTokenType is the lowest token type a grammar can assign to
// a user rule; types below it are reserved (EOF, epsilon, invalid).
const TokenMinUserTokenType = 1
