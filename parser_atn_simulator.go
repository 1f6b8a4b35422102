// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// parserClosureComparator keys a closure call's busy set by full
// structural ATNConfig equality, the cycle-avoidance mechanism of §4.4.2.
type parserClosureComparator = atnConfigComparator

// ParserATNSimulator is the adaptive SLL/LL(*) prediction engine of §4.4:
// given a decision and the current input, it determines which alternative
// to take, building and caching a deterministic automaton per decision as
// it goes (§4.4.9). One instance serves one parser; the fields set during
// a call to AdaptivePredict (dfa, outerContext, input, startIndex) are
// scratch state for that single call, not safe to share across goroutines
// predicting concurrently against the same parser.
type ParserATNSimulator struct {
	parser         Parser
	atn            *ATN
	decisionToDFA  []*DFA
	predictionMode PredictionMode

	sharedContextCache *PredictionContextCache
	mergeCache         PredictionContextMergeCache

	dfa          *DFA
	outerContext RuleContext
	input        TokenStream
	startIndex   int
}

func NewParserATNSimulator(parser Parser, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	return &ParserATNSimulator{
		parser:             parser,
		atn:                atn,
		decisionToDFA:      decisionToDFA,
		predictionMode:     PredictionModeLL,
		sharedContextCache: sharedContextCache,
	}
}

func (p *ParserATNSimulator) GetPredictionMode() PredictionMode { return p.predictionMode }

func (p *ParserATNSimulator) SetPredictionMode(m PredictionMode) { p.predictionMode = m }

// AdaptivePredict is the entry point of §4.4: decide which alternative of
// decision to take given outerContext and the tokens ahead in input.
// Input position is restored to where it started regardless of how
// prediction resolves, including when it panics with a
// RecognitionException (§7 propagation policy).
func (p *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext RuleContext) int {
	dfa := p.decisionToDFA[decision]
	startIndex := input.Index()

	if outerContext == nil {
		outerContext = ParserRuleContextEmpty
	}

	p.dfa = dfa
	p.outerContext = outerContext
	p.input = input
	p.startIndex = startIndex
	p.mergeCache = NewPredictionContextMergeCache()

	m := input.Mark()
	defer func() {
		input.Seek(startIndex)
		input.Release(m)
		p.dfa = nil
		p.outerContext = nil
		p.input = nil
		p.mergeCache = nil
	}()

	var s0 *DFAState
	if dfa.IsPrecedenceDfa() {
		s0 = dfa.GetPrecedenceStartState(p.parser.GetPrecedence())
	} else {
		s0 = dfa.GetS0()
	}

	if s0 == nil {
		s0Closure := p.computeStartState(dfa.GetATNStartState(), outerContext, false)
		if dfa.IsPrecedenceDfa() {
			s0Closure = p.applyPrecedenceFilter(s0Closure)
			s0 = p.addDFAState(dfa, NewDFAState(-1, s0Closure))
			dfa.SetPrecedenceStartState(p.parser.GetPrecedence(), s0)
		} else {
			s0 = p.addDFAState(dfa, NewDFAState(-1, s0Closure))
			dfa.SetS0(s0)
		}
	}

	return p.execATN(dfa, s0, input, startIndex, outerContext)
}

// execATN drives the SLL-stage deterministic automaton forward one symbol
// at a time, computing missing transitions on demand, and falls over to
// full-context simulation the first time it reaches a state the SLL stage
// marked ambiguous (§4.4.3).
func (p *ParserATNSimulator) execATN(dfa *DFA, s0 *DFAState, input TokenStream, startIndex int, outerContext RuleContext) int {
	previousD := s0
	t := input.LA(1)

	for {
		d := p.getExistingTargetState(previousD, t)
		if d == nil {
			d = p.computeTargetState(dfa, previousD, t)
		}

		if d == ErrorState {
			e := p.noViableAlt(input, outerContext, previousD.GetConfigs(), startIndex)
			input.Seek(startIndex)
			alt := p.getSynValidOrSemInvalidAltThatFinishedDecisionEntryRule(previousD.GetConfigs(), outerContext)
			if alt != ATNInvalidAltNumber {
				return alt
			}
			panic(e)
		}

		if d.GetRequiresFullContext() && p.predictionMode != PredictionModeSLL {
			conflictingAlts := d.GetConfigs().GetConflictingAlts()
			if d.GetPredicates() != nil {
				conflictIndex := input.Index()
				if conflictIndex != startIndex {
					input.Seek(startIndex)
				}
				conflictingAlts = p.evalSemanticContext(d.GetPredicates(), outerContext, true)
				if conflictingAlts.Len() == 1 {
					return conflictingAlts.Minimum()
				}
				if conflictIndex != startIndex {
					input.Seek(conflictIndex)
				}
			}

			p.reportAttemptingFullContext(dfa, conflictingAlts, d.GetConfigs(), startIndex, input.Index())

			input.Seek(startIndex)
			fullCtxConfigs := p.computeStartState(dfa.GetATNStartState(), outerContext, true)
			return p.execATNWithFullContext(dfa, d, fullCtxConfigs, input, startIndex, outerContext)
		}

		if d.GetIsAcceptState() {
			if d.GetPredicates() == nil {
				return d.GetPrediction()
			}

			stopIndex := input.Index()
			input.Seek(startIndex)
			alts := p.evalSemanticContext(d.GetPredicates(), outerContext, true)
			switch alts.Len() {
			case 0:
				panic(p.noViableAlt(input, outerContext, d.GetConfigs(), startIndex))
			case 1:
				return alts.Minimum()
			default:
				input.Seek(stopIndex)
				return alts.Minimum()
			}
		}

		previousD = d

		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		}
	}
}

// execATNWithFullContext re-derives the configuration set from scratch in
// full (LL) context and keeps consuming until either a unique alt emerges
// or the remaining alternatives are truly, exactly ambiguous (§4.4.3,
// §4.4.6). d is the SLL state prediction fell back from, kept only for the
// diagnostic report.
func (p *ParserATNSimulator) execATNWithFullContext(dfa *DFA, d *DFAState, s0 *ATNConfigSet, input TokenStream, startIndex int, outerContext RuleContext) int {
	fullCtx := true
	foundExactAmbig := false
	var reach *ATNConfigSet
	previous := s0

	input.Seek(startIndex)
	t := input.LA(1)
	var predictedAlt int

	for {
		reach = p.computeReachSet(previous, t, fullCtx)
		if reach == nil {
			e := p.noViableAlt(input, outerContext, previous, startIndex)
			input.Seek(startIndex)
			alt := p.getSynValidOrSemInvalidAltThatFinishedDecisionEntryRule(previous, outerContext)
			if alt != ATNInvalidAltNumber {
				return alt
			}
			panic(e)
		}

		reach.SetUniqueAlt(uniqueAlt(reach))
		if reach.GetUniqueAlt() != ATNInvalidAltNumber {
			predictedAlt = reach.GetUniqueAlt()
			break
		}

		altSubsets := getConflictingAltSubsets(reach)
		if p.predictionMode == PredictionModeLLExactAmbigDetection {
			if allSubsetsConflict(altSubsets) && allSubsetsEqual(altSubsets) {
				foundExactAmbig = true
				predictedAlt = getConflictingAlts(reach).Minimum()
				break
			}
		} else if allSubsetsEqual(altSubsets) {
			predictedAlt = getAlts(reach).Minimum()
			break
		}

		previous = reach
		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		}
	}

	if reach.GetUniqueAlt() != ATNInvalidAltNumber {
		p.reportContextSensitivity(dfa, predictedAlt, reach, startIndex, input.Index())
	} else {
		p.reportAmbiguity(dfa, d, startIndex, input.Index(), foundExactAmbig, getConflictingAlts(reach), reach)
	}

	return predictedAlt
}

// getExistingTargetState reads previousD's cached edge for symbol t,
// lock-free (§5): either nil (not yet computed), ErrorState, or a
// published *DFAState.
func (p *ParserATNSimulator) getExistingTargetState(previousD *DFAState, t int) *DFAState {
	return previousD.GetIthEdge(t)
}

// computeTargetState advances previousD by symbol t: closes the reach set,
// decides whether it is a plain accept, a conflicted accept requiring full
// context, or neither, and installs the result as a new cached edge
// (§4.4.4, §4.4.9).
func (p *ParserATNSimulator) computeTargetState(dfa *DFA, previousD *DFAState, t int) *DFAState {
	reach := p.computeReachSet(previousD.GetConfigs(), t, false)
	if reach == nil {
		p.addDFAEdge(dfa, previousD, t, ErrorState)
		return ErrorState
	}

	d := NewDFAState(-1, reach)
	predictedAlt := uniqueAlt(reach)

	switch {
	case predictedAlt != ATNInvalidAltNumber:
		d.SetAccept(true)
		reach.SetUniqueAlt(predictedAlt)
		d.SetPrediction(predictedAlt)
	case hasSLLConflictTerminatingPrediction(p.predictionMode, reach):
		conflictingAlts := getConflictingAlts(reach)
		reach.SetConflictingAlts(conflictingAlts)
		d.SetRequiresFullContext(true)
		d.SetAccept(true)
		d.SetPrediction(conflictingAlts.Minimum())
	}

	if d.GetIsAcceptState() && reach.HasSemanticContext() {
		p.predicateDFAState(d, p.atn.getDecisionState(dfa.GetDecision()))
		if d.GetPredicates() != nil {
			d.SetPrediction(ATNInvalidAltNumber)
		}
	}

	return p.addDFAEdge(dfa, previousD, t, d)
}

// predicateDFAState resolves an ambiguous or unique-but-predicated accept
// state into either a fixed prediction or a list of (predicate, alt) pairs
// to evaluate at match time (§4.4.7).
func (p *ParserATNSimulator) predicateDFAState(d *DFAState, decisionState DecisionState) {
	altsToCollectPredsFrom := getConflictingAltsOrUniqueAlt(d.GetConfigs())
	altToPred := p.getPredsForAmbigAlts(altsToCollectPredsFrom, d.GetConfigs(), len(decisionState.GetTransitions()))
	if altToPred != nil {
		d.SetPredicates(p.getPredicatePredictions(altsToCollectPredsFrom, altToPred))
		d.SetPrediction(ATNInvalidAltNumber)
	} else {
		d.SetPrediction(altsToCollectPredsFrom.Minimum())
	}
}

func getConflictingAltsOrUniqueAlt(configs *ATNConfigSet) *BitSet {
	if configs.GetUniqueAlt() != ATNInvalidAltNumber {
		b := NewBitSet()
		b.Add(configs.GetUniqueAlt())
		return b
	}
	return configs.GetConflictingAlts()
}

// getPredsForAmbigAlts collects, for each alt under consideration, the OR
// of every semantic context attached to a configuration predicting it; nil
// means none of them carry a real predicate (§4.4.7).
func (p *ParserATNSimulator) getPredsForAmbigAlts(ambigAlts *BitSet, configs *ATNConfigSet, nalts int) []SemanticContext {
	altToPred := make([]SemanticContext, nalts+1)
	for _, c := range configs.GetItems() {
		if !ambigAlts.Contains(c.GetAlt()) {
			continue
		}
		if altToPred[c.GetAlt()] == nil {
			altToPred[c.GetAlt()] = c.GetSemanticContext()
		} else {
			altToPred[c.GetAlt()] = NewOr(altToPred[c.GetAlt()], c.GetSemanticContext())
		}
	}

	nPredAlts := 0
	for i := 1; i <= nalts; i++ {
		if altToPred[i] == nil {
			altToPred[i] = SemanticContextNone
		} else if altToPred[i] != SemanticContextNone {
			nPredAlts++
		}
	}
	if nPredAlts == 0 {
		return nil
	}
	return altToPred
}

func (p *ParserATNSimulator) getPredicatePredictions(ambigAlts *BitSet, altToPred []SemanticContext) []*PredPrediction {
	var pairs []*PredPrediction
	containsPredicate := false
	for i := 1; i < len(altToPred); i++ {
		pred := altToPred[i]
		if ambigAlts != nil && ambigAlts.Contains(i) {
			pairs = append(pairs, NewPredPrediction(pred, i))
		}
		if pred != SemanticContextNone {
			containsPredicate = true
		}
	}
	if !containsPredicate {
		return nil
	}
	return pairs
}

// addDFAEdge installs d (canonicalized via addDFAState) as from's cached
// transition on symbol t (§4.4.9, §5). from's edge table grows to fit any
// token type since a parser's vocabulary is small and bounded, unlike the
// lexer's raw Unicode code points (see lexerMaxCachedEdge).
func (p *ParserATNSimulator) addDFAEdge(dfa *DFA, from *DFAState, t int, d *DFAState) *DFAState {
	d = p.addDFAState(dfa, d)
	if from == nil || t < TokenEOF {
		return d
	}
	from.SetIthEdge(t, d)
	return d
}

// addDFAState canonicalizes d against dfa's state table (§4.4.9, §5) and,
// the first time a state is installed, freezes its configuration set
// through the shared context cache.
func (p *ParserATNSimulator) addDFAState(dfa *DFA, d *DFAState) *DFAState {
	if d == ErrorState {
		return d
	}
	if !d.GetConfigs().IsReadOnly() {
		d.GetConfigs().Optimize(p.sharedContextCache)
		d.GetConfigs().SetReadonly(true)
	}
	return dfa.AddState(d)
}

// computeStartState builds the initial configuration set for a decision:
// one configuration per alternative transition out of a, alt-numbered
// 1..n, each closed over epsilon transitions (§4.4.1).
func (p *ParserATNSimulator) computeStartState(a ATNState, ctx RuleContext, fullCtx bool) *ATNConfigSet {
	initialContext := predictionContextFromRuleContext(p.atn, ctx)
	configs := NewATNConfigSet(fullCtx)

	for i, t := range a.GetTransitions() {
		c := NewATNConfig(t.getTarget(), i+1, initialContext, SemanticContextNone)
		closureBusy := NewJStore[*ATNConfig, parserClosureComparator](parserClosureComparator{})
		p.closure(c, configs, closureBusy, true, fullCtx, false)
	}

	return configs
}

// applyPrecedenceFilter implements §4.4.8's two-pass left-recursion
// filter: alt-1 configurations (the non-recursive base case) are reduced
// by their precedence predicate first, recording which (state, context)
// combinations they cover; configurations from any other alt covering the
// same combination, unless explicitly suppressed, are then dropped as
// redundant with the alt-1 path.
func (p *ParserATNSimulator) applyPrecedenceFilter(configs *ATNConfigSet) *ATNConfigSet {
	statesFromAlt1 := map[int]PredictionContext{}
	out := NewATNConfigSet(configs.FullContext())

	for _, config := range configs.GetItems() {
		if config.GetAlt() != 1 {
			continue
		}
		updated := config.GetSemanticContext().evalPrecedence(p.parser, p.outerContext)
		if updated == nil {
			continue
		}
		statesFromAlt1[config.GetState().GetStateNumber()] = config.GetContext()
		if updated != config.GetSemanticContext() {
			out.Add(NewATNConfigFrom(config, config.GetState(), config.GetContext(), updated), p.mergeCache)
		} else {
			out.Add(config, p.mergeCache)
		}
	}

	for _, config := range configs.GetItems() {
		if config.GetAlt() == 1 {
			continue
		}
		if !config.getPrecedenceFilterSuppressed() {
			if ctx, ok := statesFromAlt1[config.GetState().GetStateNumber()]; ok && ctx.Equals(config.GetContext()) {
				continue
			}
		}
		out.Add(config, p.mergeCache)
	}

	return out
}

// computeReachSet advances every configuration in closureConfigs across
// symbol t, re-closing the result unless it is already trivially
// deterministic (a single configuration, or all configurations agreeing on
// one alt), in which case closing it is both unnecessary and would lose
// the short-circuit (§4.4.4).
func (p *ParserATNSimulator) computeReachSet(closureConfigs *ATNConfigSet, t int, fullCtx bool) *ATNConfigSet {
	intermediate := NewATNConfigSet(fullCtx)

	var skippedStopStates []*ATNConfig

	for _, c := range closureConfigs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			if fullCtx || t == TokenEOF {
				skippedStopStates = append(skippedStopStates, c)
			}
			continue
		}

		for _, trans := range c.GetState().GetTransitions() {
			target := p.getReachableTarget(trans, t)
			if target != nil {
				intermediate.Add(NewATNConfigFrom(c, target, c.GetContext(), nil), p.mergeCache)
			}
		}
	}

	var reach *ATNConfigSet

	if skippedStopStates == nil && t != TokenEOF {
		if intermediate.Length() == 1 {
			reach = intermediate
		} else if uniqueAlt(intermediate) != ATNInvalidAltNumber {
			reach = intermediate
		}
	}

	if reach == nil {
		reach = NewATNConfigSet(fullCtx)
		closureBusy := NewJStore[*ATNConfig, parserClosureComparator](parserClosureComparator{})
		treatEOFAsEpsilon := t == TokenEOF
		for _, c := range intermediate.GetItems() {
			p.closure(c, reach, closureBusy, false, fullCtx, treatEOFAsEpsilon)
		}
	}

	if t == TokenEOF {
		reach = p.removeAllConfigsNotInRuleStopState(reach, reach == intermediate)
	}

	if skippedStopStates != nil && (!fullCtx || !hasConfigInRuleStopState(reach)) {
		for _, c := range skippedStopStates {
			reach.Add(c, p.mergeCache)
		}
	}

	if reach.IsEmpty() {
		return nil
	}
	return reach
}

func (p *ParserATNSimulator) getReachableTarget(trans Transition, ttype int) ATNState {
	if trans.Matches(ttype, 0, p.atn.GetMaxTokenType()) {
		return trans.getTarget()
	}
	return nil
}

func hasConfigInRuleStopState(configs *ATNConfigSet) bool {
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			return true
		}
	}
	return false
}

func allConfigsInRuleStopStates(configs *ATNConfigSet) bool {
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); !ok {
			return false
		}
	}
	return true
}

// removeAllConfigsNotInRuleStopState implements the EOF-reach narrowing of
// §4.4.4: once the decision has consumed EOF, only configurations that
// actually finished their rule (or can reach the end of it via epsilon
// transitions alone) remain viable.
func (p *ParserATNSimulator) removeAllConfigsNotInRuleStopState(configs *ATNConfigSet, lookToEndOfRule bool) *ATNConfigSet {
	if allConfigsInRuleStopStates(configs) {
		return configs
	}
	result := NewATNConfigSet(configs.FullContext())
	for _, config := range configs.GetItems() {
		if _, ok := config.GetState().(*RuleStopState); ok {
			result.Add(config, p.mergeCache)
			continue
		}
		if lookToEndOfRule && config.GetState().GetEpsilonOnlyTransitions() {
			nextTokens := p.atn.NextTokensNoContext(config.GetState())
			if nextTokens.Contains(TokenEpsilon) {
				endOfRuleState := p.atn.GetRuleToStopState(config.GetState().GetRuleIndex())
				result.Add(NewATNConfigFrom(config, endOfRuleState, config.GetContext(), nil), p.mergeCache)
			}
		}
	}
	return result
}

// closure is the epsilon closure of §4.4.2: from config, follow every
// epsilon (including rule-call, predicate, and action) transition reachable
// without consuming input, adding every state reached to configs.
func (p *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig, parserClosureComparator], collectPredicates, fullCtx, treatEOFAsEpsilon bool) {
	p.closureCheckingStopState(config, configs, closureBusy, collectPredicates, fullCtx, 0, treatEOFAsEpsilon)
}

// closureCheckingStopState special-cases a configuration sitting on a rule
// stop state: with call-stack context available it pops back to the
// caller(s); with no context at all (SLL, bottomed out) it simply records
// the configuration and lets closure_ discover the stop state has nothing
// further to traverse (§4.4.2).
func (p *ParserATNSimulator) closureCheckingStopState(config *ATNConfig, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig, parserClosureComparator], collectPredicates, fullCtx bool, depth int, treatEOFAsEpsilon bool) {
	if !closureBusy.Add(config) {
		return
	}

	if _, ok := config.GetState().(*RuleStopState); ok {
		ctx := config.GetContext()
		if ctx != nil && !ctx.isEmpty() {
			for i := 0; i < ctx.length(); i++ {
				if ctx.getReturnState(i) == EmptyReturnState {
					if fullCtx {
						configs.Add(NewATNConfigFrom(config, config.GetState(), EmptyPredictionContext, nil), p.mergeCache)
					}
					continue
				}
				returnState := p.atn.GetState(ctx.getReturnState(i))
				newContext := ctx.GetParent(i)
				c := NewATNConfig(returnState, config.GetAlt(), newContext, config.GetSemanticContext())
				c.reachesIntoOuterContext = config.reachesIntoOuterContext
				c.incrementOuterContextDepth()
				p.closureCheckingStopState(c, configs, closureBusy, collectPredicates, fullCtx, depth-1, treatEOFAsEpsilon)
			}
			return
		} else if fullCtx {
			configs.Add(config, p.mergeCache)
			return
		}
		// No context info at all (SLL, bottomed out): fall through to
		// closure_, which finds the stop state has no outgoing
		// transitions and simply records the configuration.
	}

	p.closure_(config, configs, closureBusy, collectPredicates, fullCtx, depth, treatEOFAsEpsilon)
}

// closure_ walks every outgoing transition of config's state, recursing
// through getEpsilonTarget's result for each one that stays inside the
// epsilon closure (§4.4.2).
func (p *ParserATNSimulator) closure_(config *ATNConfig, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig, parserClosureComparator], collectPredicates, fullCtx bool, depth int, treatEOFAsEpsilon bool) {
	state := config.GetState()
	if !state.GetEpsilonOnlyTransitions() {
		configs.Add(config, p.mergeCache)
	}

	for i, t := range state.GetTransitions() {
		if i == 0 && p.canDropLoopEntryEdgeInLeftRecursiveRule(config) {
			continue
		}

		continueCollecting := collectPredicates
		if _, ok := t.(*ActionTransition); ok {
			continueCollecting = false
		}

		c := p.getEpsilonTarget(config, t, continueCollecting, depth == 0, fullCtx, treatEOFAsEpsilon)
		if c == nil {
			continue
		}

		newDepth := depth
		if _, ok := t.(*RuleTransition); ok {
			newDepth++
		} else if et, ok := t.(*EpsilonTransition); ok && p.dfa != nil && p.dfa.IsPrecedenceDfa() {
			if et.OutermostPrecedenceReturn() == p.dfa.GetATNStartState().GetRuleIndex() {
				c.setPrecedenceFilterSuppressed(true)
			}
		}

		p.closureCheckingStopState(c, configs, closureBusy, continueCollecting, fullCtx, newDepth, treatEOFAsEpsilon)
	}
}

// canDropLoopEntryEdgeInLeftRecursiveRule recognizes the synthesized loop
// structure a left-recursive rule compiles to (`e: e '*' e | INT`) and
// skips re-deriving the recursive alt's expansion through its own loop
// entry, the main efficiency half of §4.4.8's left-recursion handling.
func (p *ParserATNSimulator) canDropLoopEntryEdgeInLeftRecursiveRule(config *ATNConfig) bool {
	entry, ok := config.GetState().(*StarLoopEntryState)
	if !ok || !entry.GetIsPrecedenceDecision() {
		return false
	}
	ctx := config.GetContext()
	if ctx.isEmpty() || ctx.hasEmptyPath() {
		return false
	}

	numCtxs := ctx.length()
	for i := 0; i < numCtxs; i++ {
		returnState := p.atn.GetState(ctx.getReturnState(i))
		if returnState.GetRuleIndex() != entry.GetRuleIndex() {
			return false
		}
	}

	decisionStart, ok := entry.GetTransitions()[0].getTarget().(BlockStartState)
	if !ok {
		return false
	}
	var blockEndState ATNState = decisionStart.GetEndState()

	for i := 0; i < numCtxs; i++ {
		returnState := p.atn.GetState(ctx.getReturnState(i))
		if len(returnState.GetTransitions()) != 1 || !returnState.GetTransitions()[0].getIsEpsilon() {
			return false
		}
		target := returnState.GetTransitions()[0].getTarget()

		switch {
		case returnState.GetStateType() == ATNStateBlockEnd && target == ATNState(entry):
		case returnState == blockEndState:
		case target == blockEndState:
		case target.GetStateType() == ATNStateBlockEnd &&
			len(target.GetTransitions()) == 1 &&
			target.GetTransitions()[0].getIsEpsilon() &&
			target.GetTransitions()[0].getTarget() == ATNState(entry):
		default:
			return false
		}
	}

	return true
}

// getEpsilonTarget dispatches each transition kind closure_ can legally
// follow without consuming input: rule calls push a new context frame,
// predicate/precedence transitions may be evaluated eagerly or deferred
// into the resulting configuration's semantic context, action transitions
// pass straight through, and ordinary epsilon edges just retarget (§4.4.2).
func (p *ParserATNSimulator) getEpsilonTarget(config *ATNConfig, t Transition, collectPredicates, inContext, fullCtx, treatEOFAsEpsilon bool) *ATNConfig {
	switch tt := t.(type) {
	case *RuleTransition:
		return p.ruleTransition(config, tt)
	case *PrecedencePredicateTransition:
		return p.precedenceTransition(config, tt, collectPredicates, inContext, fullCtx)
	case *PredicateTransition:
		return p.predTransition(config, tt, collectPredicates, inContext, fullCtx)
	case *ActionTransition:
		return NewATNConfigFrom(config, t.getTarget(), config.GetContext(), nil)
	default:
		if t.getIsEpsilon() {
			return NewATNConfigFrom(config, t.getTarget(), config.GetContext(), nil)
		}
		if treatEOFAsEpsilon && t.Matches(TokenEOF, 0, 1) {
			return NewATNConfigFrom(config, t.getTarget(), config.GetContext(), nil)
		}
		return nil
	}
}

func (p *ParserATNSimulator) ruleTransition(config *ATNConfig, t *RuleTransition) *ATNConfig {
	newContext := NewSingletonPredictionContext(config.GetContext(), t.GetFollowState().GetStateNumber())
	return NewATNConfigFrom(config, t.getTarget(), newContext, nil)
}

// precedenceTransition implements the "current precedence >= this alt's
// precedence" test of §4.4.8: in full context it can be decided immediately
// against the parser's actual call stack; in SLL context, without a
// trustworthy call stack, it is folded into the configuration's semantic
// context and decided later (applyPrecedenceFilter, or at the accept
// state).
func (p *ParserATNSimulator) precedenceTransition(config *ATNConfig, pt *PrecedencePredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if collectPredicates && inContext {
		if fullCtx {
			currentPosition := p.input.Index()
			p.input.Seek(p.startIndex)
			predSucceeds := pt.GetPredicate().evaluate(p.parser, p.outerContext)
			p.input.Seek(currentPosition)
			if !predSucceeds {
				return nil
			}
			return NewATNConfigFrom(config, pt.getTarget(), config.GetContext(), SemanticContextNone)
		}
		newSemCtx := NewAnd(config.GetSemanticContext(), pt.GetPredicate())
		return NewATNConfigFrom(config, pt.getTarget(), config.GetContext(), newSemCtx)
	}
	return NewATNConfigFrom(config, pt.getTarget(), config.GetContext(), nil)
}

func (p *ParserATNSimulator) predTransition(config *ATNConfig, pt *PredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if collectPredicates && (!pt.isCtxDependent || inContext) {
		if fullCtx {
			currentPosition := p.input.Index()
			p.input.Seek(p.startIndex)
			predSucceeds := pt.GetPredicate().evaluate(p.parser, p.outerContext)
			p.input.Seek(currentPosition)
			if !predSucceeds {
				return nil
			}
			return NewATNConfigFrom(config, pt.getTarget(), config.GetContext(), SemanticContextNone)
		}
		newSemCtx := NewAnd(config.GetSemanticContext(), pt.GetPredicate())
		return NewATNConfigFrom(config, pt.getTarget(), config.GetContext(), newSemCtx)
	}
	return NewATNConfigFrom(config, pt.getTarget(), config.GetContext(), nil)
}

// getSynValidOrSemInvalidAltThatFinishedDecisionEntryRule is the error
// recovery step of §4.4.6: when the ATN simulation itself hits a dead end,
// look for an alternative that at least reached the end of the decision's
// enclosing rule, preferring one whose predicates actually held.
func (p *ParserATNSimulator) getSynValidOrSemInvalidAltThatFinishedDecisionEntryRule(configs *ATNConfigSet, outerContext RuleContext) int {
	semValid, semInvalid := p.splitAccordingToSemanticValidity(configs, outerContext)

	alt := getAltThatFinishedDecisionEntryRule(semValid)
	if alt != ATNInvalidAltNumber {
		return alt
	}
	if !semInvalid.IsEmpty() {
		alt = getAltThatFinishedDecisionEntryRule(semInvalid)
		if alt != ATNInvalidAltNumber {
			return alt
		}
	}
	return ATNInvalidAltNumber
}

func getAltThatFinishedDecisionEntryRule(configs *ATNConfigSet) int {
	alts := NewBitSet()
	for _, c := range configs.GetItems() {
		if c.outerContextDepth() > 0 {
			alts.Add(c.GetAlt())
			continue
		}
		if _, ok := c.GetState().(*RuleStopState); ok && c.GetContext().hasEmptyPath() {
			alts.Add(c.GetAlt())
		}
	}
	if alts.Len() == 0 {
		return ATNInvalidAltNumber
	}
	return alts.Minimum()
}

func (p *ParserATNSimulator) splitAccordingToSemanticValidity(configs *ATNConfigSet, outerContext RuleContext) (semValid, semInvalid *ATNConfigSet) {
	semValid = NewATNConfigSet(configs.FullContext())
	semInvalid = NewATNConfigSet(configs.FullContext())
	for _, c := range configs.GetItems() {
		if c.GetSemanticContext() != SemanticContextNone {
			if c.GetSemanticContext().evaluate(p.parser, outerContext) {
				semValid.Add(c, p.mergeCache)
			} else {
				semInvalid.Add(c, p.mergeCache)
			}
		} else {
			semValid.Add(c, p.mergeCache)
		}
	}
	return semValid, semInvalid
}

// evalSemanticContext resolves a predicated accept state's alternatives
// (§4.4.7): complete asks for every alt whose predicate holds (needed when
// reporting/resolving an ambiguity), rather than just the first.
func (p *ParserATNSimulator) evalSemanticContext(predPredictions []*PredPrediction, outerContext RuleContext, complete bool) *BitSet {
	predictions := NewBitSet()
	for _, pair := range predPredictions {
		if pair.Pred == SemanticContextNone {
			predictions.Add(pair.Alt)
			if !complete {
				break
			}
			continue
		}
		if pair.Pred.evaluate(p.parser, outerContext) {
			predictions.Add(pair.Alt)
			if !complete {
				break
			}
		}
	}
	return predictions
}

func (p *ParserATNSimulator) noViableAlt(input TokenStream, outerContext RuleContext, configs *ATNConfigSet, startIndex int) *NoViableAltException {
	return NewNoViableAltException(p.parser, input, input.Get(startIndex), input.LT(1), configs, outerContext)
}

func (p *ParserATNSimulator) reportAttemptingFullContext(dfa *DFA, conflictingAlts *BitSet, configs *ATNConfigSet, startIndex, stopIndex int) {
	p.parser.GetErrorListenerDispatch().ReportAttemptingFullContext(p.parser, dfa, startIndex, stopIndex, conflictingAlts, configs)
}

func (p *ParserATNSimulator) reportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int) {
	p.parser.GetErrorListenerDispatch().ReportContextSensitivity(p.parser, dfa, startIndex, stopIndex, prediction, configs)
}

func (p *ParserATNSimulator) reportAmbiguity(dfa *DFA, d *DFAState, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	p.parser.GetErrorListenerDispatch().ReportAmbiguity(p.parser, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
}
