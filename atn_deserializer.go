// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// SerializedVersion is the only encoding version this deserializer accepts
// (§4.1). Reproducing every historical revision of the real wire format is
// explicitly out of scope (§1 Non-goals); this runtime defines its own
// single-revision encoding instead of chasing byte-for-byte compatibility.
const SerializedVersion = 4

// serializedUUIDBytes tags the single feature revision this deserializer
// understands: precedence predicates, lexer actions, and supplementary-
// plane interval sets are all present unconditionally, so there is nothing
// to branch on the way the real format branches on a revision history.
var serializedUUIDBytes = [16]byte{
	0x33, 0x76, 0x1B, 0x2D, 0x78, 0xBB, 0x4A, 0x43,
	0x8B, 0x6B, 0xD7, 0x45, 0xC0, 0x55, 0xE9, 0xA9,
}

// SerializedUUID is serializedUUIDBytes formatted for error messages.
const SerializedUUID = "33761B2D-78BB-4A43-8B6B-D745C055E9A9"

// ATNDeserializer decodes the word stream of §4.1 into a live ATN.
type ATNDeserializer struct {
	options *ATNDeserializationOptions
}

func NewATNDeserializer(options *ATNDeserializationOptions) *ATNDeserializer {
	if options == nil {
		options = DefaultATNDeserializationOptions
	}
	return &ATNDeserializer{options: options}
}

// atnDeserializerReader is the decode cursor over a serialized word stream.
// Every word after the version word is recovered via the "subtract 2
// modulo 2^16" shift (§4.1) before anything else sees it.
type atnDeserializerReader struct {
	words []uint16
	pos   int
}

func (r *atnDeserializerReader) readWord() uint16 {
	raw := r.words[r.pos]
	r.pos++
	return raw - 2
}

// readInt decodes an unsigned word: state/rule indices, token types, and
// BMP code points all fit the full 0..65535 range.
func (r *atnDeserializerReader) readInt() int { return int(r.readWord()) }

// readInt32 combines two words into a 32-bit value, for supplementary-
// plane code points the BMP encoding cannot carry (§4.1 "interval sets").
func (r *atnDeserializerReader) readInt32() int {
	lo := r.readWord()
	hi := r.readWord()
	return int(uint32(hi)<<16 | uint32(lo))
}

func (r *atnDeserializerReader) readUUID() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		w := r.readWord()
		b[2*i] = byte(w)
		b[2*i+1] = byte(w >> 8)
	}
	return b
}

func formatUUID(b [16]byte) string {
	return fmt.Sprintf("%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15])
}

type loopEndFixup struct {
	stateIndex          int
	loopBackStateNumber int
}

type blockStartFixup struct {
	stateIndex    int
	endStateNumber int
}

// Deserialize decodes a serialized ATN (§4.1), verifying it (unless
// disabled by options) and marking precedence decisions before returning
// it ready for use.
func (d *ATNDeserializer) Deserialize(data []uint16) (*ATN, error) {
	if len(data) == 0 {
		return nil, &ErrCorruptedATN{Reason: "empty serialized ATN"}
	}

	version := int(data[0])
	if version != SerializedVersion {
		return nil, &ErrUnsupportedVersion{Version: version}
	}

	r := &atnDeserializerReader{words: data[1:]}

	uuid := r.readUUID()
	if uuid != serializedUUIDBytes {
		return nil, &ErrUnsupportedUUID{UUID: formatUUID(uuid)}
	}

	grammarType := r.readInt()
	maxTokenType := r.readInt()
	atn := NewATN(grammarType, maxTokenType)

	var loopEndFixups []loopEndFixup
	var blockStartFixups []blockStartFixup

	// State table: each state is typed and carries a rule index; LoopEnd
	// and the three BlockStart variants additionally carry a back-link
	// index resolved once every state exists (§4.1).
	nstates := r.readInt()
	for i := 0; i < nstates; i++ {
		stype := r.readInt()
		if StateType(stype) == ATNStateInvalidType {
			atn.addState(nil)
			continue
		}
		ruleIndex := r.readInt()
		s := newATNStateOfType(StateType(stype))
		s.SetRuleIndex(ruleIndex)

		switch StateType(stype) {
		case ATNStateLoopEnd:
			loopEndFixups = append(loopEndFixups, loopEndFixup{i, r.readInt()})
		case ATNStateBlockStart, ATNStatePlusBlockStart, ATNStateStarBlockStart:
			blockStartFixups = append(blockStartFixups, blockStartFixup{i, r.readInt()})
		}

		atn.addState(s)
	}

	// Non-greedy flags.
	nNonGreedy := r.readInt()
	for i := 0; i < nNonGreedy; i++ {
		stateNumber := r.readInt()
		atn.states[stateNumber].(DecisionState).setNonGreedy(true)
	}

	// Precedence-decision flags: which rule start states are left-recursive.
	nPrecedence := r.readInt()
	for i := 0; i < nPrecedence; i++ {
		stateNumber := r.readInt()
		atn.states[stateNumber].(*RuleStartState).SetIsLeftRecursive(true)
	}

	// Per-rule start states, plus lexer token types and a legacy action
	// index slot that no longer carries meaning in this runtime.
	nrules := r.readInt()
	atn.ruleToStartState = make([]*RuleStartState, nrules)
	if grammarType == ATNTypeLexer {
		atn.ruleToTokenType = make([]int, nrules)
	}
	for i := 0; i < nrules; i++ {
		s := r.readInt()
		atn.ruleToStartState[i] = atn.states[s].(*RuleStartState)
		if grammarType == ATNTypeLexer {
			atn.ruleToTokenType[i] = r.readInt()
			_ = r.readInt() // legacy action index; unused (§4.1)
		}
	}

	// Per-rule stop states are derived, not serialized.
	atn.ruleToStopState = make([]*RuleStopState, nrules)
	for _, s := range atn.states {
		stop, ok := s.(*RuleStopState)
		if !ok {
			continue
		}
		atn.ruleToStopState[stop.GetRuleIndex()] = stop
		atn.ruleToStartState[stop.GetRuleIndex()].SetStopState(stop)
	}

	// Mode start states.
	nmodes := r.readInt()
	for i := 0; i < nmodes; i++ {
		s := r.readInt()
		atn.modeToStartState = append(atn.modeToStartState, atn.states[s].(*TokensStartState))
	}

	// Interval sets: BMP encoding first, then supplementary-plane.
	bmpSets := readIntervalSets(r, r.readInt)
	supplementarySets := readIntervalSets(r, r.readInt32)
	sets := append(bmpSets, supplementarySets...)

	// Edges: each names source, target, type, and three integer arguments
	// interpreted per type (§3 Transition, §4.1).
	nedges := r.readInt()
	for i := 0; i < nedges; i++ {
		src := r.readInt()
		trg := r.readInt()
		ttype := r.readInt()
		arg1 := r.readInt()
		arg2 := r.readInt()
		arg3 := r.readInt()
		if atn.states[src] == nil {
			return nil, &ErrCorruptedATN{Reason: fmt.Sprintf("edge %d references removed state %d", i, src)}
		}
		trans := edgeFactory(atn, ttype, trg, arg1, arg2, arg3, sets)
		atn.states[src].AddTransition(trans, -1)
	}

	// Edges for rule returns are derived rather than serialized: every
	// RuleTransition gets a matching epsilon edge back from its callee's
	// stop state to its own follow state, carrying the callee's rule index
	// as the outermost-precedence-return marker when the call is a
	// precedence-zero reference into a left-recursive rule (§4.4.8).
	for _, s := range atn.states {
		if s == nil {
			continue
		}
		for _, t := range s.GetTransitions() {
			rt, ok := t.(*RuleTransition)
			if !ok {
				continue
			}
			outermostPrecedenceReturn := -1
			if atn.ruleToStartState[rt.GetRuleIndex()].GetIsLeftRecursive() && rt.GetPrecedence() == 0 {
				outermostPrecedenceReturn = rt.GetRuleIndex()
			}
			returnTransition := NewEpsilonTransition(rt.GetFollowState(), outermostPrecedenceReturn)
			atn.ruleToStopState[rt.GetRuleIndex()].AddTransition(returnTransition, -1)
		}
	}

	// Structural link-up: BlockStart.endState <-> BlockEnd.startState,
	// PlusBlockStart/StarLoopEntry loop-back links (§4.1).
	for _, fix := range blockStartFixups {
		blockStart := atn.states[fix.stateIndex].(BlockStartState)
		endState := atn.states[fix.endStateNumber].(*BlockEndState)
		blockStart.SetEndState(endState)
		endState.SetStartState(blockStart)
	}
	for _, fix := range loopEndFixups {
		loopEnd := atn.states[fix.stateIndex].(*LoopEndState)
		loopEnd.SetLoopBackState(atn.states[fix.loopBackStateNumber])
	}
	for _, s := range atn.states {
		switch state := s.(type) {
		case *PlusLoopbackState:
			for _, t := range state.GetTransitions() {
				if target, ok := t.getTarget().(*PlusBlockStartState); ok {
					target.SetLoopBackState(state)
				}
			}
		case *StarLoopbackState:
			for _, t := range state.GetTransitions() {
				if target, ok := t.getTarget().(*StarLoopEntryState); ok {
					target.SetLoopBackState(state)
				}
			}
		}
	}

	// Decision table.
	ndecisions := r.readInt()
	for i := 0; i < ndecisions; i++ {
		s := r.readInt()
		atn.defineDecisionState(atn.states[s].(DecisionState))
	}

	// Lexer action table (lexer ATNs only).
	if grammarType == ATNTypeLexer {
		nactions := r.readInt()
		atn.lexerActions = make([]LexerAction, nactions)
		for i := range atn.lexerActions {
			actionType := r.readInt()
			data1 := r.readInt()
			data2 := r.readInt()
			atn.lexerActions[i] = lexerActionFactory(LexerActionType(actionType), data1, data2)
		}
	}

	markPrecedenceDecisions(atn)

	if d.options.VerifyATN() {
		if err := verifyATN(atn); err != nil {
			return nil, err
		}
	}

	return atn, nil
}

func readIntervalSets(r *atnDeserializerReader, readElement func() int) []*IntervalSet {
	n := r.readInt()
	sets := make([]*IntervalSet, n)
	for i := 0; i < n; i++ {
		nintervals := r.readInt()
		intervals := make([]*Interval, nintervals)
		for j := 0; j < nintervals; j++ {
			a := readElement()
			b := readElement()
			intervals[j] = NewInterval(a, b)
		}
		// The writer emits intervals in declaration order, which need not
		// be ascending; sort before handing the slice straight to the set
		// so Contains' binary search sees a properly ordered backing array.
		sortIntervals(intervals)
		sets[i] = NewIntervalSetFromIntervals(intervals)
	}
	return sets
}

func newATNStateOfType(t StateType) ATNState {
	switch t {
	case ATNStateBasic:
		return NewBasicState()
	case ATNStateRuleStart:
		return NewRuleStartState()
	case ATNStateBlockStart:
		return NewBlockStartState()
	case ATNStatePlusBlockStart:
		return NewPlusBlockStartState()
	case ATNStateStarBlockStart:
		return NewStarBlockStartState()
	case ATNStateTokenStart:
		return NewTokensStartState()
	case ATNStateRuleStop:
		return NewRuleStopState()
	case ATNStateBlockEnd:
		return NewBlockEndState()
	case ATNStateStarLoopBack:
		return NewStarLoopbackState()
	case ATNStateStarLoopEntry:
		return NewStarLoopEntryState()
	case ATNStatePlusLoopBack:
		return NewPlusLoopbackState()
	case ATNStateLoopEnd:
		return NewLoopEndState()
	default:
		panic(&ErrCorruptedATN{Reason: fmt.Sprintf("invalid state type %d", t)})
	}
}

func edgeFactory(atn *ATN, ttype, trg, arg1, arg2, arg3 int, sets []*IntervalSet) Transition {
	target := atn.states[trg]
	switch TransitionType(ttype) {
	case TransitionEPSILON:
		return NewEpsilonTransition(target, -1)
	case TransitionRANGE:
		return NewRangeTransition(target, arg1, arg2)
	case TransitionRULE:
		return NewRuleTransition(target, arg1, arg2, atn.states[arg3])
	case TransitionPREDICATE:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0)
	case TransitionATOM:
		return NewAtomTransition(target, arg1)
	case TransitionACTION:
		return NewActionTransition(target, arg1, arg2, arg3 != 0)
	case TransitionSET:
		return NewSetTransition(target, sets[arg1])
	case TransitionNOTSET:
		return NewNotSetTransition(target, sets[arg1])
	case TransitionWILDCARD:
		return NewWildcardTransition(target)
	case TransitionPRECEDENCE:
		return NewPrecedencePredicateTransition(target, arg1)
	default:
		panic(&ErrCorruptedATN{Reason: fmt.Sprintf("invalid transition type %d", ttype)})
	}
}

func lexerActionFactory(t LexerActionType, data1, data2 int) LexerAction {
	switch t {
	case LexerActionTypeChannel:
		return NewLexerChannelAction(data1)
	case LexerActionTypeCustom:
		return NewLexerCustomAction(data1, data2)
	case LexerActionTypeMode:
		return NewLexerModeAction(data1)
	case LexerActionTypeMore:
		return LexerMoreActionInstance
	case LexerActionTypePopMode:
		return LexerPopModeActionInstance
	case LexerActionTypePushMode:
		return NewLexerPushModeAction(data1)
	case LexerActionTypeSkip:
		return LexerSkipActionInstance
	case LexerActionTypeType:
		return NewLexerTypeAction(data1)
	default:
		panic(&ErrCorruptedATN{Reason: fmt.Sprintf("invalid lexer action type %d", t)})
	}
}

// markPrecedenceDecisions flags every StarLoopEntry synthesized for
// left-recursion elimination, so the prediction engine's precedence
// filter (§4.4.8) and loop-entry-edge dropping (§4.4.2) know to treat it
// specially: owning rule is left-recursive, and the entry's last
// transition leads straight to a LoopEnd whose own sole transition is to
// that rule's stop state (§4.1).
func markPrecedenceDecisions(atn *ATN) {
	for _, s := range atn.states {
		entry, ok := s.(*StarLoopEntryState)
		if !ok {
			continue
		}
		if !atn.ruleToStartState[entry.GetRuleIndex()].GetIsLeftRecursive() {
			continue
		}
		trans := entry.GetTransitions()
		last := trans[len(trans)-1].getTarget()
		loopEnd, ok := last.(*LoopEndState)
		if !ok {
			continue
		}
		if !loopEnd.GetEpsilonOnlyTransitions() || len(loopEnd.GetTransitions()) != 1 {
			continue
		}
		if _, ok := loopEnd.GetTransitions()[0].getTarget().(*RuleStopState); ok {
			entry.SetIsPrecedenceDecision(true)
		}
	}
}

// verifyATN asserts the structural invariants of §4.1; any violation is
// reported as ErrCorruptedATN.
func verifyATN(atn *ATN) error {
	for _, s := range atn.states {
		if s == nil {
			continue
		}
		if err := verifyEpsilonOnlyFlag(s); err != nil {
			return err
		}
		switch state := s.(type) {
		case *StarLoopEntryState:
			if state.GetLoopBackState() == nil {
				return &ErrCorruptedATN{Reason: "StarLoopEntryState missing loop-back link"}
			}
			if len(state.GetTransitions()) != 2 {
				return &ErrCorruptedATN{Reason: "StarLoopEntryState must have exactly two transitions"}
			}
			blockTarget := state.GetTransitions()[0].getTarget()
			endTarget := state.GetTransitions()[1].getTarget()
			_, toBlock := blockTarget.(BlockStartState)
			_, toEnd := endTarget.(*LoopEndState)
			if state.getNonGreedy() {
				toBlock, toEnd = toEnd, toBlock
			}
			if !toBlock || !toEnd {
				return &ErrCorruptedATN{Reason: "StarLoopEntryState transitions must target a block start and a loop end, in greedy order"}
			}
		case *PlusBlockStartState:
			if state.GetLoopBackState() == nil {
				return &ErrCorruptedATN{Reason: "PlusBlockStartState missing loop-back link"}
			}
			if state.GetEndState() == nil {
				return &ErrCorruptedATN{Reason: "PlusBlockStartState missing end-state link"}
			}
			if state.GetEndState().GetStartState() != BlockStartState(state) {
				return &ErrCorruptedATN{Reason: "BlockStart/BlockEnd back-links disagree"}
			}
		case *LoopEndState:
			if state.GetLoopBackState() == nil {
				return &ErrCorruptedATN{Reason: "LoopEndState missing loop-back link"}
			}
		case *RuleStartState:
			if state.GetStopState() == nil {
				return &ErrCorruptedATN{Reason: "RuleStartState missing stop state"}
			}
		case BlockStartState:
			if state.GetEndState() == nil {
				return &ErrCorruptedATN{Reason: "BlockStartState missing end-state link"}
			}
			if state.GetEndState().GetStartState() != state {
				return &ErrCorruptedATN{Reason: "BlockStart/BlockEnd back-links disagree"}
			}
		}
		if decision, ok := s.(DecisionState); ok {
			if len(s.GetTransitions()) > 1 && decision.getDecision() < 0 {
				return &ErrCorruptedATN{Reason: "decision state with multiple transitions has no decision number"}
			}
		}
	}
	return nil
}

func verifyEpsilonOnlyFlag(s ATNState) error {
	allEpsilon := true
	for _, t := range s.GetTransitions() {
		if !t.getIsEpsilon() {
			allEpsilon = false
			break
		}
	}
	if len(s.GetTransitions()) > 0 && s.GetEpsilonOnlyTransitions() != allEpsilon {
		return &ErrCorruptedATN{Reason: fmt.Sprintf("state %d epsilon-only flag inconsistent with its transitions", s.GetStateNumber())}
	}
	return nil
}
