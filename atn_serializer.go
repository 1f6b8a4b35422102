// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNSerializer is the inverse of ATNDeserializer: test-only support for
// round-trip fixtures (§8 property 7), never part of the production API
// (§C.5). It writes the phases in the same order ATNDeserializer reads
// them, each one encoded as the inverse of the matching decode step.
type ATNSerializer struct {
	atn *ATN
}

func NewATNSerializer(atn *ATN) *ATNSerializer { return &ATNSerializer{atn: atn} }

type atnSerializerWriter struct {
	words []uint16
}

func (w *atnSerializerWriter) writeWord(v int) {
	w.words = append(w.words, uint16(v)+2)
}

func (w *atnSerializerWriter) writeInt32(v int) {
	w.writeWord(int(uint32(v) & 0xFFFF))
	w.writeWord(int(uint32(v) >> 16))
}

// Serialize encodes the ATN into the word stream ATNDeserializer.Deserialize
// decodes. Edges whose source is a RuleStopState are skipped: those are
// derived rule-return transitions the deserializer reconstructs itself
// (§4.1), and re-emitting them would duplicate them on the next decode.
func (s *ATNSerializer) Serialize() []uint16 {
	atn := s.atn
	w := &atnSerializerWriter{}
	w.words = append(w.words, uint16(SerializedVersion))

	for i := 0; i < 8; i++ {
		word := int(serializedUUIDBytes[2*i]) | int(serializedUUIDBytes[2*i+1])<<8
		w.writeWord(word)
	}

	w.writeWord(atn.GetGrammarType())
	w.writeWord(atn.GetMaxTokenType())

	w.writeWord(len(atn.states))
	for _, st := range atn.states {
		if st == nil {
			w.writeWord(int(ATNStateInvalidType))
			continue
		}
		w.writeWord(int(st.GetStateType()))
		w.writeWord(st.GetRuleIndex())
		switch concrete := st.(type) {
		case *LoopEndState:
			w.writeWord(concrete.GetLoopBackState().GetStateNumber())
		case BlockStartState:
			w.writeWord(concrete.GetEndState().GetStateNumber())
		}
	}

	var nonGreedy []int
	for _, st := range atn.states {
		if st == nil {
			continue
		}
		if ds, ok := st.(DecisionState); ok && ds.getNonGreedy() {
			nonGreedy = append(nonGreedy, ds.GetStateNumber())
		}
	}
	w.writeWord(len(nonGreedy))
	for _, n := range nonGreedy {
		w.writeWord(n)
	}

	var precedence []int
	for _, rs := range atn.ruleToStartState {
		if rs.GetIsLeftRecursive() {
			precedence = append(precedence, rs.GetStateNumber())
		}
	}
	w.writeWord(len(precedence))
	for _, n := range precedence {
		w.writeWord(n)
	}

	w.writeWord(len(atn.ruleToStartState))
	for i, rs := range atn.ruleToStartState {
		w.writeWord(rs.GetStateNumber())
		if atn.GetGrammarType() == ATNTypeLexer {
			w.writeWord(atn.ruleToTokenType[i])
			w.writeWord(0) // legacy action index slot; unused (§4.1)
		}
	}

	w.writeWord(len(atn.modeToStartState))
	for _, ms := range atn.modeToStartState {
		w.writeWord(ms.GetStateNumber())
	}

	setIndex := map[*IntervalSet]int{}
	var sets []*IntervalSet
	for _, st := range atn.states {
		if st == nil {
			continue
		}
		for _, t := range st.GetTransitions() {
			var set *IntervalSet
			switch t.getSerializationType() {
			case TransitionSET, TransitionNOTSET:
				set = t.getLabel()
			}
			if set == nil {
				continue
			}
			if _, ok := setIndex[set]; ok {
				continue
			}
			setIndex[set] = len(sets)
			sets = append(sets, set)
		}
	}

	w.writeWord(len(sets))
	for _, set := range sets {
		w.writeWord(len(set.GetIntervals()))
		for _, iv := range set.GetIntervals() {
			w.writeWord(iv.Start)
			w.writeWord(iv.Stop)
		}
	}
	w.writeWord(0) // supplementary-plane sets: fixtures stay within the BMP

	type edge struct {
		src, trg, ttype, arg1, arg2, arg3 int
	}
	var edges []edge
	for _, st := range atn.states {
		if st == nil {
			continue
		}
		if _, ok := st.(*RuleStopState); ok {
			continue
		}
		for _, t := range st.GetTransitions() {
			e := edge{src: st.GetStateNumber(), trg: t.getTarget().GetStateNumber(), ttype: int(t.getSerializationType())}
			switch tt := t.(type) {
			case *RangeTransition:
				e.arg1, e.arg2 = tt.From, tt.To
			case *RuleTransition:
				e.arg1, e.arg2, e.arg3 = tt.GetRuleIndex(), tt.GetPrecedence(), tt.GetFollowState().GetStateNumber()
			case *PredicateTransition:
				e.arg1, e.arg2, e.arg3 = tt.ruleIndex, tt.predIndex, boolToInt(tt.isCtxDependent)
			case *AtomTransition:
				e.arg1 = tt.label
			case *ActionTransition:
				e.arg1, e.arg2, e.arg3 = tt.ruleIndex, tt.actionIndex, boolToInt(tt.isCtxDependent)
			case *NotSetTransition:
				e.arg1 = setIndex[tt.intervalSet]
			case *SetTransition:
				e.arg1 = setIndex[tt.intervalSet]
			case *PrecedencePredicateTransition:
				e.arg1 = tt.GetPrecedence()
			}
			edges = append(edges, e)
		}
	}
	w.writeWord(len(edges))
	for _, e := range edges {
		w.writeWord(e.src)
		w.writeWord(e.trg)
		w.writeWord(e.ttype)
		w.writeWord(e.arg1)
		w.writeWord(e.arg2)
		w.writeWord(e.arg3)
	}

	w.writeWord(len(atn.DecisionToState))
	for _, ds := range atn.DecisionToState {
		w.writeWord(ds.GetStateNumber())
	}

	if atn.GetGrammarType() == ATNTypeLexer {
		w.writeWord(len(atn.lexerActions))
		for _, a := range atn.lexerActions {
			data1, data2 := lexerActionData(a)
			w.writeWord(int(a.getActionType()))
			w.writeWord(data1)
			w.writeWord(data2)
		}
	}

	return w.words
}

func lexerActionData(a LexerAction) (int, int) {
	switch act := a.(type) {
	case *LexerChannelAction:
		return act.channel, 0
	case *LexerCustomAction:
		return act.ruleIndex, act.actionIndex
	case *LexerModeAction:
		return act.mode, 0
	case *LexerPushModeAction:
		return act.mode, 0
	case *LexerTypeAction:
		return act.tokenType, 0
	default:
		return 0, 0
	}
}
