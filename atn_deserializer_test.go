package antlr

import "testing"

// buildSampleParserATN hand-builds a two-rule parser ATN the way a grammar
// compiler would, before any serialization round trip: rule 0 calls rule 1,
// and rule 1 is a `(X)*` loop over a single atom. RuleStopStates start with
// no outgoing transitions; those are synthesized by Deserialize itself.
func buildSampleParserATN() *ATN {
	atn := NewATN(ATNTypeParser, 5)

	rule0Start := NewRuleStartState()
	rule0Start.SetRuleIndex(0)
	atn.addState(rule0Start) // 0

	afterCall := NewBasicState()
	afterCall.SetRuleIndex(0)
	atn.addState(afterCall) // 1

	rule0Stop := NewRuleStopState()
	rule0Stop.SetRuleIndex(0)
	atn.addState(rule0Stop) // 2

	rule1Start := NewRuleStartState()
	rule1Start.SetRuleIndex(1)
	atn.addState(rule1Start) // 3

	loopEntry := NewStarLoopEntryState()
	loopEntry.SetRuleIndex(1)
	atn.addState(loopEntry) // 4

	blockStart := NewStarBlockStartState()
	blockStart.SetRuleIndex(1)
	atn.addState(blockStart) // 5

	body := NewBasicState()
	body.SetRuleIndex(1)
	atn.addState(body) // 6

	blockEnd := NewBlockEndState()
	blockEnd.SetRuleIndex(1)
	atn.addState(blockEnd) // 7

	loopBack := NewStarLoopbackState()
	loopBack.SetRuleIndex(1)
	atn.addState(loopBack) // 8

	loopEnd := NewLoopEndState()
	loopEnd.SetRuleIndex(1)
	atn.addState(loopEnd) // 9

	rule1Stop := NewRuleStopState()
	rule1Stop.SetRuleIndex(1)
	atn.addState(rule1Stop) // 10

	rule0Start.AddTransition(NewRuleTransition(rule1Start, 1, 0, afterCall), -1)
	afterCall.AddTransition(NewEpsilonTransition(rule0Stop, -1), -1)
	rule1Start.AddTransition(NewEpsilonTransition(loopEntry, -1), -1)
	loopEntry.AddTransition(NewEpsilonTransition(blockStart, -1), -1)
	loopEntry.AddTransition(NewEpsilonTransition(loopEnd, -1), -1)
	blockStart.AddTransition(NewAtomTransition(body, 5), -1)
	body.AddTransition(NewEpsilonTransition(blockEnd, -1), -1)
	blockEnd.AddTransition(NewEpsilonTransition(loopBack, -1), -1)
	loopBack.AddTransition(NewEpsilonTransition(loopEntry, -1), -1)
	loopEnd.AddTransition(NewEpsilonTransition(rule1Stop, -1), -1)

	blockStart.SetEndState(blockEnd)
	blockEnd.SetStartState(blockStart)
	loopEntry.SetLoopBackState(loopBack)
	loopEnd.SetLoopBackState(loopBack)

	atn.ruleToStartState = []*RuleStartState{rule0Start, rule1Start}
	atn.ruleToStopState = []*RuleStopState{rule0Stop, rule1Stop}
	rule0Start.SetStopState(rule0Stop)
	rule1Start.SetStopState(rule1Stop)

	atn.defineDecisionState(loopEntry)
	atn.defineDecisionState(blockStart)

	return atn
}

func TestATNRoundTripParser(t *testing.T) {
	original := buildSampleParserATN()
	words := NewATNSerializer(original).Serialize()

	result, err := NewATNDeserializer(nil).Deserialize(words)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}

	if result.GetGrammarType() != ATNTypeParser {
		t.Errorf("GetGrammarType() = %d, want %d", result.GetGrammarType(), ATNTypeParser)
	}
	if result.GetMaxTokenType() != 5 {
		t.Errorf("GetMaxTokenType() = %d, want 5", result.GetMaxTokenType())
	}
	if len(result.ruleToStartState) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(result.ruleToStartState))
	}

	call := result.GetRuleToStartState(0).GetTransitions()[0]
	rt, ok := call.(*RuleTransition)
	if !ok {
		t.Fatalf("expected rule 0's start state transition to be a RuleTransition, got %T", call)
	}
	if rt.GetRuleIndex() != 1 || rt.GetFollowState().GetStateNumber() != 1 {
		t.Errorf("rule transition decoded wrong: ruleIndex=%d followState=%d", rt.GetRuleIndex(), rt.GetFollowState().GetStateNumber())
	}

	stop1 := result.GetRuleToStopState(1)
	if len(stop1.GetTransitions()) != 1 {
		t.Fatalf("expected rule 1's stop state to gain exactly one derived return transition, got %d", len(stop1.GetTransitions()))
	}
	ret, ok := stop1.GetTransitions()[0].(*EpsilonTransition)
	if !ok {
		t.Fatalf("expected derived return transition to be an EpsilonTransition, got %T", stop1.GetTransitions()[0])
	}
	if ret.getTarget().GetStateNumber() != 1 {
		t.Errorf("derived return transition targets state %d, want 1 (the call's follow state)", ret.getTarget().GetStateNumber())
	}

	entry, ok := result.GetState(4).(*StarLoopEntryState)
	if !ok {
		t.Fatalf("state 4 decoded as %T, want *StarLoopEntryState", result.GetState(4))
	}
	if entry.GetLoopBackState() == nil || entry.GetLoopBackState().GetStateNumber() != 8 {
		t.Errorf("expected loop entry's loop-back link to resolve to state 8")
	}

	loopEnd, ok := result.GetState(9).(*LoopEndState)
	if !ok {
		t.Fatalf("state 9 decoded as %T, want *LoopEndState", result.GetState(9))
	}
	if loopEnd.GetLoopBackState() == nil || loopEnd.GetLoopBackState().GetStateNumber() != 8 {
		t.Errorf("expected loop end's loop-back link to resolve to state 8")
	}

	blockStart, ok := result.GetState(5).(BlockStartState)
	if !ok {
		t.Fatalf("state 5 decoded as %T, want a BlockStartState", result.GetState(5))
	}
	if blockStart.GetEndState() == nil || blockStart.GetEndState().GetStateNumber() != 7 {
		t.Fatalf("expected block start's end link to resolve to state 7")
	}
	if blockStart.GetEndState().GetStartState() != blockStart {
		t.Errorf("expected block end's start link to resolve back to the same block start")
	}

	if result.GetNumberOfDecisions() != 2 {
		t.Fatalf("expected 2 decisions, got %d", result.GetNumberOfDecisions())
	}
	if result.DecisionToState[0].GetStateNumber() != 4 || result.DecisionToState[1].GetStateNumber() != 5 {
		t.Errorf("decision table decoded out of order: %v", result.DecisionToState)
	}
}

// buildSampleLexerATN exercises the lexer-only phases: ruleToTokenType,
// mode start states, non-greedy flags, a Set transition, and the lexer
// action table.
func buildSampleLexerATN() *ATN {
	atn := NewATN(ATNTypeLexer, 2)

	ruleStart := NewRuleStartState()
	ruleStart.SetRuleIndex(0)
	atn.addState(ruleStart) // 0

	decision := NewPlusLoopbackState()
	decision.SetRuleIndex(0)
	decision.setNonGreedy(true)
	atn.addState(decision) // 1

	ruleStop := NewRuleStopState()
	ruleStop.SetRuleIndex(0)
	atn.addState(ruleStop) // 2

	modeStart := NewTokensStartState()
	atn.addState(modeStart) // 3

	set := NewIntervalSet()
	set.AddRange('a', 'z')
	decision.AddTransition(NewSetTransition(ruleStop, set), -1)
	modeStart.AddTransition(NewEpsilonTransition(ruleStart, -1), -1)
	ruleStart.AddTransition(NewEpsilonTransition(decision, -1), -1)

	atn.ruleToStartState = []*RuleStartState{ruleStart}
	atn.ruleToStopState = []*RuleStopState{ruleStop}
	atn.ruleToTokenType = []int{7}
	ruleStart.SetStopState(ruleStop)

	atn.modeToStartState = []*TokensStartState{modeStart}
	atn.defineDecisionState(decision)
	atn.lexerActions = []LexerAction{NewLexerTypeAction(7), NewLexerChannelAction(3)}

	return atn
}

func TestATNRoundTripLexer(t *testing.T) {
	original := buildSampleLexerATN()
	words := NewATNSerializer(original).Serialize()

	result, err := NewATNDeserializer(nil).Deserialize(words)
	if err != nil {
		t.Fatalf("Deserialize returned error: %v", err)
	}

	if result.GetGrammarType() != ATNTypeLexer {
		t.Errorf("GetGrammarType() = %d, want lexer", result.GetGrammarType())
	}
	if len(result.ruleToTokenType) != 1 || result.ruleToTokenType[0] != 7 {
		t.Errorf("ruleToTokenType decoded wrong: %v", result.ruleToTokenType)
	}
	if len(result.GetModeToStartState()) != 1 || result.GetModeToStartState()[0].GetStateNumber() != 3 {
		t.Errorf("mode start states decoded wrong: %v", result.GetModeToStartState())
	}

	decision, ok := result.GetState(1).(DecisionState)
	if !ok || !decision.getNonGreedy() {
		t.Errorf("expected state 1 to decode as a non-greedy decision state")
	}

	setTrans, ok := result.GetState(1).GetTransitions()[0].(*SetTransition)
	if !ok {
		t.Fatalf("expected state 1's transition to be a SetTransition, got %T", result.GetState(1).GetTransitions()[0])
	}
	if !setTrans.Matches('m', 0, 255) || setTrans.Matches('A', 0, 255) {
		t.Errorf("decoded interval set does not match the original ['a'..'z'] range")
	}

	actions := result.GetLexerActions()
	if len(actions) != 2 {
		t.Fatalf("expected 2 lexer actions, got %d", len(actions))
	}
	typeAction, ok := actions[0].(*LexerTypeAction)
	if !ok || !typeAction.Equals(NewLexerTypeAction(7)) {
		t.Errorf("lexer action 0 decoded wrong: %#v", actions[0])
	}
	channelAction, ok := actions[1].(*LexerChannelAction)
	if !ok || !channelAction.Equals(NewLexerChannelAction(3)) {
		t.Errorf("lexer action 1 decoded wrong: %#v", actions[1])
	}
}

func TestATNDeserializeRejectsUnsupportedVersion(t *testing.T) {
	words := NewATNSerializer(buildSampleParserATN()).Serialize()
	words[0] = SerializedVersion + 1

	_, err := NewATNDeserializer(nil).Deserialize(words)
	if err == nil {
		t.Fatal("expected an error for an unsupported version")
	}
	if _, ok := err.(*ErrUnsupportedVersion); !ok {
		t.Errorf("expected *ErrUnsupportedVersion, got %T: %v", err, err)
	}
}

func TestATNDeserializeRejectsUnsupportedUUID(t *testing.T) {
	words := NewATNSerializer(buildSampleParserATN()).Serialize()
	words[1] = words[1] + 1 // perturb the first UUID word

	_, err := NewATNDeserializer(nil).Deserialize(words)
	if err == nil {
		t.Fatal("expected an error for a corrupted UUID")
	}
	if _, ok := err.(*ErrUnsupportedUUID); !ok {
		t.Errorf("expected *ErrUnsupportedUUID, got %T: %v", err, err)
	}
}

func TestATNDeserializeRejectsEmptyData(t *testing.T) {
	_, err := NewATNDeserializer(nil).Deserialize(nil)
	if err == nil {
		t.Fatal("expected an error for empty serialized data")
	}
	if _, ok := err.(*ErrCorruptedATN); !ok {
		t.Errorf("expected *ErrCorruptedATN, got %T: %v", err, err)
	}
}

func TestATNDeserializerUsesDefaultOptionsWhenNil(t *testing.T) {
	d := NewATNDeserializer(nil)
	if d.options != DefaultATNDeserializationOptions {
		t.Error("expected a nil options argument to fall back to DefaultATNDeserializationOptions")
	}
}

func TestVerifyATNRejectsRuleStartStateMissingStopState(t *testing.T) {
	atn := buildSampleParserATN()
	// Sever the link Deserialize would otherwise have set up, simulating
	// corrupted or truncated rule-table data.
	atn.ruleToStartState[1].SetStopState(nil)

	err := verifyATN(atn)
	if err == nil {
		t.Fatal("expected an error for a RuleStartState with no stop state")
	}
	if _, ok := err.(*ErrCorruptedATN); !ok {
		t.Errorf("expected *ErrCorruptedATN, got %T: %v", err, err)
	}
}
