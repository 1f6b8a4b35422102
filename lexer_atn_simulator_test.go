package antlr

import "testing"

// buildLiteralLexerATN builds a one-mode, one-rule lexer ATN that matches
// the two-character literal "ab" and returns tokenType on acceptance.
func buildLiteralLexerATN(tokenType int) *ATN {
	atn := NewATN(ATNTypeLexer, 127)

	tokensStart := NewTokensStartState()
	atn.addState(tokensStart)

	ruleStart := NewRuleStartState()
	ruleStart.SetRuleIndex(0)
	atn.addState(ruleStart)

	aState := NewBasicState()
	atn.addState(aState)

	bState := NewBasicState()
	atn.addState(bState)

	ruleStop := NewRuleStopState()
	ruleStop.SetRuleIndex(0)
	atn.addState(ruleStop)

	tokensStart.AddTransition(NewEpsilonTransition(ruleStart, -1), -1)
	ruleStart.AddTransition(NewEpsilonTransition(aState, -1), -1)
	aState.AddTransition(NewAtomTransition(bState, int('a')), -1)
	bState.AddTransition(NewAtomTransition(ruleStop, int('b')), -1)

	atn.modeToStartState = []*TokensStartState{tokensStart}
	atn.ruleToStartState = []*RuleStartState{ruleStart}
	atn.ruleToStopState = []*RuleStopState{ruleStop}
	atn.ruleToTokenType = []int{tokenType}

	return atn
}

func newLexerSimWithDFA(atn *ATN) (*LexerATNSimulator, []*DFA) {
	decisionToDFA := []*DFA{NewDFA(atn.modeToStartState[0], 0)}
	sim := NewLexerATNSimulator(nil, atn, decisionToDFA, NewPredictionContextCache())
	return sim, decisionToDFA
}

func TestLexerATNSimulatorMatchesLiteral(t *testing.T) {
	atn := buildLiteralLexerATN(5)
	sim, _ := newLexerSimWithDFA(atn)

	input := NewInputStream("ab")
	tokenType := sim.Match(input, 0)

	if tokenType != 5 {
		t.Errorf("Match() = %d, want 5", tokenType)
	}
	if input.Index() != 2 {
		t.Errorf("expected the stream to be positioned past the matched literal, index = %d", input.Index())
	}
}

func TestLexerATNSimulatorNoViableAltPanics(t *testing.T) {
	atn := buildLiteralLexerATN(5)
	sim, _ := newLexerSimWithDFA(atn)

	input := NewInputStream("xy")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Match to panic with no viable alternative")
		}
		if _, ok := r.(*LexerNoViableAltException); !ok {
			t.Errorf("expected a *LexerNoViableAltException, got %T", r)
		}
	}()
	sim.Match(input, 0)
}

func TestLexerATNSimulatorCachesDFAAcrossMatches(t *testing.T) {
	atn := buildLiteralLexerATN(5)
	sim, decisionToDFA := newLexerSimWithDFA(atn)

	if decisionToDFA[0].GetS0() != nil {
		t.Fatal("expected a freshly constructed DFA to start with no s0")
	}

	input := NewInputStream("ab")
	sim.Match(input, 0)

	if decisionToDFA[0].GetS0() == nil {
		t.Fatal("expected matchATN to install an s0 state for the mode's DFA")
	}

	// A second match over fresh input should now ride the cached DFA edges
	// (getExistingTargetState) instead of recomputing through the ATN.
	input2 := NewInputStream("ab")
	tokenType := sim.Match(input2, 0)
	if tokenType != 5 {
		t.Errorf("expected the cached DFA path to still recognize the literal, got %d", tokenType)
	}
}

func TestLexerATNSimulatorEOFAtStartReturnsEOF(t *testing.T) {
	atn := buildLiteralLexerATN(5)
	sim, _ := newLexerSimWithDFA(atn)

	input := NewInputStream("")
	tokenType := sim.Match(input, 0)
	if tokenType != TokenEOF {
		t.Errorf("Match() on empty input = %d, want TokenEOF", tokenType)
	}
}

func TestLexerATNSimulatorConsumeTracksLineAndColumn(t *testing.T) {
	atn := buildLiteralLexerATN(5)
	sim, _ := newLexerSimWithDFA(atn)

	input := NewInputStream("ab")
	sim.consume(input)
	if sim.GetLine() != 1 || sim.GetCharPositionInLine() != 1 {
		t.Errorf("after consuming 'a', line/column = %d/%d, want 1/1", sim.GetLine(), sim.GetCharPositionInLine())
	}

	nlATN := buildLiteralLexerATN(5)
	nlSim, _ := newLexerSimWithDFA(nlATN)
	nlInput := NewInputStream("\nb")
	nlSim.consume(nlInput)
	if nlSim.GetLine() != 2 || nlSim.GetCharPositionInLine() != 0 {
		t.Errorf("after consuming a newline, line/column = %d/%d, want 2/0", nlSim.GetLine(), nlSim.GetCharPositionInLine())
	}
}
