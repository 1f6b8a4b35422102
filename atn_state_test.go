package antlr

import "testing"

func TestAddTransitionTracksEpsilonOnly(t *testing.T) {
	s := NewBasicState()
	if s.GetEpsilonOnlyTransitions() {
		t.Fatal("expected a fresh state to report epsilonOnlyTransitions false")
	}

	s.AddTransition(NewEpsilonTransition(NewBasicState(), -1), -1)
	if !s.GetEpsilonOnlyTransitions() {
		t.Error("expected a single epsilon transition to set epsilonOnlyTransitions true")
	}

	s.AddTransition(NewAtomTransition(NewBasicState(), 5), -1)
	if s.GetEpsilonOnlyTransitions() {
		t.Error("expected mixing in a non-epsilon transition to clear epsilonOnlyTransitions")
	}
}

func TestAddTransitionAtIndexInserts(t *testing.T) {
	s := NewBasicState()
	first := NewAtomTransition(NewBasicState(), 1)
	second := NewAtomTransition(NewBasicState(), 2)
	third := NewAtomTransition(NewBasicState(), 3)

	s.AddTransition(first, -1)
	s.AddTransition(third, -1)
	s.AddTransition(second, 1) // insert between first and third

	got := s.GetTransitions()
	if len(got) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(got))
	}
	if got[0] != first || got[1] != second || got[2] != third {
		t.Error("expected AddTransition(t, 1) to insert second between first and third")
	}
}

func TestStateTypeAndStringPerVariant(t *testing.T) {
	cases := []struct {
		state ATNState
		want  StateType
		label string
	}{
		{NewBasicState(), ATNStateBasic, "Basic"},
		{NewRuleStartState(), ATNStateRuleStart, "RuleStart"},
		{NewRuleStopState(), ATNStateRuleStop, "RuleStop"},
		{NewBlockStartState(), ATNStateBlockStart, "BlockStart"},
		{NewPlusBlockStartState(), ATNStatePlusBlockStart, "PlusBlockStart"},
		{NewStarBlockStartState(), ATNStateStarBlockStart, "StarBlockStart"},
		{NewBlockEndState(), ATNStateBlockEnd, "BlockEnd"},
		{NewPlusLoopbackState(), ATNStatePlusLoopBack, "PlusLoopback"},
		{NewStarLoopbackState(), ATNStateStarLoopBack, "StarLoopback"},
		{NewStarLoopEntryState(), ATNStateStarLoopEntry, "StarLoopEntry"},
		{NewLoopEndState(), ATNStateLoopEnd, "LoopEnd"},
		{NewTokensStartState(), ATNStateTokenStart, "TokensStart"},
	}

	for _, c := range cases {
		if c.state.GetStateType() != c.want {
			t.Errorf("%s: GetStateType() = %v, want %v", c.label, c.state.GetStateType(), c.want)
		}
		c.state.SetStateNumber(42)
		want := c.label + " 42"
		if got := c.state.String(); got != want {
			t.Errorf("%s: String() = %q, want %q", c.label, got, want)
		}
	}
}

func TestBaseATNStateDefaultsToInvalidStateNumber(t *testing.T) {
	s := NewBaseATNState()
	if s.GetStateNumber() != ATNStateInvalidStateNumber {
		t.Errorf("expected a fresh BaseATNState to default to ATNStateInvalidStateNumber, got %d", s.GetStateNumber())
	}
}

func TestRuleStartStateStopStateAndLeftRecursion(t *testing.T) {
	start := NewRuleStartState()
	stop := NewRuleStopState()

	start.SetStopState(stop)
	if start.GetStopState() != stop {
		t.Error("expected GetStopState() to return the state just installed")
	}
	if start.GetIsLeftRecursive() {
		t.Fatal("expected isLeftRecursive to default false")
	}
	start.SetIsLeftRecursive(true)
	if !start.GetIsLeftRecursive() {
		t.Error("expected SetIsLeftRecursive(true) to stick")
	}
}

func TestBlockStartEndStateLinkage(t *testing.T) {
	start := NewBlockStartState()
	end := NewBlockEndState()

	start.SetEndState(end)
	end.SetStartState(start)

	if start.GetEndState() != end {
		t.Error("expected block start's end-state link to round-trip")
	}
	if end.GetStartState() != start {
		t.Error("expected block end's start-state link to round-trip")
	}
}

func TestPlusBlockStartLoopBackLinkage(t *testing.T) {
	start := NewPlusBlockStartState()
	loopBack := NewPlusLoopbackState()

	start.SetLoopBackState(loopBack)
	if start.GetLoopBackState() != loopBack {
		t.Error("expected plus-block-start's loop-back link to round-trip")
	}
}

func TestStarLoopEntryLoopBackAndPrecedenceFlag(t *testing.T) {
	entry := NewStarLoopEntryState()
	loopBack := NewStarLoopbackState()

	entry.SetLoopBackState(loopBack)
	if entry.GetLoopBackState() != loopBack {
		t.Error("expected star-loop-entry's loop-back link to round-trip")
	}
	if entry.GetIsPrecedenceDecision() {
		t.Fatal("expected isPrecedenceDecision to default false")
	}
	entry.SetIsPrecedenceDecision(true)
	if !entry.GetIsPrecedenceDecision() {
		t.Error("expected SetIsPrecedenceDecision(true) to stick")
	}
}

func TestLoopEndLoopBackLinkage(t *testing.T) {
	end := NewLoopEndState()
	back := NewStarLoopbackState()

	end.SetLoopBackState(back)
	if end.GetLoopBackState() != ATNState(back) {
		t.Error("expected loop-end's loop-back link to round-trip")
	}
}

func TestDecisionStateDecisionAndNonGreedy(t *testing.T) {
	d := NewBaseDecisionState()
	if d.getDecision() != -1 {
		t.Errorf("expected a fresh decision state to default decision to -1, got %d", d.getDecision())
	}
	d.setDecision(3)
	if d.getDecision() != 3 {
		t.Errorf("getDecision() = %d, want 3", d.getDecision())
	}
	if d.getNonGreedy() {
		t.Fatal("expected nonGreedy to default false")
	}
	d.setNonGreedy(true)
	if !d.getNonGreedy() {
		t.Error("expected setNonGreedy(true) to stick")
	}
}
