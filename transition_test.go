package antlr

import "testing"

func TestRangeTransitionMatches(t *testing.T) {
	target := NewBasicState()
	tr := NewRangeTransition(target, 10, 20)

	if !tr.Matches(10, 0, 100) || !tr.Matches(20, 0, 100) || !tr.Matches(15, 0, 100) {
		t.Error("expected range transition to match every value in [10,20]")
	}
	if tr.Matches(9, 0, 100) || tr.Matches(21, 0, 100) {
		t.Error("expected range transition to reject values outside [10,20]")
	}
	if tr.getLabel().Length() != 11 {
		t.Errorf("expected the derived label set to cover 11 values, got %d", tr.getLabel().Length())
	}
}

func TestAtomTransitionMatches(t *testing.T) {
	tr := NewAtomTransition(NewBasicState(), 5)
	if !tr.Matches(5, 0, 100) {
		t.Error("expected atom transition to match its own label")
	}
	if tr.Matches(6, 0, 100) {
		t.Error("expected atom transition to reject a different symbol")
	}
}

func TestSetTransitionMatches(t *testing.T) {
	set := NewIntervalSet()
	set.AddRange(1, 3)
	set.AddOne(10)
	tr := NewSetTransition(NewBasicState(), set)

	for _, v := range []int{1, 2, 3, 10} {
		if !tr.Matches(v, 0, 100) {
			t.Errorf("expected set transition to match %d", v)
		}
	}
	if tr.Matches(4, 0, 100) {
		t.Error("expected set transition to reject 4")
	}
}

func TestSetTransitionNilSetDefaultsToInvalidType(t *testing.T) {
	tr := NewSetTransition(NewBasicState(), nil)
	if tr.Matches(TokenInvalidType, 0, 100) == false {
		t.Error("expected a nil set to default to a singleton set over TokenInvalidType")
	}
}

func TestNotSetTransitionMatches(t *testing.T) {
	set := NewIntervalSet()
	set.AddRange(1, 3)
	tr := NewNotSetTransition(NewBasicState(), set)

	if tr.Matches(2, 0, 100) {
		t.Error("expected NotSet transition to reject a value inside the excluded set")
	}
	if !tr.Matches(50, 0, 100) {
		t.Error("expected NotSet transition to match a value outside the excluded set but within vocabulary")
	}
	if tr.Matches(200, 0, 100) {
		t.Error("expected NotSet transition to reject a value outside the vocabulary bounds")
	}
}

func TestWildcardTransitionMatches(t *testing.T) {
	tr := NewWildcardTransition(NewBasicState())
	if !tr.Matches(50, 0, 100) {
		t.Error("expected wildcard transition to match any in-vocabulary symbol")
	}
	if tr.Matches(200, 0, 100) {
		t.Error("expected wildcard transition to reject out-of-vocabulary symbols")
	}
}

func TestEpsilonTransitionIsEpsilon(t *testing.T) {
	tr := NewEpsilonTransition(NewBasicState(), -1)
	if !tr.getIsEpsilon() {
		t.Error("expected an epsilon transition to report getIsEpsilon() true")
	}
	if tr.Matches(1, 0, 100) {
		t.Error("expected an epsilon transition to never match a symbol")
	}
}

func TestRuleTransitionFields(t *testing.T) {
	ruleStart := NewRuleStartState()
	follow := NewBasicState()
	tr := NewRuleTransition(ruleStart, 3, 7, follow)

	if tr.GetRuleIndex() != 3 || tr.GetPrecedence() != 7 || tr.GetFollowState() != follow {
		t.Error("expected rule transition's accessors to reflect constructor arguments")
	}
	if !tr.getIsEpsilon() {
		t.Error("expected a rule transition to be epsilon (consumes no input itself)")
	}
}

func TestPrecedencePredicateTransition(t *testing.T) {
	tr := NewPrecedencePredicateTransition(NewBasicState(), 4)
	if tr.GetPrecedence() != 4 {
		t.Errorf("GetPrecedence() = %d, want 4", tr.GetPrecedence())
	}
	pred := tr.GetPredicate()
	if pred.precedence != 4 {
		t.Errorf("expected derived predicate to carry precedence 4, got %d", pred.precedence)
	}
}
