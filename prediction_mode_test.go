package antlr

import "testing"

func stateWithNumber(n int) *BasicState {
	s := NewBasicState()
	s.SetStateNumber(n)
	return s
}

func TestUniqueAltSingleAlternative(t *testing.T) {
	configs := NewATNConfigSet(false)
	s := stateWithNumber(1)
	configs.Add(NewATNConfig(s, 2, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(stateWithNumber(2), 2, EmptyPredictionContext, nil), nil)

	if got := uniqueAlt(configs); got != 2 {
		t.Errorf("uniqueAlt() = %d, want 2", got)
	}
}

func TestUniqueAltMultipleAlternatives(t *testing.T) {
	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig(stateWithNumber(1), 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(stateWithNumber(2), 2, EmptyPredictionContext, nil), nil)

	if got := uniqueAlt(configs); got != ATNInvalidAltNumber {
		t.Errorf("uniqueAlt() = %d, want ATNInvalidAltNumber", got)
	}
}

func TestGetConflictingAltSubsetsGroupsByStateAndContext(t *testing.T) {
	configs := NewATNConfigSet(false)
	s1 := stateWithNumber(1)
	s2 := stateWithNumber(2)

	configs.Add(NewATNConfig(s1, 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(s1, 2, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(s2, 3, EmptyPredictionContext, nil), nil)

	subsets := getConflictingAltSubsets(configs)
	if len(subsets) != 2 {
		t.Fatalf("expected 2 partitions (one per state), got %d", len(subsets))
	}
	total := 0
	for _, s := range subsets {
		total += s.Len()
	}
	if total != 3 {
		t.Errorf("expected 3 alts total across partitions, got %d", total)
	}
}

func TestHasSLLConflictTerminatingPredictionUniqueAltIsFalse(t *testing.T) {
	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig(stateWithNumber(1), 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(stateWithNumber(2), 1, EmptyPredictionContext, nil), nil)

	if hasSLLConflictTerminatingPrediction(PredictionModeLL, configs) {
		t.Error("expected a single-alt config set to never terminate as a conflict")
	}
}

func TestHasSLLConflictTerminatingPredictionAllSubsetsConflict(t *testing.T) {
	configs := NewATNConfigSet(false)
	s := stateWithNumber(1)
	configs.Add(NewATNConfig(s, 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(s, 2, EmptyPredictionContext, nil), nil)

	if !hasSLLConflictTerminatingPrediction(PredictionModeLL, configs) {
		t.Error("expected a single partition ambiguous between alts 1 and 2 to terminate prediction")
	}
}

func TestHasSLLConflictTerminatingPredictionExactAmbigModeSkipsStopStateHeuristic(t *testing.T) {
	stop := NewRuleStopState()
	stop.SetStateNumber(1)
	other := stateWithNumber(2)

	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig(stop, 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(other, 1, NewSingletonPredictionContext(EmptyPredictionContext, 9), nil), nil)
	configs.Add(NewATNConfig(stateWithNumber(3), 2, EmptyPredictionContext, nil), nil)

	// Three (state,context) partitions {1}, {1}, {2}: no subset conflicts,
	// so only the stop-state heuristic (stop and non-stop configs sharing
	// alt 1) could terminate prediction, and exact mode skips it.
	if !hasSLLConflictTerminatingPrediction(PredictionModeLL, configs) {
		t.Error("expected the stop-state heuristic to fire in LL mode")
	}
	if hasSLLConflictTerminatingPrediction(PredictionModeLLExactAmbigDetection, configs) {
		t.Error("expected exact-ambiguity mode to skip the stop-state heuristic")
	}
}

func TestHasStopStateAmbiguityDetectsSharedAlt(t *testing.T) {
	stop := NewRuleStopState()
	stop.SetStateNumber(1)
	other := stateWithNumber(2)

	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig(stop, 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(other, 1, NewSingletonPredictionContext(EmptyPredictionContext, 9), nil), nil)

	if !hasStopStateAmbiguity(configs) {
		t.Error("expected a rule-stop-state config sharing its alt with a non-stop config to flag stop-state ambiguity")
	}
}

func TestHasStopStateAmbiguityFalseWhenAltsDiffer(t *testing.T) {
	stop := NewRuleStopState()
	stop.SetStateNumber(1)
	other := stateWithNumber(2)

	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig(stop, 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(other, 2, NewSingletonPredictionContext(EmptyPredictionContext, 9), nil), nil)

	if hasStopStateAmbiguity(configs) {
		t.Error("expected distinct alts at stop vs non-stop states to not flag ambiguity")
	}
}

func TestGetConflictingAltsReturnsOnlyConflictingSubset(t *testing.T) {
	configs := NewATNConfigSet(false)
	shared := stateWithNumber(1)
	configs.Add(NewATNConfig(shared, 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(shared, 2, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(stateWithNumber(2), 3, EmptyPredictionContext, nil), nil)

	alts := getConflictingAlts(configs)
	if !alts.Contains(1) || !alts.Contains(2) || alts.Contains(3) {
		t.Errorf("expected conflicting alts {1,2}, got %s", alts)
	}
}

func TestGetConflictingAltsFallsBackToAllWhenNoneConflict(t *testing.T) {
	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig(stateWithNumber(1), 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(stateWithNumber(2), 2, EmptyPredictionContext, nil), nil)

	alts := getConflictingAlts(configs)
	if !alts.Contains(1) || !alts.Contains(2) {
		t.Errorf("expected the fallback union {1,2} when no subset conflicts, got %s", alts)
	}
}

func TestGetAltsUnionsEveryPartition(t *testing.T) {
	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig(stateWithNumber(1), 1, EmptyPredictionContext, nil), nil)
	configs.Add(NewATNConfig(stateWithNumber(2), 2, EmptyPredictionContext, nil), nil)

	alts := getAlts(configs)
	if !alts.Contains(1) || !alts.Contains(2) {
		t.Errorf("expected getAlts to union every alt seen, got %s", alts)
	}
}
