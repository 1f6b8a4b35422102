package antlr

import (
	"strings"
	"testing"
)

func TestATNConfigFromCopiesUnspecifiedFields(t *testing.T) {
	state := stateWithNumber(1)
	base := NewATNConfig(state, 3, EmptyPredictionContext, nil)
	base.incrementOuterContextDepth()
	base.SetPassedThroughNonGreedyDecision(true)

	derived := NewATNConfigFrom(base, stateWithNumber(2), EmptyPredictionContext, nil)

	if derived.GetAlt() != 3 {
		t.Errorf("expected alt to carry over, got %d", derived.GetAlt())
	}
	if derived.GetSemanticContext() != SemanticContextNone {
		t.Error("expected a nil semanticContext override to fall back to the source's semantic context")
	}
	if derived.outerContextDepth() != 1 {
		t.Errorf("expected outerContextDepth to carry over, got %d", derived.outerContextDepth())
	}
	if !derived.GetPassedThroughNonGreedyDecision() {
		t.Error("expected passedThroughNonGreedyDecision to carry over")
	}
}

func TestATNConfigPrecedenceFilterSuppressedIndependentOfDepth(t *testing.T) {
	c := NewATNConfig(stateWithNumber(1), 1, EmptyPredictionContext, nil)
	c.incrementOuterContextDepth()
	c.incrementOuterContextDepth()
	c.setPrecedenceFilterSuppressed(true)

	if c.outerContextDepth() != 2 {
		t.Errorf("expected outerContextDepth 2, got %d", c.outerContextDepth())
	}
	if !c.getPrecedenceFilterSuppressed() {
		t.Error("expected the suppression flag to stick alongside a nonzero depth")
	}

	c.setPrecedenceFilterSuppressed(false)
	if c.getPrecedenceFilterSuppressed() {
		t.Error("expected clearing the suppression flag to stick")
	}
	if c.outerContextDepth() != 2 {
		t.Errorf("expected clearing the suppression flag to leave depth untouched, got %d", c.outerContextDepth())
	}
}

func TestATNConfigEqualsIgnoresContextIdentityButNotValue(t *testing.T) {
	state := stateWithNumber(1)
	a := NewATNConfig(state, 1, NewSingletonPredictionContext(EmptyPredictionContext, 5), nil)
	b := NewATNConfig(state, 1, NewSingletonPredictionContext(EmptyPredictionContext, 5), nil)
	c := NewATNConfig(state, 1, NewSingletonPredictionContext(EmptyPredictionContext, 6), nil)

	if !a.Equals(b) {
		t.Error("expected configs with structurally equal but distinct context objects to be equal")
	}
	if a.Equals(c) {
		t.Error("expected configs with different return states in context to be unequal")
	}
}

func TestATNConfigEqualsDistinguishesSemanticContext(t *testing.T) {
	state := stateWithNumber(1)
	p1 := NewPredicate(0, 0, false)
	p2 := NewPredicate(0, 1, false)

	a := NewATNConfig(state, 1, EmptyPredictionContext, p1)
	b := NewATNConfig(state, 1, EmptyPredictionContext, p2)

	if a.Equals(b) {
		t.Error("expected configs with different semantic contexts to be unequal")
	}
}

func TestATNConfigHashMatchesForEqualConfigs(t *testing.T) {
	state := stateWithNumber(1)
	a := NewATNConfig(state, 1, EmptyPredictionContext, nil)
	b := NewATNConfig(state, 1, EmptyPredictionContext, nil)

	if a.Hash() != b.Hash() {
		t.Error("expected equal configs to hash identically")
	}
}

func TestATNConfigStringIncludesUpWhenDepthPositive(t *testing.T) {
	c := NewATNConfig(stateWithNumber(1), 2, EmptyPredictionContext, nil)
	if got := c.String(); strings.Contains(got, "up=") {
		t.Errorf("expected no up= marker at zero depth, got %q", got)
	}

	c.incrementOuterContextDepth()
	if got := c.String(); !strings.Contains(got, "up=1") {
		t.Errorf("expected up=1 marker once outerContextDepth is nonzero, got %q", got)
	}
}
