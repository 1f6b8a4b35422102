// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ATNConfigSet is the insertion-ordered, de-duplicated configuration
// collection of §3/§4.3. Adding a configuration whose (state, alt,
// semanticContext) key already exists merges contexts instead of growing
// the sequence; the auxiliary index is discarded once the set is frozen
// read-only and adopted as a deterministic-automaton state's key (§4.4.9).
type ATNConfigSet struct {
	configs []*ATNConfig

	// configLookup indexes existing entries by (state, alt,
	// semanticContext) so add() can find a merge candidate in O(1)
	// amortized instead of scanning configs. nil once read-only.
	configLookup *JMap[*ATNConfig, *ATNConfig, atnConfigKeyComparator]

	// identity marks the "ordered" variant (§4.3), used by the lexer
	// simulator's reach sets: every added configuration is appended and
	// kept, with no merge lookup.
	identity bool

	readOnly bool
	fullCtx  bool

	uniqueAlt         int
	conflictingAlts   *BitSet
	hasSemanticContext bool
	dipsIntoOuterContext bool

	cachedHash int
}

func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		fullCtx:      fullCtx,
		uniqueAlt:    ATNInvalidAltNumber,
		configLookup: NewJMap[*ATNConfig, *ATNConfig, atnConfigKeyComparator](atnConfigKeyComparator{}),
	}
}

// NewOrderedATNConfigSet builds the identity-keyed variant used by lexer
// reach computations (§4.3 "Ordered variant").
func NewOrderedATNConfigSet() *ATNConfigSet {
	s := NewATNConfigSet(false)
	s.identity = true
	return s
}

func (s *ATNConfigSet) mustBeMutable() {
	if s.readOnly {
		panic(ErrSetReadonly)
	}
}

// Add implements §4.3 add(config): merge-on-insert keyed by (state, alt,
// semanticContext), except in the identity-keyed ordered variant where
// every object is distinct by construction.
func (s *ATNConfigSet) Add(config *ATNConfig, mergeCache PredictionContextMergeCache) bool {
	s.mustBeMutable()

	if config.GetSemanticContext() != SemanticContextNone {
		s.hasSemanticContext = true
	}
	if config.outerContextDepth() > 0 {
		s.dipsIntoOuterContext = true
	}

	if s.identity {
		s.configs = append(s.configs, config)
		return true
	}

	existing, present := s.configLookup.Get(config)
	if !present {
		s.configLookup.Put(config, config)
		s.configs = append(s.configs, config)
		return true
	}

	rootIsWildcard := !s.fullCtx
	merged := MergePredictionContexts(existing.GetContext(), config.GetContext(), rootIsWildcard, mergeCache)

	existing.reachesIntoOuterContext = max(existing.reachesIntoOuterContext, config.reachesIntoOuterContext)

	if config.getPrecedenceFilterSuppressed() {
		existing.setPrecedenceFilterSuppressed(true)
	}

	existing.SetContext(merged)
	return true
}

func (s *ATNConfigSet) GetStates() []ATNState {
	out := make([]ATNState, 0, len(s.configs))
	seen := map[int]bool{}
	for _, c := range s.configs {
		n := c.GetState().GetStateNumber()
		if !seen[n] {
			seen[n] = true
			out = append(out, c.GetState())
		}
	}
	return out
}

func (s *ATNConfigSet) GetItems() []*ATNConfig { return s.configs }

func (s *ATNConfigSet) Length() int { return len(s.configs) }

func (s *ATNConfigSet) IsEmpty() bool { return len(s.configs) == 0 }

func (s *ATNConfigSet) Contains(c *ATNConfig) bool {
	if s.identity {
		for _, existing := range s.configs {
			if existing == c {
				return true
			}
		}
		return false
	}
	_, present := s.configLookup.Get(c)
	return present
}

// Optimize rebuilds every configuration's context through the shared
// cache, per §4.3 "after construction but before making a set read-only".
func (s *ATNConfigSet) Optimize(cache *PredictionContextCache) {
	s.mustBeMutable()
	visited := map[PredictionContext]PredictionContext{}
	for _, c := range s.configs {
		c.SetContext(getCachedPredictionContext(c.GetContext(), cache, visited))
	}
}

// SetReadonly freezes the set: the configuration list becomes the
// canonical form used to key a deterministic-automaton state (§4.3,
// §4.4.9), and the auxiliary index is discarded.
func (s *ATNConfigSet) SetReadonly(readOnly bool) {
	s.readOnly = readOnly
	if readOnly {
		s.configLookup = nil
	}
}

func (s *ATNConfigSet) IsReadOnly() bool { return s.readOnly }

func (s *ATNConfigSet) GetConflictingAlts() *BitSet { return s.conflictingAlts }

func (s *ATNConfigSet) SetConflictingAlts(b *BitSet) { s.conflictingAlts = b }

func (s *ATNConfigSet) GetUniqueAlt() int { return s.uniqueAlt }

func (s *ATNConfigSet) SetUniqueAlt(a int) { s.uniqueAlt = a }

func (s *ATNConfigSet) HasSemanticContext() bool { return s.hasSemanticContext }

func (s *ATNConfigSet) SetHasSemanticContext(v bool) { s.hasSemanticContext = v }

func (s *ATNConfigSet) DipsIntoOuterContext() bool { return s.dipsIntoOuterContext }

func (s *ATNConfigSet) FullContext() bool { return s.fullCtx }

// Equals is deep: same length, same ordered configurations, and the same
// fullCtx/uniqueAlt/conflictingAlts/hasSemanticContext/dipsIntoOuterContext
// flags (§4.3).
func (s *ATNConfigSet) Equals(other *ATNConfigSet) bool {
	if s == other {
		return true
	}
	if other == nil || len(s.configs) != len(other.configs) {
		return false
	}
	if s.fullCtx != other.fullCtx || s.uniqueAlt != other.uniqueAlt {
		return false
	}
	if s.hasSemanticContext != other.hasSemanticContext || s.dipsIntoOuterContext != other.dipsIntoOuterContext {
		return false
	}
	if (s.conflictingAlts == nil) != (other.conflictingAlts == nil) ||
		(s.conflictingAlts != nil && !bitsetsEqual(s.conflictingAlts, other.conflictingAlts)) {
		return false
	}
	for i, c := range s.configs {
		if !c.Equals(other.configs[i]) {
			return false
		}
	}
	return true
}

func (s *ATNConfigSet) Hash() int {
	if s.cachedHash != 0 {
		return s.cachedHash
	}
	h := 0
	for _, c := range s.configs {
		h = murmurCombine(h, c.Hash())
	}
	s.cachedHash = murmurFinish(h, len(s.configs))
	return s.cachedHash
}

func (s *ATNConfigSet) String() string {
	out := "["
	for i, c := range s.configs {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	out += "]"
	if s.hasSemanticContext {
		out += fmt.Sprintf(",hasSemanticContext=%v", s.hasSemanticContext)
	}
	if s.uniqueAlt != ATNInvalidAltNumber {
		out += fmt.Sprintf(",uniqueAlt=%d", s.uniqueAlt)
	}
	if s.conflictingAlts != nil {
		out += fmt.Sprintf(",conflictingAlts=%s", s.conflictingAlts)
	}
	if s.dipsIntoOuterContext {
		out += ",dipsIntoOuterContext"
	}
	return out
}
