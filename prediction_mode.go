// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// PredictionMode selects how aggressively adaptivePredict falls back to
// full-context simulation (§4.4).
type PredictionMode int

const (
	// PredictionModeSLL runs only the fast SLL stage; ambiguities resolve
	// to the minimum conflicting alt without a full-context fallback.
	PredictionModeSLL PredictionMode = iota
	// PredictionModeLL is the full adaptive two-stage algorithm: SLL
	// first, LL fallback on conflict.
	PredictionModeLL
	// PredictionModeLLExactAmbigDetection is LL with two differences: the
	// SLL stage skips the stop-state ambiguity heuristic, and the
	// full-context stage stops only on an exact ambiguity (every subset
	// conflicting and all subsets equal).
	PredictionModeLLExactAmbigDetection
)

// configWithAltAndCtxKey groups configurations by (state, context) for
// getConflictingAltSubsets (§4.4.5).
type configWithAltAndCtxKey struct {
	state   int
	context string
}

func keyFor(c *ATNConfig) configWithAltAndCtxKey {
	return configWithAltAndCtxKey{state: c.GetState().GetStateNumber(), context: c.GetContext().String()}
}

// getConflictingAltSubsets partitions configs by (state, context) and
// returns, per partition, the set of alts appearing in it (§4.4.5).
func getConflictingAltSubsets(configs *ATNConfigSet) []*BitSet {
	index := map[configWithAltAndCtxKey]*BitSet{}
	var order []configWithAltAndCtxKey

	for _, c := range configs.GetItems() {
		k := keyFor(c)
		alts, ok := index[k]
		if !ok {
			alts = NewBitSet()
			index[k] = alts
			order = append(order, k)
		}
		alts.Add(c.GetAlt())
	}

	out := make([]*BitSet, 0, len(order))
	for _, k := range order {
		out = append(out, index[k])
	}
	return out
}

// getStateToAltMap groups configs purely by state, independent of
// context. Nothing in this package calls it; hasStopStateAmbiguity does
// its own grouping.
func getStateToAltMap(configs *ATNConfigSet) map[int]*BitSet {
	m := map[int]*BitSet{}
	for _, c := range configs.GetItems() {
		n := c.GetState().GetStateNumber()
		alts, ok := m[n]
		if !ok {
			alts = NewBitSet()
			m[n] = alts
		}
		alts.Add(c.GetAlt())
	}
	return m
}

func allSubsetsConflict(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.Len() < 2 {
			return false
		}
	}
	return len(altsets) > 0
}

func allSubsetsEqual(altsets []*BitSet) bool {
	if len(altsets) == 0 {
		return true
	}
	first := altsets[0]
	for _, s := range altsets[1:] {
		if !bitsetsEqual(first, s) {
			return false
		}
	}
	return true
}

func bitsetsEqual(a, b *BitSet) bool {
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}

// hasStopStateAmbiguity implements the stop-state ambiguity heuristic of
// §4.4.5(b): reach contains a configuration in a rule-stop state combined
// with another in a different state with the same alt.
func hasStopStateAmbiguity(configs *ATNConfigSet) bool {
	stopAlts := NewBitSet()
	otherAlts := NewBitSet()
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			stopAlts.Add(c.GetAlt())
		} else {
			otherAlts.Add(c.GetAlt())
		}
	}
	for _, alt := range stopAlts.Values() {
		if otherAlts.Contains(alt) {
			return true
		}
	}
	return false
}

// hasSLLConflictTerminatingPrediction implements §4.4.5: true when either
// (a) every (state, context) subset conflicts and they are all equal, or
// (b) the stop-state ambiguity heuristic fires.
func hasSLLConflictTerminatingPrediction(mode PredictionMode, configs *ATNConfigSet) bool {
	if allConfigsAreUniqueAlt(configs) {
		return false
	}

	altsets := getConflictingAltSubsets(configs)
	if allSubsetsConflict(altsets) && allSubsetsEqual(altsets) {
		return true
	}

	if mode == PredictionModeLLExactAmbigDetection {
		return false
	}

	return hasStopStateAmbiguity(configs)
}

func allConfigsAreUniqueAlt(configs *ATNConfigSet) bool {
	alt := ATNInvalidAltNumber
	for _, c := range configs.GetItems() {
		if alt == ATNInvalidAltNumber {
			alt = c.GetAlt()
			continue
		}
		if c.GetAlt() != alt {
			return false
		}
	}
	return true
}

// getConflictingAlts returns the union of alts found in any conflicting
// subset (§4.4.5).
func getConflictingAlts(configs *ATNConfigSet) *BitSet {
	altsets := getConflictingAltSubsets(configs)
	result := NewBitSet()
	for _, s := range altsets {
		if s.Len() >= 2 {
			result.Or(s)
		}
	}
	if result.Len() == 0 {
		for _, s := range altsets {
			result.Or(s)
		}
	}
	return result
}

// getAlts returns the union of every alt appearing anywhere in configs.
func getAlts(configs *ATNConfigSet) *BitSet {
	result := NewBitSet()
	for _, altset := range getConflictingAltSubsets(configs) {
		result.Or(altset)
	}
	return result
}

// uniqueAlt returns the alt every configuration in configs predicts, or
// ATNInvalidAltNumber when configs is empty or two configurations predict
// different alts.
func uniqueAlt(configs *ATNConfigSet) int {
	alt := ATNInvalidAltNumber
	for _, c := range configs.GetItems() {
		if alt == ATNInvalidAltNumber {
			alt = c.GetAlt()
			continue
		}
		if c.GetAlt() != alt {
			return ATNInvalidAltNumber
		}
	}
	return alt
}
