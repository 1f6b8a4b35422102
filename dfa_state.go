// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// PredPrediction pairs a predicate with the alternative it must evaluate
// true for, the predicated-accept-state payload of §3/§4.4.7.
type PredPrediction struct {
	Pred SemanticContext
	Alt  int
}

func NewPredPrediction(pred SemanticContext, alt int) *PredPrediction {
	return &PredPrediction{Pred: pred, Alt: alt}
}

func (p *PredPrediction) String() string { return fmt.Sprintf("(%s, %d)", p.Pred, p.Alt) }

// DFAState is the deterministic-automaton state of §3/§4.4.9: a read-only
// configuration set, an edge table indexed by symbol offset, and an
// accept payload. Edge installation is a single pointer write into a
// slotted array (§5): readers tolerate "not yet present" (nil) and
// "present" without any further synchronization on the read path.
type DFAState struct {
	stateNumber int
	configs     *ATNConfigSet

	// edges is indexed by symbol+1 so EOF (-1) lands at index 0.
	edges []*DFAState

	isAcceptState bool

	// prediction is the predicted alt for a plain accept state.
	prediction int

	lexerActionExecutor *LexerActionExecutor

	requiresFullContext bool

	// predicates, when non-nil, means this accept state's prediction must
	// be resolved by evaluating each pair at runtime (§4.4.4, §4.4.7).
	predicates []*PredPrediction
}

func NewDFAState(stateNumber int, configs *ATNConfigSet) *DFAState {
	if configs == nil {
		configs = NewATNConfigSet(false)
	}
	return &DFAState{stateNumber: stateNumber, configs: configs}
}

func (d *DFAState) GetStateNumber() int { return d.stateNumber }

func (d *DFAState) SetStateNumber(n int) { d.stateNumber = n }

func (d *DFAState) GetConfigs() *ATNConfigSet { return d.configs }

func (d *DFAState) GetAltSet() *BitSet {
	alts := NewBitSet()
	if d.configs == nil {
		return alts
	}
	for _, c := range d.configs.GetItems() {
		alts.Add(c.GetAlt())
	}
	return alts
}

// edgeIndex maps a consumed symbol to its slot, honoring the §4.4.9
// "symbol + 1, so EOF fits at index 0" convention.
func edgeIndex(symbol int) int { return symbol + 1 }

func (d *DFAState) GetIthEdge(symbol int) *DFAState {
	i := edgeIndex(symbol)
	if i < 0 || i >= len(d.edges) {
		return nil
	}
	return d.edges[i]
}

func (d *DFAState) SetIthEdge(symbol int, target *DFAState) {
	i := edgeIndex(symbol)
	if i < 0 {
		return
	}
	if i >= len(d.edges) {
		grown := make([]*DFAState, i+1)
		copy(grown, d.edges)
		d.edges = grown
	}
	d.edges[i] = target
}

func (d *DFAState) SetPrediction(p int) { d.prediction = p }

func (d *DFAState) GetPrediction() int { return d.prediction }

func (d *DFAState) SetAccept(v bool) { d.isAcceptState = v }

func (d *DFAState) GetIsAcceptState() bool { return d.isAcceptState }

func (d *DFAState) SetLexerActionExecutor(e *LexerActionExecutor) { d.lexerActionExecutor = e }

func (d *DFAState) GetLexerActionExecutor() *LexerActionExecutor { return d.lexerActionExecutor }

func (d *DFAState) SetPredicates(p []*PredPrediction) { d.predicates = p }

func (d *DFAState) GetPredicates() []*PredPrediction { return d.predicates }

func (d *DFAState) SetRequiresFullContext(v bool) { d.requiresFullContext = v }

func (d *DFAState) GetRequiresFullContext() bool { return d.requiresFullContext }

// Equals/Hash key a DFA's state table by configuration-set equality
// (§4.4.9: "Its state table deduplicates by configuration-set equality").
func (d *DFAState) Equals(other *DFAState) bool {
	if d == other {
		return true
	}
	if other == nil {
		return false
	}
	return d.configs.Equals(other.configs)
}

func (d *DFAState) Hash() int { return d.configs.Hash() }

func (d *DFAState) String() string {
	s := fmt.Sprintf("%d:%s", d.stateNumber, d.configs)
	if d.isAcceptState {
		if d.predicates != nil {
			s += fmt.Sprintf("=>%v", d.predicates)
		} else {
			s += fmt.Sprintf("=>%d", d.prediction)
		}
	}
	return s
}

// ErrorState is the unique reserved sentinel representing dead-end edges
// (§4.4.9). It must never be mutated. Its stateNumber is -1, like any
// state not yet added to a DFA; it stays out of every DFA's table because
// the parser simulator's addDFAState returns it without adding it, and the
// lexer simulator only stores it in edges.
var ErrorState = NewDFAState(-1, NewATNConfigSet(false))
