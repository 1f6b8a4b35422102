// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "sync"

// dfaStateComparator keys the DFA's state table by ATNConfigSet equality,
// per §4.4.9.
type dfaStateComparator struct{}

func (dfaStateComparator) Hash1(s *DFAState) int { return s.Hash() }

func (dfaStateComparator) Equals2(a, b *DFAState) bool { return a.Equals(b) }

// DFA is the per-decision deterministic-automaton cache of §4.4.9: states
// deduplicated by configuration-set equality, reached lazily as ATN
// simulation discovers new configuration sets. One DFA exists per parser
// decision and per lexer mode.
//
// Concurrency (§5): state insertion into states is made atomic by mu so
// two goroutines computing the same new state converge on one canonical
// instance; the read path (following a DFAState.edges pointer) needs no
// lock at all, since an edge slot holds either nil, ErrorState, or a
// published *DFAState.
type DFA struct {
	mu sync.Mutex

	states *JMap[*DFAState, *DFAState, dfaStateComparator]

	s0 *DFAState

	decision int

	// atnStartState is the decision state this automaton was built for;
	// recomputing a start configuration set (e.g. the full-context
	// fallback of §4.4.3) always re-enters the ATN here.
	atnStartState DecisionState

	// precedenceDfa marks an automaton built for a left-recursive
	// decision; it maintains a separate start-state map keyed by integer
	// precedence level instead of a single s0 (§4.4.9).
	precedenceDfa  bool
	precedenceToS0 map[int]*DFAState
}

func NewDFA(atnStartState DecisionState, decision int) *DFA {
	return &DFA{
		states:         NewJMap[*DFAState, *DFAState, dfaStateComparator](dfaStateComparator{}),
		decision:       decision,
		atnStartState:  atnStartState,
		precedenceToS0: make(map[int]*DFAState),
	}
}

func (d *DFA) GetDecision() int { return d.decision }

func (d *DFA) GetATNStartState() DecisionState { return d.atnStartState }

func (d *DFA) IsPrecedenceDfa() bool { return d.precedenceDfa }

func (d *DFA) SetPrecedenceDfa(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.precedenceDfa == v {
		return
	}
	if v {
		s0 := NewDFAState(-1, NewATNConfigSet(false))
		s0.SetRequiresFullContext(false)
		d.s0 = s0
	} else {
		d.s0 = nil
	}
	d.precedenceDfa = v
}

// GetPrecedenceStartState returns the start state that
// SetPrecedenceStartState installed for the given precedence level, or nil
// if none has been installed; it installs nothing itself.
func (d *DFA) GetPrecedenceStartState(precedence int) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.precedenceToS0[precedence]
}

func (d *DFA) SetPrecedenceStartState(precedence int, s *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.precedenceDfa {
		return
	}
	d.precedenceToS0[precedence] = s
}

func (d *DFA) GetS0() *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.s0
}

func (d *DFA) SetS0(s *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.s0 = s
}

// AddState canonicalizes newState against the existing table: two
// goroutines installing structurally equal states converge on one
// instance (§5). Returns the canonical state, which may be newState
// itself or a previously installed equal state.
func (d *DFA) AddState(newState *DFAState) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, present := d.states.Get(newState); present {
		return existing
	}
	newState.SetStateNumber(d.states.Len())
	d.states.Put(newState, newState)
	return newState
}

func (d *DFA) NumStates() int { return d.states.Len() }

// Clear replaces the table with a freshly constructed empty one (§5
// "Bounded resources": "implementations must expose a clear operation").
func (d *DFA) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.states = NewJMap[*DFAState, *DFAState, dfaStateComparator](dfaStateComparator{})
	d.s0 = nil
	d.precedenceToS0 = make(map[int]*DFAState)
}
