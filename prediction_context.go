// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "golang.org/x/exp/slices"

// EmptyReturnState is the sentinel return state denoting the empty-stack
// root; inside an array-variant context it always sorts last (§3).
const EmptyReturnState = 0x7FFFFFFF

// BasePredictionContextEmptyReturnState is kept for parity with the
// teacher's naming of the sentinel; EmptyReturnState is preferred in new
// code in this package.
const BasePredictionContextEmptyReturnState = EmptyReturnState

// PredictionContext is the graph-structured call stack described in §3/
// §4.2: a DAG of (parent, returnState) edges representing every call-stack
// suffix reachable at a point in the ATN. It never mutates after
// construction and is shared freely through PredictionContextCache.
type PredictionContext interface {
	Hash() int
	Equals(other PredictionContext) bool

	GetParent(i int) PredictionContext
	getReturnState(i int) int
	length() int
	isEmpty() bool
	hasEmptyPath() bool
	String() string
}

// EmptyPredictionContext is the unique terminator: "unknown/wildcard in
// local (SLL) context, end-of-input in full (LL) context" (§3).
var EmptyPredictionContext PredictionContext = &emptyPredictionContext{}

type emptyPredictionContext struct{}

func (e *emptyPredictionContext) Hash() int { return 1 }

func (e *emptyPredictionContext) Equals(other PredictionContext) bool {
	_, ok := other.(*emptyPredictionContext)
	return ok
}

func (e *emptyPredictionContext) GetParent(int) PredictionContext { return nil }

func (e *emptyPredictionContext) getReturnState(int) int { return EmptyReturnState }

func (e *emptyPredictionContext) length() int { return 1 }

func (e *emptyPredictionContext) isEmpty() bool { return true }

func (e *emptyPredictionContext) hasEmptyPath() bool { return true }

func (e *emptyPredictionContext) String() string { return "$" }

// SingletonPredictionContext is one (parent, returnState) edge.
type SingletonPredictionContext struct {
	parent      PredictionContext
	returnState int
	cachedHash  int
}

func NewSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	s := &SingletonPredictionContext{parent: parent, returnState: returnState}
	s.cachedHash = calculateHashForSingleton(parent, returnState)
	return s
}

func calculateHashForSingleton(parent PredictionContext, returnState int) int {
	h := murmurCombine(0, 1) // init with length 1
	if parent != nil {
		h = murmurCombine(h, parent.Hash())
	} else {
		h = murmurCombine(h, 0)
	}
	h = murmurCombine(h, returnState)
	return murmurFinish(h, 2)
}

func (s *SingletonPredictionContext) Hash() int { return s.cachedHash }

func (s *SingletonPredictionContext) Equals(other PredictionContext) bool {
	o, ok := other.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	if s.returnState != o.returnState {
		return false
	}
	if s.parent == nil {
		return o.parent == nil
	}
	return s.parent.Equals(o.parent)
}

func (s *SingletonPredictionContext) GetParent(int) PredictionContext { return s.parent }

func (s *SingletonPredictionContext) getReturnState(int) int { return s.returnState }

func (s *SingletonPredictionContext) length() int { return 1 }

func (s *SingletonPredictionContext) isEmpty() bool { return false }

func (s *SingletonPredictionContext) hasEmptyPath() bool { return s.returnState == EmptyReturnState }

func (s *SingletonPredictionContext) String() string {
	var up string
	if s.parent != nil {
		up = s.parent.String()
	}
	if len(up) == 0 {
		if s.returnState == EmptyReturnState {
			return "$"
		}
		return itoa(s.returnState)
	}
	return itoa(s.returnState) + " " + up
}

// ArrayPredictionContext is the sorted-array variant: more than one
// (parent, returnState) edge out of a single node. Return states are kept
// strictly ascending, with EmptyReturnState sorting last (§3).
type ArrayPredictionContext struct {
	parents      []PredictionContext
	returnStates []int
	cachedHash   int
}

func NewArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	a := &ArrayPredictionContext{parents: parents, returnStates: returnStates}
	a.cachedHash = calculateHashForArray(parents, returnStates)
	return a
}

func calculateHashForArray(parents []PredictionContext, returnStates []int) int {
	h := murmurCombine(0, len(parents))
	for _, p := range parents {
		if p != nil {
			h = murmurCombine(h, p.Hash())
		} else {
			h = murmurCombine(h, 0)
		}
	}
	for _, r := range returnStates {
		h = murmurCombine(h, r)
	}
	return murmurFinish(h, 2*len(parents)+1)
}

func (a *ArrayPredictionContext) Hash() int { return a.cachedHash }

func (a *ArrayPredictionContext) Equals(other PredictionContext) bool {
	o, ok := other.(*ArrayPredictionContext)
	if !ok || len(a.returnStates) != len(o.returnStates) {
		return false
	}
	for i := range a.returnStates {
		if a.returnStates[i] != o.returnStates[i] {
			return false
		}
		if a.parents[i] == nil {
			if o.parents[i] != nil {
				return false
			}
			continue
		}
		if !a.parents[i].Equals(o.parents[i]) {
			return false
		}
	}
	return true
}

func (a *ArrayPredictionContext) GetParent(i int) PredictionContext { return a.parents[i] }

func (a *ArrayPredictionContext) getReturnState(i int) int { return a.returnStates[i] }

func (a *ArrayPredictionContext) length() int { return len(a.returnStates) }

func (a *ArrayPredictionContext) isEmpty() bool {
	return len(a.returnStates) == 1 && a.returnStates[0] == EmptyReturnState
}

func (a *ArrayPredictionContext) hasEmptyPath() bool {
	return a.returnStates[len(a.returnStates)-1] == EmptyReturnState
}

func (a *ArrayPredictionContext) String() string {
	s := "["
	for i, r := range a.returnStates {
		if i > 0 {
			s += ", "
		}
		if r == EmptyReturnState {
			s += "$"
			continue
		}
		s += itoa(r)
		if a.parents[i] != nil {
			s += " " + a.parents[i].String()
		}
	}
	return s + "]"
}

// ----- construction helpers -----------------------------------------------

func NewEmptyPredictionContext() PredictionContext { return EmptyPredictionContext }

func predictionContextFromRuleContext(a *ATN, outerContext RuleContext) PredictionContext {
	if outerContext == nil {
		outerContext = ParserRuleContextEmpty
	}
	if outerContext.GetParent() == nil || outerContext == ParserRuleContextEmpty {
		return EmptyPredictionContext
	}

	parent := predictionContextFromRuleContext(a, outerContext.GetParent())
	state := a.states[outerContext.GetInvokingState()]
	transition := state.GetTransitions()[0]

	return NewSingletonPredictionContext(parent, transition.(*RuleTransition).followState.GetStateNumber())
}

// PredictionContextMergeCache is the per-prediction-call (a, b) → merged
// map named in §4.2/§5: bounded to a single prediction call's lifetime so
// it never retains graphs across calls. A nil cache is always valid — the
// cache is purely an optimization (§9 Open Question), never semantically
// required.
type PredictionContextMergeCache = *JMap[*PredictionContextPair, PredictionContext, ObjEqComparator[*PredictionContextPair]]

func NewPredictionContextMergeCache() PredictionContextMergeCache {
	return NewJMap[*PredictionContextPair, PredictionContext, ObjEqComparator[*PredictionContextPair]](ObjEqComparator[*PredictionContextPair]{})
}

// ----- merge (§4.2) --------------------------------------------------------

// MergePredictionContexts implements merge(a, b, rootIsWildcard, cache):
// the union of two stack-suffix graphs. See §4.2 for the full rule set.
func MergePredictionContexts(a, b PredictionContext, rootIsWildcard bool, mergeCache PredictionContextMergeCache) PredictionContext {
	if a == b || a.Equals(b) {
		return a
	}

	sa, aIsSingleton := a.(*SingletonPredictionContext)
	sb, bIsSingleton := b.(*SingletonPredictionContext)

	if aIsSingleton && bIsSingleton {
		return mergeSingletons(sa, sb, rootIsWildcard, mergeCache)
	}

	if rootIsWildcard {
		if _, ok := a.(*emptyPredictionContext); ok {
			return a
		}
		if _, ok := b.(*emptyPredictionContext); ok {
			return b
		}
	}

	// At least one side is an array (or a wildcard-root interaction);
	// promote singletons to one-element arrays and merge the arrays.
	var aArr, bArr *ArrayPredictionContext
	if aIsSingleton {
		aArr = NewArrayPredictionContext([]PredictionContext{sa.parent}, []int{sa.returnState})
	} else {
		aArr = a.(*ArrayPredictionContext)
	}
	if bIsSingleton {
		bArr = NewArrayPredictionContext([]PredictionContext{sb.parent}, []int{sb.returnState})
	} else {
		bArr = b.(*ArrayPredictionContext)
	}

	return mergeArrays(aArr, bArr, rootIsWildcard, mergeCache)
}

func mergeSingletons(a, b *SingletonPredictionContext, rootIsWildcard bool, mergeCache PredictionContextMergeCache) PredictionContext {
	if mergeCache != nil {
		if cached, present := mergeCache.Get(&PredictionContextPair{a, b}); present {
			return cached
		}
		if cached, present := mergeCache.Get(&PredictionContextPair{b, a}); present {
			return cached
		}
	}

	rootMerge := mergeRoot(a, b, rootIsWildcard)
	if rootMerge != nil {
		if mergeCache != nil {
			mergeCache.Put(&PredictionContextPair{a, b}, rootMerge)
		}
		return rootMerge
	}

	if a.returnState == b.returnState {
		parent := MergePredictionContexts(a.parent, b.parent, rootIsWildcard, mergeCache)
		if parent == a.parent {
			return a
		}
		if parent == b.parent {
			return b
		}
		merged := NewSingletonPredictionContext(parent, a.returnState)
		if mergeCache != nil {
			mergeCache.Put(&PredictionContextPair{a, b}, merged)
		}
		return merged
	}

	// Different return states.
	var singleParent PredictionContext
	if a.parent != nil && b.parent != nil && (a.parent == b.parent || a.parent.Equals(b.parent)) {
		singleParent = a.parent
	}

	var merged PredictionContext
	if singleParent != nil {
		states := []int{a.returnState, b.returnState}
		if a.returnState > b.returnState {
			states = []int{b.returnState, a.returnState}
		}
		merged = NewArrayPredictionContext([]PredictionContext{singleParent, singleParent}, states)
	} else {
		parents := []PredictionContext{a.parent, b.parent}
		states := []int{a.returnState, b.returnState}
		if a.returnState > b.returnState {
			parents = []PredictionContext{b.parent, a.parent}
			states = []int{b.returnState, a.returnState}
		}
		merged = NewArrayPredictionContext(parents, states)
	}

	if mergeCache != nil {
		mergeCache.Put(&PredictionContextPair{a, b}, merged)
	}
	return merged
}

// mergeRoot handles the empty-context cases named in §4.2.
func mergeRoot(a, b *SingletonPredictionContext, rootIsWildcard bool) PredictionContext {
	if rootIsWildcard {
		if isEmptyContextHolder(a) {
			return EmptyPredictionContext
		}
		if isEmptyContextHolder(b) {
			return EmptyPredictionContext
		}
		return nil
	}

	aEmpty := a.parent == nil && a.returnState == EmptyReturnState
	bEmpty := b.parent == nil && b.returnState == EmptyReturnState
	if aEmpty && bEmpty {
		return EmptyPredictionContext
	}
	if aEmpty {
		// EMPTY + b = [b, $]
		states := []int{b.returnState, EmptyReturnState}
		parents := []PredictionContext{b.parent, nil}
		if b.returnState == EmptyReturnState {
			return b
		}
		return NewArrayPredictionContext(parents, states)
	}
	if bEmpty {
		states := []int{a.returnState, EmptyReturnState}
		parents := []PredictionContext{a.parent, nil}
		if a.returnState == EmptyReturnState {
			return a
		}
		return NewArrayPredictionContext(parents, states)
	}
	return nil
}

func isEmptyContextHolder(s *SingletonPredictionContext) bool {
	return s.parent == nil && s.returnState == EmptyReturnState
}

// mergeArrays is the linear merge over two sorted return-state sequences
// (§4.2 mergeArrays).
func mergeArrays(a, b *ArrayPredictionContext, rootIsWildcard bool, mergeCache PredictionContextMergeCache) PredictionContext {
	if mergeCache != nil {
		if cached, present := mergeCache.Get(&PredictionContextPair{a, b}); present {
			return cached
		}
		if cached, present := mergeCache.Get(&PredictionContextPair{b, a}); present {
			return cached
		}
	}

	i, j := 0, 0
	k := 0

	mergedParents := make([]PredictionContext, len(a.parents)+len(b.parents))
	mergedReturnStates := make([]int, len(a.returnStates)+len(b.returnStates))

	for i < len(a.returnStates) && j < len(b.returnStates) {
		aParent := a.parents[i]
		bParent := b.parents[j]

		if a.returnStates[i] == b.returnStates[j] {
			payload := a.returnStates[i]
			bothDollars := payload == EmptyReturnState && aParent == nil && bParent == nil
			axAX := aParent != nil && bParent != nil && (aParent == bParent || aParent.Equals(bParent))

			if bothDollars || axAX {
				mergedParents[k] = aParent
				mergedReturnStates[k] = payload
			} else {
				mergedParent := MergePredictionContexts(aParent, bParent, rootIsWildcard, mergeCache)
				mergedParents[k] = mergedParent
				mergedReturnStates[k] = payload
			}
			i++
			j++
		} else if a.returnStates[i] < b.returnStates[j] {
			mergedParents[k] = aParent
			mergedReturnStates[k] = a.returnStates[i]
			i++
		} else {
			mergedParents[k] = bParent
			mergedReturnStates[k] = b.returnStates[j]
			j++
		}
		k++
	}

	for ; i < len(a.returnStates); i++ {
		mergedParents[k] = a.parents[i]
		mergedReturnStates[k] = a.returnStates[i]
		k++
	}
	for ; j < len(b.returnStates); j++ {
		mergedParents[k] = b.parents[j]
		mergedReturnStates[k] = b.returnStates[j]
		k++
	}

	mergedParents = mergedParents[:k]
	mergedReturnStates = mergedReturnStates[:k]

	if k == 1 {
		merged := NewSingletonPredictionContext(mergedParents[0], mergedReturnStates[0])
		if mergeCache != nil {
			mergeCache.Put(&PredictionContextPair{a, b}, merged)
		}
		return merged
	}

	combineCommonParents(mergedParents)

	merged := NewArrayPredictionContext(mergedParents, mergedReturnStates)

	if merged.Equals(a) {
		merged = a
	} else if merged.Equals(b) {
		merged = b
	}

	if mergeCache != nil {
		mergeCache.Put(&PredictionContextPair{a, b}, PredictionContext(merged))
	}

	return merged
}

// combineCommonParents coalesces structurally equal parents to identical
// references after array construction (§4.2).
func combineCommonParents(parents []PredictionContext) {
	uniq := map[PredictionContext]PredictionContext{}
	for i, p := range parents {
		if p == nil {
			continue
		}
		if canonical, ok := uniq[p]; ok {
			parents[i] = canonical
			continue
		}
		found := false
		for existing := range uniq {
			if existing.Equals(p) {
				parents[i] = existing
				found = true
				break
			}
		}
		if !found {
			uniq[p] = p
		}
	}
}

// PredictionContextPair is the two-key (a, b) → merged map key for a
// prediction call's merge cache (§4.2, §5 "bounded resources"). Looking up
// (b, a) after (a, b) was inserted is permitted; callers probe both orders
// explicitly (mergeSingletons/mergeArrays above) rather than normalizing
// the key, matching the teacher's DoubleDict convention.
type PredictionContextPair struct {
	a, b PredictionContext
}

func (p *PredictionContextPair) Hash() int { return murmurCombine(p.a.Hash(), p.b.Hash()) }

func (p *PredictionContextPair) Equals(other *PredictionContextPair) bool {
	return (p.a == other.a || p.a.Equals(other.a)) && (p.b == other.b || p.b.Equals(other.b))
}

// ----- context cache (§4.2 "Context cache") --------------------------------

// PredictionContextCache is the process-wide canonicalizing map used to
// share subgraphs across deterministic-automaton states.
type PredictionContextCache struct {
	cache map[PredictionContext]PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[PredictionContext]PredictionContext)}
}

func (c *PredictionContextCache) add(ctx PredictionContext) PredictionContext {
	if ctx == EmptyPredictionContext {
		return EmptyPredictionContext
	}
	for existing := range c.cache {
		if existing.Equals(ctx) {
			return existing
		}
	}
	c.cache[ctx] = ctx
	return ctx
}

func (c *PredictionContextCache) get(ctx PredictionContext) (PredictionContext, bool) {
	for existing := range c.cache {
		if existing.Equals(ctx) {
			return existing, true
		}
	}
	return nil, false
}

// getCachedPredictionContext descends ctx, replacing each parent with its
// canonical copy from cache, tracking visited nodes to handle shared
// parents without infinite recursion (§4.2).
func getCachedPredictionContext(context PredictionContext, cache *PredictionContextCache, visited map[PredictionContext]PredictionContext) PredictionContext {
	if context.isEmpty() {
		return context
	}

	if existing, ok := visited[context]; ok {
		return existing
	}
	if existing, ok := cache.get(context); ok {
		visited[context] = existing
		return existing
	}

	changed := false
	parents := make([]PredictionContext, context.length())
	for i := 0; i < len(parents); i++ {
		parent := context.GetParent(i)
		if parent == nil {
			parents[i] = nil
			continue
		}
		cachedParent := getCachedPredictionContext(parent, cache, visited)
		if changed || cachedParent != parent {
			if !changed {
				changed = true
			}
			parents[i] = cachedParent
			continue
		}
		parents[i] = parent
	}

	if !changed {
		cache.add(context)
		visited[context] = context
		return context
	}

	var updated PredictionContext
	if len(parents) == 1 {
		updated = NewSingletonPredictionContext(parents[0], context.getReturnState(0))
	} else {
		states := make([]int, len(parents))
		for i := range states {
			states[i] = context.getReturnState(i)
		}
		updated = NewArrayPredictionContext(parents, states)
	}

	canonical := cache.add(updated)
	visited[context] = canonical
	visited[updated] = canonical
	return canonical
}

// sortedReturnStates is a small helper the tests use to confirm the §3
// array-ordering invariant; no production code calls it.
func sortedReturnStates(states []int) bool {
	return slices.IsSortedFunc(states, func(a, b int) int {
		ra, rb := a, b
		if ra == EmptyReturnState {
			ra = 1 << 31
		}
		if rb == EmptyReturnState {
			rb = 1 << 31
		}
		return ra - rb
	})
}
