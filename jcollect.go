// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Comparator is the pluggable hash/equality strategy a JMap/JStore is
// keyed by. Splitting it out (rather than requiring every key type
// implement Collectable itself) lets the same map implementation key one
// type by different equalities: full structural equality (the parser's
// closure busy sets, the prediction-context merge cache, §4.2) or a
// narrower key (ATNConfigSet's (state, alt, semanticContext) index, §4.3).
type Comparator[T any] interface {
	Hash1(T) int
	Equals2(T, T) bool
}

// ObjEqComparator adapts any Collectable[T] into a Comparator[T] by
// delegating to its own Hash/Equals methods — the default, structural-
// equality strategy used throughout this package.
type ObjEqComparator[T Collectable[T]] struct{}

func (ObjEqComparator[T]) Hash1(o T) int { return o.Hash() }

func (ObjEqComparator[T]) Equals2(a, b T) bool { return a.Equals(b) }

// JMap is a hash map keyed by a pluggable Comparator instead of Go's
// built-in comparable constraint, so keys with custom structural equality
// (PredictionContextPair, ATNConfig) can be used directly instead of
// requiring callers to pre-compute a comparable surrogate key.
type JMap[K any, V any, C Comparator[K]] struct {
	store map[int][]jMapEntry[K, V]
	cmp   C
	size  int
}

type jMapEntry[K any, V any] struct {
	key K
	val V
}

func NewJMap[K any, V any, C Comparator[K]](cmp C) *JMap[K, V, C] {
	return &JMap[K, V, C]{store: make(map[int][]jMapEntry[K, V]), cmp: cmp}
}

func (m *JMap[K, V, C]) Put(key K, val V) {
	h := m.cmp.Hash1(key)
	bucket := m.store[h]
	for i, e := range bucket {
		if m.cmp.Equals2(e.key, key) {
			bucket[i].val = val
			return
		}
	}
	m.store[h] = append(bucket, jMapEntry[K, V]{key, val})
	m.size++
}

func (m *JMap[K, V, C]) Get(key K) (V, bool) {
	h := m.cmp.Hash1(key)
	for _, e := range m.store[h] {
		if m.cmp.Equals2(e.key, key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

func (m *JMap[K, V, C]) Len() int { return m.size }

// JStore is a hash set over a pluggable Comparator, used where the
// auxiliary index needs keys without associated values (e.g. the "already
// seen" closure-busy set, §4.4.2).
type JStore[K any, C Comparator[K]] struct {
	m *JMap[K, struct{}, C]
}

func NewJStore[K any, C Comparator[K]](cmp C) *JStore[K, C] {
	return &JStore[K, C]{m: NewJMap[K, struct{}, C](cmp)}
}

func (s *JStore[K, C]) Add(key K) bool {
	if _, present := s.m.Get(key); present {
		return false
	}
	s.m.Put(key, struct{}{})
	return true
}

func (s *JStore[K, C]) Contains(key K) bool {
	_, present := s.m.Get(key)
	return present
}

func (s *JStore[K, C]) Len() int { return s.m.Len() }
