// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sort"
)

// SemanticContext is the tree over NONE / Predicate / PrecedencePredicate /
// And / Or described in §3. It simplifies on construction (NewAnd/NewOr)
// rather than lazily, so every SemanticContext reachable from a
// configuration is already in simplified form and hashing/equality never
// has to look through redundant structure.
type SemanticContext interface {
	evaluate(parser Recognizer, outerContext RuleContext) bool
	evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext
	// Equals/Hash let And/Or dedupe operands and let ATNConfigSet key a
	// configuration by (state, alt, semanticContext) (§4.3).
	Equals(other SemanticContext) bool
	Hash() int
	String() string
}

// SemanticContextNone is the always-true context; NONE ∧ x = x and
// NONE ∨ x = NONE (§3 simplification rules).
var SemanticContextNone SemanticContext = &semanticContextNoneImpl{}

type semanticContextNoneImpl struct{}

func (s *semanticContextNoneImpl) evaluate(Recognizer, RuleContext) bool { return true }

func (s *semanticContextNoneImpl) evalPrecedence(Recognizer, RuleContext) SemanticContext { return s }

func (s *semanticContextNoneImpl) Equals(other SemanticContext) bool {
	_, ok := other.(*semanticContextNoneImpl)
	return ok
}

func (s *semanticContextNoneImpl) Hash() int { return 1 }

func (s *semanticContextNoneImpl) String() string { return "" }

// Predicate references a user-written `{...}?` predicate the external
// recognizer evaluates (§6 Sempred).
type Predicate struct {
	ruleIndex      int
	predIndex      int
	isCtxDependent bool
}

func NewPredicate(ruleIndex, predIndex int, isCtxDependent bool) *Predicate {
	return &Predicate{ruleIndex: ruleIndex, predIndex: predIndex, isCtxDependent: isCtxDependent}
}

func (p *Predicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	var localctx RuleContext
	if p.isCtxDependent {
		localctx = outerContext
	}
	if pp, ok := parser.(Parser); ok {
		return pp.Sempred(localctx, p.ruleIndex, p.predIndex)
	}
	return true
}

func (p *Predicate) evalPrecedence(Recognizer, RuleContext) SemanticContext { return p }

func (p *Predicate) Equals(other SemanticContext) bool {
	o, ok := other.(*Predicate)
	return ok && p.ruleIndex == o.ruleIndex && p.predIndex == o.predIndex && p.isCtxDependent == o.isCtxDependent
}

func (p *Predicate) Hash() int {
	return murmurCombine(murmurCombine(p.ruleIndex, p.predIndex), boolToInt(p.isCtxDependent))
}

func (p *Predicate) String() string {
	return fmt.Sprintf("{%d:%d}?", p.ruleIndex, p.predIndex)
}

// PrecedencePredicate implements the left-recursion precedence test
// "current precedence >= precedence" (§4.4.8).
type PrecedencePredicate struct {
	precedence int
}

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{precedence: precedence}
}

func (p *PrecedencePredicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	if pp, ok := parser.(Parser); ok {
		return pp.Precpred(outerContext, p.precedence)
	}
	return true
}

func (p *PrecedencePredicate) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	if p.evaluate(parser, outerContext) {
		return SemanticContextNone
	}
	return nil
}

func (p *PrecedencePredicate) compareTo(other *PrecedencePredicate) int {
	return p.precedence - other.precedence
}

func (p *PrecedencePredicate) Equals(other SemanticContext) bool {
	o, ok := other.(*PrecedencePredicate)
	return ok && p.precedence == o.precedence
}

func (p *PrecedencePredicate) Hash() int { return murmurCombine(1, p.precedence) }

func (p *PrecedencePredicate) String() string { return fmt.Sprintf("{%d>=prec}?", p.precedence) }

// AND is a conjunction of operands; And ∧ NONE collapses (§3).
type AND struct {
	opnds []SemanticContext
}

// NewAnd builds the simplified conjunction of a and b: NONE operands drop
// out, nested Ands flatten, duplicate operands dedupe, and only the
// minimum-precedence PrecedencePredicate survives.
func NewAnd(a, b SemanticContext) SemanticContext {
	var operands []SemanticContext
	flattenAnd(a, &operands)
	flattenAnd(b, &operands)

	precedencePredicates := filterPrecedencePredicates(&operands)
	if len(precedencePredicates) > 0 {
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return precedencePredicates[i].compareTo(precedencePredicates[j]) < 0
		})
		operands = append(operands, precedencePredicates[0])
	}

	operands = dedupeSemanticContexts(operands)

	if len(operands) == 0 {
		return SemanticContextNone
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return &AND{opnds: operands}
}

func flattenAnd(ctx SemanticContext, out *[]SemanticContext) {
	if ctx == SemanticContextNone {
		return
	}
	if and, ok := ctx.(*AND); ok {
		*out = append(*out, and.opnds...)
		return
	}
	*out = append(*out, ctx)
}

func (a *AND) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, opnd := range a.opnds {
		if !opnd.evaluate(parser, outerContext) {
			return false
		}
	}
	return true
}

// evalPrecedence is non-short-circuiting: every operand is reduced so
// every operand participates in simplification (§3), even though And's
// runtime evaluate() is short-circuiting.
func (a *AND) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	operands := make([]SemanticContext, 0, len(a.opnds))
	for _, ctx := range a.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != ctx
		if evaluated == nil {
			return nil // a precedence predicate failed outright: AND fails
		}
		if evaluated != SemanticContextNone {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNone
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = NewAnd(result, o)
	}
	return result
}

func (a *AND) Equals(other SemanticContext) bool {
	o, ok := other.(*AND)
	if !ok || len(o.opnds) != len(a.opnds) {
		return false
	}
	for i, opnd := range a.opnds {
		if !opnd.Equals(o.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *AND) Hash() int {
	h := 37
	for _, o := range a.opnds {
		h = murmurCombine(h, o.Hash())
	}
	return h
}

func (a *AND) String() string { return joinContexts(a.opnds, "&&") }

// OR is a disjunction of operands; Or ∨ NONE collapses to NONE (§3).
type OR struct {
	opnds []SemanticContext
}

func NewOr(a, b SemanticContext) SemanticContext {
	var operands []SemanticContext
	flattenOr(a, &operands)
	flattenOr(b, &operands)

	for _, op := range operands {
		if op == SemanticContextNone {
			return SemanticContextNone
		}
	}

	precedencePredicates := filterPrecedencePredicates(&operands)
	if len(precedencePredicates) > 0 {
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return precedencePredicates[i].compareTo(precedencePredicates[j]) > 0
		})
		operands = append(operands, precedencePredicates[0])
	}

	operands = dedupeSemanticContexts(operands)

	if len(operands) == 0 {
		return SemanticContextNone
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return &OR{opnds: operands}
}

func flattenOr(ctx SemanticContext, out *[]SemanticContext) {
	if ctx == SemanticContextNone {
		*out = append(*out, ctx) // NONE ∨ x = NONE: keep it visible so the caller collapses
		return
	}
	if or, ok := ctx.(*OR); ok {
		*out = append(*out, or.opnds...)
		return
	}
	*out = append(*out, ctx)
}

func (o *OR) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, opnd := range o.opnds {
		if opnd.evaluate(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OR) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	operands := make([]SemanticContext, 0, len(o.opnds))
	for _, ctx := range o.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != ctx
		if evaluated == SemanticContextNone {
			return SemanticContextNone // an unconditional success: whole OR succeeds
		}
		if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, op := range operands[1:] {
		result = NewOr(result, op)
	}
	return result
}

func (o *OR) Equals(other SemanticContext) bool {
	ot, ok := other.(*OR)
	if !ok || len(ot.opnds) != len(o.opnds) {
		return false
	}
	for i, opnd := range o.opnds {
		if !opnd.Equals(ot.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *OR) Hash() int {
	h := 41
	for _, op := range o.opnds {
		h = murmurCombine(h, op.Hash())
	}
	return h
}

func (o *OR) String() string { return joinContexts(o.opnds, "||") }

func filterPrecedencePredicates(operands *[]SemanticContext) []*PrecedencePredicate {
	var preds []*PrecedencePredicate
	kept := (*operands)[:0]
	for _, op := range *operands {
		if pp, ok := op.(*PrecedencePredicate); ok {
			preds = append(preds, pp)
			continue
		}
		kept = append(kept, op)
	}
	*operands = kept
	return preds
}

func dedupeSemanticContexts(operands []SemanticContext) []SemanticContext {
	out := make([]SemanticContext, 0, len(operands))
	for _, op := range operands {
		dup := false
		for _, seen := range out {
			if op.Equals(seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, op)
		}
	}
	return out
}

func joinContexts(opnds []SemanticContext, sep string) string {
	s := ""
	for i, o := range opnds {
		if i > 0 {
			s += sep
		}
		s += o.String()
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// murmurCombine is the small integer hash-combiner used throughout the
// ATN/config/context types, matching the teacher's murmurInit/murmurUpdate/
// murmurFinish convention without depending on an external hashing
// library for what amounts to combining a handful of int fields.
func murmurCombine(seed, value int) int {
	const c1 = 0xcc9e2d51
	const c2 = 0x1b873593
	h := uint32(seed)
	k := uint32(value)
	k *= c1
	k = (k << 15) | (k >> 17)
	k *= c2
	h ^= k
	h = (h << 13) | (h >> 19)
	h = h*5 + 0xe6546b64
	return int(h)
}

func murmurFinish(h int, numWords int) int {
	hh := uint32(h)
	hh ^= uint32(numWords) * 4
	hh ^= hh >> 16
	hh *= 0x85ebca6b
	hh ^= hh >> 13
	hh *= 0xc2b2ae35
	hh ^= hh >> 16
	return int(hh)
}
