// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// suppressPrecedenceFilterBit is the high bit of reachesIntoOuterContext
// used to encode the "precedence-filter suppressed" flag without growing
// the struct (§3): equality ignores its numeric magnitude but uses its
// boolean value.
const suppressPrecedenceFilterBit = 0x40000000

// ATNConfig is the (state, alt, context) triple explored during
// prediction (§3), plus a semantic context and the precedence-filter
// suppression flag packed into reachesIntoOuterContext's high bit.
type ATNConfig struct {
	state                   ATNState
	alt                     int
	context                 PredictionContext
	semanticContext         SemanticContext
	reachesIntoOuterContext int

	// lexer-only fields (§3 "lexer variant"); zero-valued and ignored for
	// parser configurations.
	lexerActionExecutor        *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

func NewATNConfig(state ATNState, alt int, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if semanticContext == nil {
		semanticContext = SemanticContextNone
	}
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: semanticContext}
}

// NewATNConfigFrom builds a new configuration at a different state/context
// while copying the other fields from c, the way closure() derives
// successor configurations (§4.4.2).
func NewATNConfigFrom(c *ATNConfig, state ATNState, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if semanticContext == nil {
		semanticContext = c.semanticContext
	}
	return &ATNConfig{
		state:                          state,
		alt:                            c.alt,
		context:                        context,
		semanticContext:                semanticContext,
		reachesIntoOuterContext:        c.reachesIntoOuterContext,
		lexerActionExecutor:            c.lexerActionExecutor,
		passedThroughNonGreedyDecision: c.passedThroughNonGreedyDecision,
	}
}

func (c *ATNConfig) GetState() ATNState { return c.state }

func (c *ATNConfig) GetAlt() int { return c.alt }

func (c *ATNConfig) GetContext() PredictionContext { return c.context }

func (c *ATNConfig) SetContext(ctx PredictionContext) { c.context = ctx }

func (c *ATNConfig) GetSemanticContext() SemanticContext { return c.semanticContext }

// outerContextDepth returns how far this configuration has dipped into an
// outer (enclosing) rule context — the magnitude half of
// reachesIntoOuterContext, with the suppression flag masked out.
func (c *ATNConfig) outerContextDepth() int {
	return c.reachesIntoOuterContext &^ suppressPrecedenceFilterBit
}

func (c *ATNConfig) incrementOuterContextDepth() {
	c.reachesIntoOuterContext = (c.outerContextDepth() + 1) | (c.reachesIntoOuterContext & suppressPrecedenceFilterBit)
}

func (c *ATNConfig) getPrecedenceFilterSuppressed() bool {
	return c.reachesIntoOuterContext&suppressPrecedenceFilterBit != 0
}

func (c *ATNConfig) setPrecedenceFilterSuppressed(v bool) {
	if v {
		c.reachesIntoOuterContext |= suppressPrecedenceFilterBit
	} else {
		c.reachesIntoOuterContext &^= suppressPrecedenceFilterBit
	}
}

func (c *ATNConfig) GetLexerActionExecutor() *LexerActionExecutor { return c.lexerActionExecutor }

func (c *ATNConfig) SetLexerActionExecutor(e *LexerActionExecutor) { c.lexerActionExecutor = e }

func (c *ATNConfig) GetPassedThroughNonGreedyDecision() bool { return c.passedThroughNonGreedyDecision }

func (c *ATNConfig) SetPassedThroughNonGreedyDecision(v bool) { c.passedThroughNonGreedyDecision = v }

// Hash/Equals implement Collectable[*ATNConfig]. Equality ignores the
// suppression flag's numeric magnitude but uses its boolean value, per
// §3: "Equality ignores that flag's numeric magnitude but uses its
// boolean value".
func (c *ATNConfig) Equals(other *ATNConfig) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	if c.state.GetStateNumber() != other.state.GetStateNumber() {
		return false
	}
	if c.alt != other.alt {
		return false
	}
	if c.getPrecedenceFilterSuppressed() != other.getPrecedenceFilterSuppressed() {
		return false
	}
	if !(c.context == other.context || c.context.Equals(other.context)) {
		return false
	}
	if !c.semanticContext.Equals(other.semanticContext) {
		return false
	}
	if c.passedThroughNonGreedyDecision != other.passedThroughNonGreedyDecision {
		return false
	}
	return lexerActionExecutorsEqual(c.lexerActionExecutor, other.lexerActionExecutor)
}

func (c *ATNConfig) Hash() int {
	h := murmurCombine(0, c.state.GetStateNumber())
	h = murmurCombine(h, c.alt)
	h = murmurCombine(h, c.context.Hash())
	h = murmurCombine(h, c.semanticContext.Hash())
	return murmurFinish(h, 4)
}

func (c *ATNConfig) String() string {
	contents := fmt.Sprintf("(%s,%d", c.state, c.alt)
	if c.context != nil {
		contents += fmt.Sprintf(",[%s]", c.context)
	}
	if c.semanticContext != SemanticContextNone {
		contents += fmt.Sprintf(",%s", c.semanticContext)
	}
	if c.outerContextDepth() > 0 {
		contents += fmt.Sprintf(",up=%d", c.outerContextDepth())
	}
	return contents + ")"
}

// atnConfigComparator is the full structural-equality Comparator
// (ATNConfig.Equals); the parser simulator keys each closure call's busy
// set with it (parserClosureComparator). The configuration set's index
// uses atnConfigKeyComparator instead.
type atnConfigComparator struct{}

func (atnConfigComparator) Hash1(c *ATNConfig) int { return c.Hash() }

func (atnConfigComparator) Equals2(a, b *ATNConfig) bool { return a.Equals(b) }

// atnConfigIdentityComparator compares configurations by identity, so
// two structurally equal but distinct objects count as different keys.
// No collection in this package is keyed by it: the lexer's "ordered"
// configuration set (§4.3) keeps every entry by appending, without a
// comparator.
type atnConfigIdentityComparator struct{}

func (atnConfigIdentityComparator) Hash1(c *ATNConfig) int { return c.Hash() }

func (atnConfigIdentityComparator) Equals2(a, b *ATNConfig) bool { return a == b }

// atnConfigKeyComparator keys purely by (state, alt, semanticContext) —
// the auxiliary index's key shape (§3 "Configuration set"), distinct from
// full configuration equality which also considers context.
type atnConfigKeyComparator struct{}

func (atnConfigKeyComparator) Hash1(c *ATNConfig) int {
	h := murmurCombine(0, c.state.GetStateNumber())
	h = murmurCombine(h, c.alt)
	h = murmurCombine(h, c.semanticContext.Hash())
	return murmurFinish(h, 3)
}

func (atnConfigKeyComparator) Equals2(a, b *ATNConfig) bool {
	return a.state.GetStateNumber() == b.state.GetStateNumber() &&
		a.alt == b.alt &&
		a.semanticContext.Equals(b.semanticContext)
}
