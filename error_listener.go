// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"os"
)

// ErrorListener is the external collaborator (§6) that a recognizer
// reports syntax errors and adaptive-prediction diagnostics to. The three
// Report methods are advisory: a grammar with no ambiguity will never
// trigger them, and a listener that ignores them loses nothing but
// visibility into how prediction resolved a decision.
type ErrorListener interface {
	// SyntaxError reports that recognizer could not match offendingSymbol
	// against any alternative at the given position.
	SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException)

	// ReportAmbiguity reports that more than one alternative viably
	// matches the input between startIndex and stopIndex (§4.4.6). exact
	// is true when every conflicting alternative was shown to match
	// identically far into the input rather than merely conflicting on
	// an SLL approximation.
	ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet)

	// ReportAttemptingFullContext reports that SLL prediction could not
	// resolve a decision on its own and full-context (ALL(*)) simulation
	// is about to re-run from startIndex (§4.4.3).
	ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet)

	// ReportContextSensitivity reports that full-context simulation
	// resolved the decision to prediction, but only by consulting outer
	// calling context the SLL pass could not see (§4.4.3).
	ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet)
}

// BaseErrorListener implements every ErrorListener method as a no-op so
// concrete listeners only need to override what they care about.
type BaseErrorListener struct{}

func (b *BaseErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
}

func (b *BaseErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
}

func (b *BaseErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
}

func (b *BaseErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
}

// ConsoleErrorListener writes syntax errors to os.Stderr in the
// conventional "line L:C msg" form and otherwise does nothing; it is the
// listener every recognizer carries by default.
type ConsoleErrorListener struct {
	BaseErrorListener
}

var ConsoleErrorListenerINSTANCE = &ConsoleErrorListener{}

func NewConsoleErrorListener() *ConsoleErrorListener { return &ConsoleErrorListener{} }

func (c *ConsoleErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
	fmt.Fprintf(os.Stderr, "line %d:%d %s\n", line, column, msg)
}

// DiagnosticErrorListener surfaces the three advisory prediction events
// (§6) to os.Stderr, in the terse start:stop interval form a grammar
// author needs to locate the offending input span; reportAmbiguity only
// emits when exactOnly is false or the ambiguity was shown exact, since
// SLL-approximate conflicts that full-context simulation later resolves
// are expected traffic in any sufficiently large grammar.
type DiagnosticErrorListener struct {
	BaseErrorListener

	exactOnly bool
}

func NewDiagnosticErrorListener(exactOnly bool) *DiagnosticErrorListener {
	return &DiagnosticErrorListener{exactOnly: exactOnly}
}

func (d *DiagnosticErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	if d.exactOnly && !exact {
		return
	}
	fmt.Fprintf(os.Stderr, "ambiguity at %s: ambigAlts=%s\n",
		d.intervalString(startIndex, stopIndex), d.altsString(ambigAlts, configs))
}

func (d *DiagnosticErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	fmt.Fprintf(os.Stderr, "reportAttemptingFullContext at %s\n", d.intervalString(startIndex, stopIndex))
}

func (d *DiagnosticErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	fmt.Fprintf(os.Stderr, "reportContextSensitivity at %s\n", d.intervalString(startIndex, stopIndex))
}

func (d *DiagnosticErrorListener) intervalString(startIndex, stopIndex int) string {
	return fmt.Sprintf("%d:%d", startIndex, stopIndex)
}

func (d *DiagnosticErrorListener) altsString(ambigAlts *BitSet, configs *ATNConfigSet) string {
	if ambigAlts != nil {
		return ambigAlts.String()
	}
	return getAlts(configs).String()
}

// ProxyErrorListener fans a single recognizer event out to every listener
// registered on it, so a recognizer need only ever invoke one dispatch
// (§6 "an external listener" is really a set of them).
type ProxyErrorListener struct {
	BaseErrorListener

	delegates []ErrorListener
}

func NewProxyErrorListener(delegates []ErrorListener) *ProxyErrorListener {
	return &ProxyErrorListener{delegates: delegates}
}

func (p *ProxyErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
	for _, d := range p.delegates {
		d.SyntaxError(recognizer, offendingSymbol, line, column, msg, e)
	}
}

func (p *ProxyErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAmbiguity(recognizer, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
	}
}

func (p *ProxyErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAttemptingFullContext(recognizer, dfa, startIndex, stopIndex, conflictingAlts, configs)
	}
}

func (p *ProxyErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportContextSensitivity(recognizer, dfa, startIndex, stopIndex, prediction, configs)
	}
}
