// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// RecognitionException is the common interface implemented by every
// exception the prediction engine can raise against a parser or lexer
// input. Recognition errors are recovered, not returned, because they
// surface from deep, mutually recursive closures where threading an
// error value through every frame of closure/computeReachSet would
// obscure the algorithm; callers that want a Go-style error wrap the
// recovered value at the top-level Predict/Match entry point.
type RecognitionException interface {
	error
	GetOffendingToken() Token
	GetMessage() string
	GetInputStream() IntStream
}

// BaseRecognitionException carries the fields common to every concrete
// RecognitionException variant.
type BaseRecognitionException struct {
	message        string
	recognizer     Recognizer
	offendingToken Token
	input          IntStream
	ctx            RuleContext
}

func NewBaseRecognitionException(message string, recognizer Recognizer, input IntStream, ctx RuleContext) *BaseRecognitionException {
	return &BaseRecognitionException{
		message:    message,
		recognizer: recognizer,
		input:      input,
		ctx:        ctx,
	}
}

func (b *BaseRecognitionException) GetOffendingToken() Token { return b.offendingToken }

func (b *BaseRecognitionException) GetMessage() string { return b.message }

func (b *BaseRecognitionException) GetInputStream() IntStream { return b.input }

func (b *BaseRecognitionException) Error() string { return b.message }

// NoViableAltException is raised by the adaptive prediction core (§4.4.6)
// when reach becomes empty and no syntactically-valid alternative could be
// recovered.
type NoViableAltException struct {
	*BaseRecognitionException

	// startToken is the token at which ATN simulation began.
	startToken Token
	// deadEndConfigs is the configuration set active at the point
	// prediction failed; useful to diagnostic tooling.
	deadEndConfigs *ATNConfigSet
}

func NewNoViableAltException(recognizer Recognizer, input TokenStream, startToken, offendingToken Token, deadEndConfigs *ATNConfigSet, ctx RuleContext) *NoViableAltException {
	if ctx == nil && recognizer != nil {
		ctx = recognizer.GetParserRuleContext()
	}
	if offendingToken == nil && input != nil {
		offendingToken = input.LT(1)
	}
	if startToken == nil {
		startToken = offendingToken
	}
	if input == nil && recognizer != nil {
		input = recognizer.GetInputStream().(TokenStream)
	}

	e := &NoViableAltException{
		BaseRecognitionException: NewBaseRecognitionException("", recognizer, input, ctx),
		deadEndConfigs:           deadEndConfigs,
		startToken:               startToken,
	}
	e.offendingToken = offendingToken

	return e
}

func (n *NoViableAltException) GetStartToken() Token { return n.startToken }

func (n *NoViableAltException) GetDeadEndConfigs() *ATNConfigSet { return n.deadEndConfigs }

// InputMismatchException is raised when the recognizer's match() call finds
// the current input symbol does not satisfy the expected token set.
type InputMismatchException struct {
	*BaseRecognitionException
}

func NewInputMismatchException(recognizer Parser) *InputMismatchException {
	e := &InputMismatchException{
		BaseRecognitionException: NewBaseRecognitionException("", recognizer, recognizer.GetInputStream(), recognizer.GetParserRuleContext()),
	}
	e.offendingToken = recognizer.GetCurrentToken()

	return e
}

// FailedPredicateException is raised when a semantic predicate attached to
// a rule evaluates to false during parsing.
type FailedPredicateException struct {
	*BaseRecognitionException

	ruleIndex        int
	predicateIndex   int
	predicate        string
}

func NewFailedPredicateException(recognizer Parser, predicate string, message string) *FailedPredicateException {
	e := &FailedPredicateException{
		BaseRecognitionException: NewBaseRecognitionException(formatFailedPredicateMessage(predicate, message), recognizer, recognizer.GetInputStream(), recognizer.GetParserRuleContext()),
		predicate:                predicate,
	}
	e.offendingToken = recognizer.GetCurrentToken()

	return e
}

func formatFailedPredicateMessage(predicate, message string) string {
	if message != "" {
		return message
	}
	return fmt.Sprintf("failed predicate: {%s}?", predicate)
}

// LexerNoViableAltException is raised by the lexical simulator (§4.5) when
// no lexer rule in the current mode matches the remaining input.
type LexerNoViableAltException struct {
	startIndex     int
	deadEndConfigs *ATNConfigSet
	input          CharStream
}

func NewLexerNoViableAltException(lexer Lexer, input CharStream, startIndex int, deadEndConfigs *ATNConfigSet) *LexerNoViableAltException {
	return &LexerNoViableAltException{
		startIndex:     startIndex,
		deadEndConfigs: deadEndConfigs,
		input:          input,
	}
}

func (l *LexerNoViableAltException) GetStartIndex() int { return l.startIndex }

func (l *LexerNoViableAltException) GetDeadEndConfigs() *ATNConfigSet { return l.deadEndConfigs }

func (l *LexerNoViableAltException) Error() string {
	var text string
	if l.startIndex >= 0 && l.startIndex < l.input.Size() {
		text = l.input.(CharStream).GetTextFromInterval(NewInterval(l.startIndex, l.startIndex))
	}
	return fmt.Sprintf("token recognition error at: '%s'", text)
}

// Construction-time failure kinds (§4.1, §7). Deserialize returns
// ErrUnsupportedVersion, ErrUnsupportedUUID and ErrCorruptedATN as error
// values, but its state, transition and lexer-action decoders panic with
// ErrCorruptedATN on an unknown type code. ErrSetReadonly,
// ErrUnsupportedOperation and ErrIllegalState are raised as panic values.

// ErrUnsupportedVersion is returned when a serialized ATN declares a
// version the deserializer does not support (S5).
type ErrUnsupportedVersion struct {
	Version int
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("could not deserialize ATN with version %d (expected %d)", e.Version, SerializedVersion)
}

// ErrUnsupportedUUID is returned when the 128-bit feature-revision
// identifier embedded in the serialized ATN is not the single supported
// revision, SerializedUUID.
type ErrUnsupportedUUID struct {
	UUID string
}

func (e *ErrUnsupportedUUID) Error() string {
	return fmt.Sprintf("could not deserialize ATN with UUID %s (expected %s)", e.UUID, SerializedUUID)
}

// ErrCorruptedATN is returned by deserialization verification (§4.1) when a
// structural invariant over the decoded state/transition graph does not
// hold.
type ErrCorruptedATN struct {
	Reason string
}

func (e *ErrCorruptedATN) Error() string { return fmt.Sprintf("corrupted ATN: %s", e.Reason) }

// ErrSetReadonly is the panic value raised by any mutation attempted on a
// frozen ATNConfigSet or IntervalSet (§4.3, §5).
var ErrSetReadonly = fmt.Errorf("set is read-only")

// ErrUnsupportedOperation is the panic value raised for capability mismatches that are
// only detectable at runtime, such as a precedence-predicate transition
// reached by the lexical simulator (§4.5).
type ErrUnsupportedOperation struct {
	Reason string
}

func (e *ErrUnsupportedOperation) Error() string { return fmt.Sprintf("unsupported operation: %s", e.Reason) }

// ErrIllegalState signals an internal invariant violation that is fatal to
// the current prediction call.
type ErrIllegalState struct {
	Reason string
}

func (e *ErrIllegalState) Error() string { return fmt.Sprintf("illegal state: %s", e.Reason) }
