// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNDeserializationOptions configures a single deserialization call
// (§4.1). SetReadOnly(true) freezes the options: every later setter
// panics with ErrIllegalState. NewATNDeserializer does not freeze the
// options it is given.
type ATNDeserializationOptions struct {
	readOnly               bool
	verifyATN              bool
	// generateRuleBypassTransitions is stored and reported only; the
	// deserializer never reads it.
	generateRuleBypassTransitions bool
}

// DefaultATNDeserializationOptions is shared by callers that want the
// conventional behavior (verification on, no rule-bypass transitions)
// without allocating their own options value, matching the teacher's
// package-level default instance.
var DefaultATNDeserializationOptions = &ATNDeserializationOptions{
	verifyATN: true,
}

// NewATNDeserializationOptions copies from an existing options value, or
// returns the package default's own copy when copyFrom is nil.
func NewATNDeserializationOptions(copyFrom *ATNDeserializationOptions) *ATNDeserializationOptions {
	if copyFrom == nil {
		copyFrom = DefaultATNDeserializationOptions
	}
	opts := *copyFrom
	opts.readOnly = false
	return &opts
}

func (o *ATNDeserializationOptions) ReadOnly() bool { return o.readOnly }

func (o *ATNDeserializationOptions) SetReadOnly(v bool) { o.checkNotReadOnly(); o.readOnly = v }

func (o *ATNDeserializationOptions) VerifyATN() bool { return o.verifyATN }

func (o *ATNDeserializationOptions) SetVerifyATN(v bool) { o.checkNotReadOnly(); o.verifyATN = v }

func (o *ATNDeserializationOptions) GenerateRuleBypassTransitions() bool {
	return o.generateRuleBypassTransitions
}

func (o *ATNDeserializationOptions) SetGenerateRuleBypassTransitions(v bool) {
	o.checkNotReadOnly()
	o.generateRuleBypassTransitions = v
}

func (o *ATNDeserializationOptions) checkNotReadOnly() {
	if o.readOnly {
		panic(&ErrIllegalState{Reason: "cannot mutate a read-only ATNDeserializationOptions"})
	}
}
