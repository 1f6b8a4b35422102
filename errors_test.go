package antlr

import "testing"

// mockTokenStream is a minimal TokenStream backed by a fixed token slice,
// just enough to drive NoViableAltException construction.
type mockTokenStream struct {
	tokens []Token
	index  int
}

func (m *mockTokenStream) Consume()             { m.index++ }
func (m *mockTokenStream) LA(offset int) int    { return m.LT(offset).GetTokenType() }
func (m *mockTokenStream) Mark() int            { return -1 }
func (m *mockTokenStream) Release(int)          {}
func (m *mockTokenStream) Index() int           { return m.index }
func (m *mockTokenStream) Seek(index int)       { m.index = index }
func (m *mockTokenStream) Size() int            { return len(m.tokens) }
func (m *mockTokenStream) GetSourceName() string { return "<mock>" }
func (m *mockTokenStream) LT(k int) Token {
	i := m.index + k - 1
	if i < 0 || i >= len(m.tokens) {
		return NewCommonToken(TokenEOF, 0, 0)
	}
	return m.tokens[i]
}
func (m *mockTokenStream) Get(index int) Token             { return m.tokens[index] }
func (m *mockTokenStream) GetTokenSource() Lexer            { return nil }
func (m *mockTokenStream) GetAllText() string               { return "" }
func (m *mockTokenStream) GetTextFromInterval(*Interval) string { return "" }

// mockParser is a minimal Parser stand-in for exception-construction tests.
type mockParser struct {
	current    Token
	tokens     *mockTokenStream
	precedence int
}

func (p *mockParser) GetATN() *ATN                           { return nil }
func (p *mockParser) GetErrorListenerDispatch() ErrorListener { return nil }
func (p *mockParser) GetParserRuleContext() RuleContext       { return nil }
func (p *mockParser) GetInputStream() IntStream               { return p.tokens }
func (p *mockParser) Sempred(RuleContext, int, int) bool      { return true }
func (p *mockParser) Precpred(RuleContext, int) bool          { return p.precedence >= 0 }
func (p *mockParser) GetPrecedence() int                      { return p.precedence }
func (p *mockParser) GetCurrentToken() Token                  { return p.current }
func (p *mockParser) GetTokenStream() TokenStream              { return p.tokens }
func (p *mockParser) NotifyErrorListeners(string, Token, RecognitionException) {}

func TestNoViableAltExceptionDefaultsOffendingTokenFromStream(t *testing.T) {
	tok := NewCommonToken(7, 0, 0)
	stream := &mockTokenStream{tokens: []Token{tok}, index: 0}

	e := NewNoViableAltException(nil, stream, nil, nil, nil, nil)
	if e.GetOffendingToken() != tok {
		t.Error("expected a nil offendingToken to default to input.LT(1)")
	}
	if e.GetStartToken() != tok {
		t.Error("expected a nil startToken to default to the resolved offending token")
	}
}

func TestNoViableAltExceptionKeepsExplicitOffendingToken(t *testing.T) {
	streamTok := NewCommonToken(7, 0, 0)
	explicit := NewCommonToken(9, 1, 1)
	stream := &mockTokenStream{tokens: []Token{streamTok}, index: 0}

	e := NewNoViableAltException(nil, stream, nil, explicit, nil, nil)
	if e.GetOffendingToken() != explicit {
		t.Error("expected an explicitly supplied offendingToken to be kept, not overwritten")
	}
}

func TestNoViableAltExceptionCarriesDeadEndConfigs(t *testing.T) {
	configs := NewATNConfigSet(false)
	stream := &mockTokenStream{tokens: []Token{NewCommonToken(1, 0, 0)}}

	e := NewNoViableAltException(nil, stream, nil, nil, configs, nil)
	if e.GetDeadEndConfigs() != configs {
		t.Error("expected GetDeadEndConfigs() to return the configs passed to the constructor")
	}
}

func TestInputMismatchExceptionUsesParserCurrentToken(t *testing.T) {
	tok := NewCommonToken(3, 0, 0)
	p := &mockParser{current: tok, tokens: &mockTokenStream{}}

	e := NewInputMismatchException(p)
	if e.GetOffendingToken() != tok {
		t.Error("expected InputMismatchException to capture the parser's current token")
	}
}

func TestFailedPredicateExceptionDefaultMessage(t *testing.T) {
	p := &mockParser{current: NewCommonToken(1, 0, 0), tokens: &mockTokenStream{}}
	e := NewFailedPredicateException(p, "x > 0", "")

	if got, want := e.Error(), "failed predicate: {x > 0}?"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFailedPredicateExceptionExplicitMessage(t *testing.T) {
	p := &mockParser{current: NewCommonToken(1, 0, 0), tokens: &mockTokenStream{}}
	e := NewFailedPredicateException(p, "x > 0", "custom message")

	if got := e.Error(); got != "custom message" {
		t.Errorf("Error() = %q, want the explicit message to override the default format", got)
	}
}

func TestLexerNoViableAltExceptionErrorMessage(t *testing.T) {
	input := NewInputStream("abc")
	e := NewLexerNoViableAltException(nil, input, 1, nil)

	if got, want := e.Error(), "token recognition error at: 'b'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLexerNoViableAltExceptionOutOfRangeStartIndex(t *testing.T) {
	input := NewInputStream("abc")
	e := NewLexerNoViableAltException(nil, input, 99, nil)

	if got, want := e.Error(), "token recognition error at: ''"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrUnsupportedVersionMessage(t *testing.T) {
	e := &ErrUnsupportedVersion{Version: 999}
	if e.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestErrCorruptedATNMessageIncludesReason(t *testing.T) {
	e := &ErrCorruptedATN{Reason: "dangling edge"}
	if got, want := e.Error(), "corrupted ATN: dangling edge"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrSetReadonlyIsSentinel(t *testing.T) {
	if ErrSetReadonly.Error() != "set is read-only" {
		t.Errorf("unexpected ErrSetReadonly message: %q", ErrSetReadonly.Error())
	}
}
