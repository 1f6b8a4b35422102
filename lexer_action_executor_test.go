package antlr

import "testing"

func TestLexerActionExecutorHashIndependentOfSlice(t *testing.T) {
	a := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(1), NewLexerSkipAction()})
	b := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(1), NewLexerSkipAction()})

	if a.Hash() != b.Hash() {
		t.Error("expected executors built from equal action lists to hash identically")
	}
	if !a.Equals(b) {
		t.Error("expected executors built from equal action lists to be equal")
	}
}

func TestLexerActionExecutorEqualsDetectsDifference(t *testing.T) {
	a := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(1)})
	b := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(2)})

	if a.Equals(b) {
		t.Error("expected executors with different actions to be unequal")
	}
}

func TestLexerActionExecutorEqualsHandlesNil(t *testing.T) {
	a := NewLexerActionExecutor([]LexerAction{NewLexerSkipAction()})

	if a.Equals(nil) {
		t.Error("expected a non-nil executor to be unequal to nil")
	}
	var n *LexerActionExecutor
	if !n.Equals(nil) {
		t.Error("expected two nil executors to be equal")
	}
}

func TestAppendLexerActionExecutorFromNilBase(t *testing.T) {
	e := AppendLexerActionExecutor(nil, NewLexerSkipAction())
	if len(e.GetLexerActions()) != 1 {
		t.Fatalf("expected a single action, got %d", len(e.GetLexerActions()))
	}
}

func TestAppendLexerActionExecutorPreservesBase(t *testing.T) {
	base := NewLexerActionExecutor([]LexerAction{NewLexerSkipAction()})
	appended := AppendLexerActionExecutor(base, NewLexerMoreAction())

	if len(base.GetLexerActions()) != 1 {
		t.Error("expected appending to leave the base executor untouched")
	}
	if len(appended.GetLexerActions()) != 2 {
		t.Fatalf("expected the appended executor to carry 2 actions, got %d", len(appended.GetLexerActions()))
	}
}

func TestFixOffsetBeforeMatchWrapsOnlyPositionDependentActions(t *testing.T) {
	base := NewLexerActionExecutor([]LexerAction{
		NewLexerSkipAction(),
		NewLexerCustomAction(1, 2),
	})
	fixed := base.fixOffsetBeforeMatch(5)

	if fixed == base {
		t.Fatal("expected fixOffsetBeforeMatch to return a new executor when a position-dependent action is present")
	}
	actions := fixed.GetLexerActions()
	if _, ok := actions[0].(*LexerSkipAction); !ok {
		t.Errorf("expected the non-position-dependent action to be left untouched, got %T", actions[0])
	}
	indexed, ok := actions[1].(*LexerIndexedCustomAction)
	if !ok {
		t.Fatalf("expected the custom action to be wrapped in LexerIndexedCustomAction, got %T", actions[1])
	}
	if indexed.offset != 5 {
		t.Errorf("expected the wrapped action to record offset 5, got %d", indexed.offset)
	}
}

func TestFixOffsetBeforeMatchNoPositionDependentActionsReturnsSame(t *testing.T) {
	base := NewLexerActionExecutor([]LexerAction{NewLexerSkipAction(), NewLexerTypeAction(3)})
	fixed := base.fixOffsetBeforeMatch(5)

	if fixed != base {
		t.Error("expected fixOffsetBeforeMatch to return the same executor when nothing needs wrapping")
	}
}

func TestLexerActionExecutorExecuteSeeksToOffsetAndRestores(t *testing.T) {
	input := NewInputStream("abcdef")
	input.Seek(4) // simulate the simulator having advanced past the match

	custom := NewLexerCustomAction(0, 0)
	indexed := NewLexerIndexedCustomAction(1, custom)
	executor := NewLexerActionExecutor([]LexerAction{indexed})

	l := &mockLexer{}
	executor.Execute(l, input, 0)

	if !l.actionCalled {
		t.Error("expected the wrapped custom action to run")
	}
	if input.Index() != 4 {
		t.Errorf("expected the stream position to be restored to 4 after execution, got %d", input.Index())
	}
}

func TestLexerActionExecutorExecuteNonIndexedPositionDependentSeeksToStop(t *testing.T) {
	input := NewInputStream("abcdef")
	input.Seek(3)

	custom := NewLexerCustomAction(0, 0)
	executor := NewLexerActionExecutor([]LexerAction{custom})

	l := &mockLexer{}
	executor.Execute(l, input, 0)

	if !l.actionCalled {
		t.Error("expected the custom action to run")
	}
	if input.Index() != 3 {
		t.Errorf("expected the stream position to stay at the stop index 3, got %d", input.Index())
	}
}
