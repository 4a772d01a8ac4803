package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ChainSafe/stackapp/parser"
)

func TestExecScenario(t *testing.T) {
	s := New(3, nil)

	steps := []struct {
		line     string
		outcome  Outcome
		message  string
		contents string
	}{
		{"push 2", OutcomePushed, "2 is pushed. Stack [2]", "[2]"},
		{"push 4", OutcomePushed, "4 is pushed. Stack [2 4]", "[2 4]"},
		{"push 6", OutcomePushed, "6 is pushed. Stack [2 4 6]", "[2 4 6]"},
		{"push 8", OutcomeFull, "Stack is FULL. Stack [2 4 6]", "[2 4 6]"},
		{"pop", OutcomePopped, "6 is popped. Stack [2 4]", "[2 4]"},
		{"pop", OutcomePopped, "4 is popped. Stack [2]", "[2]"},
		{"pop", OutcomePopped, "2 is popped. Stack [ ]", "[ ]"},
		{"pop", OutcomeEmpty, "Stack is EMPTY. Stack [ ]", "[ ]"},
	}
	for _, step := range steps {
		res := s.Exec(step.line)
		assert.Equal(t, step.outcome, res.Outcome, step.line)
		assert.Equal(t, step.message, res.Message, step.line)
		assert.Equal(t, step.contents, res.Contents, step.line)
		assert.False(t, res.Quit())
	}
}

func TestExecInvalid(t *testing.T) {
	s := New(3, nil)
	s.Exec("push 1")

	cases := map[string]string{
		"":        "Please enter a command (push X, pop, or quit)",
		"push8":   "Format Error: Missing space between 'push' and '8'. Use: push 8",
		"push":    "Invalid push format. Use: push X (where X is 0-9)",
		"push 12": "Error: Value must be a single digit (0-9)",
		"dance":   "Invalid command. Use: push X (0-9), pop, or quit",
	}
	for line, want := range cases {
		res := s.Exec(line)
		assert.Equal(t, OutcomeInvalid, res.Outcome, line)
		assert.Equal(t, want, res.Message, line)
		assert.Equal(t, "[1]", res.Contents, line)
	}
	assert.Equal(t, 1, s.Snapshot().Size)
}

func TestExecLooseSpacing(t *testing.T) {
	s := New(3, nil)
	res := s.Exec("  push   3 ")
	assert.Equal(t, OutcomePushed, res.Outcome)
	assert.Equal(t, "3 is pushed. Stack [3]", res.Message)
}

func TestExecQuit(t *testing.T) {
	s := New(3, nil)
	res := s.Exec("QUIT")
	assert.True(t, res.Quit())
	assert.Equal(t, "Exiting application...", res.Message)
}

func TestApplyUnsupported(t *testing.T) {
	s := New(3, nil)
	res := s.Apply(parser.Command{Op: "peek"})
	assert.Equal(t, OutcomeInvalid, res.Outcome)
	assert.Equal(t, "[ ]", res.Contents)
}

func TestSnapshot(t *testing.T) {
	s := New(4, nil)
	snap := s.Snapshot()
	assert.Equal(t, "Ready. Enter a command.", snap.Result.Message)
	assert.Empty(t, snap.Values)
	assert.Equal(t, 4, snap.Capacity)

	s.Exec("push 5")
	s.Exec("push 3")
	snap = s.Snapshot()
	assert.Equal(t, []int{5, 3}, snap.Values)
	assert.Equal(t, 2, snap.Size)
	assert.Equal(t, OutcomePushed, snap.Result.Outcome)
	assert.Equal(t, 3, snap.Result.Value)
	assert.Equal(t, "[5 3]", s.Contents())
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(1, zap.New(core).Sugar())

	s.Exec("pop")
	s.Exec("push 1")
	s.Exec("push 2")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "pop rejected, stack empty", entries[0].Message)
	assert.Equal(t, "push rejected, stack full", entries[1].Message)
	assert.EqualValues(t, 2, entries[1].ContextMap()["value"])
}
