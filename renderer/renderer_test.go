package renderer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/stackapp/profile"
	"github.com/ChainSafe/stackapp/session"
)

func snapshotOf(t *testing.T, lines ...string) session.Snapshot {
	t.Helper()
	s := session.New(3, nil)
	for _, l := range lines {
		s.Exec(l)
	}
	return s.Snapshot()
}

func TestTextRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewTextRenderer(profile.Default())
	require.NoError(t, r.Render(snapshotOf(t, "push 5", "push 3", "push 7"), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Output: 7 is pushed. Stack [5 3 7]", lines[0])
	// top of the stack is drawn first
	assert.Equal(t, "7", strings.TrimSpace(lines[1]))
	assert.Equal(t, "3", strings.TrimSpace(lines[2]))
	assert.Equal(t, "5", strings.TrimSpace(lines[3]))
	assert.Equal(t, "Size: 3/3", lines[4])
}

func TestTextRendererEmpty(t *testing.T) {
	var out bytes.Buffer
	r := NewTextRenderer(nil)
	require.NoError(t, r.Render(snapshotOf(t, "pop"), &out))
	assert.Equal(t, "Output: Stack is EMPTY. Stack [ ]\nStack is empty\nSize: 0/3\n", out.String())
}

func TestColorFor(t *testing.T) {
	r := NewTextRenderer(&profile.Profile{Colors: map[string]string{"2": "#123456"}}).(*TextRenderer)
	assert.Equal(t, "#E57373", r.ColorFor(0))
	assert.Equal(t, "#123456", r.ColorFor(2))
	assert.Equal(t, "#FFB74D", r.ColorFor(9))
	assert.Equal(t, colorOther, r.ColorFor(10))
	assert.Equal(t, colorOther, r.ColorFor(-1))
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewJSONRenderer()
	require.NoError(t, r.Render(snapshotOf(t, "push 2", "push 4", "pop"), &out))

	var got session.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []int{2}, got.Values)
	assert.Equal(t, session.OutcomePopped, got.Result.Outcome)
	assert.Equal(t, 4, got.Result.Value)
	assert.Equal(t, "[2]", got.Result.Contents)
	assert.Equal(t, 3, got.Capacity)
}

func TestJSONRendererEmptyValues(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(session.Snapshot{Capacity: 3}, &out))
	assert.Contains(t, out.String(), `"values":[]`)
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer("text", profile.Default())
	require.NoError(t, err)
	assert.Equal(t, "text", r.Format())

	r, err = NewRenderer("json", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", r.Format())

	_, err = NewRenderer("yaml", nil)
	assert.EqualError(t, err, "invalid format: yaml")
}
