package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	prev := Sugar
	t.Cleanup(func() { Sugar = prev })

	require.NoError(t, Init(true))
	assert.True(t, Sugar.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(false))
	assert.False(t, Sugar.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Sugar.Desugar().Core().Enabled(zapcore.InfoLevel))
}
