package logger

import (
	"testing"

	"debate-split/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	defer zap.ReplaceGlobals(zap.NewNop())

	l, err := Init(&config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.Same(t, l, zap.L())
}

func TestInit_Defaults(t *testing.T) {
	defer zap.ReplaceGlobals(zap.NewNop())

	l, err := Init(nil)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestInit_BadLevel(t *testing.T) {
	_, err := Init(&config.LogConfig{Level: "loud", Format: "console"})
	assert.Error(t, err)
}
