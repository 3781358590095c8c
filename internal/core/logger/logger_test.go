package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestInit verifies logger initialization for different environments.
func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		err := Init("development", "debug")
		require.NoError(t, err)
		assert.NotNil(t, globalLogger)
		assert.True(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		err := Init("production", "info")
		require.NoError(t, err)
		assert.NotNil(t, globalLogger)
		assert.False(t, globalLogger.Core().Enabled(zap.DebugLevel))
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		err := Init("production", "invalid_level")
		require.NoError(t, err)
		// production default is info
		assert.False(t, globalLogger.Core().Enabled(zap.DebugLevel))
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})
}

func TestNew(t *testing.T) {
	l, err := New("development", "error")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.WarnLevel))
	assert.True(t, l.Core().Enabled(zap.ErrorLevel))
}

// TestGet verifies that Get returns the global logger.
func TestGet(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())

	require.NoError(t, Init("development", "info"))
	assert.Same(t, globalLogger, Get())
}

// TestSync verifies that Sync does not panic even if logger is nil.
func TestSync(t *testing.T) {
	globalLogger = nil
	assert.NotPanics(t, Sync)

	require.NoError(t, Init("development", "info"))
	assert.NotPanics(t, Sync)
}
