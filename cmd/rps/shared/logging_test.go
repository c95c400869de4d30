package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", "test")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "round", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "round=3")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "test")
	assert.Error(t, err)
}

func TestSetupFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rps.log")
	logger, closer, err := SetupFileLogger(path, "info")
	require.NoError(t, err)

	logger.Info("Session started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Session started")
}
