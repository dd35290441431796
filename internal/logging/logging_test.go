package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("request", "method", "POST", "path", "/search", "status", 200)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request", record["msg"])
	assert.Equal(t, "POST", record["method"])
	assert.Equal(t, "/search", record["path"])
}

func TestNewStructuredLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelWarn)

	logger.Info("too quiet")
	assert.Zero(t, buf.Len())

	logger.Warn("loud enough")
	assert.Contains(t, buf.String(), "loud enough")
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelInfo)

	logger.Info("starting server", "port", 4001)
	assert.Contains(t, buf.String(), "starting server")
	assert.Contains(t, buf.String(), "port=4001")
}
