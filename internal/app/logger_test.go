package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	logger := newLogger("debug", "json", &buf)
	logger.Debug("hello", "name", "Anne")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "Anne", rec["name"])
}

func TestNewLogger_UnknownLevelFallsBackToWarn(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	logger := newLogger("chatty", "text", &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
