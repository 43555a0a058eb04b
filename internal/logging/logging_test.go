package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("json format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_LEVEL", "")

		var buf bytes.Buffer
		logger := NewWithWriter(&buf)
		logger.Info("fetched events", "count", 3)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "fetched events", entry["msg"])
		assert.EqualValues(t, 3, entry["count"])
		assert.Same(t, logger, slog.Default(), "New should install the logger as default")
	})

	t.Run("text format honours level", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("LOG_LEVEL", "warn")

		var buf bytes.Buffer
		logger := NewWithWriter(&buf)
		logger.Info("hidden")
		logger.Warn("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "source=", "text handler should add source locations")
	})
}
