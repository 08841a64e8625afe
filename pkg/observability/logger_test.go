package observability_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/daybook-dev/daybook/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONIncludesServiceAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(observability.LogConfig{
		Level:       observability.LogLevelInfo,
		Format:      observability.LogFormatJSON,
		Output:      &buf,
		ServiceName: "daybook",
	})

	logger.Info("state flushed", "day", "2024-03-01")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "daybook", entry["service"])
	assert.Equal(t, "state flushed", entry["msg"])
	assert.Equal(t, "2024-03-01", entry["day"])
}

func TestNewLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(observability.LogConfig{
		Level:  observability.LogLevelWarn,
		Format: observability.LogFormatText,
		Output: &buf,
	})

	logger.Debug("ignored")
	logger.Info("ignored too")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
