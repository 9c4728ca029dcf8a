package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"roofsite/internal/config"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "debug"}, &buf)

	apiLogger := Component(logger, "api")
	apiLogger.Info().Str("route", "/api/health").Msg("request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "roofsite", entry["service"])
	require.Equal(t, "api", entry["component"])
	require.Equal(t, "/api/health", entry["route"])
	require.Equal(t, "request", entry["message"])
}

// json.Unmarshal keeps the last duplicate key, so count the raw keys.
func TestComponentTagsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info"}, &buf)

	apiLogger := Component(logger, "api")
	apiLogger.Info().Msg("request")

	require.Equal(t, 1, strings.Count(buf.String(), `"component"`))
	require.Equal(t, 1, strings.Count(buf.String(), `"service"`))
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "warn"}, &buf)

	logger.Info().Msg("dropped")
	require.Zero(t, buf.Len())

	logger.Warn().Msg("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "loud"}, &buf)

	logger.Debug().Msg("dropped")
	logger.Info().Msg("kept")
	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")
}
