package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/evenhub/internal/config"
)

func TestBuildJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := build(&buf, "json", zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Str("screen", "dashboard").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "dashboard", entry["screen"])
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hub.log")
	log, closer, err := New(config.LogConfig{Level: "bogus", Format: "console", File: path})
	require.NoError(t, err)
	log.Info().Msg("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "started")
}
