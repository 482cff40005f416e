package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_BadConfigStillLogs(t *testing.T) {
	var buf bytes.Buffer
	_, logger, err := setup(options{configPath: filepath.Join(t.TempDir(), "missing.json")}, &buf)
	require.Error(t, err)

	logger.Error().Err(err).Msg("Failed to load config")
	assert.Contains(t, buf.String(), "Failed to load config")
}

func TestSetup_LevelFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavedef.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"logLevel": "warn"}`), 0o644))

	var buf bytes.Buffer
	settings, logger, err := setup(options{configPath: path}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "warn", settings.LogLevel)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}
